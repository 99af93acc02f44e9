package postgres

import (
	"Backtrack-Backend/internal/database"
	"Backtrack-Backend/internal/domain"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newTestStorage поднимает хранилище на файловом sqlite во временной
// директории. SQL-слой написан так, чтобы вести себя одинаково
// в PostgreSQL и sqlite, это позволяет гонять тесты без контейнера.
func newTestStorage(t *testing.T) *PostgresStorage {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db, zap.NewNop()))

	return New(db, zap.NewNop())
}

func createTestWebsite(t *testing.T, s *PostgresStorage, domainName, name string) *domain.Website {
	t.Helper()

	website := &domain.Website{
		Domain:   domainName,
		Name:     name,
		Category: "saas",
		IsActive: true,
	}
	require.NoError(t, s.CreateWebsite(context.Background(), website))
	return website
}

func createTestResource(t *testing.T, s *PostgresStorage, domainName string, da int) *domain.Resource {
	t.Helper()

	resource := &domain.Resource{
		Domain:          domainName,
		URL:             "https://" + domainName + "/submit",
		DomainAuthority: da,
		Category:        domain.CategoryAIDirectory,
		IsActive:        true,
	}
	require.NoError(t, s.CreateResource(context.Background(), resource))
	return resource
}

func createTestBacklink(t *testing.T, s *PostgresStorage, websiteID, resourceID int64, status string) *domain.Backlink {
	t.Helper()

	backlink := &domain.Backlink{
		WebsiteID:  websiteID,
		ResourceID: resourceID,
		Status:     status,
	}
	require.NoError(t, s.CreateBacklink(context.Background(), backlink))
	return backlink
}

func TestPing(t *testing.T) {
	s := newTestStorage(t)
	require.NoError(t, s.Ping(context.Background()))
}
