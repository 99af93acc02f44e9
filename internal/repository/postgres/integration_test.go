//go:build integration

package postgres

import (
	"Backtrack-Backend/internal/database"
	"Backtrack-Backend/internal/domain"
	"Backtrack-Backend/internal/repository"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newIntegrationStorage поднимает настоящий PostgreSQL в контейнере.
// Запускается только с тегом integration: go test -tags=integration ./...
func newIntegrationStorage(t *testing.T) *PostgresStorage {
	t.Helper()
	ctx := context.Background()

	container, err := tcpostgres.RunContainer(ctx,
		testcontainers.WithImage("postgres:15-alpine"),
		tcpostgres.WithDatabase("backtrack_test"),
		tcpostgres.WithUsername("postgres"),
		tcpostgres.WithPassword("postgres"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = container.Terminate(context.Background())
	})

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := gorm.Open(gormpostgres.Open(connStr), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db, zap.NewNop()))

	return New(db, zap.NewNop())
}

func TestIntegration_WebsiteLifecycle(t *testing.T) {
	s := newIntegrationStorage(t)
	ctx := context.Background()

	website := createTestWebsite(t, s, "Example.COM", "Example")
	assert.Equal(t, "example.com", website.Domain)

	// Дубликат домена отлавливается и настоящим unique-индексом
	dup := &domain.Website{Domain: "example.com", Name: "Dup", Category: "saas", IsActive: true}
	assert.ErrorIs(t, s.CreateWebsite(ctx, dup), repository.ErrDomainExists)

	resource := createTestResource(t, s, "dir.com", 55)
	createTestBacklink(t, s, website.ID, resource.ID, domain.StatusPlaced)

	websites, err := s.ListWebsitesWithStats(ctx)
	require.NoError(t, err)
	require.Len(t, websites, 1)
	assert.Equal(t, int64(1), websites[0].TotalOpportunities)
	assert.Equal(t, 100.0, websites[0].CompletionRate)
	assert.True(t, websites[0].LastActivity.Valid)

	removed, err := s.DeleteResource(ctx, resource.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)

	stats, err := s.GetDashboardStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), stats.TotalOpportunities)
}
