package postgres

import (
	"Backtrack-Backend/internal/domain"
	"Backtrack-Backend/internal/repository"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateWebsite_NormalizesDomain(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	website := &domain.Website{Domain: "  Example.COM ", Name: "Example", Category: "saas", IsActive: true}
	require.NoError(t, s.CreateWebsite(ctx, website))

	assert.Equal(t, "example.com", website.Domain)

	loaded, err := s.GetWebsite(ctx, website.ID)
	require.NoError(t, err)
	assert.Equal(t, "example.com", loaded.Domain)
}

func TestCreateWebsite_DomainUniqueCaseInsensitive(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	createTestWebsite(t, s, "example.com", "Example")

	dup := &domain.Website{Domain: "EXAMPLE.com", Name: "Other", Category: "saas", IsActive: true}
	err := s.CreateWebsite(ctx, dup)
	assert.ErrorIs(t, err, repository.ErrDomainExists)
}

func TestListWebsitesWithStats_ZeroBacklinks(t *testing.T) {
	s := newTestStorage(t)

	createTestWebsite(t, s, "empty.com", "Empty")

	websites, err := s.ListWebsitesWithStats(context.Background())
	require.NoError(t, err)
	require.Len(t, websites, 1)

	// LEFT JOIN: сайт без размещений присутствует с нулевыми агрегатами
	got := websites[0]
	assert.Equal(t, int64(0), got.TotalOpportunities)
	assert.Equal(t, int64(0), got.LiveBacklinks)
	assert.Equal(t, 0.0, got.CompletionRate)
	assert.False(t, got.LastActivity.Valid)
}

func TestListWebsitesWithStats_CompletionRate(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	website := createTestWebsite(t, s, "site.com", "Site")
	r1 := createTestResource(t, s, "dir-one.com", 50)
	r2 := createTestResource(t, s, "dir-two.com", 60)

	createTestBacklink(t, s, website.ID, r1.ID, domain.StatusPending)
	live := createTestBacklink(t, s, website.ID, r2.ID, domain.StatusLive)

	websites, err := s.ListWebsitesWithStats(ctx)
	require.NoError(t, err)
	require.Len(t, websites, 1)

	// Числитель процента — только placed; pending и live его не двигают
	got := websites[0]
	assert.Equal(t, int64(2), got.TotalOpportunities)
	assert.Equal(t, int64(1), got.LiveBacklinks)
	assert.Equal(t, int64(1), got.PendingBacklinks)
	assert.Equal(t, 0.0, got.CompletionRate)
	assert.True(t, got.LastActivity.Valid)

	placed := domain.StatusPlaced
	require.NoError(t, s.UpdateBacklink(ctx, live.ID, domain.BacklinkUpdate{Status: &placed}))

	websites, err = s.ListWebsitesWithStats(ctx)
	require.NoError(t, err)
	require.Len(t, websites, 1)
	assert.Equal(t, int64(1), websites[0].PlacedBacklinks)
	assert.Equal(t, 50.0, websites[0].CompletionRate)
}

func TestListWebsitesWithStats_ExcludesInactive(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	keep := createTestWebsite(t, s, "keep.com", "Keep")
	gone := createTestWebsite(t, s, "gone.com", "Gone")
	require.NoError(t, s.DeleteWebsite(ctx, gone.ID))

	websites, err := s.ListWebsitesWithStats(ctx)
	require.NoError(t, err)
	require.Len(t, websites, 1)
	assert.Equal(t, keep.ID, websites[0].ID)
}

func TestGetWebsite_NotFoundAfterSoftDelete(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	website := createTestWebsite(t, s, "soft.com", "Soft")
	require.NoError(t, s.DeleteWebsite(ctx, website.ID))

	_, err := s.GetWebsite(ctx, website.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestDeleteWebsite_RepeatReturnsNotFound(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	website := createTestWebsite(t, s, "once.com", "Once")

	require.NoError(t, s.DeleteWebsite(ctx, website.ID))
	assert.ErrorIs(t, s.DeleteWebsite(ctx, website.ID), repository.ErrNotFound)
}

func TestUpdateWebsite_PartialAndConflict(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	website := createTestWebsite(t, s, "first.com", "First")
	createTestWebsite(t, s, "second.com", "Second")

	newName := "Renamed"
	updated, err := s.UpdateWebsite(ctx, website.ID, domain.WebsiteUpdate{Name: &newName})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Name)
	assert.Equal(t, "first.com", updated.Domain)

	taken := "SECOND.com"
	_, err = s.UpdateWebsite(ctx, website.ID, domain.WebsiteUpdate{Domain: &taken})
	assert.ErrorIs(t, err, repository.ErrDomainExists)

	_, err = s.UpdateWebsite(ctx, 99999, domain.WebsiteUpdate{Name: &newName})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
