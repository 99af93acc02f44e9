package http

import (
	"Backtrack-Backend/internal/domain"
	"Backtrack-Backend/internal/repository"
	"context"

	"github.com/stretchr/testify/mock"
)

// MockStorage is a mock implementation of repository.Storage
type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) ListWebsitesWithStats(ctx context.Context) ([]*domain.WebsiteWithStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.WebsiteWithStats), args.Error(1)
}

func (m *MockStorage) GetWebsite(ctx context.Context, id int64) (*domain.Website, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Website), args.Error(1)
}

func (m *MockStorage) CreateWebsite(ctx context.Context, website *domain.Website) error {
	args := m.Called(ctx, website)
	return args.Error(0)
}

func (m *MockStorage) UpdateWebsite(ctx context.Context, id int64, upd domain.WebsiteUpdate) (*domain.Website, error) {
	args := m.Called(ctx, id, upd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Website), args.Error(1)
}

func (m *MockStorage) DeleteWebsite(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockStorage) ListResources(ctx context.Context, filter repository.ResourceFilter) ([]*domain.ResourceWithStats, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]*domain.ResourceWithStats), args.Get(1).(int64), args.Error(2)
}

func (m *MockStorage) GetResource(ctx context.Context, id int64) (*domain.ResourceWithStats, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ResourceWithStats), args.Error(1)
}

func (m *MockStorage) CreateResource(ctx context.Context, resource *domain.Resource) error {
	args := m.Called(ctx, resource)
	return args.Error(0)
}

func (m *MockStorage) UpdateResource(ctx context.Context, id int64, upd domain.ResourceUpdate) (*domain.Resource, error) {
	args := m.Called(ctx, id, upd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Resource), args.Error(1)
}

func (m *MockStorage) DeleteResource(ctx context.Context, id int64) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStorage) ListWebsiteBacklinks(ctx context.Context, websiteID int64) ([]*domain.Backlink, error) {
	args := m.Called(ctx, websiteID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Backlink), args.Error(1)
}

func (m *MockStorage) CreateBacklink(ctx context.Context, backlink *domain.Backlink) error {
	args := m.Called(ctx, backlink)
	return args.Error(0)
}

func (m *MockStorage) UpdateBacklink(ctx context.Context, id int64, upd domain.BacklinkUpdate) error {
	args := m.Called(ctx, id, upd)
	return args.Error(0)
}

func (m *MockStorage) DeleteBacklink(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockStorage) GetDashboardStats(ctx context.Context) (*domain.DashboardStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DashboardStats), args.Error(1)
}

func (m *MockStorage) ListWebsiteCategories(ctx context.Context) ([]*domain.WebsiteCategory, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.WebsiteCategory), args.Error(1)
}

func (m *MockStorage) CreateWebsiteCategory(ctx context.Context, category *domain.WebsiteCategory) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockStorage) UpdateWebsiteCategory(ctx context.Context, id int64, upd domain.LookupUpdate) (*domain.WebsiteCategory, error) {
	args := m.Called(ctx, id, upd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WebsiteCategory), args.Error(1)
}

func (m *MockStorage) DeleteWebsiteCategory(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockStorage) ListBacklinkStatuses(ctx context.Context) ([]*domain.BacklinkStatusDefinition, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.BacklinkStatusDefinition), args.Error(1)
}

func (m *MockStorage) CreateBacklinkStatus(ctx context.Context, status *domain.BacklinkStatusDefinition) error {
	args := m.Called(ctx, status)
	return args.Error(0)
}

func (m *MockStorage) UpdateBacklinkStatus(ctx context.Context, id int64, upd domain.LookupUpdate) (*domain.BacklinkStatusDefinition, error) {
	args := m.Called(ctx, id, upd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BacklinkStatusDefinition), args.Error(1)
}

func (m *MockStorage) DeleteBacklinkStatus(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockStorage) ListWebsiteInfo(ctx context.Context) ([]*domain.WebsiteExtendedInfo, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.WebsiteExtendedInfo), args.Error(1)
}

func (m *MockStorage) GetWebsiteInfo(ctx context.Context, websiteID int64) (*domain.WebsiteExtendedInfo, error) {
	args := m.Called(ctx, websiteID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WebsiteExtendedInfo), args.Error(1)
}

func (m *MockStorage) SaveWebsiteInfo(ctx context.Context, info *domain.WebsiteExtendedInfo) error {
	args := m.Called(ctx, info)
	return args.Error(0)
}

func (m *MockStorage) DeleteWebsiteInfo(ctx context.Context, websiteID int64) error {
	args := m.Called(ctx, websiteID)
	return args.Error(0)
}

func (m *MockStorage) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
