package repository

import (
	"Backtrack-Backend/internal/domain"
	"context"
	"errors"
)

var (
	// ErrNotFound сущность отсутствует или уже мягко удалена.
	ErrNotFound = errors.New("entity not found")
	// ErrDomainExists домен уже занят другой записью.
	ErrDomainExists = errors.New("domain already exists")
	// ErrNameExists имя справочной записи уже занято.
	ErrNameExists = errors.New("name already exists")
	// ErrDuplicatePair для пары (website, resource) уже есть размещение.
	ErrDuplicatePair = errors.New("backlink for this website and resource already exists")
)

// Значения пагинации по умолчанию. Неположительные page/limit
// приводятся к значениям по умолчанию, а не отклоняются.
const (
	DefaultPage  = 1
	DefaultLimit = 50
)

// ResourceFilter — критерии выборки ресурсов. Все поля опциональны
// и комбинируются через AND; один и тот же предикат используется
// и для count-запроса, и для страницы данных.
type ResourceFilter struct {
	Category string
	Search   string
	Page     int
	Limit    int
}

// Normalize приводит page/limit к допустимым значениям.
func (f *ResourceFilter) Normalize() {
	if f.Page < 1 {
		f.Page = DefaultPage
	}
	if f.Limit < 1 {
		f.Limit = DefaultLimit
	}
}

// Offset вычисляет смещение страницы.
func (f *ResourceFilter) Offset() int {
	return (f.Page - 1) * f.Limit
}

// Pagination — блок пагинации в ответах списочных endpoint-ов.
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int64 `json:"totalPages"`
}

// NewPagination строит блок пагинации: totalPages = ceil(total/limit).
func NewPagination(page, limit int, total int64) Pagination {
	totalPages := int64(0)
	if limit > 0 {
		totalPages = (total + int64(limit) - 1) / int64(limit)
	}
	return Pagination{Page: page, Limit: limit, Total: total, TotalPages: totalPages}
}

// Storage — интерфейс хранилища. Ядро обращается к реляционной БД
// только через него.
type Storage interface {
	// Website methods
	ListWebsitesWithStats(ctx context.Context) ([]*domain.WebsiteWithStats, error)
	GetWebsite(ctx context.Context, id int64) (*domain.Website, error)
	CreateWebsite(ctx context.Context, website *domain.Website) error
	UpdateWebsite(ctx context.Context, id int64, upd domain.WebsiteUpdate) (*domain.Website, error)
	DeleteWebsite(ctx context.Context, id int64) error

	// Resource methods
	ListResources(ctx context.Context, filter ResourceFilter) ([]*domain.ResourceWithStats, int64, error)
	GetResource(ctx context.Context, id int64) (*domain.ResourceWithStats, error)
	CreateResource(ctx context.Context, resource *domain.Resource) error
	UpdateResource(ctx context.Context, id int64, upd domain.ResourceUpdate) (*domain.Resource, error)
	DeleteResource(ctx context.Context, id int64) (int64, error)

	// Backlink methods
	ListWebsiteBacklinks(ctx context.Context, websiteID int64) ([]*domain.Backlink, error)
	CreateBacklink(ctx context.Context, backlink *domain.Backlink) error
	UpdateBacklink(ctx context.Context, id int64, upd domain.BacklinkUpdate) error
	DeleteBacklink(ctx context.Context, id int64) error

	// Aggregate methods
	GetDashboardStats(ctx context.Context) (*domain.DashboardStats, error)

	// Reference data methods
	ListWebsiteCategories(ctx context.Context) ([]*domain.WebsiteCategory, error)
	CreateWebsiteCategory(ctx context.Context, category *domain.WebsiteCategory) error
	UpdateWebsiteCategory(ctx context.Context, id int64, upd domain.LookupUpdate) (*domain.WebsiteCategory, error)
	DeleteWebsiteCategory(ctx context.Context, id int64) error
	ListBacklinkStatuses(ctx context.Context) ([]*domain.BacklinkStatusDefinition, error)
	CreateBacklinkStatus(ctx context.Context, status *domain.BacklinkStatusDefinition) error
	UpdateBacklinkStatus(ctx context.Context, id int64, upd domain.LookupUpdate) (*domain.BacklinkStatusDefinition, error)
	DeleteBacklinkStatus(ctx context.Context, id int64) error

	// Extended info methods
	ListWebsiteInfo(ctx context.Context) ([]*domain.WebsiteExtendedInfo, error)
	GetWebsiteInfo(ctx context.Context, websiteID int64) (*domain.WebsiteExtendedInfo, error)
	SaveWebsiteInfo(ctx context.Context, info *domain.WebsiteExtendedInfo) error
	DeleteWebsiteInfo(ctx context.Context, websiteID int64) error

	// Health
	Ping(ctx context.Context) error
}
