package domain

import "time"

// Категории внешних ресурсов (каталогов), где можно разместить ссылку.
const (
	CategoryAIDirectory      = "ai-directory"
	CategoryToolsDirectory   = "tools-directory"
	CategoryStartupDirectory = "startup-directory"
	CategorySaaSDirectory    = "saas-directory"
	CategoryProjectDirectory = "project-directory"
)

// ResourceCategories — закрытый список допустимых категорий ресурсов.
var ResourceCategories = []string{
	CategoryAIDirectory,
	CategoryToolsDirectory,
	CategoryStartupDirectory,
	CategorySaaSDirectory,
	CategoryProjectDirectory,
}

// IsValidResourceCategory проверяет категорию по закрытому списку.
func IsValidResourceCategory(category string) bool {
	for _, c := range ResourceCategories {
		if c == category {
			return true
		}
	}
	return false
}

// Resource представляет внешний каталог или площадку для размещения ссылок.
type Resource struct {
	ID              int64     `gorm:"primaryKey;column:id" json:"id"`
	Domain          string    `gorm:"column:domain;size:255;uniqueIndex;not null" json:"domain"`
	URL             string    `gorm:"column:url;size:500;not null" json:"url"`
	ContactEmail    *string   `gorm:"column:contact_email;size:255" json:"contact_email,omitempty"`
	DomainAuthority int       `gorm:"column:domain_authority;not null;default:0" json:"domain_authority"`
	Category        string    `gorm:"column:category;size:100;not null" json:"category"`
	Cost            float64   `gorm:"column:cost;type:decimal(10,2);not null;default:0.00" json:"cost"`
	Notes           *string   `gorm:"column:notes;type:text" json:"notes,omitempty"`
	CreatedAt       time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	IsActive        bool      `gorm:"column:is_active;not null;default:true" json:"is_active"`

	// Relationships
	Backlinks []Backlink `gorm:"foreignKey:ResourceID" json:"backlinks,omitempty"`
}

// TableName возвращает название таблицы для GORM
func (Resource) TableName() string {
	return "resources"
}

// ResourceUpdate описывает частичное обновление ресурса. nil-поля не изменяются.
type ResourceUpdate struct {
	Domain          *string
	URL             *string
	ContactEmail    *string
	DomainAuthority *int
	Category        *string
	Cost            *float64
	Notes           *string
}

// IsEmpty сообщает, что обновлять нечего.
func (u *ResourceUpdate) IsEmpty() bool {
	return u.Domain == nil && u.URL == nil && u.ContactEmail == nil &&
		u.DomainAuthority == nil && u.Category == nil && u.Cost == nil && u.Notes == nil
}
