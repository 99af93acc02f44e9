package domain

import (
	"regexp"
	"strings"
	"time"
)

// WebsiteCategory — справочная запись о категории сайтов.
// Хранится в БД, чтобы переживать рестарты и редактироваться через CRUD.
type WebsiteCategory struct {
	ID          int64     `gorm:"primaryKey;column:id" json:"id"`
	Name        string    `gorm:"column:name;size:100;uniqueIndex;not null" json:"name"`
	Description string    `gorm:"column:description;size:255;not null;default:''" json:"description"`
	Color       string    `gorm:"column:color;size:7;not null;default:'#6b7280'" json:"color"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"-"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime" json:"-"`
	IsActive    bool      `gorm:"column:is_active;not null;default:true" json:"is_active"`
}

// TableName возвращает название таблицы для GORM
func (WebsiteCategory) TableName() string {
	return "website_categories"
}

// LookupUpdate — частичное обновление справочной записи (категории
// или статуса). nil-поля не изменяются.
type LookupUpdate struct {
	Name        *string
	Description *string
	Color       *string
}

// IsEmpty сообщает, что обновлять нечего.
func (u *LookupUpdate) IsEmpty() bool {
	return u.Name == nil && u.Description == nil && u.Color == nil
}

var slugSpaces = regexp.MustCompile(`\s+`)

// SlugifyName приводит имя справочной записи к каноническому виду:
// нижний регистр, пробелы заменяются дефисами.
func SlugifyName(name string) string {
	return slugSpaces.ReplaceAllString(strings.ToLower(strings.TrimSpace(name)), "-")
}
