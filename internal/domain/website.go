package domain

import (
	"strings"
	"time"
)

// Website представляет целевой сайт, для которого размещаются обратные ссылки.
type Website struct {
	ID        int64     `gorm:"primaryKey;column:id" json:"id"`
	Domain    string    `gorm:"column:domain;size:255;uniqueIndex;not null" json:"domain"`
	Name      string    `gorm:"column:name;size:255;not null" json:"name"`
	Category  string    `gorm:"column:category;size:100;not null" json:"category"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	IsActive  bool      `gorm:"column:is_active;not null;default:true" json:"is_active"`

	// Relationships
	Backlinks []Backlink `gorm:"foreignKey:WebsiteID" json:"backlinks,omitempty"`
}

// TableName возвращает название таблицы для GORM
func (Website) TableName() string {
	return "websites"
}

// NormalizeDomain приводит домен к каноническому виду (нижний регистр, без пробелов).
func NormalizeDomain(domain string) string {
	return strings.ToLower(strings.TrimSpace(domain))
}

// WebsiteUpdate описывает частичное обновление сайта. nil-поля не изменяются.
type WebsiteUpdate struct {
	Domain   *string
	Name     *string
	Category *string
}

// IsEmpty сообщает, что обновлять нечего.
func (u *WebsiteUpdate) IsEmpty() bool {
	return u.Domain == nil && u.Name == nil && u.Category == nil
}
