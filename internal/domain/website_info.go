package domain

import "time"

// WebsiteExtendedInfo — дополнительная карточка сайта (контакты, описание),
// хранится отдельной таблицей с ключом website_id.
type WebsiteExtendedInfo struct {
	WebsiteID    int64     `gorm:"primaryKey;column:website_id" json:"websiteId"`
	SupportEmail *string   `gorm:"column:support_email;size:255" json:"supportEmail,omitempty"`
	Title        *string   `gorm:"column:title;size:255" json:"title,omitempty"`
	Description  *string   `gorm:"column:description;type:text" json:"description,omitempty"`
	URL          *string   `gorm:"column:url;size:500" json:"url,omitempty"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime" json:"lastUpdated"`
}

// TableName возвращает название таблицы для GORM
func (WebsiteExtendedInfo) TableName() string {
	return "website_extended_info"
}
