package domain

import "time"

// BacklinkStatusDefinition — справочная запись о статусе размещения.
// Имя обязано совпадать с одним из значений закрытого перечисления статусов.
type BacklinkStatusDefinition struct {
	ID          int64     `gorm:"primaryKey;column:id" json:"id"`
	Name        string    `gorm:"column:name;size:20;uniqueIndex;not null" json:"name"`
	Description string    `gorm:"column:description;size:255;not null;default:''" json:"description"`
	Color       string    `gorm:"column:color;size:7;not null;default:'#6b7280'" json:"color"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"-"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime" json:"-"`
	IsActive    bool      `gorm:"column:is_active;not null;default:true" json:"is_active"`
}

// TableName возвращает название таблицы для GORM
func (BacklinkStatusDefinition) TableName() string {
	return "backlink_statuses"
}
