package domain

import "time"

// Статусы размещения обратной ссылки.
const (
	StatusPending   = "pending"
	StatusRequested = "requested"
	StatusPlaced    = "placed"
	StatusLive      = "live"
	StatusRemoved   = "removed"
	StatusRejected  = "rejected"
)

// BacklinkStatuses — закрытый список допустимых статусов.
var BacklinkStatuses = []string{
	StatusPending,
	StatusRequested,
	StatusPlaced,
	StatusLive,
	StatusRemoved,
	StatusRejected,
}

// IsValidBacklinkStatus проверяет статус по закрытому списку.
func IsValidBacklinkStatus(status string) bool {
	for _, s := range BacklinkStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// Backlink — связующая запись: размещение одной ссылки на одном ресурсе
// в интересах одного сайта. Удаляется физически, а не мягко.
type Backlink struct {
	ID            int64      `gorm:"primaryKey;column:id" json:"id"`
	WebsiteID     int64      `gorm:"column:website_id;not null;index" json:"website_id"`
	ResourceID    int64      `gorm:"column:resource_id;not null;index" json:"resource_id"`
	Status        string     `gorm:"column:status;size:20;not null;default:pending" json:"status"`
	AnchorText    *string    `gorm:"column:anchor_text;size:255" json:"anchor_text,omitempty"`
	TargetURL     *string    `gorm:"column:target_url;size:500" json:"target_url,omitempty"`
	PlacementDate *time.Time `gorm:"column:placement_date" json:"placement_date,omitempty"`
	RemovalDate   *time.Time `gorm:"column:removal_date" json:"removal_date,omitempty"`
	Cost          *float64   `gorm:"column:cost;type:decimal(10,2)" json:"cost,omitempty"`
	Notes         *string    `gorm:"column:notes;type:text" json:"notes,omitempty"`
	CreatedAt     time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time  `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	// Relationships
	Website  *Website  `gorm:"foreignKey:WebsiteID" json:"website,omitempty"`
	Resource *Resource `gorm:"foreignKey:ResourceID" json:"resource,omitempty"`
}

// TableName возвращает название таблицы для GORM
func (Backlink) TableName() string {
	return "backlinks"
}

// BacklinkUpdate описывает частичное обновление записи размещения.
// nil-поля не изменяются.
type BacklinkUpdate struct {
	Status        *string
	AnchorText    *string
	TargetURL     *string
	PlacementDate *time.Time
	RemovalDate   *time.Time
	Cost          *float64
	Notes         *string
}

// IsEmpty сообщает, что обновлять нечего.
func (u *BacklinkUpdate) IsEmpty() bool {
	return u.Status == nil && u.AnchorText == nil && u.TargetURL == nil &&
		u.PlacementDate == nil && u.RemovalDate == nil && u.Cost == nil && u.Notes == nil
}
