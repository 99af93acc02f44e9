package domain

import (
	"fmt"
	"time"
)

// ActivityTime — скан-обертка для агрегатных timestamp-колонок.
// Значение MAX(updated_at) приходит без объявленного типа колонки,
// поэтому драйвер может вернуть time.Time, строку или байты.
type ActivityTime struct {
	Time  time.Time
	Valid bool
}

var activityLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04:05",
}

// Scan реализует sql.Scanner.
func (t *ActivityTime) Scan(value interface{}) error {
	if value == nil {
		t.Time, t.Valid = time.Time{}, false
		return nil
	}
	switch v := value.(type) {
	case time.Time:
		t.Time, t.Valid = v, true
		return nil
	case []byte:
		return t.parse(string(v))
	case string:
		return t.parse(v)
	}
	return fmt.Errorf("unsupported activity time value of type %T", value)
}

func (t *ActivityTime) parse(s string) error {
	for _, layout := range activityLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			t.Time, t.Valid = parsed, true
			return nil
		}
	}
	return fmt.Errorf("cannot parse activity time %q", s)
}

// MarshalJSON сериализует значение как RFC3339 или null.
func (t ActivityTime) MarshalJSON() ([]byte, error) {
	if !t.Valid {
		return []byte("null"), nil
	}
	return []byte(`"` + t.Time.Format(time.RFC3339) + `"`), nil
}

// WebsiteWithStats — сайт вместе с агрегатами по его размещениям.
// Проценты считаются в SQL и округляются до одного знака;
// числитель completionRate — количество записей в статусе placed.
type WebsiteWithStats struct {
	Website
	TotalOpportunities int64        `gorm:"column:total_opportunities" json:"totalOpportunities"`
	LiveBacklinks      int64        `gorm:"column:live_backlinks" json:"liveBacklinks"`
	PendingBacklinks   int64        `gorm:"column:pending_backlinks" json:"pendingBacklinks"`
	PlacedBacklinks    int64        `gorm:"column:placed_backlinks" json:"placedBacklinks"`
	RejectedBacklinks  int64        `gorm:"column:rejected_backlinks" json:"rejectedBacklinks"`
	CompletionRate     float64      `gorm:"column:completion_rate" json:"completionRate"`
	LastActivity       ActivityTime `gorm:"column:last_activity" json:"lastActivity"`
}

// ResourceWithStats — ресурс вместе со счетчиками размещений.
type ResourceWithStats struct {
	Resource
	BacklinkCount int64 `gorm:"column:backlink_count" json:"backlink_count"`
	LiveBacklinks int64 `gorm:"column:live_backlinks" json:"live_backlinks"`
}

// DashboardStats — единая сводка для дашборда.
// Числитель averageCompletionRate — записи в статусе live: метрика
// сознательно отличается от per-website completionRate.
type DashboardStats struct {
	TotalWebsites         int64   `gorm:"column:total_websites" json:"totalWebsites"`
	TotalResources        int64   `gorm:"column:total_resources" json:"totalResources"`
	TotalOpportunities    int64   `gorm:"column:total_opportunities" json:"totalOpportunities"`
	LiveBacklinks         int64   `gorm:"column:live_backlinks" json:"liveBacklinks"`
	AverageCompletionRate float64 `gorm:"column:average_completion_rate" json:"averageCompletionRate"`
}
