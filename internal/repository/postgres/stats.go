package postgres

import (
	"Backtrack-Backend/internal/domain"
	"context"
	"fmt"

	"go.uber.org/zap"
)

// GetDashboardStats возвращает единую сводку для дашборда.
// В totalOpportunities входят только размещения, у которых активны
// и сайт, и ресурс. Числитель average_completion_rate — статус live;
// per-website метрика считает placed, и это расхождение сохранено
// намеренно.
func (s *PostgresStorage) GetDashboardStats(ctx context.Context) (*domain.DashboardStats, error) {
	var stats domain.DashboardStats

	err := s.db.WithContext(ctx).Raw(`
SELECT
  (SELECT COUNT(*) FROM websites WHERE is_active = ?) AS total_websites,
  (SELECT COUNT(*) FROM resources WHERE is_active = ?) AS total_resources,
  COUNT(b.id) AS total_opportunities,
  COUNT(CASE WHEN b.status = 'live' THEN 1 END) AS live_backlinks,
  CASE WHEN COUNT(b.id) > 0
       THEN ROUND(COUNT(CASE WHEN b.status = 'live' THEN 1 END) * 100.0 / COUNT(b.id), 1)
       ELSE 0
  END AS average_completion_rate
FROM backlinks b
JOIN websites w ON b.website_id = w.id
JOIN resources r ON b.resource_id = r.id
WHERE w.is_active = ? AND r.is_active = ?`, true, true, true, true).
		Scan(&stats).Error
	if err != nil {
		s.log.Error("failed to get dashboard stats", zap.Error(err))
		return nil, fmt.Errorf("failed to get dashboard stats: %w", err)
	}

	return &stats, nil
}
