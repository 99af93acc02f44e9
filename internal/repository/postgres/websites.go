package postgres

import (
	"Backtrack-Backend/internal/domain"
	"Backtrack-Backend/internal/repository"
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Агрегаты по каждому активному сайту. LEFT JOIN обязателен: сайт без
// размещений должен попасть в выборку с нулевыми счетчиками.
// Числитель completion_rate — записи в статусе placed.
const websiteStatsSelect = `websites.*,
COUNT(b.id) AS total_opportunities,
COUNT(CASE WHEN b.status = 'live' THEN 1 END) AS live_backlinks,
COUNT(CASE WHEN b.status = 'pending' THEN 1 END) AS pending_backlinks,
COUNT(CASE WHEN b.status = 'placed' THEN 1 END) AS placed_backlinks,
COUNT(CASE WHEN b.status = 'rejected' THEN 1 END) AS rejected_backlinks,
CASE WHEN COUNT(b.id) > 0
     THEN ROUND(COUNT(CASE WHEN b.status = 'placed' THEN 1 END) * 100.0 / COUNT(b.id), 1)
     ELSE 0
END AS completion_rate,
MAX(b.updated_at) AS last_activity`

// ListWebsitesWithStats возвращает все активные сайты с агрегатами.
func (s *PostgresStorage) ListWebsitesWithStats(ctx context.Context) ([]*domain.WebsiteWithStats, error) {
	var websites []*domain.WebsiteWithStats

	err := s.db.WithContext(ctx).
		Model(&domain.Website{}).
		Select(websiteStatsSelect).
		Joins("LEFT JOIN backlinks b ON b.website_id = websites.id").
		Where("websites.is_active = ?", true).
		Group("websites.id").
		Order("websites.name").
		Scan(&websites).Error
	if err != nil {
		s.log.Error("failed to list websites with stats", zap.Error(err))
		return nil, fmt.Errorf("failed to list websites: %w", err)
	}

	return websites, nil
}

// GetWebsite получает активный сайт по ID.
func (s *PostgresStorage) GetWebsite(ctx context.Context, id int64) (*domain.Website, error) {
	var website domain.Website

	err := s.db.WithContext(ctx).Where("id = ? AND is_active = ?", id, true).First(&website).Error
	if err == gorm.ErrRecordNotFound {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		s.log.Error("failed to get website", zap.Int64("website_id", id), zap.Error(err))
		return nil, fmt.Errorf("failed to get website: %w", err)
	}

	return &website, nil
}

// CreateWebsite сохраняет новый сайт. Домен уникален без учета регистра.
func (s *PostgresStorage) CreateWebsite(ctx context.Context, website *domain.Website) error {
	website.Domain = domain.NormalizeDomain(website.Domain)

	// Проверяем, не занят ли домен
	var count int64
	err := s.db.WithContext(ctx).Model(&domain.Website{}).
		Where("LOWER(domain) = ?", website.Domain).Count(&count).Error
	if err != nil {
		s.log.Error("failed to check website domain", zap.String("domain", website.Domain), zap.Error(err))
		return fmt.Errorf("failed to check domain: %w", err)
	}
	if count > 0 {
		return repository.ErrDomainExists
	}

	if err := s.db.WithContext(ctx).Create(website).Error; err != nil {
		if isUniqueViolation(err) {
			return repository.ErrDomainExists
		}
		s.log.Error("failed to create website", zap.String("domain", website.Domain), zap.Error(err))
		return fmt.Errorf("failed to create website: %w", err)
	}

	s.log.Info("created website", zap.Int64("website_id", website.ID), zap.String("domain", website.Domain))
	return nil
}

// UpdateWebsite частично обновляет сайт. Набор изменений сначала
// собирается в структуру и только потом опускается в SQL.
func (s *PostgresStorage) UpdateWebsite(ctx context.Context, id int64, upd domain.WebsiteUpdate) (*domain.Website, error) {
	updates := map[string]interface{}{}
	if upd.Domain != nil {
		normalized := domain.NormalizeDomain(*upd.Domain)

		// Домен не должен быть занят другим сайтом
		var count int64
		err := s.db.WithContext(ctx).Model(&domain.Website{}).
			Where("LOWER(domain) = ? AND id <> ?", normalized, id).Count(&count).Error
		if err != nil {
			return nil, fmt.Errorf("failed to check domain: %w", err)
		}
		if count > 0 {
			return nil, repository.ErrDomainExists
		}
		updates["domain"] = normalized
	}
	if upd.Name != nil {
		updates["name"] = *upd.Name
	}
	if upd.Category != nil {
		updates["category"] = *upd.Category
	}
	updates["updated_at"] = time.Now()

	result := s.db.WithContext(ctx).Model(&domain.Website{}).
		Where("id = ? AND is_active = ?", id, true).
		Updates(updates)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return nil, repository.ErrDomainExists
		}
		s.log.Error("failed to update website", zap.Int64("website_id", id), zap.Error(result.Error))
		return nil, fmt.Errorf("failed to update website: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrNotFound
	}

	return s.GetWebsite(ctx, id)
}

// DeleteWebsite мягко удаляет сайт. Повторное удаление возвращает
// ErrNotFound, а не дублирующий успех.
func (s *PostgresStorage) DeleteWebsite(ctx context.Context, id int64) error {
	result := s.db.WithContext(ctx).Model(&domain.Website{}).
		Where("id = ? AND is_active = ?", id, true).
		Updates(map[string]interface{}{"is_active": false, "updated_at": time.Now()})
	if result.Error != nil {
		s.log.Error("failed to delete website", zap.Int64("website_id", id), zap.Error(result.Error))
		return fmt.Errorf("failed to delete website: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotFound
	}

	s.log.Info("deleted website", zap.Int64("website_id", id))
	return nil
}
