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

// Фиксированный приоритет статусов для детального списка размещений:
// живые ссылки сверху, удаленные и неизвестные статусы внизу.
const backlinkStatusOrder = `CASE backlinks.status
WHEN 'live' THEN 1
WHEN 'placed' THEN 2
WHEN 'pending' THEN 3
WHEN 'rejected' THEN 5
WHEN 'removed' THEN 6
ELSE 7
END`

// ListWebsiteBacklinks возвращает размещения сайта вместе с ресурсом
// и сайтом. Ресурсы, удаленные мягко, из выборки исключаются.
func (s *PostgresStorage) ListWebsiteBacklinks(ctx context.Context, websiteID int64) ([]*domain.Backlink, error) {
	var backlinks []*domain.Backlink

	err := s.db.WithContext(ctx).
		Model(&domain.Backlink{}).
		Joins("JOIN resources r ON r.id = backlinks.resource_id").
		Where("backlinks.website_id = ? AND r.is_active = ?", websiteID, true).
		Order(backlinkStatusOrder + ", r.domain_authority DESC, r.domain").
		Preload("Resource").
		Preload("Website").
		Find(&backlinks).Error
	if err != nil {
		s.log.Error("failed to list website backlinks", zap.Int64("website_id", websiteID), zap.Error(err))
		return nil, fmt.Errorf("failed to list backlinks: %w", err)
	}

	return backlinks, nil
}

// CreateBacklink создает запись размещения. Для пары (сайт, ресурс)
// допускается не больше одной записи; ограничение прикладное.
func (s *PostgresStorage) CreateBacklink(ctx context.Context, backlink *domain.Backlink) error {
	var website domain.Website
	err := s.db.WithContext(ctx).Where("id = ? AND is_active = ?", backlink.WebsiteID, true).First(&website).Error
	if err == gorm.ErrRecordNotFound {
		return repository.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to check website: %w", err)
	}

	var resource domain.Resource
	err = s.db.WithContext(ctx).Where("id = ? AND is_active = ?", backlink.ResourceID, true).First(&resource).Error
	if err == gorm.ErrRecordNotFound {
		return repository.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to check resource: %w", err)
	}

	var count int64
	err = s.db.WithContext(ctx).Model(&domain.Backlink{}).
		Where("website_id = ? AND resource_id = ?", backlink.WebsiteID, backlink.ResourceID).
		Count(&count).Error
	if err != nil {
		return fmt.Errorf("failed to check backlink pair: %w", err)
	}
	if count > 0 {
		return repository.ErrDuplicatePair
	}

	if backlink.Status == "" {
		backlink.Status = domain.StatusPending
	}

	if err := s.db.WithContext(ctx).Create(backlink).Error; err != nil {
		s.log.Error("failed to create backlink",
			zap.Int64("website_id", backlink.WebsiteID),
			zap.Int64("resource_id", backlink.ResourceID),
			zap.Error(err))
		return fmt.Errorf("failed to create backlink: %w", err)
	}

	s.log.Info("created backlink",
		zap.Int64("backlink_id", backlink.ID),
		zap.Int64("website_id", backlink.WebsiteID),
		zap.Int64("resource_id", backlink.ResourceID))
	return nil
}

// UpdateBacklink частично обновляет запись размещения.
// Конкурирующие обновления применяются по принципу last-write-wins.
func (s *PostgresStorage) UpdateBacklink(ctx context.Context, id int64, upd domain.BacklinkUpdate) error {
	updates := map[string]interface{}{}
	if upd.Status != nil {
		updates["status"] = *upd.Status
	}
	if upd.AnchorText != nil {
		updates["anchor_text"] = *upd.AnchorText
	}
	if upd.TargetURL != nil {
		updates["target_url"] = *upd.TargetURL
	}
	if upd.PlacementDate != nil {
		updates["placement_date"] = *upd.PlacementDate
	}
	if upd.RemovalDate != nil {
		updates["removal_date"] = *upd.RemovalDate
	}
	if upd.Cost != nil {
		updates["cost"] = *upd.Cost
	}
	if upd.Notes != nil {
		updates["notes"] = *upd.Notes
	}
	updates["updated_at"] = time.Now()

	result := s.db.WithContext(ctx).Model(&domain.Backlink{}).
		Where("id = ?", id).
		Updates(updates)
	if result.Error != nil {
		s.log.Error("failed to update backlink", zap.Int64("backlink_id", id), zap.Error(result.Error))
		return fmt.Errorf("failed to update backlink: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotFound
	}

	return nil
}

// DeleteBacklink физически удаляет запись размещения.
func (s *PostgresStorage) DeleteBacklink(ctx context.Context, id int64) error {
	result := s.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Backlink{})
	if result.Error != nil {
		s.log.Error("failed to delete backlink", zap.Int64("backlink_id", id), zap.Error(result.Error))
		return fmt.Errorf("failed to delete backlink: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotFound
	}

	s.log.Info("deleted backlink", zap.Int64("backlink_id", id))
	return nil
}
