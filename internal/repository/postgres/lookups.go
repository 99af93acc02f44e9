package postgres

import (
	"Backtrack-Backend/internal/domain"
	"Backtrack-Backend/internal/repository"
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// --- Website categories ---

// ListWebsiteCategories возвращает активные категории сайтов.
func (s *PostgresStorage) ListWebsiteCategories(ctx context.Context) ([]*domain.WebsiteCategory, error) {
	var categories []*domain.WebsiteCategory

	err := s.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("id").
		Find(&categories).Error
	if err != nil {
		s.log.Error("failed to list website categories", zap.Error(err))
		return nil, fmt.Errorf("failed to list website categories: %w", err)
	}

	return categories, nil
}

// CreateWebsiteCategory создает справочную запись категории.
func (s *PostgresStorage) CreateWebsiteCategory(ctx context.Context, category *domain.WebsiteCategory) error {
	var count int64
	err := s.db.WithContext(ctx).Model(&domain.WebsiteCategory{}).
		Where("LOWER(name) = ? AND is_active = ?", category.Name, true).
		Count(&count).Error
	if err != nil {
		return fmt.Errorf("failed to check category name: %w", err)
	}
	if count > 0 {
		return repository.ErrNameExists
	}

	if err := s.db.WithContext(ctx).Create(category).Error; err != nil {
		if isUniqueViolation(err) {
			return repository.ErrNameExists
		}
		s.log.Error("failed to create website category", zap.String("name", category.Name), zap.Error(err))
		return fmt.Errorf("failed to create website category: %w", err)
	}

	s.log.Info("created website category", zap.Int64("category_id", category.ID), zap.String("name", category.Name))
	return nil
}

// UpdateWebsiteCategory частично обновляет справочную запись.
func (s *PostgresStorage) UpdateWebsiteCategory(ctx context.Context, id int64, upd domain.LookupUpdate) (*domain.WebsiteCategory, error) {
	updates := map[string]interface{}{}
	if upd.Name != nil {
		slug := domain.SlugifyName(*upd.Name)

		// Имя не должно быть занято другой активной записью
		var count int64
		err := s.db.WithContext(ctx).Model(&domain.WebsiteCategory{}).
			Where("LOWER(name) = ? AND id <> ? AND is_active = ?", slug, id, true).
			Count(&count).Error
		if err != nil {
			return nil, fmt.Errorf("failed to check category name: %w", err)
		}
		if count > 0 {
			return nil, repository.ErrNameExists
		}
		updates["name"] = slug
	}
	if upd.Description != nil {
		updates["description"] = *upd.Description
	}
	if upd.Color != nil {
		updates["color"] = *upd.Color
	}
	updates["updated_at"] = time.Now()

	result := s.db.WithContext(ctx).Model(&domain.WebsiteCategory{}).
		Where("id = ? AND is_active = ?", id, true).
		Updates(updates)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return nil, repository.ErrNameExists
		}
		s.log.Error("failed to update website category", zap.Int64("category_id", id), zap.Error(result.Error))
		return nil, fmt.Errorf("failed to update website category: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrNotFound
	}

	var category domain.WebsiteCategory
	if err := s.db.WithContext(ctx).First(&category, id).Error; err != nil {
		return nil, fmt.Errorf("failed to reload website category: %w", err)
	}
	return &category, nil
}

// DeleteWebsiteCategory мягко удаляет справочную запись.
func (s *PostgresStorage) DeleteWebsiteCategory(ctx context.Context, id int64) error {
	result := s.db.WithContext(ctx).Model(&domain.WebsiteCategory{}).
		Where("id = ? AND is_active = ?", id, true).
		Updates(map[string]interface{}{"is_active": false, "updated_at": time.Now()})
	if result.Error != nil {
		s.log.Error("failed to delete website category", zap.Int64("category_id", id), zap.Error(result.Error))
		return fmt.Errorf("failed to delete website category: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotFound
	}

	s.log.Info("deleted website category", zap.Int64("category_id", id))
	return nil
}

// --- Backlink statuses ---

// ListBacklinkStatuses возвращает активные определения статусов.
func (s *PostgresStorage) ListBacklinkStatuses(ctx context.Context) ([]*domain.BacklinkStatusDefinition, error) {
	var statuses []*domain.BacklinkStatusDefinition

	err := s.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("id").
		Find(&statuses).Error
	if err != nil {
		s.log.Error("failed to list backlink statuses", zap.Error(err))
		return nil, fmt.Errorf("failed to list backlink statuses: %w", err)
	}

	return statuses, nil
}

// CreateBacklinkStatus создает справочную запись статуса.
func (s *PostgresStorage) CreateBacklinkStatus(ctx context.Context, status *domain.BacklinkStatusDefinition) error {
	var count int64
	err := s.db.WithContext(ctx).Model(&domain.BacklinkStatusDefinition{}).
		Where("LOWER(name) = ? AND is_active = ?", status.Name, true).
		Count(&count).Error
	if err != nil {
		return fmt.Errorf("failed to check status name: %w", err)
	}
	if count > 0 {
		return repository.ErrNameExists
	}

	if err := s.db.WithContext(ctx).Create(status).Error; err != nil {
		if isUniqueViolation(err) {
			return repository.ErrNameExists
		}
		s.log.Error("failed to create backlink status", zap.String("name", status.Name), zap.Error(err))
		return fmt.Errorf("failed to create backlink status: %w", err)
	}

	s.log.Info("created backlink status", zap.Int64("status_id", status.ID), zap.String("name", status.Name))
	return nil
}

// UpdateBacklinkStatus частично обновляет справочную запись статуса.
func (s *PostgresStorage) UpdateBacklinkStatus(ctx context.Context, id int64, upd domain.LookupUpdate) (*domain.BacklinkStatusDefinition, error) {
	updates := map[string]interface{}{}
	if upd.Name != nil {
		name := domain.SlugifyName(*upd.Name)

		var count int64
		err := s.db.WithContext(ctx).Model(&domain.BacklinkStatusDefinition{}).
			Where("LOWER(name) = ? AND id <> ? AND is_active = ?", name, id, true).
			Count(&count).Error
		if err != nil {
			return nil, fmt.Errorf("failed to check status name: %w", err)
		}
		if count > 0 {
			return nil, repository.ErrNameExists
		}
		updates["name"] = name
	}
	if upd.Description != nil {
		updates["description"] = *upd.Description
	}
	if upd.Color != nil {
		updates["color"] = *upd.Color
	}
	updates["updated_at"] = time.Now()

	result := s.db.WithContext(ctx).Model(&domain.BacklinkStatusDefinition{}).
		Where("id = ? AND is_active = ?", id, true).
		Updates(updates)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return nil, repository.ErrNameExists
		}
		s.log.Error("failed to update backlink status", zap.Int64("status_id", id), zap.Error(result.Error))
		return nil, fmt.Errorf("failed to update backlink status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrNotFound
	}

	var status domain.BacklinkStatusDefinition
	if err := s.db.WithContext(ctx).First(&status, id).Error; err != nil {
		return nil, fmt.Errorf("failed to reload backlink status: %w", err)
	}
	return &status, nil
}

// DeleteBacklinkStatus мягко удаляет справочную запись статуса.
func (s *PostgresStorage) DeleteBacklinkStatus(ctx context.Context, id int64) error {
	result := s.db.WithContext(ctx).Model(&domain.BacklinkStatusDefinition{}).
		Where("id = ? AND is_active = ?", id, true).
		Updates(map[string]interface{}{"is_active": false, "updated_at": time.Now()})
	if result.Error != nil {
		s.log.Error("failed to delete backlink status", zap.Int64("status_id", id), zap.Error(result.Error))
		return fmt.Errorf("failed to delete backlink status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotFound
	}

	s.log.Info("deleted backlink status", zap.Int64("status_id", id))
	return nil
}
