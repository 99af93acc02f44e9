package postgres

import (
	"Backtrack-Backend/internal/domain"
	"Backtrack-Backend/internal/repository"
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Счетчики размещений по каждому ресурсу.
const resourceStatsSelect = `resources.*,
COUNT(b.id) AS backlink_count,
COUNT(CASE WHEN b.status = 'live' THEN 1 END) AS live_backlinks`

// resourceFilterScope опускает критерии фильтра в условия WHERE.
// Один и тот же scope применяется и к count-запросу, и к запросу данных,
// чтобы total и страница соответствовали одному предикату.
func resourceFilterScope(f repository.ResourceFilter) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		db = db.Where("resources.is_active = ?", true)
		if f.Category != "" {
			db = db.Where("resources.category = ?", f.Category)
		}
		if f.Search != "" {
			// LOWER + LIKE вместо ILIKE: одинаковая семантика
			// в PostgreSQL и в тестовом sqlite
			pattern := "%" + strings.ToLower(f.Search) + "%"
			db = db.Where("(LOWER(resources.domain) LIKE ? OR LOWER(resources.url) LIKE ?)", pattern, pattern)
		}
		return db
	}
}

// ListResources возвращает страницу ресурсов по фильтру вместе с общим
// количеством подходящих строк. Страница за пределами выборки — это
// пустой результат, а не ошибка.
func (s *PostgresStorage) ListResources(ctx context.Context, filter repository.ResourceFilter) ([]*domain.ResourceWithStats, int64, error) {
	filter.Normalize()
	scope := resourceFilterScope(filter)

	var total int64
	err := s.db.WithContext(ctx).Model(&domain.Resource{}).Scopes(scope).Count(&total).Error
	if err != nil {
		s.log.Error("failed to count resources", zap.Error(err))
		return nil, 0, fmt.Errorf("failed to count resources: %w", err)
	}

	var resources []*domain.ResourceWithStats
	err = s.db.WithContext(ctx).
		Model(&domain.Resource{}).
		Select(resourceStatsSelect).
		Joins("LEFT JOIN backlinks b ON b.resource_id = resources.id").
		Scopes(scope).
		Group("resources.id").
		Order("resources.domain_authority DESC, resources.domain").
		Limit(filter.Limit).
		Offset(filter.Offset()).
		Scan(&resources).Error
	if err != nil {
		s.log.Error("failed to list resources", zap.Error(err))
		return nil, 0, fmt.Errorf("failed to list resources: %w", err)
	}

	return resources, total, nil
}

// GetResource получает активный ресурс по ID вместе со счетчиками.
func (s *PostgresStorage) GetResource(ctx context.Context, id int64) (*domain.ResourceWithStats, error) {
	var resources []*domain.ResourceWithStats

	err := s.db.WithContext(ctx).
		Model(&domain.Resource{}).
		Select(resourceStatsSelect).
		Joins("LEFT JOIN backlinks b ON b.resource_id = resources.id").
		Where("resources.id = ? AND resources.is_active = ?", id, true).
		Group("resources.id").
		Scan(&resources).Error
	if err != nil {
		s.log.Error("failed to get resource", zap.Int64("resource_id", id), zap.Error(err))
		return nil, fmt.Errorf("failed to get resource: %w", err)
	}
	if len(resources) == 0 {
		return nil, repository.ErrNotFound
	}

	return resources[0], nil
}

// CreateResource сохраняет новый ресурс.
func (s *PostgresStorage) CreateResource(ctx context.Context, resource *domain.Resource) error {
	resource.Domain = domain.NormalizeDomain(resource.Domain)

	// Проверяем, не занят ли домен
	var count int64
	err := s.db.WithContext(ctx).Model(&domain.Resource{}).
		Where("LOWER(domain) = ?", resource.Domain).Count(&count).Error
	if err != nil {
		s.log.Error("failed to check resource domain", zap.String("domain", resource.Domain), zap.Error(err))
		return fmt.Errorf("failed to check domain: %w", err)
	}
	if count > 0 {
		return repository.ErrDomainExists
	}

	if err := s.db.WithContext(ctx).Create(resource).Error; err != nil {
		if isUniqueViolation(err) {
			return repository.ErrDomainExists
		}
		s.log.Error("failed to create resource", zap.String("domain", resource.Domain), zap.Error(err))
		return fmt.Errorf("failed to create resource: %w", err)
	}

	s.log.Info("created resource", zap.Int64("resource_id", resource.ID), zap.String("domain", resource.Domain))
	return nil
}

// UpdateResource частично обновляет ресурс.
func (s *PostgresStorage) UpdateResource(ctx context.Context, id int64, upd domain.ResourceUpdate) (*domain.Resource, error) {
	updates := map[string]interface{}{}
	if upd.Domain != nil {
		normalized := domain.NormalizeDomain(*upd.Domain)

		var count int64
		err := s.db.WithContext(ctx).Model(&domain.Resource{}).
			Where("LOWER(domain) = ? AND id <> ?", normalized, id).Count(&count).Error
		if err != nil {
			return nil, fmt.Errorf("failed to check domain: %w", err)
		}
		if count > 0 {
			return nil, repository.ErrDomainExists
		}
		updates["domain"] = normalized
	}
	if upd.URL != nil {
		updates["url"] = *upd.URL
	}
	if upd.ContactEmail != nil {
		updates["contact_email"] = *upd.ContactEmail
	}
	if upd.DomainAuthority != nil {
		updates["domain_authority"] = *upd.DomainAuthority
	}
	if upd.Category != nil {
		updates["category"] = *upd.Category
	}
	if upd.Cost != nil {
		updates["cost"] = *upd.Cost
	}
	if upd.Notes != nil {
		updates["notes"] = *upd.Notes
	}
	updates["updated_at"] = time.Now()

	result := s.db.WithContext(ctx).Model(&domain.Resource{}).
		Where("id = ? AND is_active = ?", id, true).
		Updates(updates)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return nil, repository.ErrDomainExists
		}
		s.log.Error("failed to update resource", zap.Int64("resource_id", id), zap.Error(result.Error))
		return nil, fmt.Errorf("failed to update resource: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrNotFound
	}

	var resource domain.Resource
	if err := s.db.WithContext(ctx).First(&resource, id).Error; err != nil {
		return nil, fmt.Errorf("failed to reload resource: %w", err)
	}
	return &resource, nil
}

// DeleteResource удаляет ресурс каскадно: сначала физически удаляются
// все его размещения, затем сам ресурс мягко деактивируется. Обе
// операции выполняются в одной транзакции; если ресурс уже удален,
// транзакция откатывается целиком и размещения остаются нетронутыми.
// Возвращает количество удаленных размещений.
func (s *PostgresStorage) DeleteResource(ctx context.Context, id int64) (int64, error) {
	var removed int64

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		del := tx.Where("resource_id = ?", id).Delete(&domain.Backlink{})
		if del.Error != nil {
			return fmt.Errorf("failed to delete backlinks: %w", del.Error)
		}
		removed = del.RowsAffected

		upd := tx.Model(&domain.Resource{}).
			Where("id = ? AND is_active = ?", id, true).
			Updates(map[string]interface{}{"is_active": false, "updated_at": time.Now()})
		if upd.Error != nil {
			return fmt.Errorf("failed to deactivate resource: %w", upd.Error)
		}
		if upd.RowsAffected == 0 {
			return repository.ErrNotFound
		}
		return nil
	})
	if err != nil {
		if err != repository.ErrNotFound {
			s.log.Error("failed to delete resource", zap.Int64("resource_id", id), zap.Error(err))
		}
		return 0, err
	}

	s.log.Info("deleted resource",
		zap.Int64("resource_id", id),
		zap.Int64("removed_backlinks", removed))
	return removed, nil
}
