package postgres

import (
	"Backtrack-Backend/internal/domain"
	"Backtrack-Backend/internal/repository"
	"context"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ListWebsiteInfo возвращает все дополнительные карточки сайтов.
func (s *PostgresStorage) ListWebsiteInfo(ctx context.Context) ([]*domain.WebsiteExtendedInfo, error) {
	var infos []*domain.WebsiteExtendedInfo

	err := s.db.WithContext(ctx).Order("website_id").Find(&infos).Error
	if err != nil {
		s.log.Error("failed to list website info", zap.Error(err))
		return nil, fmt.Errorf("failed to list website info: %w", err)
	}

	return infos, nil
}

// GetWebsiteInfo получает карточку по ID сайта.
func (s *PostgresStorage) GetWebsiteInfo(ctx context.Context, websiteID int64) (*domain.WebsiteExtendedInfo, error) {
	var info domain.WebsiteExtendedInfo

	err := s.db.WithContext(ctx).Where("website_id = ?", websiteID).First(&info).Error
	if err == gorm.ErrRecordNotFound {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		s.log.Error("failed to get website info", zap.Int64("website_id", websiteID), zap.Error(err))
		return nil, fmt.Errorf("failed to get website info: %w", err)
	}

	return &info, nil
}

// SaveWebsiteInfo создает или обновляет карточку (upsert по website_id).
func (s *PostgresStorage) SaveWebsiteInfo(ctx context.Context, info *domain.WebsiteExtendedInfo) error {
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "website_id"}},
			UpdateAll: true,
		}).
		Create(info).Error
	if err != nil {
		s.log.Error("failed to save website info", zap.Int64("website_id", info.WebsiteID), zap.Error(err))
		return fmt.Errorf("failed to save website info: %w", err)
	}

	s.log.Info("saved website info", zap.Int64("website_id", info.WebsiteID))
	return nil
}

// DeleteWebsiteInfo физически удаляет карточку сайта.
func (s *PostgresStorage) DeleteWebsiteInfo(ctx context.Context, websiteID int64) error {
	result := s.db.WithContext(ctx).Where("website_id = ?", websiteID).Delete(&domain.WebsiteExtendedInfo{})
	if result.Error != nil {
		s.log.Error("failed to delete website info", zap.Int64("website_id", websiteID), zap.Error(result.Error))
		return fmt.Errorf("failed to delete website info: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotFound
	}

	return nil
}
