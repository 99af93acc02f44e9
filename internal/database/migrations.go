package database

import (
	"Backtrack-Backend/internal/domain"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// AutoMigrate выполняет автоматические миграции для всех доменных моделей
func AutoMigrate(db *gorm.DB, log *zap.Logger) error {
	log.Info("starting database auto-migration")

	// Порядок миграций важен из-за внешних ключей
	models := []interface{}{
		&domain.WebsiteCategory{},          // Сначала справочники
		&domain.BacklinkStatusDefinition{}, // Статусы размещений
		&domain.Website{},                  // Целевые сайты
		&domain.Resource{},                 // Внешние каталоги
		&domain.Backlink{},                 // Размещения (зависят от сайтов и ресурсов)
		&domain.WebsiteExtendedInfo{},      // Дополнительные карточки сайтов
	}

	for i, model := range models {
		modelName := fmt.Sprintf("%T", model)
		log.Info("migrating model",
			zap.String("model", modelName),
			zap.Int("step", i+1),
			zap.Int("total", len(models)))

		if err := db.AutoMigrate(model); err != nil {
			log.Error("failed to migrate model",
				zap.String("model", modelName),
				zap.Error(err))
			return fmt.Errorf("failed to migrate model %s: %w", modelName, err)
		}
	}

	log.Info("database auto-migration completed successfully", zap.Int("migrated_models", len(models)))
	return nil
}

// SeedData заполняет справочники начальными данными.
// Справочники хранятся в БД, а не в памяти процесса: записи
// переживают рестарт и редактируются через общий CRUD-контракт.
func SeedData(db *gorm.DB, log *zap.Logger) error {
	log.Info("starting database seeding")

	if err := seedWebsiteCategories(db, log); err != nil {
		return err
	}
	if err := seedBacklinkStatuses(db, log); err != nil {
		return err
	}

	log.Info("database seeding completed successfully")
	return nil
}

func seedWebsiteCategories(db *gorm.DB, log *zap.Logger) error {
	var count int64
	db.Model(&domain.WebsiteCategory{}).Count(&count)
	if count > 0 {
		log.Info("website categories already exist, skipping seeding", zap.Int64("existing_count", count))
		return nil
	}

	categories := []domain.WebsiteCategory{
		{Name: "music", Description: "Music-related websites and platforms", Color: "#e11d48", IsActive: true},
		{Name: "photo", Description: "Photography and image-related services", Color: "#0ea5e9", IsActive: true},
		{Name: "text-to-speech", Description: "TTS and voice generation platforms", Color: "#8b5cf6", IsActive: true},
		{Name: "image-editing", Description: "Image editing and manipulation tools", Color: "#f59e0b", IsActive: true},
		{Name: "productivity", Description: "Productivity and workflow tools", Color: "#10b981", IsActive: true},
		{Name: "saas", Description: "Software as a Service platforms", Color: "#3b82f6", IsActive: true},
		{Name: "other", Description: "Other miscellaneous categories", Color: "#6b7280", IsActive: true},
	}

	if err := db.Create(&categories).Error; err != nil {
		log.Error("failed to seed website categories", zap.Error(err))
		return fmt.Errorf("failed to seed website categories: %w", err)
	}

	log.Info("website categories seeded", zap.Int("count", len(categories)))
	return nil
}

func seedBacklinkStatuses(db *gorm.DB, log *zap.Logger) error {
	var count int64
	db.Model(&domain.BacklinkStatusDefinition{}).Count(&count)
	if count > 0 {
		log.Info("backlink statuses already exist, skipping seeding", zap.Int64("existing_count", count))
		return nil
	}

	statuses := []domain.BacklinkStatusDefinition{
		{Name: domain.StatusPending, Description: "Backlink request is pending", Color: "#f59e0b", IsActive: true},
		{Name: domain.StatusRequested, Description: "Backlink has been requested", Color: "#3b82f6", IsActive: true},
		{Name: domain.StatusPlaced, Description: "Backlink has been placed but not yet live", Color: "#8b5cf6", IsActive: true},
		{Name: domain.StatusLive, Description: "Backlink is live and active", Color: "#10b981", IsActive: true},
		{Name: domain.StatusRemoved, Description: "Backlink has been removed", Color: "#ef4444", IsActive: true},
		{Name: domain.StatusRejected, Description: "Backlink request was rejected", Color: "#dc2626", IsActive: true},
	}

	if err := db.Create(&statuses).Error; err != nil {
		log.Error("failed to seed backlink statuses", zap.Error(err))
		return fmt.Errorf("failed to seed backlink statuses: %w", err)
	}

	log.Info("backlink statuses seeded", zap.Int("count", len(statuses)))
	return nil
}
