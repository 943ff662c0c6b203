package db

import (
	"github.com/patrykmns/droply/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type WaterDayRepository struct {
	database *gorm.DB
}

func NewWaterDayRepository(database *gorm.DB) *WaterDayRepository {
	return &WaterDayRepository{database: database}
}

func (repo *WaterDayRepository) FindByDate(date string) (models.WaterDay, bool, error) {
	entry := models.WaterDay{}
	result := repo.database.Where("date = ?", date).Limit(1).Find(&entry)
	if result.Error != nil {
		return models.WaterDay{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.WaterDay{}, false, nil
	}
	return entry, true, nil
}

func (repo *WaterDayRepository) ListRecent(limit int) ([]models.WaterDay, error) {
	days := make([]models.WaterDay, 0)
	if err := repo.database.Order("date DESC").Limit(limit).Find(&days).Error; err != nil {
		return nil, err
	}
	return days, nil
}

func (repo *WaterDayRepository) ListAll() ([]models.WaterDay, error) {
	days := make([]models.WaterDay, 0)
	if err := repo.database.Order("date DESC").Find(&days).Error; err != nil {
		return nil, err
	}
	return days, nil
}

// Upsert replaces the whole row for the date, matching the
// insert-or-replace semantics of the daily record store.
func (repo *WaterDayRepository) Upsert(entry *models.WaterDay) error {
	return repo.database.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{"amount", "updated_at"}),
	}).Create(entry).Error
}
