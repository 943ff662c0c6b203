package db

import "gorm.io/gorm"

type Repositories struct {
	WaterDays   *WaterDayRepository
	Preferences *PreferenceRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		WaterDays:   NewWaterDayRepository(database),
		Preferences: NewPreferenceRepository(database),
	}
}
