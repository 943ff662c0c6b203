package models

import "time"

// WaterDay holds the cumulative intake for one calendar date. Callers
// compute the new total and upsert the whole row; amounts are never
// incremented in place.
type WaterDay struct {
	Date      string `gorm:"primaryKey"`
	Amount    int    `gorm:"not null;default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

const DateLayout = "2006-01-02"

func DateKey(value time.Time) string {
	return value.Format(DateLayout)
}
