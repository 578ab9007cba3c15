package database

import (
	"time"
)

// BandFractionRecord is one computed band fraction from one run.
type BandFractionRecord struct {
	ID          int       `gorm:"primaryKey;autoIncrement;column:id"`
	RunAt       time.Time `gorm:"column:run_at;not null"`
	Filter      string    `gorm:"column:filter;not null"`
	Mode        string    `gorm:"column:mode;not null"`
	Threshold   float64   `gorm:"column:threshold;not null"`
	Temperature float64   `gorm:"column:temperature;not null"`
	RangeStart  float64   `gorm:"column:range_start;not null"`
	RangeEnd    float64   `gorm:"column:range_end;not null"`
	Fraction    float64   `gorm:"column:fraction;not null"`
}

// TableName specifies the table name for BandFractionRecord
func (BandFractionRecord) TableName() string {
	return "band_fractions"
}
