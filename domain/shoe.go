package domain

import (
	"gorm.io/datatypes"
)

// Plate technology values as they appear in the catalog.
const (
	PlateNone      = "none"
	PlateCarbon    = "carbon"
	PlateNylon     = "nylon"
	PlateComposite = "composite"
	PlatePebax     = "pebax"
)

// Category tags as they appear in the catalog.
const (
	CategoryRace  = "race"
	CategoryTempo = "tempo"
	CategoryDaily = "daily"
	CategoryEasy  = "easy"
	CategoryLong  = "long"
	CategoryTrail = "trail"
)

// CREATE TABLE public.shoes (
//     id         BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
//     brand      TEXT NOT NULL,
//     model      TEXT NOT NULL,
//     category   JSONB NOT NULL DEFAULT '[]',
//     price_usd  NUMERIC NOT NULL,
//     plate      TEXT NOT NULL DEFAULT 'none',
//     drop_mm    NUMERIC,
//     weight_g   NUMERIC
// );

// ShoeRecord is one catalog entry. Records are loaded once at startup and
// never mutated afterwards.
type ShoeRecord struct {
	ID       uint64                      `gorm:"primaryKey;autoIncrement" json:"-"`
	Brand    string                      `gorm:"column:brand;type:text" json:"brand"`
	Model    string                      `gorm:"column:model;type:text" json:"model"`
	Category datatypes.JSONSlice[string] `gorm:"column:category" json:"category"`
	PriceUSD float64                     `gorm:"column:price_usd;type:numeric" json:"price_usd"`
	Plate    string                      `gorm:"column:plate;type:text" json:"plate"`
	DropMM   *float64                    `gorm:"column:drop_mm;type:numeric" json:"drop_mm,omitempty"`
	WeightG  *float64                    `gorm:"column:weight_g;type:numeric" json:"weight_g,omitempty"`
}

func (ShoeRecord) TableName() string {
	return "shoes"
}

// Key is the catalog-wide identifier, also used to join market context.
func (s ShoeRecord) Key() string {
	return s.Brand + "_" + s.Model
}

func (s ShoeRecord) HasCategory(cat string) bool {
	for _, c := range s.Category {
		if c == cat {
			return true
		}
	}
	return false
}

func (s ShoeRecord) HasAnyCategory(cats ...string) bool {
	for _, c := range cats {
		if s.HasCategory(c) {
			return true
		}
	}
	return false
}

// PlateName returns the plate value with the catalog default applied.
func (s ShoeRecord) PlateName() string {
	if s.Plate == "" {
		return PlateNone
	}
	return s.Plate
}
