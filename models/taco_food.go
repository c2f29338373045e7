package models

import "gorm.io/gorm"

// A curated entry from the TACO table (Tabela Brasileira de Composição de
// Alimentos). Nutrients are per 100 g; nil means the table has no value.
type TACOFood struct {
	gorm.Model
	NamePT     string `gorm:"uniqueIndex;not null"`
	CategoryPT string

	EnergyKcal100g *float64
	EnergyKJ100g   *float64
	Carbs100g      *float64
	Protein100g    *float64
	Fat100g        *float64
	Fiber100g      *float64
	Sugars100g     *float64
	SodiumMg100g   *float64

	GlycemicIndex *float64
}
