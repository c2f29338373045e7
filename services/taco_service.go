package services

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/lucas-hsi/melitusgym-sub000/models"
	"github.com/lucas-hsi/melitusgym-sub000/utils"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TacoService is the local food source: the curated TACO composition table.
// Treated as always-available and low-latency; its answers take precedence
// over any remote estimate.
type TacoService struct {
	db *gorm.DB
}

func NewTacoService(db *gorm.DB) *TacoService {
	return &TacoService{db: db}
}

// Search matches food names case-insensitively. Results come back already
// in the uniform FoodItem shape with Source set to local.
func (s *TacoService) Search(ctx context.Context, term string, limit int) ([]models.FoodItem, error) {
	if limit <= 0 {
		limit = 20
	}
	var rows []models.TACOFood
	err := s.db.WithContext(ctx).
		Where("name_pt ILIKE ?", "%"+strings.TrimSpace(term)+"%").
		Order("name_pt ASC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("taco search failed: %w", err)
	}

	items := make([]models.FoodItem, 0, len(rows))
	for _, r := range rows {
		items = append(items, tacoToFoodItem(r))
	}
	return items, nil
}

// Get fetches a single catalog entry by its numeric id.
func (s *TacoService) Get(ctx context.Context, id uint) (*models.FoodItem, error) {
	var row models.TACOFood
	if err := s.db.WithContext(ctx).First(&row, id).Error; err != nil {
		return nil, err
	}
	item := tacoToFoodItem(row)
	return &item, nil
}

func tacoToFoodItem(f models.TACOFood) models.FoodItem {
	p := models.NutrientProfile{}
	put := func(key string, v *float64) {
		if v != nil {
			p[key] = *v
		}
	}
	put(models.NutrientEnergyKcal, f.EnergyKcal100g)
	put(models.NutrientEnergyKJ, f.EnergyKJ100g)
	put(models.NutrientCarbs, f.Carbs100g)
	put(models.NutrientProtein, f.Protein100g)
	put(models.NutrientFat, f.Fat100g)
	put(models.NutrientFiber, f.Fiber100g)
	put(models.NutrientSugars, f.Sugars100g)
	put(models.NutrientSodiumMg, f.SodiumMg100g)

	// TACO sometimes only records kJ; backfill kcal so downstream math has it.
	if _, ok := p[models.NutrientEnergyKcal]; !ok {
		if kj, ok := p[models.NutrientEnergyKJ]; ok {
			p[models.NutrientEnergyKcal] = utils.Round2(utils.KJToKcal(kj))
		}
	}

	return models.FoodItem{
		ID:               fmt.Sprintf("taco-%d", f.ID),
		Source:           models.SourceLocal,
		Name:             f.NamePT,
		Category:         f.CategoryPT,
		NutrientsPer100g: p,
		GlycemicIndex:    f.GlycemicIndex,
	}
}

// IngestCSV loads the TACO export (header row expected:
// name,category,energy_kcal,energy_kj,carbohydrates,proteins,fat,fiber,sugars,sodium_mg,glycemic_index)
// upserting by food name so re-running the seed is idempotent.
func (s *TacoService) IngestCSV(r io.Reader) (int, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return 0, fmt.Errorf("failed to read TACO CSV header: %w", err)
	}
	col := map[string]int{}
	for i, h := range header {
		col[strings.TrimSpace(strings.ToLower(h))] = i
	}
	if _, ok := col["name"]; !ok {
		return 0, fmt.Errorf("TACO CSV missing 'name' column")
	}

	parse := func(rec []string, name string) *float64 {
		i, ok := col[name]
		if !ok || i >= len(rec) {
			return nil
		}
		raw := strings.TrimSpace(strings.ReplaceAll(rec[i], ",", "."))
		if raw == "" || raw == "NA" || raw == "Tr" {
			return nil
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil
		}
		return &v
	}

	count := 0
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return count, fmt.Errorf("failed to read TACO CSV row: %w", err)
		}
		name := strings.TrimSpace(rec[col["name"]])
		if name == "" {
			continue
		}

		food := models.TACOFood{
			NamePT:         name,
			EnergyKcal100g: parse(rec, "energy_kcal"),
			EnergyKJ100g:   parse(rec, "energy_kj"),
			Carbs100g:      parse(rec, "carbohydrates"),
			Protein100g:    parse(rec, "proteins"),
			Fat100g:        parse(rec, "fat"),
			Fiber100g:      parse(rec, "fiber"),
			Sugars100g:     parse(rec, "sugars"),
			SodiumMg100g:   parse(rec, "sodium_mg"),
			GlycemicIndex:  parse(rec, "glycemic_index"),
		}
		if i, ok := col["category"]; ok && i < len(rec) {
			food.CategoryPT = strings.TrimSpace(rec[i])
		}

		err = s.db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name_pt"}},
			UpdateAll: true,
		}).Create(&food).Error
		if err != nil {
			return count, fmt.Errorf("failed to upsert %q: %w", name, err)
		}
		count++
	}
	return count, nil
}
