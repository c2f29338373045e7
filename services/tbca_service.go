package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/lucas-hsi/melitusgym-sub000/models"

	"github.com/google/uuid"
)

// Namespace for deterministic remote food IDs: the same food name always
// maps to the same id across sessions and processes.
var tbcaIDNamespace = uuid.MustParse("8b1f3b46-6a1e-4a6e-9c6b-df52a8f2a701")

// TBCAService is the remote fallback food source. Its nutrient values are
// best-effort estimates; every item it returns carries Source remote so the
// UI can tell them apart from curated data.
type TBCAService struct {
	baseURL string
	client  *http.Client
}

func NewTBCAService() *TBCAService {
	base := os.Getenv("TBCA_BASE_URL")
	if base == "" {
		base = "https://api.tbca.net.br"
	}
	return &TBCAService{
		baseURL: base,
		client:  &http.Client{Timeout: 12 * time.Second},
	}
}

// Remote records carry at minimum a name; every nutrient is optional and
// stated per 100 g.
type tbcaSearchResponse struct {
	Results []struct {
		Name          string   `json:"name"`
		Category      string   `json:"category"`
		EnergyKcal    *float64 `json:"energy_kcal_100g"`
		EnergyKJ      *float64 `json:"energy_kj_100g"`
		Carbs         *float64 `json:"carbohydrates_100g"`
		Protein       *float64 `json:"proteins_100g"`
		Fat           *float64 `json:"fat_100g"`
		Fiber         *float64 `json:"fiber_100g"`
		Sugars        *float64 `json:"sugars_100g"`
		SodiumMg      *float64 `json:"sodium_mg_100g"`
		GlycemicIndex *float64 `json:"glycemic_index"`
	} `json:"results"`
}

// Search queries the TBCA composition API and maps its heterogeneous records
// into the uniform FoodItem shape.
func (s *TBCAService) Search(ctx context.Context, term string, limit int) ([]models.FoodItem, error) {
	if limit <= 0 {
		limit = 20
	}
	u := fmt.Sprintf("%s/v1/foods/search?q=%s&limit=%d",
		s.baseURL, url.QueryEscape(term), limit)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create TBCA request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "MelitusGym/1.0")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call TBCA search: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read TBCA response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("TBCA search API error %d: %s", resp.StatusCode, string(body))
	}

	var sr tbcaSearchResponse
	if err := json.Unmarshal(body, &sr); err != nil {
		return nil, fmt.Errorf("failed to parse TBCA JSON: %w", err)
	}

	items := make([]models.FoodItem, 0, len(sr.Results))
	for _, r := range sr.Results {
		if strings.TrimSpace(r.Name) == "" {
			continue
		}
		p := models.NutrientProfile{}
		put := func(key string, v *float64) {
			if v != nil {
				p[key] = *v
			}
		}
		put(models.NutrientEnergyKcal, r.EnergyKcal)
		put(models.NutrientEnergyKJ, r.EnergyKJ)
		put(models.NutrientCarbs, r.Carbs)
		put(models.NutrientProtein, r.Protein)
		put(models.NutrientFat, r.Fat)
		put(models.NutrientFiber, r.Fiber)
		put(models.NutrientSugars, r.Sugars)
		put(models.NutrientSodiumMg, r.SodiumMg)

		items = append(items, models.FoodItem{
			ID:               RemoteFoodID(r.Name),
			Source:           models.SourceRemote,
			Name:             r.Name,
			Category:         r.Category,
			NutrientsPer100g: p,
			GlycemicIndex:    r.GlycemicIndex,
		})
	}
	return items, nil
}

// RemoteFoodID synthesizes a stable id from the food name (UUIDv5), so
// repeated queries for the same name agree on identity.
func RemoteFoodID(name string) string {
	normalized := strings.ToLower(strings.TrimSpace(name))
	return "tbca-" + uuid.NewSHA1(tbcaIDNamespace, []byte(normalized)).String()
}
