package services

import (
	"fmt"

	"github.com/lucas-hsi/melitusgym-sub000/models"
	"github.com/lucas-hsi/melitusgym-sub000/utils"

	"github.com/google/uuid"
)

// DishLine pairs a resolved food with a portion. Nutrients is derived from
// the item's per-100g profile and is only ever changed by re-deriving after
// a gram adjustment.
type DishLine struct {
	LineID    string                 `json:"line_id"`
	Item      models.FoodItem        `json:"item"`
	Grams     float64                `json:"grams"`
	Nutrients models.NutrientProfile `json:"nutrients"`
}

// Dish is an immutable snapshot of the meal being composed. Every operation
// returns a new value; callers replace their copy wholesale, which keeps the
// totals invariant trivially intact and needs no locking.
type Dish struct {
	Lines []DishLine `json:"lines"`
}

// AddLine normalizes the item for the requested grams and appends a new
// line. Invalid grams reject without touching the dish.
func (d Dish) AddLine(item models.FoodItem, grams float64) (Dish, error) {
	nutrients, err := utils.NormalizePortion(item.NutrientsPer100g, grams)
	if err != nil {
		return d, err
	}
	line := DishLine{
		LineID:    uuid.NewString(),
		Item:      item,
		Grams:     grams,
		Nutrients: nutrients,
	}
	out := d.clone()
	out.Lines = append(out.Lines, line)
	return out, nil
}

// RemoveLine drops the line with the given id. Other lines are untouched;
// only the aggregate total changes.
func (d Dish) RemoveLine(lineID string) Dish {
	out := Dish{Lines: make([]DishLine, 0, len(d.Lines))}
	for _, l := range d.Lines {
		if l.LineID != lineID {
			out.Lines = append(out.Lines, l)
		}
	}
	return out
}

// AdjustGrams shifts one line's portion by delta, clamping at zero, and
// re-normalizes that line only. A line clamped to zero keeps an empty
// profile until adjusted back up or removed.
func (d Dish) AdjustGrams(lineID string, delta float64) (Dish, error) {
	out := d.clone()
	for i, l := range out.Lines {
		if l.LineID != lineID {
			continue
		}
		grams := l.Grams + delta
		if grams < 0 {
			grams = 0
		}
		if grams == 0 {
			out.Lines[i].Grams = 0
			out.Lines[i].Nutrients = models.NutrientProfile{}
			return out, nil
		}
		nutrients, err := utils.NormalizePortion(l.Item.NutrientsPer100g, grams)
		if err != nil {
			return d, err
		}
		out.Lines[i].Grams = grams
		out.Lines[i].Nutrients = nutrients
		return out, nil
	}
	return d, fmt.Errorf("no dish line with id %s", lineID)
}

// Totals recomputes the aggregate from the full line set on every call.
// Never cached: an incrementally patched total can drift from its lines.
func (d Dish) Totals() models.NutrientProfile {
	totals := models.NutrientProfile{}
	for _, l := range d.Lines {
		for k, v := range l.Nutrients {
			totals[k] = utils.Round2(totals[k] + v)
		}
	}
	return totals
}

func (d Dish) clone() Dish {
	out := Dish{Lines: make([]DishLine, len(d.Lines))}
	copy(out.Lines, d.Lines)
	for i := range out.Lines {
		out.Lines[i].Nutrients = out.Lines[i].Nutrients.Clone()
	}
	return out
}
