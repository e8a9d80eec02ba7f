package ingest

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rhicksrad/India/internal/aggregate"
	"github.com/rhicksrad/India/internal/classify"
)

// RecipeRow mirrors one row of the recipe-portal table. Its region is
// not a column; it must be inferred from the free-text cuisine label.
type RecipeRow struct {
	Name        string
	Ingredients string
	PrepMinutes string
	CookMinutes string
	Servings    string
	Cuisine     string
	Course      string
	Diet        string
}

// ReadRecipes parses the recipe-portal table. The portal export carries
// translated name and ingredient columns alongside the originals;
// prefer those when present.
func ReadRecipes(path string) ([]RecipeRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open recipe table: %w", err)
	}
	defer f.Close()

	r := newReader(f)
	header, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("recipe table %s is empty", filepath.Base(path))
		}
		return nil, fmt.Errorf("read header: %w", err)
	}
	idx := headerIndex(header)
	if col(idx, "cuisine") < 0 {
		return nil, fmt.Errorf("recipe table %s has no cuisine column", filepath.Base(path))
	}
	nameCol := col(idx, "translatedrecipename")
	if nameCol < 0 {
		nameCol = col(idx, "recipename")
	}
	ingCol := col(idx, "translatedingredients")
	if ingCol < 0 {
		ingCol = col(idx, "ingredients")
	}

	var rows []RecipeRow
	row := 1
	for {
		rec, err := r.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("read row %d: %w", row+1, err)
		}
		row++
		rows = append(rows, RecipeRow{
			Name:        field(rec, nameCol),
			Ingredients: field(rec, ingCol),
			PrepMinutes: field(rec, col(idx, "preptimeinmins")),
			CookMinutes: field(rec, col(idx, "cooktimeinmins")),
			Servings:    field(rec, col(idx, "servings")),
			Cuisine:     field(rec, col(idx, "cuisine")),
			Course:      field(rec, col(idx, "course")),
			Diet:        field(rec, col(idx, "diet")),
		})
	}
	return rows, nil
}

// Observation resolves the cuisine label to a region and maps the row.
// It reports false when the label resolves to no known region.
func (rr RecipeRow) Observation() (string, aggregate.Observation, bool) {
	region, ok := classify.InferRegion(rr.Cuisine)
	if !ok {
		return "", aggregate.Observation{}, false
	}
	ingredients := textCell(rr.Ingredients)
	obs := aggregate.Observation{
		Name:           textCell(rr.Name),
		Course:         textCell(rr.Course),
		Diet:           classify.ClassifyDiet(textCell(rr.Diet)),
		Tokens:         classify.TokenizeIngredients(ingredients),
		RawIngredients: ingredients,
		PrepMinutes:    parseMinutes(rr.PrepMinutes),
		CookMinutes:    parseMinutes(rr.CookMinutes),
	}
	return region, obs, true
}

// FoldRecipes feeds recipe rows into the aggregator, dropping rows
// whose cuisine label maps to no region. It reports how many rows were
// dropped that way.
func FoldRecipes(agg *aggregate.CuisineAggregator, rows []RecipeRow) int {
	unresolved := 0
	for _, rr := range rows {
		region, obs, ok := rr.Observation()
		if !ok {
			unresolved++
			continue
		}
		agg.Add(region, obs)
	}
	return unresolved
}
