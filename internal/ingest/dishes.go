package ingest

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rhicksrad/India/internal/aggregate"
	"github.com/rhicksrad/India/internal/classify"
)

// DishRow mirrors one row of the curated dish table. Cells are kept
// as read; interpretation happens in Observation.
type DishRow struct {
	Name        string
	Ingredients string
	Diet        string
	PrepTime    string
	CookTime    string
	Flavor      string
	Course      string
	State       string
	Zone        string
}

// ReadDishes parses the curated dish table.
func ReadDishes(path string) ([]DishRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dish table: %w", err)
	}
	defer f.Close()

	r := newReader(f)
	header, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("dish table %s is empty", filepath.Base(path))
		}
		return nil, fmt.Errorf("read header: %w", err)
	}
	idx := headerIndex(header)
	if col(idx, "state") < 0 {
		return nil, fmt.Errorf("dish table %s has no state column", filepath.Base(path))
	}

	var rows []DishRow
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
		rows = append(rows, DishRow{
			Name:        field(rec, col(idx, "name")),
			Ingredients: field(rec, col(idx, "ingredients")),
			Diet:        field(rec, col(idx, "diet")),
			PrepTime:    field(rec, col(idx, "prep_time")),
			CookTime:    field(rec, col(idx, "cook_time")),
			Flavor:      field(rec, col(idx, "flavor_profile")),
			Course:      field(rec, col(idx, "course")),
			State:       field(rec, col(idx, "state")),
			Zone:        field(rec, col(idx, "region")),
		})
	}
	return rows, nil
}

// Observation maps the row onto the aggregator's observation type,
// grouped by the state cell. The flavor label joins the course cell so
// a "sweet" flavor profile counts as course-level evidence, and -1
// timing cells become missing values.
func (d DishRow) Observation() (string, aggregate.Observation) {
	course := textCell(d.Course)
	if flavor := textCell(d.Flavor); flavor != "" {
		course = strings.TrimSpace(course + " " + flavor)
	}
	ingredients := textCell(d.Ingredients)
	obs := aggregate.Observation{
		Name:           textCell(d.Name),
		Course:         course,
		Diet:           classify.ClassifyDiet(textCell(d.Diet)),
		Tokens:         classify.TokenizeIngredients(ingredients),
		RawIngredients: ingredients,
		PrepMinutes:    parseMinutes(d.PrepTime),
		CookMinutes:    parseMinutes(d.CookTime),
	}
	return textCell(d.State), obs
}

// FoldDishes feeds every dish row into the aggregator.
func FoldDishes(agg *aggregate.CuisineAggregator, rows []DishRow) {
	for _, d := range rows {
		region, obs := d.Observation()
		agg.Add(region, obs)
	}
}
