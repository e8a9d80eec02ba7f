package report

import (
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"
)

// WriteWorkbook exports the build outputs as a review workbook with one
// sheet per collection plus a per-region top-ingredient sheet. Nil numerics
// leave their cells empty; an empty cell and a zero are different facts.
func WriteWorkbook(path string, out *Outputs) error {
	f := excelize.NewFile()
	f.SetSheetName("Sheet1", "Joined")
	writeJoinedSheet(f, out)
	f.NewSheet("Incidence")
	writeIncidenceSheet(f, out)
	f.NewSheet("Cuisine")
	writeCuisineSheet(f, out)
	f.NewSheet("Top Ingredients")
	writeIngredientSheet(f, out)
	f.SetActiveSheet(0)
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}

func setHeaders(f *excelize.File, sheet string, headers []string, width float64) {
	for i, h := range headers {
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetCellValue(sheet, col+"1", h)
		f.SetColWidth(sheet, col, col, width)
	}
}

func setFloat(f *excelize.File, sheet string, col, row int, v *float64) {
	if v == nil {
		return
	}
	cell, _ := excelize.CoordinatesToCellName(col, row)
	f.SetCellValue(sheet, cell, *v)
}

func writeJoinedSheet(f *excelize.File, out *Outputs) {
	const sheet = "Joined"
	headers := []string{"Region", "Dishes", "Veg Share", "Sweet Share"}
	for _, y := range out.Years {
		headers = append(headers, fmt.Sprintf("Rate %d", y))
	}
	headers = append(headers, "CAGR")
	setHeaders(f, sheet, headers, 16)
	f.SetColWidth(sheet, "A", "A", 28)
	for i := range out.Joined {
		jr := &out.Joined[i]
		row := i + 2
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), jr.Region)
		col := 2
		if jr.Cuisine != nil {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			f.SetCellValue(sheet, cell, jr.Cuisine.DishCount)
			setFloat(f, sheet, col+1, row, jr.Cuisine.VegPct)
			setFloat(f, sheet, col+2, row, jr.Cuisine.SweetPct)
		}
		col += 3
		for _, y := range out.Years {
			if jr.Cancer != nil {
				setFloat(f, sheet, col, row, jr.Cancer.RatesPer100k[strconv.Itoa(y)])
			}
			col++
		}
		if jr.Cancer != nil {
			setFloat(f, sheet, col, row, jr.Cancer.CAGR)
		}
	}
}

func writeIncidenceSheet(f *excelize.File, out *Outputs) {
	const sheet = "Incidence"
	headers := []string{"Region"}
	for _, y := range out.Years {
		headers = append(headers, fmt.Sprintf("Cases %d", y))
	}
	for _, y := range out.Years {
		headers = append(headers, fmt.Sprintf("Rate %d", y))
	}
	headers = append(headers, "CAGR")
	setHeaders(f, sheet, headers, 14)
	f.SetColWidth(sheet, "A", "A", 28)
	for i := range out.Incidence {
		rec := &out.Incidence[i]
		row := i + 2
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), rec.Region)
		col := 2
		for _, y := range out.Years {
			setFloat(f, sheet, col, row, rec.Counts[strconv.Itoa(y)])
			col++
		}
		for _, y := range out.Years {
			setFloat(f, sheet, col, row, rec.RatesPer100k[strconv.Itoa(y)])
			col++
		}
		setFloat(f, sheet, col, row, rec.CAGR)
	}
}

func writeCuisineSheet(f *excelize.File, out *Outputs) {
	const sheet = "Cuisine"
	setHeaders(f, sheet, []string{
		"Region", "Dishes", "Veg Share", "Sweet Share", "Lentil Share",
		"Red Meat Share", "Poultry Share", "Fish Share", "Turmeric Share",
		"Avg Prep Min", "Avg Cook Min",
	}, 14)
	f.SetColWidth(sheet, "A", "A", 28)
	for i := range out.Cuisine {
		cs := &out.Cuisine[i]
		row := i + 2
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), cs.Region)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), cs.DishCount)
		for j, v := range []*float64{
			cs.VegPct, cs.SweetPct, cs.LentilPct, cs.RedMeatPct,
			cs.PoultryPct, cs.FishPct, cs.TurmericPct,
			cs.AvgPrepMinutes, cs.AvgCookMinutes,
		} {
			setFloat(f, sheet, j+3, row, v)
		}
	}
}

const ingredientSheetTop = 10

func writeIngredientSheet(f *excelize.File, out *Outputs) {
	const sheet = "Top Ingredients"
	setHeaders(f, sheet, []string{"Region", "Ingredient", "Dishes Mentioning"}, 22)
	row := 2
	for i := range out.Cuisine {
		cs := &out.Cuisine[i]
		tops := cs.Ingredients
		if len(tops) > ingredientSheetTop {
			tops = tops[:ingredientSheetTop]
		}
		for _, ic := range tops {
			f.SetCellValue(sheet, fmt.Sprintf("A%d", row), cs.Region)
			f.SetCellValue(sheet, fmt.Sprintf("B%d", row), ic.Name)
			f.SetCellValue(sheet, fmt.Sprintf("C%d", row), ic.Count)
			row++
		}
	}
}
