package ingest

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/rhicksrad/India/internal/aggregate"
)

// IncidenceRow is one region-year cell of the wide incidence table.
type IncidenceRow struct {
	Region string
	Year   int
	Count  *float64
}

// IncidenceTable is the parsed incidence source: the year columns found
// in the header and one row per region-year cell.
type IncidenceTable struct {
	Years []int
	Rows  []IncidenceRow
}

// ReadIncidence parses a wide incidence table. The first column carries
// the region label; every other header cell that parses as a year
// becomes a count column. Blank and dash cells stay nil rather than
// zero.
func ReadIncidence(path string) (*IncidenceTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open incidence table: %w", err)
	}
	defer f.Close()

	r := newReader(f)
	header, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("incidence table %s is empty", filepath.Base(path))
		}
		return nil, fmt.Errorf("read header: %w", err)
	}

	type yearCol struct {
		col  int
		year int
	}
	var yearCols []yearCol
	for i := 1; i < len(header); i++ {
		y, err := strconv.Atoi(strings.TrimSpace(header[i]))
		if err != nil || y < 1900 || y > 2200 {
			continue
		}
		yearCols = append(yearCols, yearCol{col: i, year: y})
	}
	if len(yearCols) == 0 {
		return nil, fmt.Errorf("incidence table %s has no year columns", filepath.Base(path))
	}

	tbl := &IncidenceTable{Years: make([]int, 0, len(yearCols))}
	for _, yc := range yearCols {
		tbl.Years = append(tbl.Years, yc.year)
	}
	sort.Ints(tbl.Years)

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
		region := field(rec, 0)
		for _, yc := range yearCols {
			tbl.Rows = append(tbl.Rows, IncidenceRow{
				Region: region,
				Year:   yc.year,
				Count:  parseCount(field(rec, yc.col)),
			})
		}
	}
	return tbl, nil
}

// FoldIncidence feeds every parsed cell into the aggregator.
func FoldIncidence(agg *aggregate.IncidenceAggregator, tbl *IncidenceTable) {
	for _, r := range tbl.Rows {
		agg.Add(r.Region, r.Year, r.Count)
	}
}
