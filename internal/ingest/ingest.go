// Package ingest reads the three source tables and maps their rows onto
// the aggregator's observation type. Readers locate columns by header
// name so reordered exports still load, and keep every row: the rules
// for dropping bad regions live with the aggregators, not here.
package ingest

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"
)

// missingSentinel marks unknown cells in the dish table, both text and
// numeric columns.
const missingSentinel = "-1"

func newReader(r io.Reader) *csv.Reader {
	cr := csv.NewReader(r)
	cr.ReuseRecord = true
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	return cr
}

// headerIndex maps lowercased, trimmed header names to their column.
func headerIndex(header []string) map[string]int {
	idx := make(map[string]int, len(header))
	for i, h := range header {
		idx[strings.ToLower(strings.TrimSpace(h))] = i
	}
	return idx
}

// col returns the column index for name, or -1 when the header lacks it.
func col(idx map[string]int, name string) int {
	if i, ok := idx[name]; ok {
		return i
	}
	return -1
}

// field returns the trimmed cell at c, or "" when the row is short or
// the column absent.
func field(rec []string, c int) string {
	if c < 0 || c >= len(rec) {
		return ""
	}
	return strings.TrimSpace(rec[c])
}

// cellMissing reports cells the sources use for "unknown": empty, a
// bare dash, or the -1 sentinel.
func cellMissing(v string) bool {
	return v == "" || v == "-" || v == missingSentinel
}

// textCell blanks sentinel cells so downstream classifiers see an empty
// string instead of "-1".
func textCell(v string) string {
	if cellMissing(v) {
		return ""
	}
	return v
}

// parseCount parses a numeric cell, tolerating thousands separators.
// Missing and non-numeric cells come back nil, never zero.
func parseCount(v string) *float64 {
	if cellMissing(v) {
		return nil
	}
	v = strings.ReplaceAll(v, ",", "")
	x, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return nil
	}
	return &x
}

// parseMinutes parses a timing cell. Negative durations are junk and
// come back missing.
func parseMinutes(v string) *float64 {
	x := parseCount(v)
	if x == nil || *x < 0 {
		return nil
	}
	return x
}
