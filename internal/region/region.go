// Package region resolves the many spellings the source tables use for
// Indian states and union territories to one canonical name each, and keeps
// the census population figures the rate calculations divide by.
package region

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Entry describes one canonical region.
type Entry struct {
	Name       string `yaml:"name"`
	Population int64  `yaml:"population"`
}

// File is the on-disk reference data format. A section left empty in the
// file keeps the built-in data for that section.
type File struct {
	Regions []Entry           `yaml:"regions"`
	Aliases map[string]string `yaml:"aliases"`
}

// Table maps raw region spellings to canonical names and canonical names to
// populations. Lookup is exact (after trimming); there is no fuzzy matching.
type Table struct {
	aliases     map[string]string
	populations map[string]int64
	canonical   []string
}

// Default returns a Table built from the built-in reference data.
func Default() *Table {
	return newTable(defaultEntries, defaultAliases)
}

// LoadFile reads reference data from a YAML file. Sections missing from the
// file fall back to the built-in data.
func LoadFile(path string) (*Table, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read reference file: %w", err)
	}
	var f File
	if err := yaml.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("parse reference file: %w", err)
	}
	entries := f.Regions
	if len(entries) == 0 {
		entries = defaultEntries
	}
	aliases := f.Aliases
	if len(aliases) == 0 {
		aliases = defaultAliases
	}
	return newTable(entries, aliases), nil
}

func newTable(entries []Entry, aliases map[string]string) *Table {
	t := &Table{
		aliases:     make(map[string]string, len(aliases)),
		populations: make(map[string]int64, len(entries)),
		canonical:   make([]string, 0, len(entries)),
	}
	for _, e := range entries {
		name := strings.TrimSpace(e.Name)
		if name == "" {
			continue
		}
		if _, ok := t.populations[name]; !ok {
			t.canonical = append(t.canonical, name)
		}
		t.populations[name] = e.Population
	}
	sort.Strings(t.canonical)
	for raw, canon := range aliases {
		t.aliases[strings.TrimSpace(raw)] = strings.TrimSpace(canon)
	}
	return t
}

// Normalize trims the raw spelling and resolves it through the alias table.
// Spellings with no alias entry pass through unchanged, so unknown regions
// still flow into the output under their own name.
func (t *Table) Normalize(raw string) string {
	s := strings.TrimSpace(raw)
	if canon, ok := t.aliases[s]; ok {
		return canon
	}
	return s
}

// Population returns the census population for a canonical region name.
func (t *Table) Population(name string) (int64, bool) {
	p, ok := t.populations[name]
	return p, ok
}

// Canonical returns the canonical region names in sorted order.
func (t *Table) Canonical() []string {
	out := make([]string, len(t.canonical))
	copy(out, t.canonical)
	return out
}

// AliasesOf returns the raw spellings mapped to the given canonical name,
// sorted.
func (t *Table) AliasesOf(name string) []string {
	var out []string
	for raw, canon := range t.aliases {
		if canon == name {
			out = append(out, raw)
		}
	}
	sort.Strings(out)
	return out
}

// RequirePopulations verifies every listed region has a population figure.
// Rates cannot be computed without one, so a missing figure is fatal for
// the whole run rather than a silently null column. Regions appearing on
// both sides of the join are reported once.
func (t *Table) RequirePopulations(regions []string) error {
	var missing []string
	seen := make(map[string]bool, len(regions))
	for _, name := range regions {
		if seen[name] {
			continue
		}
		seen[name] = true
		if _, ok := t.populations[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	sort.Strings(missing)
	return &MissingPopulationError{Regions: missing}
}

// WriteFile exports the table as a YAML reference file, suitable as a
// starting point for local overrides.
func (t *Table) WriteFile(path string) error {
	f := File{
		Regions: make([]Entry, 0, len(t.canonical)),
		Aliases: make(map[string]string, len(t.aliases)),
	}
	for _, name := range t.canonical {
		f.Regions = append(f.Regions, Entry{Name: name, Population: t.populations[name]})
	}
	for raw, canon := range t.aliases {
		f.Aliases[raw] = canon
	}
	b, err := yaml.Marshal(&f)
	if err != nil {
		return fmt.Errorf("marshal reference data: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write reference file: %w", err)
	}
	return nil
}

// MissingPopulationError reports regions that reached the output stage
// without a population figure.
type MissingPopulationError struct {
	Regions []string
}

func (e *MissingPopulationError) Error() string {
	return fmt.Sprintf("no population figure for regions: %s", strings.Join(e.Regions, ", "))
}
