package region

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestNormalizeAliasesAndPassthrough(t *testing.T) {
	tbl := Default()
	cases := []struct {
		in   string
		want string
	}{
		{"Orissa", "Odisha"},
		{"  Orissa  ", "Odisha"},
		{"Odisha", "Odisha"},
		{"Pondicherry", "Puducherry"},
		{"Uttaranchal", "Uttarakhand"},
		{"Jammu & Kashmir", "Jammu and Kashmir"},
		{"Punjab", "Punjab"},
		// Unknown spellings pass through trimmed, not dropped.
		{" Azad Hind ", "Azad Hind"},
		{"", ""},
	}
	for _, c := range cases {
		if got := tbl.Normalize(c.in); got != c.want {
			t.Errorf("Normalize(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestNormalizeNoFuzzyMatching(t *testing.T) {
	tbl := Default()
	// Case and spelling variants without an explicit alias entry must not
	// resolve; exact lookup only.
	for _, in := range []string{"odisha", "ORISSA", "Oris sa"} {
		if got := tbl.Normalize(in); got != in {
			t.Errorf("Normalize(%q) = %q, want passthrough", in, got)
		}
	}
}

func TestPopulationLookup(t *testing.T) {
	tbl := Default()
	p, ok := tbl.Population("Odisha")
	if !ok || p != 41974219 {
		t.Fatalf("Population(Odisha) = %d, %v", p, ok)
	}
	if _, ok := tbl.Population("Orissa"); ok {
		t.Fatal("alias spelling should not carry a population entry")
	}
}

func TestRequirePopulations(t *testing.T) {
	tbl := Default()
	if err := tbl.RequirePopulations([]string{"Kerala", "Goa"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	err := tbl.RequirePopulations([]string{"Kerala", "Atlantis", "Goa", "Lemuria"})
	if err == nil {
		t.Fatal("expected error for unknown regions")
	}
	var mpe *MissingPopulationError
	if !errors.As(err, &mpe) {
		t.Fatalf("expected MissingPopulationError, got %T", err)
	}
	if len(mpe.Regions) != 2 || mpe.Regions[0] != "Atlantis" || mpe.Regions[1] != "Lemuria" {
		t.Fatalf("missing regions = %v", mpe.Regions)
	}
}

func TestLoadFileOverridesAndFallback(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "regions.yaml")
	data := "regions:\n  - name: Wonderland\n    population: 42\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	tbl, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if p, ok := tbl.Population("Wonderland"); !ok || p != 42 {
		t.Fatalf("Population(Wonderland) = %d, %v", p, ok)
	}
	// Aliases section was empty, so the built-in aliases remain.
	if got := tbl.Normalize("Orissa"); got != "Odisha" {
		t.Fatalf("Normalize(Orissa) = %q, want built-in alias", got)
	}
}

func TestWriteFileRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "export.yaml")
	if err := Default().WriteFile(path); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	tbl, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if got := tbl.Normalize("Uttaranchal"); got != "Uttarakhand" {
		t.Fatalf("Normalize(Uttaranchal) = %q after round trip", got)
	}
	if p, ok := tbl.Population("Tamil Nadu"); !ok || p != 72147030 {
		t.Fatalf("Population(Tamil Nadu) = %d, %v after round trip", p, ok)
	}
}
