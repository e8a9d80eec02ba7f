package cmd

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rhicksrad/India/internal/region"
	"github.com/rhicksrad/India/internal/report"
)

// runCmd is a helper to execute the root command with args.
func runCmd(t *testing.T, args ...string) {
	t.Helper()
	resetCLIState()
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("command %v failed: %v", args, err)
	}
}

// runCmdExpectError executes the root command and returns the error.
func runCmdExpectError(t *testing.T, args ...string) error {
	t.Helper()
	resetCLIState()
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

// resetCLIState clears flag and config state that sticks between
// invocations within one test binary.
func resetCLIState() {
	cfg = nil
	buildOut, buildIncidence, buildDishes, buildRecipes = "", "", "", ""
	buildMaxBytes = 0
	buildXLSX, buildQuiet = false, false
	corrJoined = ""
	corrFromBuild = false
	corrMinSamples, corrMinIngRegions, corrTop = 0, 0, 0
	corrJSON, corrDetail = false, false
	regionsWrite = ""
	fetchForce = false
	if fl := buildCmd.Flags().Lookup("max-bytes"); fl != nil {
		fl.Changed = false
	}
	for _, name := range []string{"min-samples", "min-ingredient-regions", "top"} {
		if fl := correlateCmd.Flags().Lookup(name); fl != nil {
			fl.Changed = false
		}
	}
}

var testIncidenceCSV = strings.Join([]string{
	"State/UT,2016,2017,2018",
	"Goa,100,110,121",
	"Kerala,500,525,551",
	"Punjab,400,408,416",
	"Assam,300,312,324",
	"Bihar,800,816,833",
	"Gujarat,600,612,624",
	"Orissa,450,459,468",
	"Sikkim,50,52,54",
}, "\n")

var testDishesCSV = strings.Join([]string{
	"name,ingredients,diet,prep_time,cook_time,flavor_profile,course,state,region",
	`Fish Curry,"fish, coconut, turmeric",non vegetarian,20,30,spicy,main course,Goa,West`,
	`Avial,"mixed vegetables, coconut, yogurt",vegetarian,25,20,spicy,main course,Kerala,South`,
	`Sarson da saag,"mustard greens, maize flour, butter",vegetarian,30,60,spicy,main course,Punjab,North`,
	`Masor tenga,"fish, tomato, lemon",non vegetarian,15,25,sour,main course,Assam,North East`,
	`Litti chokha,"wheat flour, sattu, brinjal",vegetarian,40,45,spicy,main course,Bihar,East`,
	`Dhokla,"gram flour, yogurt, sugar",vegetarian,20,25,sweet,snack,Gujarat,West`,
	`Chhena poda,"chhena, sugar, cardamom",vegetarian,20,45,sweet,dessert,Orissa,East`,
	`Phagshapa,"pork, radish, dried chillies",non vegetarian,20,40,spicy,main course,Sikkim,North East`,
}, "\n")

var testRecipesCSV = strings.Join([]string{
	"RecipeName,Ingredients,PrepTimeInMins,CookTimeInMins,Servings,Cuisine,Course,Diet",
	`Goan Prawn Curry,"prawns, coconut milk, kokum",15,30,4,Goan Recipes,Lunch,Non Vegeterian`,
	`Puttu,"rice flour, coconut",10,15,2,Kerala Recipes,Breakfast,Vegetarian`,
	`Veg Sandwich,"bread, butter, cucumber",10,5,1,Continental,Breakfast,Vegetarian`,
}, "\n")

func writeSourceFixtures(t *testing.T, dir string) (string, string, string) {
	t.Helper()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", dir, err)
	}
	inc := filepath.Join(dir, "incidence.csv")
	dishes := filepath.Join(dir, "dishes.csv")
	recipes := filepath.Join(dir, "recipes.csv")
	for path, body := range map[string]string{
		inc:     testIncidenceCSV,
		dishes:  testDishesCSV,
		recipes: testRecipesCSV,
	} {
		if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
			t.Fatalf("write %s: %v", path, err)
		}
	}
	return inc, dishes, recipes
}

func TestCLI_BuildAndCorrelate(t *testing.T) {
	home := t.TempDir()
	oldHome := os.Getenv("HOME")
	defer os.Setenv("HOME", oldHome)
	os.Setenv("HOME", home)

	inc, dishes, recipes := writeSourceFixtures(t, home)
	outDir := filepath.Join(home, "out")

	runCmd(t, "build",
		"--incidence", inc,
		"--dishes", dishes,
		"--recipes", recipes,
		"--out", outDir,
		"--quiet")

	joinedPath := filepath.Join(outDir, report.JoinedFile)
	b, err := os.ReadFile(joinedPath)
	if err != nil {
		t.Fatalf("read joined output: %v", err)
	}
	var joined []report.JoinedRecord
	if err := json.Unmarshal(b, &joined); err != nil {
		t.Fatalf("decode joined output: %v", err)
	}
	if len(joined) != 8 {
		t.Fatalf("joined %d regions, want 8", len(joined))
	}
	var odisha *report.JoinedRecord
	for i := range joined {
		if joined[i].Region == "Odisha" {
			odisha = &joined[i]
		}
	}
	if odisha == nil {
		t.Fatal("Orissa rows should land under Odisha")
	}
	if odisha.Cancer == nil || odisha.Cuisine == nil {
		t.Fatal("Odisha should carry both sides")
	}
	if odisha.Cancer.CAGR == nil {
		t.Fatal("three complete years should produce a growth rate")
	}

	var manifest report.Manifest
	mb, err := os.ReadFile(filepath.Join(outDir, report.ManifestFile))
	if err != nil {
		t.Fatalf("read manifest: %v", err)
	}
	if err := json.Unmarshal(mb, &manifest); err != nil {
		t.Fatalf("decode manifest: %v", err)
	}
	if manifest.RunID == "" || len(manifest.Sources) != 3 || len(manifest.Outputs) != 3 {
		t.Fatalf("manifest = %+v", manifest)
	}
	if manifest.Sources[2].Name != "recipes" || manifest.Sources[2].Dropped != 1 {
		t.Fatalf("recipes accounting = %+v, want the Continental row dropped", manifest.Sources[2])
	}

	// The joined output feeds the correlation scan.
	runCmd(t, "correlate", "--joined", joinedPath, "--detail")
	runCmd(t, "correlate", "--joined", joinedPath, "--json", "--top", "3")

	// The same scan runs straight off the configured sources.
	writeSourceFixtures(t, filepath.Join(home, ".india", "data"))
	runCmd(t, "correlate", "--from-build", "--top", "2")
}

func TestCLI_BuildWritesWorkbook(t *testing.T) {
	home := t.TempDir()
	oldHome := os.Getenv("HOME")
	defer os.Setenv("HOME", oldHome)
	os.Setenv("HOME", home)

	inc, dishes, recipes := writeSourceFixtures(t, home)
	outDir := filepath.Join(home, "out")

	runCmd(t, "build",
		"--incidence", inc, "--dishes", dishes, "--recipes", recipes,
		"--out", outDir, "--xlsx", "--quiet")

	if _, err := os.Stat(filepath.Join(outDir, "review.xlsx")); err != nil {
		t.Fatalf("missing workbook: %v", err)
	}
}

func TestCLI_BuildFailsOnUnknownRegion(t *testing.T) {
	home := t.TempDir()
	oldHome := os.Getenv("HOME")
	defer os.Setenv("HOME", oldHome)
	os.Setenv("HOME", home)

	_, dishes, recipes := writeSourceFixtures(t, home)
	inc := filepath.Join(home, "bad_incidence.csv")
	body := "State/UT,2016\nGoa,10\nAtlantis,5\n"
	if err := os.WriteFile(inc, []byte(body), 0o644); err != nil {
		t.Fatalf("write incidence: %v", err)
	}

	err := runCmdExpectError(t, "build",
		"--incidence", inc, "--dishes", dishes, "--recipes", recipes,
		"--out", filepath.Join(home, "out"), "--quiet")
	if err == nil {
		t.Fatal("expected build to fail for a region without a population figure")
	}
	var mpe *region.MissingPopulationError
	if !errors.As(err, &mpe) {
		t.Fatalf("expected MissingPopulationError, got %T: %v", err, err)
	}
	if !strings.Contains(err.Error(), "Atlantis") {
		t.Fatalf("error should name the offender: %v", err)
	}
}

func TestCLI_BuildEnforcesByteCeiling(t *testing.T) {
	home := t.TempDir()
	oldHome := os.Getenv("HOME")
	defer os.Setenv("HOME", oldHome)
	os.Setenv("HOME", home)

	inc, dishes, recipes := writeSourceFixtures(t, home)

	err := runCmdExpectError(t, "build",
		"--incidence", inc, "--dishes", dishes, "--recipes", recipes,
		"--out", filepath.Join(home, "out"), "--max-bytes", "10", "--quiet")
	if err == nil {
		t.Fatal("expected the byte ceiling to trip")
	}
	var otl *report.OutputTooLargeError
	if !errors.As(err, &otl) {
		t.Fatalf("expected OutputTooLargeError, got %T: %v", err, err)
	}
	if !strings.Contains(err.Error(), report.IncidenceFile) {
		t.Fatalf("error should name the oversized file: %v", err)
	}
}

func TestCLI_RegionsWrite(t *testing.T) {
	home := t.TempDir()
	oldHome := os.Getenv("HOME")
	defer os.Setenv("HOME", oldHome)
	os.Setenv("HOME", home)

	path := filepath.Join(home, "reference.yaml")
	runCmd(t, "regions", "--write", path)
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read exported table: %v", err)
	}
	for _, want := range []string{"Odisha", "Orissa", "Puducherry"} {
		if !strings.Contains(string(b), want) {
			t.Fatalf("exported table missing %s", want)
		}
	}
}

func TestCLI_ConfigSetPersists(t *testing.T) {
	home := t.TempDir()
	oldHome := os.Getenv("HOME")
	defer os.Setenv("HOME", oldHome)
	os.Setenv("HOME", home)

	runCmd(t, "config", "set", "min_samples", "7")
	b, err := os.ReadFile(filepath.Join(home, ".india", "config.yaml"))
	if err != nil {
		t.Fatalf("read saved config: %v", err)
	}
	if !strings.Contains(string(b), "min_samples: 7") {
		t.Fatalf("saved config missing the new value:\n%s", b)
	}
	if err := runCmdExpectError(t, "config", "set", "nonsense", "1"); err == nil {
		t.Fatal("unknown keys must be rejected")
	}
}
