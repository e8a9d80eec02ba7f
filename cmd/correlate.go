package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/rhicksrad/India/internal/report"
	"github.com/rhicksrad/India/internal/stats"
	"github.com/rhicksrad/India/internal/utils"
)

var (
	corrJoined        string
	corrFromBuild     bool
	corrMinSamples    int
	corrMinIngRegions int
	corrTop           int
	corrJSON          bool
	corrDetail        bool
)

var correlateCmd = &cobra.Command{
	Use:   "correlate",
	Short: "Scan the joined records for strongly correlated metric pairings",
	Long: `Correlate pairs every cuisine-side metric (including per-ingredient
usage shares) with every incidence-side metric, fits a line over the
regions both sides cover, and ranks the pairings by correlation
strength. It reads the joined record set a previous build wrote, or
with --from-build runs the pipeline in memory straight off the
configured source tables.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := ensureConfig()
		if err != nil {
			return err
		}

		var joined []report.JoinedRecord
		var years []int
		if corrFromBuild {
			tbl, err := loadRegionTable(c)
			if err != nil {
				return err
			}
			res, err := runPipeline(tbl, c.IncidenceCSV, c.DishesCSV, c.RecipesCSV)
			if err != nil {
				return err
			}
			joined = res.outputs.Joined
			years = res.outputs.Years
			if len(joined) == 0 {
				return fmt.Errorf("the source tables yielded no regions")
			}
		} else {
			joinedPath := corrJoined
			if joinedPath == "" {
				joinedPath = filepath.Join(c.OutDir, report.JoinedFile)
			}
			b, err := os.ReadFile(joinedPath)
			if err != nil {
				return fmt.Errorf("read joined records (run build first?): %w", err)
			}
			if err := json.Unmarshal(b, &joined); err != nil {
				return fmt.Errorf("decode %s: %w", filepath.Base(joinedPath), err)
			}
			if len(joined) == 0 {
				return fmt.Errorf("%s holds no regions", filepath.Base(joinedPath))
			}
			years = report.YearsOf(joined)
		}

		minSamples := c.MinSamples
		if cmd.Flags().Changed("min-samples") {
			minSamples = corrMinSamples
		}
		minIngRegions := c.MinIngredientRegions
		if cmd.Flags().Changed("min-ingredient-regions") {
			minIngRegions = corrMinIngRegions
		}
		xs := report.CandidateX(joined, minIngRegions)
		ys := report.CandidateY(joined, years)
		combos := stats.Discover(xs, ys, minSamples)

		top := c.TopCombos
		if cmd.Flags().Changed("top") {
			top = corrTop
		}
		if top > 0 && len(combos) > top {
			combos = combos[:top]
		}

		if corrJSON {
			out, err := utils.PrettyJSON(combos)
			if err != nil {
				return err
			}
			fmt.Println(string(out))
			return nil
		}

		if len(combos) == 0 {
			fmt.Println("No pairings cleared the sample floor.")
			return nil
		}
		fmt.Printf("Scanned %d x %d candidate pairings across %d regions.\n\n", len(xs), len(ys), len(joined))
		for i, cb := range combos {
			fmt.Printf("%2d. r=%+.3f n=%-3d %s vs %s\n", i+1, cb.R, cb.N, cb.XLabel, cb.YLabel)
		}
		if corrDetail {
			printBestFit(combos[0], xs, ys)
		}
		return nil
	},
}

// printBestFit refits the top pairing and shows the line plus the regions
// that sit farthest from it.
func printBestFit(best stats.Combo, xs, ys []stats.Series) {
	var bx, by *stats.Series
	for i := range xs {
		if xs[i].Key == best.XKey {
			bx = &xs[i]
		}
	}
	for i := range ys {
		if ys[i].Key == best.YKey {
			by = &ys[i]
		}
	}
	if bx == nil || by == nil {
		return
	}
	reg := stats.Fit(stats.PairSeries(*bx, *by))
	if reg == nil {
		return
	}
	fmt.Printf("\nBest fit: %s vs %s\n", best.XLabel, best.YLabel)
	fmt.Printf("  slope=%+.4f intercept=%+.4f r=%+.4f n=%d\n", reg.Slope, reg.Intercept, reg.R, reg.N)
	limit := 5
	if len(reg.Residuals) < limit {
		limit = len(reg.Residuals)
	}
	for _, res := range reg.Residuals[:limit] {
		fmt.Printf("  residual %-24s %+.4f\n", res.Label, res.Residual)
	}
}

func init() {
	rootCmd.AddCommand(correlateCmd)
	correlateCmd.Flags().StringVar(&corrJoined, "joined", "", "joined record set to scan (default <out_dir>/regions_joined.json)")
	correlateCmd.Flags().BoolVar(&corrFromBuild, "from-build", false, "run the pipeline in memory instead of reading a joined file")
	correlateCmd.Flags().IntVar(&corrMinSamples, "min-samples", 0, "minimum paired regions per pairing (overrides config)")
	correlateCmd.Flags().IntVar(&corrMinIngRegions, "min-ingredient-regions", 0, "regions an ingredient must span to become a candidate metric (overrides config)")
	correlateCmd.Flags().IntVar(&corrTop, "top", 0, "number of pairings to print (overrides config)")
	correlateCmd.Flags().BoolVar(&corrJSON, "json", false, "emit the ranked pairings as JSON")
	correlateCmd.Flags().BoolVar(&corrDetail, "detail", false, "print the full fit and residuals for the top pairing")
}
