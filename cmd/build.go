package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/rhicksrad/India/internal/report"
)

var (
	buildOut       string
	buildIncidence string
	buildDishes    string
	buildRecipes   string
	buildMaxBytes  int64
	buildXLSX      bool
	buildQuiet     bool
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build per-region summaries and the joined record set from the source tables",
	Long: `Build runs the whole batch pipeline once: it reads the incidence table
and both cuisine tables, folds every row into per-region accumulators,
enriches the totals with per-capita rates and growth, joins the two
sides, and writes the JSON outputs plus a run manifest.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := ensureConfig()
		if err != nil {
			return err
		}
		tbl, err := loadRegionTable(c)
		if err != nil {
			return err
		}

		incidencePath := c.IncidenceCSV
		if buildIncidence != "" {
			incidencePath = buildIncidence
		}
		dishesPath := c.DishesCSV
		if buildDishes != "" {
			dishesPath = buildDishes
		}
		recipesPath := c.RecipesCSV
		if buildRecipes != "" {
			recipesPath = buildRecipes
		}

		manifest := report.NewManifest()

		res, err := runPipeline(tbl, incidencePath, dishesPath, recipesPath)
		if err != nil {
			return err
		}
		for _, s := range res.sources {
			manifest.AddSource(s.Name, s.Kept, s.Dropped)
		}
		outputs := res.outputs
		years := outputs.Years

		outDir := c.OutDir
		if buildOut != "" {
			outDir = buildOut
		}
		maxBytes := c.OutputMaxBytes
		if cmd.Flags().Changed("max-bytes") {
			maxBytes = buildMaxBytes
		}
		results, err := report.Write(outputs, outDir, maxBytes)
		if err != nil {
			return err
		}
		manifest.Outputs = results
		if err := manifest.Save(outDir); err != nil {
			return err
		}

		if !buildQuiet {
			for _, r := range results {
				fmt.Printf("✓ Wrote %s (%d rows, %d bytes)\n", filepath.Base(r.Path), r.Rows, r.Bytes)
			}
		}
		if buildXLSX {
			xlsxPath := filepath.Join(outDir, "review.xlsx")
			if err := report.WriteWorkbook(xlsxPath, outputs); err != nil {
				return err
			}
			if !buildQuiet {
				fmt.Printf("✓ Wrote %s\n", filepath.Base(xlsxPath))
			}
		}
		if !buildQuiet {
			fmt.Printf("✓ Build complete: %d regions joined across %d years\n", len(outputs.Joined), len(years))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(buildCmd)
	buildCmd.Flags().StringVarP(&buildOut, "out", "o", "", "output directory (overrides config out_dir)")
	buildCmd.Flags().StringVar(&buildIncidence, "incidence", "", "incidence CSV path (overrides config)")
	buildCmd.Flags().StringVar(&buildDishes, "dishes", "", "dish table CSV path (overrides config)")
	buildCmd.Flags().StringVar(&buildRecipes, "recipes", "", "recipe table CSV path (overrides config)")
	buildCmd.Flags().Int64Var(&buildMaxBytes, "max-bytes", 0, "per-file output byte ceiling, 0 disables (overrides config)")
	buildCmd.Flags().BoolVar(&buildXLSX, "xlsx", false, "also write a review workbook next to the JSON outputs")
	buildCmd.Flags().BoolVar(&buildQuiet, "quiet", false, "suppress progress and non-essential output")
}
