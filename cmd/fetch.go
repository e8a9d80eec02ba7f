package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rhicksrad/India/internal/fetch"
)

var fetchForce bool

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Download the configured source tables into the data directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := ensureConfig()
		if err != nil {
			return err
		}
		sources := []struct {
			name string
			url  string
			dest string
		}{
			{"incidence", c.IncidenceURL, c.IncidenceCSV},
			{"dishes", c.DishesURL, c.DishesCSV},
			{"recipes", c.RecipesURL, c.RecipesCSV},
		}
		client := fetch.NewClient(
			time.Duration(c.HTTPTimeoutSec)*time.Second,
			c.RetryMaxAttempts,
			time.Duration(c.RetryBaseDelayMs)*time.Millisecond,
			time.Duration(c.RetryMaxDelayMs)*time.Millisecond,
		)
		present := 0
		for _, s := range sources {
			if s.url == "" {
				fmt.Printf("⚠ No URL configured for %s, skipping (set %s_url)\n", s.name, s.name)
				continue
			}
			if !fetchForce && fetch.Exists(s.dest) {
				fmt.Printf("✓ %s already present at %s\n", s.name, s.dest)
				present++
				continue
			}
			if err := client.Download(cmd.Context(), s.url, s.dest); err != nil {
				return fmt.Errorf("fetch %s: %w", s.name, err)
			}
			fmt.Printf("✓ Downloaded %s to %s\n", s.name, s.dest)
			present++
		}
		if present == 0 {
			return fmt.Errorf("no source URLs configured; set incidence_url, dishes_url and recipes_url")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(fetchCmd)
	fetchCmd.Flags().BoolVar(&fetchForce, "force", false, "re-download even when the file is already present")
}
