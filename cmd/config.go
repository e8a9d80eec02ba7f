package cmd

import (
	"fmt"
	"strconv"

	cfgpkg "github.com/rhicksrad/India/internal/config"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or set pipeline configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := ensureConfig()
		if err != nil {
			return err
		}
		fmt.Printf("data_dir: %s\n", c.DataDir)
		fmt.Printf("out_dir: %s\n", c.OutDir)
		fmt.Printf("incidence_csv: %s\n", c.IncidenceCSV)
		fmt.Printf("dishes_csv: %s\n", c.DishesCSV)
		fmt.Printf("recipes_csv: %s\n", c.RecipesCSV)
		if c.ReferenceFile != "" {
			fmt.Printf("reference_file: %s\n", c.ReferenceFile)
		}
		fmt.Printf("output_max_bytes: %d\n", c.OutputMaxBytes)
		fmt.Printf("min_samples: %d\n", c.MinSamples)
		fmt.Printf("min_ingredient_regions: %d\n", c.MinIngredientRegions)
		fmt.Printf("top_combos: %d\n", c.TopCombos)
		fmt.Printf("log_level: %s\n", c.LogLevel)
		fmt.Printf("log_format: %s\n", c.LogFormat)
		if c.IncidenceURL != "" {
			fmt.Printf("incidence_url: %s\n", c.IncidenceURL)
		}
		if c.DishesURL != "" {
			fmt.Printf("dishes_url: %s\n", c.DishesURL)
		}
		if c.RecipesURL != "" {
			fmt.Printf("recipes_url: %s\n", c.RecipesURL)
		}
		fmt.Printf("http_timeout_sec: %d\n", c.HTTPTimeoutSec)
		fmt.Printf("retry_max_attempts: %d\n", c.RetryMaxAttempts)
		fmt.Printf("retry_base_delay_ms: %d\n", c.RetryBaseDelayMs)
		fmt.Printf("retry_max_delay_ms: %d\n", c.RetryMaxDelayMs)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a config value and save to disk",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, val := args[0], args[1]
		c, err := ensureConfig()
		if err != nil {
			return err
		}
		switch key {
		case "data_dir":
			c.DataDir = val
		case "out_dir":
			c.OutDir = val
		case "incidence_csv":
			c.IncidenceCSV = val
		case "dishes_csv":
			c.DishesCSV = val
		case "recipes_csv":
			c.RecipesCSV = val
		case "reference_file":
			c.ReferenceFile = val
		case "output_max_bytes":
			n, err := strconv.ParseInt(val, 10, 64)
			if err != nil || n < 0 {
				return fmt.Errorf("invalid int for output_max_bytes: %v", val)
			}
			c.OutputMaxBytes = n
		case "min_samples":
			i, err := strconv.Atoi(val)
			if err != nil || i < 0 {
				return fmt.Errorf("invalid int for min_samples: %v", val)
			}
			c.MinSamples = i
		case "min_ingredient_regions":
			i, err := strconv.Atoi(val)
			if err != nil || i < 0 {
				return fmt.Errorf("invalid int for min_ingredient_regions: %v", val)
			}
			c.MinIngredientRegions = i
		case "top_combos":
			i, err := strconv.Atoi(val)
			if err != nil || i < 0 {
				return fmt.Errorf("invalid int for top_combos: %v", val)
			}
			c.TopCombos = i
		case "log_level":
			switch val {
			case "debug", "info", "warn", "error":
				c.LogLevel = val
			default:
				return fmt.Errorf("invalid log_level: %s (use debug|info|warn|error)", val)
			}
		case "log_format":
			switch val {
			case "console", "json":
				c.LogFormat = val
			default:
				return fmt.Errorf("invalid log_format: %s (use console or json)", val)
			}
		case "incidence_url":
			c.IncidenceURL = val
		case "dishes_url":
			c.DishesURL = val
		case "recipes_url":
			c.RecipesURL = val
		case "http_timeout_sec":
			i, err := strconv.Atoi(val)
			if err != nil {
				return fmt.Errorf("invalid int for http_timeout_sec: %w", err)
			}
			c.HTTPTimeoutSec = i
		case "retry_max_attempts":
			i, err := strconv.Atoi(val)
			if err != nil {
				return fmt.Errorf("invalid int for retry_max_attempts: %w", err)
			}
			c.RetryMaxAttempts = i
		case "retry_base_delay_ms":
			i, err := strconv.Atoi(val)
			if err != nil {
				return fmt.Errorf("invalid int for retry_base_delay_ms: %w", err)
			}
			c.RetryBaseDelayMs = i
		case "retry_max_delay_ms":
			i, err := strconv.Atoi(val)
			if err != nil {
				return fmt.Errorf("invalid int for retry_max_delay_ms: %w", err)
			}
			c.RetryMaxDelayMs = i
		default:
			return fmt.Errorf("unknown key: %s", key)
		}
		if err := cfgpkg.Save(c, cfgFile); err != nil {
			return err
		}
		fmt.Println("Saved config")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}
