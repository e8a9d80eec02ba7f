package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Global configuration structure.
type Global struct {
	DataDir       string `mapstructure:"data_dir" yaml:"data_dir"`
	OutDir        string `mapstructure:"out_dir" yaml:"out_dir"`
	IncidenceCSV  string `mapstructure:"incidence_csv" yaml:"incidence_csv"`
	DishesCSV     string `mapstructure:"dishes_csv" yaml:"dishes_csv"`
	RecipesCSV    string `mapstructure:"recipes_csv" yaml:"recipes_csv"`
	ReferenceFile string `mapstructure:"reference_file" yaml:"reference_file"`

	// Analysis knobs
	OutputMaxBytes       int64 `mapstructure:"output_max_bytes" yaml:"output_max_bytes"`
	MinSamples           int   `mapstructure:"min_samples" yaml:"min_samples"`
	MinIngredientRegions int   `mapstructure:"min_ingredient_regions" yaml:"min_ingredient_regions"`
	TopCombos            int   `mapstructure:"top_combos" yaml:"top_combos"`

	// Logging
	LogLevel  string `mapstructure:"log_level" yaml:"log_level"`
	LogFormat string `mapstructure:"log_format" yaml:"log_format"`

	// Source mirrors for the fetch command
	IncidenceURL string `mapstructure:"incidence_url" yaml:"incidence_url"`
	DishesURL    string `mapstructure:"dishes_url" yaml:"dishes_url"`
	RecipesURL   string `mapstructure:"recipes_url" yaml:"recipes_url"`

	// HTTP/Retry configuration
	HTTPTimeoutSec   int `mapstructure:"http_timeout_sec" yaml:"http_timeout_sec"`
	RetryMaxAttempts int `mapstructure:"retry_max_attempts" yaml:"retry_max_attempts"`
	RetryBaseDelayMs int `mapstructure:"retry_base_delay_ms" yaml:"retry_base_delay_ms"`
	RetryMaxDelayMs  int `mapstructure:"retry_max_delay_ms" yaml:"retry_max_delay_ms"`
}

// Save writes the given configuration to the cfgFile path. If cfgFile is
// empty, it writes to ~/.india/config.yaml, creating the directory if
// necessary.
func Save(c *Global, cfgFile string) error {
	var path string
	if cfgFile != "" {
		path = cfgFile
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".india")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir config dir: %w", err)
		}
		path = filepath.Join(dir, "config.yaml")
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Load loads configuration from file, env, and defaults.
// Precedence: flags (cfgFile) > env > config file > defaults.
func Load(cfgFile string) (*Global, error) {
	v := viper.New()
	v.SetEnvPrefix("INDIA")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("out_dir", "out")
	v.SetDefault("output_max_bytes", 10000000)
	v.SetDefault("min_samples", 6)
	v.SetDefault("min_ingredient_regions", 5)
	v.SetDefault("top_combos", 10)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "console")
	v.SetDefault("incidence_url", "")
	v.SetDefault("dishes_url", "")
	v.SetDefault("recipes_url", "")
	// HTTP/retry defaults
	v.SetDefault("http_timeout_sec", 60)
	v.SetDefault("retry_max_attempts", 3)
	v.SetDefault("retry_base_delay_ms", 500)
	v.SetDefault("retry_max_delay_ms", 4000)

	// Config file
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".india")
		_ = os.MkdirAll(dir, 0o755)
		v.AddConfigPath(dir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	// optional read
	_ = v.ReadInConfig()

	var c Global
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	// Resolve data_dir default: ~/.india/data, and source paths within it.
	if c.DataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home dir: %w", err)
		}
		c.DataDir = filepath.Join(home, ".india", "data")
	}
	if c.IncidenceCSV == "" {
		c.IncidenceCSV = filepath.Join(c.DataDir, "incidence.csv")
	}
	if c.DishesCSV == "" {
		c.DishesCSV = filepath.Join(c.DataDir, "dishes.csv")
	}
	if c.RecipesCSV == "" {
		c.RecipesCSV = filepath.Join(c.DataDir, "recipes.csv")
	}
	return &c, nil
}
