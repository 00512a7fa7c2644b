package config

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// Config holds the complete application configuration
type Config struct {
	Version string       `yaml:"version" json:"version"`
	Inputs  InputConfig  `yaml:"inputs" json:"inputs"`
	Output  OutputConfig `yaml:"output" json:"output"`
	Solve   SolveConfig  `yaml:"solve" json:"solve"`
}

// InputConfig locates the puzzle input files
type InputConfig struct {
	Directory   string         `yaml:"directory" json:"directory"`       // directory holding input files
	FilePattern string         `yaml:"file_pattern" json:"file_pattern"` // file name with %d for the day
	Overrides   map[int]string `yaml:"overrides" json:"overrides"`       // day -> explicit path
}

// OutputConfig configures output formatting and display
type OutputConfig struct {
	DefaultFormat string `yaml:"default_format" json:"default_format"` // text|json|csv|tree
	ColorMode     string `yaml:"color_mode" json:"color_mode"`         // auto|always|never
	Verbose       bool   `yaml:"verbose" json:"verbose"`               // default verbosity
	ShowTimings   bool   `yaml:"show_timings" json:"show_timings"`     // print solve durations
}

// SolveConfig configures how puzzles are run
type SolveConfig struct {
	Parallelism int           `yaml:"parallelism" json:"parallelism"` // puzzles solved at once
	Timeout     time.Duration `yaml:"timeout" json:"timeout"`         // limit for a whole run
}

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Version: "1.0",
		Inputs: InputConfig{
			Directory:   "./input_data",
			FilePattern: "day%d_data.txt",
			Overrides:   make(map[int]string),
		},
		Output: OutputConfig{
			DefaultFormat: "text",
			ColorMode:     "auto",
			Verbose:       false,
			ShowTimings:   false,
		},
		Solve: SolveConfig{
			Parallelism: 4,
			Timeout:     60 * time.Second,
		},
	}
}

// PathFor returns the input file for day
func (c *InputConfig) PathFor(day int) string {
	if path, ok := c.Overrides[day]; ok && path != "" {
		return expandPath(path)
	}
	return filepath.Join(expandPath(c.Directory), fmt.Sprintf(c.FilePattern, day))
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if err := c.validateInputConfig(); err != nil {
		return err
	}
	if err := c.validateOutputConfig(); err != nil {
		return err
	}
	if err := c.validateSolveConfig(); err != nil {
		return err
	}
	return nil
}

// validateInputConfig validates input-related configuration
func (c *Config) validateInputConfig() error {
	if c.Inputs.FilePattern == "" {
		return fmt.Errorf("file_pattern must not be empty")
	}
	if strings.Count(c.Inputs.FilePattern, "%d") != 1 {
		return fmt.Errorf("file_pattern must contain exactly one %%d: %s", c.Inputs.FilePattern)
	}
	for day := range c.Inputs.Overrides {
		if day < 1 || day > 25 {
			return fmt.Errorf("input override for invalid day %d (must be 1-25)", day)
		}
	}
	return nil
}

// validateOutputConfig validates output-related configuration
func (c *Config) validateOutputConfig() error {
	if c.Output.DefaultFormat != "" {
		validFormats := map[string]bool{
			"text": true,
			"json": true,
			"csv":  true,
			"tree": true,
		}
		if !validFormats[c.Output.DefaultFormat] {
			return fmt.Errorf("invalid output format: %s (must be one of: text, json, csv, tree)", c.Output.DefaultFormat)
		}
	}
	if c.Output.ColorMode != "" {
		validColorModes := map[string]bool{
			"auto":   true,
			"always": true,
			"never":  true,
		}
		if !validColorModes[c.Output.ColorMode] {
			return fmt.Errorf("invalid color mode: %s (must be one of: auto, always, never)", c.Output.ColorMode)
		}
	}
	return nil
}

// validateSolveConfig validates solve-related configuration
func (c *Config) validateSolveConfig() error {
	if c.Solve.Parallelism < 1 {
		return fmt.Errorf("parallelism must be greater than 0")
	}
	if c.Solve.Timeout < 0 {
		return fmt.Errorf("timeout must be non-negative")
	}
	return nil
}
