// Package config defines the configuration model for bandfrac and the
// provider interface its sources implement.
package config

import (
	"fmt"
	"strings"

	"bandfrac/pkg/spectral"
)

// Defaults matching the reference calculation. Any of these can be
// overridden in the configuration file.
const (
	DefaultTemperature       = 10000.0 // Kelvin
	DefaultBolometricRatio   = 0.6     // fraction of bolometric energy in the continuum
	DefaultContinuumStart    = 1400.0  // Angstroms
	DefaultContinuumEnd      = 10000.0 // Angstroms
	DefaultStep              = 1.0     // grid spacing, Angstroms
	DefaultAreaThreshold     = 5.0     // cm²
	DefaultTransmissionLimit = 0.05
)

// Provider defines the interface for configuration data sources
type Provider interface {
	// Load complete configuration
	LoadConfig() (*Config, error)

	// Configuration management
	IsReadOnly() bool
	Close() error
}

// Config is the complete configuration for a run.
type Config struct {
	Temperature     float64       `yaml:"temperature,omitempty"`
	BolometricRatio float64       `yaml:"bolometric_to_continuum,omitempty"`
	Continuum       ContinuumData `yaml:"continuum,omitempty"`
	Step            float64       `yaml:"step,omitempty"`
	Storage         StorageData   `yaml:"storage,omitempty"`
	Filters         []FilterData  `yaml:"filters"`
}

// ContinuumData is the reference wavelength range used as the
// bolometric proxy denominator.
type ContinuumData struct {
	Start float64 `yaml:"start,omitempty"`
	End   float64 `yaml:"end,omitempty"`
}

// StorageData holds the configuration for optional result storage.
type StorageData struct {
	SQLite *SQLiteData `yaml:"sqlite,omitempty"`
}

// SQLiteData holds configuration for the SQLite run-history store.
type SQLiteData struct {
	Path string `yaml:"path"`
}

// FilterData describes one photometric filter to analyze.
type FilterData struct {
	Name      string  `yaml:"name"`
	Path      string  `yaml:"path"`
	Mode      string  `yaml:"mode"`                // "area" or "transmission"
	Threshold float64 `yaml:"threshold,omitempty"` // 0 means the per-mode default
}

// applyDefaults fills zero-valued fields with the reference constants.
func (c *Config) applyDefaults() {
	if c.Temperature == 0 {
		c.Temperature = DefaultTemperature
	}
	if c.BolometricRatio == 0 {
		c.BolometricRatio = DefaultBolometricRatio
	}
	if c.Continuum.Start == 0 {
		c.Continuum.Start = DefaultContinuumStart
	}
	if c.Continuum.End == 0 {
		c.Continuum.End = DefaultContinuumEnd
	}
	if c.Step == 0 {
		c.Step = DefaultStep
	}
	for i := range c.Filters {
		if c.Filters[i].Threshold == 0 {
			if strings.EqualFold(c.Filters[i].Mode, "transmission") {
				c.Filters[i].Threshold = DefaultTransmissionLimit
			} else {
				c.Filters[i].Threshold = DefaultAreaThreshold
			}
		}
	}
}

// validate rejects configurations the pipeline cannot run with.
func (c *Config) validate() error {
	if len(c.Filters) == 0 {
		return fmt.Errorf("no filters configured")
	}
	if c.Temperature <= 0 {
		return fmt.Errorf("temperature must be positive, got %g", c.Temperature)
	}
	if c.Continuum.End <= c.Continuum.Start {
		return fmt.Errorf("continuum range %g-%g is empty", c.Continuum.Start, c.Continuum.End)
	}
	if c.Step <= 0 {
		return fmt.Errorf("grid step must be positive, got %g", c.Step)
	}
	for _, f := range c.Filters {
		if f.Name == "" {
			return fmt.Errorf("filter with path %q has no name", f.Path)
		}
		if f.Path == "" {
			return fmt.Errorf("filter %q has no table path", f.Name)
		}
		if _, err := spectral.ParseMode(f.Mode); err != nil {
			return fmt.Errorf("filter %q: %w", f.Name, err)
		}
	}
	return nil
}
