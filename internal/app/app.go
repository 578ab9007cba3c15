// Package app runs the per-filter band-fraction pipeline and reports
// the results.
package app

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"time"

	"bandfrac/internal/database"
	"bandfrac/internal/log"
	"bandfrac/pkg/bandfraction"
	"bandfrac/pkg/config"
	"bandfrac/pkg/numeric"
	"bandfrac/pkg/spectral"
	"go.uber.org/zap"
)

// App represents the main application
type App struct {
	configProvider config.Provider
	logger         *zap.SugaredLogger
}

// Result is one successfully computed band fraction.
type Result struct {
	Filter    string
	Mode      spectral.Mode
	Threshold float64
	Range     spectral.Range
	Fraction  float64
}

// New creates a new application instance
func New(configProvider config.Provider, logger *zap.SugaredLogger) *App {
	return &App{
		configProvider: configProvider,
		logger:         logger,
	}
}

// Run computes the band fraction for every configured filter in order,
// prints the report, and records the results when a run-history
// database is configured. A filter that fails is logged and skipped;
// Run returns an error only when configuration loading fails or no
// filter could be computed at all.
func (a *App) Run(ctx context.Context) error {
	cfg, err := a.configProvider.LoadConfig()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	continuum, err := bandfraction.NewContinuum(
		cfg.Continuum.Start, cfg.Continuum.End, cfg.Temperature, cfg.Step)
	if err != nil {
		return fmt.Errorf("building continuum reference: %w", err)
	}
	log.Debugf("continuum %g-%g Å at %g K integrates to %g",
		cfg.Continuum.Start, cfg.Continuum.End, cfg.Temperature, continuum.Integral)

	runAt := time.Now()
	results := make([]Result, 0, len(cfg.Filters))
	for _, fc := range cfg.Filters {
		if err := ctx.Err(); err != nil {
			return err
		}

		res, err := a.computeFilter(fc, continuum, cfg.BolometricRatio)
		if err != nil {
			log.Errorf("filter %s: %s: %v", fc.Name, failureKind(err), err)
			continue
		}
		results = append(results, res)
	}

	for _, r := range results {
		fmt.Printf("p_bol (%s) = %.4f\n", r.Filter, r.Fraction)
	}

	if len(results) == 0 {
		return fmt.Errorf("no filter could be computed")
	}

	if cfg.Storage.SQLite != nil {
		if err := a.storeResults(cfg, results, runAt); err != nil {
			log.Errorf("recording run history: %v", err)
		}
	}

	return nil
}

// computeFilter loads one filter table and runs the pipeline on it.
func (a *App) computeFilter(fc config.FilterData, continuum bandfraction.Continuum, bolToCont float64) (Result, error) {
	mode, err := spectral.ParseMode(fc.Mode)
	if err != nil {
		return Result{}, err
	}

	table, err := spectral.Load(fc.Path)
	if err != nil {
		return Result{}, err
	}
	log.Debugf("filter %s: %d rows loaded from %s", fc.Name, table.Len(), fc.Path)

	r, fraction, err := bandfraction.Compute(table, fc.Threshold, mode, continuum, bolToCont)
	if err != nil {
		return Result{}, err
	}
	log.Infof("filter %s: band %g-%g Å, fraction %.4f", fc.Name, r.Start, r.End, fraction)

	return Result{
		Filter:    fc.Name,
		Mode:      mode,
		Threshold: fc.Threshold,
		Range:     r,
		Fraction:  fraction,
	}, nil
}

// storeResults writes one run's results to the SQLite run history.
func (a *App) storeResults(cfg *config.Config, results []Result, runAt time.Time) error {
	client := database.NewClient(cfg.Storage.SQLite.Path, a.logger)
	if err := client.Connect(); err != nil {
		return err
	}
	defer client.Close()

	if err := client.CreateTables(); err != nil {
		return err
	}

	records := make([]database.BandFractionRecord, len(results))
	for i, r := range results {
		records[i] = database.BandFractionRecord{
			RunAt:       runAt,
			Filter:      r.Filter,
			Mode:        r.Mode.String(),
			Threshold:   r.Threshold,
			Temperature: cfg.Temperature,
			RangeStart:  r.Range.Start,
			RangeEnd:    r.Range.End,
			Fraction:    r.Fraction,
		}
	}
	return client.SaveResults(records)
}

// failureKind names the error category for the per-filter log line.
func failureKind(err error) string {
	var malformed *spectral.MalformedRowError
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return "missing table"
	case errors.Is(err, spectral.ErrEmptyRange):
		return "empty range"
	case errors.Is(err, numeric.ErrInsufficientSamples):
		return "degenerate band"
	case errors.As(err, &malformed):
		return "malformed table"
	default:
		return "failed"
	}
}
