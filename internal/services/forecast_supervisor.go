package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"
)

// ErrForecastTimeout marks a preferred path that blew its time budget. It is
// recovered internally; callers of the supervisor never see it.
var ErrForecastTimeout = errors.New("forecast computation timed out")

const defaultForecastTimeout = 3 * time.Second

// ForecastConfig selects which path a caller runs and whether results are
// cross-checked. It is fixed at construction: strategy choice is explicit
// wiring, not ambient state.
type ForecastConfig struct {
	PreferUnified  bool
	CompareResults bool
	Timeout        time.Duration
}

// ForecastSupervisor runs the selected forecasting path and guarantees a
// result. The unified path runs under a timeout and falls back to legacy on
// timeout or failure; a failing legacy path is retried once before degrading
// to an empty forecast. When comparison is enabled the alternate path runs in
// the background and mismatches are logged, never returned.
type ForecastSupervisor struct {
	legacy  ForecastStrategy
	unified ForecastStrategy
	config  ForecastConfig
}

func NewForecastSupervisor(legacy ForecastStrategy, unified ForecastStrategy, config ForecastConfig) *ForecastSupervisor {
	if config.Timeout <= 0 {
		config.Timeout = defaultForecastTimeout
	}
	return &ForecastSupervisor{legacy: legacy, unified: unified, config: config}
}

// Forecast never returns an error: every failure mode degrades to fewer or
// no occurrences. Missing a forecast is recoverable; failing the calendar
// view is not.
func (supervisor *ForecastSupervisor) Forecast(ctx context.Context, userID uint, now time.Time, horizonYears int) []HeatOccurrence {
	var occurrences []HeatOccurrence
	var err error
	fellBack := false

	if supervisor.config.PreferUnified {
		occurrences, err = supervisor.runWithTimeout(ctx, supervisor.unified, userID, now, horizonYears)
		if err != nil {
			log.Printf("forecast: unified path failed (%v), falling back to legacy", err)
			occurrences, err = runStrategy(ctx, supervisor.legacy, userID, now, horizonYears)
			fellBack = true
		}
	} else {
		occurrences, err = runStrategy(ctx, supervisor.legacy, userID, now, horizonYears)
		if err != nil {
			log.Printf("forecast: legacy path failed (%v), retrying once", err)
			occurrences, err = runStrategy(ctx, supervisor.legacy, userID, now, horizonYears)
		}
	}

	if err != nil {
		log.Printf("forecast: all paths failed for user %d: %v", userID, err)
		return []HeatOccurrence{}
	}

	// After a fallback the served result already came from the alternate
	// path; comparing it against itself says nothing.
	if supervisor.config.CompareResults && !fellBack {
		supervisor.scheduleComparison(userID, now, horizonYears, occurrences)
	}
	return occurrences
}

// runWithTimeout races the strategy against the time budget. On timeout the
// in-flight computation is abandoned, not force-terminated: its goroutine
// finishes into a buffered channel nobody reads.
func (supervisor *ForecastSupervisor) runWithTimeout(ctx context.Context, strategy ForecastStrategy, userID uint, now time.Time, horizonYears int) ([]HeatOccurrence, error) {
	type strategyResult struct {
		occurrences []HeatOccurrence
		err         error
	}

	resultCh := make(chan strategyResult, 1)
	go func() {
		occurrences, err := runStrategy(ctx, strategy, userID, now, horizonYears)
		resultCh <- strategyResult{occurrences: occurrences, err: err}
	}()

	timer := time.NewTimer(supervisor.config.Timeout)
	defer timer.Stop()

	select {
	case result := <-resultCh:
		return result.occurrences, result.err
	case <-timer.C:
		return nil, ErrForecastTimeout
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// scheduleComparison runs the alternate path detached from the request. It is
// best-effort: it may finish after the caller has moved on, and it only ever
// logs.
func (supervisor *ForecastSupervisor) scheduleComparison(userID uint, now time.Time, horizonYears int, primary []HeatOccurrence) {
	primaryStrategy, alternateStrategy := supervisor.legacy, supervisor.unified
	if supervisor.config.PreferUnified {
		primaryStrategy, alternateStrategy = supervisor.unified, supervisor.legacy
	}

	go func() {
		alternate, err := runStrategy(context.Background(), alternateStrategy, userID, now, horizonYears)
		if err != nil {
			log.Printf("forecast: %s comparison run failed: %v", alternateStrategy.Name(), err)
			return
		}
		for _, mismatch := range CompareForecasts(primaryStrategy.Name(), alternateStrategy.Name(), primary, alternate) {
			log.Printf("forecast: validation mismatch for user %d: %s", userID, mismatch)
		}
	}()
}

// runStrategy executes one path with panic containment, so a bug in either
// implementation surfaces as an error the supervisor can recover from.
func runStrategy(ctx context.Context, strategy ForecastStrategy, userID uint, now time.Time, horizonYears int) (occurrences []HeatOccurrence, err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			occurrences = nil
			err = fmt.Errorf("%s path panicked: %v", strategy.Name(), recovered)
		}
	}()
	return strategy.Forecast(ctx, userID, now, horizonYears)
}
