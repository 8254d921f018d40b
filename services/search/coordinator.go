// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package search

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/sync/errgroup"
)

var coordinatorTracer = otel.Tracer("search.coordinator")

// =============================================================================
// Run State
// =============================================================================

// State is the coordinator lifecycle phase.
//
// The progression is strictly forward:
// Idle -> Dispatching -> Running -> Joined -> Reporting -> Done.
type State int32

const (
	StateIdle State = iota
	StateDispatching
	StateRunning
	StateJoined
	StateReporting
	StateDone
)

// String returns the lowercase phase name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateDispatching:
		return "dispatching"
	case StateRunning:
		return "running"
	case StateJoined:
		return "joined"
	case StateReporting:
		return "reporting"
	case StateDone:
		return "done"
	default:
		return "unknown"
	}
}

// =============================================================================
// Result
// =============================================================================

// Result is the final outcome of one search run.
type Result struct {
	// RunID uniquely identifies the run in logs and traces.
	RunID string

	// Primes holds every prime in [1, UpperBound], sorted ascending.
	Primes []int

	// Elapsed is the wall-clock duration of the parallel phase plus
	// reporting.
	Elapsed time.Duration

	// StartedAt and FinishedAt bracket the run in local wall-clock time.
	StartedAt  time.Time
	FinishedAt time.Time
}

// =============================================================================
// Coordinator
// =============================================================================

// Coordinator fans out the search workers, joins them, and reports.
//
// # Description
//
// One Coordinator owns one run. Run partitions [1, UpperBound] into
// per-worker sub-ranges, launches one goroutine per non-empty
// sub-range, blocks until all of them terminate, then sorts the
// collected primes and writes the report. There is no timeout and no
// mid-run cancellation: a stuck worker is a fatal hang by design,
// since no recoverable path exists for a half-finished search.
//
// # Thread Safety
//
// Run must be called at most once per Coordinator. State is safe to
// read from other goroutines while a run is in flight.
type Coordinator struct {
	cfg   Config
	sink  *Sink
	out   io.Writer
	state atomic.Int32
}

// CoordinatorOption customizes a Coordinator.
type CoordinatorOption func(*Coordinator)

// WithOutput directs all run output (immediate lines, deferred lines,
// and the summary) to w instead of stdout.
func WithOutput(w io.Writer) CoordinatorOption {
	return func(c *Coordinator) {
		c.out = w
		c.sink = NewSink(w)
	}
}

// NewCoordinator returns an idle Coordinator for cfg.
func NewCoordinator(cfg Config, opts ...CoordinatorOption) *Coordinator {
	c := &Coordinator{
		cfg:  cfg,
		out:  os.Stdout,
		sink: NewSink(os.Stdout),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// State returns the current lifecycle phase.
func (c *Coordinator) State() State {
	return State(c.state.Load())
}

func (c *Coordinator) setState(s State) {
	c.state.Store(int32(s))
}

// Run executes the full search and returns the sorted result.
//
// Description:
//
//	Validates the config, partitions the range, fans out one worker
//	goroutine per non-empty sub-range, blocks at the join barrier,
//	then sorts and reports. Deferred-mode prime lines and the summary
//	block are written to the coordinator's output writer.
//
// Inputs:
//   - ctx: Context for tracing. Must not be nil. The run does not
//     observe cancellation mid-search; joins are unconditional.
//
// Outputs:
//   - *Result: Sorted primes plus run timing. Non-nil on success.
//   - error: Non-nil only for an invalid config; the engine has no
//     recoverable runtime error path.
func (c *Coordinator) Run(ctx context.Context) (*Result, error) {
	ctx, span := coordinatorTracer.Start(ctx, "search.Run")
	defer span.End()

	if err := c.cfg.Validate(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	runID := uuid.NewString()
	span.SetAttributes(
		attribute.String("run_id", runID),
		attribute.Int("workers", c.cfg.Workers),
		attribute.Int("upper_bound", c.cfg.UpperBound),
		attribute.String("print_mode", c.cfg.PrintMode.String()),
		attribute.String("scheme", c.cfg.Scheme.String()),
	)

	slog.Info("starting prime search",
		slog.String("run_id", runID),
		slog.Int("workers", c.cfg.Workers),
		slog.Int("upper_bound", c.cfg.UpperBound),
		slog.String("print_mode", c.cfg.PrintMode.String()),
		slog.String("scheme", c.cfg.Scheme.String()),
	)

	start := time.Now()

	c.setState(StateDispatching)
	ranges := Partition(c.cfg.UpperBound, c.cfg.Workers)

	launched := 0
	var g errgroup.Group
	for _, sub := range ranges {
		if sub.Empty() {
			// Valid degenerate case when upper_bound < workers.
			slog.Debug("skipping empty sub-range",
				slog.String("run_id", runID),
				slog.Int("worker", sub.Worker),
			)
			continue
		}
		launched++
		g.Go(func() error {
			c.searchRange(sub)
			return nil
		})
	}
	c.setState(StateRunning)
	span.SetAttributes(attribute.Int("workers_launched", launched))

	// Barrier join: blocks until every launched worker terminates.
	// Workers return no errors; g.Wait is used purely as the barrier.
	_ = g.Wait()
	c.setState(StateJoined)

	// Past the barrier no writer remains; the coordinator is the sole
	// owner of the prime set from here on.
	primes := c.sink.Primes()
	sort.Ints(primes)

	c.setState(StateReporting)
	if c.cfg.PrintMode == PrintDeferred {
		writeDeferred(c.out, primes)
	}

	finished := time.Now()
	res := &Result{
		RunID:      runID,
		Primes:     primes,
		Elapsed:    finished.Sub(start),
		StartedAt:  start,
		FinishedAt: finished,
	}
	writeSummary(c.out, res)
	c.setState(StateDone)

	span.SetAttributes(
		attribute.Int("primes_found", len(primes)),
		attribute.Float64("elapsed_seconds", res.Elapsed.Seconds()),
	)
	span.SetStatus(codes.Ok, "")

	slog.Info("prime search completed",
		slog.String("run_id", runID),
		slog.Int("primes_found", len(primes)),
		slog.Duration("elapsed", res.Elapsed),
	)

	return res, nil
}

// searchRange is the worker loop: scan one sub-range, consult the
// oracle per candidate, and forward each find to the sink.
//
// In immediate mode the line is emitted before the value is recorded,
// so a reader tailing the output never sees a count ahead of the
// printed lines. Workers share nothing but the sink; the nested
// divisor pool inside IsPrimeParallel is self-contained and joins
// before the loop continues.
func (c *Coordinator) searchRange(sub SubRange) {
	for num := sub.Start; num <= sub.End; num++ {
		var prime bool
		if c.cfg.Scheme == SchemeDivisor {
			prime = IsPrimeParallel(num, c.cfg.Workers)
		} else {
			prime = IsPrime(num)
		}
		if !prime {
			continue
		}
		if c.cfg.PrintMode == PrintImmediate {
			c.sink.EmitImmediate(sub.Worker, num)
		}
		c.sink.Record(num)
	}
}

// BannerText returns the configuration echo printed before dispatch.
func (c *Coordinator) BannerText() string {
	return fmt.Sprintf(
		"Starting Prime Number Search\nConfiguration:\n"+
			"  - Number of workers: %d\n"+
			"  - Max number: %d\n"+
			"  - Print mode: %s\n"+
			"  - Division scheme: %s",
		c.cfg.Workers, c.cfg.UpperBound, c.cfg.PrintMode, c.cfg.Scheme)
}
