// Package pipeline runs one lineup end to end: roster normalization,
// exclusion policy, assignment, capacity ceiling, conflict graph, show order
// and record projection.
//
// Data problems never fail a run; they surface as warnings on the Outcome.
// Run returns an error only for invalid options or a cancelled context.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/lineup/assign"
	"github.com/katalvlaran/lineup/conflict"
	"github.com/katalvlaran/lineup/core"
	"github.com/katalvlaran/lineup/exclusion"
	"github.com/katalvlaran/lineup/order"
	"github.com/katalvlaran/lineup/prim_kruskal"
	"github.com/katalvlaran/lineup/report"
	"github.com/katalvlaran/lineup/roster"
)

// ErrInvalidOptions is returned for options Run cannot honor.
var ErrInvalidOptions = errors.New("pipeline: invalid options")

// Stage names reported to a Recorder.
const (
	StageRoster   = "roster"
	StageAssign   = "assign"
	StageCeiling  = "ceiling"
	StageConflict = "conflict"
	StageOrder    = "order"
	StageReport   = "report"
)

// Input is the raw data of one run.
type Input struct {
	Performers []roster.PerformerRecord
	Segments   []roster.SegmentRecord
	Rules      []exclusion.Rule
}

// Recorder receives per-relation, per-stage and per-warning events.
type Recorder interface {
	assign.Observer
	ObserveStage(stage string, d time.Duration)
	Warned(kind string)
}

// Options configures Run. The zero value is usable.
type Options struct {
	// Method is prim_kruskal.MethodKruskal (default) or MethodPrim.
	Method string

	// Threshold is the low-rating exclusion share; 0 means exclusion.DefaultThreshold.
	Threshold float64

	// SegmentDefault and PerformerDefault replace unparsable capacities.
	// A zero Range keeps the roster default.
	SegmentDefault   roster.Range
	PerformerDefault roster.Range

	Logger   *zap.Logger
	Recorder Recorder
}

// Outcome is everything one run produced.
type Outcome struct {
	Roster   *roster.Roster
	Result   *assign.Result
	Graph    *core.Graph
	Order    *order.ShowOrder
	Records  report.Records
	Warnings []roster.Warning
	Ceiling  int64
}

// Summary adapts the outcome for report.Render.
func (o *Outcome) Summary() report.Summary {
	return report.Summary{
		Records:         o.Records,
		Warnings:        o.Warnings,
		Ceiling:         o.Ceiling,
		ForestWeight:    o.Order.TotalWeight,
		AdjacentOverlap: o.Order.AdjacentOverlap,
	}
}

func (opts *Options) normalize() error {
	if opts.Method == "" {
		opts.Method = prim_kruskal.MethodKruskal
	}
	if !prim_kruskal.ValidMethod(opts.Method) {
		return fmt.Errorf("%w: ordering method %q", ErrInvalidOptions, opts.Method)
	}
	if opts.Threshold == 0 {
		opts.Threshold = exclusion.DefaultThreshold
	}
	if opts.Threshold < 0 {
		return fmt.Errorf("%w: threshold %v", ErrInvalidOptions, opts.Threshold)
	}
	if opts.SegmentDefault == (roster.Range{}) {
		opts.SegmentDefault = roster.DefaultSegmentRange
	}
	if opts.PerformerDefault == (roster.Range{}) {
		opts.PerformerDefault = roster.DefaultPerformerRange
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	return nil
}

// run carries the per-call state of Run.
type run struct {
	ctx  context.Context
	opts Options
	out  *Outcome
}

// stage times fn and checks ctx before it starts.
func (r *run) stage(name string, fn func() error) error {
	if err := r.ctx.Err(); err != nil {
		return fmt.Errorf("pipeline: %s: %w", name, err)
	}
	start := time.Now()
	err := fn()
	elapsed := time.Since(start)
	if r.opts.Recorder != nil {
		r.opts.Recorder.ObserveStage(name, elapsed)
	}
	r.opts.Logger.Debug("stage done", zap.String("stage", name), zap.Duration("elapsed", elapsed))
	if err != nil {
		return fmt.Errorf("pipeline: %s: %w", name, err)
	}

	return nil
}

func (r *run) warn(ws ...roster.Warning) {
	for _, w := range ws {
		r.out.Warnings = append(r.out.Warnings, w)
		r.opts.Logger.Warn(string(w.Kind), zap.String("subject", w.Subject), zap.String("detail", w.Detail))
		if r.opts.Recorder != nil {
			r.opts.Recorder.Warned(string(w.Kind))
		}
	}
}

// Run executes every stage in order.
func Run(ctx context.Context, in Input, opts Options) (*Outcome, error) {
	if err := opts.normalize(); err != nil {
		return nil, err
	}
	if ctx == nil {
		ctx = context.Background()
	}
	r := &run{ctx: ctx, opts: opts, out: &Outcome{}}
	out := r.out

	var policy *exclusion.Policy
	err := r.stage(StageRoster, func() error {
		var ws []roster.Warning
		out.Roster, ws = roster.Build(in.Performers, in.Segments,
			roster.WithDefaults(opts.SegmentDefault, opts.PerformerDefault))
		r.warn(ws...)
		policy, ws = exclusion.NewPolicy(out.Roster, in.Rules)
		r.warn(ws...)
		return nil
	})
	if err != nil {
		return nil, err
	}

	err = r.stage(StageAssign, func() error {
		engineOpts := []assign.Option{
			assign.WithLogger(opts.Logger.Named("assign")),
			assign.WithThreshold(opts.Threshold),
		}
		if opts.Recorder != nil {
			engineOpts = append(engineOpts, assign.WithObserver(opts.Recorder))
		}
		out.Result = assign.New(out.Roster, policy, engineOpts...).Run()
		r.warn(out.Result.Warnings...)
		return nil
	})
	if err != nil {
		return nil, err
	}

	err = r.stage(StageCeiling, func() error {
		ceiling, cerr := assign.CapacityCeiling(ctx, out.Roster, out.Result.Excluded)
		out.Ceiling = ceiling
		return cerr
	})
	if err != nil {
		return nil, err
	}

	err = r.stage(StageConflict, func() error {
		g, cerr := conflict.Build(out.Roster, out.Result.Assignment)
		out.Graph = g
		return cerr
	})
	if err != nil {
		return nil, err
	}

	err = r.stage(StageOrder, func() error {
		show, oerr := order.Plan(out.Graph, order.WithMethod(opts.Method), order.WithContext(ctx))
		out.Order = show
		return oerr
	})
	if err != nil {
		return nil, err
	}

	err = r.stage(StageReport, func() error {
		out.Records = report.Project(out.Roster, out.Result.Assignment, out.Order)
		return nil
	})
	if err != nil {
		return nil, err
	}

	opts.Logger.Info("lineup ready",
		zap.Int("relations", out.Result.Assignment.Len()),
		zap.Int64("ceiling", out.Ceiling),
		zap.Int64("forest_weight", out.Order.TotalWeight),
		zap.Int64("adjacent_overlap", out.Order.AdjacentOverlap),
		zap.Int("warnings", len(out.Warnings)),
	)

	return out, nil
}
