package cli

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/lineup/exclusion"
	"github.com/katalvlaran/lineup/ingest"
	"github.com/katalvlaran/lineup/internal/config"
	"github.com/katalvlaran/lineup/internal/logger"
	"github.com/katalvlaran/lineup/internal/metrics"
	"github.com/katalvlaran/lineup/pipeline"
	"github.com/katalvlaran/lineup/report"
	"github.com/katalvlaran/lineup/sample"
	"github.com/katalvlaran/lineup/store"
)

var (
	// ErrNoInput is returned when run has no data source.
	ErrNoInput = errors.New("no input: use --performers with --segments, --yaml or --sample")

	// ErrHalfSheets is returned when only one of the two sheets is given.
	ErrHalfSheets = errors.New("--performers and --segments go together")
)

type runFlags struct {
	config     string
	performers string
	segments   string
	yaml       string
	sample     int64
	method     string
	outDir     string
	sqlite     string
	textfile   string
	quiet      bool
}

func newRunCmd() *cobra.Command {
	f := &runFlags{}
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Assign performers and plan the show order",
		Long: `Run loads the roster, assigns performers to segments in four phases and
orders the segments by a spanning forest of their shared-performer graph.

Input comes from the two sign-up sheets (--performers, --segments), from one
YAML roster document (--yaml) or from a seeded synthetic roster (--sample).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runLineup(cmd, f)
		},
	}
	flags := cmd.Flags()
	flags.StringVarP(&f.config, "config", "c", "", "YAML config file (default $LINEUP_CONFIG)")
	flags.StringVar(&f.performers, "performers", "", "performer sheet CSV")
	flags.StringVar(&f.segments, "segments", "", "segment sheet CSV")
	flags.StringVar(&f.yaml, "yaml", "", "single YAML roster document")
	flags.Int64Var(&f.sample, "sample", 0, "generate a synthetic roster with this seed")
	flags.StringVar(&f.method, "method", "", "spanning forest method: kruskal or prim")
	flags.StringVarP(&f.outDir, "out", "o", "", "directory for result CSV files")
	flags.StringVar(&f.sqlite, "sqlite", "", "SQLite database to record the run in")
	flags.StringVar(&f.textfile, "metrics-textfile", "", "write Prometheus metrics to this file")
	flags.BoolVarP(&f.quiet, "quiet", "q", false, "skip the console summary")

	return cmd
}

// applyFlags lets explicit flags override loaded configuration.
func (f *runFlags) applyFlags(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("method") {
		cfg.Ordering.Method = f.method
	}
	if cmd.Flags().Changed("out") {
		cfg.Output.Dir = f.outDir
	}
	if cmd.Flags().Changed("sqlite") {
		cfg.Output.SQLite = f.sqlite
	}
	if cmd.Flags().Changed("metrics-textfile") {
		cfg.Metrics.Textfile = f.textfile
	}
}

// loadInput picks the data source from flags. Rules from a YAML document are
// appended after the configured ones.
func (f *runFlags) loadInput(cmd *cobra.Command, cfg *config.Config) (pipeline.Input, error) {
	in := pipeline.Input{Rules: cfg.Rules()}
	switch {
	case f.yaml != "":
		doc, err := ingest.LoadYAMLFile(f.yaml)
		if err != nil {
			return in, err
		}
		in.Performers, in.Segments = doc.Performers, doc.Segments
		for _, pair := range doc.ExclusionPairs {
			in.Rules = append(in.Rules, exclusion.Rule{A: pair[0], B: pair[1]})
		}
	case f.performers != "" || f.segments != "":
		if f.performers == "" || f.segments == "" {
			return in, ErrHalfSheets
		}
		perfs, segs, err := ingest.LoadFiles(f.performers, f.segments)
		if err != nil {
			return in, err
		}
		in.Performers, in.Segments = perfs, segs
	case cmd.Flags().Changed("sample"):
		in.Performers, in.Segments = sample.Generate(sample.DefaultConfig(), rand.New(rand.NewSource(f.sample)))
	default:
		return in, ErrNoInput
	}

	return in, nil
}

func runLineup(cmd *cobra.Command, f *runFlags) error {
	ctx := cmd.Context()
	cfg, err := config.Load(ctx, f.config)
	if err != nil {
		return err
	}
	f.applyFlags(cmd, cfg)
	if err = cfg.Validate(); err != nil {
		return err
	}

	log, err := logger.New(cfg.LogLevel, logger.WithOutput(cmd.ErrOrStderr()))
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	in, err := f.loadInput(cmd, cfg)
	if err != nil {
		return err
	}

	mgr := metrics.NewManager()
	started := time.Now()
	out, err := pipeline.Run(ctx, in, pipeline.Options{
		Method:           cfg.Ordering.Method,
		Threshold:        cfg.Exclusion.Threshold,
		SegmentDefault:   cfg.SegmentDefault(),
		PerformerDefault: cfg.PerformerDefault(),
		Logger:           log,
		Recorder:         mgr,
	})
	if err != nil {
		return err
	}
	log.Debug("pipeline finished", zap.Duration("elapsed", time.Since(started)))

	w := cmd.OutOrStdout()
	if !f.quiet {
		if err = report.Render(w, out.Summary()); err != nil {
			return err
		}
		printWarnings(w, out.Warnings)
	}

	if cfg.Output.Dir != "" {
		if err = report.WriteCSV(cfg.Output.Dir, out.Records); err != nil {
			return err
		}
		printSuccess(w, fmt.Sprintf("Wrote results to %s", cfg.Output.Dir))
	}

	if cfg.Output.SQLite != "" {
		id, err := saveRun(cmd, cfg, out)
		if err != nil {
			return err
		}
		printSuccess(w, "Recorded run")
		printLabelValue(w, "Run ID", id)
	}

	if cfg.Metrics.Textfile != "" {
		mgr.RecordOutcome(metricsOutcome(out))
		if err = mgr.WriteTextfile(cfg.Metrics.Textfile); err != nil {
			return err
		}
		log.Info("metrics written", zap.String("path", cfg.Metrics.Textfile))
	}

	return nil
}

func saveRun(cmd *cobra.Command, cfg *config.Config, out *pipeline.Outcome) (string, error) {
	s, err := store.Open(cfg.Output.SQLite)
	if err != nil {
		return "", err
	}
	defer s.Close()

	return s.SaveRun(cmd.Context(), &store.Run{
		Method:    cfg.Ordering.Method,
		Threshold: cfg.Exclusion.Threshold,
		Ceiling:   out.Ceiling,
		Records:   out.Records,
		Warnings:  out.Warnings,
	})
}

func metricsOutcome(out *pipeline.Outcome) metrics.Outcome {
	return metrics.Outcome{
		Performers:      len(out.Roster.Performers),
		Segments:        len(out.Roster.Segments),
		Relations:       out.Result.Assignment.Len(),
		Excluded:        len(out.Result.Excluded),
		Unassigned:      len(out.Result.Unassigned),
		Ceiling:         out.Ceiling,
		ForestWeight:    out.Order.TotalWeight,
		AdjacentOverlap: out.Order.AdjacentOverlap,
		Components:      out.Order.Components,
	}
}
