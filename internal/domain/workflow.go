package domain

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/pmezard/go-difflib/difflib"
	"golang.org/x/sync/errgroup"

	"loshu.dev/pkg/loshu/internal/adapter"
	"loshu.dev/pkg/loshu/internal/controller"
	m "loshu.dev/pkg/loshu/internal/model"
	pkg "loshu.dev/pkg/loshu/pkg"
)

// GenerateArgs contains the arguments for generating squares on demand.
type GenerateArgs struct {
	Orders  []int
	Method  m.Method
	Variant m.Variant
	// Format selects the output; FormatTable goes through the UI, the others
	// are written to Output.
	Format  adapter.Format
	Output  io.Writer
	Save    bool
	Reports m.Path
}

// BatchArgs contains the arguments for a batch synthesis run.
type BatchArgs struct {
	Orders          []int
	Variants        []m.Variant
	Reports         m.Path
	Threads         int
	ShardIndex      int
	TotalShardCount int
	SpillDir        string
}

// VerifyArgs contains the arguments for verifying squares stored on disk.
type VerifyArgs struct {
	Patterns []string
}

// ViewArgs contains the arguments for viewing stored reports.
type ViewArgs struct {
	Reports m.Path
}

// CheckArgs contains the arguments for re-checking stored reports.
type CheckArgs struct {
	Reports m.Path
}

// Workflow defines the operations exposed by the CLI.
type Workflow interface {
	Generate(ctx context.Context, args GenerateArgs) error
	Batch(ctx context.Context, args BatchArgs) error
	Verify(ctx context.Context, args VerifyArgs) error
	View(ctx context.Context, args ViewArgs) error
	Check(ctx context.Context, args CheckArgs) error
}

type workflow struct {
	adapter.ReportStore
	adapter.SquareSource
	controller.UI
	Synthesizer
	JobStreamer
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	squareSource adapter.SquareSource,
	reportStore adapter.ReportStore,
	ui controller.UI,
	synthesizer Synthesizer,
	streamer JobStreamer,
) Workflow {
	return &workflow{
		SquareSource: squareSource,
		ReportStore:  reportStore,
		UI:           ui,
		Synthesizer:  synthesizer,
		JobStreamer:  streamer,
	}
}

// Generate synthesizes one square per order. Table output goes through the
// UI; machine formats are written to args.Output.
func (w *workflow) Generate(ctx context.Context, args GenerateArgs) error {
	if len(args.Orders) == 0 {
		return fmt.Errorf("no orders given")
	}

	format := args.Format
	if format == "" {
		format = adapter.FormatTable
	}

	interactive := format == adapter.FormatTable
	if !interactive && args.Output == nil {
		return fmt.Errorf("format %s needs an output writer", format)
	}

	if interactive {
		if err := w.Start(ctx, controller.WithMode(controller.ModeGenerate)); err != nil {
			slog.Error("Failed to start UI", "error", err)
			return err
		}

		defer w.Close(ctx)
	}

	reports := make([]m.Report, 0, len(args.Orders))

	for _, order := range args.Orders {
		report, err := w.Describe(order, WithMethod(args.Method), WithVariant(args.Variant))
		if err != nil {
			slog.Error("Failed to generate square", "order", order, "error", err)
			return fmt.Errorf("generate order %d: %w", order, err)
		}

		if interactive {
			err = w.DisplaySquare(ctx, report)
		} else {
			err = adapter.EncodeSquare(args.Output, format, report.Square)
		}

		if err != nil {
			return fmt.Errorf("display: %w", err)
		}

		reports = append(reports, report)
	}

	if args.Save {
		if err := w.SaveReports(args.Reports, reports); err != nil {
			return fmt.Errorf("save reports: %w", err)
		}
	}

	if interactive {
		w.Wait(ctx)
	}

	return nil
}

// Batch synthesizes every (order, method, variant) combination assigned to
// this shard on a bounded worker pool, spilling reports to disk as they
// complete. Failed jobs do not stop the others; they are counted in the
// summary and returned joined.
func (w *workflow) Batch(ctx context.Context, args BatchArgs) error {
	for _, order := range args.Orders {
		if _, err := Classify(order); err != nil {
			return err
		}
	}

	if len(args.Orders) == 0 {
		return fmt.Errorf("no orders given")
	}

	variants := args.Variants
	if len(variants) == 0 {
		variants = []m.Variant{m.VariantIdentity}
	}

	threads := normalizeBufferSize(args.Threads)

	shardIndex, totalShards := args.ShardIndex, args.TotalShardCount
	if totalShards <= 0 {
		shardIndex, totalShards = 0, 1
	}

	if shardIndex < 0 || shardIndex >= totalShards {
		return fmt.Errorf("shard index %d is outside [0,%d)", shardIndex, totalShards)
	}

	if err := w.Start(ctx, controller.WithMode(controller.ModeBatch)); err != nil {
		slog.Error("Failed to start UI", "error", err)
		return err
	}

	defer w.Close(ctx)

	jobs := w.collectJobs(ctx, args.Orders, variants, threads, shardIndex, totalShards)
	if err := ctx.Err(); err != nil {
		return err
	}

	w.DisplayConcurrencyInfo(ctx, threads, shardIndex, totalShards, len(jobs))

	spill, err := pkg.NewFileSpill[m.Report](args.SpillDir)
	if err != nil {
		return fmt.Errorf("create spill: %w", err)
	}

	defer func() {
		if err := spill.Remove(); err != nil {
			slog.Warn("Failed to remove spill", "path", spill.Path(), "error", err)
		}
	}()

	failures, err := w.runJobs(ctx, jobs, threads, spill)
	if err != nil {
		return err
	}

	summary, err := batchSummaryFromReports(spill)
	if err != nil {
		return fmt.Errorf("summarize batch: %w", err)
	}

	summary.Failed = len(failures)

	if args.Reports != "" {
		reports, err := reportsFromSpill(spill)
		if err != nil {
			return fmt.Errorf("read spilled reports: %w", err)
		}

		if err := w.SaveReports(args.Reports, reports); err != nil {
			return fmt.Errorf("save reports: %w", err)
		}
	}

	if err := w.DisplayBatchSummary(ctx, summary); err != nil {
		return fmt.Errorf("display: %w", err)
	}

	w.Wait(ctx)

	return errors.Join(failures...)
}

func (w *workflow) collectJobs(ctx context.Context, orders []int, variants []m.Variant, threads, shardIndex, totalShards int) []m.Job {
	all := w.Get(ctx, orders, variants, threads)
	sharded := w.ShardJobs(ctx, all, threads, shardIndex, totalShards)

	jobs := make([]m.Job, 0)
	for job := range sharded {
		jobs = append(jobs, job)
	}

	slog.Debug("Collected jobs", "count", len(jobs), "shard", shardIndex, "shards", totalShards)

	return jobs
}

func (w *workflow) runJobs(ctx context.Context, jobs []m.Job, threads int, spill pkg.FileSpill[m.Report]) ([]error, error) {
	var (
		mu       sync.Mutex
		done     int
		failures []error
	)

	var group errgroup.Group
	group.SetLimit(threads)

	for _, job := range jobs {
		if ctx.Err() != nil {
			break
		}

		group.Go(func() error {
			if ctx.Err() != nil {
				return nil
			}

			report, err := w.Describe(job.Order, WithMethod(job.Method), WithVariant(job.Variant))
			if err != nil {
				slog.Error("Batch job failed", "job", job.String(), "error", err)

				mu.Lock()
				failures = append(failures, fmt.Errorf("%s: %w", job, err))
				mu.Unlock()

				return nil
			}

			if err := spill.Append(report); err != nil {
				return fmt.Errorf("spill %s: %w", job, err)
			}

			mu.Lock()
			done++
			current := done
			mu.Unlock()

			w.DisplayBatchProgress(ctx, report, current, len(jobs))

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return failures, nil
}

// Verify analyses every file matched by args.Patterns and fails when any of
// them is not a magic square.
func (w *workflow) Verify(ctx context.Context, args VerifyArgs) error {
	paths, err := w.Glob(args.Patterns)
	if err != nil {
		return fmt.Errorf("find squares: %w", err)
	}

	if err := w.Start(ctx, controller.WithMode(controller.ModeVerify)); err != nil {
		slog.Error("Failed to start UI", "error", err)
		return err
	}

	defer w.Close(ctx)

	failed := 0

	for _, path := range paths {
		file, err := w.ReadSquare(path)
		if err != nil {
			failed++

			if displayErr := w.DisplayAnalysis(ctx, m.SquareFile{Path: path}, m.Analysis{}, err); displayErr != nil {
				return displayErr
			}

			continue
		}

		analysis, err := Analyze(file.Matrix)
		if err != nil || !analysis.IsMagic() {
			failed++
		}

		if displayErr := w.DisplayAnalysis(ctx, file, analysis, err); displayErr != nil {
			return displayErr
		}
	}

	w.Wait(ctx)

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d file(s)", ErrNotMagic, failed, len(paths))
	}

	return nil
}

// View displays the stored reports.
func (w *workflow) View(ctx context.Context, args ViewArgs) error {
	reports, err := w.LoadReports(args.Reports)
	if err != nil {
		return fmt.Errorf("load reports: %w", err)
	}

	if err := w.Start(ctx, controller.WithMode(controller.ModeView)); err != nil {
		slog.Error("Failed to start UI", "error", err)
		return err
	}

	defer w.Close(ctx)

	if err := w.DisplayReports(ctx, reports); err != nil {
		return fmt.Errorf("display: %w", err)
	}

	w.Wait(ctx)

	return nil
}

// Check regenerates every stored report and reports the ones whose square no
// longer matches.
func (w *workflow) Check(ctx context.Context, args CheckArgs) error {
	reports, err := w.LoadReports(args.Reports)
	if err != nil {
		return fmt.Errorf("load reports: %w", err)
	}

	if err := w.Start(ctx, controller.WithMode(controller.ModeCheck)); err != nil {
		slog.Error("Failed to start UI", "error", err)
		return err
	}

	defer w.Close(ctx)

	drifts := make([]m.Drift, 0)

	for _, report := range reports {
		if err := ctx.Err(); err != nil {
			return err
		}

		fresh, err := w.Synthesizer.Generate(report.Order, WithMethod(report.Method), WithVariant(report.Variant))
		if err != nil {
			slog.Warn("Report cannot be regenerated", "key", report.Key(), "id", report.ID, "error", err)
			drifts = append(drifts, m.Drift{Report: report, Err: err.Error()})

			continue
		}

		diff, err := squareDiff(report.Square, fresh)
		if err != nil {
			return fmt.Errorf("diff %s: %w", report.Key(), err)
		}

		if diff != "" {
			slog.Info("Report drifted", "key", report.Key(), "id", report.ID)
			drifts = append(drifts, m.Drift{Report: report, Diff: diff})
		}
	}

	if err := w.DisplayDrift(ctx, drifts, len(reports)); err != nil {
		return fmt.Errorf("display: %w", err)
	}

	w.Wait(ctx)

	if len(drifts) > 0 {
		return fmt.Errorf("%w: %d of %d report(s)", ErrDrift, len(drifts), len(reports))
	}

	return nil
}

// squareDiff returns a unified diff between the stored and fresh renderings,
// or "" when they match.
func squareDiff(stored, fresh m.Square) (string, error) {
	a, b := renderForDiff(stored), renderForDiff(fresh)
	if a == b {
		return "", nil
	}

	return difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(a),
		B:        difflib.SplitLines(b),
		FromFile: "stored",
		ToFile:   "fresh",
		Context:  1,
	})
}

func renderForDiff(s m.Square) string {
	return s.Matrix.String() + fmt.Sprintf(
		"constant %d\nperfect %t\nsemi-magic %t\npandiagonal %t\n",
		s.MagicConstant, s.Properties.IsPerfect, s.Properties.IsSemiMagic, s.Properties.IsPandiagonal,
	)
}
