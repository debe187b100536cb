package controller

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"sync"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "loshu.dev/pkg/loshu/internal/model"
)

// SimpleUI implements UI using cobra Command's output writer.
type SimpleUI struct {
	cmd *cobra.Command
	// mu serializes writes; batch progress arrives from worker goroutines.
	mu  sync.Mutex
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(ctx context.Context, _ ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}
}

// Wait blocks until the UI is closed (no-op for SimpleUI).
func (s *SimpleUI) Wait(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}
	// SimpleUI doesn't block - it just prints and continues
}

// DisplaySquare prints the matrix of a report followed by its properties.
func (s *SimpleUI) DisplaySquare(ctx context.Context, report m.Report) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("%s\n", headline(report))
	s.printf("%s", renderMatrixTable(report.Square.Matrix))
	s.printf("%s\n", propertiesLine(report.Square.Properties))
	s.printf("%s\n\n", detailsLine(report))

	return nil
}

func renderMatrixTable(mx m.Matrix) string {
	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	table.SetRowLine(true)
	table.AppendBulk(matrixRows(mx))
	table.Render()

	return buf.String()
}

// DisplayAnalysis prints the verdict for one verified file.
func (s *SimpleUI) DisplayAnalysis(ctx context.Context, file m.SquareFile, analysis m.Analysis, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}

	if err != nil {
		s.printf("✗ %s: %v\n", file.Path, err)
		return nil
	}

	if analysis.IsMagic() {
		s.printf("✓ %s: order %d, magic constant %d, pandiagonal: %s\n",
			file.Path, analysis.Order, analysis.Target, yesNo(analysis.Properties.IsPandiagonal))

		return nil
	}

	s.printf("✗ %s: order %d is not a magic square\n", file.Path, analysis.Order)

	for _, line := range analysisDetails(analysis) {
		s.printf("    %s\n", line)
	}

	return nil
}

// DisplayConcurrencyInfo shows concurrency settings.
func (s *SimpleUI) DisplayConcurrencyInfo(ctx context.Context, threads int, shardIndex int, shardCount int, jobs int) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("Generating %d square(s) with %d worker(s) (Shard %d/%d)\n", jobs, threads, shardIndex, shardCount)
}

// DisplayBatchProgress shows one completed batch job.
func (s *SimpleUI) DisplayBatchProgress(ctx context.Context, report m.Report, done int, total int) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("[%d/%d] order %d %s %s -> perfect: %s\n",
		done, total, report.Order, report.Method, report.Variant, yesNo(report.Square.Properties.IsPerfect))
}

// DisplayBatchSummary prints the per-class property counts of a batch.
func (s *SimpleUI) DisplayBatchSummary(ctx context.Context, summary m.BatchSummary) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("\n%s", renderSummaryTable(summary))

	if summary.Failed > 0 {
		s.printf("Failed: %d\n", summary.Failed)
	}

	return nil
}

func renderSummaryTable(summary m.BatchSummary) string {
	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	table.SetHeader(summaryHeaders)
	table.SetBorder(false)
	table.SetCenterSeparator("")

	for _, class := range sortedClasses(summary) {
		table.Append(summaryRow(string(class), summary.ByClass[class]))
	}

	table.SetFooter(summaryRow("Total", summary.ClassSummary))
	table.Render()

	return buf.String()
}

// DisplayReports lists stored reports.
func (s *SimpleUI) DisplayReports(ctx context.Context, reports []m.Report) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if len(reports) == 0 {
		s.printf("No reports found\n")
		return nil
	}

	s.printf("%s", renderReportsTable(reports))

	return nil
}

func renderReportsTable(reports []m.Report) string {
	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	table.SetHeader(reportHeaders)
	table.SetBorder(false)
	table.SetCenterSeparator("")

	for _, report := range reports {
		table.Append(reportRow(report))
	}

	table.SetFooter([]string{"", "", "", "", "", "", "Reports", strconv.Itoa(len(reports))})
	table.Render()

	return buf.String()
}

// DisplayDrift prints the diff of every report that no longer matches.
func (s *SimpleUI) DisplayDrift(ctx context.Context, drifts []m.Drift, checked int) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if len(drifts) == 0 {
		s.printf("All %d report(s) match a fresh synthesis\n", checked)
		return nil
	}

	for _, drift := range drifts {
		if drift.Err != "" {
			s.printf("drift: %s\n    cannot regenerate: %s\n", drift.Report.Key(), drift.Err)
			continue
		}

		s.printf("drift: %s\n%s\n", drift.Report.Key(), drift.Diff)
	}

	s.printf("%d of %d report(s) drifted\n", len(drifts), checked)

	return nil
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
