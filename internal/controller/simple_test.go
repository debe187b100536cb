package controller

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "loshu.dev/pkg/loshu/internal/model"
)

func newTestSimpleUI() (*SimpleUI, *bytes.Buffer) {
	var buf bytes.Buffer

	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	return NewSimpleUI(cmd), &buf
}

func loShuReport() m.Report {
	return m.Report{
		ID:      "r-1",
		Order:   3,
		Class:   m.ClassOdd,
		Method:  m.MethodSiamese,
		Variant: m.VariantFlipVertical,
		Planet:  m.PlanetFor(3),
		Square: m.Square{
			Dimension:     3,
			MagicConstant: 15,
			Matrix:        m.Matrix{{4, 9, 2}, {3, 5, 7}, {8, 1, 6}},
			Properties:    m.Properties{IsPerfect: true, IsSemiMagic: true},
		},
		GeneratedAt: time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC),
	}
}

func TestSimpleUI_DisplaySquare(t *testing.T) {
	ui, buf := newTestSimpleUI()

	require.NoError(t, ui.DisplaySquare(context.Background(), loShuReport()))

	got := buf.String()
	for _, want := range []string{
		"Order 3 (odd, siamese, flip-vertical), magic constant 15",
		"| 4 | 9 | 2 |",
		"| 8 | 1 | 6 |",
		"perfect: yes",
		"pandiagonal: no",
		"magic lines: 8",
		"cells: 9",
		"planet: Saturn",
	} {
		assert.Contains(t, got, want)
	}
}

func TestSimpleUI_DisplaySquare_CancelledContext(t *testing.T) {
	ui, buf := newTestSimpleUI()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.ErrorIs(t, ui.DisplaySquare(ctx, loShuReport()), context.Canceled)
	assert.Empty(t, buf.String())
}

func TestSimpleUI_DisplayAnalysis(t *testing.T) {
	tests := []struct {
		name         string
		analysis     m.Analysis
		err          error
		wantContains []string
	}{
		{
			name: "magic square",
			analysis: m.Analysis{
				Order:      3,
				Target:     15,
				Normal:     true,
				Properties: m.Properties{IsPerfect: true, IsSemiMagic: true},
			},
			wantContains: []string{"✓ sq.json", "order 3", "magic constant 15"},
		},
		{
			name: "not magic",
			analysis: m.Analysis{
				Order:        3,
				Target:       15,
				RowSums:      []int{6, 15, 24},
				ColumnSums:   []int{12, 15, 18},
				MainDiagonal: 15,
				AntiDiagonal: 15,
				Normal:       true,
			},
			wantContains: []string{"✗ sq.json", "not a magic square", "rows: [6 15 24]", "columns: [12 15 18]", "normal: yes"},
		},
		{
			name:         "read error",
			err:          errors.New("malformed matrix"),
			wantContains: []string{"✗ sq.json: malformed matrix"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ui, buf := newTestSimpleUI()

			err := ui.DisplayAnalysis(context.Background(), m.SquareFile{Path: "sq.json"}, tt.analysis, tt.err)
			require.NoError(t, err)

			for _, want := range tt.wantContains {
				assert.Contains(t, buf.String(), want)
			}
		})
	}
}

func TestSimpleUI_DisplayBatch(t *testing.T) {
	ui, buf := newTestSimpleUI()
	ctx := context.Background()

	var summary m.BatchSummary

	summary.Add(loShuReport())

	even := loShuReport()
	even.Class = m.ClassDoublyEven
	even.Square.Properties.IsPandiagonal = true
	summary.Add(even)
	summary.Failed = 1

	ui.DisplayConcurrencyInfo(ctx, 4, 1, 3, 12)
	ui.DisplayBatchProgress(ctx, loShuReport(), 1, 12)
	require.NoError(t, ui.DisplayBatchSummary(ctx, summary))

	got := buf.String()
	assert.Contains(t, got, "Generating 12 square(s) with 4 worker(s) (Shard 1/3)")
	assert.Contains(t, got, "[1/12] order 3 siamese flip-vertical -> perfect: yes")
	assert.Contains(t, got, "odd")
	assert.Contains(t, got, "doubly-even")
	assert.Contains(t, got, "Failed: 1")
	assert.Less(t, bytes.Index(buf.Bytes(), []byte("odd")), bytes.Index(buf.Bytes(), []byte("doubly-even")))
}

func TestSimpleUI_DisplayReports(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		ui, buf := newTestSimpleUI()
		require.NoError(t, ui.DisplayReports(context.Background(), nil))
		assert.Contains(t, buf.String(), "No reports found")
	})

	t.Run("listing", func(t *testing.T) {
		ui, buf := newTestSimpleUI()
		require.NoError(t, ui.DisplayReports(context.Background(), []m.Report{loShuReport()}))

		got := buf.String()
		assert.Contains(t, got, "siamese")
		assert.Contains(t, got, "flip-vertical")
		assert.Contains(t, got, "2026-03-04 05:06:07")
	})
}

func TestSimpleUI_DisplayDrift(t *testing.T) {
	t.Run("no drift", func(t *testing.T) {
		ui, buf := newTestSimpleUI()
		require.NoError(t, ui.DisplayDrift(context.Background(), nil, 5))
		assert.Contains(t, buf.String(), "All 5 report(s) match")
	})

	t.Run("drift", func(t *testing.T) {
		ui, buf := newTestSimpleUI()
		drifts := []m.Drift{{Report: loShuReport(), Diff: "-4 9 2\n+8 1 6\n"}}

		require.NoError(t, ui.DisplayDrift(context.Background(), drifts, 2))

		got := buf.String()
		assert.Contains(t, got, "drift: siamese/flip-vertical/3")
		assert.Contains(t, got, "+8 1 6")
		assert.Contains(t, got, "1 of 2 report(s) drifted")
	})

	t.Run("unregenerable report", func(t *testing.T) {
		ui, buf := newTestSimpleUI()
		drifts := []m.Drift{{Report: loShuReport(), Err: "unsupported order 12"}}

		require.NoError(t, ui.DisplayDrift(context.Background(), drifts, 3))

		got := buf.String()
		assert.Contains(t, got, "drift: siamese/flip-vertical/3")
		assert.Contains(t, got, "cannot regenerate: unsupported order 12")
		assert.Contains(t, got, "1 of 3 report(s) drifted")
	})
}

func TestNewUI(t *testing.T) {
	cmd := &cobra.Command{}
	cmd.SetOut(&bytes.Buffer{})

	assert.IsType(t, &SimpleUI{}, NewUI(cmd, false))
	assert.IsType(t, &TUI{}, NewUI(cmd, true))
	assert.False(t, IsTTY(nil))
}

func TestSimpleUI_DisplayBatchProgressConcurrent(t *testing.T) {
	ui, buf := newTestSimpleUI()
	report := loShuReport()

	const workers = 32

	var wg sync.WaitGroup
	for i := range workers {
		wg.Add(1)

		go func() {
			defer wg.Done()
			ui.DisplayBatchProgress(context.Background(), report, i+1, workers)
		}()
	}

	wg.Wait()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, workers)

	for _, line := range lines {
		assert.Contains(t, line, "order 3 siamese")
	}
}
