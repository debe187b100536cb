// Package controller provides output adapters for displaying magic squares and batch results.
package controller

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	m "loshu.dev/pkg/loshu/internal/model"
)

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	ModeGenerate StartMode = iota
	ModeBatch
	ModeVerify
	ModeView
	ModeCheck
)

func (s StartMode) String() string {
	switch s {
	case ModeGenerate:
		return "generate"
	case ModeBatch:
		return "batch"
	case ModeVerify:
		return "verify"
	case ModeView:
		return "view"
	case ModeCheck:
		return "check"
	default:
		return "unknown"
	}
}

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode StartMode
}

// WithMode sets the operation the UI is about to display.
func WithMode(mode StartMode) StartOption {
	return func(c *StartConfig) {
		c.mode = mode
	}
}

func newStartConfig(options []StartOption) StartConfig {
	cfg := StartConfig{mode: ModeGenerate}
	for _, option := range options {
		option(&cfg)
	}

	return cfg
}

// UI defines the interface for displaying synthesis and verification results.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	Start(ctx context.Context, options ...StartOption) error
	Close(ctx context.Context)
	Wait(ctx context.Context) // Wait for UI to finish (user closes it)
	DisplaySquare(ctx context.Context, report m.Report) error
	DisplayAnalysis(ctx context.Context, file m.SquareFile, analysis m.Analysis, err error) error
	DisplayConcurrencyInfo(ctx context.Context, threads int, shardIndex int, shardCount int, jobs int)
	DisplayBatchProgress(ctx context.Context, report m.Report, done int, total int)
	DisplayBatchSummary(ctx context.Context, summary m.BatchSummary) error
	DisplayReports(ctx context.Context, reports []m.Report) error
	DisplayDrift(ctx context.Context, drifts []m.Drift, checked int) error
}

// NewUI picks the interactive TUI for terminals and the plain UI otherwise.
func NewUI(cmd *cobra.Command, tty bool) UI {
	if tty {
		return NewTUI(cmd.OutOrStdout())
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether f is attached to a terminal.
func IsTTY(f *os.File) bool {
	if f == nil {
		return false
	}

	return term.IsTerminal(int(f.Fd()))
}
