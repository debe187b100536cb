package cmd

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"

	domainmocks "loshu.dev/pkg/loshu/internal/domain/mocks"
)

// newWorkflowTestCmd builds a root command carrying sub, swaps the package
// workflow for a mock and sends logs to a temp file.
func newWorkflowTestCmd(t *testing.T, sub *cobra.Command) (*cobra.Command, *domainmocks.MockWorkflow) {
	t.Helper()

	mockWorkflow := domainmocks.NewMockWorkflow(t)

	cmd := newRootCmd()
	cmd.AddCommand(sub)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{})

	originalWorkflow := workflow
	workflow = mockWorkflow
	t.Cleanup(func() { workflow = originalWorkflow })

	logFileFlag = filepath.Join(t.TempDir(), "loshu.log")

	return cmd, mockWorkflow
}
