package cmd

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"loshu.dev/pkg/loshu/internal/domain"
)

func TestVerifyCmd_PassesPatterns(t *testing.T) {
	cmd, mockWorkflow := newWorkflowTestCmd(t, newVerifyCmd())

	mockWorkflow.On("Verify", mock.Anything, mock.MatchedBy(func(args domain.VerifyArgs) bool {
		return assert.ObjectsAreEqual([]string{"squares/**/*.json", "lo-shu.txt"}, args.Patterns)
	})).Return(nil)

	cmd.SetArgs([]string{"verify", "squares/**/*.json", "lo-shu.txt"})
	err := cmd.Execute()
	require.NoError(t, err)

	mockWorkflow.AssertExpectations(t)
}

func TestVerifyCmd_RequiresPattern(t *testing.T) {
	cmd, mockWorkflow := newWorkflowTestCmd(t, newVerifyCmd())

	cmd.SetArgs([]string{"verify"})
	err := cmd.Execute()
	require.Error(t, err)

	mockWorkflow.AssertNotCalled(t, "Verify", mock.Anything, mock.Anything)
}

func TestVerifyCmd_NotMagicIsAnError(t *testing.T) {
	cmd, mockWorkflow := newWorkflowTestCmd(t, newVerifyCmd())

	mockWorkflow.On("Verify", mock.Anything, mock.Anything).
		Return(fmt.Errorf("%w: 1 of 2 file(s)", domain.ErrNotMagic))

	cmd.SetArgs([]string{"verify", "*.csv"})
	err := cmd.Execute()
	require.ErrorIs(t, err, domain.ErrNotMagic)
}
