package cmd

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"loshu.dev/pkg/loshu/internal/domain"
	m "loshu.dev/pkg/loshu/internal/model"
)

func TestCheckCmd_UsesRootOutputFlag(t *testing.T) {
	cmd, mockWorkflow := newWorkflowTestCmd(t, newCheckCmd())

	mockWorkflow.On("Check", mock.Anything, mock.MatchedBy(func(args domain.CheckArgs) bool {
		return args.Reports == m.Path("./archive")
	})).Return(nil)

	cmd.SetArgs([]string{"--output", "./archive", "check"})
	err := cmd.Execute()
	require.NoError(t, err)

	mockWorkflow.AssertExpectations(t)
}

func TestCheckCmd_DriftIsAnError(t *testing.T) {
	cmd, mockWorkflow := newWorkflowTestCmd(t, newCheckCmd())

	mockWorkflow.On("Check", mock.Anything, mock.Anything).Return(domain.ErrDrift)

	cmd.SetArgs([]string{"check"})
	err := cmd.Execute()
	require.ErrorIs(t, err, domain.ErrDrift)
}
