package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"loshu.dev/pkg/loshu/internal/adapter"
	"loshu.dev/pkg/loshu/internal/domain"
	m "loshu.dev/pkg/loshu/internal/model"
)

func TestGenerateCmd_Defaults(t *testing.T) {
	cmd, mockWorkflow := newWorkflowTestCmd(t, newGenerateCmd())

	mockWorkflow.On("Generate", mock.Anything, mock.MatchedBy(func(args domain.GenerateArgs) bool {
		return assert.ObjectsAreEqual([]int{3}, args.Orders) &&
			args.Method == "" &&
			args.Variant == m.VariantIdentity &&
			args.Format == adapter.FormatTable &&
			args.Output != nil &&
			!args.Save &&
			args.Reports == m.Path(".loshu-reports")
	})).Return(nil)

	cmd.SetArgs([]string{"generate", "3"})
	err := cmd.Execute()
	require.NoError(t, err)

	mockWorkflow.AssertExpectations(t)
}

func TestGenerateCmd_AllFlags(t *testing.T) {
	cmd, mockWorkflow := newWorkflowTestCmd(t, newGenerateCmd())

	mockWorkflow.On("Generate", mock.Anything, mock.MatchedBy(func(args domain.GenerateArgs) bool {
		return assert.ObjectsAreEqual([]int{6, 10}, args.Orders) &&
			args.Method == m.MethodLUX &&
			args.Variant == m.VariantTranspose &&
			args.Format == adapter.FormatJSON &&
			args.Save &&
			args.Reports == m.Path("./out")
	})).Return(nil)

	cmd.SetArgs([]string{"-o", "./out", "generate", "6,10", "--method", "lux", "--variant", "transpose", "-f", "json", "--save"})
	err := cmd.Execute()
	require.NoError(t, err)

	mockWorkflow.AssertExpectations(t)
}

func TestGenerateCmd_RejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no orders", []string{"generate"}},
		{"non numeric order", []string{"generate", "three"}},
		{"unknown method", []string{"generate", "3", "--method", "knight"}},
		{"unknown variant", []string{"generate", "3", "--variant", "spin"}},
		{"unknown format", []string{"generate", "3", "--format", "xml"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, mockWorkflow := newWorkflowTestCmd(t, newGenerateCmd())

			cmd.SetArgs(tt.args)
			err := cmd.Execute()
			require.Error(t, err)

			mockWorkflow.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything)
		})
	}
}

func TestGenerateCmd_PropagatesInvalidOrder(t *testing.T) {
	cmd, mockWorkflow := newWorkflowTestCmd(t, newGenerateCmd())

	mockWorkflow.On("Generate", mock.Anything, mock.Anything).
		Return(&domain.InvalidOrderError{Order: 2, Min: domain.MinOrder, Max: domain.MaxOrder})

	cmd.SetArgs([]string{"generate", "2"})
	err := cmd.Execute()
	require.ErrorIs(t, err, domain.ErrInvalidOrder)
}
