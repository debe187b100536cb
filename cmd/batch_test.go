package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"loshu.dev/pkg/loshu/internal/domain"
	m "loshu.dev/pkg/loshu/internal/model"
)

func TestParseShardFlag(t *testing.T) {
	tests := []struct {
		name      string
		shard     string
		wantIndex int
		wantTotal int
		wantErr   bool
	}{
		{"empty string", "", 0, 1, false},
		{"valid 0/3", "0/3", 0, 3, false},
		{"valid 1/3", "1/3", 1, 3, false},
		{"valid 2/3", "2/3", 2, 3, false},
		{"invalid format", "invalid", 0, 0, true},
		{"trailing garbage", "1/3x", 0, 0, true},
		{"missing total", "1/", 0, 0, true},
		{"zero total", "0/0", 0, 0, true},
		{"negative total", "0/-1", 0, 0, true},
		{"negative index", "-1/3", 0, 0, true},
		{"index >= total", "3/3", 0, 0, true},
		{"index > total", "5/3", 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotIndex, gotTotal, err := parseShardFlag(tt.shard)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.shard)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantIndex, gotIndex, "index")
			assert.Equal(t, tt.wantTotal, gotTotal, "total")
		})
	}
}

func TestBatchCmd_Defaults(t *testing.T) {
	cmd, mockWorkflow := newWorkflowTestCmd(t, newBatchCmd())

	mockWorkflow.On("Batch", mock.Anything, mock.MatchedBy(func(args domain.BatchArgs) bool {
		return assert.ObjectsAreEqual([]int{3, 4, 5, 6, 7, 8, 9}, args.Orders) &&
			assert.ObjectsAreEqual(m.AllVariants(), args.Variants) &&
			args.Threads == 1 &&
			args.ShardIndex == 0 &&
			args.TotalShardCount == 1 &&
			args.Reports == m.Path(".loshu-reports")
	})).Return(nil)

	cmd.SetArgs([]string{"batch"})
	err := cmd.Execute()
	require.NoError(t, err)

	mockWorkflow.AssertExpectations(t)
}

func TestBatchCmd_ParallelAndSharding(t *testing.T) {
	cmd, mockWorkflow := newWorkflowTestCmd(t, newBatchCmd())

	mockWorkflow.On("Batch", mock.Anything, mock.MatchedBy(func(args domain.BatchArgs) bool {
		return args.Threads == 4 && args.ShardIndex == 1 && args.TotalShardCount == 3
	})).Return(nil)

	cmd.SetArgs([]string{"batch", "-p", "4", "--shard", "1/3"})
	err := cmd.Execute()
	require.NoError(t, err)

	mockWorkflow.AssertExpectations(t)
}

func TestBatchCmd_OrdersAndVariants(t *testing.T) {
	cmd, mockWorkflow := newWorkflowTestCmd(t, newBatchCmd())
	spillDir := t.TempDir()

	mockWorkflow.On("Batch", mock.Anything, mock.MatchedBy(func(args domain.BatchArgs) bool {
		return assert.ObjectsAreEqual([]int{3, 6}, args.Orders) &&
			assert.ObjectsAreEqual([]m.Variant{m.VariantIdentity, m.VariantFlipVertical}, args.Variants) &&
			args.SpillDir == spillDir
	})).Return(nil)

	cmd.SetArgs([]string{"batch", "--orders", "3,6", "--variants", "identity,flip-vertical", "--spill-dir", spillDir})
	err := cmd.Execute()
	require.NoError(t, err)

	mockWorkflow.AssertExpectations(t)
}

func TestBatchCmd_UnknownVariant(t *testing.T) {
	cmd, mockWorkflow := newWorkflowTestCmd(t, newBatchCmd())

	cmd.SetArgs([]string{"batch", "--variants", "mirror"})
	err := cmd.Execute()
	require.ErrorIs(t, err, domain.ErrUnknownVariant)

	mockWorkflow.AssertNotCalled(t, "Batch", mock.Anything, mock.Anything)
}

func TestBatchCmd_InvalidShard(t *testing.T) {
	cmd, mockWorkflow := newWorkflowTestCmd(t, newBatchCmd())

	cmd.SetArgs([]string{"batch", "--shard", "3/3"})
	err := cmd.Execute()
	require.ErrorContains(t, err, "invalid --shard")

	mockWorkflow.AssertNotCalled(t, "Batch", mock.Anything, mock.Anything)
}

func TestNewBatchCmd(t *testing.T) {
	cmd := newBatchCmd()

	assert.Equal(t, "batch", cmd.Use)
	assert.Equal(t, batchLongDescription, cmd.Long)

	for _, name := range []string{"parallel", "shard", "orders", "variants", "spill-dir"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), name)
	}
}
