package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "loshu.dev/pkg/loshu/internal/model"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		n    int
		want m.OrderClass
	}{
		{3, m.ClassOdd},
		{4, m.ClassDoublyEven},
		{5, m.ClassOdd},
		{6, m.ClassSinglyEven},
		{7, m.ClassOdd},
		{8, m.ClassDoublyEven},
		{9, m.ClassOdd},
	}

	for _, tt := range tests {
		t.Run(string(tt.want), func(t *testing.T) {
			got, err := Classify(tt.n)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClassify_OutOfRange(t *testing.T) {
	for _, n := range []int{-1, 0, 1, 2, 10, 100} {
		_, err := Classify(n)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidOrder)

		var orderErr *InvalidOrderError
		require.True(t, errors.As(err, &orderErr))
		assert.Equal(t, n, orderErr.Order)
		assert.Equal(t, MinOrder, orderErr.Min)
		assert.Equal(t, MaxOrder, orderErr.Max)
	}
}
