package generators_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loshu.dev/pkg/loshu/internal/domain"
	"loshu.dev/pkg/loshu/internal/domain/generators"
	m "loshu.dev/pkg/loshu/internal/model"
)

func assertPerfectNormal(t *testing.T, name string, mx m.Matrix) {
	t.Helper()

	a, err := domain.Analyze(mx)
	require.NoError(t, err, name)
	assert.True(t, a.Normal, "%s is not a bijection onto 1..n²", name)
	assert.True(t, a.Properties.IsPerfect, "%s is not perfect", name)
}

func TestSiamese(t *testing.T) {
	want := m.Matrix{{8, 1, 6}, {3, 5, 7}, {4, 9, 2}}
	if diff := cmp.Diff(want, generators.Siamese(3)); diff != "" {
		t.Errorf("Siamese(3) mismatch (-want +got):\n%s", diff)
	}

	for _, n := range []int{3, 5, 7, 9, 11} {
		mx := generators.Siamese(n)
		assertPerfectNormal(t, "siamese", mx)
		assert.Equal(t, 1, mx[0][(n-1)/2], "1 starts in the top-middle cell")
		assert.Equal(t, n*n, mx[n-1][(n-1)/2], "n² ends in the bottom-middle cell")
	}
}

func TestBlockComplement(t *testing.T) {
	want := m.Matrix{{1, 15, 14, 4}, {12, 6, 7, 9}, {8, 10, 11, 5}, {13, 3, 2, 16}}
	if diff := cmp.Diff(want, generators.BlockComplement(4)); diff != "" {
		t.Errorf("BlockComplement(4) mismatch (-want +got):\n%s", diff)
	}

	for _, n := range []int{4, 8, 12} {
		assertPerfectNormal(t, "block-complement", generators.BlockComplement(n))
	}
}

func TestQuadrant(t *testing.T) {
	want := m.Matrix{
		{35, 1, 6, 26, 19, 24},
		{3, 32, 7, 21, 23, 25},
		{31, 9, 2, 22, 27, 20},
		{8, 28, 33, 17, 10, 15},
		{30, 5, 34, 12, 14, 16},
		{4, 36, 29, 13, 18, 11},
	}
	if diff := cmp.Diff(want, generators.Quadrant(6)); diff != "" {
		t.Errorf("Quadrant(6) mismatch (-want +got):\n%s", diff)
	}

	for _, n := range []int{6, 10, 14} {
		assertPerfectNormal(t, "quadrant", generators.Quadrant(n))
	}
}

func TestLUX(t *testing.T) {
	want := m.Matrix{
		{32, 29, 4, 1, 24, 21},
		{30, 31, 2, 3, 22, 23},
		{12, 9, 17, 20, 28, 25},
		{10, 11, 18, 19, 26, 27},
		{13, 16, 36, 33, 5, 8},
		{14, 15, 34, 35, 6, 7},
	}
	if diff := cmp.Diff(want, generators.LUX(6)); diff != "" {
		t.Errorf("LUX(6) mismatch (-want +got):\n%s", diff)
	}

	for _, n := range []int{6, 10, 14} {
		assertPerfectNormal(t, "lux", generators.LUX(n))
	}
}
