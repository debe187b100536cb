package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMagicConstant(t *testing.T) {
	for n, want := range map[int]int{3: 15, 4: 34, 5: 65, 6: 111, 7: 175, 8: 260, 9: 369} {
		assert.Equal(t, want, MagicConstant(n), "order %d", n)
	}
}

func TestMatrix(t *testing.T) {
	mx := NewMatrix(3)
	assert.Equal(t, 3, mx.Size())
	assert.Equal(t, make([]int, 9), mx.Flatten())

	mx[1][2] = 10
	clone := mx.Clone()
	clone[1][2] = 11

	assert.Equal(t, 10, mx[1][2])
	assert.Equal(t, []int{0, 0, 0, 0, 0, 10, 0, 0, 0}, mx.Flatten())
	assert.Equal(t, " 0  0  0\n 0  0 10\n 0  0  0\n", mx.String())
	assert.Nil(t, Matrix(nil).Clone())
}

func TestMatrix_RowsDoNotOverlap(t *testing.T) {
	mx := NewMatrix(2)
	mx[0] = append(mx[0], 99)

	assert.Equal(t, []int{0, 0}, mx[1])
}

func TestSquare_Counts(t *testing.T) {
	s := Square{Dimension: 5}
	assert.Equal(t, 12, s.MagicLines())
	assert.Equal(t, 25, s.Cells())
}

func TestPlanetFor(t *testing.T) {
	assert.Equal(t, PlanetSaturn, PlanetFor(3))
	assert.Equal(t, PlanetMoon, PlanetFor(9))
	assert.Equal(t, PlanetNone, PlanetFor(10))
}
