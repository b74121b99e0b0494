package gomoku

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
)

func TestMapToCell(t *testing.T) {
	tests := []struct {
		name string
		x, y float64
		want entity.Point
	}{
		{name: "center", x: 300, y: 300, want: entity.Point{Row: 7, Col: 7}},
		{name: "top left intersection", x: 20, y: 20, want: entity.Point{Row: 0, Col: 0}},
		{name: "bottom right intersection", x: 580, y: 580, want: entity.Point{Row: 14, Col: 14}},
		{name: "x is the column and y the row", x: 150, y: 100, want: entity.Point{Row: 2, Col: 3}},
		{name: "half rounds up", x: 200, y: 200, want: entity.Point{Row: 5, Col: 5}},
		{name: "canvas corner snaps to first intersection", x: 1, y: 1, want: entity.Point{Row: 0, Col: 0}},
		{name: "exact canvas origin", x: 0, y: 0, want: entity.Point{Row: 0, Col: 0}},
		{name: "last pixel", x: 599, y: 599, want: entity.Point{Row: 14, Col: 14}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// When: mapping the coordinate
			point, ok := MapToCell(tt.x, tt.y)

			// Then: it snaps to the expected intersection
			require.True(t, ok)
			assert.Equal(t, tt.want, point)
		})
	}
}

func TestMapToCell_OutOfBounds(t *testing.T) {
	tests := []struct {
		name string
		x, y float64
	}{
		{name: "left of the canvas", x: -1, y: 300},
		{name: "above the canvas", x: 300, y: -21},
		{name: "right edge rounds past the grid", x: CanvasSize, y: 300},
		{name: "far below", x: 300, y: 1000},
		{name: "not a number", x: math.NaN(), y: 300},
		{name: "infinite", x: 300, y: math.Inf(1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// When: mapping the coordinate
			_, ok := MapToCell(tt.x, tt.y)

			// Then: it is rejected
			assert.False(t, ok)
		})
	}
}

func TestCellCenter(t *testing.T) {
	// Given: every intersection
	for row := 0; row < entity.BoardSize; row++ {
		for col := 0; col < entity.BoardSize; col++ {
			p := entity.Point{Row: row, Col: col}

			// When: mapping its center back
			x, y := CellCenter(p)
			got, ok := MapToCell(x, y)

			// Then: the same intersection comes back
			require.True(t, ok)
			require.Equal(t, p, got)
		}
	}
}
