package gomoku

import (
	"math"

	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
)

// Canvas geometry: 15 lines spaced 40 units apart with a 20 unit margin on a 600x600 canvas.
const (
	CellSize   = 40
	Margin     = CellSize / 2
	CanvasSize = CellSize * entity.BoardSize
)

// MapToCell - snaps a canvas coordinate to the nearest intersection.
// The second result is false when the point lies outside the grid.
func MapToCell(x, y float64) (entity.Point, bool) {
	col, ok := snap(x)
	if !ok {
		return entity.Point{}, false
	}

	row, ok := snap(y)
	if !ok {
		return entity.Point{}, false
	}

	return entity.Point{Row: row, Col: col}, true
}

// snap rounds half up, so -0.5 lands on 0 rather than -1.
func snap(v float64) (int, bool) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}

	index := math.Floor((v-Margin)/CellSize + 0.5)
	if index < 0 || index >= entity.BoardSize {
		return 0, false
	}

	return int(index), true
}

// CellCenter - returns the canvas coordinate of an intersection.
func CellCenter(p entity.Point) (float64, float64) {
	return float64(Margin + CellSize*p.Col), float64(Margin + CellSize*p.Row)
}
