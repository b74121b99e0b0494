package gomoku

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
)

func boardWith(color entity.Color, points ...entity.Point) *entity.Board {
	board := &entity.Board{}
	for _, p := range points {
		board[p.Row][p.Col] = color
	}

	return board
}

func line(row, col, dr, dc, n int) []entity.Point {
	points := make([]entity.Point, 0, n)
	for i := 0; i < n; i++ {
		points = append(points, entity.Point{Row: row + i*dr, Col: col + i*dc})
	}

	return points
}

func TestCheckWin(t *testing.T) {
	t.Run("Horizontal five", func(t *testing.T) {
		// Given: five black stones on row 7
		board := boardWith(entity.Black, line(7, 0, 0, 1, 5)...)

		// Then: every stone of the run is a winning anchor
		for col := 0; col < 5; col++ {
			assert.True(t, CheckWin(board, 7, col, entity.Black))
		}
	})

	t.Run("Vertical five", func(t *testing.T) {
		board := boardWith(entity.White, line(3, 9, 1, 0, 5)...)

		assert.True(t, CheckWin(board, 7, 9, entity.White))
	})

	t.Run("Diagonal down-right five", func(t *testing.T) {
		board := boardWith(entity.Black, line(0, 0, 1, 1, 5)...)

		assert.True(t, CheckWin(board, 4, 4, entity.Black))
	})

	t.Run("Diagonal down-left five", func(t *testing.T) {
		board := boardWith(entity.Black, line(4, 10, 1, -1, 5)...)

		assert.True(t, CheckWin(board, 6, 8, entity.Black))
	})

	t.Run("Six in a row also wins", func(t *testing.T) {
		board := boardWith(entity.Black, line(7, 0, 0, 1, 6)...)

		assert.True(t, CheckWin(board, 7, 5, entity.Black))
	})

	t.Run("Run touching the board edge", func(t *testing.T) {
		board := boardWith(entity.White, line(0, 10, 0, 1, 5)...)

		assert.True(t, CheckWin(board, 0, 14, entity.White))
	})

	t.Run("Four is not enough", func(t *testing.T) {
		board := boardWith(entity.Black, line(7, 0, 0, 1, 4)...)

		for col := 0; col < 4; col++ {
			assert.False(t, CheckWin(board, 7, col, entity.Black))
		}
	})

	t.Run("Opponent stone breaks the run", func(t *testing.T) {
		// Given: B B B W B B on row 7
		board := boardWith(entity.Black, line(7, 0, 0, 1, 6)...)
		board[7][3] = entity.White

		// Then: neither side of the break is long enough
		assert.False(t, CheckWin(board, 7, 4, entity.Black))
		assert.False(t, CheckWin(board, 7, 2, entity.Black))
	})

	t.Run("Isolated stone", func(t *testing.T) {
		board := boardWith(entity.Black, entity.Point{Row: 7, Col: 7})

		assert.False(t, CheckWin(board, 7, 7, entity.Black))
	})

	t.Run("Runs of the other color do not count", func(t *testing.T) {
		board := boardWith(entity.Black, line(7, 0, 0, 1, 5)...)

		assert.False(t, CheckWin(board, 8, 2, entity.White))
	})

	t.Run("Empty color or off-board anchor never wins", func(t *testing.T) {
		board := boardWith(entity.Black, line(7, 0, 0, 1, 5)...)

		assert.False(t, CheckWin(board, 7, 2, entity.Empty))
		assert.False(t, CheckWin(board, 7, -1, entity.Black))
		assert.False(t, CheckWin(board, entity.BoardSize, 0, entity.Black))
	})
}
