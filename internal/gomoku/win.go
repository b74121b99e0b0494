package gomoku

import "github.com/rocketscienceinc/gomoku-backend/internal/entity"

// directions: horizontal, vertical, "\" and "/".
var directions = [4][2]int{{0, 1}, {1, 0}, {1, 1}, {1, -1}}

// CheckWin - reports whether the stone of color at (row, col) completes a run of at least
// WinLength along any axis. Longer runs win too.
func CheckWin(board *entity.Board, row, col int, color entity.Color) bool {
	if !color.IsStone() || !entity.InBounds(row, col) {
		return false
	}

	for _, d := range directions {
		count := 1 + countRun(board, row, col, d[0], d[1], color) + countRun(board, row, col, -d[0], -d[1], color)
		if count >= entity.WinLength {
			return true
		}
	}

	return false
}

// countRun counts matching stones from the anchor outward, excluding the anchor.
func countRun(board *entity.Board, row, col, dr, dc int, color entity.Color) int {
	count := 0

	r, c := row+dr, col+dc
	for entity.InBounds(r, c) && board[r][c] == color {
		count++
		r += dr
		c += dc
	}

	return count
}
