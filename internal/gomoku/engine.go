package gomoku

import (
	"fmt"

	"github.com/rocketscienceinc/gomoku-backend/internal/apperror"
	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
)

// Engine owns one game: the board, the side to move and the status.
// It is not safe for concurrent use; callers serialize access.
type Engine struct {
	board  entity.Board
	turn   entity.Color
	status entity.Status
	moves  []entity.Move
}

func NewEngine() *Engine {
	engine := &Engine{}
	engine.Reset()

	return engine
}

// Restore - rebuilds an engine by replaying accepted moves in order.
func Restore(moves []entity.Move) (*Engine, error) {
	engine := NewEngine()

	for i, move := range moves {
		if move.Color != engine.turn {
			return nil, fmt.Errorf("%w: move %d is %s, expected %s", apperror.ErrCorruptedGame, i+1, move.Color, engine.turn)
		}

		if outcome := engine.PlaceStone(move.Row, move.Col); outcome.IsIgnored() {
			return nil, fmt.Errorf("%w: move %d at (%d,%d) was rejected", apperror.ErrCorruptedGame, i+1, move.Row, move.Col)
		}
	}

	return engine, nil
}

// PlaceStone - puts the current side's stone on (row, col).
// Finished games, out of range cells and occupied cells are ignored without any change.
func (that *Engine) PlaceStone(row, col int) entity.Outcome {
	if that.status.IsWon() {
		return entity.IgnoredOutcome()
	}

	if !entity.InBounds(row, col) {
		return entity.IgnoredOutcome()
	}

	if that.board[row][col] != entity.Empty {
		return entity.IgnoredOutcome()
	}

	color := that.turn
	that.board[row][col] = color
	that.moves = append(that.moves, entity.Move{Row: row, Col: col, Color: color})

	if CheckWin(&that.board, row, col, color) {
		// turn stays on the winner
		that.status = entity.WonBy(color)
		return entity.WonOutcome(color)
	}

	that.turn = color.Opponent()

	return entity.PlacedOutcome()
}

// Reset - starts a new game on the same engine.
func (that *Engine) Reset() {
	that.board = entity.Board{}
	that.turn = entity.Black
	that.status = entity.Status{State: entity.InProgress}
	that.moves = nil
}

func (that *Engine) CurrentTurn() entity.Color {
	return that.turn
}

func (that *Engine) Status() entity.Status {
	return that.status
}

// CellAt - returns the stone at (row, col), Empty for free or out of range cells.
func (that *Engine) CellAt(row, col int) entity.Color {
	return that.board.At(row, col)
}

// Board - returns a copy of the grid.
func (that *Engine) Board() entity.Board {
	return that.board
}

// Moves - returns a copy of the accepted placements.
func (that *Engine) Moves() []entity.Move {
	moves := make([]entity.Move, len(that.moves))
	copy(moves, that.moves)

	return moves
}

// Fill - writes the engine state into a stored snapshot.
func (that *Engine) Fill(game *entity.Game) {
	game.Board = that.board
	game.Turn = that.turn
	game.Status = that.status.String()
	game.Winner = that.status.Winner
	game.Moves = that.Moves()
}
