package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColor_Opponent(t *testing.T) {
	assert.Equal(t, White, Black.Opponent())
	assert.Equal(t, Black, White.Opponent())
	assert.Equal(t, Empty, Empty.Opponent())
}

func TestColor_Label(t *testing.T) {
	assert.Equal(t, "黑方", Black.Label())
	assert.Equal(t, "白方", White.Label())
	assert.Empty(t, Empty.Label())

	assert.Equal(t, "黑方获胜！", Black.WinNotice())
	assert.Empty(t, Empty.WinNotice())
}

func TestColor_UnmarshalText(t *testing.T) {
	t.Run("Known names", func(t *testing.T) {
		var color Color

		require.NoError(t, color.UnmarshalText([]byte("white")))
		assert.Equal(t, White, color)

		require.NoError(t, color.UnmarshalText([]byte("")))
		assert.Equal(t, Empty, color)
	})

	t.Run("Unknown name", func(t *testing.T) {
		var color Color

		err := color.UnmarshalText([]byte("red"))

		assert.ErrorIs(t, err, ErrUnknownColor)
	})
}

func TestBoard_At(t *testing.T) {
	// Given: a board with one stone
	var board Board
	board[0][14] = Black

	// Then: in-range reads see the stone and out-of-range reads are empty
	assert.Equal(t, Black, board.At(0, 14))
	assert.Equal(t, Empty, board.At(14, 0))
	assert.Equal(t, Empty, board.At(-1, 0))
	assert.Equal(t, Empty, board.At(0, BoardSize))
	assert.False(t, board.IsEmpty())
}

func TestOutcome_String(t *testing.T) {
	assert.Equal(t, OutcomeIgnored, IgnoredOutcome().String())
	assert.Equal(t, OutcomePlaced, PlacedOutcome().String())
	assert.Equal(t, OutcomePlacedAndWon, WonOutcome(Black).String())
	assert.True(t, WonOutcome(Black).IsWin())
	assert.True(t, IgnoredOutcome().IsIgnored())
}
