package entity

const (
	BoardSize = 15
	WinLength = 5
)

// Board is the 15x15 grid. It is a value type, so assigning it copies every cell.
type Board [BoardSize][BoardSize]Color

// Point is a discrete board position.
type Point struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Move is one accepted placement.
type Move struct {
	Row   int   `json:"row"`
	Col   int   `json:"col"`
	Color Color `json:"color"`
}

// InBounds - reports whether (row, col) lies on the board.
func InBounds(row, col int) bool {
	return row >= 0 && row < BoardSize && col >= 0 && col < BoardSize
}

func (that *Board) At(row, col int) Color {
	if !InBounds(row, col) {
		return Empty
	}

	return that[row][col]
}

func (that *Board) IsEmpty() bool {
	for row := range that {
		for col := range that[row] {
			if that[row][col] != Empty {
				return false
			}
		}
	}

	return true
}
