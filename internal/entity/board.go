package entity

import (
	"fmt"

	"github.com/rocketscienceinc/connectfour/internal/apperror"
)

const (
	Rows          = 6
	Columns       = 7
	ConnectLength = 4

	// MaxMoves is the number of plies that fill the grid.
	MaxMoves = Rows * Columns
)

// Board holds the slots in row-major order, row 0 on top and row 5 at the bottom.
type Board struct {
	slots   [Rows * Columns]Slot
	victory bool
}

// Snapshot is a copy of the grid handed to renderers and round events.
type Snapshot struct {
	Cells [Rows][Columns]Token `json:"cells"`
}

func NewBoard() *Board {
	board := &Board{}

	for row := 0; row < Rows; row++ {
		for col := 0; col < Columns; col++ {
			board.slots[index(row, col)] = Slot{coord: Coord{Row: row, Col: col}}
		}
	}

	return board
}

func index(row, col int) int {
	return row*Columns + col
}

// Place - drops the token into the lowest empty slot of the column.
// The column must already be validated by the caller to lie in 0..Columns-1.
func (that *Board) Place(column int, token Token) (Coord, error) {
	for row := Rows - 1; row >= 0; row-- {
		slot := &that.slots[index(row, column)]
		if slot.IsEmpty() {
			slot.occupant = token
			return slot.coord, nil
		}
	}

	return Coord{}, fmt.Errorf("%w: column %d", apperror.ErrColumnFull, column+1)
}

// CheckVictory - scans every line for four consecutive equal tokens and records the result.
func (that *Board) CheckVictory() bool {
	that.victory = false

	for _, line := range lines {
		if that.hasRun(line) {
			that.victory = true
			break
		}
	}

	return that.victory
}

func (that *Board) hasRun(line []Coord) bool {
	run, length := NoToken, 0

	for _, coord := range line {
		occupant := that.slots[index(coord.Row, coord.Col)].occupant

		switch {
		case occupant.IsEmpty():
			run, length = NoToken, 0
		case occupant == run:
			length++
		default:
			run, length = occupant, 1
		}

		if length == ConnectLength {
			return true
		}
	}

	return false
}

func (that *Board) Victory() bool {
	return that.victory
}

func (that *Board) Reset() {
	for i := range that.slots {
		that.slots[i].occupant = NoToken
	}

	that.victory = false
}

func (that *Board) Slot(coord Coord) Slot {
	return that.slots[index(coord.Row, coord.Col)]
}

func (that *Board) IsFull() bool {
	for col := 0; col < Columns; col++ {
		if that.slots[index(0, col)].IsEmpty() {
			return false
		}
	}

	return true
}

func (that *Board) Snapshot() Snapshot {
	var snapshot Snapshot

	for _, slot := range that.slots {
		snapshot.Cells[slot.coord.Row][slot.coord.Col] = slot.occupant
	}

	return snapshot
}
