package entity

type Coord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Slot is one grid cell. Its coordinate is fixed; the occupant is only changed by the Board.
type Slot struct {
	coord    Coord
	occupant Token
}

func (that Slot) Coord() Coord {
	return that.coord
}

func (that Slot) Occupant() Token {
	return that.occupant
}

func (that Slot) IsEmpty() bool {
	return that.occupant.IsEmpty()
}
