package entity

type direction struct {
	dRow int
	dCol int
}

var (
	horizontal   = direction{dRow: 0, dCol: 1}
	vertical     = direction{dRow: 1, dCol: 0}
	diagonalDown = direction{dRow: 1, dCol: 1}
	diagonalUp   = direction{dRow: 1, dCol: -1}

	directions = []direction{horizontal, vertical, diagonalDown, diagonalUp}

	// every row, column and diagonal long enough to hold a win, computed once.
	lines = enumerateLines(Rows, Columns, ConnectLength)
)

// enumerateLines - walks each maximal segment of the grid once per direction.
// A segment starts at a cell whose predecessor in that direction is off the grid.
func enumerateLines(rows, cols, minLength int) [][]Coord {
	inside := func(row, col int) bool {
		return row >= 0 && row < rows && col >= 0 && col < cols
	}

	var result [][]Coord

	for _, dir := range directions {
		for row := 0; row < rows; row++ {
			for col := 0; col < cols; col++ {
				if inside(row-dir.dRow, col-dir.dCol) {
					continue
				}

				var line []Coord
				for r, c := row, col; inside(r, c); r, c = r+dir.dRow, c+dir.dCol {
					line = append(line, Coord{Row: r, Col: c})
				}

				if len(line) >= minLength {
					result = append(result, line)
				}
			}
		}
	}

	return result
}
