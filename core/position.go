package core

// Position is a discrete grid coordinate in (row, column) order,
// matching terminal addressing (row 0 is the top line)
type Position struct {
	Row, Col int
}

// Add returns the position offset by the given deltas
func (p Position) Add(dRow, dCol int) Position {
	return Position{Row: p.Row + dRow, Col: p.Col + dCol}
}

// ManhattanDistance returns the grid distance to other counting
// only cardinal steps
func (p Position) ManhattanDistance(other Position) int {
	return abs(p.Row-other.Row) + abs(p.Col-other.Col)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// Area is an inclusive rectangular boundary anchored at (0, 0)
type Area struct {
	MaxRow, MaxCol int
}

// Contains reports whether p lies within [0, MaxRow] x [0, MaxCol]
func (a Area) Contains(p Position) bool {
	return p.Row >= 0 && p.Row <= a.MaxRow && p.Col >= 0 && p.Col <= a.MaxCol
}
