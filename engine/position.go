package engine

import "fmt"

// Position is a board cell addressed by row then column
type Position struct {
	Row int
	Col int
}

// NoFood marks the food slot once no free cell is left on the board
var NoFood = Position{Row: -1, Col: -1}

// Add returns the position offset by one step in direction d
func (p Position) Add(d Direction) Position {
	dr, dc := d.Delta()
	return Position{Row: p.Row + dr, Col: p.Col + dc}
}

// In reports whether p lies on a width x height board
func (p Position) In(width, height int) bool {
	return p.Row >= 0 && p.Row < height && p.Col >= 0 && p.Col < width
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Direction is one of the four unit moves, DirNone means no request
type Direction uint8

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// Delta returns the (row, col) unit vector; rows grow downward
func (d Direction) Delta() (dr, dc int) {
	switch d {
	case DirUp:
		return -1, 0
	case DirDown:
		return 1, 0
	case DirLeft:
		return 0, -1
	case DirRight:
		return 0, 1
	default:
		return 0, 0
	}
}

// Opposite returns the reverse direction, DirNone stays DirNone
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	default:
		return DirNone
	}
}

// IsOpposite reports whether the two unit vectors sum to zero
func (d Direction) IsOpposite(other Direction) bool {
	if d == DirNone || other == DirNone {
		return false
	}
	dr1, dc1 := d.Delta()
	dr2, dc2 := other.Delta()
	return dr1+dr2 == 0 && dc1+dc2 == 0
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "none"
	}
}
