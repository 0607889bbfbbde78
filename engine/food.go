package engine

import (
	"github.com/lixenwraith/vi-snake/constants"
)

// placeFood draws a uniformly random free cell for the next food item
// Rejection sampling runs for a bounded number of draws; a crowded board falls back
// to picking uniformly among the enumerated free cells, so the distribution is unchanged
// Returns false only when the snake covers every cell
func placeFood(body []Position, width, height int, rng RandSource) (Position, bool) {
	cells := width * height
	if len(body) >= cells {
		return NoFood, false
	}

	occupied := make(map[Position]struct{}, len(body))
	for _, seg := range body {
		occupied[seg] = struct{}{}
	}

	attempts := constants.FoodAttemptsPerCell * cells
	for range attempts {
		p := Position{Row: rng.IntN(height), Col: rng.IntN(width)}
		if _, taken := occupied[p]; !taken {
			return p, true
		}
	}

	free := make([]Position, 0, cells-len(occupied))
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			p := Position{Row: row, Col: col}
			if _, taken := occupied[p]; !taken {
				free = append(free, p)
			}
		}
	}
	if len(free) == 0 {
		return NoFood, false
	}
	return free[rng.IntN(len(free))], true
}
