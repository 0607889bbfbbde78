package engine

import (
	"github.com/lixenwraith/vi-snake/constants"
)

// GamePhase is the two-state lifecycle of a game
type GamePhase uint8

const (
	PhaseRunning GamePhase = iota
	PhaseGameOver
)

func (p GamePhase) String() string {
	switch p {
	case PhaseRunning:
		return "Running"
	case PhaseGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// EndCause records which rule ended the game
type EndCause uint8

const (
	CauseNone EndCause = iota
	CauseWall
	CauseSelf
	CauseBoardFull
)

func (c EndCause) String() string {
	switch c {
	case CauseWall:
		return "wall"
	case CauseSelf:
		return "self"
	case CauseBoardFull:
		return "board_full"
	default:
		return "none"
	}
}

// RandSource is the subset of *rand.Rand (math/rand/v2) used for food placement
type RandSource interface {
	IntN(n int) int
}

// GameState is a complete game value, owned and replaced by the clock each tick
// Snake[0] is the head; the slice is never mutated once the state is published
type GameState struct {
	Width     int
	Height    int
	Snake     []Position
	Direction Direction
	Food      Position
	Score     int
	Phase     GamePhase
	Cause     EndCause
}

// NewGameState creates the opening position: a length-1 snake heading right and randomly placed food
// The start cell is clamped into boards smaller than the default layout
func NewGameState(width, height int, rng RandSource) GameState {
	start := Position{
		Row: min(constants.StartRow, height-1),
		Col: min(constants.StartCol, width-1),
	}

	s := GameState{
		Width:     width,
		Height:    height,
		Snake:     []Position{start},
		Direction: DirRight,
		Phase:     PhaseRunning,
	}

	food, ok := placeFood(s.Snake, width, height, rng)
	if !ok {
		// Single-cell board
		s.Food = NoFood
		s.Phase = PhaseGameOver
		s.Cause = CauseBoardFull
		return s
	}
	s.Food = food
	return s
}

// Head returns the first snake segment
func (s GameState) Head() Position {
	return s.Snake[0]
}

// Occupies reports whether p is any segment of the snake, tail included
func (s GameState) Occupies(p Position) bool {
	return contains(s.Snake, p)
}

// Over reports whether the game reached its terminal phase
func (s GameState) Over() bool {
	return s.Phase == PhaseGameOver
}

// Step is the transition function: it advances the game by one move
// requested may be DirNone; a reversal onto the snake's own neck is ignored
// Returns the successor state and whether the game has terminated
// On collision only Phase and Cause change: snake, food and score are those of the receiver
func (s GameState) Step(requested Direction, rng RandSource) (GameState, bool) {
	if s.Phase == PhaseGameOver {
		return s, true
	}

	next := s
	if requested != DirNone && !requested.IsOpposite(s.Direction) {
		next.Direction = requested
	}

	head := s.Head().Add(next.Direction)

	if !head.In(s.Width, s.Height) {
		next.Phase = PhaseGameOver
		next.Cause = CauseWall
		return next, true
	}
	if s.Occupies(head) {
		next.Phase = PhaseGameOver
		next.Cause = CauseSelf
		return next, true
	}

	grows := head == s.Food

	body := make([]Position, 0, len(s.Snake)+1)
	body = append(body, head)
	if grows {
		body = append(body, s.Snake...)
	} else {
		body = append(body, s.Snake[:len(s.Snake)-1]...)
	}
	next.Snake = body
	next.Phase = PhaseRunning

	if grows {
		next.Score++
		food, ok := placeFood(body, s.Width, s.Height, rng)
		if !ok {
			next.Food = NoFood
			next.Phase = PhaseGameOver
			next.Cause = CauseBoardFull
			return next, true
		}
		next.Food = food
	}

	return next, false
}

// Snapshot is an immutable copy of a GameState handed to renderers
type Snapshot struct {
	Tick      uint64
	Width     int
	Height    int
	Snake     []Position
	Direction Direction
	Food      Position
	Score     int
	Phase     GamePhase
	Cause     EndCause
}

// Snapshot deep-copies the snake so the receiver can keep it past the next tick
func (s GameState) Snapshot() Snapshot {
	body := make([]Position, len(s.Snake))
	copy(body, s.Snake)
	return Snapshot{
		Width:     s.Width,
		Height:    s.Height,
		Snake:     body,
		Direction: s.Direction,
		Food:      s.Food,
		Score:     s.Score,
		Phase:     s.Phase,
		Cause:     s.Cause,
	}
}

func contains(body []Position, p Position) bool {
	for _, seg := range body {
		if seg == p {
			return true
		}
	}
	return false
}
