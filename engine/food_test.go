package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaceFood_AvoidsSnake(t *testing.T) {
	body := []Position{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}}
	rng := newTestRand()

	for i := 0; i < 200; i++ {
		p, ok := placeFood(body, 4, 3, rng)
		require.True(t, ok)
		assert.True(t, p.In(4, 3))
		assert.False(t, contains(body, p))
	}
}

func TestPlaceFood_FallsBackToFreeCellScan(t *testing.T) {
	// Every draw hits (0,0), which is occupied, so placement must come from the scan
	body := []Position{{Row: 0, Col: 0}}

	p, ok := placeFood(body, 3, 2, fixedRand{v: 0})

	require.True(t, ok)
	assert.Equal(t, Position{Row: 0, Col: 1}, p)
}

func TestPlaceFood_LastFreeCell(t *testing.T) {
	body := []Position{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 1, Col: 1}}

	p, ok := placeFood(body, 2, 2, fixedRand{v: 0})

	require.True(t, ok)
	assert.Equal(t, Position{Row: 1, Col: 0}, p)
}

func TestPlaceFood_FullBoard(t *testing.T) {
	body := []Position{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 1, Col: 1}, {Row: 1, Col: 0}}

	p, ok := placeFood(body, 2, 2, newTestRand())

	assert.False(t, ok)
	assert.Equal(t, NoFood, p)
}
