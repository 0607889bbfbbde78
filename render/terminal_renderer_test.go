package render

import (
	"bytes"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/errors"
)

func newSimRenderer(t *testing.T) (*TerminalRenderer, tcell.SimulationScreen, *bytes.Buffer) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	var out bytes.Buffer
	r, err := NewTerminalRendererWithScreen(screen, &out)
	require.NoError(t, err)
	screen.SetSize(40, 12)
	return r, screen, &out
}

func runeAt(screen tcell.Screen, x, y int) rune {
	ch, _, _, _ := screen.GetContent(x, y)
	return ch
}

func TestTerminalRenderer_DrawsPlayfield(t *testing.T) {
	r, screen, _ := newSimRenderer(t)
	defer r.Close()

	require.NoError(t, r.Render(testSnapshot()))

	// Border corners around a 5x3 board
	assert.Equal(t, tcell.RuneULCorner, runeAt(screen, 0, 0))
	assert.Equal(t, tcell.RuneLRCorner, runeAt(screen, 6, 4))

	// Head, body and food offset by the border
	assert.Equal(t, rune(constants.HeadGlyph), runeAt(screen, boardX+2, boardY+1))
	assert.Equal(t, rune(constants.SnakeGlyph), runeAt(screen, boardX+1, boardY+1))
	assert.Equal(t, rune(constants.FoodGlyph), runeAt(screen, boardX+4, boardY+0))

	// Status line below the bottom border
	assert.Equal(t, 'S', runeAt(screen, 0, 5))
	assert.Equal(t, '7', runeAt(screen, len(constants.ScorePrefix), 5))
}

func TestTerminalRenderer_GameOverEchoedOnClose(t *testing.T) {
	r, _, out := newSimRenderer(t)

	require.NoError(t, r.Render(testSnapshot()))
	require.NoError(t, r.GameOver(3))
	require.NoError(t, r.Close())

	assert.Equal(t, "Game Over!\nFinal score: 3\n", out.String())
	assert.ErrorIs(t, r.Render(testSnapshot()), errors.ErrRendererClosed)
	assert.NoError(t, r.Close(), "second close is a no-op")
}

func TestTerminalRenderer_CloseWithoutGameOver(t *testing.T) {
	r, _, out := newSimRenderer(t)

	require.NoError(t, r.Close())
	assert.Empty(t, out.String())
}

func TestTerminalRenderer_DrawTextClipsAtEdge(t *testing.T) {
	r, screen, _ := newSimRenderer(t)
	defer r.Close()

	end := r.drawText(35, 0, "abcdefghij", r.statusStyle)

	assert.Equal(t, 40, end)
	assert.Equal(t, 'e', runeAt(screen, 39, 0))
}
