package render

import (
	"io"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/errors"
)

// Cursor home + erase display
const clearScreen = "\x1b[H\x1b[2J"

// PlainRenderer redraws the board as text lines on a writer, one frame per tick
type PlainRenderer struct {
	mu     sync.Mutex
	out    io.Writer
	clear  bool
	closed bool

	scoreStyle    lipgloss.Style
	hintStyle     lipgloss.Style
	gameOverStyle lipgloss.Style
}

// NewPlainRenderer creates a renderer writing to out
// Screen clearing and colors are enabled only when out is a terminal
func NewPlainRenderer(out io.Writer) *PlainRenderer {
	lr := lipgloss.NewRenderer(out)
	if !HasColorSupport() {
		lr.SetColorProfile(termenv.Ascii)
	}

	return &PlainRenderer{
		out:           out,
		clear:         isTerminal(out),
		scoreStyle:    lr.NewStyle().Bold(true).Foreground(colorScore),
		hintStyle:     lr.NewStyle().Foreground(colorHint),
		gameOverStyle: lr.NewStyle().Bold(true).Foreground(colorGameOver),
	}
}

// Render writes the grid, the score line and the control hint
func (r *PlainRenderer) Render(snap engine.Snapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return errors.ErrRendererClosed
	}

	var sb strings.Builder
	if r.clear {
		sb.WriteString(clearScreen)
	}
	for _, row := range buildGrid(snap) {
		sb.WriteString(string(row))
		sb.WriteByte('\n')
	}
	sb.WriteString(r.scoreStyle.Render(constants.ScorePrefix + strconv.Itoa(snap.Score)))
	sb.WriteByte('\n')
	sb.WriteString(r.hintStyle.Render(constants.ControlHint))
	sb.WriteByte('\n')

	_, err := io.WriteString(r.out, sb.String())
	return errors.Wrap(err, "failed to write frame")
}

// GameOver writes the termination message with the final score
func (r *PlainRenderer) GameOver(score int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return errors.ErrRendererClosed
	}

	msg := r.gameOverStyle.Render(constants.GameOverText) + "\n" +
		constants.FinalPrefix + strconv.Itoa(score) + "\n"
	_, err := io.WriteString(r.out, msg)
	return errors.Wrap(err, "failed to write game over")
}

// Close stops further output; the writer itself is not closed
func (r *PlainRenderer) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.closed = true
	return nil
}

// buildGrid lays out the board as rows of glyphs
func buildGrid(snap engine.Snapshot) [][]rune {
	grid := make([][]rune, snap.Height)
	for y := range grid {
		row := make([]rune, snap.Width)
		for x := range row {
			row[x] = constants.EmptyGlyph
		}
		grid[y] = row
	}

	for _, p := range snap.Snake {
		if p.In(snap.Width, snap.Height) {
			grid[p.Row][p.Col] = constants.SnakeGlyph
		}
	}
	if snap.Food != engine.NoFood && snap.Food.In(snap.Width, snap.Height) {
		grid[snap.Food.Row][snap.Food.Col] = constants.FoodGlyph
	}
	return grid
}

// HasColorSupport reports false when NO_COLOR is set or TERM=dumb
func HasColorSupport() bool {
	if _, exists := os.LookupEnv("NO_COLOR"); exists {
		return false
	}
	return os.Getenv("TERM") != "dumb"
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
