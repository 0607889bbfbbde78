package render

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/errors"
)

// Playfield origin inside the border
const (
	boardX = 1
	boardY = 1
)

// TerminalRenderer draws the board on a tcell screen
// The screen's event queue also feeds input.KeySource
type TerminalRenderer struct {
	mu     sync.Mutex
	screen tcell.Screen
	out    io.Writer
	closed bool

	finalScore int
	finished   bool

	defaultStyle tcell.Style
	borderStyle  tcell.Style
	bodyStyle    tcell.Style
	headStyle    tcell.Style
	foodStyle    tcell.Style
	statusStyle  tcell.Style
	hintStyle    tcell.Style
	overStyle    tcell.Style
}

// NewTerminalRenderer opens the process terminal
func NewTerminalRenderer() (*TerminalRenderer, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.Wrapf(errors.ErrTerminalInit, "failed to create screen: %v", err)
	}
	return NewTerminalRendererWithScreen(screen, os.Stdout)
}

// NewTerminalRendererWithScreen initializes screen and takes ownership of it
// The final score is echoed to out after the screen is released
func NewTerminalRendererWithScreen(screen tcell.Screen, out io.Writer) (*TerminalRenderer, error) {
	if err := screen.Init(); err != nil {
		return nil, errors.Wrapf(errors.ErrTerminalInit, "failed to initialize screen: %v", err)
	}

	defaultStyle := tcell.StyleDefault.Background(RgbBackground)
	screen.SetStyle(defaultStyle)
	screen.HideCursor()
	screen.Clear()

	return &TerminalRenderer{
		screen:       screen,
		out:          out,
		defaultStyle: defaultStyle,
		borderStyle:  defaultStyle.Foreground(RgbBorder),
		bodyStyle:    defaultStyle.Foreground(RgbSnakeBody),
		headStyle:    defaultStyle.Foreground(RgbSnakeHead).Bold(true),
		foodStyle:    defaultStyle.Foreground(RgbFood).Bold(true),
		statusStyle:  defaultStyle.Foreground(RgbStatusText),
		hintStyle:    defaultStyle.Foreground(RgbHintText),
		overStyle:    defaultStyle.Foreground(RgbGameOver).Bold(true),
	}, nil
}

// Screen exposes the tcell screen for key polling
func (r *TerminalRenderer) Screen() tcell.Screen {
	return r.screen
}

// Render draws one frame
func (r *TerminalRenderer) Render(snap engine.Snapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return errors.ErrRendererClosed
	}

	r.screen.Clear()
	r.drawBorder(snap.Width, snap.Height)

	if snap.Food != engine.NoFood && snap.Food.In(snap.Width, snap.Height) {
		r.screen.SetContent(boardX+snap.Food.Col, boardY+snap.Food.Row, constants.FoodGlyph, nil, r.foodStyle)
	}
	for i, p := range snap.Snake {
		if !p.In(snap.Width, snap.Height) {
			continue
		}
		glyph, style := constants.SnakeGlyph, r.bodyStyle
		if i == 0 {
			glyph, style = constants.HeadGlyph, r.headStyle
		}
		r.screen.SetContent(boardX+p.Col, boardY+p.Row, glyph, nil, style)
	}

	r.drawStatus(snap.Width, snap.Height, snap.Score)
	r.screen.Show()
	return nil
}

// GameOver overlays the termination message on the last frame
func (r *TerminalRenderer) GameOver(score int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return errors.ErrRendererClosed
	}

	r.finalScore = score
	r.finished = true

	w, h := r.screen.Size()
	msg := " " + constants.GameOverText + " "
	x := max(0, (w-runewidth.StringWidth(msg))/2)
	r.drawText(x, h/2, msg, r.overStyle)
	r.screen.Show()
	return nil
}

// Close releases the terminal and repeats the final score on the normal screen
func (r *TerminalRenderer) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return nil
	}
	r.closed = true
	r.screen.Fini()

	if r.finished && r.out != nil {
		_, err := fmt.Fprintf(r.out, "%s\n%s%d\n", constants.GameOverText, constants.FinalPrefix, r.finalScore)
		return errors.Wrap(err, "failed to write final score")
	}
	return nil
}

func (r *TerminalRenderer) drawBorder(width, height int) {
	right := boardX + width
	bottom := boardY + height

	for x := boardX; x < right; x++ {
		r.screen.SetContent(x, 0, tcell.RuneHLine, nil, r.borderStyle)
		r.screen.SetContent(x, bottom, tcell.RuneHLine, nil, r.borderStyle)
	}
	for y := boardY; y < bottom; y++ {
		r.screen.SetContent(0, y, tcell.RuneVLine, nil, r.borderStyle)
		r.screen.SetContent(right, y, tcell.RuneVLine, nil, r.borderStyle)
	}
	r.screen.SetContent(0, 0, tcell.RuneULCorner, nil, r.borderStyle)
	r.screen.SetContent(right, 0, tcell.RuneURCorner, nil, r.borderStyle)
	r.screen.SetContent(0, bottom, tcell.RuneLLCorner, nil, r.borderStyle)
	r.screen.SetContent(right, bottom, tcell.RuneLRCorner, nil, r.borderStyle)
}

func (r *TerminalRenderer) drawStatus(width, height, score int) {
	statusY := boardY + height + 1
	r.drawText(0, statusY, constants.ScorePrefix+strconv.Itoa(score), r.statusStyle)
	r.drawText(0, statusY+1, constants.KeyHint, r.hintStyle)
}

// drawText writes s from (x, y), advancing by each rune's display width
func (r *TerminalRenderer) drawText(x, y int, s string, style tcell.Style) int {
	w, h := r.screen.Size()
	if y < 0 || y >= h {
		return x
	}
	for _, ch := range s {
		cw := runewidth.RuneWidth(ch)
		if cw == 0 {
			continue
		}
		if x+cw > w {
			break
		}
		r.screen.SetContent(x, y, ch, nil, style)
		x += cw
	}
	return x
}
