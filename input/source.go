package input

import (
	"bufio"
	"io"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/errors"
)

// Source yields raw command tokens; Next may block indefinitely
type Source interface {
	Next() (string, error)
}

// LineSource reads newline-delimited tokens, one per line
// A line longer than MaxInputLineBytes is consumed whole and comes back as an empty token
type LineSource struct {
	reader *bufio.Reader
}

// NewLineSource creates a source over r, typically os.Stdin
func NewLineSource(r io.Reader) *LineSource {
	return &LineSource{reader: bufio.NewReader(r)}
}

// Next blocks until a full line is available
func (s *LineSource) Next() (string, error) {
	var line []byte
	read := 0
	for {
		chunk, err := s.reader.ReadSlice('\n')
		read += len(chunk)
		if read <= constants.MaxInputLineBytes+1 {
			line = append(line, chunk...)
		} else {
			line = nil
		}

		switch {
		case err == nil:
			return trimLine(line), nil
		case errors.Is(err, bufio.ErrBufferFull):
			continue
		case errors.Is(err, io.EOF):
			if read == 0 {
				return "", errors.ErrSourceClosed
			}
			// Last line without a trailing newline
			return trimLine(line), nil
		default:
			return "", errors.Wrap(err, "failed to read input line")
		}
	}
}

// trimLine strips the line terminator; nil stands for an overlong line
func trimLine(line []byte) string {
	return strings.TrimRight(string(line), "\r\n")
}

// EventPoller is the part of tcell.Screen the key source needs
type EventPoller interface {
	PollEvent() tcell.Event
}

// KeySource turns terminal key presses into tokens
// Used with the tcell renderer, which puts the terminal in raw mode and owns stdin
type KeySource struct {
	poller EventPoller
	keys   *KeyTable
}

// NewKeySource creates a key source reading from the screen's event queue
func NewKeySource(poller EventPoller) *KeySource {
	return &KeySource{poller: poller, keys: DefaultKeyTable()}
}

// Next blocks until a bound key is pressed; non-key events are skipped
func (s *KeySource) Next() (string, error) {
	for {
		ev := s.poller.PollEvent()
		if ev == nil {
			// Screen finalized
			return "", errors.ErrSourceClosed
		}

		key, ok := ev.(*tcell.EventKey)
		if !ok {
			continue
		}

		token, quit := s.keys.Translate(key)
		if quit {
			return "", errors.ErrQuit
		}
		if token != "" {
			return token, nil
		}
	}
}

// AutoSource emits a random direction token once per interval
// It reproduces the unattended demo where the snake wanders on its own
type AutoSource struct {
	rng      *rand.Rand
	interval time.Duration
	tokens   []string
	sleep    func(time.Duration)
}

// NewAutoSource creates a random pilot
func NewAutoSource(rng *rand.Rand, interval time.Duration) *AutoSource {
	return &AutoSource{
		rng:      rng,
		interval: interval,
		tokens:   []string{constants.TokenUp, constants.TokenLeft, constants.TokenDown, constants.TokenRight},
		sleep:    time.Sleep,
	}
}

// Next waits one interval and returns a random token
func (s *AutoSource) Next() (string, error) {
	s.sleep(s.interval)
	return s.tokens[s.rng.IntN(len(s.tokens))], nil
}

func normalize(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}
