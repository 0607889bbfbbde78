package engine

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveEvents(t *testing.T) {
	prev := runningState(20, 10, Position{Row: 5, Col: 6}, Position{Row: 5, Col: 5})

	t.Run("plain move emits nothing", func(t *testing.T) {
		next := prev
		next.Snake = []Position{{Row: 5, Col: 6}}
		assert.Empty(t, deriveEvents(prev, next, 1))
	})

	t.Run("turn and eat", func(t *testing.T) {
		next := prev
		next.Direction = DirDown
		next.Score = 1
		next.Snake = []Position{{Row: 6, Col: 5}, {Row: 5, Col: 5}}

		evs := deriveEvents(prev, next, 3)
		require.Len(t, evs, 2)
		assert.Equal(t, EventDirectionChanged, evs[0].Type)
		assert.Equal(t, DirDown, evs[0].Direction)
		assert.Equal(t, EventFoodEaten, evs[1].Type)
		assert.Equal(t, Position{Row: 6, Col: 5}, evs[1].Head)
		assert.Equal(t, uint64(3), evs[1].Tick)
	})

	t.Run("collision", func(t *testing.T) {
		next := prev
		next.Phase = PhaseGameOver
		next.Cause = CauseWall

		evs := deriveEvents(prev, next, 9)
		require.Len(t, evs, 1)
		assert.Equal(t, EventGameOver, evs[0].Type)
		assert.Equal(t, CauseWall, evs[0].Cause)
	})
}

func TestRouter_DispatchByType(t *testing.T) {
	r := NewRouter()
	h := &recordingHandler{}
	r.Register(h)

	assert.Equal(t, 1, r.HandlerCount(EventFoodEaten))
	assert.Equal(t, 0, r.HandlerCount(EventDirectionChanged))

	r.Dispatch(GameEvent{Type: EventDirectionChanged})
	r.Dispatch(GameEvent{Type: EventFoodEaten, Score: 2})

	require.Len(t, h.events, 1)
	assert.Equal(t, 2, h.events[0].Score)
}

func TestEventLogger_WritesStructuredEntries(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)
	l := NewEventLogger(logger)

	l.HandleEvent(GameEvent{Type: EventFoodEaten, Tick: 4, Score: 1, Head: Position{Row: 2, Col: 3}, Direction: DirUp})
	l.HandleEvent(GameEvent{Type: EventGameOver, Tick: 8, Score: 1, Cause: CauseSelf})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	var first map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	assert.Equal(t, "debug", first["level"])
	assert.Equal(t, "food_eaten", first["event"])
	assert.Equal(t, "(2,3)", first["head"])
	assert.Equal(t, "up", first["direction"])

	var last map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &last))
	assert.Equal(t, "info", last["level"])
	assert.Equal(t, "self", last["cause"])
}

func TestDirection_OppositeAndDelta(t *testing.T) {
	for _, d := range []Direction{DirUp, DirDown, DirLeft, DirRight} {
		dr, dc := d.Delta()
		or, oc := d.Opposite().Delta()
		assert.Equal(t, 0, dr+or, d.String())
		assert.Equal(t, 0, dc+oc, d.String())
		assert.True(t, d.IsOpposite(d.Opposite()))
		assert.False(t, d.IsOpposite(d))
	}
	assert.False(t, DirNone.IsOpposite(DirNone))
	assert.Equal(t, DirNone, DirNone.Opposite())
}
