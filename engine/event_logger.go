package engine

import "github.com/rs/zerolog"

// EventLogger writes game events to a structured logger
type EventLogger struct {
	logger zerolog.Logger
}

// NewEventLogger creates an event handler that logs at debug level, game over at info
func NewEventLogger(logger zerolog.Logger) *EventLogger {
	return &EventLogger{logger: logger}
}

// EventTypes implements Handler
func (l *EventLogger) EventTypes() []EventType {
	return []EventType{EventFoodEaten, EventDirectionChanged, EventGameOver}
}

// HandleEvent implements Handler
func (l *EventLogger) HandleEvent(ev GameEvent) {
	var e *zerolog.Event
	switch ev.Type {
	case EventGameOver:
		e = l.logger.Info().Stringer("cause", ev.Cause)
	default:
		e = l.logger.Debug()
	}
	e.Stringer("event", ev.Type).
		Uint64("tick", ev.Tick).
		Int("score", ev.Score).
		Stringer("head", ev.Head).
		Stringer("direction", ev.Direction).
		Msg("game event")
}
