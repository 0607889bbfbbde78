package engine

// EventType represents the type of game event
type EventType int

const (
	// EventFoodEaten signals the snake grew by one segment
	// Trigger: Step consumed the food cell | Payload: Score, Head
	EventFoodEaten EventType = iota

	// EventDirectionChanged signals a requested direction was accepted
	// Trigger: mailbox command differed from and was not opposite to the heading | Payload: Direction
	EventDirectionChanged

	// EventGameOver signals the terminal transition
	// Trigger: wall, self collision or full board | Payload: Score, Cause
	EventGameOver
)

func (t EventType) String() string {
	switch t {
	case EventFoodEaten:
		return "food_eaten"
	case EventDirectionChanged:
		return "direction_changed"
	case EventGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// GameEvent is emitted by the clock after each transition
type GameEvent struct {
	Type      EventType
	Tick      uint64
	Score     int
	Head      Position
	Direction Direction
	Cause     EndCause
}

// Handler receives routed events
// HandleEvent runs synchronously on the clock goroutine and must not block
type Handler interface {
	HandleEvent(event GameEvent)
	EventTypes() []EventType
}

// Router dispatches events to registered handlers in registration order
type Router struct {
	handlers map[EventType][]Handler
}

// NewRouter creates an empty router
func NewRouter() *Router {
	return &Router{handlers: make(map[EventType][]Handler)}
}

// Register adds a handler for its declared event types
func (r *Router) Register(handler Handler) {
	for _, t := range handler.EventTypes() {
		r.handlers[t] = append(r.handlers[t], handler)
	}
}

// Dispatch routes a single event
func (r *Router) Dispatch(ev GameEvent) {
	for _, h := range r.handlers[ev.Type] {
		h.HandleEvent(ev)
	}
}

// HandlerCount returns the number of handlers registered for the given type
func (r *Router) HandlerCount(t EventType) int {
	return len(r.handlers[t])
}

// deriveEvents compares two consecutive states and returns what happened between them
func deriveEvents(prev, next GameState, tick uint64) []GameEvent {
	var out []GameEvent
	if next.Direction != prev.Direction {
		out = append(out, GameEvent{Type: EventDirectionChanged, Tick: tick, Direction: next.Direction, Score: next.Score})
	}
	if next.Score > prev.Score {
		out = append(out, GameEvent{Type: EventFoodEaten, Tick: tick, Score: next.Score, Head: next.Head(), Direction: next.Direction})
	}
	if next.Over() && !prev.Over() {
		out = append(out, GameEvent{Type: EventGameOver, Tick: tick, Score: next.Score, Head: next.Head(), Direction: next.Direction, Cause: next.Cause})
	}
	return out
}
