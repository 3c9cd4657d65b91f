package frogger

import (
	"github.com/charmbracelet/log"
)

// EventKind identifies what happened in a session.
type EventKind int

const (
	EventSpawned   EventKind = iota // An enemy entered a lane
	EventDespawned                  // An enemy left the canvas
	EventWon                        // The player reached the goal row
	EventLost                       // The player was hit by an enemy
	EventCleared                    // All enemies were removed at once
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventSpawned:
		return "spawned"
	case EventDespawned:
		return "despawned"
	case EventWon:
		return "won"
	case EventLost:
		return "lost"
	case EventCleared:
		return "cleared"
	default:
		return "unknown"
	}
}

// Event describes one state change of a session.
type Event struct {
	Kind  EventKind
	Tick  int     // Session tick the event happened on
	Lane  int     // Enemy lane (spawn, despawn, loss)
	Speed float64 // Enemy speed (spawn, despawn, loss)
	Count int     // Enemies removed (cleared)
	Score int     // Score after the event
}

// EventHandler receives session events synchronously, on the goroutine
// driving the session.
type EventHandler func(Event)

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithLogger sets the logger used for session events.
func WithLogger(l *log.Logger) SessionOption {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithEventHandler registers a handler called for every event.
func WithEventHandler(h EventHandler) SessionOption {
	return func(s *Session) {
		if h != nil {
			s.handlers = append(s.handlers, h)
		}
	}
}
