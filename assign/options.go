package assign

import "go.uber.org/zap"

// Phase identifies one of the four assignment phases.
type Phase int

const (
	PhasePrimary Phase = iota + 1
	PhaseFloor
	PhaseFill
	PhaseLocalSearch
)

// Phases lists every phase in execution order.
var Phases = []Phase{PhasePrimary, PhaseFloor, PhaseFill, PhaseLocalSearch}

func (p Phase) String() string {
	switch p {
	case PhasePrimary:
		return "primary"
	case PhaseFloor:
		return "floor"
	case PhaseFill:
		return "fill"
	case PhaseLocalSearch:
		return "local_search"
	default:
		return "unknown"
	}
}

// Observer is notified of every relation the engine adds.
type Observer interface {
	Assigned(phase Phase, performer, segment string, rating int)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(phase Phase, performer, segment string, rating int)

// Assigned calls f.
func (f ObserverFunc) Assigned(phase Phase, performer, segment string, rating int) {
	f(phase, performer, segment, rating)
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the engine logger. Defaults to zap.NewNop().
func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

// WithObserver registers an observer for added relations.
func WithObserver(o Observer) Option {
	return func(e *Engine) {
		e.observer = o
	}
}

// WithThreshold sets the low-rating exclusion threshold (default 0.6).
func WithThreshold(threshold float64) Option {
	return func(e *Engine) {
		e.threshold = threshold
	}
}

// WithMaxPasses caps local-search passes. Non-positive values keep the
// default of performers×segments+1.
func WithMaxPasses(n int) Option {
	return func(e *Engine) {
		e.maxPasses = n
	}
}
