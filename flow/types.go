package flow

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrSourceNotFound is returned when the specified source vertex is missing.
	ErrSourceNotFound = errors.New("flow: source vertex not found")

	// ErrSinkNotFound is returned when the specified sink vertex is missing.
	ErrSinkNotFound = errors.New("flow: sink vertex not found")
)

// EdgeError is returned when an edge has a negative capacity.
type EdgeError struct {
	From, To string
	Cap      int64
}

func (e EdgeError) Error() string {
	return fmt.Sprintf("flow: negative capacity on edge %q→%q: %d", e.From, e.To, e.Cap)
}

// FlowOptions configures the max-flow computation.
//   - Ctx: cancellation; nil means context.Background().
//   - LevelRebuildInterval: rebuild the level graph every N augmentations (0 = only when blocked).
type FlowOptions struct {
	Ctx                  context.Context
	LevelRebuildInterval int
}

// DefaultOptions returns FlowOptions with a background context.
func DefaultOptions() FlowOptions {
	return FlowOptions{Ctx: context.Background()}
}

func (o *FlowOptions) normalize() {
	if o.Ctx == nil {
		o.Ctx = context.Background()
	}
	if o.LevelRebuildInterval < 0 {
		o.LevelRebuildInterval = 0
	}
}
