package ai

import "context"

// Provider is the uniform contract for an interchangeable text-generation
// backend. Implementations are registered with the orchestrator at startup;
// backend selection is a matter of ordering, never of runtime probing.
type Provider interface {
	// Name identifies the backend for attempt ordering and log output.
	// Names must be unique among the backends registered together.
	Name() string

	// SendMessage sends one generation request and returns the completed
	// response. Returns an error if the call fails, times out, or the
	// context is cancelled. An error never carries partial output.
	SendMessage(ctx context.Context, request Request) (*Response, error)
}
