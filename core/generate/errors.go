package generate

import "errors"

// ErrAllBackendsFailed is returned by [Orchestrator.Generate] when every
// configured backend failed softly. The error wraps the last underlying
// backend error so callers can use [errors.Is] / [errors.As] to inspect the
// root cause, though the expected reaction is a deterministic fallback, not
// inspection.
var ErrAllBackendsFailed = errors.New("graphdeck: all configured backends failed")

// ErrNoBackends is returned when Generate is called on an orchestrator with
// no registered backends at all.
var ErrNoBackends = errors.New("graphdeck: no backends registered")
