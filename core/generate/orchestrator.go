package generate

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/graphdeck/graphdeck/core/parse"
	"github.com/graphdeck/graphdeck/providers/ai"
)

// DefaultAttemptTimeout bounds a single backend attempt when no explicit
// timeout is configured.
const DefaultAttemptTimeout = 30 * time.Second

// Orchestrator tries registered backends in order for each generation call.
// It holds no per-request state: a single Orchestrator is safe for
// concurrent use by any number of callers.
type Orchestrator struct {
	backends    []ai.Provider
	byName      map[string]ai.Provider
	middlewares []Middleware
	timeout     time.Duration
	logger      *slog.Logger
}

// Option configures an Orchestrator at construction time.
type Option func(*Orchestrator)

// WithBackends registers backends in attempt order. A backend whose name is
// already registered is ignored, keeping the first registration's position.
func WithBackends(providers ...ai.Provider) Option {
	return func(o *Orchestrator) {
		for _, p := range providers {
			if _, exists := o.byName[p.Name()]; exists {
				continue
			}
			o.byName[p.Name()] = p
			o.backends = append(o.backends, p)
		}
	}
}

// WithAttemptTimeout sets the deadline applied to each individual backend
// attempt. A non-positive value disables the per-attempt deadline, leaving
// the caller's context as the only bound.
func WithAttemptTimeout(timeout time.Duration) Option {
	return func(o *Orchestrator) {
		o.timeout = timeout
	}
}

// WithLogger sets the logger used for attempt-level soft-failure records.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Orchestrator) {
		o.logger = logger
	}
}

// WithMiddlewares appends middlewares applied around every backend attempt,
// outermost-first. The per-attempt timeout always sits innermost, next to
// the backend call itself.
func WithMiddlewares(middlewares ...Middleware) Option {
	return func(o *Orchestrator) {
		o.middlewares = append(o.middlewares, middlewares...)
	}
}

// New constructs an Orchestrator. Without options it has no backends and
// every Generate call returns [ErrNoBackends].
func New(opts ...Option) *Orchestrator {
	o := &Orchestrator{
		byName:  map[string]ai.Provider{},
		timeout: DefaultAttemptTimeout,
		logger:  slog.Default(),
	}

	for _, opt := range opts {
		opt(o)
	}

	return o
}

// Backends returns the registered backend names in their default attempt order.
func (o *Orchestrator) Backends() []string {
	names := make([]string, 0, len(o.backends))
	for _, p := range o.backends {
		names = append(names, p.Name())
	}
	return names
}

// Generate attempts each backend in order until one returns non-empty text.
//
// The attempt order is the prefer list (unknown names are skipped) followed
// by the remaining backends in registration order, so a preference reorders
// attempts but never removes a backend from consideration. A backend error,
// nil response, or empty/whitespace content is a soft failure: it is logged
// at debug level and the next backend is tried. No backend is ever retried
// within a single call and no state is shared across attempts.
//
// When the request's [ai.GenerationConfig.ForceJSON] flag is set, the
// winning backend's raw text is reduced to its first JSON object; text with
// no brace pair at all is returned unchanged, leaving the decode failure to
// the caller's fallback path.
//
// On total failure Generate returns ErrAllBackendsFailed wrapping the last
// backend error, or ErrNoBackends when nothing is registered.
func (o *Orchestrator) Generate(ctx context.Context, request ai.Request, prefer ...string) (string, error) {
	if len(o.backends) == 0 {
		return "", ErrNoBackends
	}

	middlewares := o.middlewares
	if o.timeout > 0 {
		middlewares = append(append([]Middleware{}, middlewares...), NewTimeoutMiddleware(o.timeout))
	}

	var lastErr error
	for _, backend := range o.attemptOrder(prefer) {
		chain := buildChain(backend, middlewares)

		response, err := chain(ctx, request)
		if err != nil {
			lastErr = err
			o.logger.DebugContext(ctx, "backend attempt failed",
				slog.String("backend", backend.Name()),
				slog.String("error", err.Error()),
			)
			continue
		}

		if response == nil || strings.TrimSpace(response.Content) == "" {
			lastErr = fmt.Errorf("backend %s returned empty content", backend.Name())
			o.logger.DebugContext(ctx, "backend attempt returned empty content",
				slog.String("backend", backend.Name()),
			)
			continue
		}

		content := response.Content
		if request.Config != nil && request.Config.ForceJSON {
			if blob, ok := parse.FirstJSONObject(content); ok {
				content = blob
			}
		}
		return content, nil
	}

	if lastErr != nil {
		return "", fmt.Errorf("%w: %w", ErrAllBackendsFailed, lastErr)
	}
	return "", ErrAllBackendsFailed
}

// attemptOrder resolves the effective backend order for one call.
func (o *Orchestrator) attemptOrder(prefer []string) []ai.Provider {
	if len(prefer) == 0 {
		return o.backends
	}

	seen := make(map[string]bool, len(o.backends))
	order := make([]ai.Provider, 0, len(o.backends))

	for _, name := range prefer {
		if p, ok := o.byName[name]; ok && !seen[name] {
			order = append(order, p)
			seen[name] = true
		}
	}
	for _, p := range o.backends {
		if !seen[p.Name()] {
			order = append(order, p)
			seen[p.Name()] = true
		}
	}

	return order
}
