// Package generate orchestrates a single generation call across an ordered
// list of interchangeable backends. Every backend failure (error, timeout,
// nil or empty response) is a soft failure: the orchestrator logs it and
// moves on to the next backend without surfacing the error. The first
// backend to return non-empty text wins. Only when every configured backend
// has failed does [Orchestrator.Generate] return [ErrAllBackendsFailed], and
// callers are expected to answer that with a deterministic fallback rather
// than propagating it.
//
// Cross-cutting behaviour (per-attempt deadlines, structured request
// logging) is layered through a [Middleware] chain around each backend call,
// with [NewTimeoutMiddleware] and [NewLoggingMiddleware] as the built-ins.
package generate
