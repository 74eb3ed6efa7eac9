package generate

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/graphdeck/graphdeck/internal/utils"
	"github.com/graphdeck/graphdeck/providers/ai"
)

// GenerateFunc is a function that sends one generation request to a backend
// and returns the completed response. It is the base unit threaded through
// the middleware chain.
type GenerateFunc func(ctx context.Context, request ai.Request) (*ai.Response, error)

// Middleware intercepts and optionally transforms backend calls. Each
// Middleware receives the next GenerateFunc in the chain and returns a new
// GenerateFunc that wraps it. Middlewares are applied outermost-first: the
// first middleware in the slice is the outermost wrapper.
type Middleware func(next GenerateFunc) GenerateFunc

// buildChain constructs the linear middleware chain for one backend. The
// base function calls the backend directly; middlewares are applied in
// reverse order so that middlewares[0] is the first to execute.
func buildChain(backend ai.Provider, middlewares []Middleware) GenerateFunc {
	var chain GenerateFunc = backend.SendMessage

	for i := len(middlewares) - 1; i >= 0; i-- {
		chain = middlewares[i](chain)
	}

	return chain
}

// NewTimeoutMiddleware creates a Middleware that enforces a per-attempt
// deadline. The context is wrapped with context.WithTimeout and cancelled
// once the backend returns or the deadline expires. If the caller supplies a
// context that already has a shorter deadline, that shorter deadline wins as
// per normal context semantics.
func NewTimeoutMiddleware(timeout time.Duration) Middleware {
	return func(next GenerateFunc) GenerateFunc {
		return func(ctx context.Context, request ai.Request) (*ai.Response, error) {
			ctx, cancel := context.WithTimeout(ctx, timeout)
			defer cancel()

			return next(ctx, request)
		}
	}
}

// LogLevel controls how much detail the logging middleware emits per attempt.
type LogLevel int

const (
	// LogLevelMinimal logs only the backend name, attempt id, and duration.
	LogLevelMinimal LogLevel = iota

	// LogLevelStandard logs everything in Minimal plus generation tuning.
	// This is the recommended default.
	LogLevelStandard

	// LogLevelVerbose logs everything in Standard plus prompt and response
	// content, each truncated to 500 characters.
	//
	// WARNING: DO NOT use LogLevelVerbose in production. It logs raw prompt
	// and response text, which may contain sensitive user data. It is meant
	// solely for local debugging.
	LogLevelVerbose
)

// truncateLen is the maximum content length included in verbose log output.
const truncateLen = 500

// NewLoggingMiddleware creates a Middleware that emits structured slog
// entries before and after every backend attempt. Each attempt is tagged
// with a fresh correlation id so interleaved attempts from concurrent
// callers can be told apart.
//
// The logger parameter must not be nil. Use slog.Default() if you have not
// configured a custom logger.
func NewLoggingMiddleware(logger *slog.Logger, level LogLevel) Middleware {
	return func(next GenerateFunc) GenerateFunc {
		return func(ctx context.Context, request ai.Request) (*ai.Response, error) {
			attemptID := uuid.NewString()

			logger.InfoContext(ctx, "backend send",
				buildRequestAttrs(attemptID, request, level)...,
			)

			start := time.Now()
			response, err := next(ctx, request)
			elapsed := time.Since(start)

			if err != nil {
				logger.ErrorContext(ctx, "backend send failed",
					slog.String("attempt_id", attemptID),
					slog.Duration("duration", elapsed),
					slog.String("error", err.Error()),
				)
				return nil, err
			}

			logger.InfoContext(ctx, "backend send completed",
				buildResponseAttrs(attemptID, response, elapsed, level)...,
			)

			return response, nil
		}
	}
}

// buildRequestAttrs returns slog attributes for an outgoing request,
// expanding detail according to the requested verbosity level.
func buildRequestAttrs(attemptID string, request ai.Request, level LogLevel) []any {
	attrs := []any{
		slog.String("attempt_id", attemptID),
	}

	if level >= LogLevelStandard && request.Config != nil {
		attrs = append(attrs,
			slog.Float64("temperature", float64(request.Config.Temperature)),
			slog.Int("max_tokens", request.Config.MaxTokens),
			slog.Bool("force_json", request.Config.ForceJSON),
		)
	}

	if level >= LogLevelVerbose {
		attrs = append(attrs,
			slog.String("system", utils.TruncateString(request.System, truncateLen)),
			slog.String("user", utils.TruncateString(request.User, truncateLen)),
		)
	}

	return attrs
}

// buildResponseAttrs returns slog attributes for a completed response,
// expanding detail according to the requested verbosity level.
func buildResponseAttrs(attemptID string, response *ai.Response, elapsed time.Duration, level LogLevel) []any {
	attrs := []any{
		slog.String("attempt_id", attemptID),
		slog.Duration("duration", elapsed),
	}

	if level >= LogLevelStandard && response != nil && response.Model != "" {
		attrs = append(attrs, slog.String("model", response.Model))
	}

	if level >= LogLevelVerbose && response != nil {
		attrs = append(attrs,
			slog.String("content", utils.TruncateString(response.Content, truncateLen)),
		)
	}

	return attrs
}
