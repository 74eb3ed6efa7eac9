package ai

import "context"

// StaticProvider is a deterministic in-memory Provider used in tests and
// examples. It either returns fixed content or delegates to an injected
// handler, so failure modes (errors, empty output, slow responses) can be
// scripted without any network dependency.
type StaticProvider struct {
	name    string
	handler func(ctx context.Context, request Request) (*Response, error)
}

// NewStaticProvider returns a provider that answers every request with the
// given content.
func NewStaticProvider(name, content string) *StaticProvider {
	return &StaticProvider{
		name: name,
		handler: func(ctx context.Context, request Request) (*Response, error) {
			return &Response{Content: content, Model: name}, nil
		},
	}
}

// NewFuncProvider returns a provider that delegates every request to handler.
func NewFuncProvider(name string, handler func(ctx context.Context, request Request) (*Response, error)) *StaticProvider {
	return &StaticProvider{name: name, handler: handler}
}

// Name implements [Provider].
func (p *StaticProvider) Name() string {
	return p.name
}

// SendMessage implements [Provider]. Context cancellation is honoured before
// the handler runs so timeout behaviour matches a real backend.
func (p *StaticProvider) SendMessage(ctx context.Context, request Request) (*Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return p.handler(ctx, request)
}
