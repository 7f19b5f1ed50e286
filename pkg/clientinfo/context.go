package clientinfo

import "context"

type contextKey struct{}

// WithContext stores the descriptor in ctx.
func WithContext(ctx context.Context, d Descriptor) context.Context {
	return context.WithValue(ctx, contextKey{}, d)
}

// FromContext returns the descriptor stored in ctx.
// The boolean is false when no descriptor was stored.
func FromContext(ctx context.Context) (Descriptor, bool) {
	if ctx == nil {
		return Descriptor{}, false
	}
	d, ok := ctx.Value(contextKey{}).(Descriptor)
	return d, ok
}
