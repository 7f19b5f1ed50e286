package clientinfo

import (
	"net/http"
	"time"
)

type middlewareConfig struct {
	timezoneHeader string
	extract        func(*http.Request) *Navigator
}

// MiddlewareOption configures Middleware.
type MiddlewareOption func(*middlewareConfig)

// WithTimezoneHeader reads an IANA zone name (e.g. "Europe/Berlin") from the
// named request header and renders the timezone label in that zone.
// Unknown zones are ignored.
func WithTimezoneHeader(name string) MiddlewareOption {
	return func(c *middlewareConfig) {
		c.timezoneHeader = name
	}
}

// WithNavigatorExtractor replaces FromRequest as the source of navigator fields.
func WithNavigatorExtractor(fn func(*http.Request) *Navigator) MiddlewareOption {
	return func(c *middlewareConfig) {
		if fn != nil {
			c.extract = fn
		}
	}
}

// Middleware builds a descriptor for every request and stores it in the
// request context. A nil builder uses NewBuilder defaults.
func Middleware(b *Builder, opts ...MiddlewareOption) func(http.Handler) http.Handler {
	if b == nil {
		b = NewBuilder()
	}
	cfg := &middlewareConfig{extract: FromRequest}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			builder := b
			if loc := cfg.location(r); loc != nil {
				builder = b.In(loc)
			}
			d := builder.Build(cfg.extract(r))
			next.ServeHTTP(w, r.WithContext(WithContext(r.Context(), d)))
		})
	}
}

func (c *middlewareConfig) location(r *http.Request) *time.Location {
	if c.timezoneHeader == "" {
		return nil
	}
	name := r.Header.Get(c.timezoneHeader)
	if name == "" {
		return nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil
	}
	return loc
}
