package clientinfo

import (
	"time"

	"github.com/dmitrymomot/clientenv/pkg/timezone"
	"github.com/dmitrymomot/clientenv/pkg/useragent"
)

// Builder assembles descriptors from navigator input.
// A Builder is immutable and safe for concurrent use.
type Builder struct {
	now func() time.Time
	loc *time.Location
}

// Option configures a Builder.
type Option func(*Builder)

// WithClock sets the clock used to render the timezone label.
// A nil clock is ignored.
func WithClock(now func() time.Time) Option {
	return func(b *Builder) {
		if now != nil {
			b.now = now
		}
	}
}

// WithLocation renders the timezone label in loc instead of the clock's own location.
func WithLocation(loc *time.Location) Option {
	return func(b *Builder) {
		b.loc = loc
	}
}

// NewBuilder returns a Builder that reads the wall clock in time.Local by default.
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{now: time.Now}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// In returns a copy of the builder that renders timestamps in loc.
// The receiver is not modified.
func (b *Builder) In(loc *time.Location) *Builder {
	clone := *b
	clone.loc = loc
	return &clone
}

// Build returns the descriptor for nav, reading the clock exactly once.
// A nil nav means there is no navigator context and yields an absent descriptor.
func (b *Builder) Build(nav *Navigator) Descriptor {
	if nav == nil {
		return Descriptor{}
	}
	return b.BuildAt(nav, b.now())
}

// BuildAt is like Build but uses ts instead of reading the clock.
func (b *Builder) BuildAt(nav *Navigator, ts time.Time) Descriptor {
	if nav == nil {
		return Descriptor{}
	}
	if b.loc != nil {
		ts = ts.In(b.loc)
	}

	browser := useragent.Classify(nav.UserAgent)

	maker := nav.Product
	if maker == "" {
		maker = nav.Vendor
	}

	return NewDescriptor(
		nav.Platform,
		maker,
		browser.Name,
		browser.Version,
		nav.Language,
		timezone.Extract(ts),
	)
}

var defaultBuilder = NewBuilder()

// Build builds a descriptor with the default builder.
func Build(nav *Navigator) Descriptor {
	return defaultBuilder.Build(nav)
}
