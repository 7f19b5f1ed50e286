package clientinfo

import (
	"context"
	"log/slog"
)

// LoggerExtractor returns a ContextExtractor for the logger.
// It adds the client's "model/version" under the "client" key.
func LoggerExtractor() func(ctx context.Context) (slog.Attr, bool) {
	return func(ctx context.Context) (slog.Attr, bool) {
		if d, ok := FromContext(ctx); ok && d.Present() {
			return slog.String("client", d.AppVersion()), true
		}
		return slog.Attr{}, false
	}
}
