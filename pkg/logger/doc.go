// Package logger builds *slog.Logger instances from functional options and
// injects request-scoped attributes taken from context.Context.
//
//	log := logger.New(
//		logger.WithEnvironment(cfg.Env, "clientenv"),
//		logger.WithContextExtractors(
//			requestid.LoggerExtractor(),
//			clientinfo.LoggerExtractor(),
//		),
//	)
//	logger.SetAsDefault(log)
//
//	log.InfoContext(r.Context(), "bootstrap served", logger.Duration(time.Since(start)))
//
// Extractors run on every record, so values added to the context after the
// logger was created (a request ID, the client descriptor) still show up.
//
// Attribute helpers such as Error return an empty slog.Attr for nil input,
// which slog drops, so callers need no nil checks.
package logger
