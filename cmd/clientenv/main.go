package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/clientenv/pkg/bootstrap"
	"github.com/dmitrymomot/clientenv/pkg/clientinfo"
	"github.com/dmitrymomot/clientenv/pkg/config"
	"github.com/dmitrymomot/clientenv/pkg/httpserver"
	"github.com/dmitrymomot/clientenv/pkg/logger"
	"github.com/dmitrymomot/clientenv/pkg/requestid"
)

type appConfig struct {
	Env     string `env:"APP_ENV" envDefault:"development"`
	Service string `env:"SERVICE_NAME" envDefault:"clientenv"`
}

func main() {
	var app appConfig
	config.MustLoad(&app)

	log := logger.New(
		logger.WithEnvironment(app.Env, app.Service),
		logger.WithContextExtractors(
			requestid.LoggerExtractor(),
			clientinfo.LoggerExtractor(),
		),
	)
	logger.SetAsDefault(log)

	if err := run(context.Background(), log); err != nil {
		log.Error("clientenv stopped", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, log *slog.Logger) error {
	var (
		srvCfg  httpserver.Config
		bootCfg bootstrap.Config
	)
	if err := config.Load(&srvCfg); err != nil {
		return err
	}
	if err := config.Load(&bootCfg); err != nil {
		return err
	}

	bootCfg, err := bootstrap.ResolveRegion(ctx, bootCfg, bootstrap.AWSRegionResolver())
	if err != nil {
		log.Warn("region not resolved", logger.Error(err))
	}
	if bootCfg.Region == "" {
		log.Warn("no region configured", logger.Component("bootstrap"))
	}

	handler := bootstrap.NewHandler(bootCfg,
		bootstrap.WithLogger(log.With(logger.Component("bootstrap"))),
	)

	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	r.Mount("/", handler.Routes())

	srv := httpserver.New(srvCfg, httpserver.WithLogger(log.With(logger.Component("httpserver"))))
	return srv.Run(ctx, r)
}
