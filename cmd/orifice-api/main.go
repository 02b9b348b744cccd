// @title         Orifice Plate Sizing API
// @version       1.0
// @description   Sizes concentric orifice plates: beta search, flow, differential pressure and correction factors.
// @BasePath      /api/v1

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/josuemoraisgh/EININDII06-OrificePlate/internal/platform/config"
	perr "github.com/josuemoraisgh/EININDII06-OrificePlate/internal/platform/errors"
	"github.com/josuemoraisgh/EININDII06-OrificePlate/internal/platform/logger"
	"github.com/josuemoraisgh/EININDII06-OrificePlate/internal/platform/metrics"
	phttp "github.com/josuemoraisgh/EININDII06-OrificePlate/internal/platform/net/http"

	"github.com/josuemoraisgh/EININDII06-OrificePlate/internal/services/api"
	sizingsvc "github.com/josuemoraisgh/EININDII06-OrificePlate/internal/services/api/sizing/service"
)

func main() {
	// everything lives under ORIFICE_*; the http server reads ORIFICE_API_*
	root := config.New().Prefix("ORIFICE_")
	apiCfg := root.Prefix("API_")

	// bring up logging early
	logger.Init(logger.FromEnv())
	l := logger.Named("api")

	tables, err := sizingsvc.LoadTables(root)
	if err != nil {
		l.Error().Err(err).Msg("correction tables")
		os.Exit(perr.ExitCode(err))
	}
	l.Info().
		Str("source", tables.Source()).
		Int("version", tables.Version()).
		Msg("correction tables loaded")

	m := metrics.NewCollector("orifice", apiCfg.MayBool("METRICS_RUNTIME", true))

	// http server (reads ORIFICE_API_PORT and timeouts)
	srv := phttp.NewServer(apiCfg)

	// mount our API
	api.Mount(
		srv.Router(),
		api.Options{
			Config:         root,
			Tables:         tables,
			Metrics:        m,
			EnableSwagger:  apiCfg.MayBool("SWAGGER", true),
			EnableProfiler: apiCfg.MayBool("PROFILER", false),
			EnableMetrics:  apiCfg.MayBool("METRICS", true),
		},
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// run
	if err := srv.Run(ctx); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
	l.Info().Msg("http server drained")
}
