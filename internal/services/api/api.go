// Package api provides the HTTP API for the application
package api

import (
	"github.com/josuemoraisgh/EININDII06-OrificePlate/internal/core/corrections"
	"github.com/josuemoraisgh/EININDII06-OrificePlate/internal/platform/config"
	"github.com/josuemoraisgh/EININDII06-OrificePlate/internal/platform/metrics"
	"github.com/josuemoraisgh/EININDII06-OrificePlate/internal/platform/net/middleware"
	phttp "github.com/josuemoraisgh/EININDII06-OrificePlate/internal/platform/net/http"

	"github.com/josuemoraisgh/EININDII06-OrificePlate/internal/modkit"
	"github.com/josuemoraisgh/EININDII06-OrificePlate/internal/modkit/httpkit"
	"github.com/josuemoraisgh/EININDII06-OrificePlate/internal/modkit/module"
	"github.com/josuemoraisgh/EININDII06-OrificePlate/internal/modkit/swaggerkit"

	metamod "github.com/josuemoraisgh/EININDII06-OrificePlate/internal/services/api/meta/module"
	sizingmod "github.com/josuemoraisgh/EININDII06-OrificePlate/internal/services/api/sizing/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf // already scoped to ORIFICE_
	Tables         *corrections.Tables
	Metrics        *metrics.Collector
	EnableSwagger  bool
	EnableProfiler bool
	EnableMetrics  bool
}

// Mount mounts the API service onto the given router and returns the mounted modules
func Mount(r phttp.Router, opt Options) []module.Module {
	// shared deps for modules
	deps := modkit.Deps{
		Cfg:     opt.Config,
		Tables:  opt.Tables,
		Metrics: opt.Metrics,
	}

	mods := modkit.BuildAll(deps, metamod.New, sizingmod.New)

	// heartbeat and panic recovery ahead of every route
	r.Use(middleware.Defaults()...)

	var observe middleware.Observer
	if opt.Metrics != nil {
		observe = opt.Metrics.RecordAPIRequest
	}

	// Swagger + profiler + metrics live outside the versioned stack
	swaggerkit.Mount(r, swaggerkit.Options{Enabled: opt.EnableSwagger})
	phttp.MountProfiler(r, "/debug", opt.EnableProfiler)
	if opt.EnableMetrics && opt.Metrics != nil {
		r.Handle("/metrics", opt.Metrics.Handler())
	}

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, httpkit.CommonStack(opt.Config.Prefix("API_"), observe), func(api httpkit.Router) {
		for _, m := range mods {
			// mount module routes under its prefix
			m.MountRoutes(api)
		}
	})
	return mods
}
