// Package api provides the HTTP API for the application
package api

import (
	"faqbridge/internal/platform/config"
	"faqbridge/internal/platform/logger"
	phttp "faqbridge/internal/platform/net/http"
	"faqbridge/internal/platform/net/middleware"
	"faqbridge/internal/platform/store"

	"faqbridge/internal/modkit"
	"faqbridge/internal/modkit/httpkit"
	"faqbridge/internal/modkit/module"
	"faqbridge/internal/modkit/swaggerkit"

	faqmod "faqbridge/internal/services/faq/module"
	metamod "faqbridge/internal/services/api/meta/module"
)

// Options are the API options
type Options struct {
	Config config.Conf
	Store  *store.Store
	Logger *logger.Logger

	// FAQ carries the loaded corpus and translator, see faqmod.Assemble
	FAQ faqmod.Wiring

	Stack httpkit.StackOptions

	EnableSwagger      bool
	SwaggerTitleSuffix string
	EnableProfiler     bool
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	deps := modkit.Deps{Cfg: opt.Config}
	if opt.Logger != nil {
		deps.Log = *opt.Logger
	}
	if opt.Store != nil {
		deps.PG = opt.Store.PG
		deps.CH = opt.Store.CH
	}

	mods := []module.Module{
		metamod.New(deps),
		faqmod.New(deps, opt.FAQ),
	}

	// load balancers probe the bare root path; must precede any route
	r.Use(middleware.Heartbeat("/health"))

	swaggerkit.Mount(r, swaggerkit.Options{Enabled: opt.EnableSwagger, TitleSuffix: opt.SwaggerTitleSuffix})
	phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

	httpkit.MountAPIV1(r, httpkit.CommonStack(opt.Stack), func(api httpkit.Router) {
		module.MountAll(api, mods...)
	})
	deps.Log.Info().Strs("modules", module.Names()).Msg("api mounted")
}
