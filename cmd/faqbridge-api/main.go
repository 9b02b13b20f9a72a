// @title         FAQ Bridge API
// @version       0.1.0
// @description   Multilingual FAQ answers through English pivot translation

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"faqbridge/internal/platform/config"
	"faqbridge/internal/platform/logger"
	phttp "faqbridge/internal/platform/net/http"
	"faqbridge/internal/platform/store"

	"faqbridge/internal/modkit"
	"faqbridge/internal/modkit/httpkit"
	"faqbridge/internal/services/api"
	faqmod "faqbridge/internal/services/faq/module"
)

func main() {
	logger.Init(logger.FromEnv())
	l := logger.Get()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// service-scoped config for HTTP (CORE_API_*)
	root := config.New()
	apiCfg := root.Prefix("CORE_API_")

	// backends are optional; each is enabled by its SERVICE_*_DBURL
	st, err := store.Open(ctx, store.ConfigFromEnv(root, "api"), store.WithLogger(*l))
	if err != nil {
		l.Panic().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()

	deps := modkit.Deps{Log: *l, Cfg: root, PG: st.PG, CH: st.CH}
	wiring, closer, err := faqmod.Assemble(ctx, deps, faqmod.FromConfig(root))
	if err != nil {
		l.Panic().Err(err).Msg("faq setup failed")
	}
	defer func() { _ = closer.Close() }()

	// http server (reads CORE_API_PORT / CORE_API_ADDR)
	srv := phttp.NewServer(apiCfg)

	api.Mount(
		srv.Router(),
		api.Options{
			Config: apiCfg,
			Store:  st,
			Logger: l,
			FAQ:    wiring,
			Stack: httpkit.StackOptions{
				Timeout:     apiCfg.MayDuration("REQUEST_TIMEOUT", 0),
				SlowRequest: apiCfg.MayDuration("SLOW_REQUEST", 0),
				Origins:     apiCfg.MayCSV("CORS_ORIGINS", nil),
				Throttle:    apiCfg.MayInt("THROTTLE", 0),
			},
			EnableSwagger:      apiCfg.MayBool("SWAGGER", true),
			SwaggerTitleSuffix: apiCfg.MayString("SWAGGER_TITLE_SUFFIX", ""),
			EnableProfiler:     apiCfg.MayBool("PROFILER", false),
		},
	)

	if err := srv.Run(ctx); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
