// Command aidetect-api serves the AI text detection HTTP API
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"aidetect/internal/adapters/scoring"
	"aidetect/internal/adapters/scoring/httpmodel"
	"aidetect/internal/core/version"
	"aidetect/internal/platform/config"
	"aidetect/internal/platform/logger"
	"aidetect/internal/platform/metrics"
	phttp "aidetect/internal/platform/net/http"
	"aidetect/internal/platform/store"

	"aidetect/internal/services/api"
	analyzesvc "aidetect/internal/services/api/analyze/service"
)

func main() {
	root := config.New()
	apiCfg := root.Prefix("CORE_API_")
	l := logger.Get()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := metrics.New(true)

	// history and stats mount only when their store url is set
	var st *store.Store
	if sc := store.ConfigFromEnv(root, version.Service, "api", version.Version()); sc.Any() {
		var err error
		if st, err = store.Open(ctx, sc, *l); err != nil {
			l.Fatal().Err(err).Msg("store open failed")
		}
		defer func() {
			if err := st.Close(); err != nil {
				l.Error().Err(err).Msg("store close failed")
			}
		}()
	}

	maxText := apiCfg.MayInt("MAX_TEXT_LENGTH", analyzesvc.DefaultMaxTextLength)
	client := httpmodel.NewClient(httpmodel.FromConfig(root, maxText))
	bo := scoring.OptionsFromConfig(root)
	bo.Observer = m
	backend := scoring.NewBackend(client, bo)

	opts := api.Options{
		Config:  root,
		Store:   st,
		Model:   backend,
		Metrics: m,
	}
	if err := api.Migrate(ctx, opts); err != nil {
		l.Panic().Err(err).Msg("schema migration failed")
	}

	srv := phttp.NewServer(apiCfg)
	api.Mount(srv.Router(), opts)

	// serve right away, /health reports model_loaded=false until this finishes
	go func() {
		if err := backend.Load(ctx); err != nil {
			l.Error().Err(err).Msg("model load failed; scoring stays unavailable")
			return
		}
		m.SetModelReady(true)
	}()

	l.Info().Str("addr", srv.Addr()).Str("version", version.Version()).Msg("aidetect api starting")
	if err := srv.Run(ctx); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
