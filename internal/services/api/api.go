// Package api provides the HTTP API for the application
package api

import (
	"context"

	"aidetect/internal/adapters/scoring"
	"aidetect/internal/platform/config"
	"aidetect/internal/platform/logger"
	"aidetect/internal/platform/metrics"
	phttp "aidetect/internal/platform/net/http"
	"aidetect/internal/platform/net/middleware"
	"aidetect/internal/platform/store"

	"aidetect/internal/modkit"
	"aidetect/internal/modkit/httpkit"
	"aidetect/internal/modkit/module"
	"aidetect/internal/modkit/swaggerkit"

	analyzedomain "aidetect/internal/services/api/analyze/domain"
	analyzemod "aidetect/internal/services/api/analyze/module"
	historymod "aidetect/internal/services/api/history/module"
	metamod "aidetect/internal/services/api/meta/module"
	statsmod "aidetect/internal/services/api/stats/module"
)

// Options are the API options
// Store and Metrics may be nil, Model may not
type Options struct {
	Config  config.Conf
	Store   *store.Store
	Model   *scoring.Backend
	Metrics *metrics.Metrics
}

// Deps builds the shared module deps, store seams stay nil when not configured
func Deps(opt Options) modkit.Deps {
	deps := modkit.Deps{
		Log:     *logger.Named("api"),
		Cfg:     opt.Config,
		Model:   opt.Model,
		Metrics: opt.Metrics,
	}
	if opt.Store != nil {
		if opt.Store.PG != nil {
			deps.PG = opt.Store.PG
		}
		if opt.Store.CH != nil {
			deps.CH = opt.Store.CH
		}
	}
	return deps
}

// Migrate applies the schema of every store backed module that is configured
func Migrate(ctx context.Context, opt Options) error {
	deps := Deps(opt)
	if err := historymod.Migrate(ctx, deps); err != nil {
		return err
	}
	return statsmod.Migrate(ctx, deps)
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	deps := Deps(opt)
	apiCfg := opt.Config.Prefix("CORE_API_")
	log := logger.Named("api")

	// liveness sits outside the versioned prefix
	r.Use(middleware.Heartbeat("/healthz"))

	// store backed modules feed the analyze recorders
	var docs *swaggerkit.Doc
	if apiCfg.MayBool("SWAGGER", true) {
		docs = swaggerkit.NewDoc(apiCfg.MayString("DOCS_TITLE_SUFFIX", ""))
	}
	stores := module.NewRegistry()
	if deps.HasPG() {
		stores.Add(historymod.New(deps, modkit.WithDocs(docs)))
	}
	if deps.HasCH() {
		stores.Add(statsmod.New(deps, modkit.WithDocs(docs)))
	}
	recorders := module.Collect[analyzedomain.Recorder](stores)
	analyze := analyzemod.New(deps, analyzemod.FromConfig(deps), modkit.WithPorts(analyzemod.Ports{Recorders: recorders}))
	meta := metamod.New(deps)

	// a nil *StaticKeys must not become a non nil AuthPort
	var auth middleware.AuthPort
	keys := middleware.NewStaticKeys(apiCfg.MayCSV("KEYS", nil))
	if keys != nil {
		auth = keys
	}
	limit := middleware.RateLimitOptions{
		RPS:   apiCfg.MayFloat64("RATE_RPS", 0),
		Burst: apiCfg.MayInt("RATE_BURST", 10),
	}
	// one limiter so both surfaces drain the same buckets
	limiter := httpkit.RateLimit(limit)

	stack := httpkit.CommonStack(httpkit.StackOptions{
		CORSOrigins: apiCfg.MayCSV("CORS_ORIGINS", []string{"*"}),
	})
	if opt.Metrics != nil {
		stack = append(stack, opt.Metrics.Middleware)
	}

	docs.Mount(r)
	phttp.MountProfiler(r, "/debug", apiCfg.MayBool("PROFILER", false))
	if opt.Metrics != nil && apiCfg.MayBool("METRICS", true) {
		r.Handle("/metrics", opt.Metrics.Handler())
	}

	httpkit.MountAPIV1(r, stack, func(api httpkit.Router) {
		meta.MountRoutes(api)

		// limiter runs after auth so buckets key by client name when keys are set
		httpkit.Protected(api, auth, func(pr httpkit.Router) {
			pr.Use(limiter)
			analyze.MountRoutes(pr)
			for _, m := range stores.Modules() {
				m.MountRoutes(pr)
			}
		})
	})

	// the unversioned surface answers scoring and health with bare payloads
	httpkit.MountAPIRoot(r, stack, func(api httpkit.Router) {
		mountPlain(api, meta)
		httpkit.Protected(api, auth, func(pr httpkit.Router) {
			pr.Use(limiter)
			mountPlain(pr, analyze)
		})
	})

	log.Info().
		Strs("modules", append([]string{meta.Name(), analyze.Name()}, stores.Names()...)).
		Int("recorders", len(recorders)).
		Int("api_keys", keys.Len()).
		Float64("rate_rps", limit.RPS).
		Strs("secured", httpkit.SecuredRoutes()).
		Msg("api mounted")
}

type plainMounter interface {
	MountPlainRoutes(r httpkit.Router)
}

func mountPlain(r httpkit.Router, m modkit.Module) {
	if pm, ok := m.(plainMounter); ok {
		pm.MountPlainRoutes(r)
	}
}
