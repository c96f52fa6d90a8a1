package main

import (
	"flag"
	"io"
	"log"
	"net/http"
	"path/filepath"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/gameshelf/web/internal/api"
	"github.com/gameshelf/web/internal/config"
	"github.com/gameshelf/web/internal/lists"
	mw "github.com/gameshelf/web/internal/middleware"
	"github.com/gameshelf/web/internal/observability"
	"github.com/gameshelf/web/internal/search"
)

var (
	logger         *zap.Logger
	apiClient      *api.Client
	listSvc        *lists.Service
	searchRegistry *search.Registry
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "config.yaml", "configuration file path")
	flag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger, err = observability.NewLogger()
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	mw.ConfigureSession(cfg.Session.SigningKey, cfg.Session.Secure)

	templatesDir = cfg.Server.TemplatesDir
	publicDir = cfg.Server.PublicDir
	devMode = cfg.Server.Dev

	if !devMode {
		tc, err := parseTemplates()
		if err != nil {
			logger.Fatal("parse templates", zap.Error(err))
		}
		tmplCache = tc
	}

	apiClient, err = api.New(cfg.Backend.BaseURL, &http.Client{Timeout: cfg.Backend.Timeout.Std()})
	if err != nil {
		logger.Fatal("backend client", zap.Error(err))
	}
	listSvc = lists.NewService(apiClient)
	searchRegistry = search.NewRegistry(apiClient.SearchGames, cfg.Search.Debounce.Std())

	r := newRouter(cfg)

	srv := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.ReadTimeout.Std(),
		WriteTimeout:      cfg.Server.WriteTimeout.Std(),
		IdleTimeout:       cfg.Server.IdleTimeout.Std(),
	}

	logger.Info("web listening",
		zap.String("addr", srv.Addr),
		zap.String("backend", cfg.Backend.BaseURL),
		zap.Bool("dev", devMode))
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("listen", zap.Error(err))
	}
}

func newRouter(cfg config.Config) chi.Router {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	// RealIP trusts X-Forwarded-For; only deploy behind a proxy that
	// sanitizes it.
	r.Use(chimw.RealIP)
	r.Use(mw.HTMX)
	r.Use(mw.Session)
	r.Use(mw.BackendSession)
	r.Use(mw.CSRF)
	r.Use(mw.Logger(logger))
	r.Use(chimw.Recoverer)
	r.Use(chimw.Compress(5))
	r.Use(chimw.Timeout(30 * time.Second))

	if cfg.Server.Dev && len(cfg.Server.DevOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   cfg.Server.DevOrigins,
			AllowedMethods:   []string{http.MethodGet, http.MethodPost},
			AllowedHeaders:   []string{"HX-Request", "HX-Target", "X-CSRF-Token", "Content-Type"},
			AllowCredentials: true,
		}))
	}

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = io.WriteString(w, "ok")
	})

	assets := http.StripPrefix("/assets", mw.AssetsWithCache(filepath.Join(publicDir, "assets")))
	r.Handle("/assets/*", assets)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/home", http.StatusMovedPermanently)
	})
	r.Get("/home", HomeHandler)

	r.Get("/games", CatalogHandler)
	r.Get("/games/search", SearchResultsFrag)

	r.Get("/game/{gameID}", DetailHandler)
	r.Post("/game/{gameID}/quick-add", QuickAddHandler)

	r.Get("/review/{gameID}", ReviewHandler)
	r.Post("/review/{gameID}", ReviewPublishHandler)

	r.Get("/lists", ListsHandler)
	r.Post("/lists", ListCreateHandler)
	r.Post("/lists/{listID}/items", ListAddHandler)

	r.Get("/profile", ProfileHandler)

	return r
}
