package main

import (
	"flag"
	"log/slog"
	"net/http"
	"os"

	"golf-tracker/internal/auth"
	"golf-tracker/internal/config"
	"golf-tracker/internal/courses"
	"golf-tracker/internal/handicap"
	"golf-tracker/internal/middleware"
	"golf-tracker/internal/rounds"
	"golf-tracker/internal/storage"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := storage.Open(cfg.Database.Path)
	if err != nil {
		slog.Error("failed to open database", "path", cfg.Database.Path, "error", err)
		os.Exit(1)
	}

	store := storage.NewRoundStore(db)
	handicaps := handicap.NewService(store)
	secret := []byte(cfg.JWT.Secret)

	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Telemetry)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	r.Handle("/metrics", promhttp.Handler())
	r.Post("/register", auth.RegisterHandler(db))
	r.Post("/login", auth.LoginHandler(db, secret, cfg.JWT.TTL))

	r.Group(func(r chi.Router) {
		r.Use(auth.Middleware(secret))

		r.Get("/me", auth.MeHandler(db))
		r.Post("/rounds", rounds.CreateHandler(store))
		r.Get("/rounds", rounds.ListHandler(store))
		r.Put("/rounds/{roundID}", rounds.UpdateHandler(store))
		r.Delete("/rounds/{roundID}", rounds.DeleteHandler(store))
		r.Get("/handicap", handicap.Handler(handicaps))
		r.Post("/handicap/calculate", handicap.ProjectHandler(handicaps))
		r.Get("/courses", courses.Handler(store))
	})

	slog.Info("golf service listening", "addr", cfg.Server.Addr)
	if err := http.ListenAndServe(cfg.Server.Addr, r); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
