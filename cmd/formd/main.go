package main

import (
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/Redwolfer/satkit/pkg/config"
	"github.com/Redwolfer/satkit/pkg/logger"
	"github.com/Redwolfer/satkit/validate/ruleset"
)

// Config holds the service settings, loaded from the environment.
type Config struct {
	Addr      string        `env:"FORMD_ADDR" envDefault:":8080"`
	RulesPath string        `env:"FORMD_RULES" envDefault:"rules.yaml"`
	LogLevel  string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string        `env:"LOG_FORMAT" envDefault:"json"`
	Timeout   time.Duration `env:"FORMD_TIMEOUT" envDefault:"15s"`
}

func main() {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		logger.New().Error("load config", "error", err)
		os.Exit(1)
	}

	log := logger.New(
		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
		logger.WithFormat(logger.Format(cfg.LogFormat)),
		logger.WithService("formd"),
	)

	rules, err := ruleset.ParseFile(cfg.RulesPath)
	if err != nil {
		log.Error("load rule set", "path", cfg.RulesPath, "error", err)
		os.Exit(1)
	}
	log.Info("rule set loaded", "path", cfg.RulesPath, "rules", len(rules.Rules))

	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(chimiddleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Post("/validate", handleValidate(log, rules))

	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      r,
		ReadTimeout:  cfg.Timeout,
		WriteTimeout: cfg.Timeout,
	}

	log.Info("listening", "addr", cfg.Addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
