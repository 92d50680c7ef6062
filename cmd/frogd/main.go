package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/danielpatrickdp/frog-tutor/internal/config"
	"github.com/danielpatrickdp/frog-tutor/internal/decision"
	"github.com/danielpatrickdp/frog-tutor/internal/server"
	"github.com/danielpatrickdp/frog-tutor/internal/solver"
	"github.com/danielpatrickdp/frog-tutor/internal/store"
)

// #region main
func main() {
	configPath := flag.String("config", envOr("FROG_CONFIG", ""), "path to JSON config file")
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("load config", "error", err)
		os.Exit(1)
	}

	st, err := store.NewStore(cfg.DBPath)
	if err != nil {
		logger.Error("open store", "path", cfg.DBPath, "error", err)
		os.Exit(1)
	}
	defer st.Close()

	sv := solver.New(cfg.SolverMaxExpansions)
	eng := decision.New(sv, logger)

	srv := server.New(cfg, st, sv, eng, logger)
	logger.Info("frog tutor ready", "addr", cfg.Addr, "db", cfg.DBPath,
		"decision_interval", cfg.DecisionInterval)

	if err := srv.Router().Run(cfg.Addr); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

// #endregion main

// #region helpers
func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// #endregion helpers
