// Package config loads the process-wide configuration once at start.
// The value is read-only after init and passed by value to callers.
package config

// #region imports
import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/danielpatrickdp/frog-tutor/internal/belief"
	"github.com/danielpatrickdp/frog-tutor/internal/solver"
)

// #endregion

// #region config

// Config is the full process configuration: server knobs plus the
// belief weight sets.
type Config struct {
	Addr                string        `json:"addr"`
	DBPath              string        `json:"db_path"`
	DecisionInterval    int           `json:"decision_interval"`
	SolverMaxExpansions int           `json:"solver_max_expansions"`
	Beliefs             belief.Config `json:"beliefs"`
}

// Default returns the built-in configuration: decisions every 3 moves,
// default belief weights, local SQLite file.
func Default() Config {
	return Config{
		Addr:                ":8080",
		DBPath:              "frog_tutor.db",
		DecisionInterval:    3,
		SolverMaxExpansions: solver.DefaultMaxExpansions,
		Beliefs:             belief.DefaultConfig(),
	}
}

// #endregion

// #region load

// Load reads a JSON config file over the defaults, then applies env
// overrides (FROG_ADDR, FROG_DB). An empty path skips the file.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := json.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if v := os.Getenv("FROG_ADDR"); v != "" {
		cfg.Addr = v
	}
	if v := os.Getenv("FROG_DB"); v != "" {
		cfg.DBPath = v
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.DecisionInterval < 1 {
		return fmt.Errorf("decision_interval must be >= 1, got %d", c.DecisionInterval)
	}
	bp := c.Beliefs.Breakpoints
	if bp.Low < 0 || bp.High > 1 || bp.Low >= bp.High {
		return fmt.Errorf("breakpoints must satisfy 0 <= low < high <= 1, got low=%.2f high=%.2f", bp.Low, bp.High)
	}
	return nil
}

// #endregion
