// Package decision selects the single pedagogical intervention whose
// belief value is highest for the current attempt.
package decision

// #region imports
import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/danielpatrickdp/frog-tutor/internal/belief"
	"github.com/danielpatrickdp/frog-tutor/internal/metrics"
	"github.com/danielpatrickdp/frog-tutor/internal/solver"
)

// #endregion

// #region errors

// ErrNoBeliefAvailable is returned when every controller failed
// evaluation and no selection is possible.
var ErrNoBeliefAvailable = errors.New("no belief available: all controllers failed evaluation")

// #endregion

// #region types

// Skipped records one controller excluded from a selection because its
// evaluation failed. Skips are logged, never surfaced as hard errors.
type Skipped struct {
	Name   belief.Name `json:"name"`
	Reason string      `json:"reason"`
}

// Outcome is the result of one full selection.
type Outcome struct {
	Result  belief.Result
	Ranking []Ranked
	Skipped []Skipped
}

// Ranked is one controller's evaluated value within a selection.
type Ranked struct {
	Name  belief.Name `json:"name"`
	Value float64     `json:"belief_value"`
}

// #endregion

// #region engine

// Engine evaluates all five controllers against one metrics snapshot
// and picks the winner. Controllers are held in tie-break priority
// order: an unsolvable-state signal (Demonstrate) is the most urgent,
// followed by conceptual gaps.
type Engine struct {
	controllers []belief.Controller
	logger      *slog.Logger
}

// New builds an engine with the five controllers in their fixed
// priority order: Demonstrate > Explain > Advice > Feedback > Ask.
func New(s *solver.Solver, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{
		controllers: []belief.Controller{
			belief.NewDemonstrate(s),
			belief.NewExplain(),
			belief.NewAdvice(),
			belief.NewFeedback(),
			belief.NewAsk(),
		},
		logger: logger,
	}
}

// #endregion

// #region select

// SelectBestBelief evaluates every controller with the same metrics
// snapshot, picks the maximum belief value (ties resolved by the fixed
// priority order), and invokes the winner's action. A controller whose
// evaluation fails is excluded and logged; selection fails only when
// all five fail.
func (e *Engine) SelectBestBelief(m metrics.AttemptMetrics, ctx belief.GameContext, cfg belief.Config) (Outcome, error) {
	var (
		winner  belief.Controller
		best    float64
		ranking []Ranked
		skipped []Skipped
	)

	for _, c := range e.controllers {
		value, err := c.Evaluate(m, ctx, cfg)
		if err != nil {
			e.logger.Warn("controller evaluation skipped",
				"controller", string(c.Name()), "error", err)
			skipped = append(skipped, Skipped{Name: c.Name(), Reason: err.Error()})
			continue
		}
		ranking = append(ranking, Ranked{Name: c.Name(), Value: value})

		// Strict comparison: on equal maxima the earlier (higher
		// priority) controller stays the winner.
		if winner == nil || value > best {
			winner = c
			best = value
		}
	}

	if winner == nil {
		return Outcome{Skipped: skipped}, ErrNoBeliefAvailable
	}

	action, err := winner.Action(best, m, ctx, cfg)
	if err != nil {
		return Outcome{Ranking: ranking, Skipped: skipped},
			fmt.Errorf("action for %s: %w", winner.Name(), err)
	}

	e.logger.Info("belief selected",
		"winner", string(winner.Name()), "value", best, "skipped", len(skipped))

	return Outcome{
		Result: belief.Result{
			Name:   winner.Name(),
			Value:  best,
			Action: action,
		},
		Ranking: ranking,
		Skipped: skipped,
	}, nil
}

// #endregion
