package replay

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/danielpatrickdp/frog-tutor/internal/belief"
	"github.com/danielpatrickdp/frog-tutor/internal/decision"
	"github.com/danielpatrickdp/frog-tutor/internal/metrics"
	"github.com/danielpatrickdp/frog-tutor/internal/puzzle"
	"github.com/danielpatrickdp/frog-tutor/internal/solver"
)

// #region types

// Step is one recorded event from an attempt: either a board reached by a
// move, or a registered miss (a move the player started and abandoned).
type Step struct {
	Board string
	Miss  bool
	At    time.Time
}

// ReplayConfig bundles everything a replay run needs. A nil Logger
// discards decision-stage diagnostics.
type ReplayConfig struct {
	DecisionInterval int
	MaxExpansions    int
	Beliefs          belief.Config
	Logger           *slog.Logger
}

// DefaultReplayConfig returns the same defaults the live server uses.
func DefaultReplayConfig() ReplayConfig {
	return ReplayConfig{
		DecisionInterval: 3,
		MaxExpansions:    solver.DefaultMaxExpansions,
		Beliefs:          belief.DefaultConfig(),
	}
}

// StepResult captures the outcome of replaying one recorded step.
type StepResult struct {
	Index   int
	Kind    string // "move" | "miss" | "rejected" | "win"
	Correct bool

	// Decision is set when this step landed on a decision boundary.
	Decision *decision.Outcome
}

// Summary provides aggregate stats from a replay run.
type Summary struct {
	TotalMoves   int
	CorrectMoves int
	Misses       int
	Rejected     int
	Decisions    int
	Won          bool
	Final        metrics.AttemptMetrics
}

// #endregion types

// #region replay

// Replay re-runs a recorded attempt through the full pipeline: move
// legality and correctness, metrics aggregation, and belief selection at
// every decision boundary. Operates entirely in-memory.
func Replay(diff puzzle.Difficulty, steps []Step, cfg ReplayConfig) ([]StepResult, Summary, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	solv := solver.New(cfg.MaxExpansions)
	engine := decision.New(solv, logger)

	current := diff.Initial
	events := make([]metrics.MoveEvent, 0, len(steps))
	results := make([]StepResult, 0, len(steps))
	summary := Summary{}
	missCount := 0
	moveCount := 0

	for i, step := range steps {
		if step.Miss {
			missCount++
			summary.Misses++
			results = append(results, StepResult{Index: i, Kind: "miss"})
			continue
		}

		proposed, err := puzzle.ParseBoard(step.Board)
		if err != nil {
			return nil, summary, fmt.Errorf("step %d: %w", i, err)
		}

		legal := false
		for _, next := range puzzle.Successors(current) {
			if next.Equal(proposed) {
				legal = true
				break
			}
		}
		if !legal {
			summary.Rejected++
			results = append(results, StepResult{Index: i, Kind: "rejected"})
			continue
		}

		before, beforeKnown, err := solv.ShortestPathLength(current, diff.Goal)
		if err != nil {
			return nil, summary, fmt.Errorf("step %d: %w", i, err)
		}
		after, afterKnown, err := solv.ShortestPathLength(proposed, diff.Goal)
		if err != nil {
			return nil, summary, fmt.Errorf("step %d: %w", i, err)
		}
		correct := beforeKnown && afterKnown && after < before

		moveCount++
		summary.TotalMoves++
		if correct {
			summary.CorrectMoves++
		}
		current = proposed
		at := step.At
		if at.IsZero() {
			at = time.Now()
		}
		events = append(events, metrics.MoveEvent{
			Step:    moveCount,
			Board:   proposed.Key(),
			Correct: correct,
			At:      at,
		})

		res := StepResult{Index: i, Kind: "move", Correct: correct}
		if puzzle.IsGoal(current, diff.Goal) {
			res.Kind = "win"
			summary.Won = true
			results = append(results, res)
			break
		}

		if cfg.DecisionInterval > 0 && moveCount%cfg.DecisionInterval == 0 {
			m, err := metrics.Aggregate(events, missCount, diff.Goal)
			if err != nil {
				return nil, summary, fmt.Errorf("step %d: aggregate: %w", i, err)
			}
			outcome, err := engine.SelectBestBelief(m, belief.GameContext{
				Difficulty: diff,
				Current:    current,
			}, cfg.Beliefs)
			if err != nil {
				return nil, summary, fmt.Errorf("step %d: decide: %w", i, err)
			}
			events[len(events)-1].Interrupted = true
			summary.Decisions++
			res.Decision = &outcome
		}
		results = append(results, res)
	}

	final, err := metrics.Aggregate(events, missCount, diff.Goal)
	if err != nil {
		return nil, summary, fmt.Errorf("final aggregate: %w", err)
	}
	summary.Final = final
	return results, summary, nil
}

// #endregion replay
