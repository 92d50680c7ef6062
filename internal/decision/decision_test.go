package decision

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/danielpatrickdp/frog-tutor/internal/belief"
	"github.com/danielpatrickdp/frog-tutor/internal/metrics"
	"github.com/danielpatrickdp/frog-tutor/internal/puzzle"
	"github.com/danielpatrickdp/frog-tutor/internal/solver"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func easyContext(t *testing.T, current puzzle.Board) belief.GameContext {
	t.Helper()
	d, err := puzzle.DifficultyByID(puzzle.DifficultyEasy)
	if err != nil {
		t.Fatalf("DifficultyByID: %v", err)
	}
	return belief.GameContext{Difficulty: d, Current: current}
}

// #region stubs

// stubController returns a fixed value or error, for isolating the
// selection logic from the real scoring formulas.
type stubController struct {
	name  belief.Name
	value float64
	err   error
}

func (s *stubController) Name() belief.Name { return s.name }

func (s *stubController) Evaluate(metrics.AttemptMetrics, belief.GameContext, belief.Config) (float64, error) {
	return s.value, s.err
}

func (s *stubController) Action(value float64, _ metrics.AttemptMetrics, _ belief.GameContext, _ belief.Config) (belief.ActionPayload, error) {
	return belief.ActionPayload{Belief: s.name, BeliefValue: value}, nil
}

func stubEngine(controllers ...belief.Controller) *Engine {
	return &Engine{controllers: controllers, logger: testLogger()}
}

// #endregion

// #region selection

func TestTieBreaksByPriorityOrder(t *testing.T) {
	e := stubEngine(
		&stubController{name: belief.Demonstrate, value: 0.5},
		&stubController{name: belief.Explain, value: 0.5},
		&stubController{name: belief.Advice, value: 0.5},
	)

	outcome, err := e.SelectBestBelief(metrics.AttemptMetrics{}, easyContext(t, nil), belief.DefaultConfig())
	if err != nil {
		t.Fatalf("SelectBestBelief: %v", err)
	}
	if outcome.Result.Name != belief.Demonstrate {
		t.Fatalf("expected the earlier controller to win the tie, got %s", outcome.Result.Name)
	}
}

func TestHigherValueBeatsPriority(t *testing.T) {
	e := stubEngine(
		&stubController{name: belief.Demonstrate, value: 0.4},
		&stubController{name: belief.Ask, value: 0.9},
	)

	outcome, err := e.SelectBestBelief(metrics.AttemptMetrics{}, easyContext(t, nil), belief.DefaultConfig())
	if err != nil {
		t.Fatalf("SelectBestBelief: %v", err)
	}
	if outcome.Result.Name != belief.Ask {
		t.Fatalf("expected Ask to win with the higher value, got %s", outcome.Result.Name)
	}
	if outcome.Result.Value != 0.9 {
		t.Fatalf("expected winning value 0.9, got %f", outcome.Result.Value)
	}
}

func TestFailedControllerIsSkipped(t *testing.T) {
	e := stubEngine(
		&stubController{name: belief.Demonstrate, err: errors.New("search overflow")},
		&stubController{name: belief.Feedback, value: 0.3},
	)

	outcome, err := e.SelectBestBelief(metrics.AttemptMetrics{}, easyContext(t, nil), belief.DefaultConfig())
	if err != nil {
		t.Fatalf("SelectBestBelief: %v", err)
	}
	if outcome.Result.Name != belief.Feedback {
		t.Fatalf("expected Feedback to win, got %s", outcome.Result.Name)
	}
	if len(outcome.Skipped) != 1 || outcome.Skipped[0].Name != belief.Demonstrate {
		t.Fatalf("expected Demonstrate in the skip list, got %v", outcome.Skipped)
	}
	if len(outcome.Ranking) != 1 {
		t.Fatalf("expected one ranked controller, got %d", len(outcome.Ranking))
	}
}

func TestAllControllersFailing(t *testing.T) {
	e := stubEngine(
		&stubController{name: belief.Demonstrate, err: errors.New("boom")},
		&stubController{name: belief.Ask, err: errors.New("boom")},
	)

	_, err := e.SelectBestBelief(metrics.AttemptMetrics{}, easyContext(t, nil), belief.DefaultConfig())
	if !errors.Is(err, ErrNoBeliefAvailable) {
		t.Fatalf("expected ErrNoBeliefAvailable, got %v", err)
	}
}

// #endregion

// #region full-engine

func TestFreshAttemptDoesNotAdvise(t *testing.T) {
	e := New(solver.New(0), testLogger())

	outcome, err := e.SelectBestBelief(metrics.AttemptMetrics{}, easyContext(t, nil), belief.DefaultConfig())
	if err != nil {
		t.Fatalf("SelectBestBelief: %v", err)
	}
	if outcome.Result.Name == belief.Advice {
		t.Fatal("a fresh attempt must not trigger advice")
	}
	if len(outcome.Ranking) != 5 {
		t.Fatalf("expected all five controllers ranked, got %d", len(outcome.Ranking))
	}
	for _, r := range outcome.Ranking {
		if r.Name == belief.Advice && r.Value != 0 {
			t.Fatalf("expected advice value 0 on a fresh attempt, got %f", r.Value)
		}
	}
}

func TestConfusedPlaySelectsExplanation(t *testing.T) {
	e := New(solver.New(0), testLogger())

	m := metrics.AttemptMetrics{TriesCount: 16, MissesCount: 6, Buclicity: 8}
	outcome, err := e.SelectBestBelief(m, easyContext(t, nil), belief.DefaultConfig())
	if err != nil {
		t.Fatalf("SelectBestBelief: %v", err)
	}
	if outcome.Result.Name != belief.Explain {
		t.Fatalf("expected Explain to win for confused play, got %s (%f)",
			outcome.Result.Name, outcome.Result.Value)
	}
}

func TestUnwinnableBoardSelectsDemonstration(t *testing.T) {
	e := New(solver.New(0), testLogger())
	stuck := puzzle.Board{0, 1, 2, 4, 3, 5, 6}

	outcome, err := e.SelectBestBelief(metrics.AttemptMetrics{}, easyContext(t, stuck), belief.DefaultConfig())
	if err != nil {
		t.Fatalf("SelectBestBelief: %v", err)
	}
	if outcome.Result.Name != belief.Demonstrate {
		t.Fatalf("expected Demonstrate for unwinnable board, got %s", outcome.Result.Name)
	}
	if outcome.Result.Value != 1.0 {
		t.Fatalf("expected forced value 1.0, got %f", outcome.Result.Value)
	}
}

// #endregion
