package replay

import (
	"testing"
	"time"

	"github.com/danielpatrickdp/frog-tutor/internal/belief"
	"github.com/danielpatrickdp/frog-tutor/internal/puzzle"
	"github.com/danielpatrickdp/frog-tutor/internal/solver"
)

func easyDifficulty(t *testing.T) puzzle.Difficulty {
	t.Helper()
	d, err := puzzle.DifficultyByID(puzzle.DifficultyEasy)
	if err != nil {
		t.Fatalf("DifficultyByID: %v", err)
	}
	return d
}

// optimalSteps walks the solver's best-next chain from the initial
// layout, spacing the recorded moves a fixed interval apart.
func optimalSteps(t *testing.T, diff puzzle.Difficulty, n int) []Step {
	t.Helper()
	s := solver.New(0)
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	current := diff.Initial
	steps := make([]Step, 0, n)
	for i := 0; i < n; i++ {
		next, err := s.BestNextMove(current, diff.Goal)
		if err != nil {
			t.Fatalf("step %d: BestNextMove: %v", i, err)
		}
		if next == nil {
			t.Fatalf("step %d: no improving move", i)
		}
		steps = append(steps, Step{Board: next.Key(), At: base.Add(time.Duration(i) * 2 * time.Second)})
		current = next
	}
	return steps
}

func TestReplayOptimalAttempt(t *testing.T) {
	diff := easyDifficulty(t)
	steps := optimalSteps(t, diff, 15)

	results, summary, err := Replay(diff, steps, DefaultReplayConfig())
	if err != nil {
		t.Fatalf("Replay: %v", err)
	}

	if !summary.Won {
		t.Fatal("expected the optimal attempt to win")
	}
	if summary.TotalMoves != 15 || summary.CorrectMoves != 15 {
		t.Fatalf("expected 15/15 correct moves, got %d/%d", summary.CorrectMoves, summary.TotalMoves)
	}
	// Decisions fire at moves 3, 6, 9, and 12; move 15 wins first.
	if summary.Decisions != 4 {
		t.Fatalf("expected 4 decisions, got %d", summary.Decisions)
	}
	if results[len(results)-1].Kind != "win" {
		t.Fatalf("expected final result win, got %s", results[len(results)-1].Kind)
	}

	// Error-free play never warrants advice or an explanation.
	for _, r := range results {
		if r.Decision == nil {
			continue
		}
		switch r.Decision.Result.Name {
		case belief.Advice, belief.Explain:
			t.Fatalf("step %d: unexpected winner %s for clean play", r.Index, r.Decision.Result.Name)
		}
	}

	if summary.Final.TriesCount != 0 || summary.Final.Buclicity != 0 {
		t.Fatalf("expected clean final metrics, got %+v", summary.Final)
	}
}

func TestReplayRejectsOffGraphStep(t *testing.T) {
	diff := easyDifficulty(t)
	steps := []Step{
		{Board: "1,2,0,3,4,5,6"},
		{Board: "1,0,3,2,4,5,6"}, // not one legal move away
	}

	results, summary, err := Replay(diff, steps, DefaultReplayConfig())
	if err != nil {
		t.Fatalf("Replay: %v", err)
	}
	if summary.Rejected != 1 || summary.TotalMoves != 1 {
		t.Fatalf("expected 1 rejected and 1 committed, got %+v", summary)
	}
	if results[1].Kind != "rejected" {
		t.Fatalf("expected rejected step, got %s", results[1].Kind)
	}
}

func TestReplayCountsMisses(t *testing.T) {
	diff := easyDifficulty(t)
	steps := []Step{
		{Miss: true},
		{Board: "1,2,0,3,4,5,6"},
		{Miss: true},
	}

	_, summary, err := Replay(diff, steps, DefaultReplayConfig())
	if err != nil {
		t.Fatalf("Replay: %v", err)
	}
	if summary.Misses != 2 {
		t.Fatalf("expected 2 misses, got %d", summary.Misses)
	}
	// Misses count as failed tries in the aggregated metrics.
	if summary.Final.TriesCount != 2 || summary.Final.MissesCount != 2 {
		t.Fatalf("unexpected final metrics: %+v", summary.Final)
	}
}

func TestReplayStopsAtWin(t *testing.T) {
	diff := easyDifficulty(t)
	steps := optimalSteps(t, diff, 15)
	steps = append(steps, Step{Board: diff.Goal.Key()}) // trailing noise

	results, summary, err := Replay(diff, steps, DefaultReplayConfig())
	if err != nil {
		t.Fatalf("Replay: %v", err)
	}
	if !summary.Won {
		t.Fatal("expected win")
	}
	if len(results) != 15 {
		t.Fatalf("expected replay to stop at the winning move, got %d results", len(results))
	}
}

func TestReplayFailsOnBadBoard(t *testing.T) {
	diff := easyDifficulty(t)
	steps := []Step{{Board: "not,a,board"}}

	if _, _, err := Replay(diff, steps, DefaultReplayConfig()); err == nil {
		t.Fatal("expected error for unparsable board")
	}
}
