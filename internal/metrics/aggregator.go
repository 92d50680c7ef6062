// Package metrics reduces a persisted move history into the canonical
// per-attempt metric set consumed by the belief controllers.
package metrics

// #region imports
import (
	"fmt"

	"github.com/danielpatrickdp/frog-tutor/internal/puzzle"
)

// #endregion

// #region aggregate

// Aggregate reduces an ordered event sequence plus the attempt's
// explicit miss tally into AttemptMetrics. The reduction is pure:
// recomputing over the same inputs yields identical results. Board
// encodings that fail to parse fail the whole aggregation; the caller
// decides whether to retry or surface the error.
func Aggregate(events []MoveEvent, missCount int, goal puzzle.Board) (AttemptMetrics, error) {
	m := AttemptMetrics{MissesCount: missCount}

	trace := make([]puzzle.Board, 0, len(events))
	for _, ev := range events {
		board, err := puzzle.ParseBoard(ev.Board)
		if err != nil {
			return AttemptMetrics{}, fmt.Errorf("event step %d: %w", ev.Step, err)
		}
		trace = append(trace, board)

		if ev.Correct {
			m.CorrectMoves++
		} else {
			m.TriesCount++
		}
	}
	m.TriesCount += missCount

	m.Buclicity, m.RepeatedStates = traceRepeats(trace)
	m.BranchFactor = branchFactor(trace, goal)
	m.AverageTime = averageTime(events)

	return m, nil
}

// #endregion

// #region trace-repeats

// traceRepeats scans the visited-state trace once, counting both total
// reappearances (buclicity) and distinct states seen more than once.
func traceRepeats(trace []puzzle.Board) (buclicity, repeated int) {
	counts := make(map[string]int, len(trace))
	for _, board := range trace {
		key := board.Key()
		counts[key]++
		if counts[key] > 1 {
			buclicity++
		}
	}
	for _, c := range counts {
		if c >= 2 {
			repeated++
		}
	}
	return buclicity, repeated
}

// #endregion

// #region branch-factor

// branchFactor averages the legal-move count over all non-terminal
// visited states. A state is terminal when it matches the goal or has
// no legal moves. Attempts with no non-terminal states report 0.
func branchFactor(trace []puzzle.Board, goal puzzle.Board) float64 {
	sum := 0
	counted := 0
	for _, board := range trace {
		if puzzle.IsGoal(board, goal) {
			continue
		}
		n := len(puzzle.LegalMoves(board))
		if n == 0 {
			continue
		}
		sum += n
		counted++
	}
	if counted == 0 {
		return 0
	}
	return float64(sum) / float64(counted)
}

// #endregion

// #region average-time

// averageTime is the mean of consecutive event timestamp deltas in
// seconds. Attempts with fewer than two events report 0.
func averageTime(events []MoveEvent) float64 {
	if len(events) < 2 {
		return 0
	}
	total := events[len(events)-1].At.Sub(events[0].At).Seconds()
	if total <= 0 {
		return 0
	}
	return total / float64(len(events)-1)
}

// #endregion
