// Package solver runs breadth-first search over the puzzle state graph.
// All edges have unit cost, so BFS depth is the optimal move count.
package solver

// #region imports
import (
	"github.com/danielpatrickdp/frog-tutor/internal/puzzle"
)

// #endregion

// #region config

// DefaultMaxExpansions bounds a single search. The reachable space of
// even the 11-slot board is far smaller; the cap is a safety valve for
// malformed-but-valid inputs, after which the search reports unknown.
const DefaultMaxExpansions = 250_000

// Solver answers shortest-path queries over puzzle boards. The zero
// value is not usable; construct with New.
type Solver struct {
	maxExpansions int
}

// New returns a solver with the given node-expansion cap. A cap <= 0
// falls back to DefaultMaxExpansions.
func New(maxExpansions int) *Solver {
	if maxExpansions <= 0 {
		maxExpansions = DefaultMaxExpansions
	}
	return &Solver{maxExpansions: maxExpansions}
}

// #endregion

// #region shortest-path

// ShortestPathLength returns the minimum number of moves from start to
// goal, or (0, false) when the goal is unreachable or the expansion cap
// fired. Both boards are validated eagerly; malformed boards fail with
// *puzzle.InvalidStateError before any search begins.
func (s *Solver) ShortestPathLength(start, goal puzzle.Board) (int, bool, error) {
	if err := validatePair(start, goal); err != nil {
		return 0, false, err
	}
	if start.Equal(goal) {
		return 0, true, nil
	}

	type item struct {
		board puzzle.Board
		depth int
	}
	visited := map[string]bool{start.Key(): true}
	queue := []item{{start, 0}}
	expansions := 0

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		expansions++
		if expansions > s.maxExpansions {
			return 0, false, nil
		}

		for _, next := range puzzle.Successors(current.board) {
			if next.Equal(goal) {
				return current.depth + 1, true, nil
			}
			key := next.Key()
			if visited[key] {
				continue
			}
			visited[key] = true
			queue = append(queue, item{next, current.depth + 1})
		}
	}

	return 0, false, nil
}

// #endregion

// #region best-next

// BestNextMove returns the successor of start that minimizes the
// remaining distance to goal. Ties break by the stable successor order
// (ascending source slot index), so repeated calls are reproducible.
// Returns nil when start is already the goal or when no successor has a
// known finite distance.
func (s *Solver) BestNextMove(start, goal puzzle.Board) (puzzle.Board, error) {
	if err := validatePair(start, goal); err != nil {
		return nil, err
	}
	if start.Equal(goal) {
		return nil, nil
	}

	var best puzzle.Board
	bestDist := -1
	for _, next := range puzzle.Successors(start) {
		dist, ok, err := s.ShortestPathLength(next, goal)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		if bestDist < 0 || dist < bestDist {
			best = next
			bestDist = dist
		}
	}
	return best, nil
}

// #endregion

// #region winnable

// IsWinnable reports whether the goal is reachable from start. A search
// cut off by the expansion cap reports false ("cannot determine").
func (s *Solver) IsWinnable(start, goal puzzle.Board) (bool, error) {
	_, ok, err := s.ShortestPathLength(start, goal)
	if err != nil {
		return false, err
	}
	return ok, nil
}

// #endregion

// #region validate

func validatePair(start, goal puzzle.Board) error {
	if err := puzzle.Validate(start); err != nil {
		return err
	}
	if err := puzzle.Validate(goal); err != nil {
		return err
	}
	if len(start) != len(goal) {
		return &puzzle.InvalidStateError{Reason: "start and goal must have the same slot count"}
	}
	return nil
}

// #endregion
