package puzzle

// #region imports
import (
	"fmt"
	"strconv"
	"strings"
)

// #endregion

// #region board

// Board is one puzzle configuration: a line of slots holding block IDs,
// with exactly one empty slot (0). Blocks 1..k belong to the left team
// and move toward higher indices; blocks k+1..2k belong to the right
// team and move toward lower indices. Boards are value types and are
// never mutated in place.
type Board []int

// Clone returns an independent copy of the board.
func (b Board) Clone() Board {
	out := make(Board, len(b))
	copy(out, b)
	return out
}

// Key returns the canonical comma-separated encoding of the board.
// Two boards with identical slot contents produce identical keys.
func (b Board) Key() string {
	parts := make([]string, len(b))
	for i, v := range b {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}

// Equal reports structural equality.
func (b Board) Equal(other Board) bool {
	if len(b) != len(other) {
		return false
	}
	for i := range b {
		if b[i] != other[i] {
			return false
		}
	}
	return true
}

// EmptySlot returns the index of the empty slot, or -1 if absent.
func (b Board) EmptySlot() int {
	for i, v := range b {
		if v == 0 {
			return i
		}
	}
	return -1
}

// PerTeam returns the number of blocks per team for this board size.
func (b Board) PerTeam() int {
	return (len(b) - 1) / 2
}

// ParseBoard decodes a comma-separated board encoding.
func ParseBoard(s string) (Board, error) {
	parts := strings.Split(s, ",")
	out := make(Board, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("parse board %q: %w", s, err)
		}
		out = append(out, v)
	}
	return out, nil
}

// #endregion

// #region validate

// Validate checks that the board is a well-formed configuration:
// odd slot count, exactly one empty slot, and block IDs forming the
// exact multiset 1..2k. Malformed boards fail with *InvalidStateError.
func Validate(b Board) error {
	if len(b) < 3 || len(b)%2 == 0 {
		return &InvalidStateError{Reason: fmt.Sprintf("board must have an odd slot count >= 3, got %d", len(b))}
	}

	empties := 0
	seen := make(map[int]bool, len(b))
	for _, v := range b {
		if v == 0 {
			empties++
			continue
		}
		if v < 1 || v > len(b)-1 {
			return &InvalidStateError{Reason: fmt.Sprintf("block id %d out of range for %d slots", v, len(b))}
		}
		if seen[v] {
			return &InvalidStateError{Reason: fmt.Sprintf("duplicate block id %d", v)}
		}
		seen[v] = true
	}
	if empties != 1 {
		return &InvalidStateError{Reason: fmt.Sprintf("board must have exactly one empty slot, got %d", empties)}
	}
	return nil
}

// #endregion

// #region team-checks

func isLeftBlock(block, perTeam int) bool {
	return block >= 1 && block <= perTeam
}

func isRightBlock(block, perTeam int) bool {
	return block > perTeam && block <= 2*perTeam
}

// #endregion

// #region moves

// Move identifies a single legal action: the block at slot From slides
// or jumps into the current empty slot.
type Move struct {
	From int
}

// legalFrom reports whether the block at slot i may move into the empty
// slot at slot j. Slides cover distance 1; jumps cover distance 2 and
// require an opposing block in the middle slot.
func legalFrom(b Board, i, j, perTeam int) bool {
	if i < 0 || i >= len(b) || j < 0 || j >= len(b) {
		return false
	}
	block := b[i]
	if block == 0 || b[j] != 0 {
		return false
	}

	dist := j - i
	switch {
	case dist == 1 && isLeftBlock(block, perTeam):
		return true
	case dist == -1 && isRightBlock(block, perTeam):
		return true
	case dist == 2 && isLeftBlock(block, perTeam):
		mid := b[i+1]
		return mid != 0 && !isLeftBlock(mid, perTeam)
	case dist == -2 && isRightBlock(block, perTeam):
		mid := b[i-1]
		return mid != 0 && !isRightBlock(mid, perTeam)
	}
	return false
}

// LegalMoves returns every legal move for the board, ordered by
// ascending source slot index. The order is stable so repeated calls on
// identical boards are reproducible. The board is assumed well-formed;
// callers at the system boundary run Validate first.
func LegalMoves(b Board) []Move {
	empty := b.EmptySlot()
	if empty < 0 {
		return nil
	}
	perTeam := b.PerTeam()

	var moves []Move
	for _, offset := range []int{-2, -1, 1, 2} {
		i := empty + offset
		if legalFrom(b, i, empty, perTeam) {
			moves = append(moves, Move{From: i})
		}
	}
	return moves
}

// ApplyMove returns the successor board produced by the move, or fails
// with *InvalidMoveError when the descriptor is not currently legal.
func ApplyMove(b Board, m Move) (Board, error) {
	empty := b.EmptySlot()
	if empty < 0 || !legalFrom(b, m.From, empty, b.PerTeam()) {
		return nil, &InvalidMoveError{From: m.From, Board: b.Key()}
	}
	next := b.Clone()
	next[empty], next[m.From] = next[m.From], 0
	return next, nil
}

// Successors returns every board reachable in one legal move, in the
// same stable order as LegalMoves.
func Successors(b Board) []Board {
	moves := LegalMoves(b)
	out := make([]Board, 0, len(moves))
	for _, m := range moves {
		next, err := ApplyMove(b, m)
		if err != nil {
			continue
		}
		out = append(out, next)
	}
	return out
}

// IsGoal reports whether the board matches the goal configuration.
func IsGoal(b, goal Board) bool {
	return b.Equal(goal)
}

// #endregion
