package puzzle

import "fmt"

// #region invalid-state

// InvalidStateError reports a malformed board: wrong slot count,
// multiple or zero empty slots, or a broken block multiset.
type InvalidStateError struct {
	Reason string
}

func (e *InvalidStateError) Error() string {
	return "invalid board state: " + e.Reason
}

// #endregion

// #region invalid-move

// InvalidMoveError reports a move descriptor that is not legal for the
// board it was applied to.
type InvalidMoveError struct {
	From  int
	Board string
}

func (e *InvalidMoveError) Error() string {
	return fmt.Sprintf("invalid move from slot %d on board [%s]", e.From, e.Board)
}

// #endregion
