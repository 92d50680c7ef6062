package store

import (
	"time"

	"github.com/danielpatrickdp/frog-tutor/internal/puzzle"
)

// #region game
// Game is one registered player session.
type Game struct {
	ID         string
	PlayerName string
	CreatedAt  time.Time
}

// #endregion game

// #region attempt
// Attempt is one continuous play session at a fixed difficulty. A game
// has at most one active attempt; difficulty changes deactivate the
// current attempt and insert a fresh one.
type Attempt struct {
	ID         string
	GameID     string
	Difficulty puzzle.DifficultyID
	IsActive   bool
	CreatedAt  time.Time
}

// #endregion attempt

// #region movement
// Movement is one persisted move event. Rows are append-only; only the
// interrupted flag may flip, when an intervention cuts the move short.
type Movement struct {
	ID          int64
	AttemptID   string
	Step        int
	Board       string
	IsCorrect   bool
	Interrupted bool
	CreatedAt   time.Time
}

// #endregion movement

// #region decision-record
// DecisionRecord is one row of the decision provenance log.
type DecisionRecord struct {
	ID          int64
	GameID      string
	AttemptID   string
	Winner      string
	BeliefValue float64
	SkippedJSON string
	CreatedAt   time.Time
}

// #endregion decision-record
