package metrics

import "time"

// #region move-event

// MoveEvent is one recorded player action within an attempt. Events are
// append-only and ordered by Step.
type MoveEvent struct {
	Step        int
	Board       string // canonical comma-separated board encoding
	Correct     bool
	At          time.Time
	Interrupted bool
}

// #endregion

// #region attempt-metrics

// AttemptMetrics is the derived aggregate over one attempt's move
// events. It is recomputed on demand from persisted events and never
// treated as ground truth of its own.
type AttemptMetrics struct {
	TriesCount     int     // incorrect moves + explicit miss records
	MissesCount    int     // explicit miss records only
	Buclicity      int     // state reappearances within the trace
	BranchFactor   float64 // mean legal-move count over non-terminal visited states
	RepeatedStates int     // distinct states visited more than once
	AverageTime    float64 // mean inter-move latency in seconds
	CorrectMoves   int
}

// #endregion
