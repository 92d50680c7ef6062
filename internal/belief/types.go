// Package belief holds the five scoring units of the tutoring engine.
// Each unit maps an attempt's metrics to a belief value in [0,1] and,
// when selected, produces the intervention payload for that belief.
package belief

// #region imports
import (
	"github.com/danielpatrickdp/frog-tutor/internal/metrics"
	"github.com/danielpatrickdp/frog-tutor/internal/puzzle"
)

// #endregion

// #region name

// Name identifies a belief controller. The set is closed.
type Name string

const (
	Advice      Name = "Advice"
	Feedback    Name = "Feedback"
	Explain     Name = "Explain"
	Demonstrate Name = "Demonstrate"
	Ask         Name = "Ask"
)

// #endregion

// #region severity

// Severity is the action tier selected from the belief value by the
// configured breakpoints.
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// severityFor maps a belief value to its tier. Values at or above the
// high breakpoint land in the high tier.
func severityFor(value float64, bp Breakpoints) Severity {
	switch {
	case value >= bp.High:
		return SeverityHigh
	case value >= bp.Low:
		return SeverityMedium
	default:
		return SeverityLow
	}
}

// #endregion

// #region context

// GameContext carries the live game data some controllers need beyond
// the metrics snapshot. Current may be nil when the caller has no board
// on record yet.
type GameContext struct {
	Difficulty puzzle.Difficulty
	Current    puzzle.Board
}

// #endregion

// #region payload

// ActionPayload is the structured intervention returned by a selected
// controller.
type ActionPayload struct {
	Belief          Name         `json:"belief_name"`
	BeliefValue     float64      `json:"belief_value"`
	Severity        Severity     `json:"severity"`
	Message         string       `json:"message"`
	SuggestedMove   puzzle.Board `json:"suggested_move,omitempty"`
	DifficultyDelta int          `json:"difficulty_delta,omitempty"`
}

// Result pairs a controller's belief value with its action payload.
type Result struct {
	Name   Name          `json:"name"`
	Value  float64       `json:"belief_value"`
	Action ActionPayload `json:"action"`
}

// #endregion

// #region controller

// Controller is the single capability all five belief units share:
// score the attempt, then act when selected. Evaluate is total over any
// metrics snapshot with non-negative fields; Action never fails for a
// belief value Evaluate produced on the same inputs.
type Controller interface {
	Name() Name
	Evaluate(m metrics.AttemptMetrics, ctx GameContext, cfg Config) (float64, error)
	Action(value float64, m metrics.AttemptMetrics, ctx GameContext, cfg Config) (ActionPayload, error)
}

// #endregion

// #region clamp

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// #endregion
