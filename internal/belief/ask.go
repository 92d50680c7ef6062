package belief

// #region imports
import (
	"math"

	"github.com/danielpatrickdp/frog-tutor/internal/metrics"
)

// #endregion

// #region controller

// AskController scores the value of a check-in question. It peaks when
// engagement is mid-range: a player clearly mastering the puzzle or
// clearly disengaged gains little from being asked.
type AskController struct{}

// NewAsk returns the Ask controller.
func NewAsk() *AskController { return &AskController{} }

func (c *AskController) Name() Name { return Ask }

// #endregion

// #region evaluate

func (c *AskController) Evaluate(m metrics.AttemptMetrics, _ GameContext, cfg Config) (float64, error) {
	ac := cfg.Ask

	engagement := engagementScore(m)
	midness := 1 - 2*math.Abs(engagement-0.5)

	var timeTerm float64
	if ac.TimeNorm > 0 {
		timeTerm = clamp01(m.AverageTime / ac.TimeNorm)
	}

	// Comprehension: share of tries that landed correctly. Neutral at
	// 0.5 before any tries exist.
	comprehension := 0.5
	if m.TriesCount > 0 {
		comprehension = clamp01(float64(m.CorrectMoves) / float64(m.TriesCount))
	}

	value := ac.MidWeight*clamp01(midness) +
		ac.TimeWeight*timeTerm +
		ac.ComprehensionWeight*(1-comprehension)
	return clamp01(value), nil
}

// #endregion

// #region action

func (c *AskController) Action(value float64, _ metrics.AttemptMetrics, _ GameContext, cfg Config) (ActionPayload, error) {
	payload := ActionPayload{
		Belief:      Ask,
		BeliefValue: value,
		Severity:    severityFor(value, cfg.Breakpoints),
	}

	switch payload.Severity {
	case SeverityHigh:
		payload.Message = "Do you need help with the next move?"
	case SeverityMedium:
		payload.Message = "How is it going? Would a hint be useful?"
	default:
		payload.Message = "You seem to have this under control. Shall we keep going?"
	}

	return payload, nil
}

// #endregion
