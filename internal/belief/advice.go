package belief

// #region imports
import (
	"github.com/danielpatrickdp/frog-tutor/internal/metrics"
	"github.com/danielpatrickdp/frog-tutor/internal/puzzle"
)

// #endregion

// #region controller

// AdviceController scores the need for direct guidance: many tries push
// the belief up in fixed tiers, a healthy branch factor pulls it down.
type AdviceController struct{}

// NewAdvice returns the Advice controller.
func NewAdvice() *AdviceController { return &AdviceController{} }

func (c *AdviceController) Name() Name { return Advice }

// #endregion

// #region evaluate

func (c *AdviceController) Evaluate(m metrics.AttemptMetrics, _ GameContext, cfg Config) (float64, error) {
	ac := cfg.Advice

	value := 0.0
	switch {
	case m.TriesCount > ac.TriesHigh:
		value += ac.WeightHigh
	case m.TriesCount > ac.TriesMid:
		value += ac.WeightMid
	case m.TriesCount > ac.TriesLow:
		value += ac.WeightLow
	}

	if ac.BranchNorm > 0 {
		value -= ac.BranchPenalty * clamp01(m.BranchFactor/ac.BranchNorm)
	}

	return clamp01(value), nil
}

// #endregion

// #region action

func (c *AdviceController) Action(value float64, m metrics.AttemptMetrics, ctx GameContext, cfg Config) (ActionPayload, error) {
	payload := ActionPayload{
		Belief:      Advice,
		BeliefValue: value,
		Severity:    severityFor(value, cfg.Breakpoints),
	}

	switch payload.Severity {
	case SeverityHigh:
		if ctx.Difficulty.ID > puzzle.MinDifficulty {
			payload.Message = "Don't give up. Let's try again with one less block."
			payload.DifficultyDelta = -1
		} else {
			payload.Message = "Maybe you need a bit more practice. Keep at it!"
		}
	case SeverityMedium:
		payload.Message = "Take your time and plan a couple of moves ahead before you touch a block."
	default:
		payload.Message = "You're doing fine. Keep going!"
	}

	return payload, nil
}

// #endregion
