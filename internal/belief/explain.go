package belief

// #region imports
import (
	"github.com/danielpatrickdp/frog-tutor/internal/metrics"
)

// #endregion

// #region controller

// ExplainController scores the need for a rules explanation: high when
// errors and repetition dominate over demonstrated skill.
type ExplainController struct{}

// NewExplain returns the Explain controller.
func NewExplain() *ExplainController { return &ExplainController{} }

func (c *ExplainController) Name() Name { return Explain }

// #endregion

// #region evaluate

func (c *ExplainController) Evaluate(m metrics.AttemptMetrics, _ GameContext, cfg Config) (float64, error) {
	ec := cfg.Explain

	value := 0.0
	switch {
	case m.TriesCount > ec.TriesHigh:
		value += 0.4
	case m.TriesCount > ec.TriesMid:
		value += 0.3
	case m.TriesCount > ec.TriesLow:
		value += 0.2
	}

	switch {
	case m.MissesCount > ec.MissHigh:
		value += 0.3
	case m.MissesCount > ec.MissMid:
		value += 0.2
	}

	if m.Buclicity > ec.Buclicity {
		value += 0.2
	}

	switch skill := skillLevel(m); {
	case skill < ec.SkillLow:
		value += 0.3
	case skill < ec.SkillMid:
		value += 0.2
	}

	return clamp01(value), nil
}

// #endregion

// #region action

func (c *ExplainController) Action(value float64, _ metrics.AttemptMetrics, _ GameContext, cfg Config) (ActionPayload, error) {
	payload := ActionPayload{
		Belief:      Explain,
		BeliefValue: value,
		Severity:    severityFor(value, cfg.Breakpoints),
	}

	switch payload.Severity {
	case SeverityHigh:
		payload.Message = "Let's go over the rules. Blocks only move forward: one slot into the empty space, " +
			"or a jump over a single opposing block. The goal is to swap both teams completely."
	case SeverityMedium:
		payload.Message = "Quick reminder: blocks never move backward, and a jump must go over an opposing block."
	default:
		payload.Message = "You clearly understand the rules. Keep it up and you'll finish this level soon."
	}

	return payload, nil
}

// #endregion
