package belief

// #region imports
import (
	"fmt"

	"github.com/danielpatrickdp/frog-tutor/internal/metrics"
)

// #endregion

// #region controller

// FeedbackController scores how much a rounded progress report would
// help: a weighted blend of overall performance, learning progress,
// engagement, and difficulty adaptation.
type FeedbackController struct{}

// NewFeedback returns the Feedback controller.
func NewFeedback() *FeedbackController { return &FeedbackController{} }

func (c *FeedbackController) Name() Name { return Feedback }

// #endregion

// #region evaluate

func (c *FeedbackController) Evaluate(m metrics.AttemptMetrics, _ GameContext, cfg Config) (float64, error) {
	fc := cfg.Feedback
	value := performanceScore(m)*fc.PerformanceWeight +
		learningScore(m)*fc.LearningWeight +
		engagementScore(m)*fc.EngagementWeight +
		difficultyScore(m)*fc.DifficultyWeight
	return clamp01(value), nil
}

// #endregion

// #region sub-scores

func performanceScore(m metrics.AttemptMetrics) float64 {
	score := 0.0

	switch {
	case m.TriesCount <= 5:
		score += 1.0
	case m.TriesCount <= 10:
		score += 0.7
	case m.TriesCount <= 15:
		score += 0.4
	default:
		score += 0.1
	}

	switch {
	case m.MissesCount == 0:
		score += 1.0
	case m.MissesCount <= 2:
		score += 0.7
	case m.MissesCount <= 5:
		score += 0.4
	default:
		score += 0.1
	}

	if m.TriesCount > 0 {
		score += clamp01(float64(m.CorrectMoves) / float64(m.TriesCount))
	}

	return score / 3
}

func learningScore(m metrics.AttemptMetrics) float64 {
	score := 0.0

	switch {
	case m.Buclicity == 0:
		score += 1.0
	case m.Buclicity <= 2:
		score += 0.8
	case m.Buclicity <= 5:
		score += 0.5
	default:
		score += 0.2
	}

	switch {
	case m.BranchFactor >= 4:
		score += 1.0
	case m.BranchFactor >= 2:
		score += 0.7
	case m.BranchFactor >= 1:
		score += 0.4
	default:
		score += 0.1
	}

	switch {
	case m.RepeatedStates == 0:
		score += 1.0
	case m.RepeatedStates <= 2:
		score += 0.7
	default:
		score += 0.3
	}

	return score / 3
}

func difficultyScore(m metrics.AttemptMetrics) float64 {
	switch skill := skillLevel(m); {
	case skill >= 0.8:
		return 1.0
	case skill >= 0.6:
		return 0.7
	case skill >= 0.4:
		return 0.5
	case skill >= 0.2:
		return 0.3
	default:
		return 0.1
	}
}

// #endregion

// #region action

func (c *FeedbackController) Action(value float64, m metrics.AttemptMetrics, _ GameContext, cfg Config) (ActionPayload, error) {
	payload := ActionPayload{
		Belief:      Feedback,
		BeliefValue: value,
		Severity:    severityFor(value, cfg.Breakpoints),
	}

	switch payload.Severity {
	case SeverityHigh:
		payload.Message = fmt.Sprintf(
			"Excellent work! %d correct moves with only %d misses. Your strategy is really coming together.",
			m.CorrectMoves, m.MissesCount)
	case SeverityMedium:
		if m.Buclicity > 3 {
			payload.Message = "You're getting stuck in repeating patterns. Try a different opening and see where it leads."
		} else {
			payload.Message = fmt.Sprintf(
				"Good progress. You've made %d moves so far; keep refining your plan.", m.TriesCount+m.CorrectMoves)
		}
	default:
		payload.Message = "Everyone starts somewhere. Remember: blocks only move forward, one slot or one jump at a time."
	}

	return payload, nil
}

// #endregion
