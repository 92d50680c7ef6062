package belief

import "github.com/danielpatrickdp/frog-tutor/internal/metrics"

// #region skill

// Skill-level blend weights. Lower tries, misses, buclicity, and time
// score higher; higher branch factor and correct-move counts score
// higher. Fixed, hand-tuned.
const (
	skillTriesWeight     = 0.25
	skillMissesWeight    = 0.20
	skillBuclicityWeight = 0.15
	skillBranchWeight    = 0.20
	skillTimeWeight      = 0.10
	skillCorrectWeight   = 0.10
)

// skillLevel estimates the player's demonstrated skill in [0,1] from
// normalized metrics.
func skillLevel(m metrics.AttemptMetrics) float64 {
	triesScore := clamp01(1 - float64(m.TriesCount)/20)
	missesScore := clamp01(1 - float64(m.MissesCount)/10)
	buclicityScore := clamp01(1 - float64(m.Buclicity)/10)
	branchScore := clamp01(m.BranchFactor / 5)
	timeScore := clamp01(1 - m.AverageTime/60)
	correctScore := clamp01(float64(m.CorrectMoves) / 10)

	return clamp01(
		triesScore*skillTriesWeight +
			missesScore*skillMissesWeight +
			buclicityScore*skillBuclicityWeight +
			branchScore*skillBranchWeight +
			timeScore*skillTimeWeight +
			correctScore*skillCorrectWeight,
	)
}

// #endregion

// #region engagement

// engagementScore estimates engagement in [0,1]: a reasonable inter-move
// rhythm scores high, and shorter attempts score as more consistent.
func engagementScore(m metrics.AttemptMetrics) float64 {
	var timeScore float64
	switch t := m.AverageTime; {
	case t >= 2 && t <= 15:
		timeScore = 1.0
	case t >= 1 && t <= 30:
		timeScore = 0.7
	case t < 60:
		timeScore = 0.4
	default:
		timeScore = 0.1
	}

	var consistency float64
	if m.TriesCount > 0 {
		consistency = clamp01(20 / float64(m.TriesCount))
	}

	return (timeScore + consistency) / 2
}

// #endregion
