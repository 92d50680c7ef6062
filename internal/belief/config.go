package belief

// #region breakpoints

// Breakpoints are the severity tier boundaries shared by all
// controllers' actions.
type Breakpoints struct {
	Low  float64 `json:"low"`
	High float64 `json:"high"`
}

// #endregion

// #region per-controller

// AdviceConfig tiers the tries count and scales the branch-factor
// penalty. A player handling many alternatives needs less advice.
type AdviceConfig struct {
	TriesHigh  int     `json:"tries_high"`
	TriesMid   int     `json:"tries_mid"`
	TriesLow   int     `json:"tries_low"`
	WeightHigh float64 `json:"weight_high"`
	WeightMid  float64 `json:"weight_mid"`
	WeightLow  float64 `json:"weight_low"`

	BranchPenalty float64 `json:"branch_penalty"` // max penalty at full branch norm
	BranchNorm    float64 `json:"branch_norm"`
}

// FeedbackConfig weights the four feedback sub-scores. The weights sum
// to 1 so the combined value stays in [0,1].
type FeedbackConfig struct {
	PerformanceWeight float64 `json:"performance_weight"`
	LearningWeight    float64 `json:"learning_weight"`
	EngagementWeight  float64 `json:"engagement_weight"`
	DifficultyWeight  float64 `json:"difficulty_weight"`
}

// ExplainConfig tiers the confusion signals against demonstrated skill.
type ExplainConfig struct {
	TriesHigh int     `json:"tries_high"`
	TriesMid  int     `json:"tries_mid"`
	TriesLow  int     `json:"tries_low"`
	MissHigh  int     `json:"miss_high"`
	MissMid   int     `json:"miss_mid"`
	Buclicity int     `json:"buclicity"`
	SkillLow  float64 `json:"skill_low"`
	SkillMid  float64 `json:"skill_mid"`
}

// DemonstrateConfig normalizes the stagnation signal.
type DemonstrateConfig struct {
	BuclicityWeight float64 `json:"buclicity_weight"`
	BranchWeight    float64 `json:"branch_weight"`
	BuclicityNorm   float64 `json:"buclicity_norm"`
	BranchNorm      float64 `json:"branch_norm"`
}

// AskConfig weights the mid-range-engagement peak, the inter-move time
// term, and the inverse comprehension term.
type AskConfig struct {
	MidWeight           float64 `json:"mid_weight"`
	TimeWeight          float64 `json:"time_weight"`
	ComprehensionWeight float64 `json:"comprehension_weight"`
	TimeNorm            float64 `json:"time_norm"` // seconds mapped to a full time term
}

// #endregion

// #region config

// Config bundles every controller's weights and thresholds plus the
// shared severity breakpoints. It is loaded once at process start and
// passed by value into every call.
type Config struct {
	Breakpoints Breakpoints       `json:"breakpoints"`
	Advice      AdviceConfig      `json:"advice"`
	Feedback    FeedbackConfig    `json:"feedback"`
	Explain     ExplainConfig     `json:"explain"`
	Demonstrate DemonstrateConfig `json:"demonstrate"`
	Ask         AskConfig         `json:"ask"`
}

// DefaultConfig returns the hand-tuned default weight sets.
func DefaultConfig() Config {
	return Config{
		Breakpoints: Breakpoints{Low: 0.3, High: 0.6},
		Advice: AdviceConfig{
			TriesHigh:     15,
			TriesMid:      10,
			TriesLow:      5,
			WeightHigh:    0.4,
			WeightMid:     0.3,
			WeightLow:     0.2,
			BranchPenalty: 0.2,
			BranchNorm:    4.0,
		},
		Feedback: FeedbackConfig{
			PerformanceWeight: 0.30,
			LearningWeight:    0.25,
			EngagementWeight:  0.20,
			DifficultyWeight:  0.25,
		},
		Explain: ExplainConfig{
			TriesHigh: 15,
			TriesMid:  10,
			TriesLow:  5,
			MissHigh:  5,
			MissMid:   2,
			Buclicity: 5,
			SkillLow:  0.3,
			SkillMid:  0.6,
		},
		Demonstrate: DemonstrateConfig{
			BuclicityWeight: 0.6,
			BranchWeight:    0.4,
			BuclicityNorm:   10.0,
			BranchNorm:      4.0,
		},
		Ask: AskConfig{
			MidWeight:           0.5,
			TimeWeight:          0.25,
			ComprehensionWeight: 0.25,
			TimeNorm:            30.0,
		},
	}
}

// #endregion
