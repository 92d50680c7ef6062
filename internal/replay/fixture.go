package replay

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/danielpatrickdp/frog-tutor/internal/puzzle"
)

// #region fixture-types

// Fixture is the top-level JSON structure for a replay fixture.
type Fixture struct {
	Description     string                  `json:"description"`
	Difficulty      int                     `json:"difficulty"`
	Config          FixtureConfig           `json:"config"`
	Steps           []FixtureStep           `json:"steps"`
	ExpectedResults []FixtureExpectedResult `json:"expected_results"`
	ExpectedSummary *FixtureExpectedSummary `json:"expected_summary,omitempty"`
}

// FixtureStep mirrors replay.Step with JSON tags. At is seconds since
// the start of the attempt, so fixtures stay readable.
type FixtureStep struct {
	Board string  `json:"board,omitempty"`
	Miss  bool    `json:"miss,omitempty"`
	At    float64 `json:"at"`
}

// FixtureExpectedResult captures the expected winner at one decision
// boundary.
type FixtureExpectedResult struct {
	Index  int    `json:"index"`
	Belief string `json:"belief"`
}

// FixtureExpectedSummary captures expected aggregate stats.
type FixtureExpectedSummary struct {
	TotalMoves   int  `json:"total_moves"`
	CorrectMoves int  `json:"correct_moves"`
	Misses       int  `json:"misses"`
	Decisions    int  `json:"decisions"`
	Won          bool `json:"won"`
}

// FixtureConfig mirrors the run parameters with JSON tags. Zero values
// fall back to the defaults the live server uses.
type FixtureConfig struct {
	DecisionInterval int `json:"decision_interval"`
	MaxExpansions    int `json:"max_expansions"`
}

// #endregion fixture-types

// #region fixture-loader

// LoadFixture reads and parses a JSON fixture file.
func LoadFixture(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture %s: %w", path, err)
	}
	var f Fixture
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse fixture %s: %w", path, err)
	}
	return &f, nil
}

// ToDifficulty resolves the fixture's difficulty identifier.
func (f *Fixture) ToDifficulty() (puzzle.Difficulty, error) {
	return puzzle.DifficultyByID(puzzle.DifficultyID(f.Difficulty))
}

// ToSteps converts fixture steps to domain steps, anchoring relative
// timestamps at an arbitrary fixed epoch.
func (f *Fixture) ToSteps() []Step {
	base := time.Unix(0, 0).UTC()
	steps := make([]Step, 0, len(f.Steps))
	for _, fs := range f.Steps {
		steps = append(steps, Step{
			Board: fs.Board,
			Miss:  fs.Miss,
			At:    base.Add(time.Duration(fs.At * float64(time.Second))),
		})
	}
	return steps
}

// ToReplayConfig converts a FixtureConfig to a domain ReplayConfig.
func (fc *FixtureConfig) ToReplayConfig() ReplayConfig {
	cfg := DefaultReplayConfig()
	if fc.DecisionInterval > 0 {
		cfg.DecisionInterval = fc.DecisionInterval
	}
	if fc.MaxExpansions > 0 {
		cfg.MaxExpansions = fc.MaxExpansions
	}
	return cfg
}

// Check compares replay results against the fixture's expectations and
// returns one error message per mismatch.
func (f *Fixture) Check(results []StepResult, summary Summary) []string {
	var failures []string

	byIndex := make(map[int]StepResult, len(results))
	for _, r := range results {
		byIndex[r.Index] = r
	}
	for _, exp := range f.ExpectedResults {
		r, ok := byIndex[exp.Index]
		if !ok || r.Decision == nil {
			failures = append(failures, fmt.Sprintf("step %d: expected decision %q, got none", exp.Index, exp.Belief))
			continue
		}
		got := string(r.Decision.Result.Name)
		if got != exp.Belief {
			failures = append(failures, fmt.Sprintf("step %d: expected belief %q, got %q", exp.Index, exp.Belief, got))
		}
	}

	if es := f.ExpectedSummary; es != nil {
		if summary.TotalMoves != es.TotalMoves {
			failures = append(failures, fmt.Sprintf("total_moves: expected %d, got %d", es.TotalMoves, summary.TotalMoves))
		}
		if summary.CorrectMoves != es.CorrectMoves {
			failures = append(failures, fmt.Sprintf("correct_moves: expected %d, got %d", es.CorrectMoves, summary.CorrectMoves))
		}
		if summary.Misses != es.Misses {
			failures = append(failures, fmt.Sprintf("misses: expected %d, got %d", es.Misses, summary.Misses))
		}
		if summary.Decisions != es.Decisions {
			failures = append(failures, fmt.Sprintf("decisions: expected %d, got %d", es.Decisions, summary.Decisions))
		}
		if summary.Won != es.Won {
			failures = append(failures, fmt.Sprintf("won: expected %v, got %v", es.Won, summary.Won))
		}
	}

	return failures
}

// #endregion fixture-loader
