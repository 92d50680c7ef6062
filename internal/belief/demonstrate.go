package belief

// #region imports
import (
	"github.com/danielpatrickdp/frog-tutor/internal/metrics"
	"github.com/danielpatrickdp/frog-tutor/internal/solver"
)

// #endregion

// #region controller

// DemonstrateController scores the need to show the player a move. The
// base signal is stagnation (high buclicity, low branch factor); a
// board from which the goal is unreachable forces the belief to its
// maximum, since a stuck state always warrants demonstration.
type DemonstrateController struct {
	solver *solver.Solver
}

// NewDemonstrate returns the Demonstrate controller backed by the given
// solver.
func NewDemonstrate(s *solver.Solver) *DemonstrateController {
	return &DemonstrateController{solver: s}
}

func (c *DemonstrateController) Name() Name { return Demonstrate }

// #endregion

// #region evaluate

func (c *DemonstrateController) Evaluate(m metrics.AttemptMetrics, ctx GameContext, cfg Config) (float64, error) {
	if ctx.Current != nil {
		winnable, err := c.solver.IsWinnable(ctx.Current, ctx.Difficulty.Goal)
		if err != nil {
			return 0, err
		}
		if !winnable {
			return 1.0, nil
		}
	}

	dc := cfg.Demonstrate
	stagnation := 0.0
	if dc.BuclicityNorm > 0 {
		stagnation += dc.BuclicityWeight * clamp01(float64(m.Buclicity)/dc.BuclicityNorm)
	}
	if dc.BranchNorm > 0 {
		stagnation += dc.BranchWeight * (1 - clamp01(m.BranchFactor/dc.BranchNorm))
	}
	return clamp01(stagnation), nil
}

// #endregion

// #region action

func (c *DemonstrateController) Action(value float64, _ metrics.AttemptMetrics, ctx GameContext, cfg Config) (ActionPayload, error) {
	payload := ActionPayload{
		Belief:      Demonstrate,
		BeliefValue: value,
		Severity:    severityFor(value, cfg.Breakpoints),
	}

	if ctx.Current != nil {
		next, err := c.solver.BestNextMove(ctx.Current, ctx.Difficulty.Goal)
		if err == nil && next != nil {
			payload.Message = "Watch closely, this is the move I would make next."
			payload.SuggestedMove = next
			return payload, nil
		}
	}

	// No computable demonstration; fall back to a rule reminder rather
	// than failing the action.
	payload.Message = "I can't show a winning move from here. Remember: blocks only move forward, " +
		"one slot or one jump over an opposing block."
	return payload, nil
}

// #endregion
