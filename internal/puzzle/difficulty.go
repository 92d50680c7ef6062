package puzzle

import "fmt"

// #region difficulty

// DifficultyID identifies a puzzle size. Higher is harder.
type DifficultyID int

const (
	DifficultyEasy   DifficultyID = 1 // 7 slots, 3 blocks per team
	DifficultyMedium DifficultyID = 2 // 9 slots, 4 blocks per team
	DifficultyHard   DifficultyID = 3 // 11 slots, 5 blocks per team
)

// Difficulty is a named puzzle size with its canonical initial and goal
// layouts. The table is static and loaded once.
type Difficulty struct {
	ID      DifficultyID
	Name    string
	PerTeam int
	Slots   int
	Initial Board
	Goal    Board
}

// #endregion

// #region table

// makeLayouts builds the canonical initial board (left team, empty slot,
// right team) and the goal with the teams swapped for k blocks per team.
// Within-team order is preserved in the goal: same-team blocks can never
// pass each other, so a reversed team would be unreachable.
func makeLayouts(perTeam int) (Board, Board) {
	slots := 2*perTeam + 1
	initial := make(Board, 0, slots)
	goal := make(Board, 0, slots)

	for i := 1; i <= perTeam; i++ {
		initial = append(initial, i)
	}
	initial = append(initial, 0)
	for i := perTeam + 1; i <= 2*perTeam; i++ {
		initial = append(initial, i)
	}

	for i := perTeam + 1; i <= 2*perTeam; i++ {
		goal = append(goal, i)
	}
	goal = append(goal, 0)
	for i := 1; i <= perTeam; i++ {
		goal = append(goal, i)
	}

	return initial, goal
}

var difficulties = func() map[DifficultyID]Difficulty {
	table := make(map[DifficultyID]Difficulty, 3)
	for _, d := range []struct {
		id      DifficultyID
		name    string
		perTeam int
	}{
		{DifficultyEasy, "easy", 3},
		{DifficultyMedium, "medium", 4},
		{DifficultyHard, "hard", 5},
	} {
		initial, goal := makeLayouts(d.perTeam)
		table[d.id] = Difficulty{
			ID:      d.id,
			Name:    d.name,
			PerTeam: d.perTeam,
			Slots:   2*d.perTeam + 1,
			Initial: initial,
			Goal:    goal,
		}
	}
	return table
}()

// DifficultyByID looks up a difficulty profile.
func DifficultyByID(id DifficultyID) (Difficulty, error) {
	d, ok := difficulties[id]
	if !ok {
		return Difficulty{}, fmt.Errorf("unknown difficulty %d", id)
	}
	return d, nil
}

// DifficultyForSlots resolves a profile from a board's slot count.
func DifficultyForSlots(slots int) (Difficulty, error) {
	for _, d := range difficulties {
		if d.Slots == slots {
			return d, nil
		}
	}
	return Difficulty{}, fmt.Errorf("no difficulty with %d slots", slots)
}

// MinDifficulty and MaxDifficulty bound the difficulty-change directives.
const (
	MinDifficulty = DifficultyEasy
	MaxDifficulty = DifficultyHard
)

// #endregion
