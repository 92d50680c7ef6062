package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/danielpatrickdp/frog-tutor/internal/metrics"
	"github.com/danielpatrickdp/frog-tutor/internal/puzzle"
	"github.com/danielpatrickdp/frog-tutor/internal/store"
)

// #region main

func main() {
	dbPath := flag.String("db", "", "path to frog_tutor.db")
	last := flag.Int("last", 20, "show N most recent games")
	gameID := flag.String("game", "", "show single game detail")
	jsonOut := flag.Bool("json", false, "output as JSON instead of table")
	flag.Parse()

	if *dbPath == "" {
		fmt.Fprintln(os.Stderr, "usage: inspect --db path/to/frog_tutor.db [--last N] [--game id] [--json]")
		os.Exit(2)
	}

	st, err := store.NewStore(*dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open db: %v\n", err)
		os.Exit(1)
	}
	defer st.Close()

	if *gameID != "" {
		if err := runDetailMode(st, *gameID, *jsonOut); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	} else {
		if err := runListMode(st, *last, *jsonOut); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	}
}

// #endregion main

// #region list-mode

type listRow struct {
	GameID     string `json:"game_id"`
	PlayerName string `json:"player_name"`
	Difficulty string `json:"difficulty"`
	Moves      int    `json:"moves"`
	Misses     int    `json:"misses"`
	Decisions  int    `json:"decisions"`
	CreatedAt  string `json:"created_at"`
}

func runListMode(st *store.Store, last int, jsonOut bool) error {
	games, err := st.ListGames(last)
	if err != nil {
		return err
	}
	if len(games) == 0 {
		fmt.Fprintln(os.Stderr, "no games found")
		return nil
	}

	rows := make([]listRow, 0, len(games))
	for _, g := range games {
		lr := listRow{
			GameID:     g.ID,
			PlayerName: g.PlayerName,
			CreatedAt:  g.CreatedAt.Format("2006-01-02T15:04:05Z"),
		}
		attempt, err := st.ActiveAttempt(g.ID)
		if err == nil {
			if d, derr := puzzle.DifficultyByID(attempt.Difficulty); derr == nil {
				lr.Difficulty = d.Name
			}
			if moves, merr := st.Movements(attempt.ID); merr == nil {
				lr.Moves = len(moves)
			}
			if misses, merr := st.MissCount(attempt.ID); merr == nil {
				lr.Misses = misses
			}
		}
		if decs, derr := st.ListDecisions(g.ID, 0); derr == nil {
			lr.Decisions = len(decs)
		}
		rows = append(rows, lr)
	}

	if jsonOut {
		return printJSON(rows)
	}
	return printListTable(rows)
}

func printListTable(rows []listRow) error {
	fmt.Printf("%-10s  %-16s  %-8s  %5s  %6s  %9s  %s\n",
		"Game", "Player", "Level", "Moves", "Misses", "Decisions", "Created")
	fmt.Printf("%-10s+-%-16s+-%-8s+-%5s+-%6s+-%9s+-%s\n",
		"----------", "----------------", "--------", "-----", "------", "---------", "--------------------")
	for _, r := range rows {
		fmt.Printf("%-10s  %-16s  %-8s  %5d  %6d  %9d  %s\n",
			shortID(r.GameID), r.PlayerName, r.Difficulty, r.Moves, r.Misses, r.Decisions, r.CreatedAt)
	}
	return nil
}

// #endregion list-mode

// #region detail-mode

type detailOutput struct {
	GameID     string                 `json:"game_id"`
	PlayerName string                 `json:"player_name"`
	Difficulty string                 `json:"difficulty"`
	CreatedAt  string                 `json:"created_at"`
	Metrics    metrics.AttemptMetrics `json:"metrics"`
	Movements  []movementRow          `json:"movements"`
	Decisions  []decisionRow          `json:"decisions"`
}

type movementRow struct {
	Step        int    `json:"step"`
	Board       string `json:"board"`
	Correct     bool   `json:"correct"`
	Interrupted bool   `json:"interrupted"`
	At          string `json:"at"`
}

type decisionRow struct {
	Winner      string  `json:"winner"`
	BeliefValue float64 `json:"belief_value"`
	At          string  `json:"at"`
}

func runDetailMode(st *store.Store, gameID string, jsonOut bool) error {
	game, err := st.GetGame(gameID)
	if err != nil {
		return err
	}
	attempt, err := st.ActiveAttempt(gameID)
	if err != nil {
		return err
	}
	diff, err := puzzle.DifficultyByID(attempt.Difficulty)
	if err != nil {
		return err
	}
	movements, err := st.Movements(attempt.ID)
	if err != nil {
		return err
	}
	missCount, err := st.MissCount(attempt.ID)
	if err != nil {
		return err
	}
	decisions, err := st.ListDecisions(gameID, 0)
	if err != nil {
		return err
	}

	events := make([]metrics.MoveEvent, 0, len(movements))
	for _, mv := range movements {
		events = append(events, metrics.MoveEvent{
			Step:        mv.Step,
			Board:       mv.Board,
			Correct:     mv.IsCorrect,
			At:          mv.CreatedAt,
			Interrupted: mv.Interrupted,
		})
	}
	m, err := metrics.Aggregate(events, missCount, diff.Goal)
	if err != nil {
		return err
	}

	out := detailOutput{
		GameID:     game.ID,
		PlayerName: game.PlayerName,
		Difficulty: diff.Name,
		CreatedAt:  game.CreatedAt.Format("2006-01-02T15:04:05Z"),
		Metrics:    m,
	}
	for _, mv := range movements {
		out.Movements = append(out.Movements, movementRow{
			Step:        mv.Step,
			Board:       mv.Board,
			Correct:     mv.IsCorrect,
			Interrupted: mv.Interrupted,
			At:          mv.CreatedAt.Format("2006-01-02T15:04:05Z"),
		})
	}
	for _, d := range decisions {
		out.Decisions = append(out.Decisions, decisionRow{
			Winner:      d.Winner,
			BeliefValue: d.BeliefValue,
			At:          d.CreatedAt.Format("2006-01-02T15:04:05Z"),
		})
	}

	if jsonOut {
		return printJSON(out)
	}

	fmt.Printf("Game:       %s\n", out.GameID)
	fmt.Printf("Player:     %s\n", out.PlayerName)
	fmt.Printf("Level:      %s\n", out.Difficulty)
	fmt.Printf("Created:    %s\n", out.CreatedAt)

	fmt.Printf("\nMetrics:\n")
	fmt.Printf("  Tries:         %d\n", m.TriesCount)
	fmt.Printf("  Misses:        %d\n", m.MissesCount)
	fmt.Printf("  Buclicity:     %d\n", m.Buclicity)
	fmt.Printf("  Branch Factor: %.2f\n", m.BranchFactor)
	fmt.Printf("  Repeats:       %d\n", m.RepeatedStates)
	fmt.Printf("  Avg Time:      %.2fs\n", m.AverageTime)
	fmt.Printf("  Correct Moves: %d\n", m.CorrectMoves)

	if len(out.Movements) > 0 {
		fmt.Printf("\nMovements:\n")
		for _, mv := range out.Movements {
			mark := " "
			if mv.Correct {
				mark = "+"
			}
			flag := ""
			if mv.Interrupted {
				flag = " [interrupted]"
			}
			fmt.Printf("  %3d %s %s%s\n", mv.Step, mark, mv.Board, flag)
		}
	}

	if len(out.Decisions) > 0 {
		fmt.Printf("\nDecisions:\n")
		for _, d := range out.Decisions {
			fmt.Printf("  %-12s %.2f  %s\n", d.Winner, d.BeliefValue, d.At)
		}
	}

	return nil
}

// #endregion detail-mode

// #region output

func printJSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// #endregion output
