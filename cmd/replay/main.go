package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/danielpatrickdp/frog-tutor/internal/puzzle"
	"github.com/danielpatrickdp/frog-tutor/internal/replay"
	"github.com/danielpatrickdp/frog-tutor/internal/store"
)

// #region main

func main() {
	dbPath := flag.String("db", "", "path to frog_tutor.db (DB mode)")
	gameID := flag.String("game", "", "game to replay (DB mode)")
	fixturePath := flag.String("fixture", "", "path to fixture JSON (fixture mode)")
	interval := flag.Int("interval", 3, "moves between decisions (DB mode)")
	flag.Parse()

	if (*dbPath == "" && *fixturePath == "") || (*dbPath != "" && *fixturePath != "") {
		fmt.Fprintln(os.Stderr, "usage: replay --db path/to/frog_tutor.db --game id [--interval N]")
		fmt.Fprintln(os.Stderr, "       replay --fixture path/to/fixture.json")
		os.Exit(2)
	}

	var exitCode int
	if *fixturePath != "" {
		exitCode = runFixtureMode(*fixturePath)
	} else {
		exitCode = runDBMode(*dbPath, *gameID, *interval)
	}
	os.Exit(exitCode)
}

// #endregion main

// #region db-mode

// runDBMode re-runs a recorded game's active attempt and compares the
// replayed decision winners against the persisted decision log.
func runDBMode(dbPath, gameID string, interval int) int {
	if gameID == "" {
		fmt.Fprintln(os.Stderr, "db mode requires --game")
		return 2
	}

	st, err := store.NewStore(dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open db: %v\n", err)
		return 2
	}
	defer st.Close()

	attempt, err := st.ActiveAttempt(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "find attempt: %v\n", err)
		return 2
	}
	diff, err := puzzle.DifficultyByID(attempt.Difficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "resolve difficulty: %v\n", err)
		return 2
	}
	movements, err := st.Movements(attempt.ID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load movements: %v\n", err)
		return 2
	}
	if len(movements) == 0 {
		fmt.Fprintln(os.Stderr, "no movements recorded for attempt")
		return 2
	}
	decisions, err := st.ListDecisions(gameID, 0)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load decisions: %v\n", err)
		return 2
	}

	steps := make([]replay.Step, 0, len(movements))
	for _, mv := range movements {
		steps = append(steps, replay.Step{Board: mv.Board, At: mv.CreatedAt})
	}

	cfg := replay.DefaultReplayConfig()
	cfg.DecisionInterval = interval
	results, summary, err := replay.Replay(diff, steps, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "replay: %v\n", err)
		return 2
	}

	// Persisted log is newest-first; flip to attempt order.
	expected := make([]string, 0, len(decisions))
	for i := len(decisions) - 1; i >= 0; i-- {
		if decisions[i].AttemptID == attempt.ID {
			expected = append(expected, decisions[i].Winner)
		}
	}

	replayed := make([]string, 0, summary.Decisions)
	for _, r := range results {
		if r.Decision != nil {
			replayed = append(replayed, string(r.Decision.Result.Name))
		}
	}

	return printComparison(expected, replayed, summary)
}

// #endregion db-mode

// #region fixture-mode

func runFixtureMode(path string) int {
	f, err := replay.LoadFixture(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load fixture: %v\n", err)
		return 2
	}

	diff, err := f.ToDifficulty()
	if err != nil {
		fmt.Fprintf(os.Stderr, "fixture difficulty: %v\n", err)
		return 2
	}

	results, summary, err := replay.Replay(diff, f.ToSteps(), f.Config.ToReplayConfig())
	if err != nil {
		fmt.Fprintf(os.Stderr, "replay: %v\n", err)
		return 2
	}

	failures := f.Check(results, summary)
	printSummary(summary)
	if len(failures) > 0 {
		fmt.Println()
		for _, msg := range failures {
			fmt.Printf("FAIL %s\n", msg)
		}
		return 1
	}
	fmt.Println("\nall expectations met")
	return 0
}

// #endregion fixture-mode

// #region output

func printComparison(expected, replayed []string, summary replay.Summary) int {
	fmt.Printf("%-4s| %-14s| %-14s| %s\n", "#", "Logged", "Replayed", "Match")
	fmt.Printf("%-4s+%-15s+%-15s+%s\n", "----", "---------------", "---------------", "------")

	total := len(replayed)
	if len(expected) > total {
		total = len(expected)
	}
	matches := 0
	comparable := 0
	for i := 0; i < total; i++ {
		exp, got := "—", "—"
		if i < len(expected) {
			exp = expected[i]
		}
		if i < len(replayed) {
			got = replayed[i]
		}
		match := "DIFF"
		if i < len(expected) && i < len(replayed) {
			comparable++
			if exp == got {
				match = "OK"
				matches++
			}
		}
		fmt.Printf("%-4d| %-14s| %-14s| %s\n", i+1, exp, got, match)
	}

	printSummary(summary)
	diverge := comparable - matches
	fmt.Printf("decision match: %d/%d\n", matches, comparable)
	if diverge > 0 || len(expected) != len(replayed) {
		return 1
	}
	return 0
}

func printSummary(s replay.Summary) {
	fmt.Printf("\nSummary: %d moves (%d correct), %d misses, %d rejected, %d decisions, won=%v\n",
		s.TotalMoves, s.CorrectMoves, s.Misses, s.Rejected, s.Decisions, s.Won)
	fmt.Printf("Final metrics: tries=%d buclicity=%d branch=%.2f avg_time=%.2fs\n",
		s.Final.TriesCount, s.Final.Buclicity, s.Final.BranchFactor, s.Final.AverageTime)
}

// #endregion output
