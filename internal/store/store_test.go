package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielpatrickdp/frog-tutor/internal/puzzle"
)

func tempStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestCreateGameStartsActiveAttempt(t *testing.T) {
	s := tempStore(t)

	game, attempt, err := s.CreateGame("ana", puzzle.DifficultyEasy)
	require.NoError(t, err)
	assert.NotEmpty(t, game.ID)
	assert.Equal(t, "ana", game.PlayerName)
	assert.Equal(t, game.ID, attempt.GameID)
	assert.True(t, attempt.IsActive)

	got, err := s.GetGame(game.ID)
	require.NoError(t, err)
	assert.Equal(t, game.ID, got.ID)

	active, err := s.ActiveAttempt(game.ID)
	require.NoError(t, err)
	assert.Equal(t, attempt.ID, active.ID)
	assert.Equal(t, puzzle.DifficultyEasy, active.Difficulty)
}

func TestGetGameNotFound(t *testing.T) {
	s := tempStore(t)

	_, err := s.GetGame("absent")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = s.ActiveAttempt("absent")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAppendMovementSequencesSteps(t *testing.T) {
	s := tempStore(t)
	_, attempt, err := s.CreateGame("ana", puzzle.DifficultyEasy)
	require.NoError(t, err)

	m1, err := s.AppendMovement(attempt.ID, "1,2,0,3,4,5,6", true)
	require.NoError(t, err)
	m2, err := s.AppendMovement(attempt.ID, "1,2,3,0,4,5,6", false)
	require.NoError(t, err)

	assert.Equal(t, 1, m1.Step)
	assert.Equal(t, 2, m2.Step)

	movements, err := s.Movements(attempt.ID)
	require.NoError(t, err)
	require.Len(t, movements, 2)
	assert.True(t, movements[0].IsCorrect)
	assert.False(t, movements[1].IsCorrect)

	last, err := s.LastMovement(attempt.ID)
	require.NoError(t, err)
	assert.Equal(t, m2.Step, last.Step)
	assert.Equal(t, "1,2,3,0,4,5,6", last.Board)
}

func TestLastMovementEmptyAttempt(t *testing.T) {
	s := tempStore(t)
	_, attempt, err := s.CreateGame("ana", puzzle.DifficultyEasy)
	require.NoError(t, err)

	_, err = s.LastMovement(attempt.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMarkLastInterrupted(t *testing.T) {
	s := tempStore(t)
	_, attempt, err := s.CreateGame("ana", puzzle.DifficultyEasy)
	require.NoError(t, err)

	_, err = s.AppendMovement(attempt.ID, "1,2,0,3,4,5,6", true)
	require.NoError(t, err)
	_, err = s.AppendMovement(attempt.ID, "1,2,3,0,4,5,6", true)
	require.NoError(t, err)

	require.NoError(t, s.MarkLastInterrupted(attempt.ID))

	movements, err := s.Movements(attempt.ID)
	require.NoError(t, err)
	require.Len(t, movements, 2)
	assert.False(t, movements[0].Interrupted)
	assert.True(t, movements[1].Interrupted)
}

func TestMissTally(t *testing.T) {
	s := tempStore(t)
	_, attempt, err := s.CreateGame("ana", puzzle.DifficultyEasy)
	require.NoError(t, err)

	count, err := s.MissCount(attempt.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	for want := 1; want <= 3; want++ {
		count, err = s.RecordMiss(attempt.ID)
		require.NoError(t, err)
		assert.Equal(t, want, count)
	}
}

func TestChangeDifficulty(t *testing.T) {
	s := tempStore(t)
	game, attempt, err := s.CreateGame("ana", puzzle.DifficultyMedium)
	require.NoError(t, err)

	next, err := s.ChangeDifficulty(game.ID, -1)
	require.NoError(t, err)
	assert.Equal(t, puzzle.DifficultyEasy, next.Difficulty)
	assert.NotEqual(t, attempt.ID, next.ID)

	active, err := s.ActiveAttempt(game.ID)
	require.NoError(t, err)
	assert.Equal(t, next.ID, active.ID)
}

func TestChangeDifficultyClampsAtBounds(t *testing.T) {
	s := tempStore(t)
	game, _, err := s.CreateGame("ana", puzzle.DifficultyEasy)
	require.NoError(t, err)

	next, err := s.ChangeDifficulty(game.ID, -1)
	require.NoError(t, err)
	assert.Equal(t, puzzle.DifficultyEasy, next.Difficulty)

	next, err = s.ChangeDifficulty(game.ID, 5)
	require.NoError(t, err)
	assert.Equal(t, puzzle.DifficultyHard, next.Difficulty)
}

func TestDecisionLog(t *testing.T) {
	s := tempStore(t)
	game, attempt, err := s.CreateGame("ana", puzzle.DifficultyEasy)
	require.NoError(t, err)

	require.NoError(t, s.LogDecision(DecisionRecord{
		GameID:      game.ID,
		AttemptID:   attempt.ID,
		Winner:      "Feedback",
		BeliefValue: 0.59,
	}))
	require.NoError(t, s.LogDecision(DecisionRecord{
		GameID:      game.ID,
		AttemptID:   attempt.ID,
		Winner:      "Explain",
		BeliefValue: 0.8,
		SkippedJSON: `[{"name":"Demonstrate","reason":"search overflow"}]`,
	}))

	decisions, err := s.ListDecisions(game.ID, 0)
	require.NoError(t, err)
	require.Len(t, decisions, 2)
	// Newest first.
	assert.Equal(t, "Explain", decisions[0].Winner)
	assert.NotEmpty(t, decisions[0].SkippedJSON)
	assert.Equal(t, "Feedback", decisions[1].Winner)
	assert.Empty(t, decisions[1].SkippedJSON)

	limited, err := s.ListDecisions(game.ID, 1)
	require.NoError(t, err)
	require.Len(t, limited, 1)
	assert.Equal(t, "Explain", limited[0].Winner)
}

func TestListGames(t *testing.T) {
	s := tempStore(t)
	for _, name := range []string{"ana", "bruno", "carla"} {
		_, _, err := s.CreateGame(name, puzzle.DifficultyEasy)
		require.NoError(t, err)
	}

	games, err := s.ListGames(2)
	require.NoError(t, err)
	assert.Len(t, games, 2)

	all, err := s.ListGames(0)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}
