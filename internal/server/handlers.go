package server

// #region imports
import (
	"encoding/json"
	"errors"
	"math/rand"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/danielpatrickdp/frog-tutor/internal/belief"
	"github.com/danielpatrickdp/frog-tutor/internal/decision"
	"github.com/danielpatrickdp/frog-tutor/internal/metrics"
	"github.com/danielpatrickdp/frog-tutor/internal/puzzle"
	"github.com/danielpatrickdp/frog-tutor/internal/store"
)

// #endregion

// #region health

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"type": TypeStatus, "status": "OK", "version": Version})
}

// #endregion

// #region create-game

func (s *Server) handleCreateGame(c *gin.Context) {
	var req CreateGameRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	diffID := puzzle.DifficultyID(req.Difficulty)
	if req.Difficulty == 0 {
		diffID = puzzle.DifficultyEasy
	}
	diff, err := puzzle.DifficultyByID(diffID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	game, attempt, err := s.store.CreateGame(req.PlayerName, diff.ID)
	if err != nil {
		s.logger.Error("create game failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	s.logger.Info("game created", "game_id", game.ID, "difficulty", diff.Name)
	c.JSON(http.StatusOK, GameCreatedResponse{
		Type:       TypeGame,
		GameID:     game.ID,
		AttemptID:  attempt.ID,
		Difficulty: diff.Name,
		Initial:    diff.Initial,
		Goal:       diff.Goal,
	})
}

// #endregion

// #region move

func (s *Server) handleMove(c *gin.Context) {
	gameID := c.Param("id")

	var req MoveRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	attempt, err := s.store.ActiveAttempt(gameID)
	if err != nil {
		s.respondStoreError(c, err)
		return
	}
	diff, err := puzzle.DifficultyByID(attempt.Difficulty)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	proposed := puzzle.Board(req.Board)
	if err := puzzle.Validate(proposed); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"type": TypeRejected, "error": err.Error()})
		return
	}
	if len(proposed) != diff.Slots {
		c.JSON(http.StatusBadRequest, gin.H{
			"type":  TypeRejected,
			"error": "board size does not match the attempt's difficulty",
		})
		return
	}

	correct, err := s.checkMove(attempt, diff, proposed)
	if err != nil {
		var moveErr *puzzle.InvalidMoveError
		if errors.As(err, &moveErr) {
			c.JSON(http.StatusBadRequest, gin.H{"type": TypeRejected, "error": moveErr.Error()})
			return
		}
		s.logger.Error("move validation failed", "game_id", gameID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	movement, err := s.store.AppendMovement(attempt.ID, proposed.Key(), correct)
	if err != nil {
		s.logger.Error("persist movement failed", "game_id", gameID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if puzzle.IsGoal(proposed, diff.Goal) {
		s.logger.Info("level completed", "game_id", gameID, "steps", movement.Step)
		c.JSON(http.StatusOK, SpeechResponse{Type: TypeWin, Message: "Congratulations, you completed the level!"})
		return
	}

	if movement.Step%s.cfg.DecisionInterval == 0 {
		s.decideAndRespond(c, gameID, attempt, diff, proposed)
		return
	}

	c.JSON(http.StatusOK, SpeechResponse{Type: TypeSpeech, Message: motivationalMessage()})
}

// checkMove verifies the proposed board is one legal move away from the
// attempt's latest board (or the initial layout for the first move) and
// reports whether it strictly improves the distance to goal.
func (s *Server) checkMove(attempt store.Attempt, diff puzzle.Difficulty, proposed puzzle.Board) (bool, error) {
	current := diff.Initial
	last, err := s.store.LastMovement(attempt.ID)
	if err == nil {
		current, err = puzzle.ParseBoard(last.Board)
		if err != nil {
			return false, err
		}
	} else if !errors.Is(err, store.ErrNotFound) {
		return false, err
	}

	legal := false
	for _, next := range puzzle.Successors(current) {
		if next.Equal(proposed) {
			legal = true
			break
		}
	}
	if !legal {
		return false, &puzzle.InvalidMoveError{From: -1, Board: current.Key()}
	}

	before, beforeKnown, err := s.solver.ShortestPathLength(current, diff.Goal)
	if err != nil {
		return false, err
	}
	after, afterKnown, err := s.solver.ShortestPathLength(proposed, diff.Goal)
	if err != nil {
		return false, err
	}
	correct := beforeKnown && afterKnown && after < before
	return correct, nil
}

// #endregion

// #region decide

// decideAndRespond computes the metrics snapshot once, runs the full
// belief selection against it, logs the outcome, and applies any
// difficulty directive before answering.
func (s *Server) decideAndRespond(c *gin.Context, gameID string, attempt store.Attempt, diff puzzle.Difficulty, current puzzle.Board) {
	m, err := s.attemptMetrics(attempt, diff)
	if err != nil {
		s.logger.Error("metrics aggregation failed", "game_id", gameID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx := belief.GameContext{Difficulty: diff, Current: current}
	outcome, err := s.engine.SelectBestBelief(m, ctx, s.cfg.Beliefs)
	if err != nil {
		if errors.Is(err, decision.ErrNoBeliefAvailable) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		s.logger.Error("belief selection failed", "game_id", gameID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var skippedJSON string
	if len(outcome.Skipped) > 0 {
		if data, err := json.Marshal(outcome.Skipped); err == nil {
			skippedJSON = string(data)
		}
	}
	if err := s.store.LogDecision(store.DecisionRecord{
		GameID:      gameID,
		AttemptID:   attempt.ID,
		Winner:      string(outcome.Result.Name),
		BeliefValue: outcome.Result.Value,
		SkippedJSON: skippedJSON,
	}); err != nil {
		s.logger.Error("decision logging failed", "game_id", gameID, "error", err)
	}

	// An intervention cuts the move short; the newest event carries the
	// interruption flag, matching the metrics contract.
	if err := s.store.MarkLastInterrupted(attempt.ID); err != nil {
		s.logger.Error("mark interrupted failed", "game_id", gameID, "error", err)
	}

	action := outcome.Result.Action
	if action.DifficultyDelta != 0 {
		if _, err := s.store.ChangeDifficulty(gameID, action.DifficultyDelta); err != nil {
			s.logger.Error("difficulty change failed", "game_id", gameID, "error", err)
		}
	}

	c.JSON(http.StatusOK, gin.H{"type": TypeDecision, "action": action})
}

// attemptMetrics reduces the attempt's persisted events into one
// AttemptMetrics snapshot.
func (s *Server) attemptMetrics(attempt store.Attempt, diff puzzle.Difficulty) (metrics.AttemptMetrics, error) {
	movements, err := s.store.Movements(attempt.ID)
	if err != nil {
		return metrics.AttemptMetrics{}, err
	}
	missCount, err := s.store.MissCount(attempt.ID)
	if err != nil {
		return metrics.AttemptMetrics{}, err
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
	return metrics.Aggregate(events, missCount, diff.Goal)
}

// #endregion

// #region miss

func (s *Server) handleMiss(c *gin.Context) {
	gameID := c.Param("id")

	attempt, err := s.store.ActiveAttempt(gameID)
	if err != nil {
		s.respondStoreError(c, err)
		return
	}

	count, err := s.store.RecordMiss(attempt.ID)
	if err != nil {
		s.logger.Error("record miss failed", "game_id", gameID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, MissResponse{Type: TypeMiss, GameID: gameID, MissCount: count})
}

// #endregion

// #region best-next

func (s *Server) handleBestNext(c *gin.Context) {
	gameID := c.Param("id")

	attempt, err := s.store.ActiveAttempt(gameID)
	if err != nil {
		s.respondStoreError(c, err)
		return
	}
	diff, err := puzzle.DifficultyByID(attempt.Difficulty)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	current := diff.Initial
	if last, err := s.store.LastMovement(attempt.ID); err == nil {
		current, err = puzzle.ParseBoard(last.Board)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
	}

	next, err := s.solver.BestNextMove(current, diff.Goal)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if next == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no improving move from the current state"})
		return
	}

	c.JSON(http.StatusOK, BestNextResponse{Type: TypeBestNext, LastState: current, BestNext: next})
}

// #endregion

// #region metrics

func (s *Server) handleMetrics(c *gin.Context) {
	gameID := c.Param("id")

	attempt, err := s.store.ActiveAttempt(gameID)
	if err != nil {
		s.respondStoreError(c, err)
		return
	}
	diff, err := puzzle.DifficultyByID(attempt.Difficulty)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	m, err := s.attemptMetrics(attempt, diff)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"game_id":         gameID,
		"attempt_id":      attempt.ID,
		"tries_count":     m.TriesCount,
		"misses_count":    m.MissesCount,
		"buclicity":       m.Buclicity,
		"branch_factor":   m.BranchFactor,
		"repeated_states": m.RepeatedStates,
		"average_time":    m.AverageTime,
		"correct_moves":   m.CorrectMoves,
	})
}

// #endregion

// #region helpers

func (s *Server) respondStoreError(c *gin.Context, err error) {
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

var motivationalMessages = []string{
	"Well done!",
	"You can do it!",
	"Keep it up!",
	"One more step!",
	"You're getting closer!",
	"Remember: blue blocks move right.",
	"Remember: red blocks move left.",
	"Only the empty slot can receive a block.",
	"You can jump if an opposing block sits in between.",
	"Never jump over your own color.",
	"Take a breath and look at the whole board.",
}

func motivationalMessage() string {
	return motivationalMessages[rand.Intn(len(motivationalMessages))]
}

// #endregion
