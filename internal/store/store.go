package store

// #region imports
import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/danielpatrickdp/frog-tutor/internal/puzzle"
)

// #endregion

// #region schema
const schema = `
CREATE TABLE IF NOT EXISTS games (
	id          TEXT PRIMARY KEY,
	player_name TEXT NOT NULL,
	created_at  TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS game_attempts (
	id          TEXT PRIMARY KEY,
	game_id     TEXT NOT NULL,
	difficulty  INTEGER NOT NULL,
	is_active   INTEGER NOT NULL DEFAULT 1,
	created_at  TEXT NOT NULL,
	FOREIGN KEY (game_id) REFERENCES games(id)
);
CREATE INDEX IF NOT EXISTS idx_attempts_game ON game_attempts(game_id, is_active);

CREATE TABLE IF NOT EXISTS movements (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	attempt_id  TEXT NOT NULL,
	step        INTEGER NOT NULL,
	board       TEXT NOT NULL,
	is_correct  INTEGER NOT NULL DEFAULT 0,
	interrupted INTEGER NOT NULL DEFAULT 0,
	created_at  TEXT NOT NULL,
	UNIQUE(attempt_id, step),
	FOREIGN KEY (attempt_id) REFERENCES game_attempts(id)
);

CREATE TABLE IF NOT EXISTS movement_misses (
	attempt_id  TEXT PRIMARY KEY,
	count       INTEGER NOT NULL DEFAULT 0,
	FOREIGN KEY (attempt_id) REFERENCES game_attempts(id)
);

CREATE TABLE IF NOT EXISTS decision_log (
	id           INTEGER PRIMARY KEY AUTOINCREMENT,
	game_id      TEXT NOT NULL,
	attempt_id   TEXT NOT NULL,
	winner       TEXT NOT NULL,
	belief_value REAL NOT NULL,
	skipped_json TEXT,
	created_at   TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_decisions_game ON decision_log(game_id);
`

// #endregion schema

// #region errors

// ErrNotFound reports a missing game or active attempt.
var ErrNotFound = errors.New("not found")

// #endregion errors

// #region store-struct
// Store persists games, attempts, move events, misses, and the decision
// provenance log in SQLite.
type Store struct {
	db *sql.DB
}

// #endregion store-struct

// #region constructor
// NewStore opens a SQLite database and runs migrations.
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		return nil, fmt.Errorf("pragma fk: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// DB returns the underlying *sql.DB for use by other tools.
func (s *Store) DB() *sql.DB {
	return s.db
}

// #endregion constructor

// #region create-game
// CreateGame inserts a game and its first active attempt atomically.
func (s *Store) CreateGame(playerName string, difficulty puzzle.DifficultyID) (Game, Attempt, error) {
	now := time.Now().UTC()
	game := Game{ID: uuid.New().String(), PlayerName: playerName, CreatedAt: now}
	attempt := Attempt{
		ID:         uuid.New().String(),
		GameID:     game.ID,
		Difficulty: difficulty,
		IsActive:   true,
		CreatedAt:  now,
	}

	tx, err := s.db.Begin()
	if err != nil {
		return Game{}, Attempt{}, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		`INSERT INTO games (id, player_name, created_at) VALUES (?, ?, ?)`,
		game.ID, game.PlayerName, now.Format(time.RFC3339Nano),
	)
	if err != nil {
		return Game{}, Attempt{}, fmt.Errorf("insert game: %w", err)
	}

	_, err = tx.Exec(
		`INSERT INTO game_attempts (id, game_id, difficulty, is_active, created_at) VALUES (?, ?, ?, 1, ?)`,
		attempt.ID, game.ID, int(difficulty), now.Format(time.RFC3339Nano),
	)
	if err != nil {
		return Game{}, Attempt{}, fmt.Errorf("insert attempt: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return Game{}, Attempt{}, fmt.Errorf("commit: %w", err)
	}
	return game, attempt, nil
}

// #endregion create-game

// #region get-game
// GetGame retrieves a game by ID.
func (s *Store) GetGame(id string) (Game, error) {
	var g Game
	var createdStr string
	err := s.db.QueryRow(
		`SELECT id, player_name, created_at FROM games WHERE id = ?`, id,
	).Scan(&g.ID, &g.PlayerName, &createdStr)
	if errors.Is(err, sql.ErrNoRows) {
		return Game{}, fmt.Errorf("game %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return Game{}, fmt.Errorf("get game %s: %w", id, err)
	}
	g.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
	return g, nil
}

// #endregion get-game

// #region active-attempt
// ActiveAttempt returns the game's single active attempt.
func (s *Store) ActiveAttempt(gameID string) (Attempt, error) {
	var a Attempt
	var createdStr string
	var difficulty int
	err := s.db.QueryRow(
		`SELECT id, game_id, difficulty, is_active, created_at
		 FROM game_attempts WHERE game_id = ? AND is_active = 1`,
		gameID,
	).Scan(&a.ID, &a.GameID, &difficulty, &a.IsActive, &createdStr)
	if errors.Is(err, sql.ErrNoRows) {
		return Attempt{}, fmt.Errorf("active attempt for game %s: %w", gameID, ErrNotFound)
	}
	if err != nil {
		return Attempt{}, fmt.Errorf("active attempt for game %s: %w", gameID, err)
	}
	a.Difficulty = puzzle.DifficultyID(difficulty)
	a.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
	return a, nil
}

// #endregion active-attempt

// #region append-movement
// AppendMovement inserts the next move event for the attempt, assigning
// the step number inside the transaction.
func (s *Store) AppendMovement(attemptID, board string, isCorrect bool) (Movement, error) {
	now := time.Now().UTC()

	tx, err := s.db.Begin()
	if err != nil {
		return Movement{}, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var step int
	if err := tx.QueryRow(
		`SELECT COALESCE(MAX(step), 0) + 1 FROM movements WHERE attempt_id = ?`, attemptID,
	).Scan(&step); err != nil {
		return Movement{}, fmt.Errorf("next step: %w", err)
	}

	res, err := tx.Exec(
		`INSERT INTO movements (attempt_id, step, board, is_correct, interrupted, created_at)
		 VALUES (?, ?, ?, ?, 0, ?)`,
		attemptID, step, board, boolInt(isCorrect), now.Format(time.RFC3339Nano),
	)
	if err != nil {
		return Movement{}, fmt.Errorf("insert movement: %w", err)
	}
	id, _ := res.LastInsertId()

	if err := tx.Commit(); err != nil {
		return Movement{}, fmt.Errorf("commit: %w", err)
	}

	return Movement{
		ID:        id,
		AttemptID: attemptID,
		Step:      step,
		Board:     board,
		IsCorrect: isCorrect,
		CreatedAt: now,
	}, nil
}

// #endregion append-movement

// #region mark-interrupted
// MarkLastInterrupted flags the attempt's newest movement as
// interrupted. A no-op when the attempt has no movements.
func (s *Store) MarkLastInterrupted(attemptID string) error {
	_, err := s.db.Exec(
		`UPDATE movements SET interrupted = 1
		 WHERE attempt_id = ?
		 AND step = (SELECT MAX(step) FROM movements WHERE attempt_id = ?)`,
		attemptID, attemptID,
	)
	if err != nil {
		return fmt.Errorf("mark interrupted: %w", err)
	}
	return nil
}

// #endregion mark-interrupted

// #region movements
// Movements returns the attempt's move events ordered by step.
func (s *Store) Movements(attemptID string) ([]Movement, error) {
	rows, err := s.db.Query(
		`SELECT id, attempt_id, step, board, is_correct, interrupted, created_at
		 FROM movements WHERE attempt_id = ? ORDER BY step ASC`,
		attemptID,
	)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()

	var out []Movement
	for rows.Next() {
		var m Movement
		var correct, interrupted int
		var createdStr string
		if err := rows.Scan(&m.ID, &m.AttemptID, &m.Step, &m.Board, &correct, &interrupted, &createdStr); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		m.IsCorrect = correct != 0
		m.Interrupted = interrupted != 0
		m.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
		out = append(out, m)
	}
	return out, rows.Err()
}

// LastMovement returns the attempt's newest movement, or ErrNotFound.
func (s *Store) LastMovement(attemptID string) (Movement, error) {
	var m Movement
	var correct, interrupted int
	var createdStr string
	err := s.db.QueryRow(
		`SELECT id, attempt_id, step, board, is_correct, interrupted, created_at
		 FROM movements WHERE attempt_id = ?
		 ORDER BY step DESC LIMIT 1`,
		attemptID,
	).Scan(&m.ID, &m.AttemptID, &m.Step, &m.Board, &correct, &interrupted, &createdStr)
	if errors.Is(err, sql.ErrNoRows) {
		return Movement{}, fmt.Errorf("last movement for attempt %s: %w", attemptID, ErrNotFound)
	}
	if err != nil {
		return Movement{}, fmt.Errorf("last movement: %w", err)
	}
	m.IsCorrect = correct != 0
	m.Interrupted = interrupted != 0
	m.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
	return m, nil
}

// #endregion movements

// #region misses
// RecordMiss increments the attempt's miss tally and returns the new
// count.
func (s *Store) RecordMiss(attemptID string) (int, error) {
	_, err := s.db.Exec(
		`INSERT INTO movement_misses (attempt_id, count) VALUES (?, 1)
		 ON CONFLICT(attempt_id) DO UPDATE SET count = count + 1`,
		attemptID,
	)
	if err != nil {
		return 0, fmt.Errorf("record miss: %w", err)
	}
	return s.MissCount(attemptID)
}

// MissCount returns the attempt's miss tally, 0 when none recorded.
func (s *Store) MissCount(attemptID string) (int, error) {
	var count int
	err := s.db.QueryRow(
		`SELECT count FROM movement_misses WHERE attempt_id = ?`, attemptID,
	).Scan(&count)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("miss count: %w", err)
	}
	return count, nil
}

// #endregion misses

// #region change-difficulty
// ChangeDifficulty deactivates the game's active attempt and starts a
// new one at the clamped target difficulty, atomically.
func (s *Store) ChangeDifficulty(gameID string, delta int) (Attempt, error) {
	current, err := s.ActiveAttempt(gameID)
	if err != nil {
		return Attempt{}, err
	}

	target := int(current.Difficulty) + delta
	if target < int(puzzle.MinDifficulty) {
		target = int(puzzle.MinDifficulty)
	}
	if target > int(puzzle.MaxDifficulty) {
		target = int(puzzle.MaxDifficulty)
	}

	now := time.Now().UTC()
	next := Attempt{
		ID:         uuid.New().String(),
		GameID:     gameID,
		Difficulty: puzzle.DifficultyID(target),
		IsActive:   true,
		CreatedAt:  now,
	}

	tx, err := s.db.Begin()
	if err != nil {
		return Attempt{}, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(
		`UPDATE game_attempts SET is_active = 0 WHERE id = ?`, current.ID,
	); err != nil {
		return Attempt{}, fmt.Errorf("deactivate attempt: %w", err)
	}

	if _, err := tx.Exec(
		`INSERT INTO game_attempts (id, game_id, difficulty, is_active, created_at) VALUES (?, ?, ?, 1, ?)`,
		next.ID, gameID, target, now.Format(time.RFC3339Nano),
	); err != nil {
		return Attempt{}, fmt.Errorf("insert attempt: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return Attempt{}, fmt.Errorf("commit: %w", err)
	}
	return next, nil
}

// #endregion change-difficulty

// #region decision-log
// LogDecision writes one row to the decision provenance log.
func (s *Store) LogDecision(rec DecisionRecord) error {
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}
	_, err := s.db.Exec(
		`INSERT INTO decision_log (game_id, attempt_id, winner, belief_value, skipped_json, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		rec.GameID, rec.AttemptID, rec.Winner, rec.BeliefValue,
		nullIfEmpty(rec.SkippedJSON), rec.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("log decision: %w", err)
	}
	return nil
}

// ListDecisions returns the game's most recent decisions. A
// non-positive limit returns all of them.
func (s *Store) ListDecisions(gameID string, limit int) ([]DecisionRecord, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := s.db.Query(
		`SELECT id, game_id, attempt_id, winner, belief_value, skipped_json, created_at
		 FROM decision_log WHERE game_id = ?
		 ORDER BY id DESC LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list decisions: %w", err)
	}
	defer rows.Close()

	var out []DecisionRecord
	for rows.Next() {
		var rec DecisionRecord
		var skipped sql.NullString
		var createdStr string
		if err := rows.Scan(&rec.ID, &rec.GameID, &rec.AttemptID, &rec.Winner, &rec.BeliefValue, &skipped, &createdStr); err != nil {
			return nil, fmt.Errorf("scan decision: %w", err)
		}
		if skipped.Valid {
			rec.SkippedJSON = skipped.String
		}
		rec.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
		out = append(out, rec)
	}
	return out, rows.Err()
}

// #endregion decision-log

// #region list-games
// ListGames returns the most recent games. A non-positive limit
// returns all of them.
func (s *Store) ListGames(limit int) ([]Game, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := s.db.Query(
		`SELECT id, player_name, created_at FROM games ORDER BY created_at DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list games: %w", err)
	}
	defer rows.Close()

	var out []Game
	for rows.Next() {
		var g Game
		var createdStr string
		if err := rows.Scan(&g.ID, &g.PlayerName, &createdStr); err != nil {
			return nil, fmt.Errorf("scan game: %w", err)
		}
		g.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
		out = append(out, g)
	}
	return out, rows.Err()
}

// #endregion list-games

// #region helpers
func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

// #endregion helpers
