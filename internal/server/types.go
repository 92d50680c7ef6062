package server

// #region requests

// CreateGameRequest starts a new game at the requested difficulty.
type CreateGameRequest struct {
	PlayerName string `json:"player_name" binding:"required"`
	Difficulty int    `json:"difficulty"`
}

// MoveRequest submits the board produced by the player's move.
type MoveRequest struct {
	Board []int `json:"board" binding:"required"`
}

// #endregion

// #region responses

// Response types mirror the payload kinds the tutor emits.
const (
	TypeStatus   = "status"
	TypeGame     = "game"
	TypeSpeech   = "speech"
	TypeMiss     = "miss"
	TypeDecision = "decision"
	TypeWin      = "win"
	TypeBestNext = "best_next"
	TypeRejected = "rejected_move"
)

// GameCreatedResponse returns the new game's identifiers and layout.
type GameCreatedResponse struct {
	Type       string `json:"type"`
	GameID     string `json:"game_id"`
	AttemptID  string `json:"attempt_id"`
	Difficulty string `json:"difficulty"`
	Initial    []int  `json:"initial_state"`
	Goal       []int  `json:"goal_state"`
}

// SpeechResponse carries a plain tutor message.
type SpeechResponse struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// MissResponse acknowledges a recorded miss.
type MissResponse struct {
	Type      string `json:"type"`
	GameID    string `json:"game_id"`
	MissCount int    `json:"miss_count"`
}

// BestNextResponse returns the solver's suggested successor.
type BestNextResponse struct {
	Type      string `json:"type"`
	LastState []int  `json:"last_state"`
	BestNext  []int  `json:"best_next_state"`
}

// #endregion
