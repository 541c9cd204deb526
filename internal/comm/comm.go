package comm

import "encoding/json"

// TopicGameEvents is the NATS subject game services publish on and the
// stats service consumes from.
const TopicGameEvents = "game.events"

// Event is the envelope every message on the game events subject uses.
type Event struct {
	Type string          `json:"type"` // e.g. "game-finalized"
	Data json.RawMessage `json:"data"`
}

const EventGameFinalized = "game-finalized"

// GameFinalized is emitted once per finalized game record.
type GameFinalized struct {
	GameID   string `json:"game_id"`
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Points   int    `json:"points"`
	Words    int    `json:"words"`
}

// LeaderboardEntry is one row of the stats service leaderboard.
type LeaderboardEntry struct {
	Username    string `json:"username"`
	BestScore   int    `json:"bestScore"`
	GamesPlayed int    `json:"gamesPlayed"`
}
