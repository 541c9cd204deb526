package models

import "time"

// Game is one player's side of a match. A challenge produces two Game
// records sharing the same board string, each holding the other's id in
// Opponent. A solo board produces a single record with a nil Opponent.
type Game struct {
	ID           string    `bson:"_id" json:"id"`
	BoardString  string    `bson:"board_string" json:"boardString"`
	UserID       string    `bson:"user_id" json:"userId"`
	OpponentName string    `bson:"opponent_name,omitempty" json:"opponentName,omitempty"`
	Opponent     *string   `bson:"opponent" json:"opponent"`
	Points       int       `bson:"points" json:"points"`
	WordsPlayed  []string  `bson:"words_played" json:"wordsPlayed"`
	Pending      bool      `bson:"pending" json:"pending"` // true until first board fetch or finalize
	CreatedAt    time.Time `bson:"created_at" json:"createdAt"`
}
