package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/wordrush/boggle-services/internal/comm"
)

type LeaderboardStore struct {
	db *pgxpool.Pool
}

func NewLeaderboardStore(db *pgxpool.Pool) *LeaderboardStore {
	return &LeaderboardStore{db: db}
}

// RecordScore folds one finalized game into the player's leaderboard row:
// best_score keeps the maximum, games_played counts every game.
func (s *LeaderboardStore) RecordScore(ctx context.Context, username string, points int) error {
	query := `
		INSERT INTO leaderboard (username, best_score, games_played, updated_at)
		VALUES ($1, $2, 1, now())
		ON CONFLICT (username) DO UPDATE
		SET best_score   = GREATEST(leaderboard.best_score, EXCLUDED.best_score),
		    games_played = leaderboard.games_played + 1,
		    updated_at   = now()
	`

	_, err := s.db.Exec(ctx, query, username, points)
	if err != nil {
		return fmt.Errorf("failed to record score: %w", err)
	}
	return nil
}

// Top returns the highest scoring players, best score first.
func (s *LeaderboardStore) Top(ctx context.Context, limit int) ([]*comm.LeaderboardEntry, error) {
	query := `
		SELECT username, best_score, games_played
		FROM leaderboard
		ORDER BY best_score DESC, username ASC
		LIMIT $1
	`

	rows, err := s.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query leaderboard: %w", err)
	}
	defer rows.Close()

	entries := []*comm.LeaderboardEntry{}
	for rows.Next() {
		e := &comm.LeaderboardEntry{}
		if err := rows.Scan(&e.Username, &e.BestScore, &e.GamesPlayed); err != nil {
			return nil, fmt.Errorf("failed to scan leaderboard row: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read leaderboard rows: %w", err)
	}

	return entries, nil
}
