package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/wordrush/boggle-services/internal/gamesvc/board"
	"github.com/wordrush/boggle-services/internal/gamesvc/models"
	"github.com/wordrush/boggle-services/internal/gamesvc/scoring"
	"github.com/wordrush/boggle-services/internal/gamesvc/store"
)

// GameService owns the lifecycle of a game record: solo boards, board
// fetches, finalization and history views.
type GameService struct {
	gameStore store.GameStore
}

func NewGameService(gameStore store.GameStore) *GameService {
	return &GameService{gameStore: gameStore}
}

// CreateSoloBoard creates a single unpaired game record for the user.
func (s *GameService) CreateSoloBoard(ctx context.Context, userID string) (*models.Game, error) {
	game := &models.Game{
		ID:          uuid.NewString(),
		BoardString: board.Generate(),
		UserID:      userID,
		WordsPlayed: []string{},
		Pending:     true,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.gameStore.Create(ctx, game); err != nil {
		return nil, err
	}
	return game, nil
}

// FetchBoard returns the board string of a game and clears its pending
// flag. Pending never flips back; fetching an already fetched board is a
// no-op apart from the read.
func (s *GameService) FetchBoard(ctx context.Context, gameID string) (string, error) {
	game, err := s.gameStore.GetByID(ctx, gameID)
	if err != nil {
		return "", err
	}
	if game == nil {
		return "", ErrNotFound
	}
	if err := s.gameStore.SetPending(ctx, gameID, false); err != nil {
		return "", err
	}
	return game.BoardString, nil
}

// FinalizeGame records the player's result on the game and closes it out.
//
// The stored score is the caller-supplied one; the board driver is trusted
// to have summed the word scores itself. The score is still recomputed here
// from the played words and a mismatch is logged, so inflated submissions
// are at least visible.
func (s *GameService) FinalizeGame(ctx context.Context, gameID string, score int, wordsPlayed []string) (*models.Game, error) {
	game, err := s.gameStore.GetByID(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if game == nil {
		return nil, ErrNotFound
	}

	if recomputed := sumWordScores(wordsPlayed); recomputed != score {
		log.Warnf("finalize score mismatch for game %s: client %d, server %d", gameID, score, recomputed)
	}

	if wordsPlayed == nil {
		wordsPlayed = []string{}
	}
	game.Points = score
	game.WordsPlayed = wordsPlayed
	game.Pending = false
	if err := s.gameStore.Save(ctx, game); err != nil {
		return nil, err
	}
	return game, nil
}

func sumWordScores(words []string) int {
	total := 0
	for _, w := range words {
		v, err := scoring.ScoreWord(w)
		if err != nil {
			continue
		}
		total += v
	}
	return total
}

// GetHistory returns the user's completed games, each paired with the
// linked opponent record when one exists. A solo game yields a single
// element entry. Entries follow the store's natural return order.
func (s *GameService) GetHistory(ctx context.Context, userID string) ([][]*models.Game, error) {
	games, err := s.gameStore.FindByUserAndPending(ctx, userID, false)
	if err != nil {
		return nil, err
	}

	history := [][]*models.Game{}
	for _, game := range games {
		if game.Opponent == nil {
			history = append(history, []*models.Game{game})
			continue
		}
		oppGame, err := s.gameStore.GetByID(ctx, *game.Opponent)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve opponent game: %w", err)
		}
		if oppGame == nil {
			// dangling link, treat the game as solo
			history = append(history, []*models.Game{game})
			continue
		}
		history = append(history, []*models.Game{game, oppGame})
	}
	return history, nil
}

// PendingGames returns the user's games still awaiting a board fetch.
func (s *GameService) PendingGames(ctx context.Context, userID string) ([]*models.Game, error) {
	return s.gameStore.FindByUserAndPending(ctx, userID, true)
}

// HighScore returns the user's best score over all their games, 0 when the
// user has none.
func (s *GameService) HighScore(ctx context.Context, userID string) (int, error) {
	games, err := s.gameStore.FindByUser(ctx, userID)
	if err != nil {
		return 0, err
	}
	highest := 0
	for _, game := range games {
		if game.Points > highest {
			highest = game.Points
		}
	}
	return highest, nil
}
