package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/wordrush/boggle-services/internal/gamesvc/board"
	"github.com/wordrush/boggle-services/internal/gamesvc/models"
	"github.com/wordrush/boggle-services/internal/gamesvc/store"
)

// ChallengeService pairs two players into a match sharing one board.
type ChallengeService struct {
	gameStore store.GameStore
	userStore store.UserStore
}

func NewChallengeService(gameStore store.GameStore, userStore store.UserStore) *ChallengeService {
	return &ChallengeService{gameStore: gameStore, userStore: userStore}
}

// CreateChallenge builds a challenge pair: one board string, two game
// records, each record's Opponent pointing at the other's id. The returned
// record is the challenger's side.
//
// The pair is written in two phases (create both, then link both). There is
// no transaction across the two records, so a reader can briefly observe a
// record whose counterpart exists but whose Opponent is still nil, and a
// failure between the creates leaves the challenger's record behind as a
// solo board.
func (s *ChallengeService) CreateChallenge(ctx context.Context, user *models.User, opponentName string) (*models.Game, error) {
	opponentName = strings.TrimSpace(opponentName)
	if opponentName == user.Username {
		return nil, ErrInvalidChallenge
	}

	opponent, err := s.userStore.GetByUsername(ctx, opponentName)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve opponent: %w", err)
	}
	if opponent == nil {
		return nil, ErrUnknownOpponent
	}

	boardStr := board.Generate()
	now := time.Now().UTC()

	myGame := &models.Game{
		ID:           uuid.NewString(),
		BoardString:  boardStr,
		UserID:       user.ID,
		OpponentName: opponentName,
		WordsPlayed:  []string{},
		Pending:      true,
		CreatedAt:    now,
	}
	if err := s.gameStore.Create(ctx, myGame); err != nil {
		return nil, err
	}

	opponentGame := &models.Game{
		ID:           uuid.NewString(),
		BoardString:  boardStr,
		UserID:       opponent.ID,
		OpponentName: user.Username,
		WordsPlayed:  []string{},
		Pending:      true,
		CreatedAt:    now,
	}
	if err := s.gameStore.Create(ctx, opponentGame); err != nil {
		return nil, err
	}

	myGame.Opponent = &opponentGame.ID
	if err := s.gameStore.Save(ctx, myGame); err != nil {
		return nil, err
	}
	opponentGame.Opponent = &myGame.ID
	if err := s.gameStore.Save(ctx, opponentGame); err != nil {
		return nil, err
	}

	return myGame, nil
}
