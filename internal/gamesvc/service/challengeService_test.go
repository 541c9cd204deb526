package service

import (
	"context"
	"errors"
	"testing"

	"github.com/wordrush/boggle-services/internal/gamesvc/models"
	"github.com/wordrush/boggle-services/internal/gamesvc/store"
)

func newTestUsers(t *testing.T, userStore store.UserStore, names ...string) map[string]*models.User {
	t.Helper()
	svc := NewUserService(userStore)
	users := map[string]*models.User{}
	for _, name := range names {
		u, err := svc.Signup(context.Background(), name, "secret")
		if err != nil {
			t.Fatalf("Signup(%q) returned error: %v", name, err)
		}
		users[name] = u
	}
	return users
}

func TestCreateChallengePairsRecords(t *testing.T) {
	games := store.NewMemoryGameStore()
	userStore := store.NewMemoryUserStore()
	users := newTestUsers(t, userStore, "alice", "bob")
	svc := NewChallengeService(games, userStore)

	myGame, err := svc.CreateChallenge(context.Background(), users["alice"], "bob")
	if err != nil {
		t.Fatalf("CreateChallenge returned error: %v", err)
	}

	if myGame.UserID != users["alice"].ID {
		t.Errorf("challenger game owned by %q, want %q", myGame.UserID, users["alice"].ID)
	}
	if myGame.OpponentName != "bob" {
		t.Errorf("challenger opponentName = %q, want %q", myGame.OpponentName, "bob")
	}
	if myGame.Opponent == nil {
		t.Fatal("challenger game has nil opponent link")
	}

	oppGame, err := games.GetByID(context.Background(), *myGame.Opponent)
	if err != nil || oppGame == nil {
		t.Fatalf("opponent game not found: %v", err)
	}

	if oppGame.BoardString != myGame.BoardString {
		t.Errorf("board strings differ: %q vs %q", myGame.BoardString, oppGame.BoardString)
	}
	if oppGame.UserID != users["bob"].ID {
		t.Errorf("opponent game owned by %q, want %q", oppGame.UserID, users["bob"].ID)
	}
	if oppGame.OpponentName != "alice" {
		t.Errorf("opponent opponentName = %q, want %q", oppGame.OpponentName, "alice")
	}
	if oppGame.Opponent == nil || *oppGame.Opponent != myGame.ID {
		t.Errorf("opponent link does not point back at challenger game")
	}
	if !myGame.Pending || !oppGame.Pending {
		t.Error("fresh challenge games must be pending")
	}
	if games.Len() != 2 {
		t.Errorf("store holds %d games, want 2", games.Len())
	}
}

func TestCreateChallengeSelf(t *testing.T) {
	games := store.NewMemoryGameStore()
	userStore := store.NewMemoryUserStore()
	users := newTestUsers(t, userStore, "alice")
	svc := NewChallengeService(games, userStore)

	_, err := svc.CreateChallenge(context.Background(), users["alice"], "alice")
	if !errors.Is(err, ErrInvalidChallenge) {
		t.Fatalf("self challenge error = %v, want ErrInvalidChallenge", err)
	}
	if games.Len() != 0 {
		t.Errorf("self challenge created %d records, want 0", games.Len())
	}
}

func TestCreateChallengeUnknownOpponent(t *testing.T) {
	games := store.NewMemoryGameStore()
	userStore := store.NewMemoryUserStore()
	users := newTestUsers(t, userStore, "alice")
	svc := NewChallengeService(games, userStore)

	_, err := svc.CreateChallenge(context.Background(), users["alice"], "nonexistent")
	if !errors.Is(err, ErrUnknownOpponent) {
		t.Fatalf("unknown opponent error = %v, want ErrUnknownOpponent", err)
	}
	if games.Len() != 0 {
		t.Errorf("failed challenge created %d records, want 0", games.Len())
	}
}
