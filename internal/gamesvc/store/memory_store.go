package store

import (
	"context"
	"sync"

	"github.com/wordrush/boggle-services/internal/gamesvc/models"
)

// MemoryGameStore keeps game records in process memory, preserving insertion
// order for Find results the way a fresh Mongo collection does. Used by
// tests and local development without a database.
type MemoryGameStore struct {
	mu    sync.RWMutex
	games map[string]*models.Game
	order []string
}

func NewMemoryGameStore() *MemoryGameStore {
	return &MemoryGameStore{games: make(map[string]*models.Game)}
}

func (s *MemoryGameStore) Create(ctx context.Context, game *models.Game) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *game
	s.games[game.ID] = &cp
	s.order = append(s.order, game.ID)
	return nil
}

func (s *MemoryGameStore) GetByID(ctx context.Context, id string) (*models.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	game, ok := s.games[id]
	if !ok {
		return nil, nil
	}
	cp := *game
	return &cp, nil
}

func (s *MemoryGameStore) FindByUser(ctx context.Context, userID string) ([]*models.Game, error) {
	return s.filter(func(g *models.Game) bool { return g.UserID == userID }), nil
}

func (s *MemoryGameStore) FindByUserAndPending(ctx context.Context, userID string, pending bool) ([]*models.Game, error) {
	return s.filter(func(g *models.Game) bool {
		return g.UserID == userID && g.Pending == pending
	}), nil
}

func (s *MemoryGameStore) filter(keep func(*models.Game) bool) []*models.Game {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []*models.Game{}
	for _, id := range s.order {
		if g := s.games[id]; keep(g) {
			cp := *g
			out = append(out, &cp)
		}
	}
	return out
}

func (s *MemoryGameStore) SetPending(ctx context.Context, id string, pending bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if game, ok := s.games[id]; ok {
		game.Pending = pending
	}
	return nil
}

func (s *MemoryGameStore) Save(ctx context.Context, game *models.Game) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *game
	if _, ok := s.games[game.ID]; !ok {
		s.order = append(s.order, game.ID)
	}
	s.games[game.ID] = &cp
	return nil
}

// Len reports the number of stored records.
func (s *MemoryGameStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.games)
}

// MemoryUserStore is the in-memory counterpart of MongoUserStore.
type MemoryUserStore struct {
	mu    sync.RWMutex
	users map[string]*models.User
	order []string
}

func NewMemoryUserStore() *MemoryUserStore {
	return &MemoryUserStore{users: make(map[string]*models.User)}
}

func (s *MemoryUserStore) Create(ctx context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *user
	s.users[user.ID] = &cp
	s.order = append(s.order, user.ID)
	return nil
}

func (s *MemoryUserStore) GetByID(ctx context.Context, id string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.users[id]
	if !ok {
		return nil, nil
	}
	cp := *user
	return &cp, nil
}

func (s *MemoryUserStore) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (s *MemoryUserStore) ListUsernames(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := []string{}
	for _, id := range s.order {
		names = append(names, s.users[id].Username)
	}
	return names, nil
}
