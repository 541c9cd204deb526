package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/wordrush/boggle-services/internal/gamesvc/models"
)

// GameStore is the persistence contract for game records. Lookups that find
// nothing return (nil, nil); errors are reserved for store failures.
type GameStore interface {
	Create(ctx context.Context, game *models.Game) error
	GetByID(ctx context.Context, id string) (*models.Game, error)
	FindByUser(ctx context.Context, userID string) ([]*models.Game, error)
	FindByUserAndPending(ctx context.Context, userID string, pending bool) ([]*models.Game, error)
	SetPending(ctx context.Context, id string, pending bool) error
	Save(ctx context.Context, game *models.Game) error
}

type MongoGameStore struct {
	coll *mongo.Collection
}

func NewMongoGameStore(db *mongo.Database) *MongoGameStore {
	return &MongoGameStore{coll: db.Collection("games")}
}

func (s *MongoGameStore) Create(ctx context.Context, game *models.Game) error {
	_, err := s.coll.InsertOne(ctx, game)
	if err != nil {
		return fmt.Errorf("failed to create game: %w", err)
	}
	return nil
}

func (s *MongoGameStore) GetByID(ctx context.Context, id string) (*models.Game, error) {
	game := &models.Game{}
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(game)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil // game not found
		}
		return nil, fmt.Errorf("failed to get game by ID: %w", err)
	}
	return game, nil
}

func (s *MongoGameStore) FindByUser(ctx context.Context, userID string) ([]*models.Game, error) {
	return s.find(ctx, bson.M{"user_id": userID})
}

func (s *MongoGameStore) FindByUserAndPending(ctx context.Context, userID string, pending bool) ([]*models.Game, error) {
	return s.find(ctx, bson.M{"user_id": userID, "pending": pending})
}

func (s *MongoGameStore) find(ctx context.Context, filter bson.M) ([]*models.Game, error) {
	cur, err := s.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to find games: %w", err)
	}
	defer cur.Close(ctx)

	games := []*models.Game{}
	if err := cur.All(ctx, &games); err != nil {
		return nil, fmt.Errorf("failed to decode games: %w", err)
	}
	return games, nil
}

func (s *MongoGameStore) SetPending(ctx context.Context, id string, pending bool) error {
	_, err := s.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"pending": pending}})
	if err != nil {
		return fmt.Errorf("failed to update game pending flag: %w", err)
	}
	return nil
}

func (s *MongoGameStore) Save(ctx context.Context, game *models.Game) error {
	_, err := s.coll.ReplaceOne(ctx, bson.M{"_id": game.ID}, game)
	if err != nil {
		return fmt.Errorf("failed to save game: %w", err)
	}
	return nil
}
