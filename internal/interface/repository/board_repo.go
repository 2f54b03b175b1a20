package repository

import (
	"context"
	"errors"

	"departure-board-service/internal/domain/entity"
	"departure-board-service/internal/domain/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrBoardNotFound is returned when no board was stored for an airport yet
var ErrBoardNotFound = errors.New("board not found")

// MongoBoardRepository keeps the latest board per departure airport
type MongoBoardRepository struct {
	collection *mongo.Collection
}

// NewMongoBoardRepository creates a new board repository
func NewMongoBoardRepository(db *mongo.Database) repository.BoardRepository {
	return &MongoBoardRepository{
		collection: db.Collection("departure_boards"),
	}
}

// SaveLatest replaces the stored board for the board's airport
func (r *MongoBoardRepository) SaveLatest(ctx context.Context, board *entity.Board) error {
	opts := options.Replace().SetUpsert(true)
	filter := bson.M{"_id": board.AirportCode}

	_, err := r.collection.ReplaceOne(ctx, filter, board, opts)
	return err
}

// FindLatest returns the stored board for an airport
func (r *MongoBoardRepository) FindLatest(ctx context.Context, airportCode string) (*entity.Board, error) {
	var board entity.Board
	err := r.collection.FindOne(ctx, bson.M{"_id": airportCode}).Decode(&board)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrBoardNotFound
		}
		return nil, err
	}
	return &board, nil
}
