// File: database/repository/event/event_mongo.go
package eventRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/darshanpawar101/mini-calendly-clone/database"
	"github.com/darshanpawar101/mini-calendly-clone/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoEventRepo implements EventRepository using MongoDB.
type MongoEventRepo struct {
	coll *mongo.Collection
}

// NewMongoEventRepo creates a new instance of EventRepository using MongoDB.
func NewMongoEventRepo() EventRepository {
	coll := database.Database().Collection("events")
	repo := &MongoEventRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func (r *MongoEventRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "user_id", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new event document.
func (r *MongoEventRepo) Create(ctx context.Context, event *models.Event) error {
	now := time.Now()
	event.CreatedAt = now
	event.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, event); err != nil {
		return fmt.Errorf("failed to create event: %w", err)
	}
	return nil
}

// GetByID retrieves an event by its unique ID.
func (r *MongoEventRepo) GetByID(ctx context.Context, id string) (*models.Event, error) {
	var event models.Event
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&event)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("event with id %s not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch event with id %s: %w", id, err)
	}
	return &event, nil
}

// GetByUserID retrieves all events owned by a user.
func (r *MongoEventRepo) GetByUserID(ctx context.Context, userID string) ([]models.Event, error) {
	return r.find(ctx, bson.M{"user_id": userID})
}

// GetActiveByUserID retrieves a user's active events only.
func (r *MongoEventRepo) GetActiveByUserID(ctx context.Context, userID string) ([]models.Event, error) {
	return r.find(ctx, bson.M{"user_id": userID, "is_active": true})
}

func (r *MongoEventRepo) find(ctx context.Context, filter bson.M) ([]models.Event, error) {
	cursor, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}
	defer cursor.Close(ctx)

	var events []models.Event
	if err := cursor.All(ctx, &events); err != nil {
		return nil, fmt.Errorf("failed to decode events: %w", err)
	}
	return events, nil
}

// Update modifies an existing event document.
func (r *MongoEventRepo) Update(ctx context.Context, event *models.Event) error {
	event.UpdatedAt = time.Now()
	filter := bson.M{"id": event.ID}
	update := bson.M{"$set": event}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update event with id %s: %w", event.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("event with id %s not found", event.ID)
	}
	return nil
}

// Delete removes an event document by its ID.
func (r *MongoEventRepo) Delete(ctx context.Context, id string) error {
	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete event with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("event with id %s not found", id)
	}
	return nil
}
