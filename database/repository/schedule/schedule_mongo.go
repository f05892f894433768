// File: database/repository/schedule/schedule_mongo.go
package scheduleRepo

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

// MongoScheduleRepo implements ScheduleRepository using MongoDB.
type MongoScheduleRepo struct {
	coll *mongo.Collection
}

// NewMongoScheduleRepo creates a new instance of ScheduleRepository using MongoDB.
func NewMongoScheduleRepo() ScheduleRepository {
	coll := database.Database().Collection("schedules")
	repo := &MongoScheduleRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// ensureIndexes creates indexes for fields frequently used in queries.
func (r *MongoScheduleRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "user_id", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByUserID retrieves the schedule owned by the given user.
func (r *MongoScheduleRepo) GetByUserID(ctx context.Context, userID string) (*models.Schedule, error) {
	var schedule models.Schedule
	err := r.coll.FindOne(ctx, bson.M{"user_id": userID}).Decode(&schedule)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch schedule for user %s: %w", userID, err)
	}
	return &schedule, nil
}

// Upsert replaces the user's schedule, creating it if absent.
func (r *MongoScheduleRepo) Upsert(ctx context.Context, schedule *models.Schedule) error {
	schedule.UpdatedAt = time.Now()
	filter := bson.M{"user_id": schedule.UserID}
	update := bson.M{"$set": schedule}

	opts := options.Update().SetUpsert(true)
	if _, err := r.coll.UpdateOne(ctx, filter, update, opts); err != nil {
		return fmt.Errorf("failed to upsert schedule for user %s: %w", schedule.UserID, err)
	}
	return nil
}

// Delete removes the user's schedule.
func (r *MongoScheduleRepo) Delete(ctx context.Context, userID string) error {
	result, err := r.coll.DeleteOne(ctx, bson.M{"user_id": userID})
	if err != nil {
		return fmt.Errorf("failed to delete schedule for user %s: %w", userID, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("schedule for user %s not found", userID)
	}
	return nil
}
