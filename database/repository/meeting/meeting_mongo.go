// File: database/repository/meeting/meeting_mongo.go
package meetingRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/darshanpawar101/mini-calendly-clone/database"
	"github.com/darshanpawar101/mini-calendly-clone/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoMeetingRepo implements MeetingRepository using MongoDB.
type MongoMeetingRepo struct {
	coll *mongo.Collection
}

// NewMongoMeetingRepo creates a new instance of MeetingRepository using MongoDB.
func NewMongoMeetingRepo() MeetingRepository {
	coll := database.Database().Collection("meetings")
	repo := &MongoMeetingRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func (r *MongoMeetingRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "host_user_id", Value: 1}, {Key: "start_time", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new meeting document.
func (r *MongoMeetingRepo) Create(ctx context.Context, meeting *models.Meeting) error {
	meeting.CreatedAt = time.Now()
	if _, err := r.coll.InsertOne(ctx, meeting); err != nil {
		return fmt.Errorf("failed to create meeting: %w", err)
	}
	return nil
}

// GetByHost retrieves meetings hosted by a user, soonest first.
func (r *MongoMeetingRepo) GetByHost(ctx context.Context, hostUserID string) ([]models.Meeting, error) {
	return r.find(ctx, bson.M{"host_user_id": hostUserID})
}

// GetStartingBetween retrieves meetings starting within [from, to), soonest first.
func (r *MongoMeetingRepo) GetStartingBetween(ctx context.Context, from, to time.Time) ([]models.Meeting, error) {
	return r.find(ctx, bson.M{"start_time": bson.M{"$gte": from, "$lt": to}})
}

func (r *MongoMeetingRepo) find(ctx context.Context, filter bson.M) ([]models.Meeting, error) {
	cursor, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "start_time", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to query meetings: %w", err)
	}
	defer cursor.Close(ctx)

	var meetings []models.Meeting
	if err := cursor.All(ctx, &meetings); err != nil {
		return nil, fmt.Errorf("failed to decode meetings: %w", err)
	}
	return meetings, nil
}
