package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"reasonbridge/internal/model"
)

// FeedbackRepo persists feedback rows. Dismissal is a soft delete; rows are
// retained for analytics, so there is no hard Delete.
type FeedbackRepo interface {
	Create(ctx context.Context, feedback *model.Feedback) error
	GetByID(ctx context.Context, id string) (*model.Feedback, error)
	GetByResponseID(ctx context.Context, responseID string) ([]*model.Feedback, error)
	Update(ctx context.Context, feedback *model.Feedback) error
	GroupByType(ctx context.Context) ([]model.FeedbackTypeTotals, error)
}

type feedbackRepo struct {
	collection *mongo.Collection
}

// NewFeedbackRepo creates a feedback repository
func NewFeedbackRepo(db *mongo.Database) FeedbackRepo {
	return &feedbackRepo{
		collection: db.Collection("feedback"),
	}
}

func (r *feedbackRepo) Create(ctx context.Context, feedback *model.Feedback) error {
	if feedback.CreatedAt.IsZero() {
		feedback.CreatedAt = time.Now()
	}

	result, err := r.collection.InsertOne(ctx, feedback)
	if err != nil {
		return err
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		feedback.ID = oid.Hex()
	}

	return nil
}

func (r *feedbackRepo) GetByID(ctx context.Context, id string) (*model.Feedback, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	var feedback model.Feedback
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&feedback)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &feedback, nil
}

func (r *feedbackRepo) GetByResponseID(ctx context.Context, responseID string) ([]*model.Feedback, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"responseId": responseID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var items []*model.Feedback
	if err = cursor.All(ctx, &items); err != nil {
		return nil, err
	}

	return items, nil
}

func (r *feedbackRepo) Update(ctx context.Context, feedback *model.Feedback) error {
	oid, err := primitive.ObjectIDFromHex(feedback.ID)
	if err != nil {
		return err
	}

	update := bson.M{"$set": feedback}
	_, err = r.collection.UpdateOne(ctx, bson.M{"_id": oid}, update)
	return err
}

// GroupByType aggregates per-type counters for the analytics rollup
func (r *feedbackRepo) GroupByType(ctx context.Context) ([]model.FeedbackTypeTotals, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":          "$type",
			"count":        bson.M{"$sum": 1},
			"acknowledged": bson.M{"$sum": bson.M{"$cond": bson.A{"$userAcknowledged", 1, 0}}},
			"revised":      bson.M{"$sum": bson.M{"$cond": bson.A{"$userRevised", 1, 0}}},
			"dismissed": bson.M{"$sum": bson.M{"$cond": bson.A{
				bson.M{"$ifNull": bson.A{"$dismissedAt", false}}, 1, 0}}},
			"ratedHelpful": bson.M{"$sum": bson.M{"$cond": bson.A{
				bson.M{"$eq": bson.A{"$userHelpfulRating", string(model.RatingHelpful)}}, 1, 0}}},
		}}},
		{{Key: "$sort", Value: bson.M{"_id": 1}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var totals []model.FeedbackTypeTotals
	if err = cursor.All(ctx, &totals); err != nil {
		return nil, err
	}

	return totals, nil
}
