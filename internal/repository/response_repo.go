package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"reasonbridge/internal/model"
)

// ResponseRepo persists discussion responses
type ResponseRepo interface {
	Create(ctx context.Context, response *model.Response) error
	GetByID(ctx context.Context, id string) (*model.Response, error)
	GetByTopicID(ctx context.Context, topicID string) ([]*model.Response, error)
	Update(ctx context.Context, response *model.Response) error
}

type responseRepo struct {
	collection *mongo.Collection
}

// NewResponseRepo creates a response repository
func NewResponseRepo(db *mongo.Database) ResponseRepo {
	return &responseRepo{
		collection: db.Collection("responses"),
	}
}

func (r *responseRepo) Create(ctx context.Context, response *model.Response) error {
	now := time.Now()
	if response.CreatedAt.IsZero() {
		response.CreatedAt = now
	}
	response.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, response)
	if err != nil {
		return err
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		response.ID = oid.Hex()
	}

	return nil
}

func (r *responseRepo) GetByID(ctx context.Context, id string) (*model.Response, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	var response model.Response
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&response)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &response, nil
}

func (r *responseRepo) GetByTopicID(ctx context.Context, topicID string) ([]*model.Response, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"topicId": topicID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var responses []*model.Response
	if err = cursor.All(ctx, &responses); err != nil {
		return nil, err
	}

	return responses, nil
}

func (r *responseRepo) Update(ctx context.Context, response *model.Response) error {
	oid, err := primitive.ObjectIDFromHex(response.ID)
	if err != nil {
		return err
	}

	response.UpdatedAt = time.Now()
	update := bson.M{"$set": response}
	_, err = r.collection.UpdateOne(ctx, bson.M{"_id": oid}, update)
	return err
}
