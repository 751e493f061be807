package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"reasonbridge/internal/config"
	"reasonbridge/internal/model"
	"reasonbridge/internal/repository"
)

func main() {
	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(ctx)

	db := client.Database(cfg.MongoDatabase)
	responseRepo := repository.NewResponseRepo(db)

	topicID := "topic_remote_work"

	responses := []*model.Response{
		{
			TopicID:  topicID,
			AuthorID: "user_seed0001",
			Stance:   model.StanceSupport,
			Content:  "Remote work improves productivity for focused tasks and cuts commuting time, which gives people hours back every week.",
		},
		{
			TopicID:  topicID,
			AuthorID: "user_seed0002",
			Stance:   model.StanceOppose,
			Content:  "Productivity suffers when teams lose spontaneous collaboration. Mentoring junior colleagues is much harder over video calls.",
		},
		{
			TopicID:  topicID,
			AuthorID: "user_seed0003",
			Stance:   model.StanceSupport,
			Content:  "Hybrid schedules keep collaboration days while preserving quiet time. My team's output went up after we switched.",
		},
		{
			TopicID:  topicID,
			AuthorID: "user_seed0004",
			Stance:   model.StanceNeutral,
			Content:  "It likely depends on the role. Comparing outcomes across different kinds of teams would tell us more than anecdotes.",
		},
	}

	for _, r := range responses {
		if err := responseRepo.Create(ctx, r); err != nil {
			log.Fatalf("Failed to seed response: %v", err)
		}
		fmt.Printf("seeded response %s (%s)\n", r.ID, r.Stance)
	}

	fmt.Printf("seeded topic %s with %d responses\n", topicID, len(responses))
}
