package monitorstate

import (
	"context"

	"fleetstatus/src/config"
	"fleetstatus/src/modules/shared"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mongoModel struct {
	MonitorID     int64  `bson:"monitor_id"`
	Status        string `bson:"status"`
	LastCheckedAt *int64 `bson:"last_checked_at"`
	LastLatencyMs *int64 `bson:"last_latency_ms"`
}

func (mm *mongoModel) toDomain() *Model {
	return &Model{
		MonitorID:     mm.MonitorID,
		Status:        shared.ParseMonitorStatus(mm.Status),
		LastCheckedAt: mm.LastCheckedAt,
		LastLatencyMs: mm.LastLatencyMs,
	}
}

type MongoRepository struct {
	collection *mongo.Collection
}

func NewMongoRepository(client *mongo.Client, cfg *config.Config) Repository {
	collection := client.Database(cfg.DBName).Collection("monitor_state")

	_, err := collection.Indexes().CreateOne(context.Background(), mongo.IndexModel{
		Keys:    bson.D{{Key: "monitor_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		panic("Failed to create index on monitor_state collection:" + err.Error())
	}

	return &MongoRepository{collection: collection}
}

func (r *MongoRepository) FindByMonitorIDs(ctx context.Context, monitorIDs []int64) ([]*Model, error) {
	if len(monitorIDs) == 0 {
		return []*Model{}, nil
	}

	cursor, err := r.collection.Find(ctx, bson.M{"monitor_id": bson.M{"$in": monitorIDs}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var models []*Model
	for cursor.Next(ctx) {
		var mm mongoModel
		if err := cursor.Decode(&mm); err != nil {
			return nil, err
		}
		models = append(models, mm.toDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	if models == nil {
		models = []*Model{}
	}
	return models, nil
}
