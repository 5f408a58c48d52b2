package outage

import (
	"context"

	"fleetstatus/src/config"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mongoModel struct {
	MonitorID int64  `bson:"monitor_id"`
	StartedAt int64  `bson:"started_at"`
	EndedAt   *int64 `bson:"ended_at"`
}

func (mm *mongoModel) toDomain() *Model {
	return &Model{
		MonitorID: mm.MonitorID,
		StartedAt: mm.StartedAt,
		EndedAt:   mm.EndedAt,
	}
}

type MongoRepository struct {
	collection *mongo.Collection
}

func NewMongoRepository(client *mongo.Client, cfg *config.Config) Repository {
	collection := client.Database(cfg.DBName).Collection("outages")

	_, err := collection.Indexes().CreateOne(context.Background(), mongo.IndexModel{
		Keys: bson.D{{Key: "monitor_id", Value: 1}, {Key: "started_at", Value: 1}},
	})
	if err != nil {
		panic("Failed to create index on outages collection:" + err.Error())
	}

	return &MongoRepository{collection: collection}
}

// FindOverlapping mirrors the SQL repository's clamp predicate:
// started_at < rangeEnd AND (ended_at is absent/null OR ended_at > rangeStart).
func (r *MongoRepository) FindOverlapping(ctx context.Context, monitorID int64, rangeStart, rangeEnd int64) ([]*Model, error) {
	filter := bson.M{
		"monitor_id": monitorID,
		"started_at": bson.M{"$lt": rangeEnd},
		"$or": bson.A{
			bson.M{"ended_at": nil},
			bson.M{"ended_at": bson.M{"$gt": rangeStart}},
		},
	}

	opts := options.Find().SetSort(bson.D{{Key: "started_at", Value: 1}})
	cursor, err := r.collection.Find(ctx, filter, opts)
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
