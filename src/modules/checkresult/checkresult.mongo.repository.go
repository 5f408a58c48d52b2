package checkresult

import (
	"context"

	"fleetstatus/src/config"
	"fleetstatus/src/modules/shared"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mongoModel struct {
	MonitorID int64  `bson:"monitor_id"`
	CheckedAt int64  `bson:"checked_at"`
	Status    string `bson:"status"`
	LatencyMs *int64 `bson:"latency_ms"`
}

func (mm *mongoModel) toDomain() *Model {
	return &Model{
		MonitorID: mm.MonitorID,
		CheckedAt: mm.CheckedAt,
		Status:    shared.ParseCheckStatus(mm.Status),
		LatencyMs: mm.LatencyMs,
	}
}

type MongoRepository struct {
	collection *mongo.Collection
}

func NewMongoRepository(client *mongo.Client, cfg *config.Config) Repository {
	collection := client.Database(cfg.DBName).Collection("check_results")

	_, err := collection.Indexes().CreateOne(context.Background(), mongo.IndexModel{
		Keys: bson.D{{Key: "monitor_id", Value: 1}, {Key: "checked_at", Value: -1}},
	})
	if err != nil {
		panic("Failed to create index on check_results collection:" + err.Error())
	}

	return &MongoRepository{collection: collection}
}

// FindRecentByMonitorIDs groups per monitor and keeps only the front of
// each group's descending-sorted array, mirroring the SQL windowed
// top-N query as a single aggregation round trip.
func (r *MongoRepository) FindRecentByMonitorIDs(ctx context.Context, monitorIDs []int64, since int64, limit int) ([]*Model, error) {
	if len(monitorIDs) == 0 {
		return []*Model{}, nil
	}

	pipeline := bson.A{
		bson.M{"$match": bson.M{
			"monitor_id": bson.M{"$in": monitorIDs},
			"checked_at": bson.M{"$gte": since},
		}},
		bson.M{"$sort": bson.M{"checked_at": -1}},
		bson.M{"$group": bson.M{
			"_id":    "$monitor_id",
			"checks": bson.M{"$push": bson.M{"checked_at": "$checked_at", "status": "$status", "latency_ms": "$latency_ms"}},
		}},
		bson.M{"$project": bson.M{"checks": bson.M{"$slice": bson.A{"$checks", limit}}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var groups []struct {
		ID     int64 `bson:"_id"`
		Checks []struct {
			CheckedAt int64  `bson:"checked_at"`
			Status    string `bson:"status"`
			LatencyMs *int64 `bson:"latency_ms"`
		} `bson:"checks"`
	}
	if err := cursor.All(ctx, &groups); err != nil {
		return nil, err
	}

	var models []*Model
	for _, g := range groups {
		for _, c := range g.Checks {
			models = append(models, &Model{
				MonitorID: g.ID,
				CheckedAt: c.CheckedAt,
				Status:    shared.ParseCheckStatus(c.Status),
				LatencyMs: c.LatencyMs,
			})
		}
	}
	if models == nil {
		models = []*Model{}
	}
	return models, nil
}

func (r *MongoRepository) FindInRangeInclusive(ctx context.Context, monitorID int64, start, end int64) ([]*Model, error) {
	return r.find(ctx, bson.M{
		"monitor_id": monitorID,
		"checked_at": bson.M{"$gte": start, "$lte": end},
	})
}

func (r *MongoRepository) FindFrom(ctx context.Context, monitorID int64, start, end int64) ([]*Model, error) {
	return r.find(ctx, bson.M{
		"monitor_id": monitorID,
		"checked_at": bson.M{"$gte": start, "$lt": end},
	})
}

func (r *MongoRepository) find(ctx context.Context, filter bson.M) ([]*Model, error) {
	opts := options.Find().SetSort(bson.D{{Key: "checked_at", Value: 1}})
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
