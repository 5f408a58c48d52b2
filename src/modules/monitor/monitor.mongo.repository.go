package monitor

import (
	"context"
	"errors"
	"time"

	"fleetstatus/src/config"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// mongoModel keys on the same integer id the SQL schema uses, rather
// than an ObjectID, so every downstream join (state, checks, outages)
// can carry plain int64 monitor ids regardless of backend.
type mongoModel struct {
	ID          int64     `bson:"id"`
	Name        string    `bson:"name"`
	Type        string    `bson:"type"`
	IntervalSec int64     `bson:"interval_sec"`
	Active      bool      `bson:"active"`
	CreatedAt   time.Time `bson:"created_at"`
}

func (mm *mongoModel) toDomain() *Model {
	return &Model{
		ID:          mm.ID,
		Name:        mm.Name,
		Type:        mm.Type,
		IntervalSec: mm.IntervalSec,
		Active:      mm.Active,
		CreatedAt:   mm.CreatedAt.Unix(),
	}
}

type MongoRepository struct {
	collection *mongo.Collection
}

func NewMongoRepository(client *mongo.Client, cfg *config.Config) Repository {
	collection := client.Database(cfg.DBName).Collection("monitors")

	_, err := collection.Indexes().CreateOne(context.Background(), mongo.IndexModel{
		Keys:    bson.D{{Key: "id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		panic("Failed to create index on monitors collection:" + err.Error())
	}

	return &MongoRepository{collection: collection}
}

func (r *MongoRepository) FindActive(ctx context.Context) ([]*Model, error) {
	opts := options.Find().SetSort(bson.D{{Key: "id", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{"active": true}, opts)
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

func (r *MongoRepository) FindByID(ctx context.Context, id int64) (*Model, error) {
	var mm mongoModel
	err := r.collection.FindOne(ctx, bson.M{"id": id, "active": true}).Decode(&mm)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return mm.toDomain(), nil
}

func (r *MongoRepository) FindByIDs(ctx context.Context, ids []int64) ([]*Model, error) {
	if len(ids) == 0 {
		return []*Model{}, nil
	}

	cursor, err := r.collection.Find(ctx, bson.M{"id": bson.M{"$in": ids}, "active": true})
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
