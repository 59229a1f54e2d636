package caselawRepo

import (
	"context"
	"fmt"
	"time"

	"wukala/database"
	"wukala/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoCaseLawRepo implements CaseLawRepository using MongoDB.
type MongoCaseLawRepo struct {
	coll *mongo.Collection
}

// NewMongoCaseLawRepo creates a new instance of CaseLawRepository using MongoDB.
func NewMongoCaseLawRepo() CaseLawRepository {
	coll := database.MongoClient.Database("wukala").Collection("caselaw")
	repo := &MongoCaseLawRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoCaseLawRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "court", Value: 1}, {Key: "year", Value: -1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByID retrieves a case by its unique ID.
func (r *MongoCaseLawRepo) GetByID(id string) (*models.CaseLaw, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var cl models.CaseLaw
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&cl); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch case with id %s: %w", id, err)
	}
	return &cl, nil
}

// Search retrieves cases matching the query, newest year first.
func (r *MongoCaseLawRepo) Search(query models.CaseSearchQuery) ([]models.CaseLaw, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{}
	if query.Text != "" {
		rx := primitive.Regex{Pattern: query.Text, Options: "i"}
		filter["$or"] = bson.A{
			bson.M{"title": rx},
			bson.M{"citation": rx},
			bson.M{"summary": rx},
		}
	}
	if query.Court != "" {
		filter["court"] = primitive.Regex{Pattern: "^" + query.Court + "$", Options: "i"}
	}
	if query.Year != 0 {
		filter["year"] = query.Year
	}

	opts := options.Find().SetSort(bson.D{{Key: "year", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to search case law: %w", err)
	}
	defer cursor.Close(ctx)

	var cases []models.CaseLaw
	for cursor.Next(ctx) {
		var cl models.CaseLaw
		if err := cursor.Decode(&cl); err != nil {
			return nil, fmt.Errorf("failed to decode case: %w", err)
		}
		cases = append(cases, cl)
	}
	return cases, nil
}

// Count returns the number of stored cases.
func (r *MongoCaseLawRepo) Count() (int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	n, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count cases: %w", err)
	}
	return n, nil
}

// CreateMany inserts cases in bulk.
func (r *MongoCaseLawRepo) CreateMany(cases []models.CaseLaw) error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	docs := make([]interface{}, 0, len(cases))
	for _, cl := range cases {
		docs = append(docs, cl)
	}

	if _, err := r.coll.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("failed to insert cases: %w", err)
	}
	return nil
}
