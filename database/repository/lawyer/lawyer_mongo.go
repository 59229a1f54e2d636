package lawyerRepo

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

// MongoLawyerRepo implements LawyerRepository using MongoDB.
type MongoLawyerRepo struct {
	coll *mongo.Collection
}

// NewMongoLawyerRepo creates a new instance of LawyerRepository using MongoDB.
func NewMongoLawyerRepo() LawyerRepository {
	coll := database.MongoClient.Database("wukala").Collection("lawyers")
	repo := &MongoLawyerRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes creates indexes for fields frequently used in queries.
func (r *MongoLawyerRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "city", Value: 1}}},
		{Keys: bson.D{{Key: "specialization", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByID retrieves a lawyer by its unique ID.
func (r *MongoLawyerRepo) GetByID(id string) (*models.Lawyer, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var lawyer models.Lawyer
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&lawyer); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch lawyer with id %s: %w", id, err)
	}
	return &lawyer, nil
}

// GetByEmail retrieves a lawyer by its email address.
func (r *MongoLawyerRepo) GetByEmail(email string) (*models.Lawyer, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var lawyer models.Lawyer
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&lawyer); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch lawyer with email %s: %w", email, err)
	}
	return &lawyer, nil
}

// Search retrieves lawyers matching the query, sorted best first.
func (r *MongoLawyerRepo) Search(query DirectoryQuery) ([]models.Lawyer, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{}
	if query.City != "" {
		filter["city"] = primitive.Regex{Pattern: "^" + query.City + "$", Options: "i"}
	}
	if query.Specialization != "" {
		filter["specialization"] = primitive.Regex{Pattern: "^" + query.Specialization + "$", Options: "i"}
	}

	sort := bson.D{{Key: "rating", Value: -1}}
	if query.SortBy == "experience" {
		sort = bson.D{{Key: "experience_years", Value: -1}}
	}

	cursor, err := r.coll.Find(ctx, filter, options.Find().SetSort(sort))
	if err != nil {
		return nil, fmt.Errorf("failed to search lawyers: %w", err)
	}
	defer cursor.Close(ctx)

	var lawyers []models.Lawyer
	for cursor.Next(ctx) {
		var l models.Lawyer
		if err := cursor.Decode(&l); err != nil {
			return nil, fmt.Errorf("failed to decode lawyer: %w", err)
		}
		lawyers = append(lawyers, l)
	}
	return lawyers, nil
}

// Count returns the number of stored profiles.
func (r *MongoLawyerRepo) Count() (int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	n, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count lawyers: %w", err)
	}
	return n, nil
}

// CreateMany inserts profiles in bulk.
func (r *MongoLawyerRepo) CreateMany(lawyers []models.Lawyer) error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	docs := make([]interface{}, 0, len(lawyers))
	now := time.Now()
	for i := range lawyers {
		lawyers[i].CreatedAt = now
		lawyers[i].UpdatedAt = now
		docs = append(docs, lawyers[i])
	}

	if _, err := r.coll.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("failed to insert lawyers: %w", err)
	}
	return nil
}
