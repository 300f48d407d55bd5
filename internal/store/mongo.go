package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"backend/internal/models"
)

// MongoProductStore persists products in the "products" collection.
type MongoProductStore struct {
	collection *mongo.Collection
}

func NewMongoProductStore(db *mongo.Database) *MongoProductStore {
	return &MongoProductStore{collection: db.Collection("products")}
}

func (s *MongoProductStore) List(ctx context.Context) ([]models.Product, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := s.collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	return decodeProducts(ctx, cursor)
}

func (s *MongoProductStore) Get(ctx context.Context, id string) (models.Product, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.Product{}, ErrNotFound
	}

	var product models.Product
	if err := s.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&product); err != nil {
		if err == mongo.ErrNoDocuments {
			return models.Product{}, ErrNotFound
		}
		return models.Product{}, err
	}
	return product, nil
}

func (s *MongoProductStore) FindByLocation(ctx context.Context, location models.GeoPoint) ([]models.Product, error) {
	// GeoJSON orders coordinates longitude first. Matching on the coordinate
	// array keeps the query independent of field order in the stored document.
	filter := bson.M{"location.coordinates": bson.A{location.Longitude, location.Latitude}}

	cursor, err := s.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	return decodeProducts(ctx, cursor)
}

func (s *MongoProductStore) Insert(ctx context.Context, product models.Product) (string, error) {
	res, err := s.collection.InsertOne(ctx, product)
	if err != nil {
		return "", err
	}

	objectID, _ := res.InsertedID.(primitive.ObjectID)
	return objectID.Hex(), nil
}

// Delete is idempotent: deleting an id that does not resolve to a stored
// document reports ErrNotFound, which the handler boundary treats as success.
func (s *MongoProductStore) Delete(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	res, err := s.collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// MongoUserStore persists users in the "users" collection.
type MongoUserStore struct {
	collection *mongo.Collection
}

func NewMongoUserStore(db *mongo.Database) *MongoUserStore {
	return &MongoUserStore{collection: db.Collection("users")}
}

func (s *MongoUserStore) Insert(ctx context.Context, user models.User) (string, error) {
	res, err := s.collection.InsertOne(ctx, user)
	if err != nil {
		return "", err
	}

	objectID, _ := res.InsertedID.(primitive.ObjectID)
	return objectID.Hex(), nil
}

func (s *MongoUserStore) ListByType(ctx context.Context, userType string) ([]models.User, error) {
	filter := bson.M{}
	if userType != "" {
		filter["type"] = userType
	}

	cursor, err := s.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	return decodeUsers(ctx, cursor)
}

func (s *MongoUserStore) ListWithLocation(ctx context.Context) ([]models.User, error) {
	filter := bson.M{"location": bson.M{"$exists": true, "$ne": nil}}

	cursor, err := s.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	return decodeUsers(ctx, cursor)
}

func decodeProducts(ctx context.Context, cursor *mongo.Cursor) ([]models.Product, error) {
	products := make([]models.Product, 0)
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func decodeUsers(ctx context.Context, cursor *mongo.Cursor) ([]models.User, error) {
	users := make([]models.User, 0)
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}
