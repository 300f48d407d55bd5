package database

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func EnsureProductIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	indexes := db.Collection("products").Indexes()

	locationIndex := mongo.IndexModel{
		Keys: bson.D{{Key: "location", Value: "2dsphere"}},
		Options: options.Index().
			SetName("location_2dsphere").
			SetSparse(true),
	}

	log.Println("EnsureProductIndexes: creating location_2dsphere index")
	_, err := indexes.CreateOne(ctx, locationIndex)
	if err != nil {
		log.Println("EnsureProductIndexes: location index error:", err)
		return err
	}
	log.Println("EnsureProductIndexes: location_2dsphere index created")
	return nil
}

func EnsureUserIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	indexes := db.Collection("users").Indexes()

	phoneIndex := mongo.IndexModel{
		Keys: bson.D{{Key: "phone_number", Value: 1}},
		Options: options.Index().
			SetName("phone_number_unique").
			SetUnique(true),
	}

	log.Println("EnsureUserIndexes: creating phone_number_unique index")
	_, err := indexes.CreateOne(ctx, phoneIndex)
	if err != nil {
		log.Println("EnsureUserIndexes: phone_number index error:", err)
		return err
	}
	log.Println("EnsureUserIndexes: phone_number_unique index created")
	return nil
}
