package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is a marketplace participant. Type discriminates the role, e.g.
// "buyer" or "seller". The password field only ever holds the salted hash
// produced by the password package and is never serialized to JSON.
type User struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	PhoneNumber string             `bson:"phone_number" json:"phone_number"`
	Password    []byte             `bson:"password,omitempty" json:"-"`
	Email       string             `bson:"email,omitempty" json:"email,omitempty"`
	Name        string             `bson:"name,omitempty" json:"name,omitempty"`
	Type        string             `bson:"type" json:"type"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Location    *GeoPoint          `bson:"location,omitempty" json:"location,omitempty"`
	FocusArea   string             `bson:"focus_area,omitempty" json:"focus_area,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}
