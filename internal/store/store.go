package store

import (
	"context"
	"errors"

	"backend/internal/models"
)

// ErrNotFound is returned when a lookup matches no document.
var ErrNotFound = errors.New("document not found")

// ProductStore is the persistence boundary for the products collection.
type ProductStore interface {
	List(ctx context.Context) ([]models.Product, error)
	Get(ctx context.Context, id string) (models.Product, error)
	FindByLocation(ctx context.Context, location models.GeoPoint) ([]models.Product, error)
	Insert(ctx context.Context, product models.Product) (string, error)
	Delete(ctx context.Context, id string) error
}

// UserStore is the persistence boundary for the users collection. The search
// endpoints push the exact type match into the store query and apply every
// other filter in memory.
type UserStore interface {
	Insert(ctx context.Context, user models.User) (string, error)
	ListByType(ctx context.Context, userType string) ([]models.User, error)
	ListWithLocation(ctx context.Context) ([]models.User, error)
}
