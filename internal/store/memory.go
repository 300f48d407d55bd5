package store

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"backend/internal/models"
)

// InMemoryProductStore is a map-backed ProductStore used by handler tests in
// place of a running MongoDB.
type InMemoryProductStore struct {
	mu       sync.Mutex
	order    []string
	products map[string]models.Product
}

func NewInMemoryProductStore() *InMemoryProductStore {
	return &InMemoryProductStore{products: make(map[string]models.Product)}
}

func (s *InMemoryProductStore) List(ctx context.Context) ([]models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Product, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.products[id])
	}
	return out, nil
}

func (s *InMemoryProductStore) Get(ctx context.Context, id string) (models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	product, ok := s.products[id]
	if !ok {
		return models.Product{}, ErrNotFound
	}
	return product, nil
}

func (s *InMemoryProductStore) FindByLocation(ctx context.Context, location models.GeoPoint) ([]models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Product, 0)
	for _, id := range s.order {
		product := s.products[id]
		if product.Location != nil && *product.Location == location {
			out = append(out, product)
		}
	}
	return out, nil
}

func (s *InMemoryProductStore) Insert(ctx context.Context, product models.Product) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	product.ID = primitive.NewObjectID()
	id := product.ID.Hex()
	s.products[id] = product
	s.order = append(s.order, id)
	return id, nil
}

func (s *InMemoryProductStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.products[id]; !ok {
		return ErrNotFound
	}
	delete(s.products, id)
	for i, stored := range s.order {
		if stored == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

// InMemoryUserStore is a slice-backed UserStore. Insertion order is preserved
// so tests can rely on the stable-sort tie-breaking of the search endpoints.
type InMemoryUserStore struct {
	mu    sync.Mutex
	users []models.User
}

func NewInMemoryUserStore() *InMemoryUserStore {
	return &InMemoryUserStore{}
}

func (s *InMemoryUserStore) Insert(ctx context.Context, user models.User) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user.ID = primitive.NewObjectID()
	s.users = append(s.users, user)
	return user.ID.Hex(), nil
}

func (s *InMemoryUserStore) ListByType(ctx context.Context, userType string) ([]models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.User, 0, len(s.users))
	for _, user := range s.users {
		if userType != "" && user.Type != userType {
			continue
		}
		out = append(out, user)
	}
	return out, nil
}

func (s *InMemoryUserStore) ListWithLocation(ctx context.Context) ([]models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.User, 0, len(s.users))
	for _, user := range s.users {
		if user.Location == nil {
			continue
		}
		out = append(out, user)
	}
	return out, nil
}

// Users returns a snapshot of every stored user, in insertion order.
func (s *InMemoryUserStore) Users() []models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.User, len(s.users))
	copy(out, s.users)
	return out
}
