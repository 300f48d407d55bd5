package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"backend/internal/models"
	"backend/internal/store"
)

func newTestRouter() (*gin.Engine, *store.InMemoryProductStore, *store.InMemoryUserStore) {
	gin.SetMode(gin.TestMode)
	products := store.NewInMemoryProductStore()
	users := store.NewInMemoryUserStore()
	return NewRouter(products, users), products, users
}

func performRequest(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGetProductByIDReturns404ForUnknownID(t *testing.T) {
	r, _, _ := newTestRouter()

	w := performRequest(r, "GET", "/products/64b1f0a2e4b0c53f9c000000", "")

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Product not found") {
		t.Fatalf("expected 'Product not found' detail, got %s", w.Body.String())
	}
}

func TestCreateThenFetchProduct(t *testing.T) {
	r, _, _ := newTestRouter()

	body := `{
		"name": "Tomatoes",
		"description": "Fresh field tomatoes",
		"price": 12.5,
		"quantity": 30,
		"location": {"latitude": 41.0082, "longitude": 28.9784}
	}`
	w := performRequest(r, "POST", "/products", body)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var created struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
		ID      string `json:"id"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode create response: %v", err)
	}
	if !created.Success || created.ID == "" {
		t.Fatalf("expected success with an id, got %+v", created)
	}
	if created.Message != "Product created successfully" {
		t.Fatalf("unexpected message: %s", created.Message)
	}

	w = performRequest(r, "GET", "/products/"+created.ID, "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 fetching created product, got %d", w.Code)
	}

	var fetched struct {
		Product struct {
			ID       string           `json:"id"`
			Name     string           `json:"name"`
			Location *models.GeoPoint `json:"location"`
		} `json:"product"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &fetched); err != nil {
		t.Fatalf("decode fetch response: %v", err)
	}
	if fetched.Product.ID != created.ID {
		t.Fatalf("expected id %s, got %s", created.ID, fetched.Product.ID)
	}
	if fetched.Product.Location == nil || fetched.Product.Location.Latitude != 41.0082 {
		t.Fatalf("expected flattened location in response, got %+v", fetched.Product.Location)
	}

	w = performRequest(r, "GET", "/products", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 listing products, got %d", w.Code)
	}
	var list []models.Product
	if err := json.Unmarshal(w.Body.Bytes(), &list); err != nil {
		t.Fatalf("decode list response: %v", err)
	}
	if len(list) != 1 || list[0].Name != "Tomatoes" {
		t.Fatalf("expected single product 'Tomatoes', got %+v", list)
	}
}

func TestCreateProductValidationFailure(t *testing.T) {
	r, _, _ := newTestRouter()

	w := performRequest(r, "POST", "/products", `{"description": "no name or price"}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "name is required") {
		t.Fatalf("expected field detail for name, got %s", w.Body.String())
	}
}

func TestCreateProductRejectsOutOfRangeCoordinates(t *testing.T) {
	r, _, _ := newTestRouter()

	body := `{
		"name": "Tomatoes",
		"description": "Fresh",
		"price": 1,
		"quantity": 1,
		"location": {"latitude": 95, "longitude": 10}
	}`
	w := performRequest(r, "POST", "/products", body)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for latitude 95, got %d", w.Code)
	}
}

func TestDeleteProductSucceedsForUnknownID(t *testing.T) {
	r, _, _ := newTestRouter()

	w := performRequest(r, "DELETE", "/products/64b1f0a2e4b0c53f9c000000", "")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Product deleted successfully") {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestDeleteProductRemovesStoredProduct(t *testing.T) {
	r, products, _ := newTestRouter()

	id, err := products.Insert(context.Background(), models.Product{Name: "Tomatoes"})
	if err != nil {
		t.Fatalf("seed product: %v", err)
	}

	w := performRequest(r, "DELETE", "/products/"+id, "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	w = performRequest(r, "GET", "/products/"+id, "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", w.Code)
	}
}

func TestGetProductsByLocationMatchesExactPointOnly(t *testing.T) {
	r, products, _ := newTestRouter()

	seed := []models.Product{
		{Name: "stall", Location: &models.GeoPoint{Latitude: 41.0082, Longitude: 28.9784}},
		{Name: "elsewhere", Location: &models.GeoPoint{Latitude: 39.9334, Longitude: 32.8597}},
		{Name: "nowhere"},
	}
	for _, product := range seed {
		if _, err := products.Insert(context.Background(), product); err != nil {
			t.Fatalf("seed product: %v", err)
		}
	}

	w := performRequest(r, "GET", "/products/location?lat=41.0082&lng=28.9784", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Products []models.Product `json:"products"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Products) != 1 || resp.Products[0].Name != "stall" {
		t.Fatalf("expected only the exact-point product, got %+v", resp.Products)
	}

	// A nearby but non-identical point matches nothing.
	w = performRequest(r, "GET", "/products/location?lat=41.0083&lng=28.9784", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for non-matching point, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "No products found at the given location") {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestGetProductsByLocationRequiresCoordinates(t *testing.T) {
	r, _, _ := newTestRouter()

	w := performRequest(r, "GET", "/products/location?lat=41.0", "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without lng, got %d", w.Code)
	}
}
