package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"backend/internal/models"
	"backend/internal/store"
)

type GeoPointRequest struct {
	Latitude  *float64 `json:"latitude" binding:"required,latitude"`
	Longitude *float64 `json:"longitude" binding:"required,longitude"`
}

func (r *GeoPointRequest) toModel() *models.GeoPoint {
	if r == nil {
		return nil
	}
	return &models.GeoPoint{Latitude: *r.Latitude, Longitude: *r.Longitude}
}

type ProductRequest struct {
	Name        string           `json:"name" binding:"required"`
	Description string           `json:"description" binding:"required"`
	Price       *float64         `json:"price" binding:"required"`
	Quantity    *int             `json:"quantity" binding:"required"`
	Location    *GeoPointRequest `json:"location"`
}

func GetProducts(products store.ProductStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /products"
		defer handlePanic(c, route)

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		list, err := products.List(ctx)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, err.Error())
			return
		}

		log.Printf("[%s] returning %d products", route, len(list))
		c.JSON(http.StatusOK, list)
	}
}

func GetProductByID(products store.ProductStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /products/:id"
		defer handlePanic(c, route)

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		product, err := products.Get(ctx, strings.TrimSpace(c.Param("id")))
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				respondWithError(c, http.StatusNotFound, route, "Product not found")
				return
			}
			respondWithError(c, http.StatusInternalServerError, route, err.Error())
			return
		}

		c.JSON(http.StatusOK, gin.H{"product": product})
	}
}

// GetProductsByLocation matches the stored geo point exactly. Radius search
// exists only on the user endpoints.
func GetProductsByLocation(products store.ProductStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /products/location"
		defer handlePanic(c, route)

		lat, err := floatQuery(c, "lat")
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, err.Error())
			return
		}
		lng, err := floatQuery(c, "lng")
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, err.Error())
			return
		}
		if lat == nil || lng == nil {
			respondWithError(c, http.StatusBadRequest, route, "lat and lng query parameters are required")
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		list, err := products.FindByLocation(ctx, models.GeoPoint{Latitude: *lat, Longitude: *lng})
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, err.Error())
			return
		}

		if len(list) == 0 {
			respondWithError(c, http.StatusNotFound, route, "No products found at the given location")
			return
		}

		c.JSON(http.StatusOK, gin.H{"products": list})
	}
}

func CreateProduct(products store.ProductStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /products"
		defer handlePanic(c, route)

		var req ProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}

		product := models.Product{
			Name:        strings.TrimSpace(req.Name),
			Description: strings.TrimSpace(req.Description),
			Price:       *req.Price,
			Quantity:    *req.Quantity,
			Location:    req.Location.toModel(),
			CreatedAt:   time.Now(),
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		id, err := products.Insert(ctx, product)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, err.Error())
			return
		}

		log.Printf("[%s] product created: %s", route, id)
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Product created successfully",
			"id":      id,
		})
	}
}

func DeleteProduct(products store.ProductStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "DELETE /products/:id"
		defer handlePanic(c, route)

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		id := strings.TrimSpace(c.Param("id"))

		// Deleting an absent product still reports success, the way a
		// document-store delete of a missing id succeeds.
		if err := products.Delete(ctx, id); err != nil && !errors.Is(err, store.ErrNotFound) {
			respondWithError(c, http.StatusInternalServerError, route, err.Error())
			return
		}

		log.Printf("[%s] product deleted: %s", route, id)
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Product deleted successfully",
		})
	}
}
