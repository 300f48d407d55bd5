package handlers

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"backend/internal/models"
	"backend/internal/password"
	"backend/internal/store"
)

type RegisterUserRequest struct {
	PhoneNumber string           `json:"phone_number" binding:"required"`
	Password    string           `json:"password"`
	Email       string           `json:"email" binding:"omitempty,email"`
	Name        string           `json:"name"`
	Type        string           `json:"type" binding:"required"`
	Description string           `json:"description"`
	Location    *GeoPointRequest `json:"location"`
	FocusArea   string           `json:"focus_area"`
}

const defaultRadiusKm = 10

func RegisterUser(users store.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /users/register"
		defer handlePanic(c, route)

		var req RegisterUserRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}

		user := models.User{
			PhoneNumber: strings.TrimSpace(req.PhoneNumber),
			Email:       strings.ToLower(strings.TrimSpace(req.Email)),
			Name:        strings.TrimSpace(req.Name),
			Type:        strings.TrimSpace(req.Type),
			Description: req.Description,
			Location:    req.Location.toModel(),
			FocusArea:   req.FocusArea,
			CreatedAt:   time.Now(),
		}

		if req.Password != "" {
			hash, err := password.Hash(req.Password)
			if err != nil {
				respondWithError(c, http.StatusInternalServerError, route, err.Error())
				return
			}
			user.Password = hash
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		id, err := users.Insert(ctx, user)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, err.Error())
			return
		}

		log.Printf("[%s] user registered: %s", route, id)
		c.JSON(http.StatusCreated, gin.H{
			"success": true,
			"message": "User registered successfully",
			"id":      id,
		})
	}
}

/*
GET /users/find
- type: exact match, pushed into the store query
- description, focus_area: case-insensitive substring, in memory
- lat + lng + radius: distance filter, applied only when all three are present
*/
func FindUsers(users store.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /users/find"
		defer handlePanic(c, route)

		userType := strings.TrimSpace(c.Query("type"))
		description := c.Query("description")
		focusArea := c.Query("focus_area")

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
		radius, err := floatQuery(c, "radius")
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, err.Error())
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		list, err := users.ListByType(ctx, userType)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, err.Error())
			return
		}

		matched := filterByKeywords(list, description, focusArea)

		var results []userMatch
		if lat != nil && lng != nil && radius != nil {
			center := models.GeoPoint{Latitude: *lat, Longitude: *lng}
			results = filterByProximity(matched, center, *radius)
		} else {
			results = withoutDistance(matched)
		}

		log.Printf("[%s] returning %d users", route, len(results))
		c.JSON(http.StatusOK, results)
	}
}

// FindUsersByLocation filters every located user by distance from the query
// point and returns them closest first. Radius defaults to 10 km.
func FindUsersByLocation(users store.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /find_by_location"
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

		radiusKm := float64(defaultRadiusKm)
		if radius, err := floatQuery(c, "radius"); err != nil {
			respondWithError(c, http.StatusBadRequest, route, err.Error())
			return
		} else if radius != nil {
			radiusKm = *radius
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		list, err := users.ListWithLocation(ctx)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, err.Error())
			return
		}

		results := filterByProximity(list, models.GeoPoint{Latitude: *lat, Longitude: *lng}, radiusKm)
		sortByDistance(results)

		log.Printf("[%s] returning %d users", route, len(results))
		c.JSON(http.StatusOK, results)
	}
}
