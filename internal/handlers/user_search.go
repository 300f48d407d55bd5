package handlers

import (
	"sort"
	"strings"

	"backend/internal/models"
)

// userMatch is a search result. Distance is set only when the result came
// through a distance filter.
type userMatch struct {
	models.User
	Distance *float64 `json:"distance,omitempty"`
}

func matchesKeyword(value, keyword string) bool {
	if keyword == "" {
		return true
	}
	return strings.Contains(strings.ToLower(value), strings.ToLower(keyword))
}

func filterByKeywords(users []models.User, description, focusArea string) []models.User {
	out := make([]models.User, 0, len(users))
	for _, user := range users {
		if !matchesKeyword(user.Description, description) {
			continue
		}
		if !matchesKeyword(user.FocusArea, focusArea) {
			continue
		}
		out = append(out, user)
	}
	return out
}

// filterByProximity keeps users that have a location within radiusKm of
// center and annotates each with its distance. Users without a location never
// match.
func filterByProximity(users []models.User, center models.GeoPoint, radiusKm float64) []userMatch {
	out := make([]userMatch, 0, len(users))
	for _, user := range users {
		if user.Location == nil {
			continue
		}
		distance := center.DistanceKm(*user.Location)
		if distance > radiusKm {
			continue
		}
		out = append(out, userMatch{User: user, Distance: &distance})
	}
	return out
}

func withoutDistance(users []models.User) []userMatch {
	out := make([]userMatch, 0, len(users))
	for _, user := range users {
		out = append(out, userMatch{User: user})
	}
	return out
}

// sortByDistance orders matches closest first. The sort is stable so equal
// distances keep their original order.
func sortByDistance(matches []userMatch) {
	sort.SliceStable(matches, func(i, j int) bool {
		return *matches[i].Distance < *matches[j].Distance
	})
}
