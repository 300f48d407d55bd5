package models

import (
	"fmt"
	"math"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// GeoPoint is a (latitude, longitude) coordinate pair. Mongo stores it as a
// GeoJSON Point so the 2dsphere index can use it; API payloads always see the
// flattened {latitude, longitude} form.
type GeoPoint struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type geoJSONPoint struct {
	Type        string     `bson:"type"`
	Coordinates [2]float64 `bson:"coordinates"`
}

// MarshalBSONValue stores the point as a GeoJSON Point. GeoJSON orders
// coordinates longitude first.
func (p GeoPoint) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return bson.MarshalValue(geoJSONPoint{
		Type:        "Point",
		Coordinates: [2]float64{p.Longitude, p.Latitude},
	})
}

// UnmarshalBSONValue accepts a GeoJSON Point or BSON null.
func (p *GeoPoint) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	switch t {
	case bsontype.Null:
		*p = GeoPoint{}
		return nil
	case bsontype.EmbeddedDocument:
		var point geoJSONPoint
		if err := bson.UnmarshalValue(t, data, &point); err != nil {
			return err
		}
		p.Longitude = point.Coordinates[0]
		p.Latitude = point.Coordinates[1]
		return nil
	default:
		return fmt.Errorf("cannot decode %s into GeoPoint", t)
	}
}

const earthRadiusKm = 6371

// DistanceKm returns the great-circle distance to o in kilometers, computed
// with the Haversine formula. Coordinates outside the valid latitude/longitude
// ranges still produce a defined result.
func (p GeoPoint) DistanceKm(o GeoPoint) float64 {
	dlat := radians(o.Latitude - p.Latitude)
	dlon := radians(o.Longitude - p.Longitude)

	a := math.Sin(dlat/2)*math.Sin(dlat/2) +
		math.Cos(radians(p.Latitude))*math.Cos(radians(o.Latitude))*
			math.Sin(dlon/2)*math.Sin(dlon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

func radians(degrees float64) float64 {
	return degrees * math.Pi / 180
}
