// Package geofence answers proximity questions about coordinates.
//
// The bounding-box filter used by the nearby-places query works in raw
// degrees, while IsInsideGeofence measures great-circle distance in meters.
package geofence

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"tourist-safety/apperrors"
)

// DefaultRadius is the half-width of the search box, in degrees.
const DefaultRadius = 0.01

// EarthRadiusMeters is the mean Earth radius used by HaversineDistance.
const EarthRadiusMeters = 6371000.0

// Located is anything with a latitude/longitude.
type Located interface {
	Coordinates() (lat, lng float64)
}

type Query struct {
	Lat    float64
	Lng    float64
	Radius float64
}

func (q Query) Box() Box {
	return NewBox(q.Lat, q.Lng, q.Radius)
}

// Box is an axis-aligned rectangle in latitude/longitude space.
type Box struct {
	MinLat float64 `json:"min_lat"`
	MaxLat float64 `json:"max_lat"`
	MinLng float64 `json:"min_lng"`
	MaxLng float64 `json:"max_lng"`
}

func NewBox(lat, lng, radius float64) Box {
	return Box{
		MinLat: lat - radius,
		MaxLat: lat + radius,
		MinLng: lng - radius,
		MaxLng: lng + radius,
	}
}

// Contains is inclusive on every edge, matching SQL BETWEEN.
func (b Box) Contains(lat, lng float64) bool {
	return lat >= b.MinLat && lat <= b.MaxLat && lng >= b.MinLng && lng <= b.MaxLng
}

// FindNearby returns the items whose coordinates fall inside the query box.
// The result is never nil.
func FindNearby[T Located](items []T, q Query) []T {
	box := q.Box()
	nearby := make([]T, 0)
	for _, item := range items {
		lat, lng := item.Coordinates()
		if box.Contains(lat, lng) {
			nearby = append(nearby, item)
		}
	}
	return nearby
}

// ParseQuery parses raw request values. An empty radius means DefaultRadius.
func ParseQuery(lat, lng, radius string) (Query, error) {
	var q Query
	var err error

	if q.Lat, err = parseNumber("lat", lat); err != nil {
		return Query{}, err
	}
	if q.Lng, err = parseNumber("lng", lng); err != nil {
		return Query{}, err
	}

	if strings.TrimSpace(radius) == "" {
		q.Radius = DefaultRadius
		return q, nil
	}
	if q.Radius, err = parseNumber("radius", radius); err != nil {
		return Query{}, err
	}
	if q.Radius < 0 {
		return Query{}, apperrors.InvalidInput("radius", "radius must not be negative")
	}
	return q, nil
}

func parseNumber(field, raw string) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, apperrors.InvalidInput(field, fmt.Sprintf("%s is required", field))
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, apperrors.InvalidInput(field, fmt.Sprintf("%s must be a number", field))
	}
	return v, nil
}

// CheckCoordinates rejects latitudes outside [-90, 90] and longitudes outside
// [-180, 180].
func CheckCoordinates(lat, lng float64) error {
	if math.IsNaN(lat) || lat < -90 || lat > 90 {
		return apperrors.Validation("lat", "Latitude must be between -90 and 90")
	}
	if math.IsNaN(lng) || lng < -180 || lng > 180 {
		return apperrors.Validation("lng", "Longitude must be between -180 and 180")
	}
	return nil
}

// HaversineDistance returns the great-circle distance in meters.
func HaversineDistance(lat1, lng1, lat2, lng2 float64) float64 {
	phi1 := toRadians(lat1)
	phi2 := toRadians(lat2)
	dPhi := toRadians(lat2 - lat1)
	dLambda := toRadians(lng2 - lng1)

	a := math.Sin(dPhi/2)*math.Sin(dPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(dLambda/2)*math.Sin(dLambda/2)
	c := 2 * math.Asin(math.Min(1, math.Sqrt(a)))

	return EarthRadiusMeters * c
}

// IsInsideGeofence reports whether the point lies within radiusMeters of the center.
func IsInsideGeofence(pointLat, pointLng, centerLat, centerLng, radiusMeters float64) bool {
	return HaversineDistance(pointLat, pointLng, centerLat, centerLng) <= radiusMeters
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
