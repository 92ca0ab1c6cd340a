package models

import "time"

type PlaceType string

const (
	PlaceHospital   PlaceType = "hospital"
	PlaceRestaurant PlaceType = "restaurant"
	PlaceAttraction PlaceType = "attraction"
)

func (t PlaceType) Valid() bool {
	switch t {
	case PlaceHospital, PlaceRestaurant, PlaceAttraction:
		return true
	}
	return false
}

type Place struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	PlaceType   PlaceType `json:"place_type"`
	Description string    `json:"description"`
	Lat         float64   `json:"lat"`
	Lng         float64   `json:"lng"`
	Address     string    `json:"address"`
}

func (p Place) Coordinates() (float64, float64) {
	return p.Lat, p.Lng
}

type Incident struct {
	ID          int       `json:"id"`
	ProfileID   int       `json:"profile"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	Lat         float64   `json:"lat"`
	Lng         float64   `json:"lng"`
	Evidence    string    `json:"evidence"`
	Resolved    bool      `json:"resolved"`
}

// SOSAlert is an unresolved incident enriched with its tourist's contact data.
type SOSAlert struct {
	Incident
	TouristName  string `json:"tourist_name"`
	TouristEmail string `json:"tourist_email"`
	TouristPhone string `json:"tourist_phone"`
}
