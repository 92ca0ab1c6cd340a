package models

import (
	"strconv"
	"strings"
)

type TouristRegisterRequest struct {
	FullName        string `json:"full_name" form:"full_name"`
	Email           string `json:"email" form:"email"`
	Password        string `json:"password" form:"password"`
	Phone           string `json:"phone" form:"phone"`
	Country         string `json:"country" form:"country"`
	Nationality     string `json:"nationality" form:"nationality"`
	CurrentLocation string `json:"current_location" form:"current_location"`
}

type AuthorityRegisterRequest struct {
	FullName      string `json:"full_name" form:"full_name"`
	OfficialEmail string `json:"official_email" form:"official_email"`
	Password      string `json:"password" form:"password"`
	Phone         string `json:"phone" form:"phone"`
	AgencyType    string `json:"agency_type" form:"agency_type"`
	AgencyName    string `json:"agency_name" form:"agency_name"`
	AuthorityID   string `json:"authority_id" form:"authority_id"`
}

type LoginRequest struct {
	Email         string `json:"email" form:"email"`
	OfficialEmail string `json:"official_email" form:"official_email"`
	Password      string `json:"password" form:"password"`
}

// LoginEmail prefers the authority form's official_email when present.
func (r LoginRequest) LoginEmail() string {
	if r.OfficialEmail != "" {
		return r.OfficialEmail
	}
	return r.Email
}

// TouristProfilePatch lists the fields a tourist may change. A nil field is
// left as it is.
type TouristProfilePatch struct {
	UserID          int     `json:"user_id" form:"user_id"`
	FullName        *string `json:"full_name" form:"full_name"`
	Email           *string `json:"email" form:"email"`
	Phone           *string `json:"phone" form:"phone"`
	PhoneNumber     *string `json:"phone_number" form:"phone_number"`
	Country         *string `json:"country" form:"country"`
	Nationality     *string `json:"nationality" form:"nationality"`
	CurrentLocation *string `json:"current_location" form:"current_location"`
	BlockchainID    *string `json:"blockchain_id" form:"blockchain_id"`
	FromAddress     *string `json:"from_address" form:"from_address"`
	ToAddress       *string `json:"to_address" form:"to_address"`
	ArrivalDate     *string `json:"arrival_date" form:"arrival_date"`
	DepartureDate   *string `json:"departure_date" form:"departure_date"`
	HotelName       *string `json:"hotel_name" form:"hotel_name"`
	HotelAddress    *string `json:"hotel_address" form:"hotel_address"`
	Password        *string `json:"password" form:"password"`
	ConfirmPassword *string `json:"confirm_password" form:"confirm_password"`
}

// AuthorityProfilePatch has no is_verified field: verification belongs to
// administrators only.
type AuthorityProfilePatch struct {
	UserID          int     `json:"user_id" form:"user_id"`
	FullName        *string `json:"full_name" form:"full_name"`
	OfficialEmail   *string `json:"official_email" form:"official_email"`
	Phone           *string `json:"phone" form:"phone"`
	PhoneNumber     *string `json:"phone_number" form:"phone_number"`
	AgencyName      *string `json:"agency_name" form:"agency_name"`
	AuthorityID     *string `json:"authority_id" form:"authority_id"`
	OfficerID       *string `json:"officer_id" form:"officer_id"`
	Password        *string `json:"password" form:"password"`
	ConfirmPassword *string `json:"confirm_password" form:"confirm_password"`
}

type ContactRequest struct {
	ProfileID int    `json:"profile_id" form:"profile_id"`
	Name      string `json:"name" form:"name"`
	Relation  string `json:"relation" form:"relation"`
	Phone     string `json:"phone" form:"phone"`
}

type ContactPatch struct {
	Name     *string `json:"name" form:"name"`
	Relation *string `json:"relation" form:"relation"`
	Phone    *string `json:"phone" form:"phone"`
}

type PlaceRequest struct {
	Name        string   `json:"name" form:"name"`
	PlaceType   string   `json:"place_type" form:"place_type"`
	Description string   `json:"description" form:"description"`
	Lat         *float64 `json:"lat" form:"lat"`
	Lng         *float64 `json:"lng" form:"lng"`
	Address     string   `json:"address" form:"address"`
}

type PlacePatch struct {
	Name        *string  `json:"name" form:"name"`
	PlaceType   *string  `json:"place_type" form:"place_type"`
	Description *string  `json:"description" form:"description"`
	Lat         *float64 `json:"lat" form:"lat"`
	Lng         *float64 `json:"lng" form:"lng"`
	Address     *string  `json:"address" form:"address"`
}

type SOSRequest struct {
	UserID      int      `json:"user_id" form:"user_id"`
	Lat         *float64 `json:"lat" form:"lat"`
	Lng         *float64 `json:"lng" form:"lng"`
	Title       string   `json:"title" form:"title"`
	Description string   `json:"description" form:"description"`
	Evidence    string   `json:"evidence" form:"evidence"`
}

type IncidentRequest struct {
	ProfileID   int      `json:"profile_id" form:"profile_id"`
	Title       string   `json:"title" form:"title"`
	Description string   `json:"description" form:"description"`
	Lat         *float64 `json:"lat" form:"lat"`
	Lng         *float64 `json:"lng" form:"lng"`
	Evidence    string   `json:"evidence" form:"evidence"`
}

type VerifyAuthoritiesRequest struct {
	IDs []int `json:"ids"`
}

// NumberString accepts a JSON number or a numeric string and keeps its text,
// leaving parsing to geofence.ParseQuery.
type NumberString string

func (n *NumberString) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" {
		*n = ""
		return nil
	}
	if unquoted, err := strconv.Unquote(s); err == nil {
		s = unquoted
	}
	*n = NumberString(s)
	return nil
}

type GeofenceRequest struct {
	Lat    NumberString `json:"lat" form:"lat"`
	Lng    NumberString `json:"lng" form:"lng"`
	Radius NumberString `json:"radius" form:"radius"`
}
