package models

import (
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

// Date is a calendar day serialized as YYYY-MM-DD.
type Date struct {
	time.Time
}

func ParseDate(s string) (*Date, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return nil, err
	}
	return &Date{Time: t}, nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(DateLayout) + `"`), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		return nil
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

type TouristProfile struct {
	ID              int                `json:"id"`
	AccountID       int                `json:"user_id"`
	Name            string             `json:"name"`
	Email           string             `json:"email"`
	Phone           string             `json:"phone"`
	Country         string             `json:"country"`
	Nationality     string             `json:"nationality"`
	CurrentLocation string             `json:"current_location"`
	PhotoURL        string             `json:"profile_photo"`
	PhotoKey        string             `json:"-"`
	BlockchainID    string             `json:"blockchain_id"`
	FromAddress     string             `json:"from_address"`
	ToAddress       string             `json:"to_address"`
	ArrivalDate     *Date              `json:"arrival_date"`
	DepartureDate   *Date              `json:"departure_date"`
	HotelName       string             `json:"hotel_name"`
	HotelAddress    string             `json:"hotel_address"`
	Contacts        []EmergencyContact `json:"contacts,omitempty"`
	CreatedAt       time.Time          `json:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at"`
}

type EmergencyContact struct {
	ID        int    `json:"id"`
	ProfileID int    `json:"profile_id"`
	Name      string `json:"name"`
	Relation  string `json:"relation"`
	Phone     string `json:"phone"`
}
