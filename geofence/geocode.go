package geofence

import "fmt"

type Address struct {
	Address string `json:"address"`
	City    string `json:"city"`
	Country string `json:"country"`
}

// MockReverseGeocode returns a placeholder address for demo clients.
// TODO: replace with a real geocoding provider once one is selected.
func MockReverseGeocode(lat, lng float64) Address {
	return Address{
		Address: fmt.Sprintf("Address at %.5f, %.5f", lat, lng),
		City:    "Demo City",
		Country: "Demo Country",
	}
}
