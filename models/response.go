package models

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
	Field   string `json:"field,omitempty"`
}

type TouristRegistration struct {
	UserID    int             `json:"user_id"`
	ProfileID int             `json:"profile_id"`
	Profile   *TouristProfile `json:"profile"`
}

const StatusPendingVerification = "pending_verification"

type AuthorityRegistration struct {
	UserID    int               `json:"user_id"`
	ProfileID int               `json:"profile_id"`
	Status    string            `json:"status"`
	Profile   *AuthorityProfile `json:"profile"`
}

type LoginResult struct {
	Token      string            `json:"token"`
	User       *Account          `json:"user"`
	Tourist    *TouristProfile   `json:"tourist,omitempty"`
	Authority  *AuthorityProfile `json:"authority,omitempty"`
	AgencyName string            `json:"agency_name,omitempty"`
}

type AdminLoginResult struct {
	Token string   `json:"token"`
	User  *Account `json:"user"`
}

type VerifyResult struct {
	Count    int   `json:"count"`
	Verified []int `json:"verified"`
	NotFound []int `json:"not_found"`
}
