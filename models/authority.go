package models

import (
	"strings"
	"time"
)

type AgencyType string

const (
	AgencyPolice    AgencyType = "police"
	AgencyHospital  AgencyType = "hospital"
	AgencyEmbassy   AgencyType = "embassy"
	AgencyFire      AgencyType = "fire"
	AgencyTourism   AgencyType = "tourism"
	AgencyEmergency AgencyType = "emergency"
	AgencyOther     AgencyType = "other"
)

var agencyTypes = map[AgencyType]bool{
	AgencyPolice:    true,
	AgencyHospital:  true,
	AgencyEmbassy:   true,
	AgencyFire:      true,
	AgencyTourism:   true,
	AgencyEmergency: true,
	AgencyOther:     true,
}

// ParseAgencyType accepts either the enum value or a display label such as
// "Hospital/Medical" or "Fire Department"; the first word decides.
func ParseAgencyType(s string) (AgencyType, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if i := strings.IndexAny(s, "/ "); i > 0 {
		s = s[:i]
	}
	t := AgencyType(s)
	return t, agencyTypes[t]
}

type AuthorityProfile struct {
	ID            int        `json:"id"`
	AccountID     int        `json:"user_id"`
	FullName      string     `json:"full_name"`
	OfficialEmail string     `json:"official_email"`
	Phone         string     `json:"phone"`
	AgencyType    AgencyType `json:"agency_type"`
	AgencyName    string     `json:"agency_name"`
	AuthorityID   string     `json:"authority_id"`
	IsVerified    bool       `json:"is_verified"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

type VerificationFilter string

const (
	VerificationPending  VerificationFilter = "pending"
	VerificationVerified VerificationFilter = "verified"
	VerificationAll      VerificationFilter = "all"
)

func ParseVerificationFilter(s string) (VerificationFilter, bool) {
	switch f := VerificationFilter(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return VerificationPending, true
	case VerificationPending, VerificationVerified, VerificationAll:
		return f, true
	default:
		return "", false
	}
}

func (f VerificationFilter) Matches(p AuthorityProfile) bool {
	switch f {
	case VerificationPending:
		return !p.IsVerified
	case VerificationVerified:
		return p.IsVerified
	default:
		return true
	}
}
