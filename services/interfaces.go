package services

import (
	"context"

	"tourist-safety/geofence"
	"tourist-safety/models"
)

//go:generate mockgen -destination=../mocks/mock_services.go -package=mocks tourist-safety/services PhotoStore,Notifier

type AccountStore interface {
	Create(ctx context.Context, account *models.Account) error
	FindByEmail(ctx context.Context, email string) (*models.Account, error)
	FindByID(ctx context.Context, id int) (*models.Account, error)
	EmailExists(ctx context.Context, email string) (bool, error)
}

// TouristStore persists tourist profiles. Update writes passwordHash to the
// owning account in the same transaction when it is not empty.
type TouristStore interface {
	EmailExists(ctx context.Context, email string, excludeID int) (bool, error)
	CreateWithAccount(ctx context.Context, account *models.Account, profile *models.TouristProfile) error
	FindByAccountID(ctx context.Context, accountID int) (*models.TouristProfile, error)
	FindByID(ctx context.Context, id int) (*models.TouristProfile, error)
	List(ctx context.Context) ([]models.TouristProfile, error)
	Update(ctx context.Context, profile *models.TouristProfile, passwordHash string) error
	Delete(ctx context.Context, id int) error
}

type ContactStore interface {
	ListByProfile(ctx context.Context, profileID int) ([]models.EmergencyContact, error)
	Create(ctx context.Context, contact *models.EmergencyContact) error
	FindByID(ctx context.Context, id int) (*models.EmergencyContact, error)
	Update(ctx context.Context, contact *models.EmergencyContact) error
	Delete(ctx context.Context, id int) error
}

type AuthorityStore interface {
	EmailExists(ctx context.Context, email string, excludeID int) (bool, error)
	AuthorityIDExists(ctx context.Context, authorityID string, excludeID int) (bool, error)
	CreateWithAccount(ctx context.Context, account *models.Account, profile *models.AuthorityProfile) error
	FindByAccountID(ctx context.Context, accountID int) (*models.AuthorityProfile, error)
	FindByID(ctx context.Context, id int) (*models.AuthorityProfile, error)
	List(ctx context.Context, filter models.VerificationFilter) ([]models.AuthorityProfile, error)
	Update(ctx context.Context, profile *models.AuthorityProfile, passwordHash string) error
	// Verify marks the profile verified and activates its account atomically.
	Verify(ctx context.Context, id int) error
}

type PlaceStore interface {
	List(ctx context.Context, placeType models.PlaceType) ([]models.Place, error)
	FindInBox(ctx context.Context, box geofence.Box) ([]models.Place, error)
	FindByID(ctx context.Context, id int) (*models.Place, error)
	Create(ctx context.Context, place *models.Place) error
	Update(ctx context.Context, place *models.Place) error
	Delete(ctx context.Context, id int) error
}

type IncidentStore interface {
	Create(ctx context.Context, incident *models.Incident) error
	FindByID(ctx context.Context, id int) (*models.Incident, error)
	List(ctx context.Context, resolved *bool) ([]models.Incident, error)
	ListAlerts(ctx context.Context) ([]models.SOSAlert, error)
	Resolve(ctx context.Context, id int) (*models.Incident, error)
}

type PhotoStore interface {
	Save(ctx context.Context, folder string, upload models.Upload) (*models.StoredFile, error)
	Delete(ctx context.Context, key string) error
}

type Notifier interface {
	NotifySOS(ctx context.Context, alert models.SOSAlert) error
	NotifyAuthorityPending(ctx context.Context, profile models.AuthorityProfile) error
}

// Stores bundles every persistence dependency the services need.
type Stores struct {
	Accounts    AccountStore
	Tourists    TouristStore
	Contacts    ContactStore
	Authorities AuthorityStore
	Places      PlaceStore
	Incidents   IncidentStore
}
