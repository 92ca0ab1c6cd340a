package memory

import (
	"context"

	"tourist-safety/apperrors"
	"tourist-safety/models"
)

type TouristStore struct {
	s *Store
}

func (r *TouristStore) emailTaken(email string, excludeID int) bool {
	for _, p := range r.s.tourists {
		if p.Email == email && p.ID != excludeID {
			return true
		}
	}
	return false
}

func (r *TouristStore) EmailExists(_ context.Context, email string, excludeID int) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.emailTaken(email, excludeID), nil
}

func (r *TouristStore) CreateWithAccount(_ context.Context, account *models.Account, profile *models.TouristProfile) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if r.s.accountEmailTaken(account.Email) {
		return duplicateAccountEmail()
	}
	if r.emailTaken(profile.Email, 0) {
		return apperrors.Duplicate("tourist", "email", "Tourist with this email already exists")
	}

	r.s.insertAccount(account)

	profile.ID = r.s.next("tourists")
	profile.AccountID = account.ID
	profile.CreatedAt = account.CreatedAt
	profile.UpdatedAt = account.CreatedAt
	profile.Contacts = nil
	r.s.tourists[profile.ID] = *profile
	return nil
}

func (r *TouristStore) FindByAccountID(_ context.Context, accountID int) (*models.TouristProfile, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, p := range r.s.tourists {
		if p.AccountID == accountID {
			return &p, nil
		}
	}
	return nil, apperrors.NotFound("Tourist profile not found")
}

func (r *TouristStore) FindByID(_ context.Context, id int) (*models.TouristProfile, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	p, ok := r.s.tourists[id]
	if !ok {
		return nil, apperrors.NotFound("Tourist profile not found")
	}
	return &p, nil
}

func (r *TouristStore) List(_ context.Context) ([]models.TouristProfile, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return sortedValues(r.s.tourists), nil
}

func (r *TouristStore) Update(_ context.Context, profile *models.TouristProfile, passwordHash string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	current, ok := r.s.tourists[profile.ID]
	if !ok {
		return apperrors.NotFound("Tourist profile not found")
	}
	if r.emailTaken(profile.Email, profile.ID) {
		return apperrors.Duplicate("tourist", "email", "Tourist with this email already exists")
	}

	profile.AccountID = current.AccountID
	profile.CreatedAt = current.CreatedAt
	profile.UpdatedAt = r.s.now()
	stored := *profile
	stored.Contacts = nil
	r.s.tourists[profile.ID] = stored
	r.s.setPassword(current.AccountID, passwordHash)
	return nil
}

// Delete removes the profile together with its account, contacts and
// incidents.
func (r *TouristStore) Delete(_ context.Context, id int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	p, ok := r.s.tourists[id]
	if !ok {
		return apperrors.NotFound("Tourist profile not found")
	}

	for cid, c := range r.s.contacts {
		if c.ProfileID == id {
			delete(r.s.contacts, cid)
		}
	}
	for iid, inc := range r.s.incidents {
		if inc.ProfileID == id {
			delete(r.s.incidents, iid)
		}
	}
	delete(r.s.tourists, id)
	delete(r.s.accounts, p.AccountID)
	return nil
}
