package memory

import (
	"context"

	"tourist-safety/apperrors"
	"tourist-safety/models"
)

type AuthorityStore struct {
	s *Store
}

func (r *AuthorityStore) emailTaken(email string, excludeID int) bool {
	for _, p := range r.s.authorities {
		if p.OfficialEmail == email && p.ID != excludeID {
			return true
		}
	}
	return false
}

func (r *AuthorityStore) authorityIDTaken(authorityID string, excludeID int) bool {
	for _, p := range r.s.authorities {
		if p.AuthorityID == authorityID && p.ID != excludeID {
			return true
		}
	}
	return false
}

func (r *AuthorityStore) EmailExists(_ context.Context, email string, excludeID int) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.emailTaken(email, excludeID), nil
}

func (r *AuthorityStore) AuthorityIDExists(_ context.Context, authorityID string, excludeID int) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.authorityIDTaken(authorityID, excludeID), nil
}

func (r *AuthorityStore) CreateWithAccount(_ context.Context, account *models.Account, profile *models.AuthorityProfile) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if r.s.accountEmailTaken(account.Email) {
		return duplicateAccountEmail()
	}
	if r.emailTaken(profile.OfficialEmail, 0) {
		return apperrors.Duplicate("authority", "official_email", "Authority with this official email already exists")
	}
	if r.authorityIDTaken(profile.AuthorityID, 0) {
		return apperrors.Duplicate("authority", "authority_id", "Authority ID already registered")
	}

	r.s.insertAccount(account)

	profile.ID = r.s.next("authorities")
	profile.AccountID = account.ID
	profile.CreatedAt = account.CreatedAt
	profile.UpdatedAt = account.CreatedAt
	r.s.authorities[profile.ID] = *profile
	return nil
}

func (r *AuthorityStore) FindByAccountID(_ context.Context, accountID int) (*models.AuthorityProfile, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, p := range r.s.authorities {
		if p.AccountID == accountID {
			return &p, nil
		}
	}
	return nil, apperrors.NotFound("Authority profile not found")
}

func (r *AuthorityStore) FindByID(_ context.Context, id int) (*models.AuthorityProfile, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	p, ok := r.s.authorities[id]
	if !ok {
		return nil, apperrors.NotFound("Authority profile not found")
	}
	return &p, nil
}

func (r *AuthorityStore) List(_ context.Context, filter models.VerificationFilter) ([]models.AuthorityProfile, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := []models.AuthorityProfile{}
	for _, p := range sortedValues(r.s.authorities) {
		if filter.Matches(p) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *AuthorityStore) Update(_ context.Context, profile *models.AuthorityProfile, passwordHash string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	current, ok := r.s.authorities[profile.ID]
	if !ok {
		return apperrors.NotFound("Authority profile not found")
	}
	if r.emailTaken(profile.OfficialEmail, profile.ID) {
		return apperrors.Duplicate("authority", "official_email", "Authority with this official email already exists")
	}
	if r.authorityIDTaken(profile.AuthorityID, profile.ID) {
		return apperrors.Duplicate("authority", "authority_id", "Authority ID already registered")
	}

	profile.AccountID = current.AccountID
	profile.IsVerified = current.IsVerified
	profile.CreatedAt = current.CreatedAt
	profile.UpdatedAt = r.s.now()
	r.s.authorities[profile.ID] = *profile
	r.s.setPassword(current.AccountID, passwordHash)
	return nil
}

func (r *AuthorityStore) Verify(_ context.Context, id int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	p, ok := r.s.authorities[id]
	if !ok {
		return apperrors.NotFound("Authority profile not found")
	}
	now := r.s.now()
	p.IsVerified = true
	p.UpdatedAt = now
	r.s.authorities[id] = p

	if a, ok := r.s.accounts[p.AccountID]; ok {
		a.IsActive = true
		a.UpdatedAt = now
		r.s.accounts[a.ID] = a
	}
	return nil
}
