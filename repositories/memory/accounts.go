package memory

import (
	"context"

	"tourist-safety/apperrors"
	"tourist-safety/models"
)

type AccountStore struct {
	s *Store
}

func (r *AccountStore) Create(_ context.Context, account *models.Account) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if r.s.accountEmailTaken(account.Email) {
		return duplicateAccountEmail()
	}
	r.s.insertAccount(account)
	return nil
}

func (r *AccountStore) FindByEmail(_ context.Context, email string) (*models.Account, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, a := range r.s.accounts {
		if a.Email == email {
			return &a, nil
		}
	}
	return nil, apperrors.NotFound("Account not found")
}

func (r *AccountStore) FindByID(_ context.Context, id int) (*models.Account, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	a, ok := r.s.accounts[id]
	if !ok {
		return nil, apperrors.NotFound("Account not found")
	}
	return &a, nil
}

func (r *AccountStore) EmailExists(_ context.Context, email string) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.accountEmailTaken(email), nil
}
