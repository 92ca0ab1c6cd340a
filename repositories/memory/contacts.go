package memory

import (
	"context"

	"tourist-safety/apperrors"
	"tourist-safety/models"
)

type ContactStore struct {
	s *Store
}

func (r *ContactStore) ListByProfile(_ context.Context, profileID int) ([]models.EmergencyContact, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := []models.EmergencyContact{}
	for _, c := range sortedValues(r.s.contacts) {
		if c.ProfileID == profileID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *ContactStore) Create(_ context.Context, contact *models.EmergencyContact) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.tourists[contact.ProfileID]; !ok {
		return apperrors.NotFound("Tourist profile not found")
	}
	contact.ID = r.s.next("contacts")
	r.s.contacts[contact.ID] = *contact
	return nil
}

func (r *ContactStore) FindByID(_ context.Context, id int) (*models.EmergencyContact, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	c, ok := r.s.contacts[id]
	if !ok {
		return nil, apperrors.NotFound("Emergency contact not found")
	}
	return &c, nil
}

func (r *ContactStore) Update(_ context.Context, contact *models.EmergencyContact) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	current, ok := r.s.contacts[contact.ID]
	if !ok {
		return apperrors.NotFound("Emergency contact not found")
	}
	contact.ProfileID = current.ProfileID
	r.s.contacts[contact.ID] = *contact
	return nil
}

func (r *ContactStore) Delete(_ context.Context, id int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.contacts[id]; !ok {
		return apperrors.NotFound("Emergency contact not found")
	}
	delete(r.s.contacts, id)
	return nil
}
