package memory

import (
	"context"

	"tourist-safety/apperrors"
	"tourist-safety/geofence"
	"tourist-safety/models"
)

type PlaceStore struct {
	s *Store
}

func (r *PlaceStore) List(_ context.Context, placeType models.PlaceType) ([]models.Place, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := []models.Place{}
	for _, p := range sortedValues(r.s.places) {
		if placeType == "" || p.PlaceType == placeType {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *PlaceStore) FindInBox(_ context.Context, box geofence.Box) ([]models.Place, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := []models.Place{}
	for _, p := range sortedValues(r.s.places) {
		if box.Contains(p.Lat, p.Lng) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *PlaceStore) FindByID(_ context.Context, id int) (*models.Place, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	p, ok := r.s.places[id]
	if !ok {
		return nil, apperrors.NotFound("Place not found")
	}
	return &p, nil
}

func (r *PlaceStore) Create(_ context.Context, place *models.Place) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	place.ID = r.s.next("places")
	r.s.places[place.ID] = *place
	return nil
}

func (r *PlaceStore) Update(_ context.Context, place *models.Place) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.places[place.ID]; !ok {
		return apperrors.NotFound("Place not found")
	}
	r.s.places[place.ID] = *place
	return nil
}

func (r *PlaceStore) Delete(_ context.Context, id int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.places[id]; !ok {
		return apperrors.NotFound("Place not found")
	}
	delete(r.s.places, id)
	return nil
}
