package memory

import (
	"context"
	"sort"

	"tourist-safety/apperrors"
	"tourist-safety/models"
)

type IncidentStore struct {
	s *Store
}

func (r *IncidentStore) Create(_ context.Context, incident *models.Incident) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.tourists[incident.ProfileID]; !ok {
		return apperrors.NotFound("Tourist profile not found")
	}
	incident.ID = r.s.next("incidents")
	incident.CreatedAt = r.s.now()
	r.s.incidents[incident.ID] = *incident
	return nil
}

func (r *IncidentStore) FindByID(_ context.Context, id int) (*models.Incident, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	inc, ok := r.s.incidents[id]
	if !ok {
		return nil, apperrors.NotFound("Incident not found")
	}
	return &inc, nil
}

func (r *IncidentStore) List(_ context.Context, resolved *bool) ([]models.Incident, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := []models.Incident{}
	for _, inc := range r.s.incidents {
		if resolved == nil || inc.Resolved == *resolved {
			out = append(out, inc)
		}
	}
	sortNewestFirst(out)
	return out, nil
}

func (r *IncidentStore) ListAlerts(_ context.Context) ([]models.SOSAlert, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	open := []models.Incident{}
	for _, inc := range r.s.incidents {
		if !inc.Resolved {
			open = append(open, inc)
		}
	}
	sortNewestFirst(open)

	alerts := make([]models.SOSAlert, 0, len(open))
	for _, inc := range open {
		alert := models.SOSAlert{Incident: inc}
		if p, ok := r.s.tourists[inc.ProfileID]; ok {
			alert.TouristName = p.Name
			alert.TouristEmail = p.Email
			alert.TouristPhone = p.Phone
		}
		alerts = append(alerts, alert)
	}
	return alerts, nil
}

func (r *IncidentStore) Resolve(_ context.Context, id int) (*models.Incident, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	inc, ok := r.s.incidents[id]
	if !ok {
		return nil, apperrors.NotFound("Incident not found")
	}
	inc.Resolved = true
	r.s.incidents[id] = inc
	return &inc, nil
}

func sortNewestFirst(incidents []models.Incident) {
	sort.Slice(incidents, func(i, j int) bool {
		if incidents[i].CreatedAt.Equal(incidents[j].CreatedAt) {
			return incidents[i].ID > incidents[j].ID
		}
		return incidents[i].CreatedAt.After(incidents[j].CreatedAt)
	})
}
