package services

import (
	"context"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"tourist-safety/apperrors"
	"tourist-safety/geofence"
	"tourist-safety/models"
)

const (
	DefaultSOSTitle       = "SOS Alert"
	DefaultSOSDescription = "Emergency SOS Alert"
)

type IncidentService struct {
	accounts  AccountStore
	tourists  TouristStore
	incidents IncidentStore
	notifier  Notifier
	logger    *zap.Logger
}

func NewIncidentService(stores Stores, notifier Notifier, logger *zap.Logger) *IncidentService {
	return &IncidentService{
		accounts:  stores.Accounts,
		tourists:  stores.Tourists,
		incidents: stores.Incidents,
		notifier:  notifier,
		logger:    logger,
	}
}

func requireCoordinates(lat, lng *float64) error {
	if lat == nil {
		return apperrors.Validation("lat", "lat is required")
	}
	if lng == nil {
		return apperrors.Validation("lng", "lng is required")
	}
	return geofence.CheckCoordinates(*lat, *lng)
}

func orDefault(value, fallback string) string {
	if v := strings.TrimSpace(value); v != "" {
		return v
	}
	return fallback
}

// CreateSOS records an unresolved incident for the tourist owning userID and
// announces it. Notification failures are logged and do not fail the call.
func (s *IncidentService) CreateSOS(ctx context.Context, req models.SOSRequest) (*models.SOSAlert, error) {
	if req.UserID <= 0 {
		return nil, apperrors.Validation("user_id", "user_id is required")
	}
	if err := requireCoordinates(req.Lat, req.Lng); err != nil {
		return nil, err
	}

	if _, err := s.accounts.FindByID(ctx, req.UserID); err != nil {
		if apperrors.IsKind(err, apperrors.KindNotFound) {
			return nil, apperrors.NotFound("User not found")
		}
		return nil, err
	}
	profile, err := s.tourists.FindByAccountID(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	incident := &models.Incident{
		ProfileID:   profile.ID,
		Title:       orDefault(req.Title, DefaultSOSTitle),
		Description: orDefault(req.Description, DefaultSOSDescription),
		Lat:         *req.Lat,
		Lng:         *req.Lng,
		Evidence:    strings.TrimSpace(req.Evidence),
	}
	if err := s.incidents.Create(ctx, incident); err != nil {
		return nil, err
	}

	alert := &models.SOSAlert{
		Incident:     *incident,
		TouristName:  profile.Name,
		TouristEmail: profile.Email,
		TouristPhone: profile.Phone,
	}
	s.logger.Warn("sos alert raised",
		zap.Int("incident_id", incident.ID),
		zap.Int("profile_id", profile.ID),
		zap.Float64("lat", incident.Lat),
		zap.Float64("lng", incident.Lng),
	)
	if err := s.notifier.NotifySOS(ctx, *alert); err != nil {
		s.logger.Error("sos notification failed", zap.Int("incident_id", incident.ID), zap.Error(err))
	}
	return alert, nil
}

// Report records an incident against a profile directly.
func (s *IncidentService) Report(ctx context.Context, req models.IncidentRequest) (*models.Incident, error) {
	if req.ProfileID <= 0 {
		return nil, apperrors.Validation("profile_id", "profile_id is required")
	}
	title := strings.TrimSpace(req.Title)
	if err := required("title", title, "Title"); err != nil {
		return nil, err
	}
	if err := requireCoordinates(req.Lat, req.Lng); err != nil {
		return nil, err
	}

	incident := &models.Incident{
		ProfileID:   req.ProfileID,
		Title:       title,
		Description: strings.TrimSpace(req.Description),
		Lat:         *req.Lat,
		Lng:         *req.Lng,
		Evidence:    strings.TrimSpace(req.Evidence),
	}
	if err := s.incidents.Create(ctx, incident); err != nil {
		return nil, err
	}
	s.logger.Info("incident reported", zap.Int("incident_id", incident.ID), zap.Int("profile_id", incident.ProfileID))
	return incident, nil
}

// List returns incidents newest first. resolved may be "", "true" or "false".
func (s *IncidentService) List(ctx context.Context, resolved string) ([]models.Incident, error) {
	var filter *bool
	if raw := strings.TrimSpace(resolved); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, apperrors.Validation("resolved", "resolved must be true or false")
		}
		filter = &v
	}
	return s.incidents.List(ctx, filter)
}

func (s *IncidentService) Get(ctx context.Context, id int) (*models.Incident, error) {
	return s.incidents.FindByID(ctx, id)
}

// ListAlerts returns the unresolved incidents, newest first.
func (s *IncidentService) ListAlerts(ctx context.Context) ([]models.SOSAlert, error) {
	return s.incidents.ListAlerts(ctx)
}

func (s *IncidentService) Resolve(ctx context.Context, id int) (*models.Incident, error) {
	incident, err := s.incidents.Resolve(ctx, id)
	if err != nil {
		return nil, err
	}
	s.logger.Info("incident resolved", zap.Int("incident_id", id))
	return incident, nil
}
