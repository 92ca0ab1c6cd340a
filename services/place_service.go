package services

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"tourist-safety/apperrors"
	"tourist-safety/geofence"
	"tourist-safety/models"
)

type PlaceService struct {
	places PlaceStore
	logger *zap.Logger
}

func NewPlaceService(places PlaceStore, logger *zap.Logger) *PlaceService {
	return &PlaceService{places: places, logger: logger}
}

func parsePlaceType(field, raw string) (models.PlaceType, error) {
	t := models.PlaceType(strings.ToLower(strings.TrimSpace(raw)))
	if !t.Valid() {
		return "", apperrors.Validation(field, "Place type must be hospital, restaurant or attraction")
	}
	return t, nil
}

// List returns every place, or only those of placeType when it is not empty.
func (s *PlaceService) List(ctx context.Context, placeType string) ([]models.Place, error) {
	var t models.PlaceType
	if strings.TrimSpace(placeType) != "" {
		var err error
		if t, err = parsePlaceType("type", placeType); err != nil {
			return nil, err
		}
	}
	places, err := s.places.List(ctx, t)
	if err != nil {
		return nil, err
	}
	if places == nil {
		places = []models.Place{}
	}
	return places, nil
}

func (s *PlaceService) Get(ctx context.Context, id int) (*models.Place, error) {
	return s.places.FindByID(ctx, id)
}

func (s *PlaceService) Create(ctx context.Context, req models.PlaceRequest) (*models.Place, error) {
	name := strings.TrimSpace(req.Name)
	if err := required("name", name, "Name"); err != nil {
		return nil, err
	}
	t, err := parsePlaceType("place_type", req.PlaceType)
	if err != nil {
		return nil, err
	}
	if req.Lat == nil {
		return nil, apperrors.Validation("lat", "Latitude is required")
	}
	if req.Lng == nil {
		return nil, apperrors.Validation("lng", "Longitude is required")
	}
	if err := geofence.CheckCoordinates(*req.Lat, *req.Lng); err != nil {
		return nil, err
	}

	place := &models.Place{
		Name:        name,
		PlaceType:   t,
		Description: strings.TrimSpace(req.Description),
		Lat:         *req.Lat,
		Lng:         *req.Lng,
		Address:     strings.TrimSpace(req.Address),
	}
	if err := s.places.Create(ctx, place); err != nil {
		return nil, err
	}
	s.logger.Info("place created", zap.Int("place_id", place.ID), zap.String("place_type", string(t)))
	return place, nil
}

func (s *PlaceService) Update(ctx context.Context, id int, patch models.PlacePatch) (*models.Place, error) {
	place, err := s.places.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if err := required("name", name, "Name"); err != nil {
			return nil, err
		}
		place.Name = name
	}
	if patch.PlaceType != nil {
		if place.PlaceType, err = parsePlaceType("place_type", *patch.PlaceType); err != nil {
			return nil, err
		}
	}
	setTrimmed(&place.Description, patch.Description)
	setTrimmed(&place.Address, patch.Address)
	if patch.Lat != nil {
		place.Lat = *patch.Lat
	}
	if patch.Lng != nil {
		place.Lng = *patch.Lng
	}
	if err := geofence.CheckCoordinates(place.Lat, place.Lng); err != nil {
		return nil, err
	}

	if err := s.places.Update(ctx, place); err != nil {
		return nil, err
	}
	return place, nil
}

func (s *PlaceService) Delete(ctx context.Context, id int) error {
	if err := s.places.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("place deleted", zap.Int("place_id", id))
	return nil
}

// FindNearby returns the places inside the square of half-width radius
// degrees around (lat, lng). Raw request values are parsed here so that
// malformed input surfaces as InvalidInput.
func (s *PlaceService) FindNearby(ctx context.Context, lat, lng, radius string) ([]models.Place, error) {
	q, err := geofence.ParseQuery(lat, lng, radius)
	if err != nil {
		return nil, err
	}
	candidates, err := s.places.FindInBox(ctx, q.Box())
	if err != nil {
		return nil, err
	}
	// The SQL store filters with BETWEEN and the memory store with its own
	// scan; running the rows through the same box keeps both inclusive on
	// every edge.
	return geofence.FindNearby(candidates, q), nil
}

func (s *PlaceService) ReverseGeocode(lat, lng string) (geofence.Address, error) {
	q, err := geofence.ParseQuery(lat, lng, "")
	if err != nil {
		return geofence.Address{}, err
	}
	return geofence.MockReverseGeocode(q.Lat, q.Lng), nil
}
