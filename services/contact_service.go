package services

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"tourist-safety/apperrors"
	"tourist-safety/models"
)

type ContactService struct {
	contacts ContactStore
	tourists TouristStore
	logger   *zap.Logger
}

func NewContactService(stores Stores, logger *zap.Logger) *ContactService {
	return &ContactService{
		contacts: stores.Contacts,
		tourists: stores.Tourists,
		logger:   logger,
	}
}

func (s *ContactService) List(ctx context.Context, profileID int) ([]models.EmergencyContact, error) {
	if profileID <= 0 {
		return nil, apperrors.Validation("profile_id", "profile_id is required")
	}
	if _, err := s.tourists.FindByID(ctx, profileID); err != nil {
		return nil, err
	}
	contacts, err := s.contacts.ListByProfile(ctx, profileID)
	if err != nil {
		return nil, err
	}
	if contacts == nil {
		contacts = []models.EmergencyContact{}
	}
	return contacts, nil
}

func (s *ContactService) Create(ctx context.Context, req models.ContactRequest) (*models.EmergencyContact, error) {
	contact := &models.EmergencyContact{
		ProfileID: req.ProfileID,
		Name:      strings.TrimSpace(req.Name),
		Relation:  strings.TrimSpace(req.Relation),
		Phone:     strings.TrimSpace(req.Phone),
	}
	if contact.ProfileID <= 0 {
		return nil, apperrors.Validation("profile_id", "profile_id is required")
	}
	if err := required("name", contact.Name, "Name"); err != nil {
		return nil, err
	}
	if err := required("phone", contact.Phone, "Phone"); err != nil {
		return nil, err
	}

	if err := s.contacts.Create(ctx, contact); err != nil {
		return nil, err
	}
	s.logger.Info("emergency contact added", zap.Int("contact_id", contact.ID), zap.Int("profile_id", contact.ProfileID))
	return contact, nil
}

func (s *ContactService) Get(ctx context.Context, id int) (*models.EmergencyContact, error) {
	return s.contacts.FindByID(ctx, id)
}

func (s *ContactService) Update(ctx context.Context, id int, patch models.ContactPatch) (*models.EmergencyContact, error) {
	contact, err := s.contacts.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if err := required("name", name, "Name"); err != nil {
			return nil, err
		}
		contact.Name = name
	}
	if patch.Phone != nil {
		phone := strings.TrimSpace(*patch.Phone)
		if err := required("phone", phone, "Phone"); err != nil {
			return nil, err
		}
		contact.Phone = phone
	}
	setTrimmed(&contact.Relation, patch.Relation)

	if err := s.contacts.Update(ctx, contact); err != nil {
		return nil, err
	}
	return contact, nil
}

func (s *ContactService) Delete(ctx context.Context, id int) error {
	return s.contacts.Delete(ctx, id)
}
