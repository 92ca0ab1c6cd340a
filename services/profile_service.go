package services

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"tourist-safety/apperrors"
	"tourist-safety/models"
	"tourist-safety/utils"
)

type ProfileService struct {
	accounts      AccountStore
	tourists      TouristStore
	contacts      ContactStore
	authorities   AuthorityStore
	photos        PhotoStore
	maxUploadSize int64
	logger        *zap.Logger
}

func NewProfileService(stores Stores, photos PhotoStore, maxUploadSize int64, logger *zap.Logger) *ProfileService {
	return &ProfileService{
		accounts:      stores.Accounts,
		tourists:      stores.Tourists,
		contacts:      stores.Contacts,
		authorities:   stores.Authorities,
		photos:        photos,
		maxUploadSize: maxUploadSize,
		logger:        logger,
	}
}

func (s *ProfileService) requireAccount(ctx context.Context, userID int) error {
	if userID <= 0 {
		return apperrors.Validation("user_id", "user_id is required")
	}
	if _, err := s.accounts.FindByID(ctx, userID); err != nil {
		if apperrors.IsKind(err, apperrors.KindNotFound) {
			return apperrors.NotFound("User not found")
		}
		return err
	}
	return nil
}

func (s *ProfileService) withContacts(ctx context.Context, profile *models.TouristProfile) (*models.TouristProfile, error) {
	contacts, err := s.contacts.ListByProfile(ctx, profile.ID)
	if err != nil {
		return nil, err
	}
	profile.Contacts = contacts
	return profile, nil
}

func (s *ProfileService) GetTourist(ctx context.Context, userID int) (*models.TouristProfile, error) {
	if err := s.requireAccount(ctx, userID); err != nil {
		return nil, err
	}
	profile, err := s.tourists.FindByAccountID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.withContacts(ctx, profile)
}

func (s *ProfileService) GetAuthority(ctx context.Context, userID int) (*models.AuthorityProfile, error) {
	if err := s.requireAccount(ctx, userID); err != nil {
		return nil, err
	}
	return s.authorities.FindByAccountID(ctx, userID)
}

func (s *ProfileService) ListTourists(ctx context.Context) ([]models.TouristProfile, error) {
	profiles, err := s.tourists.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range profiles {
		if _, err := s.withContacts(ctx, &profiles[i]); err != nil {
			return nil, err
		}
	}
	return profiles, nil
}

func (s *ProfileService) GetTouristByID(ctx context.Context, id int) (*models.TouristProfile, error) {
	profile, err := s.tourists.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.withContacts(ctx, profile)
}

// passwordChange validates an optional password change and returns the new
// hash, or "" when no change was requested.
func passwordChange(password, confirm *string) (string, error) {
	if password == nil || *password == "" {
		return "", nil
	}
	if confirm == nil || *confirm != *password {
		return "", apperrors.Validation("confirm_password", "Passwords do not match")
	}
	if err := utils.CheckPasswordPolicy(*password); err != nil {
		return "", err
	}
	hashed, err := utils.HashPassword(*password)
	if err != nil {
		return "", apperrors.Internal("Failed to hash password", err)
	}
	return hashed, nil
}

// firstOf returns the first non-nil pointer; it lets a field accept an alias.
func firstOf(values ...*string) *string {
	for _, v := range values {
		if v != nil {
			return v
		}
	}
	return nil
}

func setTrimmed(dst *string, src *string) {
	if src != nil {
		*dst = strings.TrimSpace(*src)
	}
}

func setDate(field string, dst **models.Date, src *string) error {
	if src == nil {
		return nil
	}
	if strings.TrimSpace(*src) == "" {
		*dst = nil
		return nil
	}
	d, err := models.ParseDate(*src)
	if err != nil {
		return apperrors.Validation(field, "Date must use the YYYY-MM-DD format")
	}
	*dst = d
	return nil
}

// UpdateTourist applies the non-nil fields of patch. A new photo replaces the
// old one, which is deleted only after the update is stored.
func (s *ProfileService) UpdateTourist(ctx context.Context, patch models.TouristProfilePatch, photo *models.Upload) (*models.TouristProfile, error) {
	if err := s.requireAccount(ctx, patch.UserID); err != nil {
		return nil, err
	}
	profile, err := s.tourists.FindByAccountID(ctx, patch.UserID)
	if err != nil {
		return nil, err
	}

	hashed, err := passwordChange(patch.Password, patch.ConfirmPassword)
	if err != nil {
		return nil, err
	}

	if patch.FullName != nil {
		name := strings.TrimSpace(*patch.FullName)
		if name == "" {
			return nil, apperrors.Validation("full_name", "Full name cannot be empty")
		}
		profile.Name = name
	}

	if patch.Email != nil {
		email := normalizeEmail(*patch.Email)
		if err := checkEmail("email", email); err != nil {
			return nil, err
		}
		if email != profile.Email {
			taken, err := s.tourists.EmailExists(ctx, email, profile.ID)
			if err != nil {
				return nil, err
			}
			if taken {
				return nil, apperrors.Duplicate("tourist", "email", "Tourist with this email already exists")
			}
			profile.Email = email
		}
	}

	setTrimmed(&profile.Phone, firstOf(patch.Phone, patch.PhoneNumber))
	setTrimmed(&profile.Country, patch.Country)
	setTrimmed(&profile.Nationality, patch.Nationality)
	setTrimmed(&profile.CurrentLocation, patch.CurrentLocation)
	setTrimmed(&profile.BlockchainID, patch.BlockchainID)
	setTrimmed(&profile.FromAddress, patch.FromAddress)
	setTrimmed(&profile.ToAddress, patch.ToAddress)
	setTrimmed(&profile.HotelName, patch.HotelName)
	setTrimmed(&profile.HotelAddress, patch.HotelAddress)

	if err := setDate("arrival_date", &profile.ArrivalDate, patch.ArrivalDate); err != nil {
		return nil, err
	}
	if err := setDate("departure_date", &profile.DepartureDate, patch.DepartureDate); err != nil {
		return nil, err
	}

	oldPhotoKey := ""
	newPhotoKey := ""
	if photo != nil {
		if err := utils.ValidateImage(photo.Filename, photo.Size, s.maxUploadSize); err != nil {
			return nil, err
		}
		stored, err := s.photos.Save(ctx, PhotoFolder, *photo)
		if err != nil {
			return nil, apperrors.Internal("Failed to store profile photo", err)
		}
		oldPhotoKey = profile.PhotoKey
		newPhotoKey = stored.Key
		profile.PhotoURL = stored.URL
		profile.PhotoKey = stored.Key
	}

	if err := s.tourists.Update(ctx, profile, hashed); err != nil {
		discardPhoto(ctx, s.photos, s.logger, newPhotoKey)
		return nil, err
	}
	discardPhoto(ctx, s.photos, s.logger, oldPhotoKey)

	s.logger.Info("tourist profile updated",
		zap.Int("profile_id", profile.ID),
		zap.Bool("password_changed", hashed != ""),
		zap.Bool("photo_changed", newPhotoKey != ""),
	)
	return s.withContacts(ctx, profile)
}

// UpdateAuthority applies the non-nil fields of patch. Verification status is
// never taken from the patch.
func (s *ProfileService) UpdateAuthority(ctx context.Context, patch models.AuthorityProfilePatch) (*models.AuthorityProfile, error) {
	if err := s.requireAccount(ctx, patch.UserID); err != nil {
		return nil, err
	}
	profile, err := s.authorities.FindByAccountID(ctx, patch.UserID)
	if err != nil {
		return nil, err
	}

	hashed, err := passwordChange(patch.Password, patch.ConfirmPassword)
	if err != nil {
		return nil, err
	}

	if patch.FullName != nil {
		name := strings.TrimSpace(*patch.FullName)
		if name == "" {
			return nil, apperrors.Validation("full_name", "Full name cannot be empty")
		}
		profile.FullName = name
	}

	if patch.OfficialEmail != nil {
		email := normalizeEmail(*patch.OfficialEmail)
		if err := checkEmail("official_email", email); err != nil {
			return nil, err
		}
		if email != profile.OfficialEmail {
			taken, err := s.authorities.EmailExists(ctx, email, profile.ID)
			if err != nil {
				return nil, err
			}
			if taken {
				return nil, apperrors.Duplicate("authority", "official_email", "Authority with this official email already exists")
			}
			profile.OfficialEmail = email
		}
	}

	if authorityID := firstOf(patch.AuthorityID, patch.OfficerID); authorityID != nil {
		id := strings.TrimSpace(*authorityID)
		if id == "" {
			return nil, apperrors.Validation("authority_id", "Authority ID cannot be empty")
		}
		if id != profile.AuthorityID {
			taken, err := s.authorities.AuthorityIDExists(ctx, id, profile.ID)
			if err != nil {
				return nil, err
			}
			if taken {
				return nil, apperrors.Duplicate("authority", "authority_id", "Authority ID already registered")
			}
			profile.AuthorityID = id
		}
	}

	setTrimmed(&profile.Phone, firstOf(patch.Phone, patch.PhoneNumber))
	if patch.AgencyName != nil {
		name := strings.TrimSpace(*patch.AgencyName)
		if name == "" {
			return nil, apperrors.Validation("agency_name", "Agency name cannot be empty")
		}
		profile.AgencyName = name
	}

	if err := s.authorities.Update(ctx, profile, hashed); err != nil {
		return nil, err
	}

	s.logger.Info("authority profile updated",
		zap.Int("profile_id", profile.ID),
		zap.Bool("password_changed", hashed != ""),
	)
	return profile, nil
}
