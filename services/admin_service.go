package services

import (
	"context"

	"go.uber.org/zap"

	"tourist-safety/apperrors"
	"tourist-safety/models"
	"tourist-safety/utils"
)

type AdminService struct {
	accounts    AccountStore
	tourists    TouristStore
	authorities AuthorityStore
	photos      PhotoStore
	logger      *zap.Logger
}

func NewAdminService(stores Stores, photos PhotoStore, logger *zap.Logger) *AdminService {
	return &AdminService{
		accounts:    stores.Accounts,
		tourists:    stores.Tourists,
		authorities: stores.Authorities,
		photos:      photos,
		logger:      logger,
	}
}

// ListAuthorities filters by verification status: pending (default),
// verified or all.
func (s *AdminService) ListAuthorities(ctx context.Context, status string) ([]models.AuthorityProfile, error) {
	filter, ok := models.ParseVerificationFilter(status)
	if !ok {
		return nil, apperrors.Validation("status", "status must be pending, verified or all")
	}
	profiles, err := s.authorities.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	if profiles == nil {
		profiles = []models.AuthorityProfile{}
	}
	return profiles, nil
}

// VerifyAuthorities verifies each profile and activates its account. Unknown
// ids are reported back rather than failing the whole batch.
func (s *AdminService) VerifyAuthorities(ctx context.Context, ids []int) (*models.VerifyResult, error) {
	if len(ids) == 0 {
		return nil, apperrors.Validation("ids", "ids must contain at least one authority id")
	}

	result := &models.VerifyResult{Verified: []int{}, NotFound: []int{}}
	seen := make(map[int]bool, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true

		if err := s.authorities.Verify(ctx, id); err != nil {
			if apperrors.IsKind(err, apperrors.KindNotFound) {
				result.NotFound = append(result.NotFound, id)
				continue
			}
			return nil, err
		}
		result.Verified = append(result.Verified, id)
	}
	result.Count = len(result.Verified)

	s.logger.Info("authorities verified",
		zap.Ints("verified", result.Verified),
		zap.Ints("not_found", result.NotFound),
	)
	return result, nil
}

// DeleteTourist removes the profile together with its account, contacts and
// incidents, then its stored photo.
func (s *AdminService) DeleteTourist(ctx context.Context, id int) error {
	profile, err := s.tourists.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.tourists.Delete(ctx, id); err != nil {
		return err
	}
	discardPhoto(ctx, s.photos, s.logger, profile.PhotoKey)
	s.logger.Info("tourist deleted", zap.Int("profile_id", id), zap.Int("user_id", profile.AccountID))
	return nil
}

// CreateAdmin creates an active staff account.
func (s *AdminService) CreateAdmin(ctx context.Context, email, password string) (*models.Account, error) {
	email = normalizeEmail(email)
	if err := checkEmail("email", email); err != nil {
		return nil, err
	}
	if err := utils.CheckPasswordPolicy(password); err != nil {
		return nil, err
	}

	taken, err := s.accounts.EmailExists(ctx, email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperrors.Duplicate("account", "email", "Email already registered")
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return nil, apperrors.Internal("Failed to hash password", err)
	}
	account := &models.Account{Email: email, Password: hashed, IsActive: true, IsStaff: true}
	if err := s.accounts.Create(ctx, account); err != nil {
		return nil, err
	}
	s.logger.Info("admin account created", zap.Int("user_id", account.ID))
	return account, nil
}
