package services

import (
	"context"
	"net/mail"
	"strings"
	"time"

	"go.uber.org/zap"

	"tourist-safety/apperrors"
	"tourist-safety/models"
	"tourist-safety/utils"
)

const PhotoFolder = "profiles"

type AuthConfig struct {
	JWTSecret     string
	JWTExpiry     time.Duration
	MaxUploadSize int64
}

type AuthService struct {
	accounts    AccountStore
	tourists    TouristStore
	authorities AuthorityStore
	photos      PhotoStore
	notifier    Notifier
	cfg         AuthConfig
	logger      *zap.Logger
}

func NewAuthService(stores Stores, photos PhotoStore, notifier Notifier, cfg AuthConfig, logger *zap.Logger) *AuthService {
	return &AuthService{
		accounts:    stores.Accounts,
		tourists:    stores.Tourists,
		authorities: stores.Authorities,
		photos:      photos,
		notifier:    notifier,
		cfg:         cfg,
		logger:      logger,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func checkEmail(field, email string) error {
	if email == "" {
		return apperrors.Validation(field, "Email is required")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return apperrors.Validation(field, "Enter a valid email address")
	}
	return nil
}

func required(field, value, label string) error {
	if value == "" {
		return apperrors.Validation(field, label+" is required")
	}
	return nil
}

// RegisterTourist creates an active account and its tourist profile. The
// photo is stored only after every other check passed, and removed again if
// the insert fails.
func (s *AuthService) RegisterTourist(ctx context.Context, req models.TouristRegisterRequest, photo *models.Upload) (*models.TouristRegistration, error) {
	req.FullName = strings.TrimSpace(req.FullName)
	req.Email = normalizeEmail(req.Email)

	if err := required("full_name", req.FullName, "Full name"); err != nil {
		return nil, err
	}
	if err := checkEmail("email", req.Email); err != nil {
		return nil, err
	}
	if err := utils.CheckPasswordPolicy(req.Password); err != nil {
		return nil, err
	}
	if photo == nil {
		return nil, apperrors.Validation("profile_photo", "Profile photo is required")
	}

	taken, err := s.accounts.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperrors.Duplicate("account", "email", "Email already registered")
	}

	taken, err = s.tourists.EmailExists(ctx, req.Email, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperrors.Duplicate("tourist", "email", "Tourist with this email already exists")
	}

	if err := utils.ValidateImage(photo.Filename, photo.Size, s.cfg.MaxUploadSize); err != nil {
		return nil, err
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.Internal("Failed to hash password", err)
	}

	stored, err := s.photos.Save(ctx, PhotoFolder, *photo)
	if err != nil {
		return nil, apperrors.Internal("Failed to store profile photo", err)
	}

	account := &models.Account{Email: req.Email, Password: hashed, IsActive: true}
	profile := &models.TouristProfile{
		Name:            req.FullName,
		Email:           req.Email,
		Phone:           strings.TrimSpace(req.Phone),
		Country:         strings.TrimSpace(req.Country),
		Nationality:     strings.TrimSpace(req.Nationality),
		CurrentLocation: strings.TrimSpace(req.CurrentLocation),
		PhotoURL:        stored.URL,
		PhotoKey:        stored.Key,
	}

	if err := s.tourists.CreateWithAccount(ctx, account, profile); err != nil {
		discardPhoto(ctx, s.photos, s.logger, stored.Key)
		return nil, err
	}

	s.logger.Info("tourist registered", zap.Int("user_id", account.ID), zap.Int("profile_id", profile.ID))

	return &models.TouristRegistration{
		UserID:    account.ID,
		ProfileID: profile.ID,
		Profile:   profile,
	}, nil
}

// RegisterAuthority creates an inactive account and an unverified profile.
// Only AdminService.VerifyAuthorities can make it usable.
func (s *AuthService) RegisterAuthority(ctx context.Context, req models.AuthorityRegisterRequest) (*models.AuthorityRegistration, error) {
	req.FullName = strings.TrimSpace(req.FullName)
	req.OfficialEmail = normalizeEmail(req.OfficialEmail)
	req.AgencyName = strings.TrimSpace(req.AgencyName)
	req.AuthorityID = strings.TrimSpace(req.AuthorityID)

	if err := required("full_name", req.FullName, "Full name"); err != nil {
		return nil, err
	}
	if err := checkEmail("official_email", req.OfficialEmail); err != nil {
		return nil, err
	}
	if err := utils.CheckPasswordPolicy(req.Password); err != nil {
		return nil, err
	}
	agencyType, ok := models.ParseAgencyType(req.AgencyType)
	if !ok {
		return nil, apperrors.Validation("agency_type", "Select a valid agency type")
	}
	if err := required("agency_name", req.AgencyName, "Agency name"); err != nil {
		return nil, err
	}
	if err := required("authority_id", req.AuthorityID, "Authority ID"); err != nil {
		return nil, err
	}

	taken, err := s.accounts.EmailExists(ctx, req.OfficialEmail)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperrors.Duplicate("account", "email", "Email already registered")
	}

	taken, err = s.authorities.EmailExists(ctx, req.OfficialEmail, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperrors.Duplicate("authority", "official_email", "Authority with this official email already exists")
	}

	taken, err = s.authorities.AuthorityIDExists(ctx, req.AuthorityID, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperrors.Duplicate("authority", "authority_id", "Authority ID already registered")
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.Internal("Failed to hash password", err)
	}

	account := &models.Account{Email: req.OfficialEmail, Password: hashed, IsActive: false}
	profile := &models.AuthorityProfile{
		FullName:      req.FullName,
		OfficialEmail: req.OfficialEmail,
		Phone:         strings.TrimSpace(req.Phone),
		AgencyType:    agencyType,
		AgencyName:    req.AgencyName,
		AuthorityID:   req.AuthorityID,
	}

	if err := s.authorities.CreateWithAccount(ctx, account, profile); err != nil {
		return nil, err
	}

	s.logger.Info("authority registered, awaiting verification",
		zap.Int("user_id", account.ID),
		zap.Int("profile_id", profile.ID),
		zap.String("agency_type", string(agencyType)),
	)
	if err := s.notifier.NotifyAuthorityPending(ctx, *profile); err != nil {
		s.logger.Warn("pending authority notification failed", zap.Int("profile_id", profile.ID), zap.Error(err))
	}

	return &models.AuthorityRegistration{
		UserID:    account.ID,
		ProfileID: profile.ID,
		Status:    models.StatusPendingVerification,
		Profile:   profile,
	}, nil
}

// authenticate returns the account whose password matches. Unknown emails and
// wrong passwords are indistinguishable to the caller.
func (s *AuthService) authenticate(ctx context.Context, email, password string) (*models.Account, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, apperrors.Validation("email", "Email and password are required")
	}

	account, err := s.accounts.FindByEmail(ctx, email)
	if err != nil {
		if apperrors.IsKind(err, apperrors.KindNotFound) {
			return nil, apperrors.Authentication("Invalid credentials")
		}
		return nil, err
	}

	if !utils.VerifyPassword(account.Password, password) {
		return nil, apperrors.Authentication("Invalid credentials")
	}
	return account, nil
}

func (s *AuthService) LoginTourist(ctx context.Context, req models.LoginRequest) (*models.LoginResult, error) {
	account, err := s.authenticate(ctx, req.LoginEmail(), req.Password)
	if err != nil {
		return nil, err
	}

	profile, err := s.tourists.FindByAccountID(ctx, account.ID)
	if err != nil {
		if apperrors.IsKind(err, apperrors.KindNotFound) {
			return nil, apperrors.NotRegistered("Not registered as tourist")
		}
		return nil, err
	}

	if !account.IsActive {
		return nil, apperrors.AccountInactive("Account is inactive")
	}

	token, err := utils.GenerateOpaqueToken()
	if err != nil {
		return nil, apperrors.Internal("Failed to generate token", err)
	}

	return &models.LoginResult{Token: token, User: account, Tourist: profile}, nil
}

// LoginAuthority checks, in order: credentials, authority profile,
// verification, then account activity.
func (s *AuthService) LoginAuthority(ctx context.Context, req models.LoginRequest) (*models.LoginResult, error) {
	account, err := s.authenticate(ctx, req.LoginEmail(), req.Password)
	if err != nil {
		return nil, err
	}

	profile, err := s.authorities.FindByAccountID(ctx, account.ID)
	if err != nil {
		if apperrors.IsKind(err, apperrors.KindNotFound) {
			return nil, apperrors.NotRegistered("Not registered as authority")
		}
		return nil, err
	}

	if !profile.IsVerified {
		return nil, apperrors.PendingVerification("Account pending verification")
	}
	if !account.IsActive {
		return nil, apperrors.AccountInactive("Account is inactive")
	}

	token, err := utils.GenerateOpaqueToken()
	if err != nil {
		return nil, apperrors.Internal("Failed to generate token", err)
	}

	return &models.LoginResult{
		Token:      token,
		User:       account,
		Authority:  profile,
		AgencyName: profile.AgencyName,
	}, nil
}

func (s *AuthService) AdminLogin(ctx context.Context, req models.LoginRequest) (*models.AdminLoginResult, error) {
	account, err := s.authenticate(ctx, req.LoginEmail(), req.Password)
	if err != nil {
		return nil, err
	}
	if !account.IsStaff {
		return nil, apperrors.Authentication("Invalid credentials")
	}
	if !account.IsActive {
		return nil, apperrors.AccountInactive("Account is inactive")
	}

	token, err := utils.GenerateAdminToken(s.cfg.JWTSecret, s.cfg.JWTExpiry, account.ID, account.Email)
	if err != nil {
		return nil, apperrors.Internal("Failed to generate token", err)
	}
	return &models.AdminLoginResult{Token: token, User: account}, nil
}

// discardPhoto deletes a stored photo, logging instead of failing.
func discardPhoto(ctx context.Context, photos PhotoStore, logger *zap.Logger, key string) {
	if key == "" {
		return
	}
	if err := photos.Delete(ctx, key); err != nil {
		logger.Warn("failed to delete stored photo", zap.String("key", key), zap.Error(err))
	}
}
