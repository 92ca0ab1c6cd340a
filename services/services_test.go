package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"tourist-safety/apperrors"
	"tourist-safety/mocks"
	"tourist-safety/models"
	"tourist-safety/repositories/memory"
)

const testJWTSecret = "test-secret"

// serviceSuite wires every service against a fresh in-memory store, with
// gomock doubles for the photo store and the notifier.
type serviceSuite struct {
	suite.Suite
	ctx      context.Context
	ctrl     *gomock.Controller
	store    *memory.Store
	stores   Stores
	photos   *mocks.MockPhotoStore
	notifier *mocks.MockNotifier

	auth      *AuthService
	profiles  *ProfileService
	contacts  *ContactService
	places    *PlaceService
	incidents *IncidentService
	admin     *AdminService
}

func (s *serviceSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.store = memory.NewStore()
	s.stores = Stores{
		Accounts:    s.store.Accounts(),
		Tourists:    s.store.Tourists(),
		Contacts:    s.store.Contacts(),
		Authorities: s.store.Authorities(),
		Places:      s.store.Places(),
		Incidents:   s.store.Incidents(),
	}
	s.photos = mocks.NewMockPhotoStore(s.ctrl)
	s.notifier = mocks.NewMockNotifier(s.ctrl)
	s.rebuild()
}

func (s *serviceSuite) rebuild() {
	logger := zap.NewNop()
	cfg := AuthConfig{JWTSecret: testJWTSecret, JWTExpiry: time.Hour, MaxUploadSize: 1024}
	s.auth = NewAuthService(s.stores, s.photos, s.notifier, cfg, logger)
	s.profiles = NewProfileService(s.stores, s.photos, cfg.MaxUploadSize, logger)
	s.contacts = NewContactService(s.stores, logger)
	s.places = NewPlaceService(s.stores.Places, logger)
	s.incidents = NewIncidentService(s.stores, s.notifier, logger)
	s.admin = NewAdminService(s.stores, s.photos, logger)
}

func ptr[T any](v T) *T {
	return &v
}

func photo(name string) *models.Upload {
	return &models.Upload{Filename: name, Size: 3, Content: strings.NewReader("img")}
}

func janeRoe() models.TouristRegisterRequest {
	return models.TouristRegisterRequest{
		FullName:    "Jane Roe",
		Email:       "jane@example.com",
		Password:    "Str0ngPass!",
		Phone:       "+15550001",
		Country:     "NZ",
		Nationality: "NZ",
	}
}

func officer() models.AuthorityRegisterRequest {
	return models.AuthorityRegisterRequest{
		FullName:      "Sam Officer",
		OfficialEmail: "sam@police.example.gov",
		Password:      "Str0ngPass!",
		AgencyType:    "Police",
		AgencyName:    "City Police",
		AuthorityID:   "BADGE-1",
	}
}

// expectPhotoSaved stubs one successful Save returning key.
func (s *serviceSuite) expectPhotoSaved(key string) {
	s.photos.EXPECT().
		Save(gomock.Any(), PhotoFolder, gomock.Any()).
		Return(&models.StoredFile{URL: "/uploads/" + key, Key: key}, nil)
}

func (s *serviceSuite) registerJane() *models.TouristRegistration {
	s.expectPhotoSaved("profiles/jane.png")
	reg, err := s.auth.RegisterTourist(s.ctx, janeRoe(), photo("jane.png"))
	s.Require().NoError(err)
	return reg
}

func (s *serviceSuite) registerOfficer() *models.AuthorityRegistration {
	s.notifier.EXPECT().NotifyAuthorityPending(gomock.Any(), gomock.Any()).Return(nil)
	reg, err := s.auth.RegisterAuthority(s.ctx, officer())
	s.Require().NoError(err)
	return reg
}

func (s *serviceSuite) assertKind(err error, kind apperrors.Kind) {
	s.T().Helper()
	s.Require().Error(err)
	s.Equal(kind, apperrors.KindOf(err), err.Error())
}

func (s *serviceSuite) assertField(err error, kind apperrors.Kind, field string) {
	s.T().Helper()
	s.assertKind(err, kind)
	var appErr *apperrors.Error
	s.Require().True(errors.As(err, &appErr))
	s.Equal(field, appErr.Field)
}
