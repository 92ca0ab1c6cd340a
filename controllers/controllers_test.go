package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"tourist-safety/apperrors"
	"tourist-safety/controllers"
	"tourist-safety/mocks"
	"tourist-safety/models"
	"tourist-safety/repositories/memory"
	"tourist-safety/routes"
	"tourist-safety/services"
)

const (
	testSecret   = "controller-test-secret"
	janePassword = "Str0ngPass!"
)

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
	Field   string          `json:"field"`
	Data    json.RawMessage `json:"data"`
}

type APISuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	store    *memory.Store
	stores   services.Stores
	photos   *mocks.MockPhotoStore
	notifier *mocks.MockNotifier
	router   *gin.Engine
}

func TestAPISuite(t *testing.T) {
	suite.Run(t, new(APISuite))
}

func (s *APISuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	s.ctrl = gomock.NewController(s.T())
	s.store = memory.NewStore()
	s.stores = services.Stores{
		Accounts:    s.store.Accounts(),
		Tourists:    s.store.Tourists(),
		Contacts:    s.store.Contacts(),
		Authorities: s.store.Authorities(),
		Places:      s.store.Places(),
		Incidents:   s.store.Incidents(),
	}
	s.photos = mocks.NewMockPhotoStore(s.ctrl)
	s.notifier = mocks.NewMockNotifier(s.ctrl)

	logger := zap.NewNop()
	authCfg := services.AuthConfig{JWTSecret: testSecret, JWTExpiry: time.Hour, MaxUploadSize: 1 << 20}
	handlers := routes.Handlers{
		Auth: controllers.NewAuthController(
			services.NewAuthService(s.stores, s.photos, s.notifier, authCfg, logger), "", logger),
		Profile: controllers.NewProfileController(
			services.NewProfileService(s.stores, s.photos, authCfg.MaxUploadSize, logger), "", logger),
		Contact:  controllers.NewContactController(services.NewContactService(s.stores, logger), logger),
		Place:    controllers.NewPlaceController(services.NewPlaceService(s.stores.Places, logger), logger),
		Incident: controllers.NewIncidentController(services.NewIncidentService(s.stores, s.notifier, logger), logger),
		Admin:    controllers.NewAdminController(services.NewAdminService(s.stores, s.photos, logger), logger),
	}

	s.router = gin.New()
	routes.SetupRoutes(s.router, handlers, routes.Options{JWTSecret: testSecret})
}

func (s *APISuite) do(req *http.Request) (*httptest.ResponseRecorder, envelope) {
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	var body envelope
	if w.Body.Len() > 0 {
		s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body), w.Body.String())
	}
	return w, body
}

func (s *APISuite) doJSON(method, path string, payload any, token string) (*httptest.ResponseRecorder, envelope) {
	var buf bytes.Buffer
	if payload != nil {
		s.Require().NoError(json.NewEncoder(&buf).Encode(payload))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return s.do(req)
}

func (s *APISuite) registerJane() models.TouristRegistration {
	s.photos.EXPECT().
		Save(gomock.Any(), services.PhotoFolder, gomock.Any()).
		Return(&models.StoredFile{URL: "/uploads/profiles/jane.png", Key: "profiles/jane.png"}, nil)

	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)
	for k, v := range map[string]string{
		"full_name": "Jane Roe",
		"email":     "Jane@Example.com",
		"password":  janePassword,
		"phone":     "+15550001",
		"country":   "NZ",
	} {
		s.Require().NoError(form.WriteField(k, v))
	}
	part, err := form.CreateFormFile("profile_photo", "jane.png")
	s.Require().NoError(err)
	_, err = part.Write([]byte("png-bytes"))
	s.Require().NoError(err)
	s.Require().NoError(form.Close())

	req := httptest.NewRequest(http.MethodPost, "/auth/tourist/register", &buf)
	req.Header.Set("Content-Type", form.FormDataContentType())

	w, body := s.do(req)
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	s.True(body.Success)

	var reg models.TouristRegistration
	s.Require().NoError(json.Unmarshal(body.Data, &reg))
	return reg
}

func (s *APISuite) registerOfficer() models.AuthorityRegistration {
	s.notifier.EXPECT().NotifyAuthorityPending(gomock.Any(), gomock.Any()).Return(nil)

	w, body := s.doJSON(http.MethodPost, "/auth/authority/register", models.AuthorityRegisterRequest{
		FullName:      "Sam Officer",
		OfficialEmail: "sam@police.example.gov",
		Password:      janePassword,
		AgencyType:    "Police",
		AgencyName:    "City Police",
		AuthorityID:   "BADGE-1",
	}, "")
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())

	var reg models.AuthorityRegistration
	s.Require().NoError(json.Unmarshal(body.Data, &reg))
	return reg
}

func (s *APISuite) adminToken() string {
	admin := services.NewAdminService(s.stores, s.photos, zap.NewNop())
	_, err := admin.CreateAdmin(context.Background(), "root@example.com", janePassword)
	s.Require().NoError(err)

	w, body := s.doJSON(http.MethodPost, "/auth/admin/login", models.LoginRequest{
		Email:    "root@example.com",
		Password: janePassword,
	}, "")
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	var result models.AdminLoginResult
	s.Require().NoError(json.Unmarshal(body.Data, &result))
	s.Require().NotEmpty(result.Token)
	return result.Token
}

func (s *APISuite) TestTouristRegisterAndLogin() {
	reg := s.registerJane()
	s.Equal("jane@example.com", reg.Profile.Email)
	s.Equal("http://example.com/uploads/profiles/jane.png", reg.Profile.PhotoURL)

	w, body := s.doJSON(http.MethodPost, "/auth/tourist/login", models.LoginRequest{
		Email:    "jane@example.com",
		Password: janePassword,
	}, "")
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	var login models.LoginResult
	s.Require().NoError(json.Unmarshal(body.Data, &login))
	s.NotEmpty(login.Token)
	s.Equal(reg.UserID, login.User.ID)
	s.Require().NotNil(login.Tourist)
	s.Equal("Jane Roe", login.Tourist.Name)
}

func (s *APISuite) TestTouristLoginWrongPassword() {
	s.registerJane()

	w, body := s.doJSON(http.MethodPost, "/auth/tourist/login", models.LoginRequest{
		Email:    "jane@example.com",
		Password: "WrongPass1!",
	}, "")
	s.Equal(http.StatusUnauthorized, w.Code)
	s.False(body.Success)
	s.Equal("authentication", body.Error)
}

func (s *APISuite) TestTouristRegisterWithoutPhoto() {
	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)
	s.Require().NoError(form.WriteField("full_name", "Jane Roe"))
	s.Require().NoError(form.WriteField("email", "jane@example.com"))
	s.Require().NoError(form.WriteField("password", janePassword))
	s.Require().NoError(form.Close())

	req := httptest.NewRequest(http.MethodPost, "/auth/tourist/register", &buf)
	req.Header.Set("Content-Type", form.FormDataContentType())

	w, body := s.do(req)
	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal("validation", body.Error)
	s.Equal("profile_photo", body.Field)
}

func (s *APISuite) TestAuthorityVerificationFlow() {
	reg := s.registerOfficer()
	s.Equal(models.StatusPendingVerification, reg.Status)

	creds := models.LoginRequest{OfficialEmail: "sam@police.example.gov", Password: janePassword}
	w, body := s.doJSON(http.MethodPost, "/auth/authority/login", creds, "")
	s.Equal(http.StatusForbidden, w.Code)
	s.Equal("pending_verification", body.Error)

	token := s.adminToken()

	w, body = s.doJSON(http.MethodGet, "/admin/authorities", nil, token)
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var pending []models.AuthorityProfile
	s.Require().NoError(json.Unmarshal(body.Data, &pending))
	s.Require().Len(pending, 1)

	w, body = s.doJSON(http.MethodPost, "/admin/authorities/verify",
		models.VerifyAuthoritiesRequest{IDs: []int{reg.ProfileID, 999}}, token)
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var result models.VerifyResult
	s.Require().NoError(json.Unmarshal(body.Data, &result))
	s.Equal(1, result.Count)
	s.Equal([]int{999}, result.NotFound)

	w, body = s.doJSON(http.MethodPost, "/auth/authority/login", creds, "")
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var login models.LoginResult
	s.Require().NoError(json.Unmarshal(body.Data, &login))
	s.NotEmpty(login.Token)
	s.Equal("City Police", login.AgencyName)
}

func (s *APISuite) TestAdminRoutesRequireAdminToken() {
	w, _ := s.doJSON(http.MethodGet, "/admin/authorities", nil, "")
	s.Equal(http.StatusUnauthorized, w.Code)

	w, _ = s.doJSON(http.MethodGet, "/admin/authorities", nil, "not-a-jwt")
	s.Equal(http.StatusUnauthorized, w.Code)
}

func (s *APISuite) TestGeofenceAcceptsNumericStrings() {
	ctx := context.Background()
	s.Require().NoError(s.store.Places().Create(ctx, &models.Place{
		Name: "City Hospital", PlaceType: models.PlaceHospital, Lat: 12.9716, Lng: 77.5946,
	}))
	s.Require().NoError(s.store.Places().Create(ctx, &models.Place{
		Name: "Far Museum", PlaceType: models.PlaceAttraction, Lat: 13.5, Lng: 78.1,
	}))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/geofence",
		bytes.NewBufferString(`{"lat":"12.9716","lng":77.5946}`))
	req.Header.Set("Content-Type", "application/json")
	s.router.ServeHTTP(w, req)
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	var body struct {
		NearbyPlaces []models.Place `json:"nearby_places"`
	}
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	s.Require().Len(body.NearbyPlaces, 1)
	s.Equal("City Hospital", body.NearbyPlaces[0].Name)
}

func (s *APISuite) TestGeofenceRejectsBadCoordinates() {
	w, body := s.doJSON(http.MethodPost, "/geofence", map[string]any{"lat": "north", "lng": 1}, "")
	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal(string(apperrors.KindInvalidInput), body.Error)
	s.Equal("lat", body.Field)
}

func (s *APISuite) TestSOSShowsUpInAlerts() {
	reg := s.registerJane()
	s.notifier.EXPECT().NotifySOS(gomock.Any(), gomock.Any()).Return(nil)

	w, body := s.doJSON(http.MethodPost, "/incidents/panic", map[string]any{
		"user_id": reg.UserID,
		"lat":     -36.8485,
		"lng":     174.7633,
	}, "")
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var alert models.SOSAlert
	s.Require().NoError(json.Unmarshal(body.Data, &alert))
	s.Equal(services.DefaultSOSTitle, alert.Title)
	s.False(alert.Resolved)

	w, body = s.doJSON(http.MethodGet, "/alerts", nil, "")
	s.Require().Equal(http.StatusOK, w.Code)
	var alerts []models.SOSAlert
	s.Require().NoError(json.Unmarshal(body.Data, &alerts))
	s.Require().Len(alerts, 1)
	s.Equal("Jane Roe", alerts[0].TouristName)
	s.Equal(alert.ID, alerts[0].ID)

	token := s.adminToken()
	w, _ = s.doJSON(http.MethodPatch, fmt.Sprintf("/admin/incidents/%d/resolve", alert.ID), nil, token)
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	w, body = s.doJSON(http.MethodGet, "/alerts", nil, "")
	s.Require().Equal(http.StatusOK, w.Code)
	alerts = nil
	s.Require().NoError(json.Unmarshal(body.Data, &alerts))
	s.Empty(alerts)
}

func (s *APISuite) TestContactsLifecycle() {
	reg := s.registerJane()

	w, body := s.doJSON(http.MethodPost, "/contacts", models.ContactRequest{
		ProfileID: reg.ProfileID, Name: "John Roe", Relation: "Brother", Phone: "+15550002",
	}, "")
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var contact models.EmergencyContact
	s.Require().NoError(json.Unmarshal(body.Data, &contact))

	w, body = s.doJSON(http.MethodPatch, fmt.Sprintf("/contacts/%d", contact.ID),
		map[string]string{"relation": "Sibling"}, "")
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	s.Require().NoError(json.Unmarshal(body.Data, &contact))
	s.Equal("Sibling", contact.Relation)
	s.Equal("John Roe", contact.Name)

	w, body = s.doJSON(http.MethodGet, fmt.Sprintf("/profile/tourist?user_id=%d", reg.UserID), nil, "")
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var profile models.TouristProfile
	s.Require().NoError(json.Unmarshal(body.Data, &profile))
	s.Len(profile.Contacts, 1)

	w, _ = s.doJSON(http.MethodDelete, fmt.Sprintf("/contacts/%d", contact.ID), nil, "")
	s.Equal(http.StatusOK, w.Code)
	w, body = s.doJSON(http.MethodGet, fmt.Sprintf("/contacts/%d", contact.ID), nil, "")
	s.Equal(http.StatusNotFound, w.Code)
	s.Equal("not_found", body.Error)
}

func (s *APISuite) TestNotFoundEnvelope() {
	w, body := s.doJSON(http.MethodGet, "/profile/tourist?user_id=42", nil, "")
	s.Equal(http.StatusNotFound, w.Code)
	s.False(body.Success)
	s.Equal("User not found", body.Message)
	s.Equal("not_found", body.Error)
}

func (s *APISuite) TestBadPathParameter() {
	w, body := s.doJSON(http.MethodGet, "/incidents/abc", nil, "")
	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal("id", body.Field)
}

func (s *APISuite) TestPlacesByType() {
	token := s.adminToken()

	w, _ := s.doJSON(http.MethodPost, "/admin/places", map[string]any{
		"name": "Harbour Clinic", "place_type": "hospital", "lat": 1.0, "lng": 2.0,
	}, token)
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())

	w, body := s.doJSON(http.MethodGet, "/places?type=hospital", nil, "")
	s.Require().Equal(http.StatusOK, w.Code)
	var places []models.Place
	s.Require().NoError(json.Unmarshal(body.Data, &places))
	s.Len(places, 1)

	w, body = s.doJSON(http.MethodGet, "/places?type=casino", nil, "")
	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal("type", body.Field)
}
