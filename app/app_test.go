package app

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"tourist-safety/config"
	"tourist-safety/models"
)

func testConfig(t *testing.T) *config.Config {
	return &config.Config{
		AppEnv:         "test",
		ServiceName:    "tourist-safety",
		StoreDriver:    "memory",
		JWTSecret:      "app-test-secret",
		JWTExpiry:      time.Hour,
		UploadDir:      t.TempDir(),
		MaxUploadSize:  1 << 20,
		PhotoStore:     "local",
		OriginURL:      "http://localhost:5173",
		RateLimitLogin: "100-M",
	}
}

func TestNewStoresRejectsUnknownDriver(t *testing.T) {
	cfg := testConfig(t)
	cfg.StoreDriver = "sqlite"

	_, _, err := NewStores(context.Background(), cfg, zap.NewNop())
	assert.ErrorContains(t, err, "unknown store driver")
}

func TestNewRejectsBadRateLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := testConfig(t)
	cfg.RateLimitLogin = "often"

	_, err := New(context.Background(), cfg, zap.NewNop())
	assert.ErrorContains(t, err, "RATE_LIMIT_LOGIN")
}

func TestAppServesUploadedPhotos(t *testing.T) {
	gin.SetMode(gin.TestMode)
	application, err := New(context.Background(), testConfig(t), zap.NewNop())
	require.NoError(t, err)
	defer application.Close()

	w := httptest.NewRecorder()
	application.Router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"service":"tourist-safety"`)

	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)
	require.NoError(t, form.WriteField("full_name", "Jane Roe"))
	require.NoError(t, form.WriteField("email", "jane@example.com"))
	require.NoError(t, form.WriteField("password", "Str0ngPass!"))
	part, err := form.CreateFormFile("profile_photo", "jane.png")
	require.NoError(t, err)
	_, err = part.Write([]byte("png-bytes"))
	require.NoError(t, err)
	require.NoError(t, form.Close())

	req := httptest.NewRequest(http.MethodPost, "/auth/tourist/register", &buf)
	req.Header.Set("Content-Type", form.FormDataContentType())
	w = httptest.NewRecorder()
	application.Router.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var body struct {
		Data models.TouristRegistration `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	photoURL, err := url.Parse(body.Data.Profile.PhotoURL)
	require.NoError(t, err)
	assert.Contains(t, photoURL.Path, "/uploads/profiles/")

	w = httptest.NewRecorder()
	application.Router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, photoURL.Path, nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "png-bytes", w.Body.String())

	w = httptest.NewRecorder()
	application.Router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "tourist_safety_")
}
