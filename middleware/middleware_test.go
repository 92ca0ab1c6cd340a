package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"tourist-safety/utils"
)

const secret = "middleware-secret"

func init() {
	gin.SetMode(gin.TestMode)
}

func adminRouter() *gin.Engine {
	r := gin.New()
	r.GET("/admin/ping", AuthMiddleware(secret), AdminMiddleware(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": c.GetInt("user_id")})
	})
	return r
}

func get(r http.Handler, path string, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for k, v := range header {
		req.Header[k] = v
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func bearer(token string) http.Header {
	return http.Header{"Authorization": []string{"Bearer " + token}}
}

func TestAdminAuth(t *testing.T) {
	r := adminRouter()

	w := get(r, "/admin/ping", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = get(r, "/admin/ping", http.Header{"Authorization": []string{"Token abc"}})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = get(r, "/admin/ping", bearer("not-a-jwt"))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	token, err := utils.GenerateAdminToken(secret, time.Hour, 7, "root@example.com")
	require.NoError(t, err)
	w = get(r, "/admin/ping", bearer(token))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"user_id":7}`, w.Body.String())

	other, err := utils.GenerateAdminToken("another-secret", time.Hour, 7, "root@example.com")
	require.NoError(t, err)
	w = get(r, "/admin/ping", bearer(other))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminMiddlewareRejectsOtherRoles(t *testing.T) {
	claims := utils.Claims{
		UserID: 3,
		Email:  "jane@example.com",
		Role:   "tourist",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)

	w := get(adminRouter(), "/admin/ping", bearer(token))
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRateLimit(t *testing.T) {
	limit, err := RateLimit("2-M", zap.NewNop())
	require.NoError(t, err)

	r := gin.New()
	r.POST("/auth/tourist/login", limit, func(c *gin.Context) { c.Status(http.StatusOK) })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodPost, "/auth/tourist/login", nil)
		req.RemoteAddr = "203.0.113.5:1234"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)

	_, err = RateLimit("lots", zap.NewNop())
	assert.Error(t, err)
}

func TestMetrics(t *testing.T) {
	m := NewMetrics("tourist_safety")
	r := gin.New()
	r.Use(m.Middleware())
	r.GET("/places/:id", func(c *gin.Context) { c.Status(http.StatusNoContent) })
	r.GET("/metrics", gin.WrapH(m.Handler()))

	get(r, "/places/12", nil)

	w := get(r, "/metrics", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body, _ := io.ReadAll(w.Body)
	assert.Contains(t, string(body), `tourist_safety_http_requests_total{method="GET",route="/places/:id",status="204"} 1`)
}

func TestCORS(t *testing.T) {
	r := gin.New()
	r.Use(CORSMiddleware("https://app.example.com, https://ops.example.com"))
	r.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/health", nil)
	req.Header.Set("Origin", "https://ops.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "https://ops.example.com", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRequestLogger(t *testing.T) {
	r := gin.New()
	r.Use(RequestLogger(zap.NewNop()))
	r.GET("/boom", func(c *gin.Context) { c.Status(http.StatusInternalServerError) })

	w := get(r, "/boom", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
