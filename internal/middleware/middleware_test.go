package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/200406-java-react-usf/Abraham-Selenke-p0/internal/config"
	"github.com/200406-java-react-usf/Abraham-Selenke-p0/internal/errs"
	"github.com/200406-java-react-usf/Abraham-Selenke-p0/internal/model"
	"github.com/200406-java-react-usf/Abraham-Selenke-p0/internal/server"
	"github.com/200406-java-react-usf/Abraham-Selenke-p0/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var authConfig = config.AuthConfig{
	SecretKey: "test-secret",
	Issuer:    "bankapi-test",
	TokenTTL:  time.Hour,
}

func newTestServer() *server.Server {
	logger := zerolog.Nop()
	return &server.Server{
		Config: &config.Config{
			Primary: config.Primary{Env: "test"},
			Server: config.ServerConfig{
				CORSAllowedOrigins: []string{"*"},
				RateLimit:          1,
			},
			Auth: authConfig,
		},
		Logger: &logger,
	}
}

func newTestRouter(s *server.Server) *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = NewGlobalMiddlewares(s).GlobalErrorHandler
	e.Use(RequestID(), NewContextEnhancer(s).EnhanceContext())
	return e
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestGlobalErrorHandler_TaxonomyError(t *testing.T) {
	e := newTestRouter(newTestServer())
	e.GET("/account/:id", func(c echo.Context) error {
		return errs.NewResourceNotFoundError("")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/account/7", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, "No resource found using provided parameters.", body["message"])
	assert.Equal(t, errs.UnspecifiedReason, body["reason"])
	assert.NotContains(t, body, "errors")
}

func TestGlobalErrorHandler_UnknownRoute(t *testing.T) {
	e := newTestRouter(newTestServer())

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nowhere", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Route not found", decodeError(t, rec)["reason"])
}

func TestGlobalErrorHandler_UnknownErrorIsInternal(t *testing.T) {
	e := newTestRouter(newTestServer())
	e.GET("/trans", func(c echo.Context) error {
		return assert.AnError
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/trans", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, "An unexpected error occurred.", body["message"])
	assert.NotContains(t, rec.Body.String(), assert.AnError.Error())
}

func TestRequestID(t *testing.T) {
	e := newTestRouter(newTestServer())
	e.GET("/status", func(c echo.Context) error {
		return c.String(http.StatusOK, GetRequestID(c))
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/status", nil))
	generated := rec.Header().Get(RequestIDHeader)
	assert.NotEmpty(t, generated)
	assert.Equal(t, generated, rec.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/status", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, "abc-123", rec.Header().Get(RequestIDHeader))
}

func TestAuthMiddleware(t *testing.T) {
	s := newTestServer()
	tokens := service.NewTokenService(authConfig)
	auth := NewAuthMiddleware(s, tokens)

	e := newTestRouter(s)
	e.GET("/users", func(c echo.Context) error {
		return c.String(http.StatusOK, GetUserID(c)+":"+GetUserRole(c))
	}, auth.RequireAuth, auth.RequireRole(model.AdminRole))

	adminToken, _, err := tokens.Generate(model.User{ID: 1, Username: "admin", Role: model.AdminRole})
	require.NoError(t, err)
	userToken, _, err := tokens.Generate(model.User{ID: 2, Username: "jdoe", Role: model.DefaultUserRole})
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		status int
		body   string
	}{
		{name: "missing header", header: "", status: http.StatusUnauthorized},
		{name: "wrong scheme", header: "Basic " + adminToken, status: http.StatusUnauthorized},
		{name: "garbage token", header: "Bearer not-a-token", status: http.StatusUnauthorized},
		{name: "wrong role", header: "Bearer " + userToken, status: http.StatusForbidden},
		{name: "admin", header: "Bearer " + adminToken, status: http.StatusOK, body: "1:admin"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/users", nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			rec := httptest.NewRecorder()

			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
			if tt.body != "" {
				assert.Equal(t, tt.body, rec.Body.String())
			}
		})
	}
}

func TestRateLimit(t *testing.T) {
	s := newTestServer()
	e := newTestRouter(s)
	e.POST("/users/auth", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}, NewRateLimitMiddleware(s).Limit())

	codes := make([]int, 0, 3)
	for range 3 {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/users/auth", nil))
		codes = append(codes, rec.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestGetLoggerWithoutEnhancer(t *testing.T) {
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	assert.NotNil(t, GetLogger(c))
	assert.Empty(t, GetUserID(c))
}
