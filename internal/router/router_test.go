package router

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/200406-java-react-usf/Abraham-Selenke-p0/internal/config"
	"github.com/200406-java-react-usf/Abraham-Selenke-p0/internal/handler"
	"github.com/200406-java-react-usf/Abraham-Selenke-p0/internal/middleware"
	"github.com/200406-java-react-usf/Abraham-Selenke-p0/internal/server"
	"github.com/200406-java-react-usf/Abraham-Selenke-p0/internal/service"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func newTestRouter() http.Handler {
	logger := zerolog.Nop()
	s := &server.Server{
		Config: &config.Config{
			Primary: config.Primary{Env: "test"},
			Server:  config.ServerConfig{CORSAllowedOrigins: []string{"*"}},
			Auth:    config.AuthConfig{SecretKey: "secret", Issuer: "bankapi", TokenTTL: time.Hour},
		},
		Logger: &logger,
	}

	base := handler.NewHandler(s)
	handlers := &handler.Handlers{
		Health:       handler.NewHealthHandlerWithChecks(base),
		OpenAPI:      handler.NewOpenAPIHandler(base),
		Users:        handler.NewUserHandler(base, nil, nil),
		Accounts:     handler.NewAccountHandler(base, nil),
		Transactions: handler.NewTransactionHandler(base, nil),
	}
	tokens := service.NewTokenService(s.Config.Auth)

	return NewRouter(s, handlers, middleware.NewMiddlewares(s, tokens))
}

func TestNewRouter_Routes(t *testing.T) {
	router := newTestRouter()

	tests := []struct {
		method string
		target string
		status int
	}{
		{http.MethodGet, "/status", http.StatusOK},
		{http.MethodGet, "/docs/openapi.json", http.StatusOK},
		{http.MethodGet, "/users", http.StatusUnauthorized},
		{http.MethodGet, "/nowhere", http.StatusNotFound},
		{http.MethodPatch, "/account", http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.target, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.target, nil))

			assert.Equal(t, tt.status, rec.Code)
			assert.NotEmpty(t, rec.Header().Get(middleware.RequestIDHeader))
		})
	}
}
