package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"finsight/config"
	"finsight/internal/delivery/http/middleware"
	"finsight/internal/infra/oauth"
	mockrepository "finsight/internal/mocks/repository"
	"finsight/internal/usecase/impl"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

// newConnectHandler wires a real connection use case (real state store, real
// token service against test config) behind the handler, the same path a
// request takes in production minus the HTTP server.
func newConnectHandler(t *testing.T) *IntegrationHandler {
	cfg := &config.Config{
		Integrations: &config.IntegrationsConfig{
			Sales: &config.ProviderConfig{
				ClientID:    "test_client_id",
				AuthURL:     "https://auth.sales.example.com/authorize",
				RedirectURI: "http://localhost:8080/integrations/callback",
				Scopes:      "orders:read",
			},
		},
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tokenService := oauth.NewTokenService(cfg, logger)
	credentialRepo := mockrepository.NewMockCredentialRepository(t)
	connectionUC := impl.NewConnectionService(tokenService, credentialRepo, oauth.NewStateStore(), logger)

	return &IntegrationHandler{
		connectionUC: connectionUC,
		logger:       logger,
	}
}

func newEchoContext(method, target string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestIntegrationHandler_Connect_Integration(t *testing.T) {
	handler := newConnectHandler(t)

	c, rec := newEchoContext(http.MethodGet, "/integrations/sales/connect")
	c.SetParamNames("provider")
	c.SetParamValues("sales")
	c.Set(middleware.KeyUserID, uuid.New())

	err := handler.Connect(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, "authorization_url")
	assert.Contains(t, body, "client_id=test_client_id")
	assert.Contains(t, body, "redirect_uri=http%3A%2F%2Flocalhost%3A8080%2Fintegrations%2Fcallback")
	assert.Contains(t, body, "state=")
}

func TestIntegrationHandler_Connect_RedirectMode(t *testing.T) {
	handler := newConnectHandler(t)

	c, rec := newEchoContext(http.MethodGet, "/integrations/sales/connect?redirect=true")
	c.SetParamNames("provider")
	c.SetParamValues("sales")
	c.Set(middleware.KeyUserID, uuid.New())

	err := handler.Connect(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusTemporaryRedirect, rec.Code)
	assert.Contains(t, rec.Header().Get(echo.HeaderLocation), "auth.sales.example.com")
}

func TestIntegrationHandler_Connect_UnknownProvider(t *testing.T) {
	handler := newConnectHandler(t)

	c, rec := newEchoContext(http.MethodGet, "/integrations/myspace/connect")
	c.SetParamNames("provider")
	c.SetParamValues("myspace")
	c.Set(middleware.KeyUserID, uuid.New())

	err := handler.Connect(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "PROVIDER_UNKNOWN")
}

func TestIntegrationHandler_Connect_MissingUser(t *testing.T) {
	handler := newConnectHandler(t)

	c, rec := newEchoContext(http.MethodGet, "/integrations/sales/connect")
	c.SetParamNames("provider")
	c.SetParamValues("sales")

	err := handler.Connect(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestIntegrationHandler_Callback_MissingParams(t *testing.T) {
	handler := newConnectHandler(t)

	c, rec := newEchoContext(http.MethodGet, "/integrations/callback?code=abc")

	err := handler.Callback(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_CALLBACK")
}

func TestIntegrationHandler_Callback_UnknownState(t *testing.T) {
	handler := newConnectHandler(t)

	c, rec := newEchoContext(http.MethodGet, "/integrations/callback?state=never-issued&code=abc")

	err := handler.Callback(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "OAUTH_STATE_INVALID")
}
