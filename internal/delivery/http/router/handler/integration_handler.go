package handler

import (
	"log/slog"
	"net/http"

	"finsight/internal/delivery/http/middleware"
	"finsight/internal/delivery/http/response"
	"finsight/internal/domain/entity"
	"finsight/internal/domain/repository"
	"finsight/internal/domain/service"
	"finsight/internal/usecase"
	"finsight/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// IntegrationHandlerParams holds dependencies for IntegrationHandler, injected by Fx.
type IntegrationHandlerParams struct {
	fx.In

	ConnectionUC usecase.ConnectionUsecase
	SyncUC       usecase.SyncUsecase
	Logger       *slog.Logger
}

// IntegrationHandler holds dependencies for provider integration handlers
type IntegrationHandler struct {
	connectionUC usecase.ConnectionUsecase
	syncUC       usecase.SyncUsecase
	logger       *slog.Logger
}

// NewIntegrationHandler is the constructor for IntegrationHandler
func NewIntegrationHandler(params IntegrationHandlerParams) *IntegrationHandler {
	return &IntegrationHandler{
		connectionUC: params.ConnectionUC,
		syncUC:       params.SyncUC,
		logger:       params.Logger,
	}
}

// ListConnections reports the connection state of every provider
func (h *IntegrationHandler) ListConnections(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	connections, err := h.connectionUC.ListConnections(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, connections)
}

// Connect starts the authorization flow for a provider
func (h *IntegrationHandler) Connect(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	provider := entity.ProviderType(c.Param("provider"))

	url, err := h.connectionUC.BeginConnect(c.Request().Context(), userID, provider)
	if err != nil {
		if errors.Is(err, impl.ErrUnknownProvider) {
			return response.NotFound(c, "PROVIDER_UNKNOWN", "Unknown provider")
		}

		return response.HandleAppError(c, err)
	}

	// Redirect directly when the client asks for it, otherwise hand the URL back
	if c.QueryParam("redirect") == "true" {
		return c.Redirect(http.StatusTemporaryRedirect, url)
	}

	return response.Success(c, http.StatusOK, map[string]string{
		"authorization_url": url,
	})
}

// Callback finishes the authorization flow from the provider redirect
func (h *IntegrationHandler) Callback(c echo.Context) error {
	state := c.QueryParam("state")
	code := c.QueryParam("code")
	if state == "" || code == "" {
		return response.BadRequest(c, "INVALID_CALLBACK", "Missing state or code parameter")
	}

	info, err := h.connectionUC.CompleteConnect(c.Request().Context(), state, code)
	if err != nil {
		if errors.Is(err, impl.ErrInvalidState) {
			return response.BadRequest(c, "OAUTH_STATE_INVALID", "Authorization state is invalid or expired")
		}

		var authErr *service.AuthError
		if errors.As(err, &authErr) {
			return response.BadRequest(c, "OAUTH_CODE_REJECTED", "The provider rejected the authorization code")
		}

		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, info)
}

// Disconnect removes a provider connection
func (h *IntegrationHandler) Disconnect(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	provider := entity.ProviderType(c.Param("provider"))

	if err := h.connectionUC.Disconnect(c.Request().Context(), userID, provider); err != nil {
		if errors.Is(err, impl.ErrUnknownProvider) {
			return response.NotFound(c, "PROVIDER_UNKNOWN", "Unknown provider")
		}
		if errors.Is(err, repository.ErrCredentialNotFound) {
			return response.NotFound(c, "PROVIDER_NOT_CONNECTED", "Provider is not connected")
		}

		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{
		"provider": string(provider),
		"status":   "disconnected",
	})
}

// SyncAll triggers a sync run across every provider
func (h *IntegrationHandler) SyncAll(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	output, err := h.syncUC.SyncAll(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, output)
}

// SyncProvider triggers a sync run for a single provider
func (h *IntegrationHandler) SyncProvider(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	provider := entity.ProviderType(c.Param("provider"))

	result, err := h.syncUC.SyncProvider(c.Request().Context(), userID, provider)
	if err != nil {
		if errors.Is(err, impl.ErrUnknownProvider) {
			return response.NotFound(c, "PROVIDER_UNKNOWN", "Unknown provider")
		}

		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}
