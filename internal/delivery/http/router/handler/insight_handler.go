package handler

import (
	"log/slog"
	"net/http"

	"finsight/internal/delivery/http/middleware"
	"finsight/internal/delivery/http/response"
	"finsight/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// InsightHandlerParams holds dependencies for InsightHandler, injected by Fx.
type InsightHandlerParams struct {
	fx.In

	InsightUC usecase.InsightUsecase
	Logger    *slog.Logger
}

// InsightHandler holds dependencies for insight generation handlers
type InsightHandler struct {
	insightUC usecase.InsightUsecase
	logger    *slog.Logger
}

// NewInsightHandler is the constructor for InsightHandler
func NewInsightHandler(params InsightHandlerParams) *InsightHandler {
	return &InsightHandler{
		insightUC: params.InsightUC,
		logger:    params.Logger,
	}
}

// GenerateRequest represents the request body for insight generation
type GenerateRequest struct {
	Query string `json:"query" validate:"max=2000"`
}

// Generate answers a financial question from the user's recent data
func (h *InsightHandler) Generate(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req GenerateRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid insight input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	output, err := h.insightUC.Generate(c.Request().Context(), userID, req.Query)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, output)
}
