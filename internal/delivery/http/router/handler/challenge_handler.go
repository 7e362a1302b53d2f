package handler

import (
	"log/slog"
	"net/http"

	"gravity/internal/delivery/http/response"
	"gravity/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ChallengeHandlerParams holds dependencies for ChallengeHandler, injected by Fx.
type ChallengeHandlerParams struct {
	fx.In

	ChallengeUC usecase.ChallengeUsecase
	Logger      *slog.Logger
}

// ChallengeHandler holds dependencies for challenge handlers
type ChallengeHandler struct {
	challengeUC usecase.ChallengeUsecase
	logger      *slog.Logger
}

// NewChallengeHandler is the constructor for ChallengeHandler
func NewChallengeHandler(params ChallengeHandlerParams) *ChallengeHandler {
	return &ChallengeHandler{
		challengeUC: params.ChallengeUC,
		logger:      params.Logger,
	}
}

// JoinRequest represents the request body for joining a challenge
type JoinRequest struct {
	Code string `json:"code" validate:"required"`
}

// Create handles challenge creation
func (h *ChallengeHandler) Create(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	var input usecase.ChallengeInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid challenge input")
	}

	if err := c.Validate(&input); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	challenge, err := h.challengeUC.Create(c.Request().Context(), userID, &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, challenge, "Challenge created")
}

// Join links the caller to the challenge matching the join code
func (h *ChallengeHandler) Join(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	var req JoinRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid join input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	challenge, err := h.challengeUC.Join(c.Request().Context(), userID, req.Code)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, challenge, "Joined challenge")
}

// Get returns one challenge
func (h *ChallengeHandler) Get(c echo.Context) error {
	challengeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid challenge ID")
	}

	challenge, err := h.challengeUC.Get(c.Request().Context(), challengeID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, challenge, "Challenge retrieved")
}

// JoinQR renders the challenge join code as a PNG image
func (h *ChallengeHandler) JoinQR(c echo.Context) error {
	challengeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid challenge ID")
	}

	png, err := h.challengeUC.JoinQR(c.Request().Context(), challengeID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// Leaderboard returns the computed standings of a challenge
func (h *ChallengeHandler) Leaderboard(c echo.Context) error {
	challengeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid challenge ID")
	}

	entries, err := h.challengeUC.Leaderboard(c.Request().Context(), challengeID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, entries, "Leaderboard computed")
}
