package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	domainerrors "gravity/internal/domain/errors"
	mockUC "gravity/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestWebhookHandler(t *testing.T) (*WebhookHandler, *mockUC.MockWebhookUsecase) {
	t.Helper()

	webhookUC := mockUC.NewMockWebhookUsecase(t)
	handler := &WebhookHandler{
		webhookUC: webhookUC,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	return handler, webhookUC
}

func TestWebhookHandler_VerifySubscription(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		query      url.Values
		setup      func(uc *mockUC.MockWebhookUsecase)
		wantStatus int
		wantBody   string
	}{
		{
			name: "ValidHandshakeEchoesChallenge",
			query: url.Values{
				"hub.mode":         {"subscribe"},
				"hub.verify_token": {"hook-secret"},
				"hub.challenge":    {"15f7d1a91c1f40f8a748fd134752feb3"},
			},
			setup: func(uc *mockUC.MockWebhookUsecase) {
				uc.EXPECT().
					VerifySubscription("subscribe", "hook-secret", "15f7d1a91c1f40f8a748fd134752feb3").
					Return("15f7d1a91c1f40f8a748fd134752feb3", nil).
					Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"hub.challenge":"15f7d1a91c1f40f8a748fd134752feb3"}`,
		},
		{
			name: "TokenMismatchIsForbidden",
			query: url.Values{
				"hub.mode":         {"subscribe"},
				"hub.verify_token": {"wrong"},
				"hub.challenge":    {"abc"},
			},
			setup: func(uc *mockUC.MockWebhookUsecase) {
				uc.EXPECT().
					VerifySubscription("subscribe", "wrong", "abc").
					Return("", domainerrors.ErrWebhookTokenMismatch).
					Once()
			},
			wantStatus: http.StatusForbidden,
			wantBody:   `"WEBHOOK_TOKEN_MISMATCH"`,
		},
		{
			name: "MissingChallengeIsBadRequest",
			query: url.Values{
				"hub.mode":         {"subscribe"},
				"hub.verify_token": {"hook-secret"},
			},
			setup: func(uc *mockUC.MockWebhookUsecase) {
				uc.EXPECT().
					VerifySubscription("subscribe", "hook-secret", "").
					Return("", domainerrors.ErrWebhookMissingParams).
					Once()
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `"WEBHOOK_MISSING_PARAMS"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			handler, webhookUC := createTestWebhookHandler(t)
			tt.setup(webhookUC)

			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/webhooks/strava?"+tt.query.Encode(), nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			err := handler.VerifySubscription(c)
			require.NoError(t, err)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}

func TestWebhookHandler_ReceiveEvent_AcknowledgesDelivery(t *testing.T) {
	t.Parallel()

	handler, webhookUC := createTestWebhookHandler(t)

	body := `{"object_type":"activity","object_id":1234567890,"aspect_type":"create","owner_id":99887766}`
	webhookUC.EXPECT().
		ProcessEvent(mock.Anything, mock.Anything).
		Return(nil).
		Once()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/webhooks/strava", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.ReceiveEvent(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "EVENT_RECEIVED", rec.Body.String())
}

func TestWebhookHandler_ReceiveEvent_ProcessingFailureStillOK(t *testing.T) {
	t.Parallel()

	handler, webhookUC := createTestWebhookHandler(t)

	webhookUC.EXPECT().
		ProcessEvent(mock.Anything, mock.Anything).
		Return(domainerrors.ErrProviderUnavailable).
		Once()

	body := `{"object_type":"activity","object_id":42,"aspect_type":"create","owner_id":7}`

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/webhooks/strava", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.ReceiveEvent(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "EVENT_RECEIVED", rec.Body.String())
}

func TestWebhookHandler_ReceiveEvent_MalformedPayloadStillOK(t *testing.T) {
	t.Parallel()

	handler, _ := createTestWebhookHandler(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/webhooks/strava", strings.NewReader("not json"))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.ReceiveEvent(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "EVENT_RECEIVED", rec.Body.String())
}
