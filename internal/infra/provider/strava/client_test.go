package strava

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gravity/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{}
	cfg.Provider = &config.ProviderConfig{
		ClientID:     "42",
		ClientSecret: "secret",
		TokenURL:     server.URL + "/oauth/token",
		APIBaseURL:   server.URL + "/api/v3",
		Timeout:      2 * time.Second,
	}

	return NewClient(cfg).(*Client), server
}

func TestExchangeCode_Success(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "authorization_code", body["grant_type"])
		assert.Equal(t, "the-code", body["code"])

		json.NewEncoder(w).Encode(map[string]any{
			"access_token":  "at-1",
			"refresh_token": "rt-1",
			"expires_at":    1767225600,
			"scope":         "activity:read_all",
			"athlete":       map[string]any{"id": 7117},
		})
	})

	pair, err := client.ExchangeCode(context.Background(), "the-code")

	require.NoError(t, err)
	assert.Equal(t, "at-1", pair.AccessToken)
	assert.Equal(t, "rt-1", pair.RefreshToken)
	assert.Equal(t, int64(1767225600), pair.ExpiresAt)
	assert.Equal(t, "7117", pair.AthleteID)
}

func TestExchangeCode_ProviderErrorField(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"errors": []map[string]string{{"field": "code", "code": "invalid"}},
		})
	})

	_, err := client.ExchangeCode(context.Background(), "bad-code")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "provider rejected token request")
}

// A refresh response without an access token is terminal for the
// operation; the sentinel lets the token manager keep its stored pair.
func TestRefreshTokens_MissingAccessToken(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{})
	})

	_, err := client.RefreshTokens(context.Background(), "rt-stale")

	require.ErrorIs(t, err, ErrNoAccessToken)
}

func TestFetchActivity_Success(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v3/activities/12345", r.URL.Path)
		assert.Equal(t, "Bearer at-1", r.Header.Get("Authorization"))

		json.NewEncoder(w).Encode(map[string]any{
			"name":              "Evening Run",
			"type":              "Run",
			"moving_time":       1800,
			"average_heartrate": 142.3,
			"distance":          5000.0,
			"start_date":        "2026-03-14T18:05:00Z",
			"manual":            false,
		})
	})

	detail, err := client.FetchActivity(context.Background(), "at-1", 12345)

	require.NoError(t, err)
	assert.Equal(t, "Run", detail.Category)
	assert.Equal(t, 1800, detail.MovingTimeSec)
	assert.Equal(t, "2026-03-14", detail.Date())
	assert.False(t, detail.IsManualEntry)
}

func TestFetchRecentActivities_APIError(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Authorization Error", http.StatusUnauthorized)
	})

	_, err := client.FetchRecentActivities(context.Background(), "at-expired", 10)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 401")
}
