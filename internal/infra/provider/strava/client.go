// Package strava implements the outbound activity-provider contract
// against the Strava v3 API.
package strava

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"gravity/config"
	"gravity/internal/domain/entity"
	"gravity/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	defaultTokenURL   = "https://www.strava.com/oauth/token"
	defaultAPIBaseURL = "https://www.strava.com/api/v3"
	defaultTimeout    = 15 * time.Second
)

// ErrNoAccessToken marks a token response that did not contain a new
// access token. Callers must treat it as terminal for the current
// operation and leave their stored tokens untouched.
var ErrNoAccessToken = errors.New("provider response contains no access token")

// Client talks to the Strava OAuth and activity endpoints.
type Client struct {
	clientID     string
	clientSecret string
	tokenURL     string
	apiBaseURL   string
	httpClient   *http.Client
}

// NewClient builds a provider client from configuration.
func NewClient(cfg *config.Config) service.ProviderClient {
	pc := cfg.Provider

	tokenURL := pc.TokenURL
	if tokenURL == "" {
		tokenURL = defaultTokenURL
	}
	apiBaseURL := pc.APIBaseURL
	if apiBaseURL == "" {
		apiBaseURL = defaultAPIBaseURL
	}
	timeout := pc.Timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}

	return &Client{
		clientID:     pc.ClientID,
		clientSecret: pc.ClientSecret,
		tokenURL:     tokenURL,
		apiBaseURL:   strings.TrimRight(apiBaseURL, "/"),
		httpClient:   &http.Client{Timeout: timeout},
	}
}

// tokenResponse mirrors Strava's token endpoint payload.
type tokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresAt    int64  `json:"expires_at"`
	Scope        string `json:"scope"`
	Athlete      *struct {
		ID int64 `json:"id"`
	} `json:"athlete"`
	Errors []any `json:"errors"`
}

// ExchangeCode swaps an authorization code for a token pair.
func (c *Client) ExchangeCode(ctx context.Context, code string) (*service.TokenPair, error) {
	body := map[string]string{
		"client_id":     c.clientID,
		"client_secret": c.clientSecret,
		"code":          code,
		"grant_type":    "authorization_code",
	}

	result, err := c.postToken(ctx, body)
	if err != nil {
		return nil, err
	}

	pair := &service.TokenPair{
		AccessToken:  result.AccessToken,
		RefreshToken: result.RefreshToken,
		ExpiresAt:    result.ExpiresAt,
		Scope:        result.Scope,
	}
	if result.Athlete != nil {
		pair.AthleteID = fmt.Sprintf("%d", result.Athlete.ID)
	}

	return pair, nil
}

// RefreshTokens exchanges a refresh token for a new pair.
func (c *Client) RefreshTokens(ctx context.Context, refreshToken string) (*service.TokenPair, error) {
	body := map[string]string{
		"client_id":     c.clientID,
		"client_secret": c.clientSecret,
		"grant_type":    "refresh_token",
		"refresh_token": refreshToken,
	}

	result, err := c.postToken(ctx, body)
	if err != nil {
		return nil, err
	}

	return &service.TokenPair{
		AccessToken:  result.AccessToken,
		RefreshToken: result.RefreshToken,
		ExpiresAt:    result.ExpiresAt,
		Scope:        result.Scope,
	}, nil
}

func (c *Client) postToken(ctx context.Context, body map[string]string) (*tokenResponse, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.tokenURL, strings.NewReader(string(payload)))
	if err != nil {
		return nil, errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "token request failed")
	}
	defer resp.Body.Close()

	var result tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, errors.Wrap(err, "failed to decode token response")
	}

	if len(result.Errors) > 0 {
		return nil, errors.Errorf("provider rejected token request: %v", result.Errors)
	}
	if result.AccessToken == "" {
		return nil, errors.WithStack(ErrNoAccessToken)
	}

	return &result, nil
}

// activityResponse mirrors the fields of a Strava activity Gravity
// consumes.
type activityResponse struct {
	Name             string  `json:"name"`
	Type             string  `json:"type"`
	MovingTime       int     `json:"moving_time"`
	AverageHeartrate float64 `json:"average_heartrate"`
	Distance         float64 `json:"distance"`
	StartDate        string  `json:"start_date"`
	Manual           bool    `json:"manual"`
}

func (a *activityResponse) toDetail() *entity.ActivityDetail {
	startDate, _ := time.Parse(time.RFC3339, a.StartDate)

	return &entity.ActivityDetail{
		Category:         a.Type,
		MovingTimeSec:    a.MovingTime,
		AverageHeartrate: a.AverageHeartrate,
		DistanceMeters:   a.Distance,
		StartDate:        startDate,
		DisplayName:      a.Name,
		IsManualEntry:    a.Manual,
	}
}

// FetchActivity retrieves a single activity by id.
func (c *Client) FetchActivity(ctx context.Context, accessToken string, activityID int64) (*entity.ActivityDetail, error) {
	url := fmt.Sprintf("%s/activities/%d", c.apiBaseURL, activityID)

	var activity activityResponse
	if err := c.getJSON(ctx, url, accessToken, &activity); err != nil {
		return nil, err
	}

	return activity.toDetail(), nil
}

// FetchRecentActivities lists the athlete's latest activities.
func (c *Client) FetchRecentActivities(ctx context.Context, accessToken string, perPage int) ([]*entity.ActivityDetail, error) {
	url := fmt.Sprintf("%s/athlete/activities?per_page=%d", c.apiBaseURL, perPage)

	var activities []activityResponse
	if err := c.getJSON(ctx, url, accessToken, &activities); err != nil {
		return nil, err
	}

	details := make([]*entity.ActivityDetail, 0, len(activities))
	for i := range activities {
		details = append(details, activities[i].toDetail())
	}

	return details, nil
}

func (c *Client) getJSON(ctx context.Context, url, accessToken string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "activity request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))

		return errors.Errorf("provider API error: status %d: %s", resp.StatusCode, string(detail))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrap(err, "failed to decode activity response")
	}

	return nil
}
