package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/muzaparoff/rest-api-exam/internal/config"
	"github.com/muzaparoff/rest-api-exam/internal/logger"
	"github.com/muzaparoff/rest-api-exam/internal/utils"
	"github.com/muzaparoff/rest-api-exam/internal/validators"
	"github.com/muzaparoff/rest-api-exam/models"
)

// Retry wait bounds for the transport-level retry policy. resty backs off
// exponentially between the two.
const (
	retryWaitTime    = 500 * time.Millisecond
	retryMaxWaitTime = 5 * time.Second

	// healthPollInterval bounds how often WaitForServer re-checks /health.
	healthPollInterval = 2 * time.Second
)

type httpUserAPIClient struct {
	client    *utils.HTTPClient
	validator validators.Validator

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPUserAPIClient constructs the HTTP/REST implementation of
// [UserAPIClient]. It normalises and validates cfg.BaseURL, configures the
// underlying client with the request timeout, and installs the retry
// policy: up to cfg.RetryCount retries with exponential backoff, triggered
// only by network errors, 5xx responses, or 429.
//
// Returns an error if cfg.BaseURL is empty or cannot be parsed as a URL.
func NewHTTPUserAPIClient(cfg config.ClientConfig, logger *logger.Logger) (UserAPIClient, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid client base url: %w", err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout).
		SetRetryCount(cfg.RetryCount).
		SetRetryWaitTime(retryWaitTime).
		SetRetryMaxWaitTime(retryMaxWaitTime).
		AddRetryCondition(shouldRetry)

	return &httpUserAPIClient{
		client:    client,
		validator: validators.NewUserValidator(),
		logger:    logger,
	}, nil
}

// shouldRetry implements the retry condition: network failures, server-side
// errors, and rate limiting are retryable; every other 4xx is final.
func shouldRetry(resp *resty.Response, err error) bool {
	if err != nil {
		return true
	}
	return resp.StatusCode() >= 500 || resp.StatusCode() == 429
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [UserAPIClient]. The token is stored
// whitespace-trimmed and attached to all subsequent requests.
func (c *httpUserAPIClient) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = strings.TrimSpace(token)
}

// Token implements [UserAPIClient].
func (c *httpUserAPIClient) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

func (c *httpUserAPIClient) request(ctx context.Context) *resty.Request {
	req := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json")
	if token := c.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

// HealthCheck implements [UserAPIClient]. Both 200 and 503 carry a valid
// HealthResponse body, so the decoded status is returned for either.
func (c *httpUserAPIClient) HealthCheck(ctx context.Context) (models.HealthResponse, error) {
	resp, err := c.request(ctx).Get("/health")
	if err != nil {
		return models.HealthResponse{}, fmt.Errorf("health check request: %w", err)
	}

	var health models.HealthResponse
	if err = json.Unmarshal(resp.Body(), &health); err != nil {
		return models.HealthResponse{}, fmt.Errorf("decode health response: %w", err)
	}

	return health, nil
}

// Login implements [UserAPIClient]. On success the issued bearer token is
// stored via SetToken.
func (c *httpUserAPIClient) Login(ctx context.Context, username, password string) error {
	var loginResp models.LoginResponse

	resp, err := c.request(ctx).
		SetBody(models.LoginRequest{Username: username, Password: password}).
		SetResult(&loginResp).
		Post("/auth/login")
	if err != nil {
		return fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	if loginResp.AccessToken == "" {
		return fmt.Errorf("login response carries no access token")
	}

	c.SetToken(loginResp.AccessToken)
	c.logger.Debug().Str("username", username).Msg("logged in")
	return nil
}

// CreateUser implements [UserAPIClient]. The request is validated and
// canonicalized locally first, so the client rejects exactly the inputs the
// server would and never sends a request it knows will fail.
func (c *httpUserAPIClient) CreateUser(ctx context.Context, req models.UserCreate) (models.User, error) {
	if err := c.validator.Validate(ctx, req); err != nil {
		return models.User{}, err
	}

	var created models.User
	resp, err := c.request(ctx).
		SetBody(validators.CanonicalizeCreate(req)).
		SetResult(&created).
		Post("/users")
	if err != nil {
		return models.User{}, fmt.Errorf("create user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return created, nil
}

// GetUser implements [UserAPIClient].
func (c *httpUserAPIClient) GetUser(ctx context.Context, id string) (models.User, error) {
	var user models.User
	resp, err := c.request(ctx).
		SetResult(&user).
		Get("/users/" + url.PathEscape(id))
	if err != nil {
		return models.User{}, fmt.Errorf("get user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return user, nil
}

// ListUserIDs implements [UserAPIClient].
func (c *httpUserAPIClient) ListUserIDs(ctx context.Context) ([]string, error) {
	resp, err := c.request(ctx).Get("/users")
	if err != nil {
		return nil, fmt.Errorf("list user ids request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var ids []string
	if err = json.Unmarshal(resp.Body(), &ids); err != nil {
		return nil, fmt.Errorf("decode user ids response: %w", err)
	}

	return ids, nil
}

// ListUsersDetailed implements [UserAPIClient].
func (c *httpUserAPIClient) ListUsersDetailed(ctx context.Context, page, perPage int, search string) (models.UserList, error) {
	req := c.request(ctx).
		SetQueryParam("page", strconv.Itoa(page)).
		SetQueryParam("per_page", strconv.Itoa(perPage))
	if search != "" {
		req.SetQueryParam("search", search)
	}

	var list models.UserList
	resp, err := req.SetResult(&list).Get("/users-detailed")
	if err != nil {
		return models.UserList{}, fmt.Errorf("list users request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UserList{}, err
	}

	return list, nil
}

// UpdateUser implements [UserAPIClient]. An empty update set fails locally
// with the same validation error the server would return.
func (c *httpUserAPIClient) UpdateUser(ctx context.Context, id string, req models.UserUpdate) (models.User, error) {
	if err := c.validator.Validate(ctx, req); err != nil {
		return models.User{}, err
	}

	var updated models.User
	resp, err := c.request(ctx).
		SetBody(validators.CanonicalizeUpdate(req)).
		SetResult(&updated).
		Put("/users/" + url.PathEscape(id))
	if err != nil {
		return models.User{}, fmt.Errorf("update user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return updated, nil
}

// DeleteUser implements [UserAPIClient].
func (c *httpUserAPIClient) DeleteUser(ctx context.Context, id string) error {
	resp, err := c.request(ctx).Delete("/users/" + url.PathEscape(id))
	if err != nil {
		return fmt.Errorf("delete user request: %w", err)
	}

	return mapHTTPError(resp)
}

// BulkCreateUsers implements [UserAPIClient].
func (c *httpUserAPIClient) BulkCreateUsers(ctx context.Context, reqs []models.UserCreate) BulkResult {
	var result BulkResult
	for _, req := range reqs {
		user, err := c.CreateUser(ctx, req)
		result.append(BulkItemResult{ID: req.ID, User: user, Err: err})
		if err != nil {
			c.logger.Warn().Err(err).Str("id", req.ID).Msg("bulk create: item failed")
		}
	}

	c.logger.Info().
		Int("succeeded", result.Succeeded).
		Int("failed", result.Failed).
		Msg("bulk create completed")
	return result
}

// BulkUpdateUsers implements [UserAPIClient].
func (c *httpUserAPIClient) BulkUpdateUsers(ctx context.Context, updates []BulkUpdate) BulkResult {
	var result BulkResult
	for _, item := range updates {
		user, err := c.UpdateUser(ctx, item.ID, item.Update)
		result.append(BulkItemResult{ID: item.ID, User: user, Err: err})
		if err != nil {
			c.logger.Warn().Err(err).Str("id", item.ID).Msg("bulk update: item failed")
		}
	}

	c.logger.Info().
		Int("succeeded", result.Succeeded).
		Int("failed", result.Failed).
		Msg("bulk update completed")
	return result
}

// BulkDeleteUsers implements [UserAPIClient].
func (c *httpUserAPIClient) BulkDeleteUsers(ctx context.Context, ids []string) BulkResult {
	var result BulkResult
	for _, id := range ids {
		err := c.DeleteUser(ctx, id)
		result.append(BulkItemResult{ID: id, Err: err})
		if err != nil {
			c.logger.Warn().Err(err).Str("id", id).Msg("bulk delete: item failed")
		}
	}

	c.logger.Info().
		Int("succeeded", result.Succeeded).
		Int("failed", result.Failed).
		Msg("bulk delete completed")
	return result
}

// WaitForServer implements [UserAPIClient]. It polls the health endpoint
// until the server reports healthy or ctx is done, whichever comes first.
func (c *httpUserAPIClient) WaitForServer(ctx context.Context) error {
	ticker := time.NewTicker(healthPollInterval)
	defer ticker.Stop()

	for {
		health, err := c.HealthCheck(ctx)
		if err == nil && health.Status == "healthy" {
			return nil
		}
		c.logger.Debug().Err(err).Str("status", health.Status).Msg("server not ready yet")

		select {
		case <-ctx.Done():
			return fmt.Errorf("waiting for server: %w", ctx.Err())
		case <-ticker.C:
		}
	}
}

func (r *BulkResult) append(item BulkItemResult) {
	r.Items = append(r.Items, item)
	if item.Err != nil {
		r.Failed++
		return
	}
	r.Succeeded++
}
