package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	errs "github.com/amirhossein-jamali/credits-service/internal/domain/error"
	coreport "github.com/amirhossein-jamali/credits-service/internal/domain/port/core"
	"github.com/amirhossein-jamali/credits-service/internal/domain/port/gateway"
)

// IdentityClient talks to the external identity and membership service.
// Any non-200 response or malformed body counts as a negative result; the
// cause is not distinguished.
type IdentityClient struct {
	baseURL     string
	accessToken string
	client      *http.Client
	logger      coreport.Logger
}

// NewIdentityClient creates a client for the identity service
func NewIdentityClient(baseURL, accessToken string, timeout time.Duration, logger coreport.Logger) gateway.IdentityVerifier {
	return &IdentityClient{
		baseURL:     strings.TrimRight(baseURL, "/"),
		accessToken: accessToken,
		client: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// get makes an authenticated GET request and decodes the JSON response
func (c *IdentityClient) get(ctx context.Context, endpoint string, query url.Values, ret interface{}) error {
	uri := fmt.Sprintf("%s/%s", c.baseURL, endpoint)
	if len(query) > 0 {
		uri += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, uri, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Add("Authorization", c.accessToken)
	req.Header.Add("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("request failed with status: %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(ret); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

// IsMember reports whether the netid belongs to a known member
func (c *IdentityClient) IsMember(ctx context.Context, netid string) (bool, error) {
	var response struct {
		Data struct {
			IsMember bool `json:"is_member"`
		} `json:"data"`
	}

	endpoint := fmt.Sprintf("users/%s/is_member", url.PathEscape(netid))
	if err := c.get(ctx, endpoint, nil, &response); err != nil {
		c.logger.Warn("Membership lookup failed", map[string]any{
			"netid": netid,
			"error": err.Error(),
		})
		return false, nil
	}

	return response.Data.IsMember, nil
}

// ResolveSession resolves a session token to the netid it was issued for
func (c *IdentityClient) ResolveSession(ctx context.Context, token string) (string, error) {
	var response struct {
		Token string `json:"token"`
		User  struct {
			Name string `json:"name"`
		} `json:"user"`
	}

	endpoint := fmt.Sprintf("session/%s", url.PathEscape(token))
	if err := c.get(ctx, endpoint, nil, &response); err != nil {
		c.logger.Info("Rejecting token", map[string]any{
			"error": err.Error(),
		})
		return "", errs.ErrUnauthorized
	}

	if response.Token == "" || response.User.Name == "" {
		c.logger.Info("Rejecting token", nil)
		return "", errs.ErrUnauthorized
	}

	c.logger.Info("Authenticated from token", map[string]any{
		"netid": response.User.Name,
	})
	return response.User.Name, nil
}

// IsGroupMember reports whether the netid belongs to the named committee group
func (c *IdentityClient) IsGroupMember(ctx context.Context, netid, group string) (bool, error) {
	var response struct {
		IsValid bool `json:"isValid"`
	}

	endpoint := fmt.Sprintf("groups/committees/%s", url.PathEscape(group))
	query := url.Values{"isMember": {netid}}
	if err := c.get(ctx, endpoint, query, &response); err != nil {
		c.logger.Warn("Group lookup failed", map[string]any{
			"netid": netid,
			"group": group,
			"error": err.Error(),
		})
		return false, nil
	}

	return response.IsValid, nil
}
