// Package cloudflare provides the account listing and login services the
// bootstrap pipeline depends on.
package cloudflare

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/spf13/viper"
	"golang.org/x/oauth2"

	"github.com/hatchdev/hatch/internal/run"
)

const apiBase = "https://api.cloudflare.com/client/v4"

// ResolveAPIToken returns the Cloudflare API token from config or
// environment.
func ResolveAPIToken() string {
	if tok := strings.TrimSpace(viper.GetString("cloudflare.api_token")); tok != "" {
		return tok
	}
	if env := strings.TrimSpace(os.Getenv("CLOUDFLARE_API_TOKEN")); env != "" {
		return env
	}
	if env := strings.TrimSpace(os.Getenv("CF_API_TOKEN")); env != "" {
		return env
	}
	return ""
}

// ResolveAccountID returns a pre-configured account ID, if any. When set
// it bypasses the interactive account selection.
func ResolveAccountID() string {
	if id := strings.TrimSpace(viper.GetString("cloudflare.account_id")); id != "" {
		return id
	}
	if env := strings.TrimSpace(os.Getenv("CLOUDFLARE_ACCOUNT_ID")); env != "" {
		return env
	}
	return ""
}

// Client talks to the Cloudflare API and the wrangler CLI.
type Client struct {
	http    *http.Client
	runner  run.Runner
	baseURL string
}

// NewClient creates a client authenticated with apiToken. The token is
// carried by an oauth2 token source so every request gets the bearer
// header.
func NewClient(apiToken string, runner run.Runner) (*Client, error) {
	if strings.TrimSpace(apiToken) == "" {
		return nil, fmt.Errorf("cloudflare api_token is required")
	}

	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: apiToken})

	return &Client{
		http:    oauth2.NewClient(context.Background(), ts),
		runner:  runner,
		baseURL: apiBase,
	}, nil
}

// WithBaseURL overrides the API endpoint, for tests.
func (c *Client) WithBaseURL(base string) *Client {
	c.baseURL = base
	return c
}

// ListAccounts returns the accounts visible to the authenticated
// operator as a display-name to id mapping. The listing is fetched once
// per invocation; failures propagate to the caller.
func (c *Client) ListAccounts(ctx context.Context) (map[string]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/accounts", nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read account listing: %w", err)
	}

	var response struct {
		Success bool `json:"success"`
		Errors  []struct {
			Code    int    `json:"code"`
			Message string `json:"message"`
		} `json:"errors"`
		Result []struct {
			ID   string `json:"id"`
			Name string `json:"name"`
		} `json:"result"`
	}

	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("failed to parse account listing: %w", err)
	}

	if !response.Success {
		var msgs []string
		for _, e := range response.Errors {
			msgs = append(msgs, fmt.Sprintf("[%d] %s", e.Code, e.Message))
		}
		return nil, fmt.Errorf("account listing failed: %s", strings.Join(msgs, "; "))
	}

	accounts := make(map[string]string, len(response.Result))
	for _, acc := range response.Result {
		accounts[acc.Name] = acc.ID
	}
	return accounts, nil
}

// EnsureLogin reports whether the operator is authenticated, running the
// interactive wrangler login flow when they are not. A configured API
// token counts as logged in.
func EnsureLogin(ctx context.Context, runner run.Runner) (bool, error) {
	if ResolveAPIToken() != "" {
		return true, nil
	}

	if !runner.LookPath("wrangler") {
		return false, fmt.Errorf("wrangler not found in PATH (install with: npm install -g wrangler)")
	}

	if _, err := runner.Run(ctx, "wrangler", []string{"whoami"}, run.Options{Silent: true}); err == nil {
		return true, nil
	}

	// Interactive browser-based login. Output streams so the operator
	// can follow the flow.
	if _, err := runner.Run(ctx, "wrangler", []string{"login"}, run.Options{}); err != nil {
		return false, nil
	}
	return true, nil
}
