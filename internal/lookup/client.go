package lookup

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/go-github/v82/github"
	"github.com/inovacc/ghexplorer/internal/model"
)

// Client looks up repositories by owner/name identifier.
type Client struct {
	gh      *github.Client
	timeout time.Duration
	logger  *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the transport client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		base := c.gh.BaseURL
		c.gh = github.NewClient(hc)
		c.gh.BaseURL = base
	}
}

// WithTimeout bounds each lookup. Zero disables the bound.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// WithLogger sets the logger used for request diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		c.logger = l
	}
}

// NewClient creates an unauthenticated client rooted at baseURL.
// An empty baseURL selects the public GitHub API.
func NewClient(baseURL string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		baseURL = model.DefaultBaseURL
	}

	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL %q: %w", baseURL, err)
	}

	if !u.IsAbs() {
		return nil, fmt.Errorf("invalid base URL %q: must be absolute", baseURL)
	}

	// go-github resolves request paths relative to BaseURL
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}

	c := &Client{
		gh:     github.NewClient(nil),
		logger: slog.Default(),
	}
	c.gh.BaseURL = u

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// BaseURL returns the API root requests are resolved against.
func (c *Client) BaseURL() string {
	return c.gh.BaseURL.String()
}

// Lookup fetches the repository named by identifier.
func (c *Client) Lookup(ctx context.Context, identifier string) (model.RepositorySummary, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	req, err := c.gh.NewRequest(http.MethodGet, "repos/"+identifier, nil)
	if err != nil {
		return model.RepositorySummary{}, &LookupError{Identifier: identifier, Err: err}
	}

	start := time.Now()
	repo := new(github.Repository)

	resp, err := c.gh.Do(ctx, req, repo)

	c.logger.Debug("repository lookup",
		"repository", identifier,
		"url", req.URL.String(),
		"status", statusCode(resp, err),
		"duration_ms", time.Since(start).Milliseconds(),
	)

	if err != nil {
		return model.RepositorySummary{}, &LookupError{
			Identifier: identifier,
			StatusCode: statusCode(resp, err),
			Err:        err,
		}
	}

	summary := toSummary(repo)
	if err := summary.Validate(); err != nil {
		return model.RepositorySummary{}, &LookupError{
			Identifier: identifier,
			StatusCode: statusCode(resp, nil),
			Err:        fmt.Errorf("malformed repository body: %w", err),
		}
	}

	return summary, nil
}

func toSummary(repo *github.Repository) model.RepositorySummary {
	owner := repo.GetOwner()

	return model.RepositorySummary{
		FullName:    repo.GetFullName(),
		Description: repo.GetDescription(),
		Owner: model.Owner{
			Login:     owner.GetLogin(),
			AvatarURL: owner.GetAvatarURL(),
		},
	}
}
