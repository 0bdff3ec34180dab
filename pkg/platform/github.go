// Package platform holds the thin HTTP clients for the two external
// platforms the metrics read from. These are plain I/O wrappers; all scoring
// logic stays in pkg/metric.
package platform

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultGitHubBaseURL = "https://api.github.com"

// GitHubClient reads repository metadata. BaseURL is overridable so tests
// can point it at an httptest server.
type GitHubClient struct {
	BaseURL string
	Token   string
	HTTP    *http.Client
}

func NewGitHubClient(token string) *GitHubClient {
	return &GitHubClient{Token: token}
}

// Repo is the subset of repository metadata the metrics consume.
type Repo struct {
	FullName string   `json:"full_name"`
	License  *License `json:"license"`
}

type License struct {
	SPDXID string `json:"spdx_id"`
	Name   string `json:"name"`
}

// PullRequest carries author and creation time for bus-factor counting.
type PullRequest struct {
	CreatedAt time.Time `json:"created_at"`
	User      struct {
		Login string `json:"login"`
	} `json:"user"`
}

// ContentEntry is one entry of a directory listing.
type ContentEntry struct {
	Name string `json:"name"`
	Path string `json:"path"`
	Type string `json:"type"`
}

// VerifyToken checks the configured token with a cheap authenticated call.
func (c *GitHubClient) VerifyToken(ctx context.Context) error {
	body, err := c.get(ctx, "/zen", "")
	if err != nil {
		return err
	}
	body.Close()
	return nil
}

func (c *GitHubClient) Repo(ctx context.Context, owner, name string) (Repo, error) {
	var repo Repo
	if err := c.getJSON(ctx, fmt.Sprintf("/repos/%s/%s", owner, name), &repo); err != nil {
		return Repo{}, err
	}
	return repo, nil
}

// Readme returns the repository README as raw text, or "" when the repo has
// none.
func (c *GitHubClient) Readme(ctx context.Context, owner, name string) (string, error) {
	body, err := c.get(ctx, fmt.Sprintf("/repos/%s/%s/readme", owner, name), "application/vnd.github.v3.raw")
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
			return "", nil
		}
		return "", err
	}
	defer body.Close()
	text, err := io.ReadAll(body)
	if err != nil {
		return "", fmt.Errorf("github: reading readme: %w", err)
	}
	return string(text), nil
}

// Pulls lists up to 100 pull requests in any state, newest first.
func (c *GitHubClient) Pulls(ctx context.Context, owner, name string) ([]PullRequest, error) {
	var pulls []PullRequest
	path := fmt.Sprintf("/repos/%s/%s/pulls?state=all&per_page=100", owner, name)
	if err := c.getJSON(ctx, path, &pulls); err != nil {
		return nil, err
	}
	return pulls, nil
}

// Contents lists a directory of the repository; path "" is the root.
func (c *GitHubClient) Contents(ctx context.Context, owner, name, path string) ([]ContentEntry, error) {
	var entries []ContentEntry
	url := fmt.Sprintf("/repos/%s/%s/contents", owner, name)
	if path != "" {
		url += "/" + path
	}
	if err := c.getJSON(ctx, url, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// APIError is a non-2xx platform response.
type APIError struct {
	StatusCode int
	URL        string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("platform: %s returned status %d", e.URL, e.StatusCode)
}

func (c *GitHubClient) baseURL() string {
	if c.BaseURL != "" {
		return c.BaseURL
	}
	return defaultGitHubBaseURL
}

func (c *GitHubClient) httpClient() *http.Client {
	if c.HTTP != nil {
		return c.HTTP
	}
	return http.DefaultClient
}

func (c *GitHubClient) get(ctx context.Context, path, accept string) (io.ReadCloser, error) {
	url := c.baseURL() + path
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	if c.Token != "" {
		req.Header.Set("Authorization", "token "+c.Token)
	}
	if accept != "" {
		req.Header.Set("Accept", accept)
	}

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return nil, fmt.Errorf("github: GET %s: %w", url, err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, &APIError{StatusCode: resp.StatusCode, URL: url}
	}
	return resp.Body, nil
}

func (c *GitHubClient) getJSON(ctx context.Context, path string, out any) error {
	body, err := c.get(ctx, path, "")
	if err != nil {
		return err
	}
	defer body.Close()
	if err := json.NewDecoder(body).Decode(out); err != nil {
		return fmt.Errorf("github: decoding %s: %w", path, err)
	}
	return nil
}
