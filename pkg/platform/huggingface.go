package platform

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

const defaultHFBaseURL = "https://huggingface.co"

// HFClient reads model and dataset metadata from the Hugging Face hub.
type HFClient struct {
	BaseURL string
	Token   string
	HTTP    *http.Client
}

func NewHFClient(token string) *HFClient {
	return &HFClient{Token: token}
}

// FileInfo is one entry of a repository tree listing.
type FileInfo struct {
	Path string `json:"path"`
	Size int64  `json:"size"`
	Type string `json:"type"`
}

// DatasetInfo is the subset of dataset metadata the quality metric consumes.
type DatasetInfo struct {
	ID           string    `json:"id"`
	Downloads    int       `json:"downloads"`
	Likes        int       `json:"likes"`
	LastModified time.Time `json:"lastModified"`
	Tags         []string  `json:"tags"`
}

// ModelFiles lists the files of a model repository at rev.
func (c *HFClient) ModelFiles(ctx context.Context, namespace, repo, rev string) ([]FileInfo, error) {
	if rev == "" {
		rev = "main"
	}
	var files []FileInfo
	path := fmt.Sprintf("/api/models/%s/%s/tree/%s", namespace, repo, rev)
	if err := c.getJSON(ctx, path, &files); err != nil {
		return nil, err
	}
	return files, nil
}

// ModelSize sums the sizes of every file in the model repository.
func (c *HFClient) ModelSize(ctx context.Context, namespace, repo, rev string) (int64, error) {
	files, err := c.ModelFiles(ctx, namespace, repo, rev)
	if err != nil {
		return 0, err
	}
	var total int64
	for _, f := range files {
		total += f.Size
	}
	return total, nil
}

// DownloadREADME fetches the repository README into a temp file and returns
// its path. The caller owns the file.
func (c *HFClient) DownloadREADME(ctx context.Context, namespace, repo, rev string) (string, error) {
	if rev == "" {
		rev = "main"
	}
	body, err := c.get(ctx, fmt.Sprintf("/%s/%s/resolve/%s/README.md", namespace, repo, rev))
	if err != nil {
		return "", err
	}
	defer body.Close()

	f, err := os.CreateTemp("", "modelscore-readme-*.md")
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(f, body); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", fmt.Errorf("huggingface: writing readme: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return "", err
	}
	return f.Name(), nil
}

// DatasetInfo fetches dataset metadata by name ("namespace/repo" or a bare
// canonical name like "glue").
func (c *HFClient) DatasetInfo(ctx context.Context, name string) (DatasetInfo, error) {
	var info DatasetInfo
	if err := c.getJSON(ctx, "/api/datasets/"+name, &info); err != nil {
		return DatasetInfo{}, err
	}
	return info, nil
}

func (c *HFClient) baseURL() string {
	if c.BaseURL != "" {
		return c.BaseURL
	}
	return defaultHFBaseURL
}

func (c *HFClient) httpClient() *http.Client {
	if c.HTTP != nil {
		return c.HTTP
	}
	return http.DefaultClient
}

func (c *HFClient) get(ctx context.Context, path string) (io.ReadCloser, error) {
	url := c.baseURL() + path
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return nil, fmt.Errorf("huggingface: GET %s: %w", url, err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, &APIError{StatusCode: resp.StatusCode, URL: url}
	}
	return resp.Body, nil
}

func (c *HFClient) getJSON(ctx context.Context, path string, out any) error {
	body, err := c.get(ctx, path)
	if err != nil {
		return err
	}
	defer body.Close()
	if err := json.NewDecoder(body).Decode(out); err != nil {
		return fmt.Errorf("huggingface: decoding %s: %w", path, err)
	}
	return nil
}
