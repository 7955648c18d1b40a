// Package fetch downloads the Roslyn diagnostics reference document.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/bsharp-lang/diagsync/pkg/errors"
	"github.com/bsharp-lang/diagsync/pkg/logging"
)

// DefaultURL points at the raw markdown source of the Roslyn compiler
// message reference.
const DefaultURL = "https://raw.githubusercontent.com/dotnet/docs/main/docs/csharp/language-reference/compiler-messages/index.md"

// Client downloads reference documents over HTTP.
type Client struct {
	URL    string
	Client *http.Client
}

// NewClient creates a fetch client for the given URL. An empty URL uses
// DefaultURL.
func NewClient(url string) *Client {
	if url == "" {
		url = DefaultURL
	}
	return &Client{
		URL:    url,
		Client: &http.Client{Timeout: 60 * time.Second},
	}
}

// Download retrieves the reference document and writes it to path. The
// write goes through a temp file renamed into place, so a failed download
// never truncates an existing reference.
func (c *Client) Download(ctx context.Context, path string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.URL, nil)
	if err != nil {
		return errors.WrapIO("fetch", c.URL, err)
	}

	logging.Info().Str("url", c.URL).Msg("Downloading reference document")

	resp, err := c.Client.Do(req)
	if err != nil {
		return errors.WrapIO("fetch", c.URL, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return errors.NewIOError("fetch", c.URL, fmt.Errorf("unexpected status %s", resp.Status))
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.WrapIO("create", dir, err)
	}

	tempFile, err := os.CreateTemp(dir, "reference_*.md")
	if err != nil {
		return errors.WrapIO("create", dir, err)
	}
	defer func() { _ = tempFile.Close() }()
	tempPath := tempFile.Name()

	if _, err := io.Copy(tempFile, resp.Body); err != nil {
		_ = os.Remove(tempPath)
		return errors.WrapIO("write", path, err)
	}
	if err := tempFile.Close(); err != nil {
		_ = os.Remove(tempPath)
		return errors.WrapIO("write", path, err)
	}

	if err := os.Rename(tempPath, path); err != nil {
		_ = os.Remove(tempPath)
		return errors.WrapIO("write", path, err)
	}

	logging.Info().Str("file", path).Msg("Reference document saved")
	return nil
}
