package repository

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"time"

	"CryptoPulse/internal/domain/repository"
	xhttp "CryptoPulse/pkg/http"
)

// IconFetcher downloads asset icon images into a local directory, one file
// per asset id. Already-present files are never re-fetched.
type IconFetcher struct {
	dir    string
	client *xhttp.Client
}

// NewIconFetcher creates a file-backed IconStore rooted at dir.
func NewIconFetcher(dir string, timeout time.Duration) repository.IconStore {
	return &IconFetcher{
		dir:    dir,
		client: xhttp.NewClient(xhttp.WithTimeout(timeout)),
	}
}

// Download fetches the icon for assetID unless a cached copy exists.
func (f *IconFetcher) Download(ctx context.Context, assetID, iconURL string) error {
	if iconURL == "" {
		return nil
	}

	dest := filepath.Join(f.dir, assetID+extension(iconURL))
	if _, err := os.Stat(dest); err == nil {
		return nil
	}

	if err := os.MkdirAll(f.dir, 0o755); err != nil {
		return fmt.Errorf("create icons dir: %w", err)
	}

	var buf bytes.Buffer
	err := f.client.SendAndParse(ctx, &xhttp.RequestOptions{
		Method: xhttp.MethodGet,
		URL:    iconURL,
	}, &buf)
	if err != nil {
		return fmt.Errorf("download icon %s: %w", assetID, err)
	}

	if err := os.WriteFile(dest, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write icon %s: %w", dest, err)
	}
	return nil
}

func extension(iconURL string) string {
	u, err := url.Parse(iconURL)
	if err != nil {
		return ".png"
	}
	switch ext := path.Ext(u.Path); ext {
	case ".png", ".jpg", ".jpeg", ".webp", ".svg":
		return ext
	default:
		return ".png"
	}
}
