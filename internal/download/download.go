// Package download fetches remote image assets into a local cache directory.
package download

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

const userAgent = "cube-tweaks/1.0"

// ErrNotImage is returned when the server answers with something that is not a supported image.
var ErrNotImage = errors.New("download: response is not an image")

// IsRemote reports whether path is an http(s) URL rather than a local file.
func IsRemote(path string) bool {
	u, err := url.Parse(path)
	return err == nil && (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// Fetcher saves remote images under Dir. A file already present in Dir is reused
// without contacting the server.
type Fetcher struct {
	Dir    string
	Client *http.Client
}

// New returns a fetcher writing into dir with a 60s client timeout.
func New(dir string) *Fetcher {
	return &Fetcher{Dir: dir, Client: &http.Client{Timeout: 60 * time.Second}}
}

// Fetch downloads rawURL into the cache and returns the local path.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (string, error) {
	name := cacheName(rawURL)
	if name != "" {
		cached := filepath.Join(f.Dir, name)
		if info, err := os.Stat(cached); err == nil && info.Size() > 0 {
			return cached, nil
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", fmt.Errorf("download: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	client := f.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("download: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("download: %s: HTTP %d", rawURL, resp.StatusCode)
	}

	if name == "" {
		ext := extensionFromContentType(resp.Header.Get("Content-Type"))
		if ext == "" {
			return "", fmt.Errorf("%w: %s (%s)", ErrNotImage, rawURL, resp.Header.Get("Content-Type"))
		}
		name = sanitize(baseName(rawURL)) + ext
	}

	if err := os.MkdirAll(f.Dir, 0o755); err != nil {
		return "", fmt.Errorf("download: %w", err)
	}
	// Write to a temp file first so a failed transfer never leaves a partial cache entry.
	tmp, err := os.CreateTemp(f.Dir, name+".part-*")
	if err != nil {
		return "", fmt.Errorf("download: %w", err)
	}
	if _, err := io.Copy(tmp, resp.Body); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", fmt.Errorf("download: %s: %w", rawURL, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("download: %w", err)
	}
	dst := filepath.Join(f.Dir, name)
	if err := os.Rename(tmp.Name(), dst); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("download: %w", err)
	}
	return dst, nil
}

var imageExts = map[string]bool{".png": true, ".jpg": true, ".jpeg": true, ".gif": true, ".webp": true, ".bmp": true}

// cacheName derives the cache file name from the URL path when it already names an image.
func cacheName(rawURL string) string {
	ext := strings.ToLower(filepath.Ext(urlPath(rawURL)))
	if !imageExts[ext] {
		return ""
	}
	return sanitize(baseName(rawURL)) + ext
}

func urlPath(rawURL string) string {
	if u, err := url.Parse(rawURL); err == nil {
		return u.Path
	}
	return rawURL
}

func baseName(rawURL string) string {
	base := filepath.Base(urlPath(rawURL))
	base = strings.TrimSuffix(base, filepath.Ext(base))
	if base == "" || base == "." || base == "/" {
		return "texture"
	}
	return base
}

func extensionFromContentType(ct string) string {
	ct = strings.ToLower(strings.TrimSpace(ct))
	if i := strings.Index(ct, ";"); i >= 0 {
		ct = ct[:i]
	}
	switch ct {
	case "image/png":
		return ".png"
	case "image/jpeg", "image/jpg":
		return ".jpg"
	case "image/gif":
		return ".gif"
	case "image/webp":
		return ".webp"
	case "image/bmp":
		return ".bmp"
	}
	return ""
}

var unsafeName = regexp.MustCompile(`[^a-zA-Z0-9_.-]+`)

func sanitize(name string) string {
	name = unsafeName.ReplaceAllString(name, "_")
	if len(name) > 96 {
		name = name[:96]
	}
	return name
}
