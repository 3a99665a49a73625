// Package fs provides file-based storage for extracted CSS.
package fs

import (
	"context"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/extractcss"
)

// URLToPath converts a page URL to a relative file path for its CSS.
// Example: https://example.com/docs/api → example.com/docs/api.css
func URLToPath(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}
	if u.Host == "" {
		return "", extractcss.Errorf(extractcss.EINVALID, "URL %q has no host", rawURL)
	}

	// Ports are kept but colons are not portable in file names
	host := strings.ReplaceAll(u.Host, ":", "_")

	path := strings.TrimPrefix(u.Path, "/")

	// Root or trailing slash → index.css
	if path == "" || strings.HasSuffix(path, "/") {
		return host + "/" + path + "index.css", nil
	}

	// Page extensions are replaced rather than stacked
	for _, ext := range []string{".html", ".htm"} {
		if strings.HasSuffix(path, ext) {
			path = strings.TrimSuffix(path, ext)
			break
		}
	}

	return host + "/" + path + ".css", nil
}

// Ensure Writer implements extractcss.ResultWriter at compile time.
var _ extractcss.ResultWriter = (*Writer)(nil)

// Writer writes extracted CSS as files below a base directory.
type Writer struct {
	baseDir string
}

// NewWriter creates a new Writer that writes to the given base directory.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir}
}

// WriteResult writes the result's CSS to the path derived from its URL.
// The file is replaced atomically so readers never see partial CSS.
func (w *Writer) WriteResult(ctx context.Context, r *extractcss.Result) error {
	if err := r.Validate(); err != nil {
		return err
	}

	relPath, err := URLToPath(r.URL)
	if err != nil {
		return err
	}

	fullPath := filepath.Join(w.baseDir, filepath.FromSlash(relPath))

	dir := filepath.Dir(fullPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".extractcss-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(r.CSS); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), fullPath)
}
