package blob

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

// Store keeps request attachments. Upload returns the storage path used for a
// later Remove and the public URL recorded on the request row.
type Store interface {
	Upload(ctx context.Context, name string, content io.Reader) (path string, url string, err error)
	Remove(ctx context.Context, path string) error
}

// DiskStore serves attachments from a local directory under /attachments.
type DiskStore struct {
	Dir     string
	BaseURL string
}

// Builds the disk store, creating the directory when missing
func NewDiskStore(dir string, baseURL string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create attachment directory: %w", err)
	}
	return &DiskStore{Dir: dir, BaseURL: strings.TrimSuffix(baseURL, "/")}, nil
}

var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9.-]`)

// cleanName strips path components and anything unsafe from the file name
func cleanName(name string) string {
	name = filepath.Base(name)
	return unsafeChars.ReplaceAllString(name, "")
}

func (s *DiskStore) Upload(ctx context.Context, name string, content io.Reader) (string, string, error) {
	fileName := fmt.Sprintf("%d_%s", time.Now().UnixNano(), cleanName(name))
	path := filepath.Join(s.Dir, fileName)

	file, err := os.Create(path)
	if err != nil {
		return "", "", fmt.Errorf("failed to create attachment file: %w", err)
	}
	defer file.Close()

	if _, err := io.Copy(file, content); err != nil {
		os.Remove(path)
		return "", "", fmt.Errorf("failed to write attachment: %w", err)
	}

	return path, s.BaseURL + "/attachments/" + fileName, nil
}

func (s *DiskStore) Remove(ctx context.Context, path string) error {
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("failed to remove attachment: %w", err)
	}
	return nil
}
