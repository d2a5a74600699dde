package photostore

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// ErrInvalidPath is returned for stored paths that would escape the uploads root.
var ErrInvalidPath = errors.New("photo path escapes uploads root")

// DiskStore keeps car photos on local disk under a single uploads root.
// Filenames are random UUIDs with the original extension preserved, so
// concurrent saves can never collide; all returned paths are root-relative.
type DiskStore struct {
	root string
}

// NewDiskStore opens a store rooted at the given directory, creating the
// directory if it does not exist yet.
func NewDiskStore(root string) (*DiskStore, error) {
	if err := os.MkdirAll(root, 0755); err != nil {
		return nil, err
	}
	return &DiskStore{root: root}, nil
}

// Save writes the content to a freshly generated filename and returns its
// root-relative path. The destination directory is created on first use. On a
// failed write the partial file is removed before the error is returned.
func (s *DiskStore) Save(content io.Reader, originalFilename string) (string, error) {
	ext := strings.ToLower(filepath.Ext(originalFilename))
	relPath := path.Join("photos", uuid.New().String()+ext)

	absPath := filepath.Join(s.root, filepath.FromSlash(relPath))
	if err := os.MkdirAll(filepath.Dir(absPath), 0755); err != nil {
		return "", err
	}

	dst, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(dst, content); err != nil {
		dst.Close()
		os.Remove(absPath)
		return "", err
	}
	if err := dst.Close(); err != nil {
		os.Remove(absPath)
		return "", err
	}
	return relPath, nil
}

// Remove deletes the file at the given root-relative path. A file that is
// already gone is not an error, so a second Remove of the same path succeeds.
func (s *DiskStore) Remove(relPath string) error {
	absPath, err := s.Abs(relPath)
	if err != nil {
		return err
	}
	if err := os.Remove(absPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// Abs resolves a root-relative photo path to its on-disk location, rejecting
// anything that points outside the uploads root.
func (s *DiskStore) Abs(relPath string) (string, error) {
	clean := filepath.Clean(filepath.FromSlash(relPath))
	if clean == "." || filepath.IsAbs(clean) ||
		clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return "", ErrInvalidPath
	}
	return filepath.Join(s.root, clean), nil
}

// Root returns the uploads root the store writes under.
func (s *DiskStore) Root() string {
	return s.root
}
