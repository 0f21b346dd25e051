package attachment

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
)

// allowedExtensions is the fixed set of image types the catalog accepts.
var allowedExtensions = map[string]bool{
	"png":  true,
	"jpg":  true,
	"jpeg": true,
	"gif":  true,
}

// Store keeps at most one image file per artwork on the local filesystem,
// named by the artwork's public identifier.
type Store struct {
	dir string
	log *log.Logger
}

func NewStore(dir string, logger *log.Logger) (*Store, error) {
	if logger == nil {
		logger = log.Default()
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &Store{dir: dir, log: logger}, nil
}

// Allowed reports whether the uploaded filename carries an accepted image
// extension. Filenames without an extension are rejected.
func (s *Store) Allowed(filename string) bool {
	return allowedExtensions[extension(filename)]
}

// Save writes the upload to disk as <id>.<ext> and returns the stored
// filename. The caller is expected to have checked Allowed first.
func (s *Store) Save(id string, fh *multipart.FileHeader) (string, error) {
	name := id + "." + extension(fh.Filename)

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open upload: %w", err)
	}
	defer src.Close()

	absPath := filepath.Join(s.dir, name)
	dst, err := os.Create(absPath)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		_ = os.Remove(absPath)
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	return name, nil
}

// Replace removes the previous file, if any, then stores the new upload.
// Failure to remove the old file never blocks storing the new one.
func (s *Store) Replace(oldName, id string, fh *multipart.FileHeader) (string, error) {
	s.Remove(oldName)
	return s.Save(id, fh)
}

// Remove deletes a stored file. Deletion is best-effort: a missing file is
// not an error, and any other failure is logged and swallowed so it never
// blocks the owning record's operation.
func (s *Store) Remove(name string) {
	if name == "" {
		return
	}
	path, err := s.Path(name)
	if err != nil {
		s.log.Printf("attachment_delete_skipped file=%q error=%q", name, err)
		return
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		s.log.Printf("attachment_delete_failed file=%q error=%q", name, err)
	}
}

// Path resolves a stored filename to its on-disk location. Names that are
// not plain filenames are rejected.
func (s *Store) Path(name string) (string, error) {
	if name == "" || name != filepath.Base(name) {
		return "", fmt.Errorf("invalid attachment name %q", name)
	}
	return filepath.Join(s.dir, name), nil
}

// extension returns the lowercased text after the last dot, or "" when the
// filename has none.
func extension(filename string) string {
	i := strings.LastIndex(filename, ".")
	if i < 0 || i == len(filename)-1 {
		return ""
	}
	return strings.ToLower(filename[i+1:])
}
