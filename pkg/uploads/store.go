package uploads

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// ErrUnsupportedType is returned for files whose extension is not allowed
var ErrUnsupportedType = errors.New("unsupported file type")

// Store saves uploaded files into a local directory served under a URL prefix
type Store struct {
	dir       string
	urlPrefix string
	allowed   map[string]bool
}

// NewStore creates the upload directory if needed. An empty allowed list accepts any extension.
func NewStore(dir, urlPrefix string, allowed []string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload directory: %w", err)
	}

	set := make(map[string]bool, len(allowed))
	for _, ext := range allowed {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext != "" && !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		set[ext] = true
	}

	return &Store{
		dir:       dir,
		urlPrefix: "/" + strings.Trim(urlPrefix, "/"),
		allowed:   set,
	}, nil
}

// Dir returns the directory files are written to
func (s *Store) Dir() string {
	return s.dir
}

// URLPrefix returns the URL path uploads are served under
func (s *Store) URLPrefix() string {
	return s.urlPrefix
}

// Save writes the uploaded file as <field>-<uuid><ext> and returns its public URL path
func (s *Store) Save(fh *multipart.FileHeader, field string) (string, error) {
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if len(s.allowed) > 0 && !s.allowed[ext] {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedType, fh.Filename)
	}

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	name := fmt.Sprintf("%s-%s%s", field, uuid.NewString(), ext)
	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(dst.Name())
		return "", fmt.Errorf("write upload file: %w", err)
	}
	if err := dst.Close(); err != nil {
		os.Remove(dst.Name())
		return "", fmt.Errorf("close upload file: %w", err)
	}

	return path.Join(s.urlPrefix, name), nil
}

// Remove deletes the file behind a URL returned by Save. Unknown URLs and missing files are ignored.
func (s *Store) Remove(url string) error {
	if url == "" || !strings.HasPrefix(url, s.urlPrefix+"/") {
		return nil
	}
	name := path.Base(url)
	if name == "." || name == "/" || name == ".." {
		return nil
	}
	err := os.Remove(filepath.Join(s.dir, name))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
