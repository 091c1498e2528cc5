package uploads

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// MaxFileSize caps accepted uploads at 10MB.
const MaxFileSize = 10 << 20

// ErrUnsupportedType is returned when an upload is not a jpeg/jpg/png/gif
// image by both extension and declared content type.
var ErrUnsupportedType = errors.New("images only (jpeg, jpg, png, gif)")

// ErrTooLarge is returned when an upload exceeds MaxFileSize.
var ErrTooLarge = errors.New("image exceeds the 10MB limit")

var allowedMIME = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/gif":  true,
}

var allowedExt = map[string]bool{
	".jpeg": true,
	".jpg":  true,
	".png":  true,
	".gif":  true,
}

// Store persists a pre-validated image and returns the URL to reference it by.
type Store interface {
	Save(ctx context.Context, fh *multipart.FileHeader) (string, error)
}

// ValidateImage checks extension, declared MIME type and size, returning the
// lowercased extension on success.
func ValidateImage(fh *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if !allowedExt[ext] || !allowedMIME[strings.ToLower(fh.Header.Get("Content-Type"))] {
		return "", ErrUnsupportedType
	}
	if fh.Size > MaxFileSize {
		return "", ErrTooLarge
	}
	return ext, nil
}

// objectName builds a collision-free stored filename for an upload.
func objectName(ext string) string {
	return "image-" + uuid.NewString() + ext
}

// DiskStore writes uploads under Dir and returns paths below BaseURL, which
// the server exposes as a static mount.
type DiskStore struct {
	Dir     string
	BaseURL string
}

func NewDiskStore(dir, baseURL string) *DiskStore {
	return &DiskStore{Dir: dir, BaseURL: strings.TrimSuffix(baseURL, "/")}
}

func (s *DiskStore) Save(_ context.Context, fh *multipart.FileHeader) (string, error) {
	ext, err := ValidateImage(fh)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return "", err
	}

	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer func() { _ = src.Close() }()

	name := objectName(ext)
	dst, err := os.Create(filepath.Join(s.Dir, name))
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(dst, io.LimitReader(src, MaxFileSize)); err != nil {
		_ = dst.Close()
		return "", err
	}
	if err := dst.Close(); err != nil {
		return "", err
	}

	return fmt.Sprintf("%s/%s", s.BaseURL, name), nil
}
