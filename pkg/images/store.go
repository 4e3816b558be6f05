package images

import (
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/nfnt/resize"
)

const maxWidth = 800

// ErrUnsupportedFormat is returned for anything other than jpeg or png.
var ErrUnsupportedFormat = errors.New("only jpeg and png images are allowed")

// Store writes normalized product images into a single upload directory.
type Store struct {
	dir string
}

func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Save decodes the uploaded file, scales it down to at most maxWidth pixels
// wide and stores it as JPEG under a random name. It returns the public path
// served by the /uploads route.
func (s *Store) Save(file io.Reader, originalName string) (string, error) {
	var img image.Image
	var err error

	switch strings.ToLower(filepath.Ext(originalName)) {
	case ".png":
		img, err = png.Decode(file)
	case ".jpg", ".jpeg":
		img, err = jpeg.Decode(file)
	default:
		return "", ErrUnsupportedFormat
	}
	if err != nil {
		return "", fmt.Errorf("failed to decode image: %w", err)
	}

	scaled := resize.Resize(maxWidth, 0, img, resize.Lanczos3)
	name := uuid.New().String() + ".jpg"

	out, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("failed to create image file: %w", err)
	}
	defer out.Close()

	if err := jpeg.Encode(out, scaled, &jpeg.Options{Quality: 80}); err != nil {
		return "", fmt.Errorf("failed to encode image: %w", err)
	}

	return "/uploads/" + name, nil
}
