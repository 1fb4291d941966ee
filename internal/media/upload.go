// Package media stores admin image uploads as resized JPEGs.
package media

import (
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/nfnt/resize"
)

var ErrUnsupportedImage = errors.New("media: only PNG and JPEG images are accepted")

// encode is swapped in tests to simulate a failing write.
var encode = jpeg.Encode

const (
	MaxWidth = 800
	Quality  = 80
)

// Uploader writes images under Dir/uploads and returns their public URL under URLPrefix.
type Uploader struct {
	Dir       string
	URLPrefix string
}

func NewUploader(dir string) *Uploader {
	return &Uploader{Dir: dir, URLPrefix: "/media"}
}

// Save decodes r by the extension of filename, shrinks it to MaxWidth and
// stores it as <uuid>.jpg. It returns the URL to reference the image by.
func (u *Uploader) Save(filename string, r io.Reader) (string, error) {
	var (
		img image.Image
		err error
	)
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".png":
		img, err = png.Decode(r)
	case ".jpg", ".jpeg":
		img, err = jpeg.Decode(r)
	default:
		return "", ErrUnsupportedImage
	}
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnsupportedImage, err)
	}
	if img.Bounds().Dx() > MaxWidth {
		img = resize.Resize(MaxWidth, 0, img, resize.Lanczos3)
	}

	dir := filepath.Join(u.Dir, "uploads")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	name := uuid.NewString() + ".jpg"
	dst := filepath.Join(dir, name)
	if err := writeJPEG(dst, img); err != nil {
		return "", err
	}
	return path.Join(u.URLPrefix, "uploads", name), nil
}

// writeJPEG encodes img to dst and removes dst again if anything fails.
func writeJPEG(dst string, img image.Image) (err error) {
	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			_ = os.Remove(dst)
		}
	}()
	return encode(out, img, &jpeg.Options{Quality: Quality})
}
