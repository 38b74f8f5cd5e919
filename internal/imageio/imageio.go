// Package imageio loads and saves images in the formats the retouch CLI
// accepts. Decoding is format-sniffing; encoding picks the codec from
// the output file extension.
package imageio

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

	"github.com/HugoSmits86/nativewebp"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	// Registered for decoding via image.Decode.
	_ "github.com/ftrvxmtrx/tga"
	_ "golang.org/x/image/webp"
)

// I/O errors.
var (
	// ErrUnsupportedFormat is returned when the image format is not supported.
	ErrUnsupportedFormat = errors.New("imageio: unsupported format")

	// ErrEmptyData is returned when image data is empty.
	ErrEmptyData = errors.New("imageio: empty data")
)

// DefaultJPEGQuality is used when the caller passes a quality outside [1, 100].
const DefaultJPEGQuality = 90

// Load loads an image from the given file path, auto-detecting the format.
// Supported formats: PNG, JPEG, WebP, BMP, TIFF, TGA.
func Load(path string) (image.Image, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("imageio: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Decode(f)
}

// Decode decodes an image from the given reader, auto-detecting the format.
func Decode(r io.Reader) (image.Image, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("imageio: decode: %w", err)
	}
	return img, nil
}

// Save writes an image to the given path, choosing the encoder from the
// file extension. Supported extensions: .png, .jpg/.jpeg, .webp, .bmp,
// .tif/.tiff. quality applies to JPEG only.
func Save(path string, img image.Image, quality int) error {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("imageio: create file: %w", err)
	}
	defer func() { _ = f.Close() }()

	if err := Encode(f, img, filepath.Ext(path), quality); err != nil {
		return err
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("imageio: close file: %w", err)
	}
	return nil
}

// Encode writes an image to w in the format named by ext (with or
// without the leading dot).
func Encode(w io.Writer, img image.Image, ext string, quality int) error {
	if quality < 1 || quality > 100 {
		quality = DefaultJPEGQuality
	}

	switch strings.ToLower(strings.TrimPrefix(ext, ".")) {
	case "png":
		if err := png.Encode(w, img); err != nil {
			return fmt.Errorf("imageio: encode png: %w", err)
		}
	case "jpg", "jpeg":
		if err := jpeg.Encode(w, img, &jpeg.Options{Quality: quality}); err != nil {
			return fmt.Errorf("imageio: encode jpeg: %w", err)
		}
	case "webp":
		if err := nativewebp.Encode(w, img, nil); err != nil {
			return fmt.Errorf("imageio: encode webp: %w", err)
		}
	case "bmp":
		if err := bmp.Encode(w, img); err != nil {
			return fmt.Errorf("imageio: encode bmp: %w", err)
		}
	case "tif", "tiff":
		if err := tiff.Encode(w, img, nil); err != nil {
			return fmt.Errorf("imageio: encode tiff: %w", err)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	return nil
}
