package loaders

import (
	"errors"
	"fmt"
	"image"
	_ "image/jpeg" // JPEG decoder
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// ErrUnsupportedFormat is returned for image formats the sink cannot encode
var ErrUnsupportedFormat = errors.New("unsupported image format")

// SupportedFormats lists the encodable formats by file extension, without the dot
var SupportedFormats = []string{"png", "bmp", "tiff"}

// FormatFromPath derives the image format from a file extension
func FormatFromPath(path string) string {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if ext == "tif" {
		return "tiff"
	}
	return ext
}

// ContentType returns the MIME type of an encodable format
func ContentType(format string) (string, error) {
	switch format {
	case "png":
		return "image/png", nil
	case "bmp":
		return "image/bmp", nil
	case "tiff":
		return "image/tiff", nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
}

// EncodeImage writes img to w in the given format (png, bmp or tiff)
func EncodeImage(w io.Writer, img image.Image, format string) error {
	var err error
	switch format {
	case "png":
		err = png.Encode(w, img)
	case "bmp":
		err = bmp.Encode(w, img)
	case "tiff":
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", format, err)
	}
	return nil
}

// SaveImage writes img to path, choosing the encoder from the file extension.
// Missing parent directories are created.
func SaveImage(path string, img image.Image) error {
	format := FormatFromPath(path)
	if _, err := ContentType(format); err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create image file: %w", err)
	}

	if err := EncodeImage(file, img, format); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

// LoadImage decodes a PNG, JPEG, BMP or TIFF file
func LoadImage(filename string) (image.Image, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file: %w", err)
	}
	defer file.Close()

	// Decode image (auto-detects the format from the file header)
	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return img, nil
}
