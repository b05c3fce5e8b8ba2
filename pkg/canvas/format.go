package canvas

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/nfnt/resize"
)

// Format is an output image encoding
type Format string

const (
	FormatPPM Format = "ppm"
	FormatPNG Format = "png"
)

// ErrUnknownFormat is returned for unsupported image formats
var ErrUnknownFormat = errors.New("unknown image format")

// ParseFormat parses a format name, case-insensitively
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(name))); f {
	case FormatPPM, FormatPNG:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// Extension returns the file extension including the dot
func (f Format) Extension() string {
	return "." + string(f)
}

// ContentType returns the MIME type for HTTP responses and uploads
func (f Format) ContentType() string {
	switch f {
	case FormatPNG:
		return "image/png"
	default:
		return "image/x-portable-pixmap"
	}
}

// Encode writes the canvas in the given format
func (c *Canvas) Encode(w io.Writer, format Format) error {
	switch format {
	case FormatPPM:
		return c.WritePPM(w)
	case FormatPNG:
		return c.EncodePNG(w)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// EncodePNG writes the canvas as an 8-bit PNG
func (c *Canvas) EncodePNG(w io.Writer) error {
	return imaging.Encode(w, c.Image(), imaging.PNG)
}

// SavePNG writes the canvas as a PNG file
func (c *Canvas) SavePNG(path string) error {
	if err := imaging.Save(c.Image(), path); err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}
	return nil
}

// Save writes the canvas to path in the given format
func (c *Canvas) Save(path string, format Format) error {
	if format == FormatPNG {
		return c.SavePNG(path)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	if err := c.Encode(file, format); err != nil {
		file.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}
	return nil
}

// Open loads a canvas from a PPM file or any image format imaging can decode
func Open(path string) (*Canvas, error) {
	if strings.EqualFold(filepath.Ext(path), FormatPPM.Extension()) {
		file, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open image file: %w", err)
		}
		defer file.Close()
		return ReadPPM(file)
	}

	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return FromImage(img), nil
}

// Thumbnail returns a copy scaled down to fit within maxWidth x maxHeight,
// keeping the aspect ratio. Canvases already small enough are copied as is.
func (c *Canvas) Thumbnail(maxWidth, maxHeight uint) *Canvas {
	return FromImage(resize.Thumbnail(maxWidth, maxHeight, c.Image(), resize.Bilinear))
}
