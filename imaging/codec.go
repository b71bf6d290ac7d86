// Package imaging converts image files to and from pixel grids
package imaging

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"

	"lsb-steganography/models"
)

const (
	FormatPNG = "png"
	FormatBMP = "bmp"
)

var (
	// ErrLossyFormat indicates an output format that would destroy the low bits.
	ErrLossyFormat = errors.New("imaging: output format is lossy, use png or bmp")

	// ErrUnsupportedFormat indicates an unknown file extension.
	ErrUnsupportedFormat = errors.New("imaging: unsupported image format")
)

type ImageCodec struct{}

func NewImageCodec() *ImageCodec {
	return &ImageCodec{}
}

// Decode reads any registered image format into a grid. Alpha is dropped.
func (ic *ImageCodec) Decode(data []byte) (*models.PixelGrid, *models.ImageMetadata, error) {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := img.Bounds()
	grid := models.NewPixelGrid(bounds.Dx(), bounds.Dy())
	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			c := color.NRGBAModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.NRGBA)
			grid.Set(x, y, models.Pixel{c.R, c.G, c.B})
		}
	}

	metadata := &models.ImageMetadata{
		Width:  grid.Width,
		Height: grid.Height,
		Format: format,
	}
	return grid, metadata, nil
}

// Encode writes grid as an opaque image in a lossless format.
func (ic *ImageCodec) Encode(grid *models.PixelGrid, format string) ([]byte, error) {
	img := image.NewNRGBA(image.Rect(0, 0, grid.Width, grid.Height))
	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			p := grid.At(x, y)
			img.SetNRGBA(x, y, color.NRGBA{R: p[0], G: p[1], B: p[2], A: 0xff})
		}
	}

	buf := new(bytes.Buffer)
	switch format {
	case FormatPNG:
		if err := png.Encode(buf, img); err != nil {
			return nil, fmt.Errorf("failed to encode PNG: %w", err)
		}
	case FormatBMP:
		if err := bmp.Encode(buf, img); err != nil {
			return nil, fmt.Errorf("failed to encode BMP: %w", err)
		}
	case "jpeg", "gif":
		return nil, ErrLossyFormat
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	return buf.Bytes(), nil
}

func (ic *ImageCodec) ReadFile(path string) (*models.PixelGrid, *models.ImageMetadata, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read image: %w", err)
	}
	return ic.Decode(data)
}

// WriteFile encodes grid in the format named by the extension of path.
func (ic *ImageCodec) WriteFile(path string, grid *models.PixelGrid) error {
	data, err := ic.Encode(grid, FormatFromPath(path))
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write image: %w", err)
	}
	return nil
}

// FormatFromPath maps a file extension to a format name.
func FormatFromPath(path string) string {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png":
		return FormatPNG
	case ".bmp":
		return FormatBMP
	case ".jpg", ".jpeg":
		return "jpeg"
	default:
		return strings.TrimPrefix(ext, ".")
	}
}
