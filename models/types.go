// Package models contain needed models
package models

// Pixel holds the R, G and B channel values of one pixel
type Pixel [3]uint8

// PixelGrid is a height x width grid of pixels stored in row-major order
type PixelGrid struct {
	Width  int
	Height int
	Pixels []Pixel
}

func NewPixelGrid(width, height int) *PixelGrid {
	return &PixelGrid{
		Width:  width,
		Height: height,
		Pixels: make([]Pixel, width*height),
	}
}

func (g *PixelGrid) Len() int {
	return g.Width * g.Height
}

func (g *PixelGrid) At(x, y int) Pixel {
	return g.Pixels[y*g.Width+x]
}

func (g *PixelGrid) Set(x, y int, p Pixel) {
	g.Pixels[y*g.Width+x] = p
}

// Clone returns a deep copy of the grid
func (g *PixelGrid) Clone() *PixelGrid {
	pixels := make([]Pixel, len(g.Pixels))
	copy(pixels, g.Pixels)
	return &PixelGrid{
		Width:  g.Width,
		Height: g.Height,
		Pixels: pixels,
	}
}

// StegoConfig represents configuration for steganography operations
type StegoConfig struct {
	// LSBBits is the number of low-order bits overwritten per channel (the key)
	LSBBits int
}

type DecodeStatus int

const (
	DecodeFailed DecodeStatus = iota
	DecodeSucceeded
)

func (s DecodeStatus) String() string {
	if s == DecodeSucceeded {
		return "successful"
	}
	return "unsuccessful"
}

// DecodeResult is the outcome of one extraction attempt. A failed attempt
// carries no message.
type DecodeResult struct {
	Status  DecodeStatus `json:"-"`
	LSBBits int          `json:"lsb_bits"`
	Message string       `json:"message,omitempty"`
}

func (r DecodeResult) Succeeded() bool {
	return r.Status == DecodeSucceeded
}

// ProbeResult reports the key found by probing and every attempt made
type ProbeResult struct {
	LSBBits  int
	Message  string
	Attempts []DecodeResult
}

// StegoResponse represents the response after insertion
type StegoResponse struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	Capacity int    `json:"capacity,omitempty"`
}

// ExtractResponse represents the response after extracting a secret message
type ExtractResponse struct {
	Success  bool            `json:"success"`
	Message  string          `json:"message"`
	Secret   string          `json:"secret,omitempty"`
	LSBBits  int             `json:"lsb_bits,omitempty"`
	Attempts []AttemptReport `json:"attempts,omitempty"`
}

// AttemptReport describes one probe attempt in an API response
type AttemptReport struct {
	LSBBits int    `json:"lsb_bits"`
	Status  string `json:"status"`
}

// ImageMetadata represents metadata about an image file
type ImageMetadata struct {
	Width  int
	Height int
	Format string
}
