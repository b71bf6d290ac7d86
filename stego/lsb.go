// Package stego hides text in the least significant bits of an image's
// colour channels and recovers it again.
//
// A message is escaped, expanded into bits, padded with ones and closed by a
// 32-bit all-ones terminator. The resulting frame is cut into groups of
// LSBBits bits that overwrite the low bits of the R, G and B channels of
// consecutive pixels in row-major order. Extraction reads the same low bits
// back until the terminator shows up.
package stego

import (
	"fmt"

	"lsb-steganography/models"
)

const (
	MinLSBBits = 1
	MaxLSBBits = 7
)

type LSBSteganography struct {
	config *models.StegoConfig
}

func NewLSBSteganography(config *models.StegoConfig) *LSBSteganography {
	return &LSBSteganography{
		config: config,
	}
}

func (lsb *LSBSteganography) validateKey() error {
	if lsb.config.LSBBits < MinLSBBits || lsb.config.LSBBits > MaxLSBBits {
		return fmt.Errorf("%w: got %d", ErrLargeKey, lsb.config.LSBBits)
	}
	return nil
}

func validateGrid(grid *models.PixelGrid) error {
	if grid.Width < 0 || grid.Height < 0 || len(grid.Pixels) != grid.Len() {
		return fmt.Errorf("%w: %dx%d with %d pixels", ErrInvalidGrid, grid.Width, grid.Height, len(grid.Pixels))
	}
	return nil
}

// CalculateCapacity returns the largest escaped message, in bytes, that fits
// in grid at the configured key.
func (lsb *LSBSteganography) CalculateCapacity(grid *models.PixelGrid) int {
	totalBits := grid.Len() * channelsInPixel * lsb.config.LSBBits
	capacity := (totalBits - terminatorBits) / bitsInByte
	if capacity < 0 {
		return 0
	}
	return capacity
}

// Embed writes text into grid. The grid is left untouched when an error is
// returned.
func (lsb *LSBSteganography) Embed(text string, grid *models.PixelGrid) error {
	if err := lsb.validateKey(); err != nil {
		return err
	}
	if err := validateGrid(grid); err != nil {
		return err
	}
	if text == "" {
		return ErrEmptyPayload
	}
	if !validText(text) {
		return ErrInvalidPayload
	}

	frame := buildFrame([]byte(Escape(text)), lsb.config.LSBBits)
	if len(frame) > grid.Len() {
		return &CapacityError{
			Required:  len(frame),
			Available: grid.Len(),
			LSBBits:   lsb.config.LSBBits,
		}
	}

	for i, t := range frame {
		pixel := grid.Pixels[i]
		for c := range channelsInPixel {
			pixel[c] = writeBits(pixel[c], t[c])
		}
		grid.Pixels[i] = pixel
	}

	return nil
}

// Extract reads a message back from grid. Running out of pixels before the
// terminator is found yields a failed result, not an error. So does a payload
// that Escape could not have produced, which is what a wrong key usually
// reads. The decode gives up as soon as such a byte is packed.
func (lsb *LSBSteganography) Extract(grid *models.PixelGrid) (models.DecodeResult, error) {
	if err := lsb.validateKey(); err != nil {
		return models.DecodeResult{}, err
	}
	if err := validateGrid(grid); err != nil {
		return models.DecodeResult{}, err
	}

	key := lsb.config.LSBBits
	result := models.DecodeResult{
		Status:  models.DecodeFailed,
		LSBBits: key,
	}

	// bits not yet packed; tail[0] always sits on a byte boundary
	tail := make([]byte, 0, terminatorBits+bitsInByte+channelsInPixel*MaxLSBBits)
	var (
		payload []byte
		checked int
		ok      bool
	)
	for _, pixel := range grid.Pixels {
		from := max(0, len(tail)-terminatorBits+1)
		for c := range channelsInPixel {
			tail = append(tail, readBits(pixel[c], key)...)
		}

		if runStart, found := scanForTerminator(tail, from); found {
			payload = append(payload, bitsToBytes(tail[:payloadEnd(runStart)])...)
			if _, ok = checkText(payload, checked, true, escapedRune); !ok {
				return result, nil
			}
			result.Status = models.DecodeSucceeded
			result.Message = Unescape(string(payload))
			return result, nil
		}

		// The terminator can only start at or after len(tail)-31 now, so
		// every whole byte before that belongs to the payload.
		n := (len(tail) - terminatorBits + 1) / bitsInByte * bitsInByte
		if n <= 0 {
			continue
		}
		payload = append(payload, bitsToBytes(tail[:n])...)
		tail = append(tail[:0], tail[n:]...)
		if checked, ok = checkText(payload, checked, false, escapedRune); !ok {
			return result, nil
		}
	}

	return result, nil
}
