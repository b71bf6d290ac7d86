package stego

import (
	"errors"
	"fmt"
)

var (
	// ErrLargeKey indicates a key outside 1..7.
	ErrLargeKey = errors.New("stego: key must be between 1 and 7")

	// ErrNotEnoughPixels indicates the frame needs more pixels than the image holds.
	ErrNotEnoughPixels = errors.New("stego: not enough pixels, try a larger image or a bigger key")

	// ErrEmptyPayload indicates an empty message.
	ErrEmptyPayload = errors.New("stego: message is empty")

	// ErrInvalidPayload indicates a message that is not valid UTF-8 or holds
	// control characters other than line breaks and tabs.
	ErrInvalidPayload = errors.New("stego: message is not printable UTF-8")

	// ErrInvalidGrid indicates a grid whose pixel slice does not match its size.
	ErrInvalidGrid = errors.New("stego: pixel count does not match grid size")

	// ErrKeyNotFound indicates that no key in 1..7 decoded the image.
	ErrKeyNotFound = errors.New("stego: no valid key found")
)

// CapacityError reports how many pixels a frame needs against what the image holds.
type CapacityError struct {
	Required  int
	Available int
	LSBBits   int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("stego: frame needs %d pixels at key %d, image has %d", e.Required, e.LSBBits, e.Available)
}

func (e *CapacityError) Unwrap() error {
	return ErrNotEnoughPixels
}
