package stego

import "bytes"

const (
	terminatorBits  = 32
	channelsInPixel = 3
)

// terminator marks the end of a frame. Valid UTF-8 never carries a run of
// more than eleven ones, so the pattern cannot occur inside a payload.
var terminator = bytes.Repeat([]byte{1}, terminatorBits)

// triple is the set of bit groups written to the R, G and B channels of one
// pixel. A nil group leaves its channel untouched.
type triple [channelsInPixel][]byte

// buildFrame lays out payload bits, then padding ones, then the terminator,
// so that the frame length is a multiple of key, and cuts the result into
// key-bit groups, three per pixel.
func buildFrame(payload []byte, key int) []triple {
	bits := bytesToBits(payload)
	padding := (key - (len(bits)+terminatorBits)%key) % key
	bits = append(bits, bytes.Repeat([]byte{1}, padding)...)
	bits = append(bits, terminator...)

	groups := make([][]byte, 0, len(bits)/key)
	for i := 0; i < len(bits); i += key {
		groups = append(groups, bits[i:i+key])
	}

	frame := make([]triple, 0, (len(groups)+channelsInPixel-1)/channelsInPixel)
	for i := 0; i < len(groups); i += channelsInPixel {
		var t triple
		copy(t[:], groups[i:min(i+channelsInPixel, len(groups))])
		frame = append(frame, t)
	}
	return frame
}

// scanForTerminator reports the first index at or after from where the
// terminator starts.
func scanForTerminator(acc []byte, from int) (int, bool) {
	idx := bytes.Index(acc[from:], terminator)
	if idx < 0 {
		return 0, false
	}
	return from + idx, true
}

// payloadEnd maps the start of the first terminator match to the end of the
// payload. The match starts where the run of ones begins, which may be up to
// seven bits inside the last payload byte; the payload itself ends on the
// next byte boundary.
func payloadEnd(runStart int) int {
	return (runStart + bitsInByte - 1) / bitsInByte * bitsInByte
}
