package stego

// writeBits replaces the low len(bits) bits of value with bits. An empty
// group leaves the channel untouched.
func writeBits(value uint8, bits []byte) uint8 {
	if len(bits) == 0 {
		return value
	}

	var group uint8
	for _, bit := range bits {
		group = (group << 1) | (bit & 1)
	}

	// Clear the LSB bits and set new ones
	mask := uint8((1 << len(bits)) - 1)
	return (value &^ mask) | group
}

// readBits returns the low key bits of value, most significant first.
func readBits(value uint8, key int) []byte {
	bits := make([]byte, key)
	for i := range key {
		bits[i] = (value >> (key - 1 - i)) & 1
	}
	return bits
}
