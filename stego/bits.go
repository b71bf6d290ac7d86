package stego

const bitsInByte = 8

// bytesToBits expands data into one element per bit, most significant bit first.
func bytesToBits(data []byte) []byte {
	bits := make([]byte, 0, len(data)*bitsInByte)
	for _, b := range data {
		for i := 7; i >= 0; i-- {
			bits = append(bits, (b>>i)&1)
		}
	}
	return bits
}

// bitsToBytes packs bits eight at a time. A short final group is treated as
// if it were left-padded with zeros.
func bitsToBytes(bits []byte) []byte {
	bytes := make([]byte, 0, (len(bits)+bitsInByte-1)/bitsInByte)
	for i := 0; i < len(bits); i += bitsInByte {
		end := min(i+bitsInByte, len(bits))
		var b byte
		for _, bit := range bits[i:end] {
			b = (b << 1) | (bit & 1)
		}
		bytes = append(bytes, b)
	}
	return bytes
}
