package common

// WipeByteArray zeroes buf in place. Use it to scrub passwords once they
// have been handed to the API layer.
func WipeByteArray(buf []byte) {
	for i := range buf {
		buf[i] = 0
	}
}
