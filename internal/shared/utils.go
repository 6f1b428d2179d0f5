// Package shared provides small helpers for handling sensitive input.
package shared

// WipeByteArray overwrites the contents of the provided byte slice with zeros.
// The forms call it on typed passwords once they have been handed to the
// session store.
//
// If the slice is nil, the function does nothing.
func WipeByteArray(b []byte) {
	if b == nil {
		return
	}
	for i := range b {
		b[i] = 0
	}
}
