// Package padding implements PKCS7 padding. The streaming cipher engine
// runs with padding disabled, so block-mode plaintext is padded here, above
// the engine, and unpadded again after decryption.
package padding

import (
	"bytes"
	"errors"
	"fmt"
)

// ErrInvalidPadding is returned when unpadding input whose tail is not a
// well-formed PKCS7 suffix.
var ErrInvalidPadding = errors.New("invalid PKCS7 padding")

// Pad appends a PKCS7 suffix so the result is a whole number of blocks.
// Input that is already block-aligned gains a full block of padding.
func Pad(data []byte, blockSize int) ([]byte, error) {
	if blockSize < 1 || blockSize > 255 {
		return nil, fmt.Errorf("block size %d out of range 1..255", blockSize)
	}
	padLen := blockSize - len(data)%blockSize
	padded := make([]byte, 0, len(data)+padLen)
	padded = append(padded, data...)
	return append(padded, bytes.Repeat([]byte{byte(padLen)}, padLen)...), nil
}

// Unpad strips a PKCS7 suffix, validating every padding byte.
func Unpad(data []byte, blockSize int) ([]byte, error) {
	if blockSize < 1 || blockSize > 255 {
		return nil, fmt.Errorf("block size %d out of range 1..255", blockSize)
	}
	if len(data) == 0 || len(data)%blockSize != 0 {
		return nil, ErrInvalidPadding
	}
	padLen := int(data[len(data)-1])
	if padLen < 1 || padLen > blockSize {
		return nil, ErrInvalidPadding
	}
	for _, b := range data[len(data)-padLen:] {
		if int(b) != padLen {
			return nil, ErrInvalidPadding
		}
	}
	return data[:len(data)-padLen], nil
}
