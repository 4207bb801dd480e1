package ciphers

import (
	"fmt"
	"strings"
)

// NewCipherByName builds an algorithm descriptor from a cipher family name,
// matched case-insensitively. Used by the CLI and API surfaces.
func NewCipherByName(name string, key []byte) (AlgorithmDescriptor, error) {
	switch strings.ToLower(name) {
	case "aes":
		return NewAES(key)
	case "camellia":
		return NewCamellia(key)
	case "tripledes", "3des", "des-ede3":
		return NewTripleDES(key)
	default:
		return AlgorithmDescriptor{}, fmt.Errorf("unknown cipher %q", name)
	}
}

// NewModeByName builds a mode descriptor from a mode name, matched
// case-insensitively. ECB rejects a supplied IV or nonce; every other mode
// requires one.
func NewModeByName(name string, ivOrNonce []byte) (ModeDescriptor, error) {
	switch strings.ToLower(name) {
	case "cbc":
		if len(ivOrNonce) == 0 {
			return ModeDescriptor{}, fmt.Errorf("mode CBC requires an IV")
		}
		return NewCBC(ivOrNonce), nil
	case "ctr":
		if len(ivOrNonce) == 0 {
			return ModeDescriptor{}, fmt.Errorf("mode CTR requires a nonce")
		}
		return NewCTR(ivOrNonce), nil
	case "ecb":
		if len(ivOrNonce) != 0 {
			return ModeDescriptor{}, fmt.Errorf("mode ECB takes no IV or nonce")
		}
		return NewECB(), nil
	case "ofb":
		if len(ivOrNonce) == 0 {
			return ModeDescriptor{}, fmt.Errorf("mode OFB requires an IV")
		}
		return NewOFB(ivOrNonce), nil
	case "cfb":
		if len(ivOrNonce) == 0 {
			return ModeDescriptor{}, fmt.Errorf("mode CFB requires an IV")
		}
		return NewCFB(ivOrNonce), nil
	default:
		return ModeDescriptor{}, fmt.Errorf("unknown mode %q", name)
	}
}
