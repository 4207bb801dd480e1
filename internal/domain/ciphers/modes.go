package ciphers

import "fmt"

// ModeKind identifies a supported mode of operation. Like CipherKind it is a
// closed enumeration used as half of the registry key.
type ModeKind int

// Supported mode kinds.
const (
	ModeCBC ModeKind = iota
	ModeCTR
	ModeECB
	ModeOFB
	ModeCFB
)

// String returns the display name of the mode kind.
func (k ModeKind) String() string {
	switch k {
	case ModeCBC:
		return "CBC"
	case ModeCTR:
		return "CTR"
	case ModeECB:
		return "ECB"
	case ModeOFB:
		return "OFB"
	case ModeCFB:
		return "CFB"
	default:
		return fmt.Sprintf("ModeKind(%d)", int(k))
	}
}

// modePayload tags which per-message value a mode carries. A mode commits to
// exactly one variant at construction time; a Bare mode has no payload and
// the engine never reads an IV or nonce from it.
type modePayload int

const (
	payloadNone modePayload = iota
	payloadIV
	payloadNonce
)

// ModeDescriptor describes a mode of operation together with its per-message
// IV or nonce, if the mode carries one. Construct instances with NewCBC,
// NewCTR, NewECB, NewOFB or NewCFB.
type ModeDescriptor struct {
	kind    ModeKind
	name    string
	payload modePayload
	value   []byte
}

// NewCBC builds a CBC mode descriptor carrying an initialization vector.
func NewCBC(iv []byte) ModeDescriptor {
	return ModeDescriptor{kind: ModeCBC, name: "CBC", payload: payloadIV, value: iv}
}

// NewCTR builds a CTR mode descriptor carrying a nonce.
func NewCTR(nonce []byte) ModeDescriptor {
	return ModeDescriptor{kind: ModeCTR, name: "CTR", payload: payloadNonce, value: nonce}
}

// NewECB builds an ECB mode descriptor. ECB carries neither IV nor nonce.
func NewECB() ModeDescriptor {
	return ModeDescriptor{kind: ModeECB, name: "ECB", payload: payloadNone}
}

// NewOFB builds an OFB mode descriptor carrying an initialization vector.
func NewOFB(iv []byte) ModeDescriptor {
	return ModeDescriptor{kind: ModeOFB, name: "OFB", payload: payloadIV, value: iv}
}

// NewCFB builds a CFB mode descriptor carrying an initialization vector.
func NewCFB(iv []byte) ModeDescriptor {
	return ModeDescriptor{kind: ModeCFB, name: "CFB", payload: payloadIV, value: iv}
}

// Kind returns the mode kind.
func (m ModeDescriptor) Kind() ModeKind { return m.kind }

// Name returns the display name used when composing native algorithm names.
func (m ModeDescriptor) Name() string { return m.name }

// HasIV reports whether the mode carries an initialization vector.
func (m ModeDescriptor) HasIV() bool { return m.payload == payloadIV }

// HasNonce reports whether the mode carries a nonce.
func (m ModeDescriptor) HasNonce() bool { return m.payload == payloadNonce }

// IVOrNonce returns the per-message value bound to the mode, or nil for a
// bare mode such as ECB.
func (m ModeDescriptor) IVOrNonce() []byte {
	if m.payload == payloadNone {
		return nil
	}
	return m.value
}

// IsStreaming reports whether the mode produces output byte for byte rather
// than in whole blocks. Streaming modes accept plaintexts of any length
// without padding.
func (m ModeDescriptor) IsStreaming() bool {
	switch m.kind {
	case ModeCTR, ModeOFB, ModeCFB:
		return true
	default:
		return false
	}
}
