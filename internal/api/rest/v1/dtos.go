package v1

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Message string `json:"message"`
}

// EncryptRequest carries one whole-message encryption request. Binary fields
// are hex encoded, matching the convention of the published test vectors.
type EncryptRequest struct {
	Cipher    string `json:"cipher" validate:"required"`
	Mode      string `json:"mode" validate:"required"`
	Key       string `json:"key" validate:"required,hexadecimal"`
	IV        string `json:"iv" validate:"omitempty,hexadecimal"`
	Plaintext string `json:"plaintext" validate:"omitempty,hexadecimal"`
}

// Validate checks the request fields.
func (r *EncryptRequest) Validate() error {
	if err := validator.New().Struct(r); err != nil {
		return fmt.Errorf("validation failed for EncryptRequest: %w", err)
	}
	return nil
}

// EncryptResponse carries the hex-encoded ciphertext.
type EncryptResponse struct {
	Ciphertext string `json:"ciphertext"`
}

// DecryptRequest carries one whole-message decryption request.
type DecryptRequest struct {
	Cipher     string `json:"cipher" validate:"required"`
	Mode       string `json:"mode" validate:"required"`
	Key        string `json:"key" validate:"required,hexadecimal"`
	IV         string `json:"iv" validate:"omitempty,hexadecimal"`
	Ciphertext string `json:"ciphertext" validate:"omitempty,hexadecimal"`
}

// Validate checks the request fields.
func (r *DecryptRequest) Validate() error {
	if err := validator.New().Struct(r); err != nil {
		return fmt.Errorf("validation failed for DecryptRequest: %w", err)
	}
	return nil
}

// DecryptResponse carries the hex-encoded plaintext.
type DecryptResponse struct {
	Plaintext string `json:"plaintext"`
}

// DigestRequest carries one whole-message hashing request.
type DigestRequest struct {
	Algorithm string `json:"algorithm" validate:"required"`
	Data      string `json:"data" validate:"omitempty,hexadecimal"`
}

// Validate checks the request fields.
func (r *DigestRequest) Validate() error {
	if err := validator.New().Struct(r); err != nil {
		return fmt.Errorf("validation failed for DigestRequest: %w", err)
	}
	return nil
}

// DigestResponse carries the hex-encoded digest.
type DigestResponse struct {
	Digest string `json:"digest"`
}

// CombinationResponse describes one usable cipher/mode pairing.
type CombinationResponse struct {
	Cipher  string `json:"cipher"`
	KeySize int    `json:"key_size"`
	Mode    string `json:"mode"`
}

// AlgorithmsResponse lists the capabilities of the running engine build.
type AlgorithmsResponse struct {
	Ciphers []CombinationResponse `json:"ciphers"`
	Digests []string              `json:"digests"`
}
