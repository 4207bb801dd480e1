//go:build unit
// +build unit

package cryptography

import (
	"fmt"
	"path/filepath"
	"testing"

	"cipher_stream_service/internal/domain/ciphers"
	"cipher_stream_service/internal/pkg/vectors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNISTKnownAnswerVectors checks AES-128-CBC against the published GFSbox
// response file in both directions.
func TestNISTKnownAnswerVectors(t *testing.T) {
	backend := setupCipherBackend(t)
	path := filepath.Join("testdata", "CBCGFSbox128.rsp")

	t.Run("Encrypt", func(t *testing.T) {
		vecs, err := vectors.LoadFromFile(path, "ENCRYPT")
		require.NoError(t, err)
		require.NotEmpty(t, vecs)

		for _, vec := range vecs {
			t.Run(fmt.Sprintf("Count%d", vec.Count), func(t *testing.T) {
				desc, err := ciphers.NewAES(vec.Key)
				require.NoError(t, err)

				ctx, err := backend.CreateEncryptContext(desc, ciphers.NewCBC(vec.IV))
				require.NoError(t, err)
				got := runPass(t, ctx, vec.Plaintext)
				assert.Equal(t, vec.Ciphertext, got)
			})
		}
	})

	t.Run("Decrypt", func(t *testing.T) {
		vecs, err := vectors.LoadFromFile(path, "DECRYPT")
		require.NoError(t, err)
		require.NotEmpty(t, vecs)

		for _, vec := range vecs {
			t.Run(fmt.Sprintf("Count%d", vec.Count), func(t *testing.T) {
				desc, err := ciphers.NewAES(vec.Key)
				require.NoError(t, err)

				ctx, err := backend.CreateDecryptContext(desc, ciphers.NewCBC(vec.IV))
				require.NoError(t, err)
				got := runPass(t, ctx, vec.Ciphertext)
				assert.Equal(t, vec.Plaintext, got)
			})
		}
	})
}
