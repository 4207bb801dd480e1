//go:build unit
// +build unit

package cryptography

import (
	"bytes"
	"encoding/hex"
	"errors"
	"testing"

	"cipher_stream_service/internal/domain/ciphers"
	"cipher_stream_service/internal/infrastructure/engine"
	pkgTesting "cipher_stream_service/internal/pkg/testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupCipherBackend(t *testing.T) ciphers.CipherBackend {
	t.Helper()
	logger := pkgTesting.SetupTestLogger(t)
	backend, err := NewCipherBackend(engine.New(), logger)
	require.NoError(t, err)
	return backend
}

// runPass drives a full streaming pass and concatenates update and finalize
// output.
func runPass(t *testing.T, ctx ciphers.StreamingCipherContext, chunks ...[]byte) []byte {
	t.Helper()
	var out []byte
	for _, chunk := range chunks {
		produced, err := ctx.Update(chunk)
		require.NoError(t, err)
		out = append(out, produced...)
	}
	tail, err := ctx.Finalize()
	require.NoError(t, err)
	return append(out, tail...)
}

func TestRegistryUniqueness(t *testing.T) {
	backend := setupCipherBackend(t)

	err := backend.RegisterCipherAdapter(ciphers.CipherAES, ciphers.ModeCBC, func(c ciphers.AlgorithmDescriptor, m ciphers.ModeDescriptor) string {
		return "overwritten"
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ciphers.ErrDuplicateRegistration)

	// The first registration stays in effect.
	key, _ := ciphers.NewAES(make([]byte, 16))
	assert.True(t, backend.IsSupported(key, ciphers.NewCBC(make([]byte, 16))))
}

func TestRegistryDynamicRegistration(t *testing.T) {
	backend := setupCipherBackend(t)

	// TripleDES/ECB and TripleDES/CTR are intentionally absent from the
	// default population.
	desc, err := ciphers.NewTripleDES(make([]byte, 24))
	require.NoError(t, err)
	assert.False(t, backend.IsSupported(desc, ciphers.NewECB()))

	// Registering a pair makes the resolution path run; the engine still
	// decides whether the resolved name exists.
	err = backend.RegisterCipherAdapter(ciphers.CipherTripleDES, ciphers.ModeECB, func(c ciphers.AlgorithmDescriptor, m ciphers.ModeDescriptor) string {
		return "des-ede3-ecb"
	})
	require.NoError(t, err)
	assert.False(t, backend.IsSupported(desc, ciphers.NewECB()), "engine table has no des-ede3-ecb")

	_, err = backend.CreateEncryptContext(desc, ciphers.NewECB())
	var combErr *ciphers.UnsupportedCombinationError
	require.ErrorAs(t, err, &combErr)
	assert.Equal(t, ciphers.StageUnknownToEngine, combErr.Stage)
	assert.Equal(t, "des-ede3-ecb", combErr.Name)
}

func TestNamingDeterminism(t *testing.T) {
	aes128, err := ciphers.NewAES(make([]byte, 16))
	require.NoError(t, err)
	aes256, err := ciphers.NewAES(make([]byte, 32))
	require.NoError(t, err)
	tdes, err := ciphers.NewTripleDES(make([]byte, 24))
	require.NoError(t, err)

	tests := []struct {
		cipher ciphers.AlgorithmDescriptor
		mode   ciphers.ModeDescriptor
		want   string
	}{
		{aes128, ciphers.NewCBC(make([]byte, 16)), "aes-128-cbc"},
		{aes256, ciphers.NewECB(), "aes-256-ecb"},
		{tdes, ciphers.NewCFB(make([]byte, 8)), "des-ede3-cfb"},
	}
	for _, tt := range tests {
		got := keySizedCipherName(tt.cipher, tt.mode)
		if tt.cipher.Kind() == ciphers.CipherTripleDES {
			got = fixedCipherName("des-ede3")(tt.cipher, tt.mode)
		}
		assert.Equal(t, tt.want, got)
	}
}

func TestSupportQueryNeverRaises(t *testing.T) {
	backend := setupCipherBackend(t)

	aes, err := ciphers.NewAES(make([]byte, 16))
	require.NoError(t, err)
	camellia, err := ciphers.NewCamellia(make([]byte, 24))
	require.NoError(t, err)
	tdes, err := ciphers.NewTripleDES(make([]byte, 24))
	require.NoError(t, err)

	modes := []ciphers.ModeDescriptor{
		ciphers.NewCBC(make([]byte, 16)),
		ciphers.NewCTR(make([]byte, 16)),
		ciphers.NewECB(),
		ciphers.NewOFB(make([]byte, 16)),
		ciphers.NewCFB(make([]byte, 16)),
	}

	for _, mode := range modes {
		assert.True(t, backend.IsSupported(aes, mode), mode.Name())
		assert.True(t, backend.IsSupported(camellia, mode), mode.Name())
	}

	// Unregistered pairs report false, they never error or panic.
	assert.False(t, backend.IsSupported(tdes, ciphers.NewECB()))
	assert.False(t, backend.IsSupported(tdes, ciphers.NewCTR(make([]byte, 8))))
	assert.True(t, backend.IsSupported(tdes, ciphers.NewCBC(make([]byte, 8))))
}

func TestRoundTripAllCombinations(t *testing.T) {
	backend := setupCipherBackend(t)

	type combo struct {
		label     string
		cipher    func() (ciphers.AlgorithmDescriptor, error)
		blockSize int
	}
	combos := []combo{
		{"AES-128", func() (ciphers.AlgorithmDescriptor, error) { return ciphers.NewAES(bytes.Repeat([]byte{0x11}, 16)) }, 16},
		{"AES-256", func() (ciphers.AlgorithmDescriptor, error) { return ciphers.NewAES(bytes.Repeat([]byte{0x22}, 32)) }, 16},
		{"Camellia-128", func() (ciphers.AlgorithmDescriptor, error) { return ciphers.NewCamellia(bytes.Repeat([]byte{0x33}, 16)) }, 16},
		{"Camellia-256", func() (ciphers.AlgorithmDescriptor, error) { return ciphers.NewCamellia(bytes.Repeat([]byte{0x44}, 32)) }, 16},
		{"TripleDES", func() (ciphers.AlgorithmDescriptor, error) { return ciphers.NewTripleDES(bytes.Repeat([]byte{0x55}, 24)) }, 8},
	}

	modeFor := func(kind ciphers.ModeKind, blockSize int) ciphers.ModeDescriptor {
		iv := bytes.Repeat([]byte{0xab}, blockSize)
		switch kind {
		case ciphers.ModeCBC:
			return ciphers.NewCBC(iv)
		case ciphers.ModeCTR:
			return ciphers.NewCTR(iv)
		case ciphers.ModeECB:
			return ciphers.NewECB()
		case ciphers.ModeOFB:
			return ciphers.NewOFB(iv)
		default:
			return ciphers.NewCFB(iv)
		}
	}

	for _, c := range combos {
		for _, kind := range []ciphers.ModeKind{ciphers.ModeCBC, ciphers.ModeCTR, ciphers.ModeECB, ciphers.ModeOFB, ciphers.ModeCFB} {
			desc, err := c.cipher()
			require.NoError(t, err)
			mode := modeFor(kind, c.blockSize)
			if !backend.IsSupported(desc, mode) {
				continue // TripleDES has no CTR or ECB registration
			}

			t.Run(c.label+"/"+kind.String(), func(t *testing.T) {
				plaintext := []byte("round trip property over several blocks of input!!")
				if !mode.IsStreaming() {
					// Block modes need block-aligned input since padding
					// lives above this layer.
					plaintext = bytes.Repeat([]byte{0x5a}, 4*c.blockSize)
				}

				enc, err := backend.CreateEncryptContext(desc, mode)
				require.NoError(t, err)
				ciphertext := runPass(t, enc, plaintext)
				assert.NotEqual(t, plaintext, ciphertext)

				dec, err := backend.CreateDecryptContext(desc, mode)
				require.NoError(t, err)
				recovered := runPass(t, dec, ciphertext)
				assert.Equal(t, plaintext, recovered)
			})
		}
	}
}

func TestChunkedVersusBulkEquivalence(t *testing.T) {
	backend := setupCipherBackend(t)
	desc, err := ciphers.NewAES(bytes.Repeat([]byte{0x0f}, 16))
	require.NoError(t, err)
	iv := bytes.Repeat([]byte{0xf0}, 16)

	plaintext := bytes.Repeat([]byte("0123456789abcdef"), 4) // 64 bytes

	splits := [][]int{
		{64},
		{16, 16, 16, 16},
		{1, 63},
		{7, 9, 17, 31},
		{0, 5, 0, 59},
		{33, 31},
	}

	for _, mode := range []ciphers.ModeDescriptor{ciphers.NewCBC(iv), ciphers.NewCTR(iv), ciphers.NewECB()} {
		bulkCtx, err := backend.CreateEncryptContext(desc, mode)
		require.NoError(t, err)
		bulk := runPass(t, bulkCtx, plaintext)

		for _, split := range splits {
			var chunks [][]byte
			offset := 0
			for _, n := range split {
				chunks = append(chunks, plaintext[offset:offset+n])
				offset += n
			}
			require.Equal(t, len(plaintext), offset)

			ctx, err := backend.CreateEncryptContext(desc, mode)
			require.NoError(t, err)
			chunked := runPass(t, ctx, chunks...)
			assert.Equal(t, bulk, chunked, "mode %s split %v", mode.Name(), split)
		}
	}
}

func TestContextConsumedPolicy(t *testing.T) {
	backend := setupCipherBackend(t)
	desc, err := ciphers.NewAES(make([]byte, 16))
	require.NoError(t, err)
	mode := ciphers.NewCBC(make([]byte, 16))

	t.Run("UpdateAfterFinalize", func(t *testing.T) {
		ctx, err := backend.CreateEncryptContext(desc, mode)
		require.NoError(t, err)
		_, err = ctx.Finalize()
		require.NoError(t, err)

		_, err = ctx.Update([]byte("more"))
		assert.ErrorIs(t, err, ciphers.ErrContextConsumed)
	})

	t.Run("DoubleFinalize", func(t *testing.T) {
		ctx, err := backend.CreateEncryptContext(desc, mode)
		require.NoError(t, err)
		_, err = ctx.Finalize()
		require.NoError(t, err)

		_, err = ctx.Finalize()
		assert.ErrorIs(t, err, ciphers.ErrContextConsumed)
	})

	t.Run("CloseIsIdempotent", func(t *testing.T) {
		ctx, err := backend.CreateEncryptContext(desc, mode)
		require.NoError(t, err)
		require.NoError(t, ctx.Close())
		require.NoError(t, ctx.Close())

		_, err = ctx.Update(nil)
		assert.ErrorIs(t, err, ciphers.ErrContextConsumed)
	})

	t.Run("FinalizeErrorStillReleases", func(t *testing.T) {
		ctx, err := backend.CreateEncryptContext(desc, mode)
		require.NoError(t, err)
		_, err = ctx.Update([]byte("unaligned"))
		require.NoError(t, err)

		_, err = ctx.Finalize()
		require.Error(t, err)
		var engineErr *ciphers.EngineError
		assert.True(t, errors.As(err, &engineErr))

		// The context reached its terminal state on the error path.
		_, err = ctx.Update(nil)
		assert.ErrorIs(t, err, ciphers.ErrContextConsumed)
	})
}

func TestZeroVectorKnownAnswer(t *testing.T) {
	backend := setupCipherBackend(t)

	// AES-128 of the all-zero block under the all-zero key, the published
	// value from the NIST validation suite. A zero IV makes CBC degenerate
	// to the raw block transform for the first block.
	desc, err := ciphers.NewAES(make([]byte, 16))
	require.NoError(t, err)
	mode := ciphers.NewCBC(make([]byte, 16))

	ctx, err := backend.CreateEncryptContext(desc, mode)
	require.NoError(t, err)
	ciphertext := runPass(t, ctx, make([]byte, 16))
	assert.Equal(t, "66e94bd4ef8a2c3b884cfa59ca342b2e", hex.EncodeToString(ciphertext))
}
