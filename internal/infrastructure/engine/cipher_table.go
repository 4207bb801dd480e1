package engine

import (
	"crypto/aes"
	stdcipher "crypto/cipher"
	"crypto/des"
	"fmt"

	"github.com/aead/camellia"
)

type modeOp int

const (
	opCBC modeOp = iota
	opCTR
	opECB
	opOFB
	opCFB
)

// cipherEntry is one row of the cipher name table.
type cipherEntry struct {
	name      string
	keyLen    int
	blockSize int
	newBlock  func(key []byte) (stdcipher.Block, error)
	op        modeOp
}

type nativeEngine struct {
	ciphers map[string]*cipherEntry
	digests map[string]*digestEntry
}

// New builds the default engine with the full algorithm table: AES and
// Camellia at 128/192/256 bit keys across cbc, ctr, ecb, ofb and cfb,
// three-key 3DES across cbc, cfb and ofb, and the digest table.
func New() Engine {
	e := &nativeEngine{
		ciphers: make(map[string]*cipherEntry),
		digests: defaultDigestTable(),
	}

	families := []struct {
		name      string
		blockSize int
		newBlock  func(key []byte) (stdcipher.Block, error)
	}{
		{"aes", aes.BlockSize, aes.NewCipher},
		{"camellia", camellia.BlockSize, camellia.NewCipher},
	}
	modes := []struct {
		name string
		op   modeOp
	}{
		{"cbc", opCBC},
		{"ctr", opCTR},
		{"ecb", opECB},
		{"ofb", opOFB},
		{"cfb", opCFB},
	}

	for _, fam := range families {
		for _, keyLen := range []int{16, 24, 32} {
			for _, mode := range modes {
				name := fmt.Sprintf("%s-%d-%s", fam.name, keyLen*8, mode.name)
				e.ciphers[name] = &cipherEntry{
					name:      name,
					keyLen:    keyLen,
					blockSize: fam.blockSize,
					newBlock:  fam.newBlock,
					op:        mode.op,
				}
			}
		}
	}

	// 3DES takes a fixed 24 byte key, so its names carry no key-size part.
	for _, mode := range modes {
		switch mode.op {
		case opCBC, opCFB, opOFB:
			name := "des-ede3-" + mode.name
			e.ciphers[name] = &cipherEntry{
				name:      name,
				keyLen:    24,
				blockSize: des.BlockSize,
				newBlock:  des.NewTripleDESCipher,
				op:        mode.op,
			}
		}
	}

	return e
}

func (e *nativeEngine) CipherByName(name string) (CipherAlgorithm, error) {
	entry, ok := e.ciphers[name]
	if !ok {
		return nil, fmt.Errorf("cipher %q: %w", name, ErrUnknownAlgorithm)
	}
	return entry, nil
}

func (e *nativeEngine) DigestByName(name string) (DigestAlgorithm, error) {
	entry, ok := e.digests[name]
	if !ok {
		return nil, fmt.Errorf("digest %q: %w", name, ErrUnknownAlgorithm)
	}
	return entry, nil
}

func (e *cipherEntry) Name() string { return e.name }

func (e *cipherEntry) BlockSize() int { return e.blockSize }

func (e *cipherEntry) KeySize() int { return e.keyLen }

func (e *cipherEntry) NewContext(dir Direction, key, ivOrNonce []byte) (CipherContext, error) {
	if len(key) != e.keyLen {
		return nil, fmt.Errorf("%s: key must be %d bytes, got %d", e.name, e.keyLen, len(key))
	}
	block, err := e.newBlock(key)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", e.name, err)
	}

	if e.op == opECB {
		if len(ivOrNonce) != 0 {
			return nil, fmt.Errorf("%s: ECB takes no IV or nonce", e.name)
		}
		return newBlockContext(newECB(block, dir), dir, e.blockSize), nil
	}

	if len(ivOrNonce) != e.blockSize {
		return nil, fmt.Errorf("%s: IV or nonce must be %d bytes, got %d", e.name, e.blockSize, len(ivOrNonce))
	}

	switch e.op {
	case opCBC:
		if dir == Encrypt {
			return newBlockContext(stdcipher.NewCBCEncrypter(block, ivOrNonce), dir, e.blockSize), nil
		}
		return newBlockContext(stdcipher.NewCBCDecrypter(block, ivOrNonce), dir, e.blockSize), nil
	case opCTR:
		return newStreamContext(stdcipher.NewCTR(block, ivOrNonce)), nil
	case opOFB:
		return newStreamContext(stdcipher.NewOFB(block, ivOrNonce)), nil
	case opCFB:
		if dir == Encrypt {
			return newStreamContext(stdcipher.NewCFBEncrypter(block, ivOrNonce)), nil
		}
		return newStreamContext(stdcipher.NewCFBDecrypter(block, ivOrNonce)), nil
	default:
		return nil, fmt.Errorf("%s: unknown mode operation %d", e.name, e.op)
	}
}
