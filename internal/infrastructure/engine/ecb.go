package engine

import stdcipher "crypto/cipher"

// ecb applies a block cipher block by block with no chaining. The standard
// library leaves ECB out on purpose, but the engine's algorithm table carries
// it for known-answer vectors and interoperability, so it is implemented
// here as a cipher.BlockMode over any cipher.Block.
type ecb struct {
	block stdcipher.Block
	dir   Direction
}

func newECB(block stdcipher.Block, dir Direction) stdcipher.BlockMode {
	return &ecb{block: block, dir: dir}
}

func (e *ecb) BlockSize() int { return e.block.BlockSize() }

func (e *ecb) CryptBlocks(dst, src []byte) {
	bs := e.block.BlockSize()
	if len(src)%bs != 0 {
		panic("engine: ecb input not full blocks")
	}
	if len(dst) < len(src) {
		panic("engine: ecb output smaller than input")
	}
	for len(src) > 0 {
		if e.dir == Encrypt {
			e.block.Encrypt(dst[:bs], src[:bs])
		} else {
			e.block.Decrypt(dst[:bs], src[:bs])
		}
		src = src[bs:]
		dst = dst[bs:]
	}
}
