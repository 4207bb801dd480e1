package engine

import (
	stdcipher "crypto/cipher"
	"fmt"
)

// blockContext streams through a block mode (CBC, ECB). Input that does not
// fill a whole block is buffered across Update calls; Finalize either applies
// or strips PKCS7 padding, or rejects a dangling partial block when padding
// is disabled.
type blockContext struct {
	mode      stdcipher.BlockMode
	dir       Direction
	blockSize int
	padding   bool
	buf       []byte
	released  bool
}

func newBlockContext(mode stdcipher.BlockMode, dir Direction, blockSize int) *blockContext {
	return &blockContext{mode: mode, dir: dir, blockSize: blockSize, padding: true}
}

func (c *blockContext) SetPadding(enabled bool) { c.padding = enabled }

func (c *blockContext) Update(dst, src []byte) (int, error) {
	if c.released {
		return 0, ErrContextReleased
	}
	c.buf = append(c.buf, src...)

	n := len(c.buf) - len(c.buf)%c.blockSize
	// Padded decryption withholds the final block so Finalize can strip the
	// padding from it.
	if c.padding && c.dir == Decrypt && n > 0 && n == len(c.buf) {
		n -= c.blockSize
	}
	if n == 0 {
		return 0, nil
	}
	if len(dst) < n {
		return 0, fmt.Errorf("need %d bytes, have %d: %w", n, len(dst), ErrShortBuffer)
	}

	c.mode.CryptBlocks(dst[:n], c.buf[:n])
	c.buf = append(c.buf[:0], c.buf[n:]...)
	return n, nil
}

func (c *blockContext) Finalize(dst []byte) (int, error) {
	if c.released {
		return 0, ErrContextReleased
	}
	defer c.Release()

	if !c.padding {
		if len(c.buf) != 0 {
			return 0, fmt.Errorf("%d bytes buffered: %w", len(c.buf), ErrPartialBlock)
		}
		return 0, nil
	}

	if c.dir == Encrypt {
		padLen := c.blockSize - len(c.buf)%c.blockSize
		if len(dst) < c.blockSize {
			return 0, fmt.Errorf("need %d bytes, have %d: %w", c.blockSize, len(dst), ErrShortBuffer)
		}
		block := make([]byte, 0, c.blockSize)
		block = append(block, c.buf...)
		for i := 0; i < padLen; i++ {
			block = append(block, byte(padLen))
		}
		c.mode.CryptBlocks(dst[:c.blockSize], block)
		return c.blockSize, nil
	}

	// Padded decryption: exactly the withheld block must remain.
	if len(c.buf) != c.blockSize {
		return 0, fmt.Errorf("%d bytes buffered: %w", len(c.buf), ErrPartialBlock)
	}
	block := make([]byte, c.blockSize)
	c.mode.CryptBlocks(block, c.buf)
	padLen := int(block[c.blockSize-1])
	if padLen < 1 || padLen > c.blockSize {
		return 0, ErrBadPadding
	}
	for _, b := range block[c.blockSize-padLen:] {
		if int(b) != padLen {
			return 0, ErrBadPadding
		}
	}
	n := c.blockSize - padLen
	if len(dst) < n {
		return 0, fmt.Errorf("need %d bytes, have %d: %w", n, len(dst), ErrShortBuffer)
	}
	copy(dst, block[:n])
	return n, nil
}

func (c *blockContext) Release() {
	if c.released {
		return
	}
	c.released = true
	for i := range c.buf {
		c.buf[i] = 0
	}
	c.buf = nil
	c.mode = nil
}

// streamContext streams through a stream mode (CTR, OFB, CFB). Output is
// produced byte for byte, nothing is buffered and Finalize is always empty.
type streamContext struct {
	stream   stdcipher.Stream
	released bool
}

func newStreamContext(stream stdcipher.Stream) *streamContext {
	return &streamContext{stream: stream}
}

// SetPadding is a no-op: stream modes never pad.
func (c *streamContext) SetPadding(enabled bool) {}

func (c *streamContext) Update(dst, src []byte) (int, error) {
	if c.released {
		return 0, ErrContextReleased
	}
	if len(dst) < len(src) {
		return 0, fmt.Errorf("need %d bytes, have %d: %w", len(src), len(dst), ErrShortBuffer)
	}
	c.stream.XORKeyStream(dst[:len(src)], src)
	return len(src), nil
}

func (c *streamContext) Finalize(dst []byte) (int, error) {
	if c.released {
		return 0, ErrContextReleased
	}
	c.Release()
	return 0, nil
}

func (c *streamContext) Release() {
	c.released = true
	c.stream = nil
}
