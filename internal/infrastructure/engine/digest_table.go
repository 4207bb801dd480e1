package engine

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"encoding"
	"fmt"
	"hash"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"
)

// digestEntry is one row of the digest name table.
type digestEntry struct {
	name    string
	size    int
	newHash func() (hash.Hash, error)
}

func defaultDigestTable() map[string]*digestEntry {
	plain := func(f func() hash.Hash) func() (hash.Hash, error) {
		return func() (hash.Hash, error) { return f(), nil }
	}
	entries := []*digestEntry{
		{name: "md5", size: md5.Size, newHash: plain(md5.New)},
		{name: "sha1", size: sha1.Size, newHash: plain(sha1.New)},
		{name: "sha224", size: sha256.Size224, newHash: plain(sha256.New224)},
		{name: "sha256", size: sha256.Size, newHash: plain(sha256.New)},
		{name: "sha384", size: sha512.Size384, newHash: plain(sha512.New384)},
		{name: "sha512", size: sha512.Size, newHash: plain(sha512.New)},
		{name: "sha3-256", size: 32, newHash: plain(sha3.New256)},
		{name: "sha3-512", size: 64, newHash: plain(sha3.New512)},
		{name: "blake2b-256", size: blake2b.Size256, newHash: func() (hash.Hash, error) { return blake2b.New256(nil) }},
		{name: "blake2b-512", size: blake2b.Size, newHash: func() (hash.Hash, error) { return blake2b.New512(nil) }},
	}
	table := make(map[string]*digestEntry, len(entries))
	for _, e := range entries {
		table[e.name] = e
	}
	return table
}

func (e *digestEntry) Name() string { return e.name }

func (e *digestEntry) Size() int { return e.size }

func (e *digestEntry) NewContext() (DigestContext, error) {
	h, err := e.newHash()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", e.name, err)
	}
	_, marshals := h.(encoding.BinaryMarshaler)
	return &digestContext{entry: e, h: h, buffered: !marshals}, nil
}

type digestContext struct {
	entry *digestEntry
	h     hash.Hash
	// buffered contexts retain their input in replay because the hash state
	// cannot be marshaled; Copy forks them by replaying into a fresh hash.
	buffered bool
	replay   []byte
	released bool
}

func (c *digestContext) Update(p []byte) error {
	if c.released {
		return ErrContextReleased
	}
	if c.buffered {
		c.replay = append(c.replay, p...)
	}
	// hash.Hash.Write never returns an error.
	_, _ = c.h.Write(p)
	return nil
}

func (c *digestContext) Finalize(dst []byte) (int, error) {
	if c.released {
		return 0, ErrContextReleased
	}
	defer c.Release()
	if len(dst) != c.entry.size {
		return 0, fmt.Errorf("%s digest is %d bytes, buffer is %d", c.entry.name, c.entry.size, len(dst))
	}
	copy(dst, c.h.Sum(nil))
	return c.entry.size, nil
}

// Copy duplicates the hash state, through binary marshaling where the hash
// supports it and by replaying the retained input otherwise (sha3).
func (c *digestContext) Copy() (DigestContext, error) {
	if c.released {
		return nil, ErrContextReleased
	}
	fresh, err := c.entry.newHash()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", c.entry.name, err)
	}

	if c.buffered {
		_, _ = fresh.Write(c.replay)
		return &digestContext{
			entry:    c.entry,
			h:        fresh,
			buffered: true,
			replay:   append([]byte(nil), c.replay...),
		}, nil
	}

	state, err := c.h.(encoding.BinaryMarshaler).MarshalBinary()
	if err != nil {
		return nil, fmt.Errorf("%s: marshal hash state: %w", c.entry.name, err)
	}
	u, ok := fresh.(encoding.BinaryUnmarshaler)
	if !ok {
		return nil, fmt.Errorf("%s state cannot be duplicated", c.entry.name)
	}
	if err := u.UnmarshalBinary(state); err != nil {
		return nil, fmt.Errorf("%s: unmarshal hash state: %w", c.entry.name, err)
	}
	return &digestContext{entry: c.entry, h: fresh}, nil
}

func (c *digestContext) Release() {
	c.released = true
	c.h = nil
	for i := range c.replay {
		c.replay[i] = 0
	}
	c.replay = nil
}
