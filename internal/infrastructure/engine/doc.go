// Package engine is the native algorithm provider backing the streaming
// cipher and digest layers. It resolves lowercase algorithm names such as
// "aes-128-cbc" or "sha256" through a fixed table to concrete primitives and
// hands out low-level contexts with EVP-style update/finalize semantics:
// callers provide output buffers, block modes buffer partial blocks
// internally, and finalize flushes or rejects the tail depending on the
// padding flag.
package engine
