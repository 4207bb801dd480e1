// Package cryptography implements the streaming cipher and digest backends
// on top of the native engine: the (cipher, mode) adapter registry with its
// default population, and the create/update/finalize context lifecycle with
// deterministic resource release on every exit path.
package cryptography
