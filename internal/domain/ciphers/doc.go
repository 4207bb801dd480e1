// Package ciphers contains the value types and contracts for symmetric
// block-cipher operations: algorithm and mode descriptors, the closed
// cipher/mode kind enumerations used for registry dispatch, and the typed
// error taxonomy shared by the streaming engine implementations.
package ciphers
