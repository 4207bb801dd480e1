package ciphers

import (
	"errors"
	"fmt"
)

// Sentinel errors for caller-recoverable conditions.
var (
	// ErrDuplicateRegistration is returned when a (cipher, mode) pair is
	// registered a second time. The first registration stays in effect.
	ErrDuplicateRegistration = errors.New("duplicate cipher adapter registration")

	// ErrContextConsumed is returned on any use of a streaming context after
	// it has been finalized or closed.
	ErrContextConsumed = errors.New("streaming context already consumed")

	// ErrBufferSizing flags an output buffer smaller than the documented
	// sizing formula requires. It indicates an implementation bug in the
	// calling layer, never a data problem.
	ErrBufferSizing = errors.New("output buffer sizing invariant violated")
)

// UnsupportedStage distinguishes the two ways a (cipher, mode) resolution can
// fail: the pair was never registered, or the adapter produced a name the
// engine does not know.
type UnsupportedStage int

const (
	// StageNotRegistered means no adapter exists for the pair.
	StageNotRegistered UnsupportedStage = iota
	// StageUnknownToEngine means the adapter ran but the engine rejected the
	// resolved name.
	StageUnknownToEngine
)

// UnsupportedCombinationError reports that a (cipher, mode) combination
// cannot be resolved to a native algorithm.
type UnsupportedCombinationError struct {
	Cipher CipherKind
	Mode   ModeKind
	Stage  UnsupportedStage
	Name   string // resolved native name, empty when Stage is StageNotRegistered
}

func (e *UnsupportedCombinationError) Error() string {
	if e.Stage == StageNotRegistered {
		return fmt.Sprintf("unsupported cipher combination %s/%s: no adapter registered", e.Cipher, e.Mode)
	}
	return fmt.Sprintf("unsupported cipher combination %s/%s: engine does not provide %q", e.Cipher, e.Mode, e.Name)
}

// UnsupportedAlgorithmError reports a digest algorithm name the engine does
// not recognize.
type UnsupportedAlgorithmError struct {
	Name string
}

func (e *UnsupportedAlgorithmError) Error() string {
	return fmt.Sprintf("unsupported digest algorithm %q", e.Name)
}

// EngineError reports a failure from the native engine for an operation that
// had already passed validation. It belongs to the fatal class of the error
// taxonomy: the condition indicates a broken engine build or an internal
// invariant violation, not bad caller input, and must never be retried. The
// context that produced it has already released its native resources.
type EngineError struct {
	Op  string // engine operation that failed, e.g. "EncryptInit"
	Err error
}

func (e *EngineError) Error() string {
	return fmt.Sprintf("engine failure in %s: %v", e.Op, e.Err)
}

func (e *EngineError) Unwrap() error { return e.Err }
