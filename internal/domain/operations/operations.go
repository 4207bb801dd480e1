// Package operations defines the audit record kept for every completed
// cipher or digest pass and the repository contract for persisting them.
package operations

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// Direction constants for audit records.
const (
	DirectionEncrypt = "encrypt"
	DirectionDecrypt = "decrypt"
	DirectionDigest  = "digest"
)

// Record describes one completed streaming pass: which native algorithm ran,
// in which direction, and how many bytes went in and came out. Key material
// and payloads are never recorded.
type Record struct {
	ID          string    `validate:"required,uuid"`
	Algorithm   string    `validate:"required"`
	Direction   string    `validate:"required,oneof=encrypt decrypt digest"`
	InputBytes  int64     `validate:"gte=0"`
	OutputBytes int64     `validate:"gte=0"`
	RequestedAt time.Time `validate:"required"`
}

// Validate checks that all fields of the record are well formed.
func (r *Record) Validate() error {
	validate := validator.New()
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("validation failed for operation record: %w", err)
	}
	return nil
}

// Query filters and orders record listings.
type Query struct {
	Algorithm string
	Direction string
	Since     time.Time
	Limit     int
}

// Repository persists operation records.
type Repository interface {
	// Create stores a new record.
	Create(ctx context.Context, record *Record) error

	// List returns records matching the query, newest first.
	List(ctx context.Context, query *Query) ([]*Record, error)
}
