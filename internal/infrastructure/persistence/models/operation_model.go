package models

import (
	"time"

	"cipher_stream_service/internal/domain/operations"
)

// OperationModel is the GORM database model for operation audit records
// (infrastructure concern).
type OperationModel struct {
	ID          string    `gorm:"primaryKey;type:uuid"`
	Algorithm   string    `gorm:"not null;index;type:varchar(40)"`
	Direction   string    `gorm:"not null;index;type:varchar(10)"`
	InputBytes  int64     `gorm:"type:bigint"`
	OutputBytes int64     `gorm:"type:bigint"`
	RequestedAt time.Time `gorm:"not null;index"`
}

// TableName specifies the table name for GORM
func (OperationModel) TableName() string {
	return "operations"
}

// ToDomain converts GORM model to domain entity
func (m *OperationModel) ToDomain() *operations.Record {
	return &operations.Record{
		ID:          m.ID,
		Algorithm:   m.Algorithm,
		Direction:   m.Direction,
		InputBytes:  m.InputBytes,
		OutputBytes: m.OutputBytes,
		RequestedAt: m.RequestedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *OperationModel) FromDomain(r *operations.Record) {
	m.ID = r.ID
	m.Algorithm = r.Algorithm
	m.Direction = r.Direction
	m.InputBytes = r.InputBytes
	m.OutputBytes = r.OutputBytes
	m.RequestedAt = r.RequestedAt
}
