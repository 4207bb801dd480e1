//go:build unit
// +build unit

package models

import (
	"testing"
	"time"

	"cipher_stream_service/internal/domain/operations"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestOperationModelConversion(t *testing.T) {
	record := &operations.Record{
		ID:          uuid.NewString(),
		Algorithm:   "aes-256-cbc",
		Direction:   operations.DirectionEncrypt,
		InputBytes:  1024,
		OutputBytes: 1040,
		RequestedAt: time.Now().UTC().Truncate(time.Second),
	}

	model := &OperationModel{}
	model.FromDomain(record)
	assert.Equal(t, record.ID, model.ID)
	assert.Equal(t, record.Algorithm, model.Algorithm)

	back := model.ToDomain()
	assert.Equal(t, record, back)
}

func TestOperationModelTableName(t *testing.T) {
	assert.Equal(t, "operations", OperationModel{}.TableName())
}
