//go:build unit
// +build unit

package app

import (
	"context"

	"cipher_stream_service/internal/domain/operations"

	"github.com/stretchr/testify/mock"
)

// MockOperationRepository is a mock implementation of operations.Repository
type MockOperationRepository struct {
	mock.Mock
}

func (m *MockOperationRepository) Create(ctx context.Context, record *operations.Record) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockOperationRepository) List(ctx context.Context, query *operations.Query) ([]*operations.Record, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*operations.Record), args.Error(1)
}
