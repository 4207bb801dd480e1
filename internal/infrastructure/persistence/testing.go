//go:build integration
// +build integration

package persistence

import (
	"testing"

	"cipher_stream_service/internal/domain/operations"
	"cipher_stream_service/internal/infrastructure/persistence/models"
	"cipher_stream_service/internal/pkg/config"
	pkgTesting "cipher_stream_service/internal/pkg/testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// TestContext holds the test database and repository
type TestContext struct {
	DB            *gorm.DB
	OperationRepo operations.Repository
}

// SetupTestDB initializes an in-memory test database with automatic cleanup
func SetupTestDB(t *testing.T) *TestContext {
	t.Helper()

	settings := config.DatabaseSettings{
		Type: config.SqliteDbType,
		DSN:  ":memory:",
	}

	db, err := NewDBConnection(settings)
	require.NoError(t, err, "Failed to create database connection")

	t.Cleanup(func() {
		_ = CloseDB(db)
	})

	err = db.AutoMigrate(&models.OperationModel{})
	require.NoError(t, err, "Failed to migrate schema")

	logger := pkgTesting.SetupTestLogger(t)
	repo, err := NewGormOperationRepository(db, logger)
	require.NoError(t, err, "Failed to create operation repository")

	return &TestContext{
		DB:            db,
		OperationRepo: repo,
	}
}
