package persistence

import (
	"context"
	"fmt"

	"cipher_stream_service/internal/domain/operations"
	"cipher_stream_service/internal/infrastructure/persistence/models"
	"cipher_stream_service/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormOperationRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormOperationRepository creates a new GORM-based operations.Repository
// implementation
func NewGormOperationRepository(db *gorm.DB, logger logger.Logger) (operations.Repository, error) {
	return &gormOperationRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormOperationRepository) Create(ctx context.Context, record *operations.Record) error {
	if err := record.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.OperationModel{}
	model.FromDomain(record)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create operation record: %w", err)
	}

	r.logger.Info("created operation record", "id", record.ID)
	return nil
}

func (r *gormOperationRepository) List(ctx context.Context, query *operations.Query) ([]*operations.Record, error) {
	var modelList []*models.OperationModel
	dbQuery := r.db.WithContext(ctx).Model(&models.OperationModel{})

	if query.Algorithm != "" {
		dbQuery = dbQuery.Where("algorithm = ?", query.Algorithm)
	}
	if query.Direction != "" {
		dbQuery = dbQuery.Where("direction = ?", query.Direction)
	}
	if !query.Since.IsZero() {
		dbQuery = dbQuery.Where("requested_at >= ?", query.Since)
	}

	dbQuery = dbQuery.Order("requested_at desc")
	if query.Limit > 0 {
		dbQuery = dbQuery.Limit(query.Limit)
	}

	if err := dbQuery.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list operation records: %w", err)
	}

	records := make([]*operations.Record, 0, len(modelList))
	for _, model := range modelList {
		records = append(records, model.ToDomain())
	}
	return records, nil
}
