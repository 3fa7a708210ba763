package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"tripweaver/internal/models/db_models"
)

// IdempotencyRepository stores finalize-call results keyed by request
// hash, in the same database that records bookings, so a duplicate
// submission from any device returns the original result.
type IdempotencyRepository interface {
	Get(ctx context.Context, key string) (*db_models.IdempotencyKey, error)
	Save(ctx context.Context, key string, response []byte) error
}

type idempotencyRepository struct {
	db *gorm.DB
}

func NewIdempotencyRepository(db *gorm.DB) IdempotencyRepository {
	return &idempotencyRepository{db: db}
}

func (r *idempotencyRepository) Get(ctx context.Context, key string) (*db_models.IdempotencyKey, error) {
	var record db_models.IdempotencyKey
	err := r.db.WithContext(ctx).Where("key = ?", key).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

func (r *idempotencyRepository) Save(ctx context.Context, key string, response []byte) error {
	return r.db.WithContext(ctx).Create(&db_models.IdempotencyKey{
		Key:      key,
		Response: response,
	}).Error
}
