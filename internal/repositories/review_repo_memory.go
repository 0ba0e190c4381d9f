package repositories

import (
	"context"
	"fmt"

	"storefront/internal/models"
)

// MemoryReviewRepository is an in-memory implementation of ReviewRepository.
type MemoryReviewRepository struct {
	table *memoryTable[models.Review, *models.Review]
}

func NewMemoryReviewRepository() *MemoryReviewRepository {
	return &MemoryReviewRepository{
		table: newMemoryTable[models.Review, *models.Review](),
	}
}

func (r *MemoryReviewRepository) GetAll(_ context.Context) ([]models.Review, error) {
	return r.table.all(), nil
}

func (r *MemoryReviewRepository) GetByID(_ context.Context, id uint) (*models.Review, error) {
	review, ok := r.table.get(id)
	if !ok {
		return nil, fmt.Errorf("review with ID %d: %w", id, ErrNotFound)
	}
	return &review, nil
}

func (r *MemoryReviewRepository) Create(_ context.Context, review *models.Review) error {
	r.table.insert(review)
	return nil
}

func (r *MemoryReviewRepository) Update(_ context.Context, review *models.Review) error {
	if !r.table.replace(review) {
		return fmt.Errorf("review with ID %d: %w", review.ID, ErrNotFound)
	}
	return nil
}

func (r *MemoryReviewRepository) Delete(_ context.Context, id uint) error {
	if !r.table.remove(id) {
		return fmt.Errorf("review with ID %d: %w", id, ErrNotFound)
	}
	return nil
}
