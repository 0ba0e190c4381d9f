package repositories

import (
	"context"

	"storefront/internal/models"
)

// ReviewRepository defines the interface for review data access.
type ReviewRepository interface {
	GetAll(ctx context.Context) ([]models.Review, error)
	GetByID(ctx context.Context, id uint) (*models.Review, error)
	Create(ctx context.Context, review *models.Review) error
	Update(ctx context.Context, review *models.Review) error
	Delete(ctx context.Context, id uint) error
}

var (
	_ ReviewRepository = (*GORMReviewRepository)(nil)
	_ ReviewRepository = (*MemoryReviewRepository)(nil)
)
