package services_test

import (
	"context"
	"testing"

	"storefront/internal/apperror"
	"storefront/internal/repositories"
	"storefront/internal/services"
	"storefront/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestReviewService_CRUD(t *testing.T) {
	publisher := new(MockPublisher)
	publisher.On("Publish", mock.Anything, mock.Anything).Return(nil)
	svc := services.NewReviewService(repositories.NewMemoryReviewRepository(), publisher, logger.Discard())
	ctx := context.Background()

	created, err := svc.CreateReview(ctx, services.CreateReviewInput{Rating: 2, Hamada: 3, Comment: "Average product"})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	rating := 5
	updated, err := svc.UpdateReview(ctx, created.ID, services.UpdateReviewInput{Rating: &rating})
	require.NoError(t, err)
	assert.Equal(t, 5, updated.Rating)
	assert.Equal(t, 3, updated.Hamada)
	assert.Equal(t, "Average product", updated.Comment)

	fetched, err := svc.GetReviewByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, fetched.Rating)

	require.NoError(t, svc.DeleteReview(ctx, created.ID))
	err = svc.DeleteReview(ctx, created.ID)
	assert.True(t, apperror.Is(err, apperror.KindNotFound))

	publisher.AssertCalled(t, "Publish", "review.created", mock.Anything)
	publisher.AssertCalled(t, "Publish", "review.updated", mock.Anything)
	publisher.AssertCalled(t, "Publish", "review.deleted", mock.Anything)
	publisher.AssertNumberOfCalls(t, "Publish", 3)
}

func TestReviewService_IDsAreUnique(t *testing.T) {
	svc := services.NewReviewService(repositories.NewMemoryReviewRepository(), nil, nil)
	ctx := context.Background()

	seen := map[uint]bool{}
	for i := 0; i < 5; i++ {
		review, err := svc.CreateReview(ctx, services.CreateReviewInput{Rating: 4, Hamada: 4, Comment: "Solid choice"})
		require.NoError(t, err)
		assert.False(t, seen[review.ID])
		seen[review.ID] = true
	}

	all, err := svc.GetAllReviews(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 5)
}

func TestReviewService_UpdatedMessage(t *testing.T) {
	assert.Equal(t, "Review updated successfully with id 12", services.ReviewUpdatedMessage(12))
}
