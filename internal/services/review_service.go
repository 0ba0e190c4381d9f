package services

import (
	"context"
	"fmt"

	"storefront/internal/models"
	"storefront/internal/repositories"

	"github.com/sirupsen/logrus"
)

const (
	MsgReviewNotFound = "Review not found"
	MsgReviewDeleted  = "Review deleted successfully"
)

// ReviewUpdatedMessage is the confirmation returned after updating review id.
func ReviewUpdatedMessage(id uint) string {
	return fmt.Sprintf("Review updated successfully with id %d", id)
}

type CreateReviewInput struct {
	Rating  int
	Hamada  int
	Comment string
}

// UpdateReviewInput leaves nil fields unchanged.
type UpdateReviewInput struct {
	Rating  *int
	Hamada  *int
	Comment *string
}

// ReviewService handles business logic related to reviews.
type ReviewService struct {
	repo repositories.ReviewRepository
	notifier
}

func NewReviewService(repo repositories.ReviewRepository, events EventPublisher, log *logrus.Logger) *ReviewService {
	return &ReviewService{
		repo:     repo,
		notifier: newNotifier(events, log),
	}
}

func (s *ReviewService) GetAllReviews(ctx context.Context) ([]models.Review, error) {
	return s.repo.GetAll(ctx)
}

func (s *ReviewService) GetReviewByID(ctx context.Context, id uint) (*models.Review, error) {
	review, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, MsgReviewNotFound)
	}
	return review, nil
}

func (s *ReviewService) CreateReview(ctx context.Context, in CreateReviewInput) (*models.Review, error) {
	review := &models.Review{
		Rating:  in.Rating,
		Hamada:  in.Hamada,
		Comment: in.Comment,
	}
	if err := s.repo.Create(ctx, review); err != nil {
		return nil, err
	}
	s.notify("review.created", review)
	return review, nil
}

func (s *ReviewService) UpdateReview(ctx context.Context, id uint, in UpdateReviewInput) (*models.Review, error) {
	review, err := s.GetReviewByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Rating != nil {
		review.Rating = *in.Rating
	}
	if in.Hamada != nil {
		review.Hamada = *in.Hamada
	}
	if in.Comment != nil {
		review.Comment = *in.Comment
	}
	if err := s.repo.Update(ctx, review); err != nil {
		return nil, notFound(err, MsgReviewNotFound)
	}
	s.notify("review.updated", review)
	return review, nil
}

func (s *ReviewService) DeleteReview(ctx context.Context, id uint) error {
	if _, err := s.GetReviewByID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return notFound(fmt.Errorf("delete review: %w", err), MsgReviewNotFound)
	}
	s.notify("review.deleted", map[string]uint{"id": id})
	return nil
}
