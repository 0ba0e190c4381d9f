package handlers

import (
	"storefront/internal/apperror"
	"storefront/internal/services"
	"storefront/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// reviewSchema serves both create and update: updates replace every score
// and the comment. A client-sent id is accepted but ignored.
var reviewSchema = validation.NewSchema(
	validation.Field{Name: "id", Kind: validation.Integer, Rules: "gt=0"},
	validation.Field{Name: "rating", Kind: validation.Integer, Required: true, Rules: "min=1,max=5"},
	validation.Field{Name: "hamada", Kind: validation.Integer, Required: true, Rules: "min=1,max=5"},
	validation.Field{Name: "comment", Kind: validation.String, Required: true, Rules: "min=5,max=500"},
)

// ReviewHandler handles HTTP requests for reviews.
type ReviewHandler struct {
	service *services.ReviewService
	log     *logrus.Logger
}

func NewReviewHandler(service *services.ReviewService, log *logrus.Logger) *ReviewHandler {
	return &ReviewHandler{
		service: service,
		log:     log,
	}
}

// RegisterRoutes registers the review routes with the Fiber app.
func (h *ReviewHandler) RegisterRoutes(router fiber.Router) {
	reviewRoutes := router.Group("/reviews")
	reviewRoutes.Get("/", h.HandleGetReviews)
	reviewRoutes.Post("/", validation.Body(reviewSchema), h.HandleCreateReview)
	reviewRoutes.Get("/:id", h.HandleGetReviewByID)
	reviewRoutes.Put("/:id", validation.Body(reviewSchema), h.HandleUpdateReview)
	reviewRoutes.Delete("/:id", h.HandleDeleteReview)
}

func (h *ReviewHandler) HandleGetReviews(c *fiber.Ctx) error {
	reviews, err := h.service.GetAllReviews(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(reviews)
}

func (h *ReviewHandler) HandleCreateReview(c *fiber.Ctx) error {
	body := validation.FromCtx(c)
	rating, _ := body.Int("rating")
	hamada, _ := body.Int("hamada")
	comment, _ := body.String("comment")

	review, err := h.service.CreateReview(c.UserContext(), services.CreateReviewInput{
		Rating:  rating,
		Hamada:  hamada,
		Comment: comment,
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(review)
}

func (h *ReviewHandler) HandleGetReviewByID(c *fiber.Ctx) error {
	id, err := strictID(c)
	if err != nil {
		return err
	}
	review, err := h.service.GetReviewByID(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(review)
}

func (h *ReviewHandler) HandleUpdateReview(c *fiber.Ctx) error {
	id, ok := looseID(c)
	if !ok {
		return apperror.NotFound(services.MsgReviewNotFound)
	}
	body := validation.FromCtx(c)
	if _, err := h.service.UpdateReview(c.UserContext(), id, services.UpdateReviewInput{
		Rating:  body.IntPtr("rating"),
		Hamada:  body.IntPtr("hamada"),
		Comment: body.StringPtr("comment"),
	}); err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"message": services.ReviewUpdatedMessage(id),
	})
}

func (h *ReviewHandler) HandleDeleteReview(c *fiber.Ctx) error {
	id, ok := looseID(c)
	if !ok {
		return apperror.NotFound(services.MsgReviewNotFound)
	}
	if err := h.service.DeleteReview(c.UserContext(), id); err != nil {
		return err
	}
	h.log.WithField("review_id", id).Debug("review deleted")
	return c.JSON(fiber.Map{
		"message": services.MsgReviewDeleted,
	})
}
