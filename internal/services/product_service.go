package services

import (
	"context"
	"fmt"

	"storefront/internal/models"
	"storefront/internal/repositories"

	"github.com/sirupsen/logrus"
)

const (
	MsgProductNotFound = "Product not found"
	MsgProductUpdated  = "Product updated successfully"
	MsgProductDeleted  = "Product deleted successfully"
)

// CreateProductInput carries a validated create request.
type CreateProductInput struct {
	Title       string
	Description string
	Price       float64
}

// UpdateProductInput carries a validated update request. Nil fields are
// left unchanged.
type UpdateProductInput struct {
	Title       *string
	Description *string
	Price       *float64
}

// ProductService handles business logic related to products.
type ProductService struct {
	repo repositories.ProductRepository
	notifier
}

// NewProductService creates a new ProductService. events may be nil.
func NewProductService(repo repositories.ProductRepository, events EventPublisher, log *logrus.Logger) *ProductService {
	return &ProductService{
		repo:     repo,
		notifier: newNotifier(events, log),
	}
}

// GetAllProducts retrieves all products.
func (s *ProductService) GetAllProducts(ctx context.Context) ([]models.Product, error) {
	return s.repo.GetAll(ctx)
}

// GetProductByID retrieves a single product by its ID.
func (s *ProductService) GetProductByID(ctx context.Context, id uint) (*models.Product, error) {
	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, MsgProductNotFound)
	}
	return product, nil
}

// CreateProduct stores a new product and returns it with its generated fields.
func (s *ProductService) CreateProduct(ctx context.Context, in CreateProductInput) (*models.Product, error) {
	product := &models.Product{
		Title:       in.Title,
		Description: in.Description,
		Price:       in.Price,
	}
	if err := s.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	s.notify("product.created", product)
	return product, nil
}

// UpdateProduct applies the supplied fields to an existing product.
func (s *ProductService) UpdateProduct(ctx context.Context, id uint, in UpdateProductInput) (*models.Product, error) {
	product, err := s.GetProductByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Title != nil {
		product.Title = *in.Title
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Price != nil {
		product.Price = *in.Price
	}
	if err := s.repo.Update(ctx, product); err != nil {
		return nil, notFound(err, MsgProductNotFound)
	}
	s.notify("product.updated", product)
	return product, nil
}

// DeleteProduct deletes a product by its ID.
func (s *ProductService) DeleteProduct(ctx context.Context, id uint) error {
	if _, err := s.GetProductByID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return notFound(fmt.Errorf("delete product: %w", err), MsgProductNotFound)
	}
	s.notify("product.deleted", map[string]uint{"id": id})
	return nil
}
