package app

import (
	"context"
	"fmt"

	"storefront/internal/models"
	"storefront/internal/repositories"

	"github.com/sirupsen/logrus"
)

var demoProducts = []models.Product{
	{Title: "Paperback book", Description: "Paperback novel", Price: 12.5},
	{Title: "Laptop", Description: "High performance laptop", Price: 1200},
	{Title: "Phone", Description: "Unlocked smartphone", Price: 699.99},
}

// SeedProducts inserts a few demo products when the store holds none.
func SeedProducts(ctx context.Context, repo repositories.ProductRepository, log *logrus.Logger) error {
	existing, err := repo.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to list products before seeding: %w", err)
	}
	if len(existing) > 0 {
		log.WithField("count", len(existing)).Debug("products present, skipping seed")
		return nil
	}

	for _, p := range demoProducts {
		product := p
		if err := repo.Create(ctx, &product); err != nil {
			return fmt.Errorf("failed to seed product %s: %w", product.Title, err)
		}
		log.WithFields(logrus.Fields{"id": product.ID, "title": product.Title}).Info("seeded product")
	}
	return nil
}
