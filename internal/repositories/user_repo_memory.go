package repositories

import (
	"context"
	"fmt"

	"storefront/internal/models"
)

// MemoryUserRepository is an in-memory implementation of UserRepository.
type MemoryUserRepository struct {
	table *memoryTable[models.User, *models.User]
}

func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{
		table: newMemoryTable[models.User, *models.User](),
	}
}

func (r *MemoryUserRepository) GetAll(_ context.Context) ([]models.User, error) {
	return r.table.all(), nil
}

func (r *MemoryUserRepository) GetByID(_ context.Context, id uint) (*models.User, error) {
	user, ok := r.table.get(id)
	if !ok {
		return nil, fmt.Errorf("user with ID %d: %w", id, ErrNotFound)
	}
	return &user, nil
}

func (r *MemoryUserRepository) GetByEmail(_ context.Context, email string) (*models.User, error) {
	user, ok := r.table.find(func(u *models.User) bool { return u.Email == email })
	if !ok {
		return nil, fmt.Errorf("user with email %s: %w", email, ErrNotFound)
	}
	return &user, nil
}

// Create stores user, rejecting an email that is already taken.
func (r *MemoryUserRepository) Create(_ context.Context, user *models.User) error {
	taken := func(u *models.User) bool { return u.Email == user.Email }
	if !r.table.insertUnless(user, taken) {
		return fmt.Errorf("user with email %s: %w", user.Email, ErrDuplicate)
	}
	return nil
}

func (r *MemoryUserRepository) Update(_ context.Context, user *models.User) error {
	if !r.table.replace(user) {
		return fmt.Errorf("user with ID %d: %w", user.ID, ErrNotFound)
	}
	return nil
}

func (r *MemoryUserRepository) Delete(_ context.Context, id uint) error {
	if !r.table.remove(id) {
		return fmt.Errorf("user with ID %d: %w", id, ErrNotFound)
	}
	return nil
}
