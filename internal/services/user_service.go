package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"storefront/internal/apperror"
	"storefront/internal/models"
	"storefront/internal/repositories"

	"github.com/dgrijalva/jwt-go"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

const (
	MsgUserNotFound       = "User not found"
	MsgUserExists         = "user already exist"
	MsgEmailTaken         = "email already in use"
	MsgInvalidCredentials = "invalid credentials"
	MsgUserDeleted        = "User deleted successfully"
)

// AuthConfig controls password hashing and login tokens.
type AuthConfig struct {
	JWTSecret  string
	TokenTTL   time.Duration
	BcryptCost int
}

type RegisterInput struct {
	Username string
	Email    string
	Password string
}

// UpdateUserInput leaves nil fields unchanged. A new password is hashed
// before it is stored.
type UpdateUserInput struct {
	Username *string
	Email    *string
	Password *string
}

// UserService handles registration, login and user management.
type UserService struct {
	repo       repositories.UserRepository
	jwtSecret  []byte
	tokenTTL   time.Duration
	bcryptCost int
	now        func() time.Time
	notifier
}

// NewUserService creates a new UserService. Zero AuthConfig fields fall
// back to a 24 hour token and bcrypt.DefaultCost.
func NewUserService(repo repositories.UserRepository, auth AuthConfig, events EventPublisher, log *logrus.Logger) *UserService {
	if auth.TokenTTL <= 0 {
		auth.TokenTTL = 24 * time.Hour
	}
	if auth.BcryptCost == 0 {
		auth.BcryptCost = bcrypt.DefaultCost
	}
	return &UserService{
		repo:       repo,
		jwtSecret:  []byte(auth.JWTSecret),
		tokenTTL:   auth.TokenTTL,
		bcryptCost: auth.BcryptCost,
		now:        time.Now,
		notifier:   newNotifier(events, log),
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *UserService) GetAllUsers(ctx context.Context) ([]models.User, error) {
	return s.repo.GetAll(ctx)
}

func (s *UserService) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, MsgUserNotFound)
	}
	return user, nil
}

// Register creates a user after checking that the email is free. The
// password is stored as a salted bcrypt hash.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	email := normalizeEmail(in.Email)
	if _, err := s.repo.GetByEmail(ctx, email); err == nil {
		return nil, apperror.Conflict(MsgUserExists)
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	hashed, err := s.hashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	user := &models.User{
		Username: in.Username,
		Email:    email,
		Password: hashed,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, apperror.Conflict(MsgUserExists)
		}
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	s.log.WithFields(logrus.Fields{"user_id": user.ID}).Info("user registered")
	s.notify("user.registered", user)
	return user, nil
}

// Login checks the credentials and returns a signed JWT. Unknown emails and
// wrong passwords produce the same error.
func (s *UserService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.repo.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return "", apperror.Unauthorized(MsgInvalidCredentials)
		}
		return "", fmt.Errorf("failed to look up user: %w", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", apperror.Unauthorized(MsgInvalidCredentials)
	}

	now := s.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":  user.ID,
		"username": user.Username,
		"exp":      now.Add(s.tokenTTL).Unix(),
		"iat":      now.Unix(),
	})
	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return signed, nil
}

// UpdateUser applies the supplied fields. Moving to an email owned by
// another user is rejected.
func (s *UserService) UpdateUser(ctx context.Context, id uint, in UpdateUserInput) (*models.User, error) {
	user, err := s.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Username != nil {
		user.Username = *in.Username
	}
	if in.Email != nil {
		email := normalizeEmail(*in.Email)
		if email != user.Email {
			if other, err := s.repo.GetByEmail(ctx, email); err == nil && other.ID != user.ID {
				return nil, apperror.Conflict(MsgEmailTaken)
			} else if err != nil && !errors.Is(err, repositories.ErrNotFound) {
				return nil, fmt.Errorf("failed to check email: %w", err)
			}
			user.Email = email
		}
	}
	if in.Password != nil {
		hashed, err := s.hashPassword(*in.Password)
		if err != nil {
			return nil, err
		}
		user.Password = hashed
	}

	if err := s.repo.Update(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, apperror.Conflict(MsgEmailTaken)
		}
		return nil, notFound(err, MsgUserNotFound)
	}
	s.notify("user.updated", user)
	return user, nil
}

func (s *UserService) DeleteUser(ctx context.Context, id uint) error {
	if _, err := s.GetUserByID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return notFound(fmt.Errorf("delete user: %w", err), MsgUserNotFound)
	}
	s.notify("user.deleted", map[string]uint{"id": id})
	return nil
}

func (s *UserService) hashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}
