package services_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"storefront/internal/apperror"
	"storefront/internal/repositories"
	"storefront/internal/services"
	"storefront/pkg/logger"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testJWTSecret = "test_jwt_secret"

func newUserService(publisher services.EventPublisher) *services.UserService {
	return services.NewUserService(
		repositories.NewMemoryUserRepository(),
		services.AuthConfig{JWTSecret: testJWTSecret, TokenTTL: time.Hour, BcryptCost: bcrypt.MinCost},
		publisher,
		logger.Discard(),
	)
}

func register(t *testing.T, svc *services.UserService, email string) uint {
	t.Helper()
	user, err := svc.Register(context.Background(), services.RegisterInput{
		Username: "testuser",
		Email:    email,
		Password: "password123",
	})
	require.NoError(t, err)
	return user.ID
}

func TestUserService_Register(t *testing.T) {
	publisher := new(MockPublisher)
	publisher.On("Publish", "user.registered", mock.Anything).Return(nil).Once()
	svc := newUserService(publisher)
	ctx := context.Background()

	user, err := svc.Register(ctx, services.RegisterInput{
		Username: "testuser",
		Email:    "Test@Example.com ",
		Password: "password123",
	})
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.Equal(t, "test@example.com", user.Email)
	assert.NotEqual(t, "password123", user.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("password123")))
	publisher.AssertExpectations(t)

	// same email again
	_, err = svc.Register(ctx, services.RegisterInput{
		Username: "other",
		Email:    "test@example.com",
		Password: "password456",
	})
	require.Error(t, err)
	assert.True(t, apperror.Is(err, apperror.KindConflict))
	assert.Contains(t, err.Error(), services.MsgUserExists)
}

func TestUserService_RegisterSaltsEachHash(t *testing.T) {
	svc := newUserService(nil)
	ctx := context.Background()

	first, err := svc.GetUserByID(ctx, register(t, svc, "a@example.com"))
	require.NoError(t, err)
	second, err := svc.GetUserByID(ctx, register(t, svc, "b@example.com"))
	require.NoError(t, err)
	assert.NotEqual(t, first.Password, second.Password)
}

func TestUserService_Login(t *testing.T) {
	svc := newUserService(nil)
	ctx := context.Background()
	id := register(t, svc, "test@example.com")

	token, err := svc.Login(ctx, "test@example.com", "password123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	parsed, err := jwt.Parse(token, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(testJWTSecret), nil
	})
	require.NoError(t, err)
	claims, ok := parsed.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, float64(id), claims["user_id"])
	assert.Equal(t, "testuser", claims["username"])

	// wrong password
	_, err = svc.Login(ctx, "test@example.com", "wrongpassword")
	assert.True(t, apperror.Is(err, apperror.KindUnauthorized))

	// unknown user gets the same answer
	_, err = svc.Login(ctx, "nobody@example.com", "password123")
	assert.True(t, apperror.Is(err, apperror.KindUnauthorized))
	assert.Contains(t, err.Error(), services.MsgInvalidCredentials)
}

func TestUserService_UpdateUser(t *testing.T) {
	svc := newUserService(nil)
	ctx := context.Background()
	id := register(t, svc, "first@example.com")
	register(t, svc, "second@example.com")

	name := "renamed"
	updated, err := svc.UpdateUser(ctx, id, services.UpdateUserInput{Username: &name})
	require.NoError(t, err)
	assert.Equal(t, "renamed", updated.Username)
	assert.Equal(t, "first@example.com", updated.Email)

	password := "brand-new-password"
	_, err = svc.UpdateUser(ctx, id, services.UpdateUserInput{Password: &password})
	require.NoError(t, err)
	stored, err := svc.GetUserByID(ctx, id)
	require.NoError(t, err)
	assert.NotEqual(t, password, stored.Password, "password must be stored hashed")
	_, err = svc.Login(ctx, "first@example.com", password)
	assert.NoError(t, err)

	taken := "second@example.com"
	_, err = svc.UpdateUser(ctx, id, services.UpdateUserInput{Email: &taken})
	assert.True(t, apperror.Is(err, apperror.KindConflict))

	_, err = svc.UpdateUser(ctx, 999, services.UpdateUserInput{Username: &name})
	assert.True(t, apperror.Is(err, apperror.KindNotFound))
}

func TestUserService_DeleteUserTwice(t *testing.T) {
	svc := newUserService(nil)
	ctx := context.Background()
	id := register(t, svc, "gone@example.com")

	require.NoError(t, svc.DeleteUser(ctx, id))
	err := svc.DeleteUser(ctx, id)
	assert.True(t, apperror.Is(err, apperror.KindNotFound))
	assert.Contains(t, err.Error(), services.MsgUserNotFound)
}
