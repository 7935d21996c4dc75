package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"invoice-dashboard-backend/internal/models"
)

type fakeUserStore struct {
	user *models.User
	err  error
}

func (f *fakeUserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return f.user, f.err
}

func testUser(t *testing.T, password string) *models.User {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return &models.User{
		ID:       uuid.New(),
		Name:     "Operator",
		Email:    "operator@example.com",
		Password: string(hashed),
	}
}

func TestService_Authenticate(t *testing.T) {
	t.Run("issues a verifiable token for valid credentials", func(t *testing.T) {
		user := testUser(t, "123456")
		service := NewService(&fakeUserStore{user: user}, "test-secret", time.Hour, zap.NewNop())

		token, err := service.Authenticate(context.Background(), user.Email, "123456")

		require.NoError(t, err)
		require.NotEmpty(t, token)

		claims, err := service.VerifyToken(token)
		require.NoError(t, err)
		assert.Equal(t, user.ID.String(), claims.UserID)
		assert.Equal(t, user.Email, claims.Email)
	})

	t.Run("rejects a wrong password", func(t *testing.T) {
		user := testUser(t, "123456")
		service := NewService(&fakeUserStore{user: user}, "test-secret", time.Hour, zap.NewNop())

		_, err := service.Authenticate(context.Background(), user.Email, "654321")

		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("rejects an unknown email the same way", func(t *testing.T) {
		service := NewService(&fakeUserStore{}, "test-secret", time.Hour, zap.NewNop())

		_, err := service.Authenticate(context.Background(), "nobody@example.com", "123456")

		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("propagates store failures", func(t *testing.T) {
		storeErr := errors.New("connection refused")
		service := NewService(&fakeUserStore{err: storeErr}, "test-secret", time.Hour, zap.NewNop())

		_, err := service.Authenticate(context.Background(), "operator@example.com", "123456")

		assert.ErrorIs(t, err, storeErr)
	})
}

func TestService_VerifyToken(t *testing.T) {
	t.Run("rejects a token signed with another secret", func(t *testing.T) {
		user := testUser(t, "123456")
		issuer := NewService(&fakeUserStore{user: user}, "secret-a", time.Hour, zap.NewNop())
		verifier := NewService(&fakeUserStore{user: user}, "secret-b", time.Hour, zap.NewNop())

		token, err := issuer.Authenticate(context.Background(), user.Email, "123456")
		require.NoError(t, err)

		_, err = verifier.VerifyToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("rejects an expired token", func(t *testing.T) {
		user := testUser(t, "123456")
		service := NewService(&fakeUserStore{user: user}, "test-secret", -time.Minute, zap.NewNop())

		token, err := service.Authenticate(context.Background(), user.Email, "123456")
		require.NoError(t, err)

		_, err = service.VerifyToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("rejects garbage", func(t *testing.T) {
		service := NewService(&fakeUserStore{}, "test-secret", time.Hour, zap.NewNop())

		_, err := service.VerifyToken("not.a.token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
