package auth

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"invoice-dashboard-backend/internal/models"
)

// ErrInvalidCredentials covers both an unknown email and a wrong
// password, so the response does not reveal which one it was.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrInvalidToken is returned for expired, malformed or mis-signed tokens.
var ErrInvalidToken = errors.New("invalid token")

// UserStore looks up operator accounts.
type UserStore interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
}

// Claims are the session claims carried in the bearer token.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}

type Service struct {
	users  UserStore
	secret []byte
	expiry time.Duration
	logger *zap.Logger
}

func NewService(users UserStore, secret string, expiry time.Duration, logger *zap.Logger) *Service {
	return &Service{users: users, secret: []byte(secret), expiry: expiry, logger: logger}
}

// Authenticate checks the credentials against the stored bcrypt hash and
// returns a signed session token.
func (s *Service) Authenticate(ctx context.Context, email, password string) (string, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		s.logger.Error("user lookup failed", zap.Error(err))
		return "", err
	}
	if user == nil {
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
		},
		UserID: user.ID.String(),
		Email:  user.Email,
	})
	return token.SignedString(s.secret)
}

// VerifyToken parses and validates a bearer token.
func (s *Service) VerifyToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
