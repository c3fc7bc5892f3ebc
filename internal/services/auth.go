package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/walletgw/gw-wallet-topup/internal/logger"
	"github.com/walletgw/gw-wallet-topup/internal/models"
	"golang.org/x/crypto/bcrypt"
)

// Error variables
var (
	ErrUserAlreadyExists  = errors.New("username or email already exists")
	ErrUserDoesNotExist   = errors.New("username does not exist")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByUsernameOrEmail(ctx context.Context, username *string, email *string) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, username string, password string, email string) error
}

// JWTGenerator defines an interface for generating JWT tokens.
type JWTGenerator interface {
	Generate(ctx context.Context, userID uuid.UUID) (string, error)
}

// AuthService handles registration and login.
type AuthService struct {
	reader UserReader
	writer UserWriter
	jwt    JWTGenerator
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, jwt JWTGenerator) *AuthService {
	return &AuthService{
		reader: reader,
		writer: writer,
		jwt:    jwt,
	}
}

// Register creates a new user with a bcrypt-hashed password. Username and
// email must be unused.
func (s *AuthService) Register(ctx context.Context, username, password, email string) error {
	existing, err := s.reader.GetByUsernameOrEmail(ctx, &username, &email)
	if err == nil && existing != nil {
		return ErrUserAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "error", err)
		return err
	}

	if err := s.writer.Save(ctx, username, string(hash), email); err != nil {
		logger.Log.Errorw("failed to save user", "username", username, "error", err)
		return err
	}

	return nil
}

// Login verifies the credentials and returns a signed JWT.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.reader.GetByUsernameOrEmail(ctx, &username, nil)
	if err != nil || user == nil {
		return "", ErrUserDoesNotExist
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	token, err := s.jwt.Generate(ctx, user.UserID)
	if err != nil {
		logger.Log.Errorw("failed to generate token", "username", username, "error", err)
		return "", err
	}

	return token, nil
}
