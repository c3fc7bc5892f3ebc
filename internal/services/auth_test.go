package services

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/walletgw/gw-wallet-topup/internal/models"
	"golang.org/x/crypto/bcrypt"
)

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := NewMockUserReader(ctrl)
	writer := NewMockUserWriter(ctrl)

	reader.EXPECT().GetByUsernameOrEmail(ctx, gomock.Any(), gomock.Any()).Return(nil, sql.ErrNoRows)
	writer.EXPECT().Save(ctx, "amira", gomock.Any(), "amira@example.com").Return(nil)

	svc := NewAuthService(reader, writer, nil)
	err := svc.Register(ctx, "amira", "secret123", "amira@example.com")

	assert.NoError(t, err)
}

func TestAuthService_Register_AlreadyExists(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := NewMockUserReader(ctrl)
	writer := NewMockUserWriter(ctrl)

	reader.EXPECT().GetByUsernameOrEmail(ctx, gomock.Any(), gomock.Any()).
		Return(&models.UserDB{UserID: uuid.New(), Username: "amira"}, nil)

	svc := NewAuthService(reader, writer, nil)
	err := svc.Register(ctx, "amira", "secret123", "amira@example.com")

	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	assert.NoError(t, err)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := NewMockUserReader(ctrl)
	jwtGen := NewMockJWTGenerator(ctrl)

	reader.EXPECT().GetByUsernameOrEmail(ctx, gomock.Any(), nil).
		Return(&models.UserDB{UserID: userID, Username: "amira", Password: string(hash)}, nil)
	jwtGen.EXPECT().Generate(ctx, userID).Return("signed-token", nil)

	svc := NewAuthService(reader, nil, jwtGen)
	token, err := svc.Login(ctx, "amira", "secret123")

	assert.NoError(t, err)
	assert.Equal(t, "signed-token", token)
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := NewMockUserReader(ctrl)
	reader.EXPECT().GetByUsernameOrEmail(ctx, gomock.Any(), nil).Return(nil, sql.ErrNoRows)

	svc := NewAuthService(reader, nil, nil)
	_, err := svc.Login(ctx, "ghost", "secret123")

	assert.ErrorIs(t, err, ErrUserDoesNotExist)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	assert.NoError(t, err)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := NewMockUserReader(ctrl)
	reader.EXPECT().GetByUsernameOrEmail(ctx, gomock.Any(), nil).
		Return(&models.UserDB{UserID: uuid.New(), Password: string(hash)}, nil)

	svc := NewAuthService(reader, nil, nil)
	_, err = svc.Login(ctx, "amira", "wrong")

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Login_TokenError(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	assert.NoError(t, err)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := NewMockUserReader(ctrl)
	jwtGen := NewMockJWTGenerator(ctrl)

	reader.EXPECT().GetByUsernameOrEmail(ctx, gomock.Any(), nil).
		Return(&models.UserDB{UserID: userID, Password: string(hash)}, nil)
	jwtGen.EXPECT().Generate(ctx, userID).Return("", errors.New("signing error"))

	svc := NewAuthService(reader, nil, jwtGen)
	_, err = svc.Login(ctx, "amira", "secret123")

	assert.Error(t, err)
}
