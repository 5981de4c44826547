package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/IT22898920/GYM-App-sub004/internal/domain/entity"
	dErrors "github.com/IT22898920/GYM-App-sub004/internal/domain/errors"
	"github.com/IT22898920/GYM-App-sub004/internal/domain/repository"
	"github.com/IT22898920/GYM-App-sub004/internal/middleware/auth"
)

// AuthService manages accounts and login. Credentials are explicit per
// request; nothing about the current user is ambient.
type AuthService struct {
	users     repository.UserRepository
	jwtSecret string
	tokenTTL  time.Duration
	logger    *zap.Logger
}

// NewAuthService creates a new auth service.
func NewAuthService(users repository.UserRepository, jwtSecret string, tokenTTL time.Duration, logger *zap.Logger) *AuthService {
	return &AuthService{
		users:     users,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
		logger:    logger,
	}
}

// RegisterInput carries a new account request.
type RegisterInput struct {
	Email    string `json:"email" validate:"required,email"`
	Name     string `json:"name" validate:"required,max=100"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role" validate:"required"`
	GymID    string `json:"gym_id"`
}

// Register creates a new account with a bcrypt password hash.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*entity.User, error) {
	role := entity.Role(strings.TrimSpace(input.Role))
	if !role.Valid() {
		return nil, dErrors.NewValidationError("role", dErrors.ReasonUnknownValue)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		ID:        uuid.NewString(),
		Email:     strings.ToLower(strings.TrimSpace(input.Email)),
		Name:      strings.TrimSpace(input.Name),
		Role:      role,
		GymID:     input.GymID,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.users.Create(ctx, user, string(hash)); err != nil {
		return nil, err
	}

	s.logger.Info("Account created",
		zap.String("user_id", user.ID),
		zap.String("role", string(user.Role)))

	return user, nil
}

// LoginResult is an issued token plus the account it belongs to.
type LoginResult struct {
	Token string       `json:"token"`
	User  *entity.User `json:"user"`
}

// Login verifies credentials and issues a signed JWT carrying the
// account's id, gym and role.
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	user, hash, err := s.users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, dErrors.ErrUserNotFound) {
			return nil, dErrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		s.logger.Warn("Failed login attempt", zap.String("email", email))
		return nil, dErrors.ErrInvalidCredentials
	}

	token, err := auth.CreateToken(s.jwtSecret, s.tokenTTL, user.ID, user.GymID, string(user.Role))
	if err != nil {
		return nil, err
	}

	return &LoginResult{Token: token, User: user}, nil
}
