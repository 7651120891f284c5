package usecase

import (
	"context"
	"crypto/subtle"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"roadwatch/internal/domain/entity"
	"roadwatch/internal/domain/repository"
	"roadwatch/internal/infrastructure/auth"
	"roadwatch/pkg/errors"
	"roadwatch/pkg/logger"
)

type AuthUseCase struct {
	userRepo      repository.UserRepository
	tokenManager  *auth.TokenManager
	officerSecret string
}

func NewAuthUseCase(userRepo repository.UserRepository, tokenManager *auth.TokenManager, officerSecret string) *AuthUseCase {
	return &AuthUseCase{
		userRepo:      userRepo,
		tokenManager:  tokenManager,
		officerSecret: officerSecret,
	}
}

type SignupInput struct {
	Name       string
	Email      string
	Password   string
	SecretCode string
}

type AuthResult struct {
	User  *entity.User
	Token string
}

// Signup registers a new actor. Officer signup requires the configured
// shared secret; role is fixed at creation.
func (uc *AuthUseCase) Signup(ctx context.Context, role string, input SignupInput) (*AuthResult, error) {
	if role == entity.RoleOfficer {
		if uc.officerSecret == "" || subtle.ConstantTimeCompare([]byte(input.SecretCode), []byte(uc.officerSecret)) != 1 {
			return nil, errors.Unauthorized("Invalid officer secret code", nil)
		}
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))

	existing, err := uc.userRepo.GetByEmail(ctx, email)
	if err == nil && existing != nil {
		return nil, errors.Conflict("Email already in use")
	}
	if err != nil && !errors.Is(err, "NOT_FOUND") {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.Internal("Failed to hash password", err)
	}

	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Name:         input.Name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	token, err := uc.tokenManager.Generate(user.ID)
	if err != nil {
		return nil, err
	}

	logger.Info("Registered %s account %s", role, user.ID)

	return &AuthResult{
		User:  user,
		Token: token,
	}, nil
}

// Signin authenticates an actor against the given role path. The lookup is
// role-scoped so a citizen credential cannot sign in on the officer path.
func (uc *AuthUseCase) Signin(ctx context.Context, role, email, password string) (*AuthResult, error) {
	user, err := uc.userRepo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil || user.Role != role {
		return nil, errors.Unauthorized("Invalid credentials", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, errors.Unauthorized("Invalid credentials", err)
	}

	token, err := uc.tokenManager.Generate(user.ID)
	if err != nil {
		return nil, err
	}

	return &AuthResult{
		User:  user,
		Token: token,
	}, nil
}

func (uc *AuthUseCase) GetUserByID(ctx context.Context, id string) (*entity.User, error) {
	return uc.userRepo.GetByID(ctx, id)
}
