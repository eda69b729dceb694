package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"notebook/internal/auth"
	"notebook/internal/model"
	"notebook/internal/repository"
)

var (
	// ErrInvalidCredentials is returned when email or password is incorrect.
	// The same value covers both an unknown email and a wrong password so the
	// response cannot be used to enumerate accounts.
	ErrInvalidCredentials = errors.New("Invalid email or password")
	// ErrEmailExists is returned when signing up with an email that already
	// has an account.
	ErrEmailExists = errors.New("An account with this email already exists")
)

// TokenResult is the response payload for signup and signin.
type TokenResult struct {
	Token  string `json:"token"`
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	Role   string `json:"role"`
}

// StatusResult reports whether multi-user authentication is enabled.
type StatusResult struct {
	AuthEnabled bool   `json:"auth_enabled"`
	Message     string `json:"message"`
}

// AuthService handles account lifecycle and token issuance.
type AuthService interface {
	Signup(ctx context.Context, email, password, name string) (*TokenResult, error)
	Signin(ctx context.Context, email, password string) (*TokenResult, error)
	Status() StatusResult
}

type authService struct {
	users  repository.UserRepository
	hasher *auth.PasswordHasher
	tokens *auth.TokenService
}

// NewAuthService creates a new authentication service.
func NewAuthService(users repository.UserRepository, hasher *auth.PasswordHasher, tokens *auth.TokenService) AuthService {
	return &authService{
		users:  users,
		hasher: hasher,
		tokens: tokens,
	}
}

// Signup creates a new user with a hashed password and returns a fresh token.
// New accounts always get the "user" role.
func (s *authService) Signup(ctx context.Context, email, password, name string) (*TokenResult, error) {
	// Fast-path duplicate check. The unique index on email is the
	// authoritative guard; a concurrent signup racing past this lookup is
	// caught below on Create.
	existing, err := s.users.FindByEmail(ctx, email)
	if err == nil && existing != nil {
		return nil, ErrEmailExists
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check user existence: %w", err)
	}

	passwordHash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: passwordHash,
		Name:         name,
		Role:         model.RoleUser,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailExists
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	token, err := s.tokens.Issue(user.ID.String(), user.Email, user.Role)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	return &TokenResult{
		Token:  token,
		UserID: user.ID.String(),
		Email:  user.Email,
		Name:   user.Name,
		Role:   user.Role,
	}, nil
}

// Signin authenticates an existing user and returns a token carrying the
// user's stored role.
func (s *authService) Signin(ctx context.Context, email, password string) (*TokenResult, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	role := user.Role
	if role == "" {
		role = model.RoleUser
	}
	token, err := s.tokens.Issue(user.ID.String(), user.Email, role)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	return &TokenResult{
		Token:  token,
		UserID: user.ID.String(),
		Email:  user.Email,
		Name:   user.Name,
		Role:   role,
	}, nil
}

// Status reports that multi-user authentication is on. This deployment always
// runs in per-user mode; the value is static, not computed.
func (s *authService) Status() StatusResult {
	return StatusResult{
		AuthEnabled: true,
		Message:     "Multi-user authentication is enabled",
	}
}
