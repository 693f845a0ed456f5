package service

import (
	"context"
	"errors"
	"strings"

	"duebot-backend/auth"
	"duebot-backend/models"
	"duebot-backend/repository"

	"golang.org/x/crypto/bcrypt"
)

// AuthService handles registration and login. Sessions are stateless
// JWTs issued by the shared JWTManager.
type AuthService struct {
	users UserStore
	jwt   *auth.JWTManager
}

// AuthServiceOption is a functional option for AuthService
type AuthServiceOption func(*AuthService)

// AuthWithUserStore sets the user store
func AuthWithUserStore(store UserStore) AuthServiceOption {
	return func(s *AuthService) {
		s.users = store
	}
}

// AuthWithJWTManager sets the token manager
func AuthWithJWTManager(manager *auth.JWTManager) AuthServiceOption {
	return func(s *AuthService) {
		s.jwt = manager
	}
}

// NewAuthService creates a new auth service
func NewAuthService(opts ...AuthServiceOption) *AuthService {
	s := &AuthService{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// RegisterRequest represents a signup
type RegisterRequest struct {
	Email    string
	Password string
	Name     string
}

// AuthResult carries the authenticated user and a session token
type AuthResult struct {
	User  *models.User
	Token string
}

// Register creates a user with a bcrypt-hashed password and issues a
// session token.
func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (*AuthResult, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if !strings.Contains(email, "@") {
		return nil, ErrInvalidEmail
	}
	if len(req.Password) < 8 {
		return nil, ErrWeakPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:        email,
		PasswordHash: string(hash),
		Name:         req.Name,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	token, err := s.jwt.Generate(user)
	if err != nil {
		return nil, err
	}

	return &AuthResult{User: user, Token: token}, nil
}

// LoginRequest represents a login attempt
type LoginRequest struct {
	Email    string
	Password string
}

// Login verifies credentials and issues a session token. A missing
// user and a wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*AuthResult, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.jwt.Generate(user)
	if err != nil {
		return nil, err
	}

	return &AuthResult{User: user, Token: token}, nil
}
