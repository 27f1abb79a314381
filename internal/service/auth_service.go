package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"portfolio/backend/internal/logger"
	"portfolio/backend/internal/repository"
	"portfolio/backend/internal/snowflake"
)

// Auth errors
var (
	ErrCredentialsRequired = errors.New("email and password are required")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrInvalidToken        = errors.New("invalid token")
)

// Operator is the authenticated content editor.
type Operator struct {
	ID    int64
	Email string
}

// LoginResult is returned after a successful login.
type LoginResult struct {
	AccessToken string
	ExpiresAt   time.Time
	Operator    Operator
}

// AuthService provides authentication functionality.
type AuthService interface {
	// Login checks the operator's credentials and issues a signed token.
	Login(ctx context.Context, email, password string) (LoginResult, error)
	// ValidateToken verifies signature, algorithm and expiry of a token.
	ValidateToken(token string) (Operator, error)
	// EnsureOperator creates the operator account, or rotates its password
	// when it differs from the stored hash.
	EnsureOperator(ctx context.Context, email, password string) error
}

type tokenClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

type authService struct {
	users  repository.UserRepository
	secret []byte
	ttl    time.Duration
}

// NewAuthService creates a new auth service signing HS256 tokens with secret.
func NewAuthService(users repository.UserRepository, secret []byte, ttl time.Duration) AuthService {
	return &authService{users: users, secret: secret, ttl: ttl}
}

// dummyHash is compared against when the email is unknown so both failure
// paths spend the same bcrypt time.
var dummyHash = sync.OnceValue(func() []byte {
	hash, err := bcrypt.GenerateFromPassword([]byte("portfolio-dummy-password"), bcrypt.DefaultCost)
	if err != nil {
		panic(err)
	}
	return hash
})

func (s *authService) Login(ctx context.Context, email, password string) (LoginResult, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return LoginResult{}, ErrCredentialsRequired
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return LoginResult{}, fmt.Errorf("find operator: %w", err)
	}
	if user == nil {
		_ = bcrypt.CompareHashAndPassword(dummyHash(), []byte(password))
		logger.Warn("login rejected", "module", "service", "action", "login", "resource", "auth", "result", "failed", "reason", "unknown email")
		return LoginResult{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Warn("login rejected", "module", "service", "action", "login", "resource", "auth", "result", "failed", "reason", "password mismatch")
		return LoginResult{}, ErrInvalidCredentials
	}

	operator := Operator{ID: user.ID, Email: user.Email}
	token, expiresAt, err := s.generateToken(operator)
	if err != nil {
		return LoginResult{}, err
	}

	logger.Info("login succeeded", "module", "service", "action", "login", "resource", "auth", "result", "ok", "operator_id", user.ID)
	return LoginResult{AccessToken: token, ExpiresAt: expiresAt, Operator: operator}, nil
}

func (s *authService) ValidateToken(tokenString string) (Operator, error) {
	var claims tokenClaims
	token, err := jwt.ParseWithClaims(
		tokenString,
		&claims,
		func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return s.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !token.Valid {
		return Operator{}, ErrInvalidToken
	}

	id, err := snowflake.ParseID(claims.Subject)
	if err != nil {
		return Operator{}, ErrInvalidToken
	}
	return Operator{ID: id, Email: claims.Email}, nil
}

func (s *authService) EnsureOperator(ctx context.Context, email, password string) error {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return ErrCredentialsRequired
	}

	existing, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("find operator: %w", err)
	}
	if existing != nil && bcrypt.CompareHashAndPassword([]byte(existing.PasswordHash), []byte(password)) == nil {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	if existing == nil {
		user, err := s.users.Create(ctx, email, string(hash))
		if err != nil {
			return err
		}
		logger.Info("operator created", "module", "service", "action", "create", "resource", "auth", "result", "ok", "operator_id", user.ID)
		return nil
	}

	if err := s.users.UpdatePassword(ctx, existing.ID, string(hash)); err != nil {
		return err
	}
	logger.Info("operator password rotated", "module", "service", "action", "update", "resource", "auth", "result", "ok", "operator_id", existing.ID)
	return nil
}

// generateToken creates a new JWT token for operator.
func (s *authService) generateToken(operator Operator) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(s.ttl)
	claims := tokenClaims{
		Email: operator.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   snowflake.FormatID(operator.ID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return tokenString, expiresAt, nil
}
