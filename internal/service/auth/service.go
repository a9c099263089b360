// Package auth implements account registration, credential verification, and
// JWT issuance. Handlers resolve the owner identity for every article
// operation through tokens minted here.
package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"notekeep/internal/domain/entity"
	"notekeep/internal/repository"
)

// bcryptCost is the work factor for password hashes.
const bcryptCost = 12

// Sentinel errors for authentication operations.
var (
	// ErrEmailTaken indicates that an account with the given email already exists.
	ErrEmailTaken = errors.New("account with this email already exists")

	// ErrInvalidCredentials indicates a failed login. The message is identical
	// for unknown emails and wrong passwords so account existence is not leaked.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrInvalidToken indicates a missing, malformed, expired, or otherwise
	// unverifiable token.
	ErrInvalidToken = errors.New("invalid token")
)

// Service issues and validates tokens against the user repository.
type Service struct {
	users  repository.UserRepository
	secret []byte
	ttl    time.Duration
}

// NewService wires an auth Service. secret signs HS256 tokens; ttl bounds
// token lifetime.
func NewService(users repository.UserRepository, secret []byte, ttl time.Duration) *Service {
	return &Service{users: users, secret: secret, ttl: ttl}
}

// SignUp registers a new account and returns the created user plus a signed
// token. Fails with ValidationErrors on malformed input and ErrEmailTaken on
// duplicate email.
func (s *Service) SignUp(ctx context.Context, email, name, password string) (*entity.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	name = strings.TrimSpace(name)

	var errs entity.ValidationErrors
	if err := entity.ValidateEmail(email); err != nil {
		var verr *entity.ValidationError
		if errors.As(err, &verr) {
			errs = append(errs, verr)
		}
	}
	if err := entity.ValidatePassword(password); err != nil {
		var verr *entity.ValidationError
		if errors.As(err, &verr) {
			errs = append(errs, verr)
		}
	}
	if name == "" {
		errs = append(errs, &entity.ValidationError{Field: "name", Message: "is required"})
	}
	if err := errs.OrNil(); err != nil {
		return nil, "", err
	}

	existing, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, "", fmt.Errorf("lookup user: %w", err)
	}
	if existing != nil {
		return nil, "", ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}

	user := &entity.User{
		ID:           uuid.NewString(),
		Email:        email,
		Name:         name,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, "", fmt.Errorf("create user: %w", err)
	}

	token, err := s.issueToken(user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// LogIn verifies the credentials and returns the user plus a signed token.
// Unknown emails and wrong passwords produce the same ErrInvalidCredentials.
func (s *Service) LogIn(ctx context.Context, email, password string) (*entity.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, "", fmt.Errorf("lookup user: %w", err)
	}
	if user == nil {
		return nil, "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.issueToken(user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// VerifyToken checks the signature and expiry of a bearer token and returns
// the owner identity (user ID) it carries.
func (s *Service) VerifyToken(tokenString string) (string, error) {
	tok, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil || !tok.Valid {
		return "", ErrInvalidToken
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalidToken
	}
	if exp, ok := claims["exp"].(float64); !ok || int64(exp) < time.Now().Unix() {
		return "", ErrInvalidToken
	}
	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", ErrInvalidToken
	}
	return sub, nil
}

func (s *Service) issueToken(user *entity.User) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email,
		"exp":   time.Now().Add(s.ttl).Unix(),
	})
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}
