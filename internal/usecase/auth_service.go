package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/cartscout/backend/internal/domain"
)

// AuthConfig holds configuration for the auth service
type AuthConfig struct {
	JWTSecret          string
	TokenTTL           time.Duration // default 24h
	EnableDebugLogging bool
}

// AuthService handles account registration, login, and bearer-token
// validation. Unauthenticated requests fall back to guest mode; this service
// only deals with registered accounts.
type AuthService struct {
	repo               domain.UserRepository
	secret             []byte
	tokenTTL           time.Duration
	enableDebugLogging bool
}

// NewAuthService creates a new auth service with the given configuration
func NewAuthService(repo domain.UserRepository, config AuthConfig) *AuthService {
	ttl := config.TokenTTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}

	return &AuthService{
		repo:               repo,
		secret:             []byte(config.JWTSecret),
		tokenTTL:           ttl,
		enableDebugLogging: config.EnableDebugLogging,
	}
}

// SignUp registers a new account and returns the user with a signed token
func (s *AuthService) SignUp(ctx context.Context, email, password string) (*domain.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, "", fmt.Errorf("%w: email and password are required", domain.ErrInvalidRequest)
	}

	exists, err := s.repo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, "", err
	}
	if exists {
		return nil, "", domain.ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	user := &domain.User{
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := s.repo.Save(ctx, user); err != nil {
		return nil, "", err
	}

	if s.enableDebugLogging {
		log.Printf("[AUTH] registered %s (id=%s)", user.Email, user.ID)
	}

	token, err := s.generateToken(user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// LogIn verifies credentials and returns the user with a signed token.
// Unknown email and wrong password produce the same error.
func (s *AuthService) LogIn(ctx context.Context, email, password string) (*domain.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, "", domain.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", domain.ErrInvalidCredentials
	}

	token, err := s.generateToken(user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// ValidateToken parses a bearer token and returns the user ID and email
func (s *AuthService) ValidateToken(tokenString string) (string, string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return "", "", domain.ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", "", domain.ErrInvalidToken
	}

	userID, _ := claims["sub"].(string)
	email, _ := claims["email"].(string)
	if userID == "" {
		return "", "", domain.ErrInvalidToken
	}

	return userID, email, nil
}

func (s *AuthService) generateToken(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email,
		"exp":   time.Now().Add(s.tokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}
