package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/cartscout/backend/internal/domain"
)

// MockUserRepository is an in-memory implementation of domain.UserRepository
type MockUserRepository struct {
	users map[string]*domain.User
}

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{users: make(map[string]*domain.User)}
}

func (m *MockUserRepository) Save(ctx context.Context, user *domain.User) error {
	if user.ID == "" {
		user.ID = "user-" + user.Email
	}
	stored := *user
	m.users[user.Email] = &stored
	return nil
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	user, ok := m.users[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}

func (m *MockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, exists := m.users[email]
	return exists, nil
}

func newTestAuthService() *AuthService {
	return NewAuthService(NewMockUserRepository(), AuthConfig{
		JWTSecret: "test-secret",
		TokenTTL:  time.Hour,
	})
}

func TestAuthServiceSignUp(t *testing.T) {
	ctx := context.Background()

	t.Run("registers a new account and returns a valid token", func(t *testing.T) {
		svc := newTestAuthService()

		user, token, err := svc.SignUp(ctx, "Shopper@Example.com", "hunter22")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if user.Email != "shopper@example.com" {
			t.Errorf("Email = %q, want lowercased %q", user.Email, "shopper@example.com")
		}
		if user.PasswordHash == "hunter22" {
			t.Error("password stored in plain text")
		}

		userID, email, err := svc.ValidateToken(token)
		if err != nil {
			t.Fatalf("ValidateToken error: %v", err)
		}
		if userID != user.ID || email != user.Email {
			t.Errorf("token claims = (%q, %q), want (%q, %q)", userID, email, user.ID, user.Email)
		}
	})

	t.Run("rejects duplicate email", func(t *testing.T) {
		svc := newTestAuthService()

		if _, _, err := svc.SignUp(ctx, "shopper@example.com", "hunter22"); err != nil {
			t.Fatalf("first signup error: %v", err)
		}
		_, _, err := svc.SignUp(ctx, "shopper@example.com", "other")
		if !errors.Is(err, domain.ErrEmailTaken) {
			t.Errorf("error = %v, want ErrEmailTaken", err)
		}
	})

	t.Run("rejects missing email or password", func(t *testing.T) {
		svc := newTestAuthService()

		if _, _, err := svc.SignUp(ctx, "", "pw"); !errors.Is(err, domain.ErrInvalidRequest) {
			t.Errorf("error = %v, want ErrInvalidRequest", err)
		}
		if _, _, err := svc.SignUp(ctx, "a@b.com", ""); !errors.Is(err, domain.ErrInvalidRequest) {
			t.Errorf("error = %v, want ErrInvalidRequest", err)
		}
	})
}

func TestAuthServiceLogIn(t *testing.T) {
	ctx := context.Background()

	t.Run("accepts correct credentials", func(t *testing.T) {
		svc := newTestAuthService()
		if _, _, err := svc.SignUp(ctx, "shopper@example.com", "hunter22"); err != nil {
			t.Fatalf("signup error: %v", err)
		}

		user, token, err := svc.LogIn(ctx, "shopper@example.com", "hunter22")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if user == nil || token == "" {
			t.Error("expected user and token on successful login")
		}
	})

	t.Run("rejects wrong password and unknown email identically", func(t *testing.T) {
		svc := newTestAuthService()
		if _, _, err := svc.SignUp(ctx, "shopper@example.com", "hunter22"); err != nil {
			t.Fatalf("signup error: %v", err)
		}

		_, _, wrongPassword := svc.LogIn(ctx, "shopper@example.com", "wrong")
		_, _, unknownEmail := svc.LogIn(ctx, "nobody@example.com", "hunter22")

		if !errors.Is(wrongPassword, domain.ErrInvalidCredentials) {
			t.Errorf("wrong password error = %v, want ErrInvalidCredentials", wrongPassword)
		}
		if !errors.Is(unknownEmail, domain.ErrInvalidCredentials) {
			t.Errorf("unknown email error = %v, want ErrInvalidCredentials", unknownEmail)
		}
	})
}

func TestAuthServiceValidateToken(t *testing.T) {
	t.Run("rejects garbage tokens", func(t *testing.T) {
		svc := newTestAuthService()

		if _, _, err := svc.ValidateToken("not-a-token"); !errors.Is(err, domain.ErrInvalidToken) {
			t.Errorf("error = %v, want ErrInvalidToken", err)
		}
	})

	t.Run("rejects tokens signed with a different secret", func(t *testing.T) {
		other := NewAuthService(NewMockUserRepository(), AuthConfig{
			JWTSecret: "different-secret",
			TokenTTL:  time.Hour,
		})
		_, token, err := other.SignUp(context.Background(), "shopper@example.com", "hunter22")
		if err != nil {
			t.Fatalf("signup error: %v", err)
		}

		svc := newTestAuthService()
		if _, _, err := svc.ValidateToken(token); !errors.Is(err, domain.ErrInvalidToken) {
			t.Errorf("error = %v, want ErrInvalidToken", err)
		}
	})

	t.Run("rejects expired tokens", func(t *testing.T) {
		svc := newTestAuthService()

		expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"sub":   "user-1",
			"email": "shopper@example.com",
			"exp":   time.Now().Add(-time.Minute).Unix(),
		})
		token, err := expired.SignedString([]byte("test-secret"))
		if err != nil {
			t.Fatalf("signing error: %v", err)
		}

		if _, _, err := svc.ValidateToken(token); !errors.Is(err, domain.ErrInvalidToken) {
			t.Errorf("error = %v, want ErrInvalidToken", err)
		}
	})
}
