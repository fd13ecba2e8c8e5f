package jwt

import (
	"testing"
	"time"

	"doctor-dashboard-api/config"
	"doctor-dashboard-api/internal/domain/entity"

	"github.com/google/uuid"
)

func newTestService(accessExpiry time.Duration) *JWTService {
	return NewJWTService(config.JWTConfig{
		Secret:        "test-secret",
		AccessExpiry:  accessExpiry,
		RefreshExpiry: 24 * time.Hour,
	})
}

func TestGenerateAndValidateAccessToken(t *testing.T) {
	svc := newTestService(15 * time.Minute)
	userID := uuid.New()

	token, tokenID, err := svc.GenerateAccessToken(userID, "doc@example.com", entity.RoleIDDoctor)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}
	if tokenID == "" {
		t.Fatal("token ID is empty")
	}

	claims, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("failed to validate token: %v", err)
	}
	if claims.UserID != userID {
		t.Errorf("user_id = %s, want %s", claims.UserID, userID)
	}
	if claims.Email != "doc@example.com" {
		t.Errorf("email = %q, want doc@example.com", claims.Email)
	}
	if claims.RoleID != entity.RoleIDDoctor {
		t.Errorf("role_id = %d, want %d", claims.RoleID, entity.RoleIDDoctor)
	}
	if claims.TokenType != AccessToken {
		t.Errorf("token_type = %q, want %q", claims.TokenType, AccessToken)
	}
	if claims.TokenID != tokenID {
		t.Errorf("token_id = %q, want %q", claims.TokenID, tokenID)
	}
}

func TestRefreshTokenType(t *testing.T) {
	svc := newTestService(15 * time.Minute)

	token, _, err := svc.GenerateRefreshToken(uuid.New(), "doc@example.com", entity.RoleIDDoctor)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	claims, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("failed to validate token: %v", err)
	}
	if claims.TokenType != RefreshToken {
		t.Errorf("token_type = %q, want %q", claims.TokenType, RefreshToken)
	}
}

func TestValidateExpiredToken(t *testing.T) {
	svc := newTestService(-time.Minute)

	token, _, err := svc.GenerateAccessToken(uuid.New(), "doc@example.com", entity.RoleIDDoctor)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	_, err = svc.ValidateToken(token)
	if err != ErrTokenExpired {
		t.Errorf("err = %v, want ErrTokenExpired", err)
	}
}

func TestValidateTokenWrongSecret(t *testing.T) {
	svc := newTestService(15 * time.Minute)
	token, _, err := svc.GenerateAccessToken(uuid.New(), "doc@example.com", entity.RoleIDDoctor)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	other := NewJWTService(config.JWTConfig{
		Secret:       "different-secret",
		AccessExpiry: 15 * time.Minute,
	})
	if _, err := other.ValidateToken(token); err != ErrTokenInvalid {
		t.Errorf("err = %v, want ErrTokenInvalid", err)
	}
}

func TestValidateMalformedToken(t *testing.T) {
	svc := newTestService(15 * time.Minute)
	if _, err := svc.ValidateToken("not-a-jwt"); err != ErrTokenInvalid {
		t.Errorf("err = %v, want ErrTokenInvalid", err)
	}
}
