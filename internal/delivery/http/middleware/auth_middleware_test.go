package middleware

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"doctor-dashboard-api/config"
	"doctor-dashboard-api/internal/domain/entity"
	"doctor-dashboard-api/pkg/jwt"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

type mockUserRepo struct {
	users map[uuid.UUID]*entity.User
}

func (m *mockUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (m *mockUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, nil
	}
	return u, nil
}

func (m *mockUserRepo) Update(_ context.Context, user *entity.User) error {
	m.users[user.ID] = user
	return nil
}

type authFixture struct {
	jwtService *jwt.JWTService
	redis      *miniredis.Miniredis
	users      *mockUserRepo
	mw         *AuthMiddleware
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	jwtService := jwt.NewJWTService(config.JWTConfig{
		Secret:        "test-secret",
		AccessExpiry:  15 * time.Minute,
		RefreshExpiry: 24 * time.Hour,
	})
	users := &mockUserRepo{users: make(map[uuid.UUID]*entity.User)}

	return &authFixture{
		jwtService: jwtService,
		redis:      mr,
		users:      users,
		mw:         NewAuthMiddleware(jwtService, client, users),
	}
}

// issueSession generates an access token the same way login does: the token
// plus its matching revocation-list key in redis and a live user row.
func (f *authFixture) issueSession(t *testing.T) (string, uuid.UUID) {
	t.Helper()
	userID := uuid.New()
	f.users.users[userID] = &entity.User{
		ID:     userID,
		RoleID: entity.RoleIDDoctor,
		Email:  "doc@example.com",
	}

	token, tokenID, err := f.jwtService.GenerateAccessToken(userID, "doc@example.com", entity.RoleIDDoctor)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}
	if err := f.redis.Set(fmt.Sprintf("access_token:%s:%s", userID, tokenID), "1"); err != nil {
		t.Fatalf("failed to seed redis: %v", err)
	}
	return token, userID
}

func (f *authFixture) do(t *testing.T, authHeader string, next http.Handler) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/doctor/profile", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	f.mw.Authenticate(next).ServeHTTP(rec, req)
	return rec
}

func responseMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response body: %v", err)
	}
	return body.Message
}

func TestAuthenticate(t *testing.T) {
	rejected := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("next handler was called")
	})

	t.Run("valid session populates the identity context", func(t *testing.T) {
		f := newAuthFixture(t)
		token, userID := f.issueSession(t)

		called := false
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
			gotID, ok := GetUserIDFromContext(r.Context())
			if !ok || gotID != userID {
				t.Errorf("user id in context = (%s, %v), want (%s, true)", gotID, ok, userID)
			}
			roleID, ok := GetRoleIDFromContext(r.Context())
			if !ok || roleID != entity.RoleIDDoctor {
				t.Errorf("role id in context = (%d, %v), want (%d, true)", roleID, ok, entity.RoleIDDoctor)
			}
			w.WriteHeader(http.StatusOK)
		})

		rec := f.do(t, "Bearer "+token, next)
		if !called {
			t.Error("next handler was not called")
		}
		if rec.Code != http.StatusOK {
			t.Errorf("status = %d, want 200", rec.Code)
		}
	})

	t.Run("missing header is unauthorized", func(t *testing.T) {
		f := newAuthFixture(t)
		rec := f.do(t, "", rejected)

		if rec.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", rec.Code)
		}
		if got := responseMessage(t, rec); got != "Authorization header is required" {
			t.Errorf("message = %q", got)
		}
	})

	t.Run("non-bearer header is unauthorized", func(t *testing.T) {
		f := newAuthFixture(t)
		token, _ := f.issueSession(t)

		for _, header := range []string{"Basic " + token, token, "Bearer"} {
			rec := f.do(t, header, rejected)
			if rec.Code != http.StatusUnauthorized {
				t.Errorf("header %q: status = %d, want 401", header, rec.Code)
			}
		}
	})

	t.Run("garbage token is unauthorized", func(t *testing.T) {
		f := newAuthFixture(t)
		rec := f.do(t, "Bearer not-a-jwt", rejected)

		if rec.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", rec.Code)
		}
		if got := responseMessage(t, rec); got != "Invalid token" {
			t.Errorf("message = %q", got)
		}
	})

	t.Run("expired token is reported as expired", func(t *testing.T) {
		f := newAuthFixture(t)
		expiredService := jwt.NewJWTService(config.JWTConfig{
			Secret:       "test-secret",
			AccessExpiry: -time.Minute,
		})
		token, _, err := expiredService.GenerateAccessToken(uuid.New(), "doc@example.com", entity.RoleIDDoctor)
		if err != nil {
			t.Fatalf("failed to generate token: %v", err)
		}

		rec := f.do(t, "Bearer "+token, rejected)
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", rec.Code)
		}
		if got := responseMessage(t, rec); got != "Your token has expired, please log in again" {
			t.Errorf("message = %q", got)
		}
	})

	t.Run("refresh token cannot be used as access token", func(t *testing.T) {
		f := newAuthFixture(t)
		token, _, err := f.jwtService.GenerateRefreshToken(uuid.New(), "doc@example.com", entity.RoleIDDoctor)
		if err != nil {
			t.Fatalf("failed to generate token: %v", err)
		}

		rec := f.do(t, "Bearer "+token, rejected)
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", rec.Code)
		}
		if got := responseMessage(t, rec); got != "Invalid token type" {
			t.Errorf("message = %q", got)
		}
	})

	t.Run("logged-out token is revoked", func(t *testing.T) {
		f := newAuthFixture(t)
		token, _ := f.issueSession(t)
		f.redis.FlushAll() // logout deletes the session keys

		rec := f.do(t, "Bearer "+token, rejected)
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", rec.Code)
		}
		if got := responseMessage(t, rec); got != "Token has been revoked" {
			t.Errorf("message = %q", got)
		}
	})

	t.Run("token for a deleted account is unauthorized", func(t *testing.T) {
		f := newAuthFixture(t)
		token, userID := f.issueSession(t)
		delete(f.users.users, userID)

		rec := f.do(t, "Bearer "+token, rejected)
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", rec.Code)
		}
		if got := responseMessage(t, rec); got != "The user belonging to this token no longer exists" {
			t.Errorf("message = %q", got)
		}
	})
}
