package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"cha-pyeong/internal/config"
	"cha-pyeong/internal/middleware"
	"cha-pyeong/internal/models"
	"cha-pyeong/internal/repository"
	"cha-pyeong/internal/testutil"
)

func signToken(t *testing.T, secret []byte, subject uuid.UUID, email string) string {
	t.Helper()

	claims := middleware.Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject.String(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		t.Fatalf("Failed to sign token: %v", err)
	}
	return token
}

func TestAuthenticate(t *testing.T) {
	containers := testutil.SetupTestContainers(t)
	defer containers.Cleanup(t)

	userRepo := repository.NewUserRepository(containers.DB)
	authMw := middleware.NewAuthMiddleware(
		&config.AuthConfig{JWTSecret: string(containers.JWTSecret)},
		userRepo,
	)

	panelist := testutil.CreateTestUser(t, containers.DB, "panelist@test.com", models.RolePanel)

	var resolved *models.User
	handler := authMw.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resolved, _ = middleware.GetUser(r)
		w.WriteHeader(http.StatusOK)
	}))

	t.Run("valid token", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, containers.JWTSecret, panelist.ID, panelist.Email))
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, expected 200", rec.Code)
		}
		if resolved == nil || resolved.ID != panelist.ID {
			t.Error("authenticated user was not put on the context")
		}
		if resolved.Role != models.RolePanel {
			t.Errorf("role = %q, expected the stored role", resolved.Role)
		}
	})

	t.Run("missing header", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, expected 401", rec.Code)
		}
	})

	t.Run("wrong secret", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, []byte("wrong-secret"), panelist.ID, panelist.Email))
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, expected 401", rec.Code)
		}
	})

	t.Run("first-seen subject is provisioned as guest", func(t *testing.T) {
		newID := uuid.New()
		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, containers.JWTSecret, newID, "new@test.com"))
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, expected 200", rec.Code)
		}

		provisioned, err := userRepo.GetByID(newID)
		if err != nil {
			t.Fatalf("provisioned user was not stored: %v", err)
		}
		if provisioned.Role != models.RoleGuest {
			t.Errorf("provisioned role = %q, expected guest", provisioned.Role)
		}
		if provisioned.Email != "new@test.com" {
			t.Errorf("provisioned email = %q, expected new@test.com", provisioned.Email)
		}
	})
}

func TestOptionalAuth(t *testing.T) {
	containers := testutil.SetupTestContainers(t)
	defer containers.Cleanup(t)

	userRepo := repository.NewUserRepository(containers.DB)
	authMw := middleware.NewAuthMiddleware(
		&config.AuthConfig{JWTSecret: string(containers.JWTSecret)},
		userRepo,
	)

	admin := testutil.CreateTestUser(t, containers.DB, "admin@test.com", models.RoleAdmin)

	var role models.Role
	handler := authMw.OptionalAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role = middleware.ViewerRole(r)
		w.WriteHeader(http.StatusOK)
	}))

	t.Run("no token means guest", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, expected 200", rec.Code)
		}
		if role != models.RoleGuest {
			t.Errorf("role = %q, expected guest", role)
		}
	})

	t.Run("token upgrades the viewer", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, containers.JWTSecret, admin.ID, admin.Email))
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		if role != models.RoleAdmin {
			t.Errorf("role = %q, expected admin", role)
		}
	})

	t.Run("bad token is rejected, not downgraded", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set("Authorization", "Bearer not-a-token")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, expected 401", rec.Code)
		}
	})
}

func TestRequireRole(t *testing.T) {
	containers := testutil.SetupTestContainers(t)
	defer containers.Cleanup(t)

	userRepo := repository.NewUserRepository(containers.DB)
	authMw := middleware.NewAuthMiddleware(
		&config.AuthConfig{JWTSecret: string(containers.JWTSecret)},
		userRepo,
	)

	panelist := testutil.CreateTestUser(t, containers.DB, "panelist@test.com", models.RolePanel)

	handler := authMw.Authenticate(
		middleware.RequireRole(models.RoleAdmin)(
			http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			}),
		),
	)

	t.Run("insufficient role", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, containers.JWTSecret, panelist.ID, panelist.Email))
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusForbidden {
			t.Errorf("status = %d, expected 403", rec.Code)
		}
	})

	t.Run("unauthenticated", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, expected 401", rec.Code)
		}
	})
}
