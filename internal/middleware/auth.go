package middleware

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"cha-pyeong/internal/config"
	"cha-pyeong/internal/models"
	"cha-pyeong/internal/repository"
)

type contextKey string

const userKey contextKey = "user"

// Claims is the token payload issued by the external identity provider.
// The subject is the user's UUID; display identity rides along so first-seen
// users can be provisioned without a second round trip.
type Claims struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

// AuthMiddleware validates bearer tokens from the external identity provider
// and resolves them to a user row. It never issues tokens itself.
type AuthMiddleware struct {
	cfg      *config.AuthConfig
	userRepo *repository.UserRepository
}

// NewAuthMiddleware creates a new auth middleware
func NewAuthMiddleware(cfg *config.AuthConfig, userRepo *repository.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{cfg: cfg, userRepo: userRepo}
}

// Authenticate requires a valid bearer token and puts the resolved user on
// the request context.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, err := m.resolveUser(r)
		if err != nil {
			respondWithError(w, http.StatusUnauthorized, err.Error())
			return
		}

		ctx := context.WithValue(r.Context(), userKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// OptionalAuth resolves a bearer token if one is present; requests without
// a token proceed as guests. Used on the routes guests may read.
func (m *AuthMiddleware) OptionalAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "" {
			user, err := m.resolveUser(r)
			if err != nil {
				respondWithError(w, http.StatusUnauthorized, err.Error())
				return
			}
			r = r.WithContext(context.WithValue(r.Context(), userKey, user))
		}
		next.ServeHTTP(w, r)
	})
}

// resolveUser validates the bearer token and loads the user row. A subject
/// seen for the first time gets a guest row: the identity provider owns
// sign-up, this service only assigns roles.
func (m *AuthMiddleware) resolveUser(r *http.Request) (*models.User, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return nil, errors.New("missing authorization header")
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, errors.New("invalid authorization header format")
	}

	claims, err := m.validateToken(parts[1])
	if err != nil {
		return nil, errors.New("invalid or expired token")
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, errors.New("invalid token subject")
	}

	user, err := m.userRepo.GetByID(userID)
	if errors.Is(err, repository.ErrUserNotFound) {
		user = &models.User{
			ID:    userID,
			Email: claims.Email,
			Role:  models.RoleGuest,
		}
		if claims.Name != "" {
			user.DisplayName = &claims.Name
		}
		if createErr := m.userRepo.Create(user); createErr != nil {
			return nil, fmt.Errorf("failed to provision user: %w", createErr)
		}
		slog.Info("Provisioned first-seen user", "user_id", userID, "email", claims.Email)
	} else if err != nil {
		return nil, err
	}

	return user, nil
}

func (m *AuthMiddleware) validateToken(tokenString string) (*Claims, error) {
	parserOpts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	}
	if m.cfg.Issuer != "" {
		parserOpts = append(parserOpts, jwt.WithIssuer(m.cfg.Issuer))
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return []byte(m.cfg.JWTSecret), nil
	}, parserOpts...)
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token claims")
	}
	return claims, nil
}

// GetUser retrieves the authenticated user from the request context.
func GetUser(r *http.Request) (*models.User, bool) {
	user, ok := r.Context().Value(userKey).(*models.User)
	return user, ok
}

// ViewerRole returns the viewer's role: the stored role of the
// authenticated user, or guest when no token was presented.
func ViewerRole(r *http.Request) models.Role {
	if user, ok := GetUser(r); ok {
		return user.Role
	}
	return models.RoleGuest
}

// Helper function to respond with JSON error
func respondWithError(w http.ResponseWriter, code int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write([]byte(`{"error":"` + message + `"}`))
}
