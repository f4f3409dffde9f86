package service

import (
	"errors"

	"github.com/google/uuid"

	"cha-pyeong/internal/apperr"
	"cha-pyeong/internal/models"
	"cha-pyeong/internal/repository"
)

// UserService handles user administration. Role is the sole authorization
// axis and only admins may change it, acting on another user.
type UserService struct {
	users UserStore
}

// NewUserService creates a new user service
func NewUserService(users UserStore) *UserService {
	return &UserService{users: users}
}

// UpdateRole changes another user's role. The acting admin cannot change
// their own role; demoting the account you are acting from locks you out.
func (s *UserService) UpdateRole(actorRole models.Role, actorID, targetID uuid.UUID, newRole models.Role) error {
	if actorRole != models.RoleAdmin {
		return apperr.Forbidden(actorRole, "change user roles")
	}
	if actorID == targetID {
		return apperr.Validation("user_id", "cannot change your own role")
	}
	if _, err := models.ParseRole(string(newRole)); err != nil {
		return apperr.Validation("role", "must be one of guest, panel, admin")
	}

	err := s.users.UpdateRole(targetID, newRole)
	if errors.Is(err, repository.ErrUserNotFound) {
		return apperr.NotFound("user", targetID.String())
	}
	return err
}

// ListUsers returns all users. Admin-only.
func (s *UserService) ListUsers(role models.Role) ([]models.User, error) {
	if role != models.RoleAdmin {
		return nil, apperr.Forbidden(role, "list users")
	}
	return s.users.GetAll()
}
