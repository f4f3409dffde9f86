package service

import (
	"github.com/google/uuid"

	"cha-pyeong/internal/models"
	"cha-pyeong/internal/repository"
)

// The services consume narrow store interfaces rather than concrete
// repositories so the two-step write protocol can be exercised against
// failing stores in tests. The repository types satisfy them directly.

// TeaStore is the tea persistence surface the services need.
type TeaStore interface {
	Create(tea *models.Tea) error
	GetByID(id uuid.UUID) (*models.Tea, error)
	GetAll(filters repository.TeaFilters) ([]models.Tea, error)
}

// UserStore is the user persistence surface the services need.
type UserStore interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	UpdateRole(id uuid.UUID, role models.Role) error
	GetAll() ([]models.User, error)
}

// AssessmentStore is the assessment persistence surface the services need.
type AssessmentStore interface {
	Create(assessment *models.Assessment) error
	GetByID(id uuid.UUID) (*models.Assessment, error)
	Delete(id uuid.UUID) error
	GetByTeaWithRelations(teaID uuid.UUID) ([]models.AssessmentWithRelations, error)
}

// ScoreStore is the score persistence surface the services need.
type ScoreStore interface {
	Create(score *models.Score) error
	DeleteByAssessmentID(assessmentID uuid.UUID) error
}

// ExportStore provides the full relational read behind bulk export.
type ExportStore interface {
	GetAll() ([]models.ExportRecord, error)
}
