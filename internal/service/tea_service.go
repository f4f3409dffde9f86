package service

import (
	"errors"
	"strings"

	"github.com/google/uuid"

	"cha-pyeong/internal/apperr"
	"cha-pyeong/internal/models"
	"cha-pyeong/internal/repository"
	"cha-pyeong/internal/scoring"
)

// TeaService handles tea creation, listing, and the derived per-tea average.
type TeaService struct {
	teas        TeaStore
	assessments AssessmentStore
}

// NewTeaService creates a new tea service
func NewTeaService(teas TeaStore, assessments AssessmentStore) *TeaService {
	return &TeaService{teas: teas, assessments: assessments}
}

// CreateTeaInput carries the fields of a new tea sample.
type CreateTeaInput struct {
	NameKo   string
	NameEn   *string
	Year     int
	Category string
	Origin   *string
	Seller   *string
}

// CreateTea inserts a new tea. Admin-only. Duplicate (name, year) pairs are
// allowed on purpose: different batches or sources of nominally the same tea
// are common, so no uniqueness check is performed.
func (s *TeaService) CreateTea(role models.Role, creator uuid.UUID, input CreateTeaInput) (*models.Tea, error) {
	if role != models.RoleAdmin {
		return nil, apperr.Forbidden(role, "create a tea")
	}

	if strings.TrimSpace(input.NameKo) == "" {
		return nil, apperr.Validation("name_ko", "name is required")
	}
	if !models.IsTeaCategory(input.Category) {
		return nil, apperr.Validation("category", "must be one of the six tea classes")
	}
	if input.Year < 1900 || input.Year > 2100 {
		return nil, apperr.Validation("year", "must be between 1900 and 2100")
	}

	tea := &models.Tea{
		NameKo:    strings.TrimSpace(input.NameKo),
		NameEn:    input.NameEn,
		Year:      input.Year,
		Category:  input.Category,
		Origin:    input.Origin,
		Seller:    input.Seller,
		CreatedBy: creator,
	}
	if err := s.teas.Create(tea); err != nil {
		return nil, apperr.Write(apperr.WriteInsert, "tea", err)
	}

	return tea, nil
}

// GetTea retrieves one tea by ID
func (s *TeaService) GetTea(id uuid.UUID) (*models.Tea, error) {
	tea, err := s.teas.GetByID(id)
	if errors.Is(err, repository.ErrTeaNotFound) {
		return nil, apperr.NotFound("tea", id.String())
	}
	return tea, err
}

// ListTeas retrieves teas with optional substring search and sorting.
// Available to every role, guests included.
func (s *TeaService) ListTeas(filters repository.TeaFilters) ([]models.Tea, error) {
	return s.teas.GetAll(filters)
}

// GetTeaAverage recomputes the per-attribute mean across the tea's current
// assessment set. Nothing is cached: the result always reflects all writes
// committed before this read began. A tea with zero assessments reports
// "no data" for every attribute, never zero.
func (s *TeaService) GetTeaAverage(teaID uuid.UUID) (*models.TeaAverage, error) {
	if _, err := s.teas.GetByID(teaID); err != nil {
		if errors.Is(err, repository.ErrTeaNotFound) {
			return nil, apperr.NotFound("tea", teaID.String())
		}
		return nil, err
	}

	assessments, err := s.assessments.GetByTeaWithRelations(teaID)
	if err != nil {
		return nil, err
	}

	avg := scoring.Average(teaID, assessments)
	return &avg, nil
}

// GetTeaDetail returns the role-projected read of one tea: the average is
// included for every role, the assessment list only for panel and admin.
func (s *TeaService) GetTeaDetail(teaID uuid.UUID, viewerRole models.Role) (*models.TeaDetail, error) {
	tea, err := s.GetTea(teaID)
	if err != nil {
		return nil, err
	}

	assessments, err := s.assessments.GetByTeaWithRelations(teaID)
	if err != nil {
		return nil, err
	}

	projected, err := ProjectAssessments(assessments, viewerRole)
	if err != nil {
		return nil, err
	}

	return &models.TeaDetail{
		Tea:         *tea,
		Average:     scoring.Average(teaID, assessments),
		Assessments: projected,
	}, nil
}
