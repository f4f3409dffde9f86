package service

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"cha-pyeong/internal/apperr"
	"cha-pyeong/internal/models"
	"cha-pyeong/internal/repository"
	"cha-pyeong/internal/scoring"
)

// AssessmentService handles the multi-record write of one assessment plus
// its score row, and the role-checked deletion of existing assessments.
type AssessmentService struct {
	teas        TeaStore
	users       UserStore
	assessments AssessmentStore
	scores      ScoreStore
}

// NewAssessmentService creates a new assessment service
func NewAssessmentService(teas TeaStore, users UserStore, assessments AssessmentStore, scores ScoreStore) *AssessmentService {
	return &AssessmentService{
		teas:        teas,
		users:       users,
		assessments: assessments,
		scores:      scores,
	}
}

// SubmitAssessmentInput carries one tasting submission.
type SubmitAssessmentInput struct {
	TeaID          uuid.UUID
	UserID         uuid.UUID
	AssessmentDate time.Time
	Utensils       *string
	Notes          *string
	Scores         scoring.ScoreInput
}

// SubmitAssessment persists one assessment and its score row. The write is
// a two-step protocol without a cross-statement transaction: the assessment
// row is inserted first, then the score row referencing it. If the score
// insert fails, the assessment is removed again by a compensating delete so
// the store never retains a score-less assessment. Only a failure of that
// compensating delete leaves an orphan, and that case is reported as its
// own error kind.
func (s *AssessmentService) SubmitAssessment(role models.Role, input SubmitAssessmentInput) (*models.Assessment, error) {
	if role != models.RolePanel && role != models.RoleAdmin {
		return nil, apperr.Forbidden(role, "submit an assessment")
	}

	if err := scoring.ValidateScores(input.Scores); err != nil {
		return nil, err
	}

	if _, err := s.teas.GetByID(input.TeaID); err != nil {
		if errors.Is(err, repository.ErrTeaNotFound) {
			return nil, apperr.Write(apperr.WriteReference, "assessment",
				fmt.Errorf("tea %s does not exist", input.TeaID))
		}
		return nil, apperr.Write(apperr.WriteReference, "assessment", err)
	}
	if _, err := s.users.GetByID(input.UserID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, apperr.Write(apperr.WriteReference, "assessment",
				fmt.Errorf("user %s does not exist", input.UserID))
		}
		return nil, apperr.Write(apperr.WriteReference, "assessment", err)
	}

	date := input.AssessmentDate
	if date.IsZero() {
		date = time.Now().Truncate(24 * time.Hour)
	}

	assessment := &models.Assessment{
		TeaID:          input.TeaID,
		UserID:         input.UserID,
		AssessmentDate: date,
		Utensils:       input.Utensils,
		Notes:          input.Notes,
	}
	if err := s.assessments.Create(assessment); err != nil {
		return nil, apperr.Write(apperr.WriteInsert, "assessment", err)
	}

	score := scoring.ScoreFromInput(input.Scores)
	score.AssessmentID = assessment.ID
	if err := s.scores.Create(&score); err != nil {
		// Compensating delete; idempotent, so a concurrent admin delete of
		// the same row is harmless.
		if cleanupErr := s.assessments.Delete(assessment.ID); cleanupErr != nil {
			slog.Error("Compensating delete failed, assessment orphaned",
				"assessment_id", assessment.ID,
				"score_error", err,
				"cleanup_error", cleanupErr,
			)
			return nil, apperr.Write(apperr.WriteCleanup, "assessment",
				fmt.Errorf("score insert failed (%v); compensating delete failed: %w", err, cleanupErr))
		}
		return nil, apperr.Write(apperr.WriteScore, "assessment", err)
	}

	return assessment, nil
}

// ListAssessmentsForTea returns the role-projected assessment list for one
// tea: empty for guests, anonymized for panel, full identity for admin.
func (s *AssessmentService) ListAssessmentsForTea(teaID uuid.UUID, viewerRole models.Role) ([]models.ProjectedAssessment, error) {
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

	return ProjectAssessments(assessments, viewerRole)
}

// DeleteAssessment removes an assessment and its score row. Admin-only. The
// score row goes first so that no orphaned score can remain; if the
// assessment delete then fails, the store is left with the score-less
// anomaly that reads already tolerate, and the failure is surfaced as a
// cleanup error.
func (s *AssessmentService) DeleteAssessment(role models.Role, id uuid.UUID) error {
	if role != models.RoleAdmin {
		return apperr.Forbidden(role, "delete an assessment")
	}

	if _, err := s.assessments.GetByID(id); err != nil {
		if errors.Is(err, repository.ErrAssessmentNotFound) {
			return apperr.NotFound("assessment", id.String())
		}
		return err
	}

	if err := s.scores.DeleteByAssessmentID(id); err != nil {
		return apperr.Write(apperr.WriteScore, "assessment delete", err)
	}
	if err := s.assessments.Delete(id); err != nil {
		slog.Error("Assessment delete failed after score removal",
			"assessment_id", id,
			"error", err,
		)
		return apperr.Write(apperr.WriteCleanup, "assessment delete", err)
	}

	return nil
}
