package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"cha-pyeong/internal/models"
)

var (
	ErrAssessmentNotFound = errors.New("assessment not found")
)

// AssessmentRepository handles assessment database operations
type AssessmentRepository struct {
	db *sql.DB
}

// NewAssessmentRepository creates a new assessment repository
func NewAssessmentRepository(db *sql.DB) *AssessmentRepository {
	return &AssessmentRepository{db: db}
}

// Create inserts a new assessment and fills in its generated ID
func (r *AssessmentRepository) Create(assessment *models.Assessment) error {
	query := `
		INSERT INTO assessments (tea_id, user_id, assessment_date, utensils, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	now := time.Now()
	err := r.db.QueryRow(
		query,
		assessment.TeaID,
		assessment.UserID,
		assessment.AssessmentDate,
		assessment.Utensils,
		assessment.Notes,
		now,
	).Scan(&assessment.ID)

	if err != nil {
		return fmt.Errorf("failed to create assessment: %w", err)
	}

	assessment.CreatedAt = now
	return nil
}

// GetByID retrieves an assessment by ID
func (r *AssessmentRepository) GetByID(id uuid.UUID) (*models.Assessment, error) {
	query := `
		SELECT id, tea_id, user_id, assessment_date, utensils, notes, created_at
		FROM assessments
		WHERE id = $1
	`

	assessment := &models.Assessment{}
	err := r.db.QueryRow(query, id).Scan(
		&assessment.ID,
		&assessment.TeaID,
		&assessment.UserID,
		&assessment.AssessmentDate,
		&assessment.Utensils,
		&assessment.Notes,
		&assessment.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrAssessmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get assessment: %w", err)
	}

	return assessment, nil
}

// Delete removes an assessment. Deleting an already-deleted row is a no-op,
// which keeps the writer's compensating delete idempotent.
func (r *AssessmentRepository) Delete(id uuid.UUID) error {
	query := `DELETE FROM assessments WHERE id = $1`
	_, err := r.db.Exec(query, id)
	if err != nil {
		return fmt.Errorf("failed to delete assessment: %w", err)
	}
	return nil
}

// GetByTeaWithRelations retrieves all assessments for a tea together with
// their authors and score rows. The score relation is normalized here, at
// the data-access boundary: callers only ever see a single optional score.
func (r *AssessmentRepository) GetByTeaWithRelations(teaID uuid.UUID) ([]models.AssessmentWithRelations, error) {
	query := `
		SELECT a.id, a.tea_id, a.user_id, a.assessment_date, a.utensils, a.notes, a.created_at,
		       u.id, u.email, u.display_name, u.role, u.created_at, u.updated_at
		FROM assessments a
		INNER JOIN users u ON a.user_id = u.id
		WHERE a.tea_id = $1
		ORDER BY a.assessment_date DESC, a.created_at DESC
	`

	rows, err := r.db.Query(query, teaID)
	if err != nil {
		return nil, fmt.Errorf("failed to get assessments: %w", err)
	}
	defer rows.Close()

	var assessments []models.AssessmentWithRelations
	for rows.Next() {
		var a models.AssessmentWithRelations
		var user models.User
		if err := rows.Scan(
			&a.ID,
			&a.TeaID,
			&a.UserID,
			&a.AssessmentDate,
			&a.Utensils,
			&a.Notes,
			&a.CreatedAt,
			&user.ID,
			&user.Email,
			&user.DisplayName,
			&user.Role,
			&user.CreatedAt,
			&user.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan assessment: %w", err)
		}
		a.User = &user
		assessments = append(assessments, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read assessments: %w", err)
	}

	if err := r.attachScores(assessments); err != nil {
		return nil, err
	}

	return assessments, nil
}

// attachScores loads the score rows for the given assessments and attaches
// at most one score per assessment. An assessment without a score row stays
// nil (the tolerated integrity anomaly); more than one row for a single
// assessment should be impossible under the unique constraint and is logged
// as a data-integrity signal, with the first row used.
func (r *AssessmentRepository) attachScores(assessments []models.AssessmentWithRelations) error {
	if len(assessments) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, len(assessments))
	index := make(map[uuid.UUID]int, len(assessments))
	for i := range assessments {
		ids[i] = assessments[i].ID
		index[assessments[i].ID] = i
	}

	scores, err := NewScoreRepository(r.db).GetByAssessmentIDs(ids)
	if err != nil {
		return err
	}

	for i := range scores {
		score := scores[i]
		pos, ok := index[score.AssessmentID]
		if !ok {
			continue
		}
		if assessments[pos].Score != nil {
			slog.Warn("Multiple score rows for one assessment, using the first",
				"assessment_id", score.AssessmentID,
			)
			continue
		}
		assessments[pos].Score = &score
	}

	return nil
}
