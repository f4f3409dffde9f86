package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"cha-pyeong/internal/models"
)

var (
	ErrScoreNotFound = errors.New("score not found")
)

// ScoreRepository handles score database operations
type ScoreRepository struct {
	db *sql.DB
}

// NewScoreRepository creates a new score repository
func NewScoreRepository(db *sql.DB) *ScoreRepository {
	return &ScoreRepository{db: db}
}

const scoreColumns = `id, assessment_id, thickness, density, smoothness, clarity, granularity,
	       aroma_continuity, aroma_length, refinement, delicacy, aftertaste, created_at`

// Create inserts the score row for an assessment. The unique constraint on
// assessment_id enforces the 1:1 relation.
func (r *ScoreRepository) Create(score *models.Score) error {
	query := `
		INSERT INTO assessment_scores
			(assessment_id, thickness, density, smoothness, clarity, granularity,
			 aroma_continuity, aroma_length, refinement, delicacy, aftertaste, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id
	`

	now := time.Now()
	err := r.db.QueryRow(
		query,
		score.AssessmentID,
		score.Thickness,
		score.Density,
		score.Smoothness,
		score.Clarity,
		score.Granularity,
		score.AromaContinuity,
		score.AromaLength,
		score.Refinement,
		score.Delicacy,
		score.Aftertaste,
		now,
	).Scan(&score.ID)

	if err != nil {
		return fmt.Errorf("failed to create score: %w", err)
	}

	score.CreatedAt = now
	return nil
}

// GetByAssessmentID retrieves the score row for one assessment
func (r *ScoreRepository) GetByAssessmentID(assessmentID uuid.UUID) (*models.Score, error) {
	query := fmt.Sprintf(`SELECT %s FROM assessment_scores WHERE assessment_id = $1`, scoreColumns)

	score := &models.Score{}
	err := scanScore(r.db.QueryRow(query, assessmentID), score)
	if err == sql.ErrNoRows {
		return nil, ErrScoreNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get score: %w", err)
	}

	return score, nil
}

// GetByAssessmentIDs retrieves all score rows for a set of assessments
func (r *ScoreRepository) GetByAssessmentIDs(assessmentIDs []uuid.UUID) ([]models.Score, error) {
	query := fmt.Sprintf(`SELECT %s FROM assessment_scores WHERE assessment_id = ANY($1)`, scoreColumns)

	ids := make([]string, len(assessmentIDs))
	for i, id := range assessmentIDs {
		ids[i] = id.String()
	}

	rows, err := r.db.Query(query, pq.Array(ids))
	if err != nil {
		return nil, fmt.Errorf("failed to get scores: %w", err)
	}
	defer rows.Close()

	var scores []models.Score
	for rows.Next() {
		var score models.Score
		if err := scanScore(rows, &score); err != nil {
			return nil, fmt.Errorf("failed to scan score: %w", err)
		}
		scores = append(scores, score)
	}

	return scores, rows.Err()
}

// DeleteByAssessmentID removes the score row of an assessment. A no-op when
// no row exists.
func (r *ScoreRepository) DeleteByAssessmentID(assessmentID uuid.UUID) error {
	query := `DELETE FROM assessment_scores WHERE assessment_id = $1`
	_, err := r.db.Exec(query, assessmentID)
	if err != nil {
		return fmt.Errorf("failed to delete score: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanScore(row rowScanner, score *models.Score) error {
	return row.Scan(
		&score.ID,
		&score.AssessmentID,
		&score.Thickness,
		&score.Density,
		&score.Smoothness,
		&score.Clarity,
		&score.Granularity,
		&score.AromaContinuity,
		&score.AromaLength,
		&score.Refinement,
		&score.Delicacy,
		&score.Aftertaste,
		&score.CreatedAt,
	)
}
