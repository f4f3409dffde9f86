package testutil

import (
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"

	"cha-pyeong/internal/models"
)

// CreateTestUser inserts a user row with the given role and returns it.
func CreateTestUser(t *testing.T, db *sql.DB, email string, role models.Role) *models.User {
	t.Helper()

	user := &models.User{
		ID:    uuid.New(),
		Email: email,
		Role:  role,
	}

	_, err := db.Exec(
		`INSERT INTO users (id, email, role) VALUES ($1, $2, $3)`,
		user.ID, user.Email, user.Role,
	)
	if err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}

	return user
}

// CreateTestTea inserts a tea row and returns it.
func CreateTestTea(t *testing.T, db *sql.DB, nameKo string, year int, category string, createdBy uuid.UUID) *models.Tea {
	t.Helper()

	tea := &models.Tea{
		NameKo:    nameKo,
		Year:      year,
		Category:  category,
		CreatedBy: createdBy,
	}

	err := db.QueryRow(
		`INSERT INTO teas (name_ko, year, category, created_by) VALUES ($1, $2, $3, $4) RETURNING id`,
		tea.NameKo, tea.Year, tea.Category, tea.CreatedBy,
	).Scan(&tea.ID)
	if err != nil {
		t.Fatalf("Failed to create test tea: %v", err)
	}

	return tea
}

// CreateTestAssessment inserts an assessment row without a score row.
func CreateTestAssessment(t *testing.T, db *sql.DB, teaID, userID uuid.UUID, date time.Time) *models.Assessment {
	t.Helper()

	assessment := &models.Assessment{
		TeaID:          teaID,
		UserID:         userID,
		AssessmentDate: date,
	}

	err := db.QueryRow(
		`INSERT INTO assessments (tea_id, user_id, assessment_date) VALUES ($1, $2, $3) RETURNING id`,
		assessment.TeaID, assessment.UserID, assessment.AssessmentDate,
	).Scan(&assessment.ID)
	if err != nil {
		t.Fatalf("Failed to create test assessment: %v", err)
	}

	return assessment
}

// CreateTestScore inserts the score row of an assessment with every
// attribute set to the given body and aroma values.
func CreateTestScore(t *testing.T, db *sql.DB, assessmentID uuid.UUID, body, aroma float64) *models.Score {
	t.Helper()

	score := &models.Score{
		AssessmentID:    assessmentID,
		Thickness:       body,
		Density:         body,
		Smoothness:      body,
		Clarity:         body,
		Granularity:     body,
		AromaContinuity: aroma,
		AromaLength:     aroma,
		Refinement:      aroma,
		Delicacy:        aroma,
		Aftertaste:      aroma,
	}

	err := db.QueryRow(
		`INSERT INTO assessment_scores
			(assessment_id, thickness, density, smoothness, clarity, granularity,
			 aroma_continuity, aroma_length, refinement, delicacy, aftertaste)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		 RETURNING id`,
		score.AssessmentID,
		score.Thickness, score.Density, score.Smoothness, score.Clarity, score.Granularity,
		score.AromaContinuity, score.AromaLength, score.Refinement, score.Delicacy, score.Aftertaste,
	).Scan(&score.ID)
	if err != nil {
		t.Fatalf("Failed to create test score: %v", err)
	}

	return score
}
