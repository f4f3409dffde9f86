package service

import (
	"testing"

	"github.com/google/uuid"

	"cha-pyeong/internal/models"
)

func strPtr(s string) *string { return &s }

func relationalAssessments() []models.AssessmentWithRelations {
	return []models.AssessmentWithRelations{
		{
			Assessment: models.Assessment{ID: uuid.New(), TeaID: uuid.New()},
			User: &models.User{
				ID:          uuid.New(),
				Email:       "kim@example.com",
				DisplayName: strPtr("김다인"),
				Role:        models.RolePanel,
			},
			Score: &models.Score{Thickness: 7.5},
		},
		{
			Assessment: models.Assessment{ID: uuid.New(), TeaID: uuid.New()},
			User: &models.User{
				ID:    uuid.New(),
				Email: "lee@example.com",
				Role:  models.RolePanel,
			},
		},
	}
}

func TestProjectAssessmentsGuest(t *testing.T) {
	projected, err := ProjectAssessments(relationalAssessments(), models.RoleGuest)
	if err != nil {
		t.Fatalf("ProjectAssessments() returned %v", err)
	}

	// Guests get an empty list, not a redacted one.
	if len(projected) != 0 {
		t.Errorf("guest projection has %d assessments, expected 0", len(projected))
	}
	if projected == nil {
		t.Error("guest projection is nil, expected an empty slice")
	}
}

func TestProjectAssessmentsPanel(t *testing.T) {
	assessments := relationalAssessments()

	projected, err := ProjectAssessments(assessments, models.RolePanel)
	if err != nil {
		t.Fatalf("ProjectAssessments() returned %v", err)
	}

	if len(projected) != len(assessments) {
		t.Fatalf("panel projection has %d assessments, expected %d", len(projected), len(assessments))
	}
	for i, p := range projected {
		if p.Reviewer != models.AnonymousReviewer {
			t.Errorf("assessment %d reviewer = %q, expected %q", i, p.Reviewer, models.AnonymousReviewer)
		}
	}
	if projected[0].Score == nil || projected[0].Score.Thickness != 7.5 {
		t.Error("panel projection lost the score relation")
	}
}

func TestProjectAssessmentsAdmin(t *testing.T) {
	assessments := relationalAssessments()

	projected, err := ProjectAssessments(assessments, models.RoleAdmin)
	if err != nil {
		t.Fatalf("ProjectAssessments() returned %v", err)
	}

	if projected[0].Reviewer != "김다인" {
		t.Errorf("reviewer = %q, expected display name", projected[0].Reviewer)
	}
	// Missing display name falls back to email.
	if projected[1].Reviewer != "lee@example.com" {
		t.Errorf("reviewer = %q, expected email fallback", projected[1].Reviewer)
	}
}

func TestProjectAssessmentsInvalidRole(t *testing.T) {
	_, err := ProjectAssessments(relationalAssessments(), models.Role("superuser"))
	if err == nil {
		t.Error("ProjectAssessments() accepted an invalid role")
	}
}
