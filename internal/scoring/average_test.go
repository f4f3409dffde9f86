package scoring

import (
	"testing"

	"github.com/google/uuid"

	"cha-pyeong/internal/models"
)

func scoredAssessment(teaID uuid.UUID, thickness float64) models.AssessmentWithRelations {
	return models.AssessmentWithRelations{
		Assessment: models.Assessment{ID: uuid.New(), TeaID: teaID},
		Score: &models.Score{
			Thickness:       thickness,
			Density:         6,
			Smoothness:      7,
			Clarity:         8,
			Granularity:     5,
			AromaContinuity: 4,
			AromaLength:     3,
			Refinement:      4.5,
			Delicacy:        5,
			Aftertaste:      2.5,
		},
	}
}

func TestAverageNoAssessments(t *testing.T) {
	teaID := uuid.New()

	avg := Average(teaID, nil)

	if avg.TeaID != teaID {
		t.Errorf("TeaID = %v, expected %v", avg.TeaID, teaID)
	}
	if avg.AssessmentCount != 0 {
		t.Errorf("AssessmentCount = %d, expected 0", avg.AssessmentCount)
	}
	// No data must read as absent, not as zero.
	if avg.Thickness != nil {
		t.Errorf("Thickness = %v, expected nil", *avg.Thickness)
	}
	if avg.Aftertaste != nil {
		t.Errorf("Aftertaste = %v, expected nil", *avg.Aftertaste)
	}
}

func TestAverageMultipleAssessments(t *testing.T) {
	teaID := uuid.New()
	assessments := []models.AssessmentWithRelations{
		scoredAssessment(teaID, 8),
		scoredAssessment(teaID, 6),
		scoredAssessment(teaID, 7),
	}

	avg := Average(teaID, assessments)

	if avg.AssessmentCount != 3 {
		t.Errorf("AssessmentCount = %d, expected 3", avg.AssessmentCount)
	}
	if avg.Thickness == nil || *avg.Thickness != 7 {
		t.Errorf("Thickness = %v, expected 7", avg.Thickness)
	}
	if avg.Refinement == nil || *avg.Refinement != 4.5 {
		t.Errorf("Refinement = %v, expected 4.5", avg.Refinement)
	}
}

func TestAverageHalfStepResult(t *testing.T) {
	teaID := uuid.New()
	assessments := []models.AssessmentWithRelations{
		scoredAssessment(teaID, 4),
		scoredAssessment(teaID, 6),
	}

	avg := Average(teaID, assessments)

	if avg.Thickness == nil || *avg.Thickness != 5 {
		t.Errorf("Thickness = %v, expected 5", avg.Thickness)
	}
}

func TestAverageIgnoresScorelessAssessments(t *testing.T) {
	teaID := uuid.New()
	assessments := []models.AssessmentWithRelations{
		scoredAssessment(teaID, 8),
		{Assessment: models.Assessment{ID: uuid.New(), TeaID: teaID}}, // no score row
	}

	avg := Average(teaID, assessments)

	// The score-less assessment still counts as an assessment.
	if avg.AssessmentCount != 2 {
		t.Errorf("AssessmentCount = %d, expected 2", avg.AssessmentCount)
	}
	// But it must not drag the mean toward zero.
	if avg.Thickness == nil || *avg.Thickness != 8 {
		t.Errorf("Thickness = %v, expected 8", avg.Thickness)
	}
}

func TestAverageOnlyScorelessAssessments(t *testing.T) {
	teaID := uuid.New()
	assessments := []models.AssessmentWithRelations{
		{Assessment: models.Assessment{ID: uuid.New(), TeaID: teaID}},
	}

	avg := Average(teaID, assessments)

	if avg.AssessmentCount != 1 {
		t.Errorf("AssessmentCount = %d, expected 1", avg.AssessmentCount)
	}
	if avg.Thickness != nil {
		t.Errorf("Thickness = %v, expected nil", *avg.Thickness)
	}
}
