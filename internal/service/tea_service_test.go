package service

import (
	"errors"
	"testing"

	"github.com/google/uuid"

	"cha-pyeong/internal/apperr"
	"cha-pyeong/internal/models"
)

func TestCreateTea(t *testing.T) {
	teas := newFakeTeaStore()
	svc := NewTeaService(teas, newFakeAssessmentStore())
	admin := uuid.New()

	tests := []struct {
		name     string
		role     models.Role
		input    CreateTeaInput
		expected bool
	}{
		{
			name:     "valid tea",
			role:     models.RoleAdmin,
			input:    CreateTeaInput{NameKo: "동방미인", Year: 2022, Category: "청차"},
			expected: true,
		},
		{
			name:     "duplicate name and year allowed",
			role:     models.RoleAdmin,
			input:    CreateTeaInput{NameKo: "동방미인", Year: 2022, Category: "청차"},
			expected: true,
		},
		{
			name:     "panel forbidden",
			role:     models.RolePanel,
			input:    CreateTeaInput{NameKo: "백호은침", Year: 2023, Category: "백차"},
			expected: false,
		},
		{
			name:     "guest forbidden",
			role:     models.RoleGuest,
			input:    CreateTeaInput{NameKo: "백호은침", Year: 2023, Category: "백차"},
			expected: false,
		},
		{
			name:     "empty name",
			role:     models.RoleAdmin,
			input:    CreateTeaInput{NameKo: "   ", Year: 2022, Category: "녹차"},
			expected: false,
		},
		{
			name:     "invalid category",
			role:     models.RoleAdmin,
			input:    CreateTeaInput{NameKo: "정체불명", Year: 2022, Category: "보이차"},
			expected: false,
		},
		{
			name:     "year too early",
			role:     models.RoleAdmin,
			input:    CreateTeaInput{NameKo: "골동차", Year: 1899, Category: "흑차"},
			expected: false,
		},
		{
			name:     "year too late",
			role:     models.RoleAdmin,
			input:    CreateTeaInput{NameKo: "미래차", Year: 2101, Category: "홍차"},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tea, err := svc.CreateTea(tt.role, admin, tt.input)
			isValid := err == nil

			if isValid != tt.expected {
				t.Errorf("CreateTea() valid = %v, expected %v, error: %v", isValid, tt.expected, err)
			}
			if isValid && tea.ID == uuid.Nil {
				t.Error("created tea has no ID")
			}
		})
	}
}

func TestGetTeaAverageUnknownTea(t *testing.T) {
	svc := NewTeaService(newFakeTeaStore(), newFakeAssessmentStore())

	_, err := svc.GetTeaAverage(uuid.New())

	var notFoundErr *apperr.NotFoundError
	if !errors.As(err, &notFoundErr) {
		t.Fatalf("GetTeaAverage() returned %v, expected NotFoundError", err)
	}
}

func TestGetTeaAverageNoAssessments(t *testing.T) {
	teas := newFakeTeaStore()
	svc := NewTeaService(teas, newFakeAssessmentStore())

	tea := &models.Tea{NameKo: "세작", Year: 2024, Category: "녹차"}
	if err := teas.Create(tea); err != nil {
		t.Fatalf("failed to seed tea: %v", err)
	}

	avg, err := svc.GetTeaAverage(tea.ID)
	if err != nil {
		t.Fatalf("GetTeaAverage() returned %v", err)
	}

	if avg.AssessmentCount != 0 {
		t.Errorf("AssessmentCount = %d, expected 0", avg.AssessmentCount)
	}
	if avg.Thickness != nil {
		t.Errorf("Thickness = %v, expected nil for an untasted tea", *avg.Thickness)
	}
}

func TestGetTeaDetailGuest(t *testing.T) {
	teas := newFakeTeaStore()
	assessments := newFakeAssessmentStore()
	svc := NewTeaService(teas, assessments)

	tea := &models.Tea{NameKo: "세작", Year: 2024, Category: "녹차"}
	if err := teas.Create(tea); err != nil {
		t.Fatalf("failed to seed tea: %v", err)
	}
	assessments.relations = []models.AssessmentWithRelations{
		{
			Assessment: models.Assessment{ID: uuid.New(), TeaID: tea.ID},
			Score:      &models.Score{Thickness: 7},
		},
	}

	detail, err := svc.GetTeaDetail(tea.ID, models.RoleGuest)
	if err != nil {
		t.Fatalf("GetTeaDetail() returned %v", err)
	}

	// The average is visible to guests, the assessment list is not.
	if detail.Average.Thickness == nil || *detail.Average.Thickness != 7 {
		t.Errorf("average thickness = %v, expected 7", detail.Average.Thickness)
	}
	if len(detail.Assessments) != 0 {
		t.Errorf("guest detail exposes %d assessments, expected 0", len(detail.Assessments))
	}
}
