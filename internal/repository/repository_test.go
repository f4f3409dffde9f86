package repository_test

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"cha-pyeong/internal/models"
	"cha-pyeong/internal/repository"
	"cha-pyeong/internal/testutil"
)

func strPtr(s string) *string { return &s }

func fullScore(assessmentID uuid.UUID) *models.Score {
	return &models.Score{
		AssessmentID:    assessmentID,
		Thickness:       7.5,
		Density:         6,
		Smoothness:      8,
		Clarity:         9.5,
		Granularity:     5,
		AromaContinuity: 4,
		AromaLength:     3.5,
		Refinement:      4.5,
		Delicacy:        5,
		Aftertaste:      2.5,
	}
}

func TestTeaRepository(t *testing.T) {
	containers := testutil.SetupTestContainers(t)
	defer containers.Cleanup(t)

	teaRepo := repository.NewTeaRepository(containers.DB)
	admin := testutil.CreateTestUser(t, containers.DB, "admin@test.com", models.RoleAdmin)

	tea := &models.Tea{
		NameKo:    "동방미인",
		NameEn:    strPtr("Oriental Beauty"),
		Year:      2022,
		Category:  "청차",
		Origin:    strPtr("대만"),
		CreatedBy: admin.ID,
	}
	if err := teaRepo.Create(tea); err != nil {
		t.Fatalf("Create() returned %v", err)
	}
	if tea.ID == uuid.Nil {
		t.Fatal("Create() did not assign an ID")
	}

	got, err := teaRepo.GetByID(tea.ID)
	if err != nil {
		t.Fatalf("GetByID() returned %v", err)
	}
	if got.NameKo != "동방미인" || got.Year != 2022 {
		t.Errorf("GetByID() = %+v, fields do not match the insert", got)
	}

	// A second tea with the same name and year is allowed.
	dup := &models.Tea{NameKo: "동방미인", Year: 2022, Category: "청차", CreatedBy: admin.ID}
	if err := teaRepo.Create(dup); err != nil {
		t.Errorf("Create() rejected a duplicate (name, year) pair: %v", err)
	}

	t.Run("search", func(t *testing.T) {
		other := &models.Tea{NameKo: "세작", Year: 2024, Category: "녹차", CreatedBy: admin.ID}
		if err := teaRepo.Create(other); err != nil {
			t.Fatalf("Create() returned %v", err)
		}

		teas, err := teaRepo.GetAll(repository.TeaFilters{Search: "동방"})
		if err != nil {
			t.Fatalf("GetAll() returned %v", err)
		}
		if len(teas) != 2 {
			t.Errorf("GetAll(search 동방) returned %d teas, expected 2", len(teas))
		}

		teas, err = teaRepo.GetAll(repository.TeaFilters{Search: "oriental"})
		if err != nil {
			t.Fatalf("GetAll() returned %v", err)
		}
		if len(teas) != 1 {
			t.Errorf("GetAll(search oriental) returned %d teas, expected 1", len(teas))
		}
	})

	t.Run("not found", func(t *testing.T) {
		if _, err := teaRepo.GetByID(uuid.New()); err != repository.ErrTeaNotFound {
			t.Errorf("GetByID(random) returned %v, expected ErrTeaNotFound", err)
		}
	})
}

func TestUserRepository(t *testing.T) {
	containers := testutil.SetupTestContainers(t)
	defer containers.Cleanup(t)

	userRepo := repository.NewUserRepository(containers.DB)

	user := &models.User{
		ID:          uuid.New(),
		Email:       "panelist@test.com",
		DisplayName: strPtr("김다인"),
		Role:        models.RoleGuest,
	}
	if err := userRepo.Create(user); err != nil {
		t.Fatalf("Create() returned %v", err)
	}

	if err := userRepo.UpdateRole(user.ID, models.RolePanel); err != nil {
		t.Fatalf("UpdateRole() returned %v", err)
	}

	got, err := userRepo.GetByID(user.ID)
	if err != nil {
		t.Fatalf("GetByID() returned %v", err)
	}
	if got.Role != models.RolePanel {
		t.Errorf("role = %q, expected %q", got.Role, models.RolePanel)
	}

	byEmail, err := userRepo.GetByEmail("panelist@test.com")
	if err != nil {
		t.Fatalf("GetByEmail() returned %v", err)
	}
	if byEmail.ID != user.ID {
		t.Errorf("GetByEmail() returned user %s, expected %s", byEmail.ID, user.ID)
	}
	if _, err := userRepo.GetByEmail("nobody@test.com"); err != repository.ErrUserNotFound {
		t.Errorf("GetByEmail(unknown) returned %v, expected ErrUserNotFound", err)
	}

	if err := userRepo.UpdateRole(uuid.New(), models.RolePanel); err != repository.ErrUserNotFound {
		t.Errorf("UpdateRole(random) returned %v, expected ErrUserNotFound", err)
	}
}

func TestAssessmentLifecycle(t *testing.T) {
	containers := testutil.SetupTestContainers(t)
	defer containers.Cleanup(t)

	assessmentRepo := repository.NewAssessmentRepository(containers.DB)
	scoreRepo := repository.NewScoreRepository(containers.DB)

	admin := testutil.CreateTestUser(t, containers.DB, "admin@test.com", models.RoleAdmin)
	panelist := testutil.CreateTestUser(t, containers.DB, "panelist@test.com", models.RolePanel)
	tea := testutil.CreateTestTea(t, containers.DB, "동방미인", 2022, "청차", admin.ID)

	older := &models.Assessment{
		TeaID:          tea.ID,
		UserID:         panelist.ID,
		AssessmentDate: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
	}
	if err := assessmentRepo.Create(older); err != nil {
		t.Fatalf("Create() returned %v", err)
	}
	if err := scoreRepo.Create(fullScore(older.ID)); err != nil {
		t.Fatalf("score Create() returned %v", err)
	}

	newer := &models.Assessment{
		TeaID:          tea.ID,
		UserID:         admin.ID,
		AssessmentDate: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
	}
	if err := assessmentRepo.Create(newer); err != nil {
		t.Fatalf("Create() returned %v", err)
	}

	t.Run("relations ordered newest first", func(t *testing.T) {
		assessments, err := assessmentRepo.GetByTeaWithRelations(tea.ID)
		if err != nil {
			t.Fatalf("GetByTeaWithRelations() returned %v", err)
		}
		if len(assessments) != 2 {
			t.Fatalf("got %d assessments, expected 2", len(assessments))
		}
		if assessments[0].ID != newer.ID {
			t.Error("assessments are not ordered by date descending")
		}
		if assessments[0].User == nil || assessments[0].User.Email != "admin@test.com" {
			t.Error("author relation was not loaded")
		}
		// The older assessment carries a score row, the newer does not.
		if assessments[1].Score == nil || assessments[1].Score.Thickness != 7.5 {
			t.Error("score relation was not attached")
		}
		if assessments[0].Score != nil {
			t.Error("score-less assessment reports a score")
		}
	})

	t.Run("score lookup", func(t *testing.T) {
		score, err := scoreRepo.GetByAssessmentID(older.ID)
		if err != nil {
			t.Fatalf("GetByAssessmentID() returned %v", err)
		}
		if score.Clarity != 9.5 {
			t.Errorf("clarity = %v, expected 9.5", score.Clarity)
		}
		if _, err := scoreRepo.GetByAssessmentID(newer.ID); err != repository.ErrScoreNotFound {
			t.Errorf("GetByAssessmentID(score-less) returned %v, expected ErrScoreNotFound", err)
		}
	})

	t.Run("unique score per assessment", func(t *testing.T) {
		if err := scoreRepo.Create(fullScore(older.ID)); err == nil {
			t.Error("second score row for the same assessment was accepted")
		}
	})

	t.Run("delete is idempotent", func(t *testing.T) {
		if err := scoreRepo.DeleteByAssessmentID(older.ID); err != nil {
			t.Fatalf("score delete returned %v", err)
		}
		if err := assessmentRepo.Delete(older.ID); err != nil {
			t.Fatalf("Delete() returned %v", err)
		}
		// Deleting an already-deleted assessment is a no-op.
		if err := assessmentRepo.Delete(older.ID); err != nil {
			t.Errorf("repeated Delete() returned %v, expected nil", err)
		}
		if err := scoreRepo.DeleteByAssessmentID(older.ID); err != nil {
			t.Errorf("repeated score delete returned %v, expected nil", err)
		}

		if _, err := assessmentRepo.GetByID(older.ID); err != repository.ErrAssessmentNotFound {
			t.Errorf("GetByID(deleted) returned %v, expected ErrAssessmentNotFound", err)
		}
	})
}

func TestExportRepository(t *testing.T) {
	containers := testutil.SetupTestContainers(t)
	defer containers.Cleanup(t)

	exportRepo := repository.NewExportRepository(containers.DB)

	admin := testutil.CreateTestUser(t, containers.DB, "admin@test.com", models.RoleAdmin)
	panelist := testutil.CreateTestUser(t, containers.DB, "panelist@test.com", models.RolePanel)
	tea := testutil.CreateTestTea(t, containers.DB, "백호은침", 2023, "백차", admin.ID)

	scored := testutil.CreateTestAssessment(t, containers.DB, tea.ID, panelist.ID,
		time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))
	testutil.CreateTestScore(t, containers.DB, scored.ID, 7, 4)

	scoreless := testutil.CreateTestAssessment(t, containers.DB, tea.ID, admin.ID,
		time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC))

	records, err := exportRepo.GetAll()
	if err != nil {
		t.Fatalf("GetAll() returned %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, expected 2", len(records))
	}

	// Newest first.
	if records[0].ID != scoreless.ID {
		t.Error("records are not ordered by date descending")
	}
	if len(records[0].Scores) != 0 {
		t.Error("score-less assessment exported score rows")
	}
	if len(records[1].Scores) != 1 {
		t.Fatalf("scored assessment exported %d score rows, expected 1", len(records[1].Scores))
	}
	if records[1].Tea.NameKo != "백호은침" {
		t.Errorf("tea relation = %q, expected 백호은침", records[1].Tea.NameKo)
	}
	if records[1].User.Email != "panelist@test.com" {
		t.Errorf("user relation = %q, expected panelist@test.com", records[1].User.Email)
	}
}
