package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"

	"cha-pyeong/internal/middleware"
	"cha-pyeong/internal/scoring"
	"cha-pyeong/internal/service"
)

// AssessmentHandler handles tasting submission and deletion requests
type AssessmentHandler struct {
	assessmentSvc *service.AssessmentService
}

// NewAssessmentHandler creates a new assessment handler
func NewAssessmentHandler(assessmentSvc *service.AssessmentService) *AssessmentHandler {
	return &AssessmentHandler{assessmentSvc: assessmentSvc}
}

// Submit records one tasting with its ten-attribute score (panel and admin)
// @Summary Submit assessment
// @Description Record one tasting of a tea with all ten attribute scores. Panel and admin only.
// @Tags Assessments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body object true "Assessment (tea_id, assessment_date, utensils, notes, scores)"
// @Success 201 {object} models.Assessment "Created assessment"
// @Failure 400 {object} map[string]string "Invalid request or score values"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden - panel or admin only"
// @Failure 422 {object} map[string]string "Referenced tea or user does not exist"
// @Router /assessments [post]
func (h *AssessmentHandler) Submit(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "User not authenticated")
		return
	}

	var req struct {
		TeaID          uuid.UUID          `json:"tea_id"`
		AssessmentDate string             `json:"assessment_date"`
		Utensils       *string            `json:"utensils"`
		Notes          *string            `json:"notes"`
		Scores         scoring.ScoreInput `json:"scores"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	var date time.Time
	if req.AssessmentDate != "" {
		var err error
		date, err = time.Parse("2006-01-02", req.AssessmentDate)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid assessment_date, expected YYYY-MM-DD")
			return
		}
	}

	assessment, err := h.assessmentSvc.SubmitAssessment(user.Role, service.SubmitAssessmentInput{
		TeaID:          req.TeaID,
		UserID:         user.ID,
		AssessmentDate: date,
		Utensils:       req.Utensils,
		Notes:          req.Notes,
		Scores:         req.Scores,
	})
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, assessment)
}

// ListForTea lists the assessments of one tea, projected by the caller's role
// @Summary List assessments for tea
// @Description List all assessments of one tea, newest first. Guests see an empty list, panel sees anonymized reviewers, admin sees full identity.
// @Tags Assessments
// @Produce json
// @Param id path string true "Tea ID"
// @Success 200 {array} models.ProjectedAssessment "Role-projected assessments"
// @Failure 400 {object} map[string]string "Invalid tea ID"
// @Failure 404 {object} map[string]string "Tea not found"
// @Router /teas/{id}/assessments [get]
func (h *AssessmentHandler) ListForTea(w http.ResponseWriter, r *http.Request) {
	teaID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid tea ID")
		return
	}

	assessments, err := h.assessmentSvc.ListAssessmentsForTea(teaID, middleware.ViewerRole(r))
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, assessments)
}

// Delete removes an assessment together with its score row (admin only)
// @Summary Delete assessment
// @Description Delete one assessment and its score row (admin only)
// @Tags Assessments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Assessment ID"
// @Success 200 {object} map[string]string "Assessment deleted"
// @Failure 400 {object} map[string]string "Invalid assessment ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden - admin only"
// @Failure 404 {object} map[string]string "Assessment not found"
// @Router /assessments/{id} [delete]
func (h *AssessmentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "User not authenticated")
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid assessment ID")
		return
	}

	if err := h.assessmentSvc.DeleteAssessment(user.Role, id); err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{
		"message": "Assessment deleted successfully",
	})
}
