package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"cha-pyeong/internal/middleware"
	"cha-pyeong/internal/repository"
	"cha-pyeong/internal/service"
)

// TeaHandler handles tea catalog requests
type TeaHandler struct {
	teaSvc *service.TeaService
}

// NewTeaHandler creates a new tea handler
func NewTeaHandler(teaSvc *service.TeaService) *TeaHandler {
	return &TeaHandler{teaSvc: teaSvc}
}

// CreateTea registers a new tea sample (admin only)
// @Summary Create tea
// @Description Register a new tea sample in the catalog (admin only)
// @Tags Teas
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body object true "Tea fields (name_ko, name_en, year, category, origin, seller)"
// @Success 201 {object} models.Tea "Created tea"
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden - admin only"
// @Router /teas [post]
func (h *TeaHandler) CreateTea(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "User not authenticated")
		return
	}

	var req struct {
		NameKo   string  `json:"name_ko"`
		NameEn   *string `json:"name_en"`
		Year     int     `json:"year"`
		Category string  `json:"category"`
		Origin   *string `json:"origin"`
		Seller   *string `json:"seller"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	tea, err := h.teaSvc.CreateTea(user.Role, user.ID, service.CreateTeaInput{
		NameKo:   req.NameKo,
		NameEn:   req.NameEn,
		Year:     req.Year,
		Category: req.Category,
		Origin:   req.Origin,
		Seller:   req.Seller,
	})
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, tea)
}

// ListTeas lists the tea catalog
// @Summary List teas
// @Description List all teas with optional substring search and sorting. Open to every role.
// @Tags Teas
// @Produce json
// @Param search query string false "Substring match on Korean or English name"
// @Param sort_by query string false "Sort column (year, name, created_at)"
// @Param sort_order query string false "Sort direction (asc, desc)"
// @Success 200 {array} models.Tea "List of teas"
// @Router /teas [get]
func (h *TeaHandler) ListTeas(w http.ResponseWriter, r *http.Request) {
	filters := repository.TeaFilters{
		Search:    r.URL.Query().Get("search"),
		SortBy:    r.URL.Query().Get("sort_by"),
		SortOrder: r.URL.Query().Get("sort_order"),
	}

	teas, err := h.teaSvc.ListTeas(filters)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to retrieve teas")
		return
	}

	respondWithJSON(w, http.StatusOK, teas)
}

// GetTea returns one tea with its average and the role-projected assessments
// @Summary Get tea detail
// @Description Get one tea with its attribute averages and the assessment list visible to the caller's role
// @Tags Teas
// @Produce json
// @Param id path string true "Tea ID"
// @Success 200 {object} models.TeaDetail "Tea with averages and assessments"
// @Failure 400 {object} map[string]string "Invalid tea ID"
// @Failure 404 {object} map[string]string "Tea not found"
// @Router /teas/{id} [get]
func (h *TeaHandler) GetTea(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid tea ID")
		return
	}

	detail, err := h.teaSvc.GetTeaDetail(id, middleware.ViewerRole(r))
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, detail)
}

// GetTeaAverage returns the per-attribute average of one tea
// @Summary Get tea averages
// @Description Get the per-attribute score averages of one tea, recomputed from its current assessments. Attributes without data are null, never zero.
// @Tags Teas
// @Produce json
// @Param id path string true "Tea ID"
// @Success 200 {object} models.TeaAverage "Attribute averages with assessment count"
// @Failure 400 {object} map[string]string "Invalid tea ID"
// @Failure 404 {object} map[string]string "Tea not found"
// @Router /teas/{id}/average [get]
func (h *TeaHandler) GetTeaAverage(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid tea ID")
		return
	}

	avg, err := h.teaSvc.GetTeaAverage(id)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, avg)
}
