package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"cha-pyeong/internal/export"
	"cha-pyeong/internal/middleware"
	"cha-pyeong/internal/models"
	"cha-pyeong/internal/service"
)

// AdminHandler handles user administration and bulk export requests
type AdminHandler struct {
	userSvc   *service.UserService
	exportSvc *service.ExportService
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(userSvc *service.UserService, exportSvc *service.ExportService) *AdminHandler {
	return &AdminHandler{userSvc: userSvc, exportSvc: exportSvc}
}

// Export downloads the full assessment data set (admin only)
// @Summary Export all assessments
// @Description Download every assessment with its tea, reviewer, and score as CSV or JSON, newest first. Admin only.
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param format query string false "Export format (csv, json)" default(csv)
// @Success 200 {string} string "Export file"
// @Failure 400 {object} map[string]string "Invalid format"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden - admin only"
// @Router /admin/export [get]
func (h *AdminHandler) Export(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "User not authenticated")
		return
	}

	format := export.FormatCSV
	if raw := r.URL.Query().Get("format"); raw != "" {
		parsed, valid := export.ParseFormat(raw)
		if !valid {
			respondWithError(w, http.StatusBadRequest, "Invalid format, expected csv or json")
			return
		}
		format = parsed
	}

	data, err := h.exportSvc.ExportAll(user.Role, format)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	filename := fmt.Sprintf("assessments_%s.%s", time.Now().Format("20060102"), format)
	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// ListUsers lists all registered users (admin only)
// @Summary List users
// @Description List every registered user with their role (admin only)
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.User "List of users"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden - admin only"
// @Router /admin/users [get]
func (h *AdminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "User not authenticated")
		return
	}

	users, err := h.userSvc.ListUsers(user.Role)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, users)
}

// UpdateUserRole changes another user's role (admin only)
// @Summary Update user role
// @Description Change a user's role to guest, panel, or admin. Admins cannot change their own role.
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Param request body object true "New role (guest, panel, admin)"
// @Success 200 {object} map[string]string "Role updated"
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden - admin only"
// @Failure 404 {object} map[string]string "User not found"
// @Router /admin/users/{id}/role [put]
func (h *AdminHandler) UpdateUserRole(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "User not authenticated")
		return
	}

	targetID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	var req struct {
		Role string `json:"role"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.userSvc.UpdateRole(user.Role, user.ID, targetID, models.Role(req.Role)); err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{
		"message": "Role updated successfully",
	})
}
