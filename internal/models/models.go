package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Role is the sole authorization axis in the system.
type Role string

const (
	RoleGuest Role = "guest"
	RolePanel Role = "panel"
	RoleAdmin Role = "admin"
)

// ParseRole validates a raw role string against the enumerated set.
func ParseRole(raw string) (Role, error) {
	switch Role(raw) {
	case RoleGuest, RolePanel, RoleAdmin:
		return Role(raw), nil
	default:
		return "", fmt.Errorf("invalid role %q", raw)
	}
}

// AnonymousReviewer is the fixed placeholder shown to panel viewers in place
// of the reviewer identity. Panelists review each other's tastings blind,
// including their own.
const AnonymousReviewer = "익명"

// TeaCategories is the fixed set of tea classes, as used by the tasting panel.
var TeaCategories = []string{"녹차", "백차", "청차", "황차", "홍차", "흑차"}

// IsTeaCategory reports whether category is one of the six tea classes.
func IsTeaCategory(category string) bool {
	for _, c := range TeaCategories {
		if c == category {
			return true
		}
	}
	return false
}

// User represents a tasting panel member or administrator. Identity and
// session issuance live in the external identity provider; this row carries
// the role and display identity only.
type User struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Email       string    `json:"email" db:"email"`
	DisplayName *string   `json:"display_name,omitempty" db:"display_name"`
	Role        Role      `json:"role" db:"role"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// ReviewerName returns the display name, falling back to the email address.
func (u *User) ReviewerName() string {
	if u.DisplayName != nil && *u.DisplayName != "" {
		return *u.DisplayName
	}
	return u.Email
}

// Tea represents one tea sample. Duplicate (name, year) pairs are permitted:
// different batches or sources of nominally the same tea are common.
type Tea struct {
	ID        uuid.UUID `json:"id" db:"id"`
	NameKo    string    `json:"name_ko" db:"name_ko"`
	NameEn    *string   `json:"name_en,omitempty" db:"name_en"`
	Year      int       `json:"year" db:"year"`
	Category  string    `json:"category" db:"category"`
	Origin    *string   `json:"origin,omitempty" db:"origin"`
	Seller    *string   `json:"seller,omitempty" db:"seller"`
	CreatedBy uuid.UUID `json:"created_by" db:"created_by"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// Assessment is one tasting record of one tea by one user. Every assessment
// carries exactly one Score row; a score-less assessment is a data-integrity
// anomaly that reads tolerate but writes never produce.
type Assessment struct {
	ID             uuid.UUID `json:"id" db:"id"`
	TeaID          uuid.UUID `json:"tea_id" db:"tea_id"`
	UserID         uuid.UUID `json:"user_id" db:"user_id"`
	AssessmentDate time.Time `json:"assessment_date" db:"assessment_date"`
	Utensils       *string   `json:"utensils,omitempty" db:"utensils"`
	Notes          *string   `json:"notes,omitempty" db:"notes"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
}

// Score holds the ten-attribute numeric evaluation attached 1:1 to an
// assessment. Body attributes range 0-10, aroma attributes 0-5, both in
// steps of 0.5.
type Score struct {
	ID           uuid.UUID `json:"id" db:"id"`
	AssessmentID uuid.UUID `json:"assessment_id" db:"assessment_id"`

	Thickness   float64 `json:"thickness" db:"thickness"`
	Density     float64 `json:"density" db:"density"`
	Smoothness  float64 `json:"smoothness" db:"smoothness"`
	Clarity     float64 `json:"clarity" db:"clarity"`
	Granularity float64 `json:"granularity" db:"granularity"`

	AromaContinuity float64 `json:"aroma_continuity" db:"aroma_continuity"`
	AromaLength     float64 `json:"aroma_length" db:"aroma_length"`
	Refinement      float64 `json:"refinement" db:"refinement"`
	Delicacy        float64 `json:"delicacy" db:"delicacy"`
	Aftertaste      float64 `json:"aftertaste" db:"aftertaste"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// Attributes returns the ten score values keyed by column name.
func (s *Score) Attributes() map[string]float64 {
	return map[string]float64{
		"thickness":        s.Thickness,
		"density":          s.Density,
		"smoothness":       s.Smoothness,
		"clarity":          s.Clarity,
		"granularity":      s.Granularity,
		"aroma_continuity": s.AromaContinuity,
		"aroma_length":     s.AromaLength,
		"refinement":       s.Refinement,
		"delicacy":         s.Delicacy,
		"aftertaste":       s.Aftertaste,
	}
}

// AssessmentWithRelations is the raw relational read shape: one assessment
// joined with its author and its score row, if any. Score is nil for the
// tolerated score-less anomaly.
type AssessmentWithRelations struct {
	Assessment
	User  *User  `json:"user,omitempty"`
	Tea   *Tea   `json:"tea,omitempty"`
	Score *Score `json:"score,omitempty"`
}

// ExportRecord is the raw relational read used by bulk export: one
// assessment with its tea, its author, and its score rows as they arrive
// from the store. The score relation is kept as a collection on purpose;
// the export formatter normalizes it to exactly one record per relation.
type ExportRecord struct {
	Assessment
	Tea    Tea     `json:"tea"`
	User   User    `json:"user"`
	Scores []Score `json:"scores"`
}

// ProjectedAssessment is the role-filtered view of one assessment. Reviewer
// is the anonymous placeholder for panel viewers and the real display
// name/email for admins.
type ProjectedAssessment struct {
	ID             uuid.UUID `json:"id"`
	TeaID          uuid.UUID `json:"tea_id"`
	AssessmentDate time.Time `json:"assessment_date"`
	Reviewer       string    `json:"reviewer"`
	Utensils       *string   `json:"utensils,omitempty"`
	Notes          *string   `json:"notes,omitempty"`
	Score          *Score    `json:"score,omitempty"`
}

// TeaAverage is the derived per-tea mean of each attribute. It is never
// persisted; it is recomputed from the current assessment set on every read.
// A nil attribute pointer means "no data", which is distinct from a real
// average of 0.
type TeaAverage struct {
	TeaID           uuid.UUID `json:"tea_id"`
	AssessmentCount int       `json:"assessment_count"`

	Thickness   *float64 `json:"thickness,omitempty"`
	Density     *float64 `json:"density,omitempty"`
	Smoothness  *float64 `json:"smoothness,omitempty"`
	Clarity     *float64 `json:"clarity,omitempty"`
	Granularity *float64 `json:"granularity,omitempty"`

	AromaContinuity *float64 `json:"aroma_continuity,omitempty"`
	AromaLength     *float64 `json:"aroma_length,omitempty"`
	Refinement      *float64 `json:"refinement,omitempty"`
	Delicacy        *float64 `json:"delicacy,omitempty"`
	Aftertaste      *float64 `json:"aftertaste,omitempty"`
}

// TeaDetail is the role-projected read of one tea: the average is always
// present, the assessment list only for panel and admin viewers.
type TeaDetail struct {
	Tea         Tea                   `json:"tea"`
	Average     TeaAverage            `json:"average"`
	Assessments []ProjectedAssessment `json:"assessments"`
}
