package service

import (
	"fmt"

	"cha-pyeong/internal/models"
)

// ProjectAssessments applies the role visibility rules to a raw relational
// read. The role is always passed explicitly; there is no ambient session
// state in this layer.
//
//   - guest: the assessment list is withheld entirely.
//   - panel: every reviewer is replaced with the anonymous placeholder,
//     including the viewer's own assessments. Panelists taste blind.
//   - admin: reviewer identity is shown, display name falling back to email.
//
// Any role outside the enumerated set is rejected.
func ProjectAssessments(assessments []models.AssessmentWithRelations, role models.Role) ([]models.ProjectedAssessment, error) {
	switch role {
	case models.RoleGuest:
		return []models.ProjectedAssessment{}, nil
	case models.RolePanel, models.RoleAdmin:
	default:
		return nil, fmt.Errorf("invalid viewer role %q", role)
	}

	projected := make([]models.ProjectedAssessment, 0, len(assessments))
	for _, a := range assessments {
		p := models.ProjectedAssessment{
			ID:             a.ID,
			TeaID:          a.TeaID,
			AssessmentDate: a.AssessmentDate,
			Reviewer:       models.AnonymousReviewer,
			Utensils:       a.Utensils,
			Notes:          a.Notes,
			Score:          a.Score,
		}
		if role == models.RoleAdmin && a.User != nil {
			p.Reviewer = a.User.ReviewerName()
		}
		projected = append(projected, p)
	}
	return projected, nil
}
