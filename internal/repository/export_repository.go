package repository

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"cha-pyeong/internal/models"
)

// ExportRepository performs the full relational read behind bulk export:
// every assessment joined with its tea, its author, and its score rows,
// ordered by assessment date descending.
type ExportRepository struct {
	db *sql.DB
}

// NewExportRepository creates a new export repository
func NewExportRepository(db *sql.DB) *ExportRepository {
	return &ExportRepository{db: db}
}

// GetAll reads all assessments with their relations. Score rows are returned
// as a collection per assessment, unnormalized; reducing the to-one relation
// to a single record is the formatter's job.
func (r *ExportRepository) GetAll() ([]models.ExportRecord, error) {
	query := `
		SELECT a.id, a.tea_id, a.user_id, a.assessment_date, a.utensils, a.notes, a.created_at,
		       t.id, t.name_ko, t.name_en, t.year, t.category, t.origin, t.seller, t.created_by, t.created_at,
		       u.id, u.email, u.display_name, u.role, u.created_at, u.updated_at
		FROM assessments a
		INNER JOIN teas t ON a.tea_id = t.id
		INNER JOIN users u ON a.user_id = u.id
		ORDER BY a.assessment_date DESC, a.created_at DESC
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to read export data: %w", err)
	}
	defer rows.Close()

	var records []models.ExportRecord
	index := make(map[uuid.UUID]int)
	for rows.Next() {
		var rec models.ExportRecord
		if err := rows.Scan(
			&rec.ID,
			&rec.TeaID,
			&rec.UserID,
			&rec.AssessmentDate,
			&rec.Utensils,
			&rec.Notes,
			&rec.CreatedAt,
			&rec.Tea.ID,
			&rec.Tea.NameKo,
			&rec.Tea.NameEn,
			&rec.Tea.Year,
			&rec.Tea.Category,
			&rec.Tea.Origin,
			&rec.Tea.Seller,
			&rec.Tea.CreatedBy,
			&rec.Tea.CreatedAt,
			&rec.User.ID,
			&rec.User.Email,
			&rec.User.DisplayName,
			&rec.User.Role,
			&rec.User.CreatedAt,
			&rec.User.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan export row: %w", err)
		}
		index[rec.ID] = len(records)
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read export rows: %w", err)
	}

	if len(records) == 0 {
		return records, nil
	}

	ids := make([]uuid.UUID, len(records))
	for i := range records {
		ids[i] = records[i].ID
	}

	scores, err := NewScoreRepository(r.db).GetByAssessmentIDs(ids)
	if err != nil {
		return nil, err
	}
	for _, score := range scores {
		if pos, ok := index[score.AssessmentID]; ok {
			records[pos].Scores = append(records[pos].Scores, score)
		}
	}

	return records, nil
}
