package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"cha-pyeong/internal/models"
)

var (
	ErrTeaNotFound = errors.New("tea not found")
)

// TeaRepository handles tea database operations
type TeaRepository struct {
	db *sql.DB
}

// NewTeaRepository creates a new tea repository
func NewTeaRepository(db *sql.DB) *TeaRepository {
	return &TeaRepository{db: db}
}

// Create inserts a new tea. No uniqueness check is performed: duplicate
// (name, year) pairs are allowed.
func (r *TeaRepository) Create(tea *models.Tea) error {
	query := `
		INSERT INTO teas (name_ko, name_en, year, category, origin, seller, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`

	now := time.Now()
	err := r.db.QueryRow(
		query,
		tea.NameKo,
		tea.NameEn,
		tea.Year,
		tea.Category,
		tea.Origin,
		tea.Seller,
		tea.CreatedBy,
		now,
	).Scan(&tea.ID)

	if err != nil {
		return fmt.Errorf("failed to create tea: %w", err)
	}

	tea.CreatedAt = now
	return nil
}

// GetByID retrieves a tea by ID
func (r *TeaRepository) GetByID(id uuid.UUID) (*models.Tea, error) {
	query := `
		SELECT id, name_ko, name_en, year, category, origin, seller, created_by, created_at
		FROM teas
		WHERE id = $1
	`

	tea := &models.Tea{}
	err := r.db.QueryRow(query, id).Scan(
		&tea.ID,
		&tea.NameKo,
		&tea.NameEn,
		&tea.Year,
		&tea.Category,
		&tea.Origin,
		&tea.Seller,
		&tea.CreatedBy,
		&tea.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrTeaNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get tea: %w", err)
	}

	return tea, nil
}

// TeaFilters holds filter parameters for tea list queries
type TeaFilters struct {
	Search    string
	SortBy    string
	SortOrder string
}

// GetAll retrieves teas with optional substring search and sorting
func (r *TeaRepository) GetAll(filters TeaFilters) ([]models.Tea, error) {
	query := `
		SELECT id, name_ko, name_en, year, category, origin, seller, created_by, created_at
		FROM teas
		WHERE 1=1
	`

	args := []interface{}{}
	argPos := 1

	if filters.Search != "" {
		query += fmt.Sprintf(` AND (name_ko ILIKE $%d OR name_en ILIKE $%d)`, argPos, argPos)
		args = append(args, "%"+filters.Search+"%")
		argPos++
	}

	sortColumn := "created_at"
	switch filters.SortBy {
	case "year":
		sortColumn = "year"
	case "name":
		sortColumn = "name_ko"
	case "created_at":
		sortColumn = "created_at"
	}

	sortOrder := "DESC"
	if filters.SortOrder == "asc" {
		sortOrder = "ASC"
	}

	query += fmt.Sprintf(` ORDER BY %s %s`, sortColumn, sortOrder)

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get teas: %w", err)
	}
	defer rows.Close()

	var teas []models.Tea
	for rows.Next() {
		var tea models.Tea
		if err := rows.Scan(
			&tea.ID,
			&tea.NameKo,
			&tea.NameEn,
			&tea.Year,
			&tea.Category,
			&tea.Origin,
			&tea.Seller,
			&tea.CreatedBy,
			&tea.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan tea: %w", err)
		}
		teas = append(teas, tea)
	}

	return teas, nil
}
