package service

import (
	"cha-pyeong/internal/apperr"
	"cha-pyeong/internal/export"
	"cha-pyeong/internal/models"
)

// ExportService produces the admin-only bulk downloads.
type ExportService struct {
	store ExportStore
}

// NewExportService creates a new export service
func NewExportService(store ExportStore) *ExportService {
	return &ExportService{store: store}
}

// ExportAll reads the full relational data set, ordered by assessment date
// descending, and renders it in the requested format. Only admins may
// export; no redaction is applied to either encoding.
func (s *ExportService) ExportAll(role models.Role, format export.Format) ([]byte, error) {
	if role != models.RoleAdmin {
		return nil, apperr.Forbidden(role, "bulk-export assessments")
	}

	records, err := s.store.GetAll()
	if err != nil {
		return nil, err
	}

	if format == export.FormatJSON {
		return export.JSON(records)
	}
	return export.CSV(records), nil
}
