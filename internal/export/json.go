package export

import (
	"encoding/json"
	"fmt"

	"cha-pyeong/internal/models"
)

// jsonRecord is the nested shape of one exported assessment. The score
// relation is normalized to a single optional record before encoding.
type jsonRecord struct {
	models.Assessment
	Tea   models.Tea    `json:"tea"`
	User  models.User   `json:"user"`
	Score *models.Score `json:"score"`
}

// JSON renders the raw nested relational read, pretty-printed and without
// field redaction.
func JSON(records []models.ExportRecord) ([]byte, error) {
	out := make([]jsonRecord, 0, len(records))
	for _, rec := range records {
		out = append(out, jsonRecord{
			Assessment: rec.Assessment,
			Tea:        rec.Tea,
			User:       rec.User,
			Score:      singleScore(rec),
		})
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode export: %w", err)
	}
	return data, nil
}
