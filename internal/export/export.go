// Package export flattens the relational assessment read into the two bulk
// download encodings: a spreadsheet-friendly CSV and the raw nested JSON.
// Export is admin-only, so neither encoding redacts reviewer identity.
package export

import (
	"log/slog"

	"cha-pyeong/internal/models"
)

// Format identifies a bulk export encoding.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
)

// ParseFormat validates a raw format string.
func ParseFormat(raw string) (Format, bool) {
	switch Format(raw) {
	case FormatCSV, FormatJSON:
		return Format(raw), true
	default:
		return "", false
	}
}

// ContentType returns the MIME type of the encoding.
func (f Format) ContentType() string {
	if f == FormatJSON {
		return "application/json"
	}
	return "text/csv; charset=utf-8"
}

// singleScore normalizes the to-one score relation: an empty collection
// means "relation absent", a non-empty one means "use its first element".
// More than one element cannot occur under the unique constraint; if it
// does, it is a data-integrity signal worth logging, not silently resolving.
func singleScore(rec models.ExportRecord) *models.Score {
	switch len(rec.Scores) {
	case 0:
		return nil
	case 1:
		return &rec.Scores[0]
	default:
		slog.Warn("Export record carries multiple score rows, using the first",
			"assessment_id", rec.ID,
			"score_rows", len(rec.Scores),
		)
		return &rec.Scores[0]
	}
}
