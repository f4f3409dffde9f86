package export

import (
	"bytes"
	"strconv"
	"strings"

	"cha-pyeong/internal/models"
)

// utf8BOM precedes the CSV body so spreadsheet tools infer the encoding of
// the Korean headers and cell values correctly.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// csvHeaders is the fixed 20-column header: assessment date, tea fields,
// reviewer, utensils, the ten score attributes in order, personal notes.
var csvHeaders = []string{
	"품평일",
	"차이름",
	"영문명",
	"생산년도",
	"카테고리",
	"산지",
	"구매처",
	"품평자",
	"사용물",
	"두께감",
	"밀도감",
	"부드러움",
	"맑음",
	"입자감",
	"향의연속성",
	"향의길이",
	"정제감",
	"섬세함",
	"후운",
	"개인감상",
}

// CSV renders one row per assessment. Every cell is quoted, missing optional
// fields render as empty cells, never as the literal "null".
//
// encoding/csv quotes only cells that need it, while the consumers of this
// file expect every cell quoted, so rows are written by hand.
func CSV(records []models.ExportRecord) []byte {
	var buf bytes.Buffer
	buf.Write(utf8BOM)
	writeRow(&buf, csvHeaders)

	for _, rec := range records {
		score := singleScore(rec)
		row := []string{
			rec.AssessmentDate.Format("2006-01-02"),
			rec.Tea.NameKo,
			optional(rec.Tea.NameEn),
			strconv.Itoa(rec.Tea.Year),
			rec.Tea.Category,
			optional(rec.Tea.Origin),
			optional(rec.Tea.Seller),
			rec.User.ReviewerName(),
			optional(rec.Utensils),
		}
		if score != nil {
			row = append(row,
				formatScore(score.Thickness),
				formatScore(score.Density),
				formatScore(score.Smoothness),
				formatScore(score.Clarity),
				formatScore(score.Granularity),
				formatScore(score.AromaContinuity),
				formatScore(score.AromaLength),
				formatScore(score.Refinement),
				formatScore(score.Delicacy),
				formatScore(score.Aftertaste),
			)
		} else {
			row = append(row, "", "", "", "", "", "", "", "", "", "")
		}
		row = append(row, optional(rec.Notes))
		writeRow(&buf, row)
	}

	return buf.Bytes()
}

func writeRow(buf *bytes.Buffer, cells []string) {
	for i, cell := range cells {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteByte('"')
		buf.WriteString(strings.ReplaceAll(cell, `"`, `""`))
		buf.WriteByte('"')
	}
	buf.WriteByte('\n')
}

func optional(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// formatScore prints a score without trailing zeros: 7.5 stays 7.5, 8.0
// becomes 8.
func formatScore(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
