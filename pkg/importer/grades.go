package importer

import (
	"log"
	"strings"

	"github.com/xuri/excelize/v2"
)

const gradeSheetName = "Grade Options Page"

// sentinelGrade is assigned when a field's crop resolves to no grade table.
const sentinelGrade = "Whole Crop"

// Crop category keys. The grade sheet's column headers and the field sheets'
// crop text both classify into these.
const (
	catOnion        = "onion"
	catOnionSpecial = "onion_special"
	catMaincrop     = "maincrop"
	catSalad        = "salad"
	catCarrot       = "carrot"
)

// GradeTable maps a crop category to its ordered grade labels. Sheet order is
// preserved: it reflects the grade ranking.
type GradeTable map[string][]string

// ExtractGradeTables reads the grade-definition sheet. A missing sheet is not
// an error; downstream fields just get the sentinel grade.
func ExtractGradeTables(f *excelize.File) GradeTable {
	tables := GradeTable{}
	rows, err := f.GetRows(gradeSheetName)
	if err != nil || len(rows) == 0 {
		log.Printf("[import] no %q sheet, grade tables empty", gradeSheetName)
		return tables
	}

	header := rows[0]
	for col, raw := range header {
		cat := classifyGradeHeader(raw)
		if cat == "" {
			continue
		}
		var grades []string
		for r := 1; r < len(rows); r++ {
			v := ""
			if col < len(rows[r]) {
				v = strings.TrimSpace(rows[r][col])
			}
			if v == "" {
				break
			}
			grades = append(grades, v)
		}
		if len(grades) > 0 {
			tables[cat] = grades
		}
	}
	return tables
}

// classifyGradeHeader maps a column header to a category key, or "" when the
// column is not a recognized grade table. More specific matches win: "salad"
// before "potato", "onion special" before "onion".
func classifyGradeHeader(h string) string {
	lower := strings.ToLower(strings.TrimSpace(h))
	switch {
	case lower == "":
		return ""
	case strings.Contains(lower, "onion"):
		if strings.Contains(lower, "special") {
			return catOnionSpecial
		}
		return catOnion
	case strings.Contains(lower, "salad"):
		return catSalad
	case strings.Contains(lower, "maincrop"), strings.Contains(lower, "potato"):
		return catMaincrop
	case strings.Contains(lower, "carrot"):
		return catCarrot
	}
	return ""
}
