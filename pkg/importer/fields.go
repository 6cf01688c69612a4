package importer

import (
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"cropstock/entities"
)

const defaultHarvestYear = "2025"

// Sheet-name fragments that mark a sheet as holding field records. The
// misspelled variant appears in older workbooks.
var fieldSheetMarkers = []string{"front page", "harvest", "harvist"}

// fieldLayout is one known column arrangement of a field sheet. The variants
// disagree about what the variety-slot column means, so the mapping is part
// of the configuration instead of being assumed.
type fieldLayout struct {
	name       string
	headerRow  int
	dataStart  int
	farmCol    int
	fieldCol   int
	areaCol    int
	cropCol    int
	varietyCol int
	typeCol    int // 0: no type column
	// typeHoldsVariety flips the variety/type semantics: the "type" column
	// carries the real variety name and the variety slot the classification.
	typeHoldsVariety bool
	yearScanFrom     int
	yearScanTo       int
}

var (
	// Older FRONT PAGE sheets: Farm..Variety in C..G, no type column.
	layoutFrontPage = fieldLayout{
		name:      "front-page",
		headerRow: 3, dataStart: 4,
		farmCol: 3, fieldCol: 4, areaCol: 5, cropCol: 6, varietyCol: 7,
		yearScanFrom: 8, yearScanTo: 13,
	}
	// Master Harvest sheets add a Type column in H; Year shifts one right.
	layoutHarvest = fieldLayout{
		name:      "master-harvest",
		headerRow: 3, dataStart: 4,
		farmCol: 3, fieldCol: 4, areaCol: 5, cropCol: 6, varietyCol: 7, typeCol: 8,
		yearScanFrom: 9, yearScanTo: 14,
	}
)

// typeProbeHeaders are the accepted spellings of the type-column header at
// the probe cell H3.
var typeProbeHeaders = []string{"type", "class", "classification"}

// detectFieldLayout selects the column layout from a single probe cell. Any
// probe failure falls back to the older layout.
func detectFieldLayout(f *excelize.File, sheet string) fieldLayout {
	probe, err := f.GetCellValue(sheet, "H3")
	if err != nil {
		return layoutFrontPage
	}
	probe = strings.ToLower(strings.TrimSpace(probe))
	for _, h := range typeProbeHeaders {
		if probe == h {
			return layoutHarvest
		}
	}
	return layoutFrontPage
}

// findYearColumn scans header cells to the right of the data columns for a
// "year" header. Returns 0 when none is present.
func findYearColumn(g *sheetGrid, lay fieldLayout) int {
	for c := lay.yearScanFrom; c <= lay.yearScanTo; c++ {
		if strings.Contains(strings.ToLower(g.value(lay.headerRow, c)), "year") {
			return c
		}
	}
	return 0
}

// yearFromSheetName infers the harvest year from a digit run in the sheet's
// own name: "Master Harvest 25" -> "2025", "Harvest 2026" -> "2026". Whole
// runs only, so the "20" prefix of a four-digit year is never read as 2020.
func yearFromSheetName(name string) string {
	for i := 0; i < len(name); {
		if name[i] < '0' || name[i] > '9' {
			i++
			continue
		}
		j := i
		for j < len(name) && name[j] >= '0' && name[j] <= '9' {
			j++
		}
		run := name[i:j]
		switch len(run) {
		case 2:
			if n, _ := strconv.Atoi(run); n >= 20 && n <= 39 {
				return "20" + run
			}
		case 4:
			if n, _ := strconv.Atoi(run); n >= 2020 && n <= 2039 {
				return run
			}
		}
		i = j
	}
	return ""
}

func isFieldSheet(name string) bool {
	lower := strings.ToLower(name)
	for _, marker := range fieldSheetMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

// ExtractFields reads every field sheet in the workbook into Field records
// with grades assigned from the grade tables. found is false when the
// workbook has no field sheet at all, so callers can leave the existing
// field collection untouched.
func ExtractFields(f *excelize.File, grades GradeTable) (fields []entities.Field, found bool, err error) {
	for _, sheet := range f.GetSheetList() {
		if !isFieldSheet(sheet) {
			continue
		}
		found = true
		sheetFields, err := extractFieldSheet(f, sheet, grades)
		if err != nil {
			return nil, true, err
		}
		fields = append(fields, sheetFields...)
	}
	return fields, found, nil
}

func extractFieldSheet(f *excelize.File, sheet string, grades GradeTable) ([]entities.Field, error) {
	g, err := newSheetGrid(f, sheet)
	if err != nil {
		return nil, err
	}
	lay := detectFieldLayout(f, sheet)
	yearCol := findYearColumn(g, lay)
	sheetYear := yearFromSheetName(sheet)

	var fields []entities.Field
	for r := lay.dataStart; ; r++ {
		farm := g.value(r, lay.farmCol)
		fieldName := g.value(r, lay.fieldCol)
		// An empty farm or field cell terminates the table; there is no
		// explicit end marker.
		if farm == "" || fieldName == "" {
			break
		}

		rawVariety := g.value(r, lay.varietyCol)
		rawType := ""
		if lay.typeCol > 0 {
			rawType = g.value(r, lay.typeCol)
		}
		variety, class := rawVariety, rawType
		if lay.typeHoldsVariety {
			variety, class = rawType, rawVariety
		}

		year := defaultHarvestYear
		if yearCol > 0 {
			if v := g.value(r, yearCol); v != "" {
				year = v
			}
		} else if sheetYear != "" {
			year = sheetYear
		}

		crop := g.value(r, lay.cropCol)
		fld := entities.Field{
			ID:              uuid.NewString(),
			Name:            farm + " - " + fieldName,
			Area:            g.value(r, lay.areaCol) + " acres",
			CropType:        crop,
			Variety:         variety,
			AvailableGrades: assignGrades(crop, variety, grades),
			HarvestYear:     year,
		}
		if class != "" {
			fld.Type = &class
		}
		fields = append(fields, fld)
	}
	return fields, nil
}

// cropCategory classifies a field's crop for grade lookup. The special-onion
// markers can live in either the crop or the variety text, and must be
// checked before the generic onion match; salad before the potato group.
func cropCategory(crop, variety string) string {
	c := strings.ToLower(crop)
	v := strings.ToLower(variety)
	switch {
	case strings.Contains(c, "onion"):
		if strings.Contains(c, "special") || strings.Contains(c, "shallot") ||
			strings.Contains(v, "special") || strings.Contains(v, "shallot") {
			return catOnionSpecial
		}
		return catOnion
	case strings.Contains(c, "salad"):
		return catSalad
	case strings.Contains(c, "maincrop"), strings.Contains(c, "potato"):
		return catMaincrop
	case strings.Contains(c, "carrot"):
		return catCarrot
	}
	return ""
}

// assignGrades returns the crop-specific grade list, or the sentinel grade
// when none exists. Crop-specific lists are used verbatim, never appended to.
func assignGrades(crop, variety string, grades GradeTable) []string {
	if cat := cropCategory(crop, variety); cat != "" {
		if list, ok := grades[cat]; ok && len(list) > 0 {
			out := make([]string, len(list))
			copy(out, list)
			return out
		}
	}
	return []string{sentinelGrade}
}
