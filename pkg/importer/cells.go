package importer

import (
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// CellKind is the classification of one spreadsheet cell under the store
// sheets' visual language.
type CellKind int

const (
	KindEmpty CellKind = iota
	KindDoor
	KindFridge
	KindTonnage  // "<n>t" bulk tonnage marker
	KindCapacity // plain integer box-count marker
	KindHeader
)

// Fill colors the sheets use for markers. Authors pick slightly different
// shades per workbook revision, so these are matched as substrings of the
// style's ARGB values.
var (
	doorBlues     = []string{"0070C0", "00B0F0", "4472C4", "5B9BD5", "2196F3", "ADD8E6", "1F4E79"}
	fridgeYellows = []string{"FFFF00", "FFD966", "FFE699", "FFF2CC"}
)

const (
	maxBoxCapacity = 50
	hintScanRows   = 20
)

// Cell is one physical cell with its merge span. For merged regions only the
// anchor cell is classified; SpanW/SpanH are 1 for unmerged cells.
type Cell struct {
	Row, Col     int
	Value        string
	Fills        []string
	SpanW, SpanH int
}

type Classification struct {
	Kind     CellKind
	Capacity int
	// StrongDoor reports a door marker with a recognized blue fill. Door
	// text without the fill is kept as a weak signal for the outside-grid
	// heuristic only.
	StrongDoor bool
}

// Classify applies the marker rules in priority order. A cell resolves to at
// most one kind; a door can never double as a zone.
func Classify(c Cell) Classification {
	v := strings.TrimSpace(c.Value)
	if v == "" {
		return Classification{Kind: KindEmpty}
	}
	lower := strings.ToLower(v)

	if strings.Contains(lower, "door") {
		return Classification{Kind: KindDoor, StrongDoor: fillMatches(c.Fills, doorBlues)}
	}
	if strings.Contains(lower, "fridge") && fillMatches(c.Fills, fridgeYellows) {
		return Classification{Kind: KindFridge}
	}
	if strings.HasSuffix(lower, "t") && len(v) > 1 {
		if n, err := strconv.Atoi(v[:len(v)-1]); err == nil && n > 0 {
			return Classification{Kind: KindTonnage, Capacity: n}
		}
	}
	if n, err := strconv.Atoi(v); err == nil && n >= 1 && n <= maxBoxCapacity {
		return Classification{Kind: KindCapacity, Capacity: n}
	}
	return Classification{Kind: KindHeader}
}

func fillMatches(fills, hexes []string) bool {
	for _, f := range fills {
		upper := strings.ToUpper(f)
		for _, hex := range hexes {
			if strings.Contains(upper, hex) {
				return true
			}
		}
	}
	return false
}

// sheetGrid caches one sheet's values and style fills for repeated
// coordinate lookups. Coordinates are 1-based like the spreadsheet.
type sheetGrid struct {
	f     *excelize.File
	sheet string
	rows  [][]string
	fills map[int][]string // style id -> fill colors
}

func newSheetGrid(f *excelize.File, sheet string) (*sheetGrid, error) {
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, err
	}
	return &sheetGrid{f: f, sheet: sheet, rows: rows, fills: map[int][]string{}}, nil
}

func (g *sheetGrid) rowCount() int { return len(g.rows) }

func (g *sheetGrid) colCount(row int) int {
	if row < 1 || row > len(g.rows) {
		return 0
	}
	return len(g.rows[row-1])
}

func (g *sheetGrid) value(row, col int) string {
	if row < 1 || row > len(g.rows) {
		return ""
	}
	r := g.rows[row-1]
	if col < 1 || col > len(r) {
		return ""
	}
	return strings.TrimSpace(r[col-1])
}

func (g *sheetGrid) fillColors(row, col int) []string {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return nil
	}
	styleID, err := g.f.GetCellStyle(g.sheet, cell)
	if err != nil {
		return nil
	}
	if colors, ok := g.fills[styleID]; ok {
		return colors
	}
	var colors []string
	if style, err := g.f.GetStyle(styleID); err == nil && style != nil {
		colors = style.Fill.Color
	}
	g.fills[styleID] = colors
	return colors
}

// detectStorageType scans the first 20 rows for a "bulk" or "box" hint.
// First match wins, bulk checked before box, default box.
func detectStorageType(g *sheetGrid) string {
	limit := g.rowCount()
	if limit > hintScanRows {
		limit = hintScanRows
	}
	for r := 1; r <= limit; r++ {
		for c := 1; c <= g.colCount(r); c++ {
			lower := strings.ToLower(g.value(r, c))
			if lower == "" {
				continue
			}
			if strings.Contains(lower, "bulk") {
				return storageBulk
			}
			if strings.Contains(lower, "box") {
				return storageBox
			}
		}
	}
	return storageBox
}
