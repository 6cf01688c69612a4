package importer

import (
	"fmt"
	"log"
	"sort"
	"strconv"

	"github.com/xuri/excelize/v2"

	"cropstock/entities"
)

// Storage conventions. The per-sheet storage type fixes the unit width used
// for every zone, door and fridge on that sheet; row height is always 2m.
const (
	storageBulk = "bulk"
	storageBox  = "box"

	bulkUnitWidth = 8.0
	boxUnitWidth  = 2.0
	rowUnitHeight = 2.0
	widthMargin   = 2.0
)

func unitWidth(storageType string) float64 {
	if storageType == storageBulk {
		return bulkUnitWidth
	}
	return boxUnitWidth
}

// StoreLayout is the geometric reconstruction of one store sheet. Records
// carry no IDs; the orchestrator assigns them on persist.
type StoreLayout struct {
	Name        string
	StorageType string
	Width       float64
	Height      float64
	Zones       []entities.Zone
	Doors       []entities.Door    // in-grid doors, current standalone form
	EdgeDoors   []entities.DoorSpec // outside-grid doors, legacy inline form
	Fridges     []entities.Fridge
}

// placedUnit is one classified anchor cell awaiting positioning.
type placedUnit struct {
	row, col     int
	spanW, spanH int
	capacity     int
	kind         CellKind
	strong       bool
	label        string
	x            float64
}

// ReconstructStore turns one store sheet into positioned zone/door/fridge
// records. Returns nil when the sheet holds no zone cells at all.
func ReconstructStore(f *excelize.File, sheet string) (*StoreLayout, error) {
	g, err := newSheetGrid(f, sheet)
	if err != nil {
		return nil, err
	}
	merges, err := newMergeIndex(f, sheet)
	if err != nil {
		return nil, err
	}

	storageType := detectStorageType(g)
	uw := unitWidth(storageType)

	var zones, fridges, doors []*placedUnit
	minRow, maxRow, minCol, maxCol := 0, 0, 0, 0
	for r := 1; r <= g.rowCount(); r++ {
		for c := 1; c <= g.colCount(r); c++ {
			// Merged regions count once, at their anchor.
			if merges.coveredNotAnchor(r, c) {
				continue
			}
			v := g.value(r, c)
			if v == "" {
				continue
			}
			w, h := merges.span(r, c)
			cls := Classify(Cell{Row: r, Col: c, Value: v, Fills: g.fillColors(r, c), SpanW: w, SpanH: h})
			unit := &placedUnit{row: r, col: c, spanW: w, spanH: h, capacity: cls.Capacity, kind: cls.Kind, strong: cls.StrongDoor, label: v}
			switch cls.Kind {
			case KindCapacity, KindTonnage:
				zones = append(zones, unit)
				// The box must cover the full merged extent, not just the
				// anchor, or merged zones would hang past the shed edge.
				bottom, right := r+h-1, c+w-1
				if minRow == 0 || r < minRow {
					minRow = r
				}
				if bottom > maxRow {
					maxRow = bottom
				}
				if minCol == 0 || c < minCol {
					minCol = c
				}
				if right > maxCol {
					maxCol = right
				}
			case KindFridge:
				fridges = append(fridges, unit)
			case KindDoor:
				doors = append(doors, unit)
			}
		}
	}

	if len(zones) == 0 {
		log.Printf("[import] sheet %q has no zone cells, skipping", sheet)
		return nil, nil
	}

	// Doors take part in row positioning only when they sit inside the zone
	// bounding box and carry the authoritative blue fill; the rest go
	// through the edge heuristic below.
	var gridDoors, strayDoors []*placedUnit
	for _, d := range doors {
		inGrid := d.row >= minRow && d.row <= maxRow && d.col >= minCol && d.col <= maxCol
		if inGrid && d.strong {
			gridDoors = append(gridDoors, d)
		} else if !inGrid {
			strayDoors = append(strayDoors, d)
		}
	}

	var positioned []*placedUnit
	positioned = append(positioned, zones...)
	positioned = append(positioned, fridges...)
	positioned = append(positioned, gridDoors...)
	maxRight := positionRows(positioned, minCol, uw)

	layout := &StoreLayout{
		Name:        sheet,
		StorageType: storageType,
		Width:       maxRight + widthMargin,
		Height:      float64(maxRow-minRow+1) * rowUnitHeight,
	}

	yOf := func(row int) float64 { return float64(row-minRow) * rowUnitHeight }
	for _, z := range zones {
		layout.Zones = append(layout.Zones, entities.Zone{
			Name:        zoneName(z.row-minRow+1, z.col-minCol+1),
			X:           z.x,
			Y:           yOf(z.row),
			Width:       float64(z.spanW) * uw,
			Height:      float64(z.spanH) * rowUnitHeight,
			MaxCapacity: z.capacity,
		})
	}
	for _, fr := range fridges {
		layout.Fridges = append(layout.Fridges, entities.Fridge{
			Name:   fr.label,
			X:      fr.x,
			Y:      yOf(fr.row),
			Width:  float64(fr.spanW) * uw,
			Height: float64(fr.spanH) * rowUnitHeight,
		})
	}
	for _, d := range gridDoors {
		layout.Doors = append(layout.Doors, entities.Door{
			Name:   d.label,
			X:      d.x,
			Y:      yOf(d.row),
			Width:  float64(d.spanW) * uw,
			Height: float64(d.spanH) * rowUnitHeight,
		})
	}

	layout.EdgeDoors = edgeDoors(strayDoors, minRow, maxRow, minCol, maxCol, uw)
	return layout, nil
}

// positionRows walks each row left to right, advancing an x-cursor by the
// unit width per occupied cell column and inserting one unit-width gap per
// skipped column. Rows are positioned independently, so ragged layouts keep
// their column alignment relative to the store's left edge (minCol). Returns
// the maximum right edge across all rows.
func positionRows(units []*placedUnit, minCol int, uw float64) float64 {
	byRow := map[int][]*placedUnit{}
	for _, u := range units {
		byRow[u.row] = append(byRow[u.row], u)
	}
	maxRight := 0.0
	for _, row := range byRow {
		sort.Slice(row, func(i, j int) bool { return row[i].col < row[j].col })
		x := 0.0
		expect := minCol
		for _, u := range row {
			if u.col > expect {
				x += float64(u.col-expect) * uw
			}
			u.x = x
			x += float64(u.spanW) * uw
			expect = u.col + u.spanW
		}
		if x > maxRight {
			maxRight = x
		}
	}
	return maxRight
}

// edgeDoors assigns door cells lying strictly outside the zone bounding box
// on exactly one axis to the nearest shed edge. Identical (side, position)
// pairs collapse to one door.
func edgeDoors(doors []*placedUnit, minRow, maxRow, minCol, maxCol int, uw float64) []entities.DoorSpec {
	var specs []entities.DoorSpec
	seen := map[string]bool{}
	add := func(side string, pos float64) {
		key := fmt.Sprintf("%s:%.3f", side, pos)
		if seen[key] {
			return
		}
		seen[key] = true
		specs = append(specs, entities.DoorSpec{Side: side, Position: pos})
	}
	for _, d := range doors {
		inCols := d.col >= minCol && d.col <= maxCol
		inRows := d.row >= minRow && d.row <= maxRow
		switch {
		case d.row < minRow && inCols:
			add("top", float64(d.col-minCol)*uw)
		case d.row > maxRow && inCols:
			add("bottom", float64(d.col-minCol)*uw)
		case d.col < minCol && inRows:
			add("left", float64(d.row-minRow)*rowUnitHeight)
		case d.col > maxCol && inRows:
			add("right", float64(d.row-minRow)*rowUnitHeight)
		}
	}
	return specs
}

// zoneName derives the spreadsheet-style name from the zone's offset within
// the store bounding box: column letter plus relative row number.
func zoneName(relRow, relCol int) string {
	letter, err := excelize.ColumnNumberToName(relCol)
	if err != nil {
		letter = "?"
	}
	return letter + strconv.Itoa(relRow)
}
