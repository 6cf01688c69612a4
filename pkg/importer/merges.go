package importer

import (
	"github.com/xuri/excelize/v2"
)

// mergeSpan is one merged region: anchor coordinate plus size in cells.
type mergeSpan struct {
	Row, Col int
	W, H     int
}

// mergeIndex maps every covered coordinate of every merged region to that
// region. Only the anchor carries the semantic value; the other covered
// coordinates must be skipped so one physical unit is never counted twice.
type mergeIndex map[[2]int]mergeSpan

func newMergeIndex(f *excelize.File, sheet string) (mergeIndex, error) {
	regions, err := f.GetMergeCells(sheet)
	if err != nil {
		return nil, err
	}
	idx := mergeIndex{}
	for _, region := range regions {
		c1, r1, err := excelize.CellNameToCoordinates(region.GetStartAxis())
		if err != nil {
			continue
		}
		c2, r2, err := excelize.CellNameToCoordinates(region.GetEndAxis())
		if err != nil {
			continue
		}
		if c2 < c1 {
			c1, c2 = c2, c1
		}
		if r2 < r1 {
			r1, r2 = r2, r1
		}
		span := mergeSpan{Row: r1, Col: c1, W: c2 - c1 + 1, H: r2 - r1 + 1}
		for r := r1; r <= r2; r++ {
			for c := c1; c <= c2; c++ {
				idx[[2]int{r, c}] = span
			}
		}
	}
	return idx, nil
}

// resolve reports whether (row, col) belongs to a merged region.
func (m mergeIndex) resolve(row, col int) (mergeSpan, bool) {
	span, ok := m[[2]int{row, col}]
	return span, ok
}

// coveredNotAnchor reports a coordinate inside a merged region that is not
// the region's top-left anchor.
func (m mergeIndex) coveredNotAnchor(row, col int) bool {
	span, ok := m.resolve(row, col)
	return ok && !(span.Row == row && span.Col == col)
}

// span returns the effective merge span of a coordinate, 1x1 when unmerged.
func (m mergeIndex) span(row, col int) (w, h int) {
	if s, ok := m.resolve(row, col); ok && s.Row == row && s.Col == col {
		return s.W, s.H
	}
	return 1, 1
}
