package importer

import (
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestClassifyMarkers(t *testing.T) {
	cases := []struct {
		name     string
		cell     Cell
		kind     CellKind
		capacity int
		strong   bool
	}{
		{"empty", Cell{Value: "   "}, KindEmpty, 0, false},
		{"capacity", Cell{Value: "6"}, KindCapacity, 6, false},
		{"capacity upper bound", Cell{Value: "50"}, KindCapacity, 50, false},
		{"too large for capacity", Cell{Value: "51"}, KindHeader, 0, false},
		{"zero is not capacity", Cell{Value: "0"}, KindHeader, 0, false},
		{"tonnage", Cell{Value: "175t"}, KindTonnage, 175, false},
		{"bare t is not tonnage", Cell{Value: "t"}, KindHeader, 0, false},
		{"negative tonnage rejected", Cell{Value: "-5t"}, KindHeader, 0, false},
		{"weak door", Cell{Value: "Door"}, KindDoor, 0, false},
		{"strong door", Cell{Value: "DOOR 1", Fills: []string{"FF0070C0"}}, KindDoor, 0, true},
		{"fridge with yellow fill", Cell{Value: "Fridge 2", Fills: []string{"FFFFFF00"}}, KindFridge, 0, false},
		{"fridge text without fill", Cell{Value: "Fridge 2"}, KindHeader, 0, false},
		{"header text", Cell{Value: "Shed Plan"}, KindHeader, 0, false},
	}
	for _, tc := range cases {
		got := Classify(tc.cell)
		if got.Kind != tc.kind {
			t.Errorf("%s: kind = %v, want %v", tc.name, got.Kind, tc.kind)
		}
		if got.Capacity != tc.capacity {
			t.Errorf("%s: capacity = %d, want %d", tc.name, got.Capacity, tc.capacity)
		}
		if got.StrongDoor != tc.strong {
			t.Errorf("%s: strong = %v, want %v", tc.name, got.StrongDoor, tc.strong)
		}
	}
}

func TestClassifyDoorBeatsZone(t *testing.T) {
	// "Door 6" contains a valid capacity digit but must stay a door.
	got := Classify(Cell{Value: "Door 6"})
	if got.Kind != KindDoor {
		t.Fatalf("kind = %v, want KindDoor", got.Kind)
	}
}

func TestFillMatches(t *testing.T) {
	if !fillMatches([]string{"ff4472c4"}, doorBlues) {
		t.Error("lowercase ARGB should match")
	}
	if fillMatches([]string{"FF00FF00"}, doorBlues) {
		t.Error("green should not match door blues")
	}
	if fillMatches(nil, fridgeYellows) {
		t.Error("no fills should never match")
	}
}

func TestDetectStorageType(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	sheet := "Sheet1"

	f.SetCellValue(sheet, "A1", "Bulk Storage Shed")
	g, err := newSheetGrid(f, sheet)
	if err != nil {
		t.Fatalf("newSheetGrid: %v", err)
	}
	if got := detectStorageType(g); got != storageBulk {
		t.Errorf("storage type = %q, want %q", got, storageBulk)
	}

	f.SetCellValue(sheet, "A1", "Box Store")
	g, _ = newSheetGrid(f, sheet)
	if got := detectStorageType(g); got != storageBox {
		t.Errorf("storage type = %q, want %q", got, storageBox)
	}

	f.SetCellValue(sheet, "A1", "no hint anywhere")
	g, _ = newSheetGrid(f, sheet)
	if got := detectStorageType(g); got != storageBox {
		t.Errorf("default storage type = %q, want %q", got, storageBox)
	}
}

func TestSheetGridValueTrimsAndBounds(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	f.SetCellValue("Sheet1", "B2", "  padded  ")

	g, err := newSheetGrid(f, "Sheet1")
	if err != nil {
		t.Fatalf("newSheetGrid: %v", err)
	}
	if got := g.value(2, 2); got != "padded" {
		t.Errorf("value(2,2) = %q, want %q", got, "padded")
	}
	if got := g.value(99, 99); got != "" {
		t.Errorf("out-of-range value = %q, want empty", got)
	}
}
