package importer

import (
	"testing"

	"github.com/xuri/excelize/v2"

	"cropstock/entities"
)

type fakeStore struct {
	fields  []entities.Field
	sheds   []entities.Shed
	zones   []entities.Zone
	doors   []entities.Door
	fridges []entities.Fridge
}

func (s *fakeStore) ReplaceFields(fields []entities.Field) error {
	s.fields = fields
	return nil
}

func (s *fakeStore) ShedNameExists(name string) (bool, error) {
	for _, sh := range s.sheds {
		if sh.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (s *fakeStore) CreateShed(sh *entities.Shed) error {
	s.sheds = append(s.sheds, *sh)
	return nil
}

func (s *fakeStore) CreateZones(zones []entities.Zone) error {
	s.zones = append(s.zones, zones...)
	return nil
}

func (s *fakeStore) CreateDoors(doors []entities.Door) error {
	s.doors = append(s.doors, doors...)
	return nil
}

func (s *fakeStore) CreateFridges(fridges []entities.Fridge) error {
	s.fridges = append(s.fridges, fridges...)
	return nil
}

// uploadWorkbook builds the minimal realistic upload: grade sheet, one field
// sheet, one store sheet.
func uploadWorkbook(t *testing.T) *excelize.File {
	t.Helper()
	f := excelize.NewFile()

	f.NewSheet(gradeSheetName)
	f.SetCellValue(gradeSheetName, "A1", "Onion Grades")
	f.SetCellValue(gradeSheetName, "A2", "50/60")
	f.SetCellValue(gradeSheetName, "A3", "70/80")

	f.NewSheet("FRONT PAGE")
	setFieldHeaders(f, "FRONT PAGE")
	f.SetCellValue("FRONT PAGE", "C4", "Lodge Farm")
	f.SetCellValue("FRONT PAGE", "D4", "Barn Field")
	f.SetCellValue("FRONT PAGE", "E4", "12.5")
	f.SetCellValue("FRONT PAGE", "F4", "Onions")
	f.SetCellValue("FRONT PAGE", "G4", "Red Baron")

	f.NewSheet("Shed 1")
	f.SetCellValue("Shed 1", "A1", "Box Storage")
	f.SetCellValue("Shed 1", "B3", "6")
	f.SetCellValue("Shed 1", "C3", "8")

	return f
}

func TestImportWorkbook(t *testing.T) {
	f := uploadWorkbook(t)
	defer f.Close()
	store := &fakeStore{}
	imp := New(store)

	sum, err := imp.ImportWorkbook(f)
	if err != nil {
		t.Fatalf("ImportWorkbook: %v", err)
	}
	if sum.FieldsCreated != 1 || sum.StoresCreated != 1 || sum.ZonesCreated != 2 {
		t.Errorf("summary = %+v, want 1/1/2", sum)
	}

	if len(store.fields) != 1 {
		t.Fatalf("got %d fields", len(store.fields))
	}
	if g := store.fields[0].AvailableGrades; len(g) != 2 || g[0] != "50/60" {
		t.Errorf("grades = %v", g)
	}

	if len(store.sheds) != 1 || store.sheds[0].Name != "Shed 1" {
		t.Fatalf("sheds = %+v", store.sheds)
	}
	if len(store.zones) != 2 {
		t.Fatalf("got %d zones", len(store.zones))
	}
	for _, z := range store.zones {
		if z.ID == "" || z.ShedID != store.sheds[0].ID {
			t.Errorf("zone not linked to shed: %+v", z)
		}
	}
}

func TestImportWorkbookIdempotent(t *testing.T) {
	f := uploadWorkbook(t)
	defer f.Close()
	store := &fakeStore{}
	imp := New(store)

	if _, err := imp.ImportWorkbook(f); err != nil {
		t.Fatalf("first import: %v", err)
	}
	sum, err := imp.ImportWorkbook(f)
	if err != nil {
		t.Fatalf("second import: %v", err)
	}

	// Existing stores are skipped; fields are a full refresh, not an append.
	if sum.StoresCreated != 0 || sum.ZonesCreated != 0 {
		t.Errorf("second summary = %+v, want no new stores", sum)
	}
	if len(store.sheds) != 1 || len(store.zones) != 2 {
		t.Errorf("sheds=%d zones=%d after re-upload", len(store.sheds), len(store.zones))
	}
	if len(store.fields) != 1 {
		t.Errorf("fields=%d after re-upload, want 1", len(store.fields))
	}
}

func TestImportWorkbookNoFieldSheet(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	f.NewSheet("Shed 9")
	f.SetCellValue("Shed 9", "B2", "6")

	store := &fakeStore{fields: []entities.Field{{ID: "keep"}}}
	imp := New(store)
	sum, err := imp.ImportWorkbook(f)
	if err != nil {
		t.Fatalf("ImportWorkbook: %v", err)
	}
	if sum.FieldsCreated != 0 {
		t.Errorf("fields created = %d", sum.FieldsCreated)
	}
	// No field sheet in the workbook: the existing collection is untouched.
	if len(store.fields) != 1 || store.fields[0].ID != "keep" {
		t.Errorf("fields = %+v, want untouched", store.fields)
	}
	if sum.StoresCreated != 1 {
		t.Errorf("stores created = %d", sum.StoresCreated)
	}
}

func TestIsSkippableSheet(t *testing.T) {
	for _, name := range []string{"Grade Options Page", "FRONT PAGE", "Master Harvist 25", "Sheet1", " sheet3 "} {
		if !isSkippableSheet(name) {
			t.Errorf("%q should be skipped", name)
		}
	}
	for _, name := range []string{"Shed 1", "Allpress", "Cold Store"} {
		if isSkippableSheet(name) {
			t.Errorf("%q should not be skipped", name)
		}
	}
}
