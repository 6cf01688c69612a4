package importer

import (
	"log"
	"strings"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"cropstock/entities"
)

// Store is the persistence surface the import pipeline needs. Backed by the
// document collections; no transactionality is promised across calls.
type Store interface {
	ReplaceFields(fields []entities.Field) error
	ShedNameExists(name string) (bool, error)
	CreateShed(s *entities.Shed) error
	CreateZones(zones []entities.Zone) error
	CreateDoors(doors []entities.Door) error
	CreateFridges(fridges []entities.Fridge) error
}

type Summary struct {
	FieldsCreated int `json:"fields_created"`
	StoresCreated int `json:"stores_created"`
	ZonesCreated  int `json:"zones_created"`
}

type Importer struct {
	store Store
}

func New(store Store) *Importer { return &Importer{store: store} }

// ImportWorkbook runs the whole pipeline over one uploaded workbook: grade
// tables, then field sheets, then every remaining sheet as a store. Store
// sheets whose name already exists are skipped, so re-uploading the same
// workbook is idempotent. Errors abort the upload; records already written
// for earlier sheets stay.
func (im *Importer) ImportWorkbook(f *excelize.File) (*Summary, error) {
	sum := &Summary{}

	grades := ExtractGradeTables(f)

	fields, found, err := ExtractFields(f, grades)
	if err != nil {
		return nil, err
	}
	if found {
		// Full-refresh semantics: the field collection is cleared and
		// rebuilt every time a field sheet is present.
		if err := im.store.ReplaceFields(fields); err != nil {
			return nil, err
		}
		sum.FieldsCreated = len(fields)
	}

	for i, sheet := range f.GetSheetList() {
		if isSkippableSheet(sheet) {
			continue
		}
		name := strings.TrimSpace(sheet)
		exists, err := im.store.ShedNameExists(name)
		if err != nil {
			return nil, err
		}
		if exists {
			log.Printf("[import] store %q already exists, skipping sheet", name)
			continue
		}

		layout, err := ReconstructStore(f, sheet)
		if err != nil {
			return nil, err
		}
		if layout == nil {
			continue
		}

		shed := &entities.Shed{
			ID:           uuid.NewString(),
			Name:         name,
			Width:        layout.Width,
			Height:       layout.Height,
			Doors:        layout.EdgeDoors,
			DisplayOrder: i,
		}
		if err := im.store.CreateShed(shed); err != nil {
			return nil, err
		}
		for j := range layout.Zones {
			layout.Zones[j].ID = uuid.NewString()
			layout.Zones[j].ShedID = shed.ID
		}
		if err := im.store.CreateZones(layout.Zones); err != nil {
			return nil, err
		}
		for j := range layout.Fridges {
			layout.Fridges[j].ID = uuid.NewString()
			layout.Fridges[j].ShedID = shed.ID
		}
		if err := im.store.CreateFridges(layout.Fridges); err != nil {
			return nil, err
		}
		for j := range layout.Doors {
			layout.Doors[j].ID = uuid.NewString()
			layout.Doors[j].ShedID = shed.ID
		}
		if err := im.store.CreateDoors(layout.Doors); err != nil {
			return nil, err
		}

		sum.StoresCreated++
		sum.ZonesCreated += len(layout.Zones)
	}
	return sum, nil
}

// isSkippableSheet filters the sheets that never describe a store: the grade
// sheet, the field sheets and workbook default names.
func isSkippableSheet(name string) bool {
	lower := strings.ToLower(strings.TrimSpace(name))
	if strings.Contains(lower, "grade options") {
		return true
	}
	if isFieldSheet(name) {
		return true
	}
	return strings.HasPrefix(lower, "sheet")
}
