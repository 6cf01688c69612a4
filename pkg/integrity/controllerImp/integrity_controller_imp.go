package controllerImp

import (
	"fmt"
	"math"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"cropstock/entities"
)

// IntegrityCtrl reads the whole store and reports advisory diagnostics.
// Nothing here heals anything; referential integrity is not enforced on
// write, so orphans and drifted zone totals can exist.
type IntegrityCtrl struct {
	db *gorm.DB
}

func New(db *gorm.DB) *IntegrityCtrl { return &IntegrityCtrl{db: db} }

type issue struct {
	Type  string   `json:"type"`
	Count int      `json:"count"`
	Items []string `json:"items"`
}

func (h *IntegrityCtrl) Report(c echo.Context) error {
	var (
		fields    []entities.Field
		sheds     []entities.Shed
		zones     []entities.Zone
		doors     []entities.Door
		fridges   []entities.Fridge
		intakes   []entities.StockIntake
		movements []entities.StockMovement
	)
	for _, dst := range []any{&fields, &sheds, &zones, &doors, &fridges, &intakes, &movements} {
		if err := h.db.Find(dst).Error; err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
	}

	shedIDs := map[string]bool{}
	for _, s := range sheds {
		shedIDs[s.ID] = true
	}
	zoneIDs := map[string]bool{}
	for _, z := range zones {
		zoneIDs[z.ID] = true
	}
	fieldIDs := map[string]bool{}
	for _, f := range fields {
		fieldIDs[f.ID] = true
	}

	var issues []issue
	record := func(typ string, items []string) {
		if len(items) > 0 {
			issues = append(issues, issue{Type: typ, Count: len(items), Items: items})
		}
	}

	var orphanZones []string
	for _, z := range zones {
		if !shedIDs[z.ShedID] {
			orphanZones = append(orphanZones, fmt.Sprintf("zone %s (%s) references missing shed %s", z.ID, z.Name, z.ShedID))
		}
	}
	record("orphaned_zones", orphanZones)

	var orphanDoors []string
	for _, d := range doors {
		if !shedIDs[d.ShedID] {
			orphanDoors = append(orphanDoors, fmt.Sprintf("door %s references missing shed %s", d.ID, d.ShedID))
		}
	}
	record("orphaned_doors", orphanDoors)

	var orphanFridges []string
	for _, f := range fridges {
		if !shedIDs[f.ShedID] {
			orphanFridges = append(orphanFridges, fmt.Sprintf("fridge %s references missing shed %s", f.ID, f.ShedID))
		}
	}
	record("orphaned_fridges", orphanFridges)

	var orphanIntakes []string
	for _, i := range intakes {
		if !zoneIDs[i.ZoneID] {
			orphanIntakes = append(orphanIntakes, fmt.Sprintf("intake %s references missing zone %s", i.ID, i.ZoneID))
		} else if !fieldIDs[i.FieldID] {
			orphanIntakes = append(orphanIntakes, fmt.Sprintf("intake %s references missing field %s", i.ID, i.FieldID))
		}
	}
	record("orphaned_intakes", orphanIntakes)

	// Expected zone total: intakes in, movements out, movements in.
	expected := map[string]float64{}
	for _, i := range intakes {
		expected[i.ZoneID] += i.Quantity
	}
	for _, m := range movements {
		expected[m.FromZoneID] -= m.Quantity
		if zoneIDs[m.ToZoneID] {
			expected[m.ToZoneID] += m.Quantity
		}
	}
	var mismatches []string
	for _, z := range zones {
		if math.Abs(z.TotalQuantity-expected[z.ID]) > 0.001 {
			mismatches = append(mismatches, fmt.Sprintf("zone %s (%s): total %.2f, expected %.2f", z.ID, z.Name, z.TotalQuantity, expected[z.ID]))
		}
	}
	record("quantity_mismatches", mismatches)

	status := "healthy"
	if len(issues) > 0 {
		status = "issues_found"
	}
	if issues == nil {
		issues = []issue{}
	}
	return c.JSON(http.StatusOK, map[string]any{
		"status": status,
		"stats": map[string]int{
			"fields":          len(fields),
			"sheds":           len(sheds),
			"zones":           len(zones),
			"doors":           len(doors),
			"fridges":         len(fridges),
			"stock_intakes":   len(intakes),
			"stock_movements": len(movements),
		},
		"issues": issues,
	})
}

// ClearAll wipes every data collection. Users survive: the login table is
// maintenance data, not stock data.
func (h *IntegrityCtrl) ClearAll(c echo.Context) error {
	cleared := []string{"fields", "sheds", "zones", "doors", "fridges", "stock_intakes", "stock_movements"}
	models := []any{
		&entities.Field{}, &entities.Shed{}, &entities.Zone{},
		&entities.Door{}, &entities.Fridge{},
		&entities.StockIntake{}, &entities.StockMovement{},
	}
	for _, m := range models {
		if err := h.db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(m).Error; err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
	}
	return c.JSON(http.StatusOK, map[string]any{
		"message":             "All data cleared",
		"collections_cleared": cleared,
	})
}
