package controllerImp

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	"cropstock/entities"
)

const xlsxMIME = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportCtrl writes the current database out as a workbook, one sheet per
// collection. This is a reporting export, not a round-trip format: the
// upload parser does not read these sheets back.
type ExportCtrl struct {
	db *gorm.DB
}

func New(db *gorm.DB) *ExportCtrl { return &ExportCtrl{db: db} }

func (h *ExportCtrl) Export(c echo.Context) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := h.writeFields(f); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	if err := h.writeSheds(f); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	if err := h.writeZones(f); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	if err := h.writeIntakes(f); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	if err := h.writeMovements(f); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	f.DeleteSheet("Sheet1")

	buf, err := f.WriteToBuffer()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	name := fmt.Sprintf("stock_export_%s.xlsx", time.Now().UTC().Format("2006-01-02"))
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+name+`"`)
	return c.Blob(http.StatusOK, xlsxMIME, buf.Bytes())
}

func writeHeader(f *excelize.File, sheet string, cols []string) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}
	for i, col := range cols {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, col); err != nil {
			return err
		}
	}
	return nil
}

func writeRow(f *excelize.File, sheet string, row int, vals []any) error {
	for i, v := range vals {
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return err
		}
	}
	return nil
}

func (h *ExportCtrl) writeFields(f *excelize.File) error {
	var fields []entities.Field
	if err := h.db.Find(&fields).Error; err != nil {
		return err
	}
	const sheet = "Fields"
	if err := writeHeader(f, sheet, []string{"Name", "Area", "Crop", "Variety", "Type", "Grades", "Harvest Year"}); err != nil {
		return err
	}
	for i, fd := range fields {
		typ := ""
		if fd.Type != nil {
			typ = *fd.Type
		}
		row := []any{fd.Name, fd.Area, fd.CropType, fd.Variety, typ, strings.Join(fd.AvailableGrades, ", "), fd.HarvestYear}
		if err := writeRow(f, sheet, i+2, row); err != nil {
			return err
		}
	}
	return nil
}

func (h *ExportCtrl) writeSheds(f *excelize.File) error {
	var sheds []entities.Shed
	if err := h.db.Order("display_order").Find(&sheds).Error; err != nil {
		return err
	}
	const sheet = "Sheds"
	if err := writeHeader(f, sheet, []string{"Name", "Width (m)", "Height (m)", "Doors", "Description"}); err != nil {
		return err
	}
	for i, s := range sheds {
		if err := writeRow(f, sheet, i+2, []any{s.Name, s.Width, s.Height, len(s.Doors), s.Description}); err != nil {
			return err
		}
	}
	return nil
}

func (h *ExportCtrl) writeZones(f *excelize.File) error {
	var zones []entities.Zone
	if err := h.db.Find(&zones).Error; err != nil {
		return err
	}
	sheds := map[string]string{}
	var all []entities.Shed
	if err := h.db.Find(&all).Error; err != nil {
		return err
	}
	for _, s := range all {
		sheds[s.ID] = s.Name
	}
	const sheet = "Zones"
	if err := writeHeader(f, sheet, []string{"Shed", "Zone", "Quantity (t)", "Max Capacity", "Width (m)", "Height (m)"}); err != nil {
		return err
	}
	for i, z := range zones {
		row := []any{sheds[z.ShedID], z.Name, z.TotalQuantity, z.MaxCapacity, z.Width, z.Height}
		if err := writeRow(f, sheet, i+2, row); err != nil {
			return err
		}
	}
	return nil
}

func (h *ExportCtrl) writeIntakes(f *excelize.File) error {
	var intakes []entities.StockIntake
	if err := h.db.Find(&intakes).Error; err != nil {
		return err
	}
	const sheet = "Stock Intakes"
	if err := writeHeader(f, sheet, []string{"Date", "Field", "Zone ID", "Shed ID", "Grade", "Quantity (t)"}); err != nil {
		return err
	}
	for i, in := range intakes {
		row := []any{in.Date, in.FieldName, in.ZoneID, in.ShedID, in.Grade, in.Quantity}
		if err := writeRow(f, sheet, i+2, row); err != nil {
			return err
		}
	}
	return nil
}

func (h *ExportCtrl) writeMovements(f *excelize.File) error {
	var movements []entities.StockMovement
	if err := h.db.Find(&movements).Error; err != nil {
		return err
	}
	const sheet = "Stock Movements"
	if err := writeHeader(f, sheet, []string{"Date", "From Zone", "To Zone", "From Shed", "To Shed", "Quantity (t)"}); err != nil {
		return err
	}
	for i, m := range movements {
		row := []any{m.Date, m.FromZoneID, m.ToZoneID, m.FromShedID, m.ToShedID, m.Quantity}
		if err := writeRow(f, sheet, i+2, row); err != nil {
			return err
		}
	}
	return nil
}
