package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/xuri/excelize/v2"

	"cropstock/pkg/importer"
)

type UploadCtrl struct{ imp *importer.Importer }

func New(imp *importer.Importer) *UploadCtrl { return &UploadCtrl{imp} }

func (h *UploadCtrl) Upload(c echo.Context) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "missing file upload"})
	}
	src, err := fh.Open()
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	defer src.Close()

	wb, err := excelize.OpenReader(src)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "not a readable workbook: " + err.Error()})
	}
	defer wb.Close()

	sum, err := h.imp.ImportWorkbook(wb)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{
		"message":        "Upload processed",
		"fields_created": sum.FieldsCreated,
		"stores_created": sum.StoresCreated,
		"zones_created":  sum.ZonesCreated,
	})
}
