package controllerImp

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"cropstock/entities"
	"cropstock/pkg/field/repository"
)

type FieldCtrl struct{ repo repository.FieldRepository }

func New(repo repository.FieldRepository) *FieldCtrl { return &FieldCtrl{repo} }

type createReq struct {
	Name            string   `json:"name"`
	Area            string   `json:"area"`
	CropType        string   `json:"crop_type"`
	Variety         string   `json:"variety"`
	Type            *string  `json:"type"`
	AvailableGrades []string `json:"available_grades"`
	HarvestYear     string   `json:"harvest_year"`
}

func (h *FieldCtrl) Create(c echo.Context) error {
	var req createReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if req.HarvestYear == "" {
		req.HarvestYear = "2025"
	}
	if len(req.AvailableGrades) == 0 {
		req.AvailableGrades = []string{"Whole Crop"}
	}
	f := &entities.Field{ID: uuid.NewString(), Name: req.Name, Area: req.Area, CropType: req.CropType, Variety: req.Variety, Type: req.Type, AvailableGrades: req.AvailableGrades, HarvestYear: req.HarvestYear}
	if err := h.repo.Create(f); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, f)
}

func (h *FieldCtrl) List(c echo.Context) error {
	out, err := h.repo.List()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	if out == nil {
		out = []entities.Field{}
	}
	return c.JSON(http.StatusOK, out)
}

func (h *FieldCtrl) Delete(c echo.Context) error {
	if err := h.repo.Delete(c.Param("id")); err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Field not found"})
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Field deleted"})
}
