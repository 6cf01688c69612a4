package controllerImp

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"cropstock/entities"
	"cropstock/pkg/zone/repository"
)

type ZoneCtrl struct{ repo repository.ZoneRepository }

func New(repo repository.ZoneRepository) *ZoneCtrl { return &ZoneCtrl{repo} }

type zoneReq struct {
	ShedID      string  `json:"shed_id"`
	Name        string  `json:"name"`
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
	Width       float64 `json:"width"`
	Height      float64 `json:"height"`
	MaxCapacity int     `json:"max_capacity"`
}

func (h *ZoneCtrl) Create(c echo.Context) error {
	var req zoneReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	z := &entities.Zone{ID: uuid.NewString(), ShedID: req.ShedID, Name: req.Name, X: req.X, Y: req.Y, Width: req.Width, Height: req.Height, MaxCapacity: req.MaxCapacity}
	if err := h.repo.Create(z); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, z)
}

func (h *ZoneCtrl) List(c echo.Context) error {
	out, err := h.repo.List(c.QueryParam("shed_id"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	if out == nil {
		out = []entities.Zone{}
	}
	return c.JSON(http.StatusOK, out)
}

// UpdateQuantity sets a zone's running total outright, matching the manual
// stock-correction flow.
func (h *ZoneCtrl) UpdateQuantity(c echo.Context) error {
	id := c.Param("id")
	qty, err := strconv.ParseFloat(c.QueryParam("quantity"), 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad quantity"})
	}
	z, err := h.repo.FindByID(id)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Zone not found"})
	}
	if err := h.repo.SetQuantity(id, qty); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	z.TotalQuantity = qty
	return c.JSON(http.StatusOK, z)
}

func (h *ZoneCtrl) Delete(c echo.Context) error {
	if err := h.repo.Delete(c.Param("id")); err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Zone not found"})
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Zone deleted"})
}
