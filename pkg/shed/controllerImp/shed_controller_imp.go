package controllerImp

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"cropstock/entities"
	shedRepo "cropstock/pkg/shed/repository"
	zoneRepo "cropstock/pkg/zone/repository"
)

type ShedCtrl struct {
	sheds   shedRepo.ShedRepository
	zones   zoneRepo.ZoneRepository
	doors   shedRepo.DoorRepository
	fridges shedRepo.FridgeRepository
}

func New(sheds shedRepo.ShedRepository, zones zoneRepo.ZoneRepository, doors shedRepo.DoorRepository, fridges shedRepo.FridgeRepository) *ShedCtrl {
	return &ShedCtrl{sheds: sheds, zones: zones, doors: doors, fridges: fridges}
}

type shedReq struct {
	Name        string              `json:"name"`
	Width       float64             `json:"width"`
	Height      float64             `json:"height"`
	Description string              `json:"description"`
	Doors       []entities.DoorSpec `json:"doors"`
}

func (h *ShedCtrl) Create(c echo.Context) error {
	var req shedReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	// Manual creates append after whatever the last import placed.
	max, err := h.sheds.MaxDisplayOrder()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	s := &entities.Shed{ID: uuid.NewString(), Name: req.Name, Width: req.Width, Height: req.Height, Description: req.Description, Doors: req.Doors, DisplayOrder: max + 1}
	if err := h.sheds.Create(s); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, s)
}

func (h *ShedCtrl) List(c echo.Context) error {
	out, err := h.sheds.List()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	if out == nil {
		out = []entities.Shed{}
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ShedCtrl) Get(c echo.Context) error {
	s, err := h.sheds.FindByID(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Shed not found"})
	}
	return c.JSON(http.StatusOK, s)
}

func (h *ShedCtrl) Delete(c echo.Context) error {
	id := c.Param("id")
	if err := h.sheds.Delete(id); err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Shed not found"})
	}
	// Children go with the shed. No FK enforcement in storage; best-effort.
	if err := h.zones.DeleteByShed(id); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	if err := h.doors.DeleteByShed(id); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	if err := h.fridges.DeleteByShed(id); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Shed deleted"})
}
