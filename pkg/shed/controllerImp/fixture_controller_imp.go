package controllerImp

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"cropstock/entities"
	"cropstock/pkg/shed/repository"
)

// FixtureCtrl serves the standalone door and fridge collections.
type FixtureCtrl struct {
	doors   repository.DoorRepository
	fridges repository.FridgeRepository
}

func NewFixtureCtrl(doors repository.DoorRepository, fridges repository.FridgeRepository) *FixtureCtrl {
	return &FixtureCtrl{doors: doors, fridges: fridges}
}

type fixtureReq struct {
	ShedID string  `json:"shed_id"`
	Name   string  `json:"name"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

func (h *FixtureCtrl) CreateDoor(c echo.Context) error {
	var req fixtureReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	d := &entities.Door{ID: uuid.NewString(), ShedID: req.ShedID, Name: req.Name, X: req.X, Y: req.Y, Width: req.Width, Height: req.Height}
	if err := h.doors.Create(d); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, d)
}

func (h *FixtureCtrl) ListDoors(c echo.Context) error {
	out, err := h.doors.List(c.QueryParam("shed_id"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	if out == nil {
		out = []entities.Door{}
	}
	return c.JSON(http.StatusOK, out)
}

func (h *FixtureCtrl) DeleteDoor(c echo.Context) error {
	if err := h.doors.Delete(c.Param("id")); err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Door not found"})
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Door deleted"})
}

func (h *FixtureCtrl) CreateFridge(c echo.Context) error {
	var req fixtureReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	f := &entities.Fridge{ID: uuid.NewString(), ShedID: req.ShedID, Name: req.Name, X: req.X, Y: req.Y, Width: req.Width, Height: req.Height}
	if err := h.fridges.Create(f); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, f)
}

func (h *FixtureCtrl) ListFridges(c echo.Context) error {
	out, err := h.fridges.List(c.QueryParam("shed_id"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	if out == nil {
		out = []entities.Fridge{}
	}
	return c.JSON(http.StatusOK, out)
}

func (h *FixtureCtrl) DeleteFridge(c echo.Context) error {
	if err := h.fridges.Delete(c.Param("id")); err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Fridge not found"})
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Fridge deleted"})
}
