package controllerImp

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"cropstock/entities"
	stockRepo "cropstock/pkg/stock/repository"
	zoneRepo "cropstock/pkg/zone/repository"
)

type StockCtrl struct {
	intakes   stockRepo.IntakeRepository
	movements stockRepo.MovementRepository
	zones     zoneRepo.ZoneRepository
}

func New(intakes stockRepo.IntakeRepository, movements stockRepo.MovementRepository, zones zoneRepo.ZoneRepository) *StockCtrl {
	return &StockCtrl{intakes: intakes, movements: movements, zones: zones}
}

type intakeReq struct {
	FieldID   string  `json:"field_id"`
	FieldName string  `json:"field_name"`
	ZoneID    string  `json:"zone_id"`
	ShedID    string  `json:"shed_id"`
	Quantity  float64 `json:"quantity"`
	Date      string  `json:"date"`
	Grade     string  `json:"grade"`
}

func (h *StockCtrl) CreateIntake(c echo.Context) error {
	var req intakeReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	i := &entities.StockIntake{
		ID: uuid.NewString(), FieldID: req.FieldID, FieldName: req.FieldName,
		ZoneID: req.ZoneID, ShedID: req.ShedID, Quantity: req.Quantity,
		Date: req.Date, Grade: req.Grade,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}
	if err := h.intakes.Create(i); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	// Zone totals track intakes; a missing zone just skips the update.
	if _, err := h.zones.FindByID(req.ZoneID); err == nil {
		if err := h.zones.AddQuantity(req.ZoneID, req.Quantity); err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
	}
	return c.JSON(http.StatusOK, i)
}

func (h *StockCtrl) ListIntakes(c echo.Context) error {
	out, err := h.intakes.List()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	if out == nil {
		out = []entities.StockIntake{}
	}
	return c.JSON(http.StatusOK, out)
}

func (h *StockCtrl) ListZoneIntakes(c echo.Context) error {
	out, err := h.intakes.ListByZone(c.Param("zone_id"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	if out == nil {
		out = []entities.StockIntake{}
	}
	return c.JSON(http.StatusOK, out)
}

// UpdateIntake edits an intake and re-adjusts the zone total by the quantity
// delta (or moves it between zones).
func (h *StockCtrl) UpdateIntake(c echo.Context) error {
	old, err := h.intakes.FindByID(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Stock intake not found"})
	}
	var req intakeReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	updated := *old
	updated.FieldID = req.FieldID
	updated.FieldName = req.FieldName
	updated.ZoneID = req.ZoneID
	updated.ShedID = req.ShedID
	updated.Quantity = req.Quantity
	updated.Date = req.Date
	updated.Grade = req.Grade
	if err := h.intakes.Update(&updated); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	if old.ZoneID == updated.ZoneID {
		_ = h.zones.AddQuantity(old.ZoneID, updated.Quantity-old.Quantity)
	} else {
		_ = h.zones.AddQuantity(old.ZoneID, -old.Quantity)
		_ = h.zones.AddQuantity(updated.ZoneID, updated.Quantity)
	}
	return c.JSON(http.StatusOK, &updated)
}

func (h *StockCtrl) DeleteIntake(c echo.Context) error {
	old, err := h.intakes.FindByID(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Stock intake not found"})
	}
	if err := h.intakes.Delete(old.ID); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	_ = h.zones.AddQuantity(old.ZoneID, -old.Quantity)
	return c.JSON(http.StatusOK, map[string]string{"message": "Stock intake deleted"})
}

type movementReq struct {
	FromZoneID string  `json:"from_zone_id"`
	ToZoneID   string  `json:"to_zone_id"`
	FromShedID string  `json:"from_shed_id"`
	ToShedID   string  `json:"to_shed_id"`
	Quantity   float64 `json:"quantity"`
	Date       string  `json:"date"`
}

func (h *StockCtrl) CreateMovement(c echo.Context) error {
	var req movementReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	from, err := h.zones.FindByID(req.FromZoneID)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Source zone not found"})
	}
	if from.TotalQuantity < req.Quantity {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Insufficient stock in source zone"})
	}
	m := &entities.StockMovement{
		ID: uuid.NewString(), FromZoneID: req.FromZoneID, ToZoneID: req.ToZoneID,
		FromShedID: req.FromShedID, ToShedID: req.ToShedID, Quantity: req.Quantity,
		Date: req.Date, CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}
	if err := h.movements.Create(m); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	if err := h.zones.AddQuantity(req.FromZoneID, -req.Quantity); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	if _, err := h.zones.FindByID(req.ToZoneID); err == nil {
		if err := h.zones.AddQuantity(req.ToZoneID, req.Quantity); err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
	}
	return c.JSON(http.StatusOK, m)
}

func (h *StockCtrl) ListMovements(c echo.Context) error {
	out, err := h.movements.List()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	if out == nil {
		out = []entities.StockMovement{}
	}
	return c.JSON(http.StatusOK, out)
}
