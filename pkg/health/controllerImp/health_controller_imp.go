package controllerImp

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"cropstock/entities"
)

var appStart = time.Now()

type HealthCtrl struct {
	db *gorm.DB
}

func NewHealthCtrl(db *gorm.DB) *HealthCtrl { return &HealthCtrl{db: db} }

// Health pings the database and, when it answers, reports the size of the
// main collections so an operator can eyeball an empty or half-imported
// store at a glance.
func (h *HealthCtrl) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 800*time.Millisecond)
	defer cancel()

	dbErr := ""
	if h.db == nil {
		dbErr = "gorm db is nil"
	} else if sqlDB, err := h.db.DB(); err != nil {
		dbErr = "db.DB(): " + err.Error()
	} else if err := sqlDB.PingContext(ctx); err != nil {
		dbErr = "ping: " + err.Error()
	}

	resp := map[string]any{
		"service":    "stock-control",
		"ok":         dbErr == "",
		"uptime_sec": int(time.Since(appStart).Seconds()),
		"time":       time.Now().Format(time.RFC3339),
	}
	status := http.StatusOK
	if dbErr != "" {
		status = http.StatusServiceUnavailable
		resp["error"] = dbErr
		return c.JSON(status, resp)
	}

	counts := map[string]int64{}
	for name, model := range map[string]any{
		"fields": &entities.Field{},
		"sheds":  &entities.Shed{},
		"zones":  &entities.Zone{},
	} {
		var n int64
		if err := h.db.WithContext(ctx).Model(model).Count(&n).Error; err == nil {
			counts[name] = n
		}
	}
	resp["collections"] = counts
	return c.JSON(status, resp)
}
