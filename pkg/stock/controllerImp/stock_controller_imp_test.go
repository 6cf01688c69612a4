package controllerImp

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"cropstock/entities"
	stockRepoImp "cropstock/pkg/stock/repositoryImp"
	zoneRepoImp "cropstock/pkg/zone/repositoryImp"
)

func testCtrl(t *testing.T) (*StockCtrl, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&entities.Zone{}, &entities.StockIntake{}, &entities.StockMovement{}))
	return New(stockRepoImp.NewIntakeRepo(db), stockRepoImp.NewMovementRepo(db), zoneRepoImp.New(db)), db
}

func postJSON(body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func zoneTotal(t *testing.T, db *gorm.DB, id string) float64 {
	t.Helper()
	var z entities.Zone
	require.NoError(t, db.First(&z, "id = ?", id).Error)
	return z.TotalQuantity
}

func TestCreateIntakeUpdatesZone(t *testing.T) {
	ctrl, db := testCtrl(t)
	require.NoError(t, db.Create(&entities.Zone{ID: "z1", ShedID: "s1", Name: "A1"}).Error)

	c, rec := postJSON(`{"field_id":"f1","field_name":"Lodge Farm - Barn Field","zone_id":"z1","shed_id":"s1","quantity":12.5,"date":"2025-09-01","grade":"50/60"}`)
	require.NoError(t, ctrl.CreateIntake(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var got entities.StockIntake
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.NotEmpty(t, got.ID)
	require.NotEmpty(t, got.CreatedAt)
	require.Equal(t, 12.5, zoneTotal(t, db, "z1"))
}

func TestCreateIntakeUnknownZone(t *testing.T) {
	ctrl, db := testCtrl(t)

	// The intake is recorded even when the zone is unknown; only the zone
	// total update is skipped.
	c, rec := postJSON(`{"field_id":"f1","zone_id":"ghost","quantity":5}`)
	require.NoError(t, ctrl.CreateIntake(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var n int64
	require.NoError(t, db.Model(&entities.StockIntake{}).Count(&n).Error)
	require.EqualValues(t, 1, n)
}

func TestCreateMovementInsufficientStock(t *testing.T) {
	ctrl, db := testCtrl(t)
	require.NoError(t, db.Create(&entities.Zone{ID: "z1", Name: "A1", TotalQuantity: 3}).Error)
	require.NoError(t, db.Create(&entities.Zone{ID: "z2", Name: "B1"}).Error)

	c, rec := postJSON(`{"from_zone_id":"z1","to_zone_id":"z2","quantity":10}`)
	require.NoError(t, ctrl.CreateMovement(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "Insufficient stock")

	// Nothing moved, nothing recorded.
	require.Equal(t, 3.0, zoneTotal(t, db, "z1"))
	var n int64
	require.NoError(t, db.Model(&entities.StockMovement{}).Count(&n).Error)
	require.Zero(t, n)
}

func TestCreateMovementTransfersQuantity(t *testing.T) {
	ctrl, db := testCtrl(t)
	require.NoError(t, db.Create(&entities.Zone{ID: "z1", Name: "A1", TotalQuantity: 20}).Error)
	require.NoError(t, db.Create(&entities.Zone{ID: "z2", Name: "B1", TotalQuantity: 1}).Error)

	c, rec := postJSON(`{"from_zone_id":"z1","to_zone_id":"z2","from_shed_id":"s1","to_shed_id":"s2","quantity":7,"date":"2025-09-02"}`)
	require.NoError(t, ctrl.CreateMovement(c))
	require.Equal(t, http.StatusOK, rec.Code)

	require.Equal(t, 13.0, zoneTotal(t, db, "z1"))
	require.Equal(t, 8.0, zoneTotal(t, db, "z2"))
}

func TestUpdateIntakeAdjustsZones(t *testing.T) {
	ctrl, db := testCtrl(t)
	require.NoError(t, db.Create(&entities.Zone{ID: "z1", Name: "A1", TotalQuantity: 10}).Error)
	require.NoError(t, db.Create(&entities.Zone{ID: "z2", Name: "B1"}).Error)
	require.NoError(t, db.Create(&entities.StockIntake{ID: "i1", ZoneID: "z1", Quantity: 10}).Error)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPut, "/", strings.NewReader(`{"zone_id":"z2","quantity":4}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("i1")

	require.NoError(t, ctrl.UpdateIntake(c))
	require.Equal(t, http.StatusOK, rec.Code)

	// Moving the intake between zones re-homes its quantity.
	require.Equal(t, 0.0, zoneTotal(t, db, "z1"))
	require.Equal(t, 4.0, zoneTotal(t, db, "z2"))
}

func TestDeleteIntakeReversesZone(t *testing.T) {
	ctrl, db := testCtrl(t)
	require.NoError(t, db.Create(&entities.Zone{ID: "z1", Name: "A1", TotalQuantity: 6}).Error)
	require.NoError(t, db.Create(&entities.StockIntake{ID: "i1", ZoneID: "z1", Quantity: 6}).Error)

	e := echo.New()
	req := httptest.NewRequest(http.MethodDelete, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("i1")

	require.NoError(t, ctrl.DeleteIntake(c))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, 0.0, zoneTotal(t, db, "z1"))

	var n int64
	require.NoError(t, db.Model(&entities.StockIntake{}).Count(&n).Error)
	require.Zero(t, n)
}
