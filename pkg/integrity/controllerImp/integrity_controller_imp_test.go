package controllerImp

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"cropstock/entities"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(
		&entities.Field{}, &entities.Shed{}, &entities.Zone{},
		&entities.Door{}, &entities.Fridge{}, &entities.User{},
		&entities.StockIntake{}, &entities.StockMovement{},
	))
	return db
}

func get(ctrl func(echo.Context) error) (*httptest.ResponseRecorder, error) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	return rec, ctrl(e.NewContext(req, rec))
}

type report struct {
	Status string         `json:"status"`
	Stats  map[string]int `json:"stats"`
	Issues []issue        `json:"issues"`
}

func TestReportHealthy(t *testing.T) {
	db := testDB(t)
	require.NoError(t, db.Create(&entities.Shed{ID: "s1", Name: "Shed 1"}).Error)
	require.NoError(t, db.Create(&entities.Field{ID: "f1", Name: "Lodge Farm - Barn Field"}).Error)
	require.NoError(t, db.Create(&entities.Zone{ID: "z1", ShedID: "s1", Name: "A1", TotalQuantity: 5}).Error)
	require.NoError(t, db.Create(&entities.StockIntake{ID: "i1", FieldID: "f1", ZoneID: "z1", Quantity: 5}).Error)

	rec, err := get(New(db).Report)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, rec.Code)

	var got report
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "healthy", got.Status)
	require.Empty(t, got.Issues)
	require.Equal(t, 1, got.Stats["zones"])
	require.Equal(t, 1, got.Stats["stock_intakes"])
}

func TestReportFindsIssues(t *testing.T) {
	db := testDB(t)
	// Orphaned zone plus a drifted total.
	require.NoError(t, db.Create(&entities.Zone{ID: "z1", ShedID: "ghost", Name: "A1", TotalQuantity: 9}).Error)

	rec, err := get(New(db).Report)
	require.NoError(t, err)

	var got report
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "issues_found", got.Status)

	types := map[string]int{}
	for _, is := range got.Issues {
		types[is.Type] = is.Count
	}
	require.Equal(t, 1, types["orphaned_zones"])
	require.Equal(t, 1, types["quantity_mismatches"])
}

func TestReportMovementMath(t *testing.T) {
	db := testDB(t)
	require.NoError(t, db.Create(&entities.Shed{ID: "s1", Name: "Shed 1"}).Error)
	require.NoError(t, db.Create(&entities.Field{ID: "f1", Name: "F"}).Error)
	require.NoError(t, db.Create(&entities.Zone{ID: "z1", ShedID: "s1", Name: "A1", TotalQuantity: 3}).Error)
	require.NoError(t, db.Create(&entities.Zone{ID: "z2", ShedID: "s1", Name: "B1", TotalQuantity: 7}).Error)
	require.NoError(t, db.Create(&entities.StockIntake{ID: "i1", FieldID: "f1", ZoneID: "z1", Quantity: 10}).Error)
	require.NoError(t, db.Create(&entities.StockMovement{ID: "m1", FromZoneID: "z1", ToZoneID: "z2", Quantity: 7}).Error)

	rec, err := get(New(db).Report)
	require.NoError(t, err)

	var got report
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "healthy", got.Status)
}

func TestClearAllKeepsUsers(t *testing.T) {
	db := testDB(t)
	require.NoError(t, db.Create(&entities.Shed{ID: "s1", Name: "Shed 1"}).Error)
	require.NoError(t, db.Create(&entities.User{ID: "u1", EmployeeNumber: "42", Name: "Sam"}).Error)

	e := echo.New()
	req := httptest.NewRequest(http.MethodDelete, "/", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, New(db).ClearAll(e.NewContext(req, rec)))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "collections_cleared")

	var sheds, users int64
	require.NoError(t, db.Model(&entities.Shed{}).Count(&sheds).Error)
	require.NoError(t, db.Model(&entities.User{}).Count(&users).Error)
	require.Zero(t, sheds)
	require.EqualValues(t, 1, users)
}
