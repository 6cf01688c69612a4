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

func TestHealthReportsCollections(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&entities.Field{}, &entities.Shed{}, &entities.Zone{}))
	require.NoError(t, db.Create(&entities.Shed{ID: "s1", Name: "Shed 1"}).Error)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, NewHealthCtrl(db).Health(e.NewContext(req, rec)))
	require.Equal(t, http.StatusOK, rec.Code)

	var got struct {
		OK          bool             `json:"ok"`
		Collections map[string]int64 `json:"collections"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.True(t, got.OK)
	require.EqualValues(t, 1, got.Collections["sheds"])
	require.EqualValues(t, 0, got.Collections["zones"])
}

func TestHealthNilDB(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, NewHealthCtrl(nil).Health(e.NewContext(req, rec)))
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
