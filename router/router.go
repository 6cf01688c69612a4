package router

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
)

func New(
	e *echo.Echo,
	corsOrigins []string,
	uploadCtrl interface{ Upload(echo.Context) error },
	fieldCtrl interface {
		Create(echo.Context) error
		List(echo.Context) error
		Delete(echo.Context) error
	},
	shedCtrl interface {
		Create(echo.Context) error
		List(echo.Context) error
		Get(echo.Context) error
		Delete(echo.Context) error
	},
	zoneCtrl interface {
		Create(echo.Context) error
		List(echo.Context) error
		UpdateQuantity(echo.Context) error
		Delete(echo.Context) error
	},
	fixtureCtrl interface {
		CreateDoor(echo.Context) error
		ListDoors(echo.Context) error
		DeleteDoor(echo.Context) error
		CreateFridge(echo.Context) error
		ListFridges(echo.Context) error
		DeleteFridge(echo.Context) error
	},
	stockCtrl interface {
		CreateIntake(echo.Context) error
		ListIntakes(echo.Context) error
		ListZoneIntakes(echo.Context) error
		UpdateIntake(echo.Context) error
		DeleteIntake(echo.Context) error
		CreateMovement(echo.Context) error
		ListMovements(echo.Context) error
	},
	authCtrl interface {
		Login(echo.Context) error
		ListUsers(echo.Context) error
		CreateUser(echo.Context) error
	},
	integrityCtrl interface {
		Report(echo.Context) error
		ClearAll(echo.Context) error
	},
	exportCtrl interface{ Export(echo.Context) error },
	healthCtrl interface{ Health(echo.Context) error },
) *echo.Echo {
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORSWithConfig(echoMiddleware.CORSConfig{
		AllowOrigins: corsOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
	}))

	e.GET("/health", healthCtrl.Health)

	api := e.Group("/api")
	api.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"message": "Stock Control API"})
	})

	api.POST("/upload-excel", uploadCtrl.Upload)
	api.GET("/export-excel", exportCtrl.Export)

	api.POST("/fields", fieldCtrl.Create)
	api.GET("/fields", fieldCtrl.List)
	api.DELETE("/fields/:id", fieldCtrl.Delete)

	api.POST("/sheds", shedCtrl.Create)
	api.GET("/sheds", shedCtrl.List)
	api.GET("/sheds/:id", shedCtrl.Get)
	api.DELETE("/sheds/:id", shedCtrl.Delete)

	api.POST("/zones", zoneCtrl.Create)
	api.GET("/zones", zoneCtrl.List)
	api.PUT("/zones/:id", zoneCtrl.UpdateQuantity)
	api.DELETE("/zones/:id", zoneCtrl.Delete)

	api.POST("/doors", fixtureCtrl.CreateDoor)
	api.GET("/doors", fixtureCtrl.ListDoors)
	api.DELETE("/doors/:id", fixtureCtrl.DeleteDoor)

	api.POST("/fridges", fixtureCtrl.CreateFridge)
	api.GET("/fridges", fixtureCtrl.ListFridges)
	api.DELETE("/fridges/:id", fixtureCtrl.DeleteFridge)

	api.POST("/stock-intakes", stockCtrl.CreateIntake)
	api.GET("/stock-intakes", stockCtrl.ListIntakes)
	api.GET("/stock-intakes/zone/:zone_id", stockCtrl.ListZoneIntakes)
	api.PUT("/stock-intakes/:id", stockCtrl.UpdateIntake)
	api.DELETE("/stock-intakes/:id", stockCtrl.DeleteIntake)

	api.POST("/stock-movements", stockCtrl.CreateMovement)
	api.GET("/stock-movements", stockCtrl.ListMovements)

	api.POST("/login", authCtrl.Login)
	api.GET("/users", authCtrl.ListUsers)
	api.POST("/users", authCtrl.CreateUser)

	api.GET("/database-integrity", integrityCtrl.Report)
	api.DELETE("/clear-all-data", integrityCtrl.ClearAll)

	return e
}
