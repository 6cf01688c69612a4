package main

import (
	"log"

	"github.com/labstack/echo/v4"

	"cropstock/config"
	"cropstock/database"
	"cropstock/router"

	authCtrlImp "cropstock/pkg/auth/controllerImp"
	exportCtrlImp "cropstock/pkg/export/controllerImp"
	fieldCtrlImp "cropstock/pkg/field/controllerImp"
	fieldRepoImp "cropstock/pkg/field/repositoryImp"
	healthCtrlImp "cropstock/pkg/health/controllerImp"
	"cropstock/pkg/importer"
	uploadCtrlImp "cropstock/pkg/importer/controllerImp"
	importRepoImp "cropstock/pkg/importer/repositoryImp"
	integrityCtrlImp "cropstock/pkg/integrity/controllerImp"
	shedCtrlImp "cropstock/pkg/shed/controllerImp"
	shedRepoImp "cropstock/pkg/shed/repositoryImp"
	stockCtrlImp "cropstock/pkg/stock/controllerImp"
	stockRepoImp "cropstock/pkg/stock/repositoryImp"
	userRepoImp "cropstock/pkg/user/repositoryImp"
	zoneCtrlImp "cropstock/pkg/zone/controllerImp"
	zoneRepoImp "cropstock/pkg/zone/repositoryImp"
)

func main() {
	// 1) Config
	cfg := config.Load()

	// 2) DB (sqlite) + automigrate
	db := database.OpenSQLite(cfg.DBPath)

	// 3) Repos
	fRepo := fieldRepoImp.New(db)
	sRepo := shedRepoImp.New(db)
	zRepo := zoneRepoImp.New(db)
	dRepo := shedRepoImp.NewDoorRepo(db)
	frRepo := shedRepoImp.NewFridgeRepo(db)
	iRepo := stockRepoImp.NewIntakeRepo(db)
	mRepo := stockRepoImp.NewMovementRepo(db)
	uRepo := userRepoImp.New(db)

	// 4) Importer
	imp := importer.New(importRepoImp.New(db))

	// 5) Controllers
	uploadCtrl := uploadCtrlImp.New(imp)
	fCtrl := fieldCtrlImp.New(fRepo)
	sCtrl := shedCtrlImp.New(sRepo, zRepo, dRepo, frRepo)
	zCtrl := zoneCtrlImp.New(zRepo)
	fxCtrl := shedCtrlImp.NewFixtureCtrl(dRepo, frRepo)
	stCtrl := stockCtrlImp.New(iRepo, mRepo, zRepo)
	authCtrl := authCtrlImp.New(uRepo, cfg.AdminEmployee)
	intCtrl := integrityCtrlImp.New(db)
	expCtrl := exportCtrlImp.New(db)
	hCtrl := healthCtrlImp.NewHealthCtrl(db)

	// 6) Router
	e := echo.New()
	e.HideBanner = true
	r := router.New(
		e,
		cfg.CORSOrigins,
		uploadCtrl,
		fCtrl,
		sCtrl,
		zCtrl,
		fxCtrl,
		stCtrl,
		authCtrl,
		intCtrl,
		expCtrl,
		hCtrl,
	)

	// 7) Start
	log.Printf("listening on :%s", cfg.Port)
	if err := r.Start(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
