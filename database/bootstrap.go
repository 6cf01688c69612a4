// database/bootstrap.go
package database

import (
	"log"

	sqlite "github.com/glebarez/sqlite" // CGO-free driver
	"gorm.io/gorm"

	"cropstock/entities"
)

func OpenSQLite(path string) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		log.Fatalf("open sqlite: %v", err)
	}

	if err := db.AutoMigrate(
		&entities.Field{},
		&entities.Shed{},
		&entities.Zone{},
		&entities.Door{},
		&entities.Fridge{},
		&entities.StockIntake{},
		&entities.StockMovement{},
		&entities.User{},
	); err != nil {
		log.Fatalf("automigrate: %v", err)
	}

	return db
}
