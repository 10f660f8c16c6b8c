package db

import (
	"log"
	"time"

	"github.com/MaisonCoiffure01/salon-scheduler/internal/config"
	"github.com/MaisonCoiffure01/salon-scheduler/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.Customer{},
		&models.Service{},
		&models.ServiceBlock{},
		&models.Appointment{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	seedServices(db)

	return db
}

// seedServices pose un catalogue de départ quand la table est vide.
func seedServices(db *gorm.DB) {
	var count int64
	db.Model(&models.Service{}).Count(&count)
	if count > 0 {
		return
	}

	services := []models.Service{
		{
			Code:  "coupe",
			Name:  "Coupe",
			Color: "#e67e22",
			Blocks: []models.ServiceBlock{
				{Position: 0, Kind: "service", DurationMin: 30, Label: "Coupe", ShortCode: "C"},
			},
		},
		{
			Code:  "couleur",
			Name:  "Couleur",
			Color: "#8e44ad",
			Blocks: []models.ServiceBlock{
				{Position: 0, Kind: "service", DurationMin: 30, Label: "Application", ShortCode: "CL"},
				{Position: 1, Kind: "pause", DurationMin: 30, Label: "Pose"},
				{Position: 2, Kind: "service", DurationMin: 30, Label: "Rinçage + coupe", ShortCode: "CL2"},
			},
		},
		{
			Code:  "brushing",
			Name:  "Brushing",
			Color: "#16a085",
			Blocks: []models.ServiceBlock{
				{Position: 0, Kind: "service", DurationMin: 45, Label: "Brushing", ShortCode: "B"},
			},
		},
	}

	if err := db.Create(&services).Error; err != nil {
		log.Printf("failed to seed services: %v", err)
	}
}
