package database

import (
	"gorm.io/gorm"

	"github.com/rafaeldias/pos-backoffice/models"
	"github.com/rafaeldias/pos-backoffice/utils"
)

// SeedProducts fills an empty products table with a small catalog for local
// development. The catalog is owned by another service in production, so this
// never touches a non-empty table.
func SeedProducts(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	products := []models.Product{
		{Name: "Margherita Pizza", Price: 39.90},
		{Name: "Spaghetti Carbonara", Price: 34.50},
		{Name: "Caesar Salad", Price: 22.00},
		{Name: "Sparkling Water", Price: 6.50},
		{Name: "Tiramisu", Price: 18.00},
	}
	if err := db.Create(&products).Error; err != nil {
		return err
	}

	utils.InfoLogger.Printf("Seeded %d products into empty catalog", len(products))
	return nil
}
