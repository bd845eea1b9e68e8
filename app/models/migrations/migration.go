package migrations

import (
	"github.com/fariowear/go-storefront/app/models"
	"gorm.io/gorm"
)

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Lead{},
	)
}
