package repositories

import (
	"context"

	"github.com/fariowear/go-storefront/app/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type LeadRepositoryImpl interface {
	Create(ctx context.Context, lead *models.Lead) error
	GetAll(ctx context.Context) ([]models.Lead, error)
	Clear(ctx context.Context) error
}

type leadRepository struct {
	db *gorm.DB
}

// OpenLeadStore opens the local SQLite file backing the fallback lead
// store, creating it on first use.
func OpenLeadStore(path string) (*gorm.DB, error) {
	return gorm.Open(sqlite.Open(path), &gorm.Config{})
}

func NewLeadRepository(db *gorm.DB) LeadRepositoryImpl {
	return &leadRepository{db}
}

func (l *leadRepository) Create(ctx context.Context, lead *models.Lead) error {
	return l.db.WithContext(ctx).Create(lead).Error
}

func (l *leadRepository) GetAll(ctx context.Context) ([]models.Lead, error) {
	var leads []models.Lead
	if err := l.db.WithContext(ctx).Order("created_at DESC").Find(&leads).Error; err != nil {
		return nil, err
	}
	return leads, nil
}

func (l *leadRepository) Clear(ctx context.Context) error {
	return l.db.WithContext(ctx).Where("1 = 1").Delete(&models.Lead{}).Error
}
