package repository

import (
	"errors"

	"gorm.io/gorm"

	"plupool-server/database"
	"plupool-server/models"
)

// ReferenceRepository resolves the catalog records bookings point at.
type ReferenceRepository struct {
	db *gorm.DB
}

func NewReferenceRepository() *ReferenceRepository {
	return &ReferenceRepository{db: database.DB}
}

func (r *ReferenceRepository) FindPoolType(id uint) (*models.PoolType, error) {
	var poolType models.PoolType
	err := r.db.First(&poolType, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &poolType, nil
}

func (r *ReferenceRepository) FindService(id uint) (*models.Service, error) {
	var service models.Service
	err := r.db.First(&service, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &service, nil
}

func (r *ReferenceRepository) FindPackage(id uint) (*models.MaintenancePackage, error) {
	var pkg models.MaintenancePackage
	err := r.db.First(&pkg, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &pkg, nil
}
