package repository

import (
	"gorm.io/gorm"

	"plupool-server/database"
	"plupool-server/models"
)

// HomeRepository serves the shared home-screen content blocks.
type HomeRepository struct {
	db *gorm.DB
}

func NewHomeRepository() *HomeRepository {
	return &HomeRepository{db: database.DB}
}

func (r *HomeRepository) ListActiveOffers(limit int) ([]models.ServiceOffer, error) {
	var offers []models.ServiceOffer
	err := r.db.
		Where("status = ?", models.OfferStatusActive).
		Order("is_featured DESC, sort_order ASC, created_at DESC").
		Limit(limit).
		Find(&offers).Error
	return offers, err
}

func (r *HomeRepository) ListFeaturedProducts(limit int) ([]models.Product, error) {
	var products []models.Product
	err := r.db.
		Where("status = ?", models.ProductStatusActive).
		Order("is_featured DESC, created_at DESC").
		Limit(limit).
		Find(&products).Error
	return products, err
}

func (r *HomeRepository) ListApprovedComments(limit int) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.
		Where("is_approved = ?", true).
		Order("created_at DESC").
		Limit(limit).
		Find(&comments).Error
	return comments, err
}

func (r *HomeRepository) AverageCommentRating() (float64, error) {
	var avg *float64
	err := r.db.Model(&models.Comment{}).
		Where("is_approved = ?", true).
		Select("AVG(rating)").
		Scan(&avg).Error
	if err != nil || avg == nil {
		return 0, err
	}
	return *avg, nil
}
