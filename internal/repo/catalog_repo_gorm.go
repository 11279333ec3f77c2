package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"food-order-api/internal/domain"
)

type CatalogRepo struct{ db *gorm.DB }

func NewCatalogRepo(db *gorm.DB) *CatalogRepo { return &CatalogRepo{db: db} }

func (r *CatalogRepo) CreateRestaurant(ctx context.Context, rest *domain.Restaurant) error {
	return r.db.WithContext(ctx).Create(rest).Error
}

func (r *CatalogRepo) FindRestaurant(ctx context.Context, id string) (*domain.Restaurant, error) {
	var rest domain.Restaurant
	err := r.db.WithContext(ctx).First(&rest, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rest, nil
}

func (r *CatalogRepo) ListRestaurants(ctx context.Context) ([]domain.Restaurant, error) {
	var rests []domain.Restaurant
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&rests).Error
	return rests, err
}

func (r *CatalogRepo) DeleteRestaurant(ctx context.Context, id string) (bool, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Restaurant{})
	return res.RowsAffected > 0, res.Error
}

func (r *CatalogRepo) CreateMenuItem(ctx context.Context, m *domain.MenuItem) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *CatalogRepo) FindMenuItem(ctx context.Context, id string) (*domain.MenuItem, error) {
	var m domain.MenuItem
	err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *CatalogRepo) ListMenuByRestaurant(ctx context.Context, restaurantID string) ([]domain.MenuItem, error) {
	var items []domain.MenuItem
	err := r.db.WithContext(ctx).Where("restaurant_id = ?", restaurantID).
		Order("created_at DESC").Find(&items).Error
	return items, err
}

func (r *CatalogRepo) DeleteMenuItem(ctx context.Context, id string) (bool, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.MenuItem{})
	return res.RowsAffected > 0, res.Error
}
