package domain

import (
	"context"
	"time"
)

type Restaurant struct {
	ID           string    `gorm:"primaryKey;size:36" json:"id"`
	Name         string    `gorm:"size:128;not null" json:"name"`
	Description  string    `gorm:"size:512" json:"description"`
	Location     string    `gorm:"size:255" json:"location"`
	Image        string    `gorm:"size:255;default:default-restaurant.jpg" json:"image"`
	Rating       float64   `gorm:"default:0" json:"rating"` // 0..5
	DeliveryTime int       `gorm:"default:30" json:"deliveryTime"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (Restaurant) TableName() string { return "restaurants" }

type MenuItem struct {
	ID           string    `gorm:"primaryKey;size:36" json:"id"`
	RestaurantID string    `gorm:"index;size:36;not null" json:"restaurantId"`
	Name         string    `gorm:"size:128;not null" json:"name"`
	Description  string    `gorm:"size:512" json:"description"`
	Price        float64   `gorm:"not null" json:"price"` // 不变量：>= 0
	Image        string    `gorm:"size:255;default:default-food.jpg" json:"image"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (MenuItem) TableName() string { return "menu_items" }

// ItemSnapshot 下单时刻的权威名称/价格快照。目录随时可能变，调用方必须立即取值，
// 不持有活引用
type ItemSnapshot struct {
	ID    string
	Name  string
	Price float64
}

type CatalogRepository interface {
	CreateRestaurant(ctx context.Context, r *Restaurant) error
	FindRestaurant(ctx context.Context, id string) (*Restaurant, error)
	ListRestaurants(ctx context.Context) ([]Restaurant, error)
	DeleteRestaurant(ctx context.Context, id string) (bool, error)

	CreateMenuItem(ctx context.Context, m *MenuItem) error
	FindMenuItem(ctx context.Context, id string) (*MenuItem, error)
	ListMenuByRestaurant(ctx context.Context, restaurantID string) ([]MenuItem, error)
	DeleteMenuItem(ctx context.Context, id string) (bool, error)
}
