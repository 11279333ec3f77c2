package service

import (
	"context"
	"strings"
	"time"

	"food-order-api/internal/core/apperr"
	"food-order-api/internal/core/cache"
	"food-order-api/internal/domain"
	"food-order-api/pkg/utils"
)

const (
	restaurantsCacheKey = "catalog:restaurants"
	restaurantsCacheTTL = 30 * time.Second
)

type CreateRestaurantInput struct {
	Name         string  `json:"name" binding:"required"`
	Description  string  `json:"description"`
	Location     string  `json:"location"`
	Image        string  `json:"image"`
	Rating       float64 `json:"rating"`
	DeliveryTime int     `json:"deliveryTime"`
}

type CreateMenuItemInput struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	Price       *float64 `json:"price" binding:"required"`
	Image       string   `json:"image"`
	Restaurant  string   `json:"restaurant" binding:"required"`
}

// CatalogService 目录读写。公共餐厅列表走 redis 缓存（30s），
// 下单用的 Resolve 永远直读库——已成单只允许看到当时的权威价格
type CatalogService struct {
	catalog domain.CatalogRepository
	cache   *cache.Cache // 可为 nil（测试/本地不起 redis）
}

func NewCatalogService(catalog domain.CatalogRepository, c *cache.Cache) *CatalogService {
	return &CatalogService{catalog: catalog, cache: c}
}

func (s *CatalogService) CreateRestaurant(ctx context.Context, in CreateRestaurantInput) (*domain.Restaurant, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, apperr.Invalid("restaurant name is required")
	}
	if in.Rating < 0 || in.Rating > 5 {
		return nil, apperr.Invalid("rating must be between 0 and 5")
	}
	if in.DeliveryTime < 0 {
		return nil, apperr.Invalid("delivery time cannot be negative")
	}
	r := &domain.Restaurant{
		ID:           utils.NewID(),
		Name:         name,
		Description:  in.Description,
		Location:     in.Location,
		Image:        in.Image,
		Rating:       in.Rating,
		DeliveryTime: in.DeliveryTime,
	}
	if r.Image == "" {
		r.Image = "default-restaurant.jpg"
	}
	if r.DeliveryTime == 0 {
		r.DeliveryTime = 30
	}
	if err := s.catalog.CreateRestaurant(ctx, r); err != nil {
		return nil, apperr.Internal("create restaurant failed", err)
	}
	s.invalidateListing(ctx)
	return r, nil
}

func (s *CatalogService) ListRestaurants(ctx context.Context) ([]domain.Restaurant, error) {
	load := func(ctx context.Context) ([]domain.Restaurant, error) {
		return s.catalog.ListRestaurants(ctx)
	}
	var (
		rests []domain.Restaurant
		err   error
	)
	if s.cache != nil {
		rests, err = cache.GetOrLoadJSON(s.cache, ctx, restaurantsCacheKey, restaurantsCacheTTL, load)
	} else {
		rests, err = load(ctx)
	}
	if err != nil {
		return nil, apperr.Internal("list restaurants failed", err)
	}
	return rests, nil
}

func (s *CatalogService) GetRestaurant(ctx context.Context, id string) (*domain.Restaurant, error) {
	r, err := s.catalog.FindRestaurant(ctx, id)
	if err != nil {
		return nil, apperr.Internal("lookup restaurant failed", err)
	}
	if r == nil {
		return nil, apperr.NotFound("restaurant not found")
	}
	return r, nil
}

func (s *CatalogService) DeleteRestaurant(ctx context.Context, id string) error {
	ok, err := s.catalog.DeleteRestaurant(ctx, id)
	if err != nil {
		return apperr.Internal("delete restaurant failed", err)
	}
	if !ok {
		return apperr.NotFound("restaurant not found")
	}
	s.invalidateListing(ctx)
	return nil
}

func (s *CatalogService) CreateMenuItem(ctx context.Context, in CreateMenuItemInput) (*domain.MenuItem, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" || in.Price == nil || in.Restaurant == "" {
		return nil, apperr.Invalid("name, price, and restaurant are required")
	}
	if *in.Price < 0 {
		return nil, apperr.Invalid("price cannot be negative")
	}
	// 创建时刻餐厅必须存在
	rest, err := s.catalog.FindRestaurant(ctx, in.Restaurant)
	if err != nil {
		return nil, apperr.Internal("lookup restaurant failed", err)
	}
	if rest == nil {
		return nil, apperr.NotFound("restaurant not found")
	}

	m := &domain.MenuItem{
		ID:           utils.NewID(),
		RestaurantID: rest.ID,
		Name:         name,
		Description:  in.Description,
		Price:        *in.Price,
		Image:        in.Image,
	}
	if m.Image == "" {
		m.Image = "default-food.jpg"
	}
	if err := s.catalog.CreateMenuItem(ctx, m); err != nil {
		return nil, apperr.Internal("create menu item failed", err)
	}
	return m, nil
}

func (s *CatalogService) ListMenu(ctx context.Context, restaurantID string) ([]domain.MenuItem, error) {
	items, err := s.catalog.ListMenuByRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, apperr.Internal("list menu failed", err)
	}
	return items, nil
}

func (s *CatalogService) DeleteMenuItem(ctx context.Context, id string) error {
	ok, err := s.catalog.DeleteMenuItem(ctx, id)
	if err != nil {
		return apperr.Internal("delete menu item failed", err)
	}
	if !ok {
		return apperr.NotFound("menu item not found")
	}
	return nil
}

// Resolve 下单时刻的名称/价格权威读取。找不到返回 (nil, nil)，
// 由装配流程决定整单失败
func (s *CatalogService) Resolve(ctx context.Context, menuItemID string) (*domain.ItemSnapshot, error) {
	m, err := s.catalog.FindMenuItem(ctx, menuItemID)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, nil
	}
	return &domain.ItemSnapshot{ID: m.ID, Name: m.Name, Price: m.Price}, nil
}

func (s *CatalogService) invalidateListing(ctx context.Context) {
	if s.cache != nil {
		s.cache.Invalidate(ctx, restaurantsCacheKey)
	}
}
