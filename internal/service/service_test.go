package service

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	glogger "gorm.io/gorm/logger"

	"food-order-api/internal/domain"
	"food-order-api/internal/repo"
	"food-order-api/pkg/utils"
)

// newTestDB 内存 sqlite；单连接，避免每个连接各自一份 :memory:
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:                                   glogger.Default.LogMode(glogger.Silent),
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&domain.User{},
		&domain.Restaurant{},
		&domain.MenuItem{},
		&domain.Order{},
		&domain.OrderItem{},
	))
	return db
}

type fixture struct {
	db      *gorm.DB
	users   *UserService
	catalog *CatalogService
	orders  *OrderService
}

func newFixture(t *testing.T) *fixture {
	db := newTestDB(t)
	users := NewUserService(repo.NewUserRepo(db))
	catalog := NewCatalogService(repo.NewCatalogRepo(db), nil)
	orders := NewOrderService(repo.NewOrderRepo(db), catalog)
	return &fixture{db: db, users: users, catalog: catalog, orders: orders}
}

func (f *fixture) seedRestaurant(t *testing.T) *domain.Restaurant {
	t.Helper()
	r, err := f.catalog.CreateRestaurant(context.Background(), CreateRestaurantInput{
		Name:     "Pizza Palace",
		Location: "Main St 1",
	})
	require.NoError(t, err)
	return r
}

func (f *fixture) seedMenuItem(t *testing.T, restaurantID, name string, price float64) *domain.MenuItem {
	t.Helper()
	m, err := f.catalog.CreateMenuItem(context.Background(), CreateMenuItemInput{
		Name:       name,
		Price:      &price,
		Restaurant: restaurantID,
	})
	require.NoError(t, err)
	return m
}

func (f *fixture) seedUser(t *testing.T, email string) *domain.User {
	t.Helper()
	u := &domain.User{
		ID:           utils.NewID(),
		Name:         "Test User",
		Email:        email,
		PasswordHash: utils.HashPassword("secret1"),
		Role:         domain.RoleUser,
	}
	require.NoError(t, f.db.Create(u).Error)
	return u
}
