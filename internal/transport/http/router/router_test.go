package router

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
	glogger "gorm.io/gorm/logger"

	"food-order-api/internal/core/auth"
	"food-order-api/internal/domain"
	"food-order-api/internal/repo"
	"food-order-api/internal/service"
	"food-order-api/internal/transport/http/handler"
)

type rig struct {
	db    *gorm.DB
	api   *gin.Engine
	admin *gin.Engine
	users *service.UserService
}

func newRig(t *testing.T) *rig {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:                                   glogger.Default.LogMode(glogger.Silent),
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(
		&domain.User{}, &domain.Restaurant{}, &domain.MenuItem{},
		&domain.Order{}, &domain.OrderItem{},
	))

	userRepo := repo.NewUserRepo(db)
	users := service.NewUserService(userRepo)
	catalog := service.NewCatalogService(repo.NewCatalogRepo(db), nil)
	orders := service.NewOrderService(repo.NewOrderRepo(db), catalog)
	jwter := &auth.JWTer{Secret: []byte("test-secret"), Issuer: "t", TTL: time.Hour}

	l := zap.NewNop()
	api := NewAPIEngine(l, APIDeps{
		Auth:    handler.NewAuthHandler(users, jwter),
		User:    handler.NewUserHandler(users),
		Catalog: handler.NewCatalogHandler(catalog),
		Order:   handler.NewOrderHandler(orders),
		Users:   userRepo,
		JWTer:   jwter,
	})
	admin := NewAdminEngine(l, AdminDeps{
		Admin: handler.NewAdminHandler(users, catalog),
		Users: userRepo,
		JWTer: jwter,
	})
	return &rig{db: db, api: api, admin: admin, users: users}
}

func (g *rig) call(t *testing.T, e *gin.Engine, method, path, token string, body any) (int, map[string]any) {
	t.Helper()
	var rd *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(b)
	} else {
		rd = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, rd)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.ServeHTTP(w, req)

	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return w.Code, out
}

func (g *rig) register(t *testing.T, name, email string) string {
	t.Helper()
	code, body := g.call(t, g.api, http.MethodPost, "/api/v1/auth/register", "", gin.H{
		"name": name, "email": email, "password": "secret1",
	})
	require.Equal(t, http.StatusCreated, code)
	tok, _ := body["token"].(string)
	require.NotEmpty(t, tok)
	return tok
}

// 注册 → 下单 → 查流水，走完整 HTTP 栈
func TestOrderLifecycle(t *testing.T) {
	g := newRig(t)

	// 先用种子管理员建目录
	_, err := g.users.EnsureAdmin(context.Background(), "Admin", "admin@foodapp.com", "admin123")
	require.NoError(t, err)
	code, body := g.call(t, g.api, http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"email": "admin@foodapp.com", "password": "admin123",
	})
	require.Equal(t, http.StatusOK, code)
	adminTok := body["token"].(string)

	code, body = g.call(t, g.admin, http.MethodPost, "/admin/v1/restaurants", adminTok, gin.H{
		"name": "Pizza Palace", "location": "Main St 1",
	})
	require.Equal(t, http.StatusCreated, code)
	rest := body["restaurant"].(map[string]any)
	restID := rest["id"].(string)

	code, body = g.call(t, g.admin, http.MethodPost, "/admin/v1/menu", adminTok, gin.H{
		"name": "Margherita", "price": 5.50, "restaurant": restID,
	})
	require.Equal(t, http.StatusCreated, code)
	item := body["menuItem"].(map[string]any)
	itemID := item["id"].(string)

	tok := g.register(t, "Alice", "alice@example.com")

	// 新账号流水为空
	code, body = g.call(t, g.api, http.MethodGet, "/api/v1/orders/my-orders", tok, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, true, body["success"])
	assert.Empty(t, body["orders"])

	// 下单：价格以目录为准，客户端报价不采信
	code, body = g.call(t, g.api, http.MethodPost, "/api/v1/orders", tok, gin.H{
		"items":           []gin.H{{"menuItem": itemID, "quantity": 2, "price": 0.01}},
		"restaurant":      restID,
		"deliveryAddress": "Main St 1",
	})
	require.Equal(t, http.StatusCreated, code)
	order := body["order"].(map[string]any)
	assert.InDelta(t, 11.00, order["totalPrice"].(float64), 1e-9)
	assert.Equal(t, string(domain.StatusPending), order["status"])

	code, body = g.call(t, g.api, http.MethodGet, "/api/v1/orders/my-orders", tok, nil)
	require.Equal(t, http.StatusOK, code)
	assert.EqualValues(t, 1, body["count"])
}

func TestPlaceOrderUnknownItemLeavesNoTrace(t *testing.T) {
	g := newRig(t)
	tok := g.register(t, "Alice", "alice@example.com")

	code, body := g.call(t, g.api, http.MethodPost, "/api/v1/orders", tok, gin.H{
		"items": []gin.H{{"menuItem": "no-such-item", "quantity": 1}},
	})
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, false, body["success"])
	assert.Contains(t, body["error"], "no-such-item")

	var count int64
	require.NoError(t, g.db.Model(&domain.Order{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestOrdersRequireToken(t *testing.T) {
	g := newRig(t)

	code, body := g.call(t, g.api, http.MethodGet, "/api/v1/orders/my-orders", "", nil)
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, false, body["success"])
}

func TestAdminRoutesRejectPlainUser(t *testing.T) {
	g := newRig(t)
	tok := g.register(t, "Alice", "alice@example.com")

	code, body := g.call(t, g.admin, http.MethodPost, "/admin/v1/restaurants", tok, gin.H{
		"name": "Sneaky",
	})
	assert.Equal(t, http.StatusForbidden, code)
	assert.Equal(t, false, body["success"])

	var count int64
	require.NoError(t, g.db.Model(&domain.Restaurant{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestRegisterDuplicateEmailOverHTTP(t *testing.T) {
	g := newRig(t)
	g.register(t, "Alice", "alice@example.com")

	code, body := g.call(t, g.api, http.MethodPost, "/api/v1/auth/register", "", gin.H{
		"name": "Alice Again", "email": "ALICE@example.com", "password": "secret2",
	})
	assert.Equal(t, http.StatusConflict, code)
	assert.Equal(t, false, body["success"])
}

func TestPublicCatalogEndpoints(t *testing.T) {
	g := newRig(t)
	_, err := g.users.EnsureAdmin(context.Background(), "Admin", "admin@foodapp.com", "admin123")
	require.NoError(t, err)
	_, body := g.call(t, g.api, http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"email": "admin@foodapp.com", "password": "admin123",
	})
	adminTok := body["token"].(string)

	code, body := g.call(t, g.admin, http.MethodPost, "/admin/v1/restaurants", adminTok, gin.H{
		"name": "Pizza Palace",
	})
	require.Equal(t, http.StatusCreated, code)
	restID := body["restaurant"].(map[string]any)["id"].(string)

	// 目录读取不需要登录
	code, body = g.call(t, g.api, http.MethodGet, "/api/v1/restaurants", "", nil)
	require.Equal(t, http.StatusOK, code)
	assert.EqualValues(t, 1, body["count"])

	code, _ = g.call(t, g.api, http.MethodGet, "/api/v1/restaurants/"+restID, "", nil)
	assert.Equal(t, http.StatusOK, code)

	code, body = g.call(t, g.api, http.MethodGet, "/api/v1/menu/restaurant/"+restID, "", nil)
	require.Equal(t, http.StatusOK, code)
	assert.EqualValues(t, 0, body["count"])
}
