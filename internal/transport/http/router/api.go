package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"food-order-api/internal/core/auth"
	"food-order-api/internal/domain"
	"food-order-api/internal/transport/http/handler"
	mdw "food-order-api/internal/transport/http/middleware"
)

type APIDeps struct {
	Auth    *handler.AuthHandler
	User    *handler.UserHandler
	Catalog *handler.CatalogHandler
	Order   *handler.OrderHandler
	Users   domain.UserRepository
	JWTer   *auth.JWTer
}

// NewAPIEngine 用户端：注册/登录、目录公共读、下单与订单流水
func NewAPIEngine(l *zap.Logger, d APIDeps) *gin.Engine {
	r := gin.New()

	r.Use(
		mdw.RequestID(),
		mdw.RateLimit(200, 400),
		mdw.ConcurrencyLimit(300),
		mdw.MaxBodyBytes(16<<20),
		mdw.Timeout(10*time.Second),
		ginzap.RecoveryWithZap(l, true),
		mdw.Metrics(),
		mdw.AccessLog(l),
		cors.Default(),
	)

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api/v1")

	// 公共
	api.POST("/auth/register", d.Auth.Register)
	api.POST("/auth/login", d.Auth.Login)
	api.GET("/restaurants", d.Catalog.ListRestaurants)
	api.GET("/restaurants/:id", d.Catalog.GetRestaurant)
	api.GET("/menu/restaurant/:restaurantId", d.Catalog.ListMenu)

	// 鉴权
	authed := api.Group("")
	authed.Use(mdw.Auth(d.JWTer, d.Users))
	authed.GET("/users/profile", d.User.GetProfile)
	authed.PUT("/users/profile", d.User.UpdateProfile)
	authed.POST("/orders", d.Order.Place)
	authed.GET("/orders/my-orders", d.Order.MyOrders)

	return r
}
