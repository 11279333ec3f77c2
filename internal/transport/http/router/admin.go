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

type AdminDeps struct {
	Admin *handler.AdminHandler
	Users domain.UserRepository
	JWTer *auth.JWTer
}

// NewAdminEngine 管理端：目录增删 + 用户列表，统一要求 admin 角色
func NewAdminEngine(l *zap.Logger, d AdminDeps) *gin.Engine {
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

	admin := r.Group("/admin/v1")
	admin.Use(mdw.Auth(d.JWTer, d.Users), mdw.RequireRole(domain.RoleAdmin))

	admin.POST("/restaurants", d.Admin.CreateRestaurant)
	admin.DELETE("/restaurants/:id", d.Admin.DeleteRestaurant)
	admin.POST("/menu", d.Admin.CreateMenuItem)
	admin.DELETE("/menu/:id", d.Admin.DeleteMenuItem)
	admin.GET("/users", d.Admin.ListUsers)

	return r
}
