package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"food-order-api/internal/core/apperr"
)

// 统一响应信封：成功 {"success":true, ...}，失败 {"success":false,"error":msg}
type Body = gin.H

func OK(c *gin.Context, data Body) { write(c, http.StatusOK, data) }

func Created(c *gin.Context, data Body) { write(c, http.StatusCreated, data) }

func write(c *gin.Context, status int, data Body) {
	out := Body{"success": true}
	for k, v := range data {
		out[k] = v
	}
	c.JSON(status, out)
}

// Err 按 apperr 分类映射状态码。Internal 不往外带底层细节
func Err(c *gin.Context, err error) {
	msg := err.Error()
	if apperr.KindOf(err) == apperr.KindInternal && msg == "" {
		msg = "server error"
	}
	c.JSON(StatusOf(err), Body{"success": false, "error": msg})
}

// Abort 给中间件用：写响应并中断后续 handler
func Abort(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, Body{"success": false, "error": msg})
}
