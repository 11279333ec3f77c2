package handler

import (
	"github.com/gin-gonic/gin"

	"food-order-api/internal/service"
	"food-order-api/internal/transport/http/response"
)

// CatalogHandler 公共目录读取（无需登录）
type CatalogHandler struct {
	catalog *service.CatalogService
}

func NewCatalogHandler(catalog *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// GET /restaurants
func (h *CatalogHandler) ListRestaurants(c *gin.Context) {
	rests, err := h.catalog.ListRestaurants(c.Request.Context())
	if err != nil {
		response.Err(c, err)
		return
	}
	response.OK(c, response.Body{"count": len(rests), "restaurants": rests})
}

// GET /restaurants/:id
func (h *CatalogHandler) GetRestaurant(c *gin.Context) {
	r, err := h.catalog.GetRestaurant(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Err(c, err)
		return
	}
	response.OK(c, response.Body{"restaurant": r})
}

// GET /menu/restaurant/:restaurantId
func (h *CatalogHandler) ListMenu(c *gin.Context) {
	items, err := h.catalog.ListMenu(c.Request.Context(), c.Param("restaurantId"))
	if err != nil {
		response.Err(c, err)
		return
	}
	response.OK(c, response.Body{"count": len(items), "items": items})
}
