package handler

import (
	"github.com/gin-gonic/gin"

	"food-order-api/internal/core/apperr"
	"food-order-api/internal/service"
	"food-order-api/internal/transport/http/middleware"
	"food-order-api/internal/transport/http/response"
)

type OrderHandler struct {
	orders *service.OrderService
}

func NewOrderHandler(orders *service.OrderService) *OrderHandler {
	return &OrderHandler{orders: orders}
}

// POST /orders
func (h *OrderHandler) Place(c *gin.Context) {
	var in service.PlaceOrderInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Err(c, apperr.Invalid(err.Error()))
		return
	}
	o, err := h.orders.Place(c.Request.Context(), c.GetString(middleware.KeyUserID), in)
	if err != nil {
		response.Err(c, err)
		return
	}
	response.Created(c, response.Body{"order": o})
}

// GET /orders/my-orders
func (h *OrderHandler) MyOrders(c *gin.Context) {
	orders, err := h.orders.MyOrders(c.Request.Context(), c.GetString(middleware.KeyUserID))
	if err != nil {
		response.Err(c, err)
		return
	}
	response.OK(c, response.Body{"count": len(orders), "orders": orders})
}
