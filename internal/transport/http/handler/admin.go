package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"food-order-api/internal/core/apperr"
	"food-order-api/internal/domain"
	"food-order-api/internal/service"
	"food-order-api/internal/transport/http/response"
)

// AdminHandler 目录管理 + 用户列表，路由层统一挂 Auth + RequireRole(admin)
type AdminHandler struct {
	users   *service.UserService
	catalog *service.CatalogService
}

func NewAdminHandler(users *service.UserService, catalog *service.CatalogService) *AdminHandler {
	return &AdminHandler{users: users, catalog: catalog}
}

// POST /restaurants
func (h *AdminHandler) CreateRestaurant(c *gin.Context) {
	var in service.CreateRestaurantInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Err(c, apperr.Invalid(err.Error()))
		return
	}
	r, err := h.catalog.CreateRestaurant(c.Request.Context(), in)
	if err != nil {
		response.Err(c, err)
		return
	}
	response.Created(c, response.Body{"restaurant": r})
}

// DELETE /restaurants/:id
func (h *AdminHandler) DeleteRestaurant(c *gin.Context) {
	if err := h.catalog.DeleteRestaurant(c.Request.Context(), c.Param("id")); err != nil {
		response.Err(c, err)
		return
	}
	response.OK(c, response.Body{"message": "restaurant deleted successfully"})
}

// POST /menu
func (h *AdminHandler) CreateMenuItem(c *gin.Context) {
	var in service.CreateMenuItemInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Err(c, apperr.Invalid(err.Error()))
		return
	}
	m, err := h.catalog.CreateMenuItem(c.Request.Context(), in)
	if err != nil {
		response.Err(c, err)
		return
	}
	response.Created(c, response.Body{"menuItem": m})
}

// DELETE /menu/:id
func (h *AdminHandler) DeleteMenuItem(c *gin.Context) {
	if err := h.catalog.DeleteMenuItem(c.Request.Context(), c.Param("id")); err != nil {
		response.Err(c, err)
		return
	}
	response.OK(c, response.Body{"message": "menu item deleted successfully"})
}

type adminUserRow struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// GET /users?offset=&limit=&q=
func (h *AdminHandler) ListUsers(c *gin.Context) {
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	users, total, err := h.users.ListUsers(c.Request.Context(), offset, limit, c.Query("q"))
	if err != nil {
		response.Err(c, err)
		return
	}
	rows := make([]adminUserRow, 0, len(users))
	for _, u := range users {
		rows = append(rows, rowOf(u))
	}
	response.OK(c, response.Body{"total": total, "items": rows})
}

func rowOf(u domain.User) adminUserRow {
	return adminUserRow{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role}
}
