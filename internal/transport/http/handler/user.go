package handler

import (
	"github.com/gin-gonic/gin"

	"food-order-api/internal/core/apperr"
	"food-order-api/internal/service"
	"food-order-api/internal/transport/http/middleware"
	"food-order-api/internal/transport/http/response"
)

type UserHandler struct {
	users *service.UserService
}

func NewUserHandler(users *service.UserService) *UserHandler {
	return &UserHandler{users: users}
}

// GET /users/profile
func (h *UserHandler) GetProfile(c *gin.Context) {
	u, err := h.users.GetProfile(c.Request.Context(), c.GetString(middleware.KeyUserID))
	if err != nil {
		response.Err(c, err)
		return
	}
	response.OK(c, response.Body{"user": u})
}

type updateProfileIn struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// PUT /users/profile  字段留空表示不改
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	var in updateProfileIn
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Err(c, apperr.Invalid(err.Error()))
		return
	}
	u, err := h.users.UpdateProfile(c.Request.Context(), c.GetString(middleware.KeyUserID), in.Name, in.Email)
	if err != nil {
		response.Err(c, err)
		return
	}
	response.OK(c, response.Body{"user": u})
}
