package handler

import (
	"github.com/gin-gonic/gin"

	"food-order-api/internal/core/apperr"
	"food-order-api/internal/core/auth"
	"food-order-api/internal/domain"
	"food-order-api/internal/service"
	"food-order-api/internal/transport/http/response"
)

type AuthHandler struct {
	users *service.UserService
	jwter *auth.JWTer
}

func NewAuthHandler(users *service.UserService, jwter *auth.JWTer) *AuthHandler {
	return &AuthHandler{users: users, jwter: jwter}
}

type registerIn struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// POST /auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var in registerIn
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Err(c, apperr.Invalid(err.Error()))
		return
	}
	u, err := h.users.Register(c.Request.Context(), in.Name, in.Email, in.Password)
	if err != nil {
		response.Err(c, err)
		return
	}
	token, err := h.jwter.Issue(u.ID, u.Email, u.Role)
	if err != nil {
		response.Err(c, apperr.Internal("issue token failed", err))
		return
	}
	response.Created(c, response.Body{"token": token, "user": userView(u)})
}

type loginIn struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var in loginIn
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Err(c, apperr.Invalid(err.Error()))
		return
	}
	u, err := h.users.Login(c.Request.Context(), in.Email, in.Password)
	if err != nil {
		response.Err(c, err)
		return
	}
	token, err := h.jwter.Issue(u.ID, u.Email, u.Role)
	if err != nil {
		response.Err(c, apperr.Internal("issue token failed", err))
		return
	}
	response.OK(c, response.Body{"token": token, "user": userView(u)})
}

func userView(u *domain.User) response.Body {
	return response.Body{"id": u.ID, "name": u.Name, "email": u.Email, "role": u.Role}
}
