package handler

import (
	"net/http"

	"raffle-manager/internal/middleware"
	"raffle-manager/internal/model"
	"raffle-manager/internal/service"
	apperrors "raffle-manager/pkg/app_errors"
	"raffle-manager/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type UserHandler struct {
	users service.UserService
	auth  service.AuthService
}

func NewUserHandler(users service.UserService, auth service.AuthService) *UserHandler {
	return &UserHandler{users: users, auth: auth}
}

func (h *UserHandler) RegisterRoutes(r *gin.Engine, auth gin.HandlerFunc) {
	router := r.Group("/api/v1", auth, middleware.RequireAdmin())
	{
		router.GET("users", h.List)
		router.POST("users", h.Create)
		router.DELETE("users/:id", h.Delete)
	}
}

type CreateUserRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role" binding:"required"`
}

func (h *UserHandler) List(c *gin.Context) {
	users, err := h.users.List(c)
	if err != nil {
		h.handleError(c, err, "List")
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *UserHandler) Create(c *gin.Context) {
	var req CreateUserRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	user, err := h.auth.CreateUser(c, req.Name, req.Email, req.Password, model.Role(req.Role))
	if err != nil {
		h.handleError(c, err, "Create")
		return
	}
	c.JSON(http.StatusCreated, user)
}

func (h *UserHandler) Delete(c *gin.Context) {
	if err := h.users.Delete(c, c.Param("id")); err != nil {
		h.handleError(c, err, "Delete")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *UserHandler) handleError(c *gin.Context, err error, operation string) {
	log := logger.WithComponent("handler").With(zap.String("operation", operation), zap.Error(err))
	switch {
	case err == apperrors.ErrUserNotFound:
		log.Warn("User not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
	case err == apperrors.ErrEmailExists:
		log.Warn("Email already registered")
		c.JSON(http.StatusConflict, gin.H{"error": "Email already registered"})
	case err == apperrors.ErrInvalidInput:
		log.Warn("Invalid input")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
	default:
		log.Error("Unexpected error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
