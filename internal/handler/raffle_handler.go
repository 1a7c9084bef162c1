package handler

import (
	"net/http"
	"time"

	"raffle-manager/internal/middleware"
	"raffle-manager/internal/model"
	"raffle-manager/internal/service"
	apperrors "raffle-manager/pkg/app_errors"
	"raffle-manager/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type RaffleHandler struct {
	service service.RaffleService
}

func NewRaffleHandler(service service.RaffleService) *RaffleHandler {
	return &RaffleHandler{service: service}
}

func (h *RaffleHandler) RegisterRoutes(r *gin.Engine, auth gin.HandlerFunc) {
	router := r.Group("/api/v1")
	{
		// Resolving a raffle by token is public: grid links are shared
		// with buyers who have no account.
		router.GET("raffles/:token", h.GetByToken)
	}

	authed := r.Group("/api/v1", auth)
	{
		authed.GET("raffles", h.List)
		authed.POST("raffles", h.Create)
		authed.DELETE("raffles/:token", h.Delete)
	}
}

type CreateRaffleRequest struct {
	Title  string  `json:"title" binding:"required"`
	Slogan string  `json:"slogan" binding:"required"`
	Prize  string  `json:"prize" binding:"required"`
	Price  float64 `json:"price" binding:"required,gt=0"`
	Date   string  `json:"date"`
}

type ListRafflesRequest struct {
	Code string `form:"code"`
}

func (h *RaffleHandler) List(c *gin.Context) {
	var req ListRafflesRequest
	if err := BindQuery(c, &req); err != nil {
		return
	}

	// ?code=R7 looks up one raffle instead of listing.
	if req.Code != "" {
		raffle, err := h.service.FindByCode(c, req.Code)
		if err != nil {
			h.handleError(c, err, "List")
			return
		}
		c.JSON(http.StatusOK, raffle)
		return
	}

	raffles, err := h.service.List(c, middleware.GetIdentity(c))
	if err != nil {
		h.handleError(c, err, "List")
		return
	}
	c.JSON(http.StatusOK, raffles)
}

func (h *RaffleHandler) GetByToken(c *gin.Context) {
	raffle, err := h.service.Resolve(c, c.Param("token"))
	if err != nil {
		h.handleError(c, err, "GetByToken")
		return
	}
	c.JSON(http.StatusOK, raffle)
}

func (h *RaffleHandler) Create(c *gin.Context) {
	var req CreateRaffleRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	raffle := &model.Raffle{
		Title:  req.Title,
		Slogan: req.Slogan,
		Prize:  req.Prize,
		Price:  req.Price,
	}
	if req.Date != "" {
		date, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date, expected YYYY-MM-DD"})
			return
		}
		raffle.DrawDate = &date
	}

	created, err := h.service.Create(c, raffle, middleware.GetIdentity(c))
	if err != nil {
		h.handleError(c, err, "Create")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": created.ID, "code": created.Code})
}

func (h *RaffleHandler) Delete(c *gin.Context) {
	err := h.service.Delete(c, c.Param("token"), middleware.GetIdentity(c))
	if err != nil {
		h.handleError(c, err, "Delete")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *RaffleHandler) handleError(c *gin.Context, err error, operation string) {
	log := logger.WithComponent("handler").With(zap.String("operation", operation), zap.Error(err))
	switch {
	case err == apperrors.ErrRaffleNotFound:
		log.Warn("Raffle not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "Raffle not found"})
	case err == apperrors.ErrInvalidInput:
		log.Warn("Invalid input")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
	case err == apperrors.ErrForbidden:
		log.Warn("Forbidden")
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
	default:
		log.Error("Unexpected error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
