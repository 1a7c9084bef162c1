package handler

import (
	"net/http"

	"raffle-manager/internal/model"
	"raffle-manager/internal/service"
	apperrors "raffle-manager/pkg/app_errors"
	"raffle-manager/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type TicketHandler struct {
	service service.TicketService
}

func NewTicketHandler(service service.TicketService) *TicketHandler {
	return &TicketHandler{service: service}
}

func (h *TicketHandler) RegisterRoutes(r *gin.Engine, auth gin.HandlerFunc) {
	router := r.Group("/api/v1")
	{
		// Buyers browse the grid without logging in. Listing also seeds
		// the 100-ticket inventory on first access.
		router.GET("raffles/:token/tickets", h.List)
		router.GET("raffles/:token/tickets/:ticket", h.Get)
	}

	authed := r.Group("/api/v1", auth)
	{
		// :ticket is a two-digit number or a ticket id.
		authed.PUT("raffles/:token/tickets/:ticket", h.Update)
		authed.POST("raffles/:token/tickets/bulk", h.BulkAssign)
		authed.POST("raffles/:token/tickets/random", h.RandomAssign)
	}
}

type TicketStateRequest struct {
	Status        model.TicketStatus  `json:"status" binding:"required"`
	Paid          bool                `json:"paid"`
	Buyer         string              `json:"buyer"`
	PaymentMethod model.PaymentMethod `json:"payment_method"`
}

func (r TicketStateRequest) toState() model.TicketState {
	state := model.TicketState{
		Status:        r.Status,
		Paid:          r.Paid,
		Buyer:         r.Buyer,
		PaymentMethod: r.PaymentMethod,
	}
	if state.PaymentMethod == "" {
		state.PaymentMethod = model.PaymentNone
	}
	return state
}

type BulkAssignRequest struct {
	Numbers []string           `json:"numbers" binding:"required"`
	State   TicketStateRequest `json:"state" binding:"required"`
}

type RandomAssignRequest struct {
	Count int                `json:"count" binding:"required,gt=0"`
	State TicketStateRequest `json:"state" binding:"required"`
}

func (h *TicketHandler) List(c *gin.Context) {
	tickets, err := h.service.EnsureTickets(c, c.Param("token"))
	if err != nil {
		h.handleError(c, err, "List")
		return
	}
	c.JSON(http.StatusOK, tickets)
}

func (h *TicketHandler) Get(c *gin.Context) {
	ticket, err := h.service.GetTicket(c, c.Param("token"), c.Param("ticket"))
	if err != nil {
		h.handleError(c, err, "Get")
		return
	}
	c.JSON(http.StatusOK, ticket)
}

func (h *TicketHandler) Update(c *gin.Context) {
	var req TicketStateRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	token := c.Param("token")
	key := c.Param("ticket")

	var ticket *model.Ticket
	var err error
	if model.IsTicketNumber(key) {
		ticket, err = h.service.UpdateByNumber(c, token, key, req.toState())
	} else {
		ticket, err = h.service.UpdateByID(c, token, key, req.toState())
	}
	if err != nil {
		h.handleError(c, err, "Update")
		return
	}
	c.JSON(http.StatusOK, ticket)
}

func (h *TicketHandler) BulkAssign(c *gin.Context) {
	var req BulkAssignRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	updated, err := h.service.BulkAssign(c, c.Param("token"), req.Numbers, req.State.toState())
	if err != nil {
		h.handleError(c, err, "BulkAssign")
		return
	}
	c.JSON(http.StatusOK, gin.H{"updated": updated})
}

func (h *TicketHandler) RandomAssign(c *gin.Context) {
	var req RandomAssignRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	result, err := h.service.RandomAssign(c, c.Param("token"), req.Count, req.State.toState())
	if err != nil {
		h.handleError(c, err, "RandomAssign")
		return
	}
	c.JSON(http.StatusOK, gin.H{"numbers": result.Numbers, "updated": result.Updated})
}

func (h *TicketHandler) handleError(c *gin.Context, err error, operation string) {
	log := logger.WithComponent("handler").With(zap.String("operation", operation), zap.Error(err))
	switch {
	case err == apperrors.ErrRaffleNotFound:
		log.Warn("Raffle not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "Raffle not found"})
	case err == apperrors.ErrTicketNotFound:
		log.Warn("Ticket not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "Ticket not found"})
	case err == apperrors.ErrInsufficientAvailable:
		log.Warn("Not enough available tickets")
		c.JSON(http.StatusConflict, gin.H{"error": "Not enough available tickets"})
	case err == apperrors.ErrInvalidInput:
		log.Warn("Invalid input")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
	default:
		log.Error("Unexpected error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
