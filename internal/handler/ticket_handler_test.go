package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"raffle-manager/internal/handler"
	"raffle-manager/internal/model"
	"raffle-manager/internal/service"
	"raffle-manager/internal/service/mocks"
	apperrors "raffle-manager/pkg/app_errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupTicketTestRouter(mockService *mocks.TicketServiceMock) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	identity := model.Identity{UserID: "user-1", Role: model.RoleUser}
	ticketHandler := handler.NewTicketHandler(mockService)
	ticketHandler.RegisterRoutes(router, stubAuth(identity))

	return router
}

func TestListTickets(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := mocks.NewTicketServiceMock()
		router := setupTicketTestRouter(mockService)

		tickets := []*model.Ticket{
			{Number: "00", Status: model.TicketAvailable},
			{Number: "01", Status: model.TicketTaken, Paid: true, Buyer: "Alice", PaymentMethod: model.PaymentCash},
		}
		mockService.On("EnsureTickets", mock.Anything, "R1").Return(tickets, nil).Once()

		req, _ := http.NewRequest("GET", "/api/v1/raffles/R1/tickets", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var body []model.Ticket
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Len(t, body, 2)
		mockService.AssertExpectations(t)
	})

	t.Run("Failed - raffle not found", func(t *testing.T) {
		mockService := mocks.NewTicketServiceMock()
		router := setupTicketTestRouter(mockService)

		mockService.On("EnsureTickets", mock.Anything, "R404").Return(nil, apperrors.ErrRaffleNotFound).Once()

		req, _ := http.NewRequest("GET", "/api/v1/raffles/R404/tickets", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestGetTicket(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := mocks.NewTicketServiceMock()
		router := setupTicketTestRouter(mockService)

		found := &model.Ticket{Number: "07", Status: model.TicketTaken, Buyer: "Alice"}
		mockService.On("GetTicket", mock.Anything, "R1", "07").Return(found, nil).Once()

		req, _ := http.NewRequest("GET", "/api/v1/raffles/R1/tickets/07", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Alice")
		mockService.AssertExpectations(t)
	})

	t.Run("Failed - garbage raffle token maps to 404", func(t *testing.T) {
		mockService := mocks.NewTicketServiceMock()
		router := setupTicketTestRouter(mockService)

		mockService.On("GetTicket", mock.Anything, "my-raffle", "07").Return(nil, apperrors.ErrRaffleNotFound).Once()

		req, _ := http.NewRequest("GET", "/api/v1/raffles/my-raffle/tickets/07", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestUpdateTicket(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := mocks.NewTicketServiceMock()
		router := setupTicketTestRouter(mockService)

		updated := &model.Ticket{Number: "07", Status: model.TicketTaken, Paid: true, Buyer: "Alice", PaymentMethod: model.PaymentCash}
		mockService.On("UpdateByNumber", mock.Anything, "R1", "07", mock.Anything).Return(updated, nil).Once()

		body := handler.TicketStateRequest{Status: model.TicketTaken, Paid: true, Buyer: "Alice", PaymentMethod: model.PaymentCash}
		req := createJSONHTTPRequest("PUT", "/api/v1/raffles/R1/tickets/07", body)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("Success - non-numeric key edits by ticket id", func(t *testing.T) {
		mockService := mocks.NewTicketServiceMock()
		router := setupTicketTestRouter(mockService)

		id := "550e8400-e29b-41d4-a716-446655440000"
		updated := &model.Ticket{ID: id, Number: "07", Status: model.TicketTaken, Buyer: "Alice"}
		mockService.On("UpdateByID", mock.Anything, "R1", id, mock.Anything).Return(updated, nil).Once()

		body := handler.TicketStateRequest{Status: model.TicketTaken, Buyer: "Alice"}
		req := createJSONHTTPRequest("PUT", "/api/v1/raffles/R1/tickets/"+id, body)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		mockService.AssertNotCalled(t, "UpdateByNumber", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Failed - ticket not found", func(t *testing.T) {
		mockService := mocks.NewTicketServiceMock()
		router := setupTicketTestRouter(mockService)

		mockService.On("UpdateByNumber", mock.Anything, "R1", "07", mock.Anything).Return(nil, apperrors.ErrTicketNotFound).Once()

		body := handler.TicketStateRequest{Status: model.TicketTaken, Buyer: "Alice"}
		req := createJSONHTTPRequest("PUT", "/api/v1/raffles/R1/tickets/07", body)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Failed - missing status", func(t *testing.T) {
		mockService := mocks.NewTicketServiceMock()
		router := setupTicketTestRouter(mockService)

		req := createJSONHTTPRequest("PUT", "/api/v1/raffles/R1/tickets/07", gin.H{"buyer": "Alice"})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockService.AssertNotCalled(t, "UpdateByNumber", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestBulkAssign(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := mocks.NewTicketServiceMock()
		router := setupTicketTestRouter(mockService)

		mockService.On("BulkAssign", mock.Anything, "R1", []string{"01", "02"}, mock.Anything).Return(int64(2), nil).Once()

		body := handler.BulkAssignRequest{
			Numbers: []string{"01", "02"},
			State:   handler.TicketStateRequest{Status: model.TicketTaken, Buyer: "Alice"},
		}
		req := createJSONHTTPRequest("POST", "/api/v1/raffles/R1/tickets/bulk", body)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"updated": 2}`, w.Body.String())
		mockService.AssertExpectations(t)
	})

	t.Run("Failed - invalid numbers", func(t *testing.T) {
		mockService := mocks.NewTicketServiceMock()
		router := setupTicketTestRouter(mockService)

		mockService.On("BulkAssign", mock.Anything, "R1", []string{"1x"}, mock.Anything).Return(int64(0), apperrors.ErrInvalidInput).Once()

		body := handler.BulkAssignRequest{
			Numbers: []string{"1x"},
			State:   handler.TicketStateRequest{Status: model.TicketTaken},
		}
		req := createJSONHTTPRequest("POST", "/api/v1/raffles/R1/tickets/bulk", body)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestRandomAssign(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := mocks.NewTicketServiceMock()
		router := setupTicketTestRouter(mockService)

		result := &service.BulkResult{Numbers: []string{"17", "42"}, Updated: 2}
		mockService.On("RandomAssign", mock.Anything, "R1", 2, mock.Anything).Return(result, nil).Once()

		body := handler.RandomAssignRequest{
			Count: 2,
			State: handler.TicketStateRequest{Status: model.TicketTaken, Buyer: "Alice"},
		}
		req := createJSONHTTPRequest("POST", "/api/v1/raffles/R1/tickets/random", body)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"numbers": ["17", "42"], "updated": 2}`, w.Body.String())
		mockService.AssertExpectations(t)
	})

	t.Run("Failed - ErrInsufficientAvailable maps to 409", func(t *testing.T) {
		mockService := mocks.NewTicketServiceMock()
		router := setupTicketTestRouter(mockService)

		mockService.On("RandomAssign", mock.Anything, "R1", 101, mock.Anything).Return(nil, apperrors.ErrInsufficientAvailable).Once()

		body := handler.RandomAssignRequest{
			Count: 101,
			State: handler.TicketStateRequest{Status: model.TicketTaken},
		}
		req := createJSONHTTPRequest("POST", "/api/v1/raffles/R1/tickets/random", body)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("Failed - zero count rejected by binding", func(t *testing.T) {
		mockService := mocks.NewTicketServiceMock()
		router := setupTicketTestRouter(mockService)

		body := gin.H{"count": 0, "state": gin.H{"status": "taken"}}
		req := createJSONHTTPRequest("POST", "/api/v1/raffles/R1/tickets/random", body)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockService.AssertNotCalled(t, "RandomAssign", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}
