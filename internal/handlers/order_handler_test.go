package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"cashier_app/internal/handlers"
	"cashier_app/internal/models"
	"cashier_app/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// mockOrderService is a mock of services.OrderService
type mockOrderService struct {
	mock.Mock
}

func (m *mockOrderService) CreateOrder(userID uint, customerName string, lines []services.OrderLine) (uint, error) {
	args := m.Called(userID, customerName, lines)
	return args.Get(0).(uint), args.Error(1)
}

func (m *mockOrderService) UpdateOrder(orderID, customerID uint, customerName string, totalPrice decimal.Decimal, orderDate time.Time) error {
	args := m.Called(orderID, customerID, customerName, totalPrice, orderDate)
	return args.Error(0)
}

func (m *mockOrderService) DeleteOrder(orderID uint) error {
	args := m.Called(orderID)
	return args.Error(0)
}

func (m *mockOrderService) GetOrderByID(id uint) (*models.Order, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

func (m *mockOrderService) GetReport() ([]models.ReportRow, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ReportRow), args.Error(1)
}

func setupOrderRouter(svc services.OrderService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := handlers.NewOrderHandler(svc)
	router := gin.New()
	router.POST("/orders", handler.CreateOrder)
	router.GET("/orders/report", handler.GetReport)
	router.PUT("/orders/:orderId", handler.UpdateOrder)
	router.DELETE("/orders/:orderId", handler.DeleteOrder)
	return router
}

func TestOrderHandler_CreateOrder(t *testing.T) {
	svc := new(mockOrderService)
	router := setupOrderRouter(svc)

	// Client-submitted name/price are carried in the payload but the handler
	// forwards only product id and quantity.
	svc.On("CreateOrder", uint(3), "Budi", []services.OrderLine{
		{ProductID: 1, Quantity: 2},
	}).Return(uint(42), nil)

	body := `{"user_id":3,"customer_name":"Budi","items":[{"id":1,"name":"Kopi","price":1.00,"quantity":2}]}`
	req := httptest.NewRequest(http.MethodPost, "/orders", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusCreated, resp.Code)

	var payload map[string]interface{}
	assert.NoError(t, json.Unmarshal(resp.Body.Bytes(), &payload))
	assert.Equal(t, "Order placed successfully", payload["message"])
	assert.Equal(t, float64(42), payload["orderId"])
	svc.AssertExpectations(t)
}

func TestOrderHandler_CreateOrder_InvalidBody(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `{"user_id":`},
		{"missing user", `{"customer_name":"Budi","items":[{"id":1,"quantity":1}]}`},
		{"missing customer name", `{"user_id":3,"items":[{"id":1,"quantity":1}]}`},
		{"empty items", `{"user_id":3,"customer_name":"Budi","items":[]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(mockOrderService)
			router := setupOrderRouter(svc)

			req := httptest.NewRequest(http.MethodPost, "/orders", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			resp := httptest.NewRecorder()
			router.ServeHTTP(resp, req)

			assert.Equal(t, http.StatusBadRequest, resp.Code)
			svc.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestOrderHandler_CreateOrder_ProductNotFound(t *testing.T) {
	svc := new(mockOrderService)
	router := setupOrderRouter(svc)

	svc.On("CreateOrder", uint(3), "Budi", mock.Anything).
		Return(uint(0), services.ErrProductNotFound)

	body := `{"user_id":3,"customer_name":"Budi","items":[{"id":99,"quantity":1}]}`
	req := httptest.NewRequest(http.MethodPost, "/orders", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestOrderHandler_GetReport(t *testing.T) {
	svc := new(mockOrderService)
	router := setupOrderRouter(svc)

	rows := []models.ReportRow{
		{OrderID: 1, UserID: 3, UserName: "admin", CustomerName: "Budi", TotalItems: 2, TotalRevenue: decimal.RequireFromString("25.50")},
	}
	svc.On("GetReport").Return(rows, nil)

	req := httptest.NewRequest(http.MethodGet, "/orders/report", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var payload []map[string]interface{}
	assert.NoError(t, json.Unmarshal(resp.Body.Bytes(), &payload))
	assert.Len(t, payload, 1)
	assert.Equal(t, "Budi", payload[0]["customer_name"])
	assert.Equal(t, "25.5", payload[0]["total_revenue"])
}

func TestOrderHandler_UpdateOrder_NotFound(t *testing.T) {
	svc := new(mockOrderService)
	router := setupOrderRouter(svc)

	svc.On("UpdateOrder", uint(9), uint(4), "Siti", mock.Anything, mock.Anything).
		Return(services.ErrOrderNotFound)

	body := `{"customer_id":4,"customer_name":"Siti","total_price":99.00,"order_date":"2025-06-01T10:00:00Z"}`
	req := httptest.NewRequest(http.MethodPut, "/orders/9", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestOrderHandler_DeleteOrder(t *testing.T) {
	svc := new(mockOrderService)
	router := setupOrderRouter(svc)

	svc.On("DeleteOrder", uint(9)).Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/orders/9", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)
	svc.AssertExpectations(t)
}

func TestOrderHandler_DeleteOrder_InvalidID(t *testing.T) {
	svc := new(mockOrderService)
	router := setupOrderRouter(svc)

	req := httptest.NewRequest(http.MethodDelete, "/orders/abc", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	svc.AssertNotCalled(t, "DeleteOrder", mock.Anything)
}
