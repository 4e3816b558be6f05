package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"cashier_app/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type OrderHandler struct {
	orderService services.OrderService
}

func NewOrderHandler(orderService services.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// orderItemRequest mirrors the cart line the client submits. Name and Price
// are accepted for compatibility with the front end but never used: pricing
// is always re-derived from the catalog.
type orderItemRequest struct {
	ID       uint            `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
}

type createOrderRequest struct {
	UserID       uint               `json:"user_id"`
	CustomerName string             `json:"customer_name"`
	Items        []orderItemRequest `json:"items"`
}

func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid order data."})
		return
	}
	if req.UserID == 0 || req.CustomerName == "" || len(req.Items) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid order data."})
		return
	}

	lines := make([]services.OrderLine, 0, len(req.Items))
	for _, item := range req.Items {
		lines = append(lines, services.OrderLine{ProductID: item.ID, Quantity: item.Quantity})
	}

	orderID, err := h.orderService.CreateOrder(req.UserID, req.CustomerName, lines)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrProductNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
		case errors.Is(err, services.ErrCustomerNameRequired),
			errors.Is(err, services.ErrEmptyOrder),
			errors.Is(err, services.ErrInvalidQuantity):
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		default:
			log.Printf("Error creating order: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error placing order."})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Order placed successfully", "orderId": orderID})
}

func (h *OrderHandler) GetReport(c *gin.Context) {
	report, err := h.orderService.GetReport()
	if err != nil {
		log.Printf("Error fetching order report: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching order report."})
		return
	}
	c.JSON(http.StatusOK, report)
}

type updateOrderRequest struct {
	CustomerID   uint            `json:"customer_id"`
	CustomerName string          `json:"customer_name"`
	TotalPrice   decimal.Decimal `json:"total_price"`
	OrderDate    time.Time       `json:"order_date"`
}

func (h *OrderHandler) UpdateOrder(c *gin.Context) {
	orderID, err := parseOrderID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid order ID."})
		return
	}

	var req updateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid order data."})
		return
	}

	err = h.orderService.UpdateOrder(orderID, req.CustomerID, req.CustomerName, req.TotalPrice, req.OrderDate)
	if err != nil {
		if errors.Is(err, services.ErrOrderNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Order not found"})
			return
		}
		log.Printf("Error updating order: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating order."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Order updated successfully"})
}

func (h *OrderHandler) DeleteOrder(c *gin.Context) {
	orderID, err := parseOrderID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid order ID."})
		return
	}

	if err := h.orderService.DeleteOrder(orderID); err != nil {
		if errors.Is(err, services.ErrOrderNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Order not found"})
			return
		}
		log.Printf("Error deleting order: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error deleting order."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Order deleted successfully"})
}

func parseOrderID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("orderId"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
