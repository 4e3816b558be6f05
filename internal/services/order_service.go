package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	"cashier_app/internal/events"
	"cashier_app/internal/models"
	"cashier_app/internal/redis"
	"cashier_app/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrCustomerNameRequired = errors.New("customer name is required")
	ErrEmptyOrder           = errors.New("at least one item is required")
	ErrInvalidQuantity      = errors.New("quantity must be positive")
	ErrProductNotFound      = errors.New("product not found")
	ErrOrderNotFound        = errors.New("order not found")
)

// OrderLine is one cart line as submitted by the client. Only ProductID and
// Quantity participate in pricing; the authoritative price always comes from
// the catalog row inside the order transaction.
type OrderLine struct {
	ProductID uint
	Quantity  int
}

// ReportCache holds the rendered sales report between order writes.
type ReportCache interface {
	GetReport() ([]models.ReportRow, error)
	SetReport(rows []models.ReportRow, ttl time.Duration) error
	InvalidateReport() error
}

// ErrCacheMiss is what ReportCache.GetReport returns when the report is not
// cached; it is the redis client's sentinel so errors.Is matches across
// packages.
var ErrCacheMiss = redis.ErrCacheMiss

type OrderService interface {
	CreateOrder(userID uint, customerName string, lines []OrderLine) (uint, error)
	UpdateOrder(orderID, customerID uint, customerName string, totalPrice decimal.Decimal, orderDate time.Time) error
	DeleteOrder(orderID uint) error
	GetOrderByID(id uint) (*models.Order, error)
	GetReport() ([]models.ReportRow, error)
}

type orderService struct {
	orderRepo repository.OrderRepository
	cache     ReportCache
	publisher events.Publisher
	reportTTL time.Duration
}

func NewOrderService(orderRepo repository.OrderRepository, cache ReportCache, publisher events.Publisher, reportTTL time.Duration) OrderService {
	return &orderService{
		orderRepo: orderRepo,
		cache:     cache,
		publisher: publisher,
		reportTTL: reportTTL,
	}
}

// CreateOrder resolves the customer, re-prices every line from the catalog and
// persists the order header plus all line items as one transaction. Any
// failure rolls the whole unit back; no partial order is ever visible.
func (s *orderService) CreateOrder(userID uint, customerName string, lines []OrderLine) (uint, error) {
	if customerName == "" {
		return 0, ErrCustomerNameRequired
	}
	if len(lines) == 0 {
		return 0, ErrEmptyOrder
	}
	for _, line := range lines {
		if line.Quantity <= 0 {
			return 0, fmt.Errorf("product %d: %w", line.ProductID, ErrInvalidQuantity)
		}
	}

	var created models.Order
	err := s.orderRepo.Transact(func(tx repository.OrderTx) error {
		customer, err := tx.FindCustomerByName(customerName)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			customer = &models.Customer{Name: customerName}
			if err := tx.CreateCustomer(customer); err != nil {
				return err
			}
		} else if err != nil {
			return err
		}

		total := decimal.Zero
		items := make([]models.OrderItem, 0, len(lines))
		for _, line := range lines {
			product, err := tx.FindProductByID(line.ProductID)
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("product with ID %d not found: %w", line.ProductID, ErrProductNotFound)
			}
			if err != nil {
				return err
			}
			total = total.Add(product.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
			items = append(items, models.OrderItem{
				ProductID: line.ProductID,
				Quantity:  line.Quantity,
				Price:     product.Price,
			})
		}

		created = models.Order{
			UserID:     userID,
			CustomerID: customer.ID,
			TotalPrice: total,
			OrderDate:  time.Now(),
			Items:      items,
		}
		return tx.CreateOrder(&created)
	})
	if err != nil {
		return 0, err
	}

	s.invalidateReport()
	event := events.OrderCreatedEvent{
		EventID:    uuid.New().String(),
		OrderID:    created.ID,
		UserID:     created.UserID,
		CustomerID: created.CustomerID,
		TotalPrice: created.TotalPrice,
		Items:      created.Items,
		Timestamp:  time.Now(),
	}
	if err := s.publisher.PublishOrderCreated(event); err != nil {
		log.Printf("Failed to publish order created event for order %d: %v", created.ID, err)
	}

	return created.ID, nil
}

// UpdateOrder is an administrative correction: the customer rename and the
// order scalar fields change together, and the supplied total is written
// as-is without re-pricing.
func (s *orderService) UpdateOrder(orderID, customerID uint, customerName string, totalPrice decimal.Decimal, orderDate time.Time) error {
	err := s.orderRepo.Transact(func(tx repository.OrderTx) error {
		if _, err := tx.FindOrderByID(orderID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrOrderNotFound
			}
			return err
		}
		if err := tx.UpdateCustomerName(customerID, customerName); err != nil {
			return err
		}
		return tx.UpdateOrder(orderID, customerID, totalPrice, orderDate)
	})
	if err != nil {
		return err
	}

	s.invalidateReport()
	return nil
}

// DeleteOrder removes the order's items and then the order itself inside one
// transaction, so a mid-sequence failure can never leave orphaned items.
func (s *orderService) DeleteOrder(orderID uint) error {
	err := s.orderRepo.Transact(func(tx repository.OrderTx) error {
		if _, err := tx.FindOrderByID(orderID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrOrderNotFound
			}
			return err
		}
		if err := tx.DeleteOrderItems(orderID); err != nil {
			return err
		}
		return tx.DeleteOrder(orderID)
	})
	if err != nil {
		return err
	}

	s.invalidateReport()
	event := events.OrderDeletedEvent{
		EventID:   uuid.New().String(),
		OrderID:   orderID,
		Timestamp: time.Now(),
	}
	if err := s.publisher.PublishOrderDeleted(event); err != nil {
		log.Printf("Failed to publish order deleted event for order %d: %v", orderID, err)
	}
	return nil
}

func (s *orderService) GetOrderByID(id uint) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrOrderNotFound
	}
	return order, err
}

func (s *orderService) GetReport() ([]models.ReportRow, error) {
	rows, err := s.cache.GetReport()
	if err == nil {
		return rows, nil
	}
	if !errors.Is(err, ErrCacheMiss) {
		log.Printf("Report cache read failed, falling back to database: %v", err)
	}

	rows, err = s.orderRepo.GetReport()
	if err != nil {
		return nil, err
	}
	if err := s.cache.SetReport(rows, s.reportTTL); err != nil {
		log.Printf("Failed to cache report: %v", err)
	}
	return rows, nil
}

func (s *orderService) invalidateReport() {
	if err := s.cache.InvalidateReport(); err != nil {
		log.Printf("Failed to invalidate report cache: %v", err)
	}
}
