package repository

import (
	"time"

	"cashier_app/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderTx is the set of operations available inside one order transaction.
// Every method runs against the same database transaction; the transaction
// commits when the Transact callback returns nil and rolls back otherwise.
type OrderTx interface {
	FindCustomerByName(name string) (*models.Customer, error)
	CreateCustomer(customer *models.Customer) error
	UpdateCustomerName(id uint, name string) error
	FindProductByID(id uint) (*models.Product, error)
	FindOrderByID(id uint) (*models.Order, error)
	CreateOrder(order *models.Order) error
	UpdateOrder(orderID, customerID uint, totalPrice decimal.Decimal, orderDate time.Time) error
	DeleteOrderItems(orderID uint) error
	DeleteOrder(orderID uint) error
}

type OrderRepository interface {
	// Transact runs fn inside a single database transaction. The tx handle
	// must not be retained after fn returns.
	Transact(fn func(tx OrderTx) error) error
	GetByID(id uint) (*models.Order, error)
	GetReport() ([]models.ReportRow, error)
}

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) Transact(fn func(tx OrderTx) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(&orderTx{db: tx})
	})
}

func (r *orderRepository) GetByID(id uint) (*models.Order, error) {
	var order models.Order
	err := r.db.Preload("Items").First(&order, id).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

const reportQuery = `
SELECT
	o.id AS order_id,
	o.order_date,
	o.user_id,
	COALESCE(u.username, '') AS user_name,
	COALESCE(c.name, '') AS customer_name,
	COUNT(oi.id) AS total_items,
	SUM(COALESCE(oi.price * oi.quantity, 0)) AS total_revenue
FROM orders o
LEFT JOIN users u ON o.user_id = u.id
LEFT JOIN customers c ON o.customer_id = c.id
LEFT JOIN order_items oi ON o.id = oi.order_id
GROUP BY o.id, o.order_date, o.user_id, u.username, c.name
ORDER BY o.id`

func (r *orderRepository) GetReport() ([]models.ReportRow, error) {
	var rows []models.ReportRow
	err := r.db.Raw(reportQuery).Scan(&rows).Error
	return rows, err
}

type orderTx struct {
	db *gorm.DB
}

func (t *orderTx) FindCustomerByName(name string) (*models.Customer, error) {
	var customer models.Customer
	// First match wins when duplicate names exist.
	err := t.db.Where("name = ?", name).First(&customer).Error
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

func (t *orderTx) CreateCustomer(customer *models.Customer) error {
	return t.db.Create(customer).Error
}

func (t *orderTx) UpdateCustomerName(id uint, name string) error {
	return t.db.Model(&models.Customer{}).Where("id = ?", id).Update("name", name).Error
}

func (t *orderTx) FindProductByID(id uint) (*models.Product, error) {
	var product models.Product
	err := t.db.First(&product, id).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (t *orderTx) FindOrderByID(id uint) (*models.Order, error) {
	var order models.Order
	err := t.db.First(&order, id).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// CreateOrder inserts the order row and all of its items in one call; GORM
// persists the Items association inside the surrounding transaction.
func (t *orderTx) CreateOrder(order *models.Order) error {
	return t.db.Create(order).Error
}

func (t *orderTx) UpdateOrder(orderID, customerID uint, totalPrice decimal.Decimal, orderDate time.Time) error {
	return t.db.Model(&models.Order{}).Where("id = ?", orderID).Updates(map[string]interface{}{
		"customer_id": customerID,
		"total_price": totalPrice,
		"order_date":  orderDate,
	}).Error
}

func (t *orderTx) DeleteOrderItems(orderID uint) error {
	return t.db.Where("order_id = ?", orderID).Delete(&models.OrderItem{}).Error
}

func (t *orderTx) DeleteOrder(orderID uint) error {
	return t.db.Delete(&models.Order{}, orderID).Error
}
