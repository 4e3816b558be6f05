package services

import (
	"errors"

	"cashier_app/internal/models"
	"cashier_app/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var ErrProductFieldsRequired = errors.New("name, price, and stock are required")

type ProductService interface {
	GetAllProducts() ([]models.Product, error)
	CreateProduct(name string, price decimal.Decimal, stock int, imagePath *string) (*models.Product, error)
	UpdateProduct(id uint, name string, price decimal.Decimal, stock int, imagePath *string) error
	DeleteProduct(id uint) error
}

type productService struct {
	productRepo repository.ProductRepository
}

func NewProductService(productRepo repository.ProductRepository) ProductService {
	return &productService{productRepo: productRepo}
}

func (s *productService) GetAllProducts() ([]models.Product, error) {
	return s.productRepo.GetAll()
}

func (s *productService) CreateProduct(name string, price decimal.Decimal, stock int, imagePath *string) (*models.Product, error) {
	if name == "" || price.LessThanOrEqual(decimal.Zero) || stock < 0 {
		return nil, ErrProductFieldsRequired
	}

	product := &models.Product{
		Name:  name,
		Price: price,
		Stock: stock,
		Image: imagePath,
	}
	if err := s.productRepo.Create(product); err != nil {
		return nil, err
	}
	return product, nil
}

// UpdateProduct replaces name, price and stock. A nil imagePath means "leave
// the existing image unchanged".
func (s *productService) UpdateProduct(id uint, name string, price decimal.Decimal, stock int, imagePath *string) error {
	if name == "" || price.LessThanOrEqual(decimal.Zero) || stock < 0 {
		return ErrProductFieldsRequired
	}

	product, err := s.productRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProductNotFound
		}
		return err
	}

	product.Name = name
	product.Price = price
	product.Stock = stock
	if imagePath != nil {
		product.Image = imagePath
	}

	return s.productRepo.Update(product)
}

func (s *productService) DeleteProduct(id uint) error {
	err := s.productRepo.Delete(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrProductNotFound
	}
	return err
}
