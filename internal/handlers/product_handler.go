package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"cashier_app/internal/services"
	"cashier_app/pkg/images"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type ProductHandler struct {
	productService services.ProductService
	imageStore     *images.Store
}

func NewProductHandler(productService services.ProductService, imageStore *images.Store) *ProductHandler {
	return &ProductHandler{productService: productService, imageStore: imageStore}
}

func (h *ProductHandler) GetAllProducts(c *gin.Context) {
	products, err := h.productService.GetAllProducts()
	if err != nil {
		log.Printf("Error fetching products: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve products"})
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *ProductHandler) CreateProduct(c *gin.Context) {
	name, price, stock, ok := h.bindProductForm(c)
	if !ok {
		return
	}

	imagePath, ok := h.saveUploadedImage(c)
	if !ok {
		return
	}

	product, err := h.productService.CreateProduct(name, price, stock, imagePath)
	if err != nil {
		if errors.Is(err, services.ErrProductFieldsRequired) {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
		log.Printf("Error adding product: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Product created successfully", "productId": product.ID})
}

func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid product ID."})
		return
	}

	name, price, stock, ok := h.bindProductForm(c)
	if !ok {
		return
	}

	// Missing file means "keep the existing image".
	imagePath, ok := h.saveUploadedImage(c)
	if !ok {
		return
	}

	err = h.productService.UpdateProduct(uint(id), name, price, stock, imagePath)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrProductNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
		case errors.Is(err, services.ErrProductFieldsRequired):
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		default:
			log.Printf("Error updating product: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product updated successfully"})
}

func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid product ID."})
		return
	}

	if err := h.productService.DeleteProduct(uint(id)); err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
			return
		}
		log.Printf("Error deleting product: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
}

func (h *ProductHandler) bindProductForm(c *gin.Context) (string, decimal.Decimal, int, bool) {
	name := c.PostForm("name")
	priceStr := c.PostForm("price")
	stockStr := c.PostForm("stock")

	if name == "" || priceStr == "" || stockStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Name, price, and stock are required."})
		return "", decimal.Zero, 0, false
	}

	price, err := decimal.NewFromString(priceStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Name, price, and stock are required."})
		return "", decimal.Zero, 0, false
	}

	stock, err := strconv.Atoi(stockStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Name, price, and stock are required."})
		return "", decimal.Zero, 0, false
	}

	return name, price, stock, true
}

// saveUploadedImage stores the optional multipart "image" field and returns
// its public path, or nil when no file was submitted. The second return is
// false when a response has already been written.
func (h *ProductHandler) saveUploadedImage(c *gin.Context) (*string, bool) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return nil, true
	}

	file, err := fileHeader.Open()
	if err != nil {
		log.Printf("Error opening uploaded image: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read uploaded image"})
		return nil, false
	}
	defer file.Close()

	path, err := h.imageStore.Save(file, fileHeader.Filename)
	if err != nil {
		if errors.Is(err, images.ErrUnsupportedFormat) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Only images are allowed"})
			return nil, false
		}
		log.Printf("Error saving uploaded image: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store uploaded image"})
		return nil, false
	}

	return &path, true
}
