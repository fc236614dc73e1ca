package delivery

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"product_service/internal/domain"
	"product_service/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const productsPath = "/api/products"

type ProductHandler struct {
	useCase usecase.ProductUseCase
	log     *logrus.Logger
}

func NewProductHandler(uc usecase.ProductUseCase, logger *logrus.Logger) *ProductHandler {
	return &ProductHandler{
		useCase: uc,
		log:     logger,
	}
}

func (h *ProductHandler) RegisterRoutes(router gin.IRouter) {
	products := router.Group(productsPath)
	{
		products.GET("", h.ListProducts)
		products.GET("/:id", h.GetProductByID)
		products.POST("", h.CreateProduct)
		products.PUT("/:id", h.UpdateProduct)
		products.DELETE("/:id", h.DeleteProduct)
	}
}

func (h *ProductHandler) ListProducts(c *gin.Context) {
	products, err := h.useCase.ListProducts()
	if err != nil {
		h.log.Errorf("Failed to list products: %v", err)
		ErrorResponse(c, http.StatusInternalServerError, "An error occurred while retrieving products: "+err.Error())
		return
	}

	if products == nil {
		products = []domain.Product{}
	}
	SuccessResponse(c, http.StatusOK, products)
}

func (h *ProductHandler) GetProductByID(c *gin.Context) {
	id, ok := h.productID(c)
	if !ok {
		return
	}

	product, err := h.useCase.GetProductByID(id)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			ErrorResponse(c, http.StatusNotFound, notFoundMessage(id))
			return
		}
		h.log.Errorf("Failed to get product by ID %d: %v", id, err)
		ErrorResponse(c, http.StatusInternalServerError, "An error occurred while retrieving the product: "+err.Error())
		return
	}

	SuccessResponse(c, http.StatusOK, product)
}

func (h *ProductHandler) CreateProduct(c *gin.Context) {
	product, ok := h.bindProduct(c)
	if !ok {
		return
	}

	createdProduct, err := h.useCase.CreateProduct(product)
	if err != nil {
		statusCode := mapErrorToStatus(err)
		if statusCode == http.StatusBadRequest {
			h.log.Warnf("Rejected product '%s': %v", product.SKU, err)
			ErrorResponse(c, statusCode, err.Error())
			return
		}
		h.log.Errorf("Failed to create product '%s': %v", product.SKU, err)
		ErrorResponse(c, http.StatusInternalServerError, "An error occurred while creating the product: "+err.Error())
		return
	}

	h.log.Infof("Product created successfully: ID %d, SKU %s", createdProduct.ID, createdProduct.SKU)
	c.Header("Location", fmt.Sprintf("%s/%d", productsPath, createdProduct.ID))
	SuccessResponse(c, http.StatusCreated, createdProduct)
}

func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	id, ok := h.productID(c)
	if !ok {
		return
	}
	product, ok := h.bindProduct(c)
	if !ok {
		return
	}

	product.ID = id
	if err := h.useCase.UpdateProduct(product); err != nil {
		switch statusCode := mapErrorToStatus(err); statusCode {
		case http.StatusNotFound:
			ErrorResponse(c, statusCode, notFoundMessage(id))
		case http.StatusBadRequest:
			h.log.Warnf("Rejected update for product ID %d: %v", id, err)
			ErrorResponse(c, statusCode, err.Error())
		default:
			h.log.Errorf("Failed to update product ID %d: %v", id, err)
			ErrorResponse(c, http.StatusInternalServerError, "An error occurred while updating the product: "+err.Error())
		}
		return
	}

	h.log.Infof("Product updated successfully: ID %d", id)
	c.Status(http.StatusNoContent)
}

func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	id, ok := h.productID(c)
	if !ok {
		return
	}

	product, err := h.useCase.GetProductByID(id)
	if err == nil {
		err = h.useCase.DeleteProduct(product)
	}
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			ErrorResponse(c, http.StatusNotFound, notFoundMessage(id))
			return
		}
		h.log.Errorf("Failed to delete product ID %d: %v", id, err)
		ErrorResponse(c, http.StatusInternalServerError, "An error occurred while deleting the product: "+err.Error())
		return
	}

	h.log.Infof("Product deleted successfully: ID %d", id)
	c.Status(http.StatusNoContent)
}

// productID writes a 400 and reports false when the :id segment is not an integer.
func (h *ProductHandler) productID(c *gin.Context) (int, bool) {
	idStr := c.Param("id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		h.log.Warnf("Invalid product ID parameter: %s", idStr)
		ErrorResponse(c, http.StatusBadRequest, "Invalid product ID format")
		return 0, false
	}
	return id, true
}

// bindProduct decodes the body and applies the same presence checks the
// use case repeats. It writes a 400 and reports false on rejection.
func (h *ProductHandler) bindProduct(c *gin.Context) (*domain.Product, bool) {
	var product domain.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		if errors.Is(err, io.EOF) {
			ErrorResponse(c, http.StatusBadRequest, "Product data is required.")
			return nil, false
		}
		h.log.Warnf("Failed to bind JSON for product: %v", err)
		ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return nil, false
	}

	if strings.TrimSpace(product.SKU) == "" {
		ErrorResponse(c, http.StatusBadRequest, "SKU is required.")
		return nil, false
	}
	if !product.Price.IsPositive() {
		ErrorResponse(c, http.StatusBadRequest, "Price must be greater than 0.")
		return nil, false
	}
	return &product, true
}

func notFoundMessage(id int) string {
	return fmt.Sprintf("Product with ID %d not found.", id)
}
