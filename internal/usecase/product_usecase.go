package usecase

import (
	"errors"
	"fmt"
	"strings"

	"product_service/internal/domain"

	"github.com/sirupsen/logrus"
)

// ProductUseCase validates products before they reach the repository.
// Validation failures wrap domain.ErrInvalidProduct and unknown ids wrap
// domain.ErrProductNotFound.
type ProductUseCase interface {
	CreateProduct(product *domain.Product) (*domain.Product, error)
	GetProductByID(id int) (*domain.Product, error)
	ListProducts() ([]domain.Product, error)
	UpdateProduct(product *domain.Product) error
	DeleteProduct(product *domain.Product) error
}

// OperationRecorder counts use case calls by operation and result.
type OperationRecorder interface {
	RecordOperation(operation, result string)
}

const (
	ResultOK       = "ok"
	ResultInvalid  = "invalid"
	ResultNotFound = "not_found"
	ResultError    = "error"
)

type productUseCase struct {
	productRepo domain.ProductRepository
	recorder    OperationRecorder
	log         *logrus.Logger
}

func NewProductUseCase(pRepo domain.ProductRepository, recorder OperationRecorder, logger *logrus.Logger) ProductUseCase {
	return &productUseCase{
		productRepo: pRepo,
		recorder:    recorder,
		log:         logger,
	}
}

func (uc *productUseCase) CreateProduct(product *domain.Product) (created *domain.Product, err error) {
	defer func() { uc.record("create", err) }()

	if err := validateProduct(product); err != nil {
		uc.log.Warnf("Use Case: Rejected product for create: %v", err)
		return nil, err
	}

	uc.log.Infof("Use Case: Attempting to create product '%s'", product.SKU)
	created, err = uc.productRepo.CreateProduct(product)
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to create product '%s': %v", product.SKU, err)
		return nil, err
	}

	uc.log.Infof("Use Case: Product '%s' created successfully with ID %d", created.SKU, created.ID)
	return created, nil
}

func (uc *productUseCase) GetProductByID(id int) (product *domain.Product, err error) {
	defer func() { uc.record("get", err) }()

	product, err = uc.productRepo.GetProductByID(id)
	if err != nil {
		uc.log.Debugf("Use Case: Product ID %d not retrieved: %v", id, err)
		return nil, err
	}
	return product, nil
}

func (uc *productUseCase) ListProducts() (products []domain.Product, err error) {
	defer func() { uc.record("list", err) }()

	products, err = uc.productRepo.ListProducts()
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to list products: %v", err)
		return nil, fmt.Errorf("could not retrieve products: %w", err)
	}
	uc.log.Debugf("Use Case: Retrieved %d products", len(products))
	return products, nil
}

func (uc *productUseCase) UpdateProduct(product *domain.Product) (err error) {
	defer func() { uc.record("update", err) }()

	if err := validateProduct(product); err != nil {
		uc.log.Warnf("Use Case: Rejected product for update: %v", err)
		return err
	}

	uc.log.Infof("Use Case: Attempting to update product ID %d", product.ID)
	if _, err := uc.productRepo.UpdateProduct(product); err != nil {
		uc.log.Warnf("Use Case: Repository failed to update product ID %d: %v", product.ID, err)
		return err
	}

	uc.log.Infof("Use Case: Product updated successfully for ID %d", product.ID)
	return nil
}

func (uc *productUseCase) DeleteProduct(product *domain.Product) (err error) {
	defer func() { uc.record("delete", err) }()

	if product == nil {
		uc.log.Warn("Use Case: Attempted delete without a product")
		return domain.InvalidProductError("Product data is required.")
	}

	uc.log.Infof("Use Case: Attempting to delete product ID %d", product.ID)
	if err := uc.productRepo.DeleteProduct(product.ID); err != nil {
		uc.log.Errorf("Use Case: Repository failed to delete product ID %d: %v", product.ID, err)
		return err
	}
	return nil
}

func (uc *productUseCase) record(operation string, err error) {
	if uc.recorder == nil {
		return
	}
	uc.recorder.RecordOperation(operation, resultOf(err))
}

func resultOf(err error) string {
	switch {
	case err == nil:
		return ResultOK
	case errors.Is(err, domain.ErrInvalidProduct):
		return ResultInvalid
	case errors.Is(err, domain.ErrProductNotFound):
		return ResultNotFound
	default:
		return ResultError
	}
}

func validateProduct(product *domain.Product) error {
	if product == nil {
		return domain.InvalidProductError("Product data is required.")
	}
	if strings.TrimSpace(product.SKU) == "" {
		return domain.InvalidProductError("SKU cannot be null or empty.")
	}
	if !product.Price.IsPositive() {
		return domain.InvalidProductError("Price must be greater than 0.")
	}
	return nil
}
