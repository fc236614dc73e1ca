package repository

import (
	"sync"

	"product_service/internal/domain"

	"github.com/sirupsen/logrus"
)

type memoryProductRepository struct {
	mu       sync.RWMutex
	products []domain.Product
	nextID   int
	log      *logrus.Logger
}

// NewMemoryProductRepository returns an empty store whose first id is 1.
// Ids are never reused, even after deletion.
func NewMemoryProductRepository(logger *logrus.Logger) domain.ProductRepository {
	return &memoryProductRepository{
		products: []domain.Product{},
		nextID:   1,
		log:      logger,
	}
}

func (r *memoryProductRepository) CreateProduct(product *domain.Product) (*domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	product.ID = r.nextID
	r.nextID++
	r.products = append(r.products, *product)

	r.log.Infof("Product created successfully with ID: %d, SKU: %s", product.ID, product.SKU)
	stored := *product
	return &stored, nil
}

func (r *memoryProductRepository) GetProductByID(id int) (*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(id)
	if i < 0 {
		r.log.Debugf("Product with ID %d not found", id)
		return nil, domain.ProductNotFoundError(id)
	}
	product := r.products[i]
	return &product, nil
}

func (r *memoryProductRepository) UpdateProduct(product *domain.Product) (*domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(product.ID)
	if i < 0 {
		r.log.Warnf("Product with ID %d not found for update", product.ID)
		return nil, domain.ProductNotFoundError(product.ID)
	}

	existing := &r.products[i]
	existing.Description = product.Description
	existing.SKU = product.SKU
	existing.Price = product.Price

	r.log.Infof("Product updated successfully with ID: %d", existing.ID)
	updated := *existing
	return &updated, nil
}

func (r *memoryProductRepository) DeleteProduct(id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		r.log.Debugf("Delete of non-existent product ID %d ignored", id)
		return nil
	}
	r.products = append(r.products[:i], r.products[i+1:]...)

	r.log.Infof("Product deleted successfully with ID: %d", id)
	return nil
}

func (r *memoryProductRepository) ListProducts() ([]domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	products := make([]domain.Product, len(r.products))
	copy(products, r.products)

	r.log.Debugf("Retrieved %d products", len(products))
	return products, nil
}

// indexOf must be called with mu held.
func (r *memoryProductRepository) indexOf(id int) int {
	for i := range r.products {
		if r.products[i].ID == id {
			return i
		}
	}
	return -1
}
