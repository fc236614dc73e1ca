package domain

// ProductRepository stores products in insertion order.
type ProductRepository interface {
	CreateProduct(product *Product) (*Product, error)
	GetProductByID(id int) (*Product, error)

	UpdateProduct(product *Product) (*Product, error)

	// DeleteProduct succeeds when no product has the given id.
	DeleteProduct(id int) error
	ListProducts() ([]Product, error)
}
