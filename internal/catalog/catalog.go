package catalog

import (
	"strings"

	pkgerrors "github.com/Henry881-hack/corries-shop/pkg/errors"
)

// Product is immutable reference data. Price keeps the display formatting
// from the merchandising source; parse it with pkg/money when doing math.
type Product struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Image    string `json:"image"`
	Price    string `json:"price"`
	Category string `json:"category"`
}

// Catalog is the read-only product lookup the rest of the system depends on.
type Catalog struct {
	products []Product
	byID     map[string]Product
}

// New builds a catalog from the provided products; Default() serves the
// built-in merchandising set.
func New(products []Product) *Catalog {
	byID := make(map[string]Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	return &Catalog{
		products: append([]Product(nil), products...),
		byID:     byID,
	}
}

// Default returns a catalog over the built-in product set.
func Default() *Catalog {
	return New(defaultProducts)
}

// ByID resolves a product or fails with a not-found error.
func (c *Catalog) ByID(id string) (Product, error) {
	if product, ok := c.byID[id]; ok {
		return product, nil
	}
	return Product{}, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
}

// List returns every product in merchandising order.
func (c *Catalog) List() []Product {
	return append([]Product(nil), c.products...)
}

// ByCategory returns the products filed under the given category.
func (c *Catalog) ByCategory(category string) []Product {
	needle := strings.ToLower(strings.TrimSpace(category))
	var out []Product
	for _, p := range c.products {
		if strings.ToLower(p.Category) == needle {
			out = append(out, p)
		}
	}
	return out
}

// Search matches the query against product names and categories,
// case-insensitive substring.
func (c *Catalog) Search(query string) []Product {
	needle := strings.ToLower(strings.TrimSpace(query))
	if needle == "" {
		return nil
	}
	var out []Product
	for _, p := range c.products {
		if strings.Contains(strings.ToLower(p.Name), needle) ||
			strings.Contains(strings.ToLower(p.Category), needle) {
			out = append(out, p)
		}
	}
	return out
}
