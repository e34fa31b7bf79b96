package store

import (
	"fmt"
	"strconv"
	"sync"

	"aurum-store/internal/models"
)

// Catalog owns the product and category collections and keeps their
// name-based linkage consistent. All exported operations are atomic.
type Catalog struct {
	mu         sync.RWMutex
	products   []models.Product
	categories []models.Category
}

// NewCatalog creates a catalog seeded with the given products and categories
func NewCatalog(products []models.Product, categories []models.Category) *Catalog {
	c := &Catalog{
		products:   make([]models.Product, len(products)),
		categories: make([]models.Category, len(categories)),
	}
	copy(c.products, products)
	copy(c.categories, categories)
	return c
}

// Products returns a copy of all products
func (c *Catalog) Products() []models.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]models.Product, len(c.products))
	copy(out, c.products)
	return out
}

// Product retrieves a product by ID
func (c *Catalog) Product(id int) (models.Product, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, p := range c.products {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Product{}, fmt.Errorf("product %d: %w", id, ErrNotFound)
}

// AddProduct assigns the next integer id and appends the product. The
// category name is not validated here; the admin control plane guards it.
func (c *Catalog) AddProduct(data models.ProductData) models.Product {
	c.mu.Lock()
	defer c.mu.Unlock()

	maxID := 0
	for _, p := range c.products {
		if p.ID > maxID {
			maxID = p.ID
		}
	}

	product := models.Product{
		ID:          maxID + 1,
		Name:        data.Name,
		Description: data.Description,
		Price:       data.Price,
		Image:       data.Image,
		Category:    data.Category,
		Stock:       data.Stock,
	}
	c.products = append(c.products, product)
	return product
}

// UpdateProduct replaces the record matching the product's id
func (c *Catalog) UpdateProduct(product models.Product) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.products {
		if c.products[i].ID == product.ID {
			c.products[i] = product
			return nil
		}
	}
	return fmt.Errorf("product %d: %w", product.ID, ErrNotFound)
}

// DeleteProduct removes a product by id; absent ids are a no-op
func (c *Catalog) DeleteProduct(id int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.products {
		if c.products[i].ID == id {
			c.products = append(c.products[:i], c.products[i+1:]...)
			return
		}
	}
}

// AdjustStock applies max(0, stock+delta) to the product's stock level.
// Stock never goes negative regardless of the delta.
func (c *Catalog) AdjustStock(id, delta int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.products {
		if c.products[i].ID == id {
			next := c.products[i].Stock + delta
			if next < 0 {
				next = 0
			}
			c.products[i].Stock = next
			return nil
		}
	}
	return fmt.Errorf("product %d: %w", id, ErrNotFound)
}

// Categories returns a copy of all categories
func (c *Catalog) Categories() []models.Category {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]models.Category, len(c.categories))
	copy(out, c.categories)
	return out
}

// Category retrieves a category by id
func (c *Catalog) Category(id string) (models.Category, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, cat := range c.categories {
		if cat.ID == id {
			return cat, nil
		}
	}
	return models.Category{}, fmt.Errorf("category %s: %w", id, ErrNotFound)
}

// HasCategoryName reports whether any category carries the given name
func (c *Catalog) HasCategoryName(name string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, cat := range c.categories {
		if cat.Name == name {
			return true
		}
	}
	return false
}

// AddCategory assigns the next numeric-string id and appends the category.
// Duplicate names are not rejected here.
func (c *Catalog) AddCategory(name string) models.Category {
	c.mu.Lock()
	defer c.mu.Unlock()

	maxID := 0
	for _, cat := range c.categories {
		if n, err := strconv.Atoi(cat.ID); err == nil && n > maxID {
			maxID = n
		}
	}

	category := models.Category{ID: strconv.Itoa(maxID + 1), Name: name}
	c.categories = append(c.categories, category)
	return category
}

// RenameCategory renames the category and rewrites every product whose
// category equals the pre-rename name. Both steps run inside one critical
// section against the same snapshot, so products are never rewritten
// against an already-updated name.
func (c *Catalog) RenameCategory(id, newName string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	idx := -1
	for i := range c.categories {
		if c.categories[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("category %s: %w", id, ErrNotFound)
	}

	oldName := c.categories[idx].Name
	c.categories[idx].Name = newName

	for i := range c.products {
		if c.products[i].Category == oldName {
			c.products[i].Category = newName
		}
	}
	return nil
}

// DeleteCategory removes a category unless any product still references
// its name, in which case a ReferencedError carries the blocking count.
func (c *Catalog) DeleteCategory(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	idx := -1
	for i := range c.categories {
		if c.categories[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("category %s: %w", id, ErrNotFound)
	}

	name := c.categories[idx].Name
	count := 0
	for _, p := range c.products {
		if p.Category == name {
			count++
		}
	}
	if count > 0 {
		return &ReferencedError{Category: name, ProductCount: count}
	}

	c.categories = append(c.categories[:idx], c.categories[idx+1:]...)
	return nil
}

// ProductCountByCategory counts products referencing the category name
func (c *Catalog) ProductCountByCategory(name string) int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	count := 0
	for _, p := range c.products {
		if p.Category == name {
			count++
		}
	}
	return count
}
