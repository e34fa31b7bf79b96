package service

import (
	"fmt"
	"strings"

	"aurum-store/internal/models"
	"aurum-store/internal/store"
	"aurum-store/internal/util"

	"go.uber.org/zap"
)

// Regions served by the store, keyed by name with their pincode prefix.
// The registry itself is region-agnostic; the prefix check lives here.
var regionPrefixes = map[string]string{
	"Pune":     "411",
	"Kolhapur": "416",
}

// AdminService is the guarded mutation facade over the catalog, the
// service-area registry and the order ledger, plus the read-model
// projections the dashboard consumes.
type AdminService struct {
	catalog *store.Catalog
	areas   *store.ServiceAreas
	ledger  *store.Ledger
	logger  *zap.Logger
}

// NewAdminService creates the admin control plane
func NewAdminService(catalog *store.Catalog, areas *store.ServiceAreas, ledger *store.Ledger) *AdminService {
	return &AdminService{
		catalog: catalog,
		areas:   areas,
		ledger:  ledger,
		logger:  util.GetLogger(),
	}
}

// AddProduct validates the record and appends it to the catalog. Unlike
// the raw store, the control plane rejects unknown category names so the
// name-based linkage cannot dangle through this path.
func (a *AdminService) AddProduct(data models.ProductData) (models.Product, error) {
	if err := a.validateProductData(data); err != nil {
		return models.Product{}, err
	}

	product := a.catalog.AddProduct(data)
	a.logger.Info("Product added",
		zap.Int("product_id", product.ID),
		zap.String("name", product.Name))
	return product, nil
}

// UpdateProduct replaces a full product record
func (a *AdminService) UpdateProduct(product models.Product) error {
	if err := a.validateProductData(models.ProductData{
		Name:     product.Name,
		Price:    product.Price,
		Category: product.Category,
		Stock:    product.Stock,
	}); err != nil {
		return err
	}
	return a.catalog.UpdateProduct(product)
}

// DeleteProduct removes a product by id
func (a *AdminService) DeleteProduct(id int) {
	a.catalog.DeleteProduct(id)
	a.logger.Info("Product deleted", zap.Int("product_id", id))
}

// AdjustStock applies a stock delta, floored at zero, for the dashboard
// +/- controls
func (a *AdminService) AdjustStock(id, delta int) error {
	return a.catalog.AdjustStock(id, delta)
}

// AddCategory appends a category after rejecting blank and duplicate
// names. Duplicates would make the name-based product linkage ambiguous.
func (a *AdminService) AddCategory(name string) (models.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Category{}, &ValidationError{Field: "name", Reason: "must not be blank"}
	}
	if a.catalog.HasCategoryName(name) {
		return models.Category{}, &ValidationError{Field: "name", Reason: fmt.Sprintf("category %q already exists", name)}
	}

	category := a.catalog.AddCategory(name)
	a.logger.Info("Category added",
		zap.String("category_id", category.ID),
		zap.String("name", name))
	return category, nil
}

// RenameCategory renames a category, cascading to every product that
// referenced the old name
func (a *AdminService) RenameCategory(id, newName string) error {
	newName = strings.TrimSpace(newName)
	if newName == "" {
		return &ValidationError{Field: "name", Reason: "must not be blank"}
	}
	if err := a.catalog.RenameCategory(id, newName); err != nil {
		return err
	}
	a.logger.Info("Category renamed",
		zap.String("category_id", id),
		zap.String("new_name", newName))
	return nil
}

// DeleteCategory removes a category; a ReferencedError surfaces when
// products still use it
func (a *AdminService) DeleteCategory(id string) error {
	if err := a.catalog.DeleteCategory(id); err != nil {
		return err
	}
	a.logger.Info("Category deleted", zap.String("category_id", id))
	return nil
}

// AddPincode registers a serviceable pincode under a region after the
// policy checks: six digits, and the region's prefix. It returns false
// without error when the code was already registered.
func (a *AdminService) AddPincode(region, code string) (bool, error) {
	prefix, ok := regionPrefixes[region]
	if !ok {
		return false, &ValidationError{Field: "region", Reason: fmt.Sprintf("unknown region %q", region)}
	}
	if len(code) != 6 || strings.TrimLeft(code, "0123456789") != "" {
		return false, &ValidationError{Field: "pincode", Reason: "must be exactly 6 digits"}
	}
	if !strings.HasPrefix(code, prefix) {
		return false, &InvalidRegionError{Region: region, Prefix: prefix, Code: code}
	}

	added := a.areas.Add(code)
	if added {
		a.logger.Info("Pincode added",
			zap.String("region", region),
			zap.String("pincode", code))
	}
	return added, nil
}

// RemovePincode deletes a pincode, reporting whether it was present
func (a *AdminService) RemovePincode(code string) bool {
	removed := a.areas.Remove(code)
	if removed {
		a.logger.Info("Pincode removed", zap.String("pincode", code))
	}
	return removed
}

// Pincodes returns all serviceable pincodes
func (a *AdminService) Pincodes() []string {
	return a.areas.List()
}

// PincodesByRegion filters the registry down to one region's prefix
func (a *AdminService) PincodesByRegion(region string) ([]string, error) {
	prefix, ok := regionPrefixes[region]
	if !ok {
		return nil, &ValidationError{Field: "region", Reason: fmt.Sprintf("unknown region %q", region)}
	}

	var out []string
	for _, code := range a.areas.List() {
		if strings.HasPrefix(code, prefix) {
			out = append(out, code)
		}
	}
	return out, nil
}

// Orders returns the full ledger, most recent first
func (a *AdminService) Orders() []models.Order {
	return a.ledger.Orders()
}

// UpdateOrderStatus assigns a new status to an order
func (a *AdminService) UpdateOrderStatus(id, status string) error {
	if err := a.ledger.UpdateStatus(id, status); err != nil {
		return err
	}
	a.logger.Info("Order status updated",
		zap.String("order_id", id),
		zap.String("status", status))
	return nil
}

// TotalRevenue sums order totals across every status
func (a *AdminService) TotalRevenue() int {
	return a.ledger.TotalRevenue()
}

// UniqueCustomers is the by-phone customer projection, recomputed from
// the ledger on every call
func (a *AdminService) UniqueCustomers() []models.Customer {
	return a.ledger.Customers()
}

func (a *AdminService) validateProductData(data models.ProductData) error {
	if strings.TrimSpace(data.Name) == "" {
		return &ValidationError{Field: "name", Reason: "must not be blank"}
	}
	if data.Price < 0 {
		return &ValidationError{Field: "price", Reason: "must not be negative"}
	}
	if data.Stock < 0 {
		return &ValidationError{Field: "stock", Reason: "must not be negative"}
	}
	if !a.catalog.HasCategoryName(data.Category) {
		return &ValidationError{Field: "category", Reason: fmt.Sprintf("unknown category %q", data.Category)}
	}
	return nil
}
