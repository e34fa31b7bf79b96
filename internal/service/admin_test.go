package service

import (
	"testing"
	"time"

	"aurum-store/internal/models"
	"aurum-store/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func adminFixture() (*store.Catalog, *store.ServiceAreas, *store.Ledger, *AdminService) {
	catalog := testCatalog()
	areas := store.NewServiceAreas([]string{"411001", "416001"})
	ledger := store.NewLedger(nil)
	return catalog, areas, ledger, NewAdminService(catalog, areas, ledger)
}

func TestAdminAddProductValidation(t *testing.T) {
	_, _, _, admin := adminFixture()

	_, err := admin.AddProduct(models.ProductData{Name: "Ghost Item", Category: "NoSuchCategory", Stock: 1})
	var valErr *ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, "category", valErr.Field)

	_, err = admin.AddProduct(models.ProductData{Name: "", Category: "Watches"})
	require.ErrorAs(t, err, &valErr)

	_, err = admin.AddProduct(models.ProductData{Name: "Cheap Watch", Category: "Watches", Price: -1})
	require.ErrorAs(t, err, &valErr)

	p, err := admin.AddProduct(models.ProductData{Name: "Dress Watch", Category: "Watches", Price: 900, Stock: 4})
	require.NoError(t, err)
	assert.Equal(t, 4, p.ID)
}

func TestAdminAddCategoryRejectsDuplicates(t *testing.T) {
	_, _, _, admin := adminFixture()

	_, err := admin.AddCategory("Watches")
	var valErr *ValidationError
	require.ErrorAs(t, err, &valErr)

	_, err = admin.AddCategory("   ")
	require.ErrorAs(t, err, &valErr)

	cat, err := admin.AddCategory("Jewelry")
	require.NoError(t, err)
	assert.Equal(t, "Jewelry", cat.Name)
}

func TestAdminDeleteCategoryGuardScenario(t *testing.T) {
	// Category "Watches" (id 1) has one product; deletion must fail with
	// a blocking count of 1 and leave the taxonomy unchanged.
	catalog, _, _, admin := adminFixture()

	err := admin.DeleteCategory("1")
	var refErr *store.ReferencedError
	require.ErrorAs(t, err, &refErr)
	assert.Equal(t, 1, refErr.ProductCount)
	assert.Len(t, catalog.Categories(), 3)
}

func TestAdminRenameCategoryCascades(t *testing.T) {
	catalog, _, _, admin := adminFixture()

	require.NoError(t, admin.RenameCategory("1", "Timepieces"))

	p, err := catalog.Product(1)
	require.NoError(t, err)
	assert.Equal(t, "Timepieces", p.Category)

	other, err := catalog.Product(2)
	require.NoError(t, err)
	assert.Equal(t, "Fragrance", other.Category)
}

func TestAdminAddPincodeRegionPolicy(t *testing.T) {
	_, areas, _, admin := adminFixture()

	added, err := admin.AddPincode("Pune", "411038")
	require.NoError(t, err)
	assert.True(t, added)
	assert.True(t, areas.IsServiceable("411038"))

	// Wrong prefix for the region
	_, err = admin.AddPincode("Pune", "416002")
	var regionErr *InvalidRegionError
	require.ErrorAs(t, err, &regionErr)
	assert.Equal(t, "411", regionErr.Prefix)
	assert.False(t, areas.IsServiceable("416002"))

	_, err = admin.AddPincode("Kolhapur", "411039")
	require.ErrorAs(t, err, &regionErr)

	// Format and region validation
	var valErr *ValidationError
	_, err = admin.AddPincode("Pune", "4110")
	require.ErrorAs(t, err, &valErr)
	_, err = admin.AddPincode("Pune", "41100a")
	require.ErrorAs(t, err, &valErr)
	_, err = admin.AddPincode("Mumbai", "400001")
	require.ErrorAs(t, err, &valErr)
}

func TestAdminAddPincodeDuplicateReported(t *testing.T) {
	_, areas, _, admin := adminFixture()

	added, err := admin.AddPincode("Pune", "411001")
	require.NoError(t, err)
	assert.False(t, added, "duplicate add reports no effect")
	assert.Equal(t, 2, areas.Len())
}

func TestAdminRemovePincodeIdempotent(t *testing.T) {
	_, _, _, admin := adminFixture()

	assert.True(t, admin.RemovePincode("416001"))
	assert.False(t, admin.RemovePincode("416001"))
}

func TestAdminPincodesByRegion(t *testing.T) {
	_, _, _, admin := adminFixture()

	pune, err := admin.PincodesByRegion("Pune")
	require.NoError(t, err)
	assert.Equal(t, []string{"411001"}, pune)

	kolhapur, err := admin.PincodesByRegion("Kolhapur")
	require.NoError(t, err)
	assert.Equal(t, []string{"416001"}, kolhapur)

	_, err = admin.PincodesByRegion("Mumbai")
	assert.Error(t, err)
}

func TestAdminAdjustStockFloor(t *testing.T) {
	catalog, _, _, admin := adminFixture()

	require.NoError(t, admin.AdjustStock(1, -50))
	p, err := catalog.Product(1)
	require.NoError(t, err)
	assert.Equal(t, 0, p.Stock)

	require.NoError(t, admin.AdjustStock(1, 3))
	p, _ = catalog.Product(1)
	assert.Equal(t, 3, p.Stock)
}

func TestAdminReports(t *testing.T) {
	_, _, ledger, admin := adminFixture()

	base := time.Now()
	require.NoError(t, ledger.Append(models.Order{
		ID: "ORD-AAAA", Phone: "111", CustomerName: "A", TotalAmount: 100,
		Status: models.OrderStatusPending, Date: base.Add(-time.Hour),
	}))
	require.NoError(t, ledger.Append(models.Order{
		ID: "ORD-BBBB", Phone: "111", CustomerName: "A", TotalAmount: 200,
		Status: models.OrderStatusDelivered, Date: base,
	}))

	assert.Equal(t, 300, admin.TotalRevenue(), "revenue includes every status")

	customers := admin.UniqueCustomers()
	require.Len(t, customers, 1)
	assert.Equal(t, 2, customers[0].OrderCount)
	assert.Equal(t, base, customers[0].LastOrderDate)
}

func TestAdminUpdateOrderStatus(t *testing.T) {
	_, _, ledger, admin := adminFixture()
	require.NoError(t, ledger.Append(models.Order{ID: "ORD-AAAA", Status: models.OrderStatusPending, Date: time.Now()}))

	require.NoError(t, admin.UpdateOrderStatus("ORD-AAAA", models.OrderStatusDelivered))
	got, err := ledger.Order("ORD-AAAA")
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusDelivered, got.Status)

	assert.ErrorIs(t, admin.UpdateOrderStatus("ORD-ZZZZ", models.OrderStatusConfirmed), store.ErrNotFound)
}
