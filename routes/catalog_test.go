package routes

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"velora/db"
	"velora/models"
)

func TestListProductsHidesInactive(t *testing.T) {
	app := setupApp(t)
	seedProduct(t, "Visible Coat", "100.00")
	hidden := seedProduct(t, "Hidden Coat", "100.00")
	require.NoError(t, db.DB.Model(&models.Product{}).Where("id = ?", hidden.ID).
		Update("is_active", false).Error)

	cl := newClient(t, app)
	resp, body := cl.get("/products/")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	products, ok := body["products"].([]any)
	require.True(t, ok)
	require.Len(t, products, 1)
	assert.Equal(t, "Visible Coat", products[0].(map[string]any)["name"])
}

func TestProductDetailBySlug(t *testing.T) {
	app := setupApp(t)
	product := seedProduct(t, "Harris Tweed Blazer", "240.00")
	require.NoError(t, db.DB.Create(&models.ProductImage{
		ProductID: product.ID, Image: "/uploads/back.jpg", Position: 2,
	}).Error)
	require.NoError(t, db.DB.Create(&models.ProductImage{
		ProductID: product.ID, Image: "/uploads/front.jpg", Position: 1,
	}).Error)

	cl := newClient(t, app)
	resp, body := cl.get("/products/harris-tweed-blazer")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	detail, ok := body["product"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Harris Tweed Blazer", detail["name"])

	// Primary image first, gallery by position
	images, ok := body["all_images"].([]any)
	require.True(t, ok)
	require.Len(t, images, 3)
	assert.Equal(t, product.Image, images[0])
	assert.Equal(t, "/uploads/front.jpg", images[1])
	assert.Equal(t, "/uploads/back.jpg", images[2])
}

func TestInactiveProductDetailIsNotFound(t *testing.T) {
	app := setupApp(t)
	product := seedProduct(t, "Archived Parka", "180.00")
	require.NoError(t, db.DB.Model(&models.Product{}).Where("id = ?", product.ID).
		Update("is_active", false).Error)

	cl := newClient(t, app)
	resp, _ := cl.get("/products/archived-parka")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCreateProductNormalizesNameAndSlug(t *testing.T) {
	app := setupApp(t)
	var category models.Category
	require.NoError(t, db.DB.Where(models.Category{Name: "Outerwear"}).FirstOrCreate(&category).Error)

	cl := newClient(t, app)
	resp, body := cl.post("/api/products/", map[string]any{
		"name":        "waxed field jacket",
		"price":       "150.00",
		"image":       "/uploads/field.jpg",
		"category_id": category.ID,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "Waxed Field Jacket", body["name"])
	assert.Equal(t, "waxed-field-jacket", body["slug"])
}

func TestCreateProductRequiresExistingCategory(t *testing.T) {
	app := setupApp(t)
	cl := newClient(t, app)
	resp, _ := cl.post("/api/products/", map[string]any{
		"name":        "Orphan Jacket",
		"price":       "90.00",
		"image":       "/uploads/orphan.jpg",
		"category_id": 9999,
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestDeleteOrderedProductIsConflict(t *testing.T) {
	app := setupApp(t)
	product := seedProduct(t, "Merino Sweater", "95.00")

	cl := newClient(t, app)
	cl.post(addURL(product.ID), nil)
	resp, _ := cl.post("/cart/checkout", shippingPayload())
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, _ = cl.do(http.MethodDelete, fmt.Sprintf("/api/products/%d", product.ID), nil, true)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	var still models.Product
	assert.NoError(t, db.DB.First(&still, product.ID).Error)
}

func TestDeleteProductCascadesCartLines(t *testing.T) {
	app := setupApp(t)
	product := seedProduct(t, "Chore Jacket", "110.00")

	cl := newClient(t, app)
	cl.post(addURL(product.ID), nil)

	resp, _ := cl.do(http.MethodDelete, fmt.Sprintf("/api/products/%d", product.ID), nil, true)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var items int64
	require.NoError(t, db.DB.Model(&models.CartItem{}).Count(&items).Error)
	assert.EqualValues(t, 0, items)

	_, body := cl.get("/cart/")
	assert.EqualValues(t, 0, body["cart_count"])
}

func TestDeleteCategoryCascadesProducts(t *testing.T) {
	app := setupApp(t)
	product := seedProduct(t, "Flannel Shirt", "40.00")

	cl := newClient(t, app)
	resp, _ := cl.do(http.MethodDelete, fmt.Sprintf("/api/categories/%d", product.CategoryID), nil, true)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var products int64
	require.NoError(t, db.DB.Model(&models.Product{}).Count(&products).Error)
	assert.EqualValues(t, 0, products)
}

func TestDeleteCategoryWithOrderedProductIsConflict(t *testing.T) {
	app := setupApp(t)
	product := seedProduct(t, "Corduroy Trouser", "75.00")

	cl := newClient(t, app)
	cl.post(addURL(product.ID), nil)
	resp, _ := cl.post("/cart/checkout", shippingPayload())
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, _ = cl.do(http.MethodDelete, fmt.Sprintf("/api/categories/%d", product.CategoryID), nil, true)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestDeleteBrandDetachesProducts(t *testing.T) {
	app := setupApp(t)
	product := seedProduct(t, "Branded Tee", "25.00")

	brand := models.Brand{Name: "Northline"}
	require.NoError(t, db.DB.Create(&brand).Error)
	require.NoError(t, db.DB.Model(&models.Product{}).Where("id = ?", product.ID).
		Update("brand_id", brand.ID).Error)

	cl := newClient(t, app)
	resp, _ := cl.do(http.MethodDelete, fmt.Sprintf("/api/brands/%d", brand.ID), nil, true)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var fresh models.Product
	require.NoError(t, db.DB.First(&fresh, product.ID).Error)
	assert.Nil(t, fresh.BrandID)
}

func TestBrandProductsBySlug(t *testing.T) {
	app := setupApp(t)
	product := seedProduct(t, "Deck Jacket", "130.00")

	brand := models.Brand{Name: "Harbour Supply"}
	require.NoError(t, db.DB.Create(&brand).Error)
	require.NoError(t, db.DB.Model(&models.Product{}).Where("id = ?", product.ID).
		Update("brand_id", brand.ID).Error)

	cl := newClient(t, app)
	resp, body := cl.get("/products/brand/harbour-supply")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	products, ok := body["products"].([]any)
	require.True(t, ok)
	assert.Len(t, products, 1)

	resp, _ = cl.get("/products/brand/no-such-brand")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestAddProductSizeValidatesChoice(t *testing.T) {
	app := setupApp(t)
	product := seedProduct(t, "Rugby Shirt", "65.00")
	cl := newClient(t, app)

	resp, _ := cl.post(fmt.Sprintf("/api/products/%d/sizes", product.ID), map[string]any{
		"name": "M",
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, _ = cl.post(fmt.Sprintf("/api/products/%d/sizes", product.ID), map[string]any{
		"name": "XS",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
