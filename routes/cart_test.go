package routes

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"velora/db"
	"velora/models"
)

func TestAddSameProductTwiceIncrementsOneLine(t *testing.T) {
	app := setupApp(t)
	product := seedProduct(t, "Linen Shirt", "10.00")
	cl := newClient(t, app)

	resp, body := cl.post(addURL(product.ID), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["success"])
	assert.EqualValues(t, 1, body["cart_count"])

	resp, body = cl.post(addURL(product.ID), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.EqualValues(t, 2, body["cart_count"])

	var items []models.CartItem
	require.NoError(t, db.DB.Find(&items).Error)
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
}

func TestAddInactiveProductIsNotFound(t *testing.T) {
	app := setupApp(t)
	product := seedProduct(t, "Retired Coat", "80.00")
	require.NoError(t, db.DB.Model(&models.Product{}).Where("id = ?", product.ID).
		Update("is_active", false).Error)

	cl := newClient(t, app)
	resp, _ := cl.post(addURL(product.ID), nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestAddMissingProductIsNotFound(t *testing.T) {
	app := setupApp(t)
	cl := newClient(t, app)
	resp, _ := cl.post("/cart/add/9999", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCartsAreIsolatedPerSession(t *testing.T) {
	app := setupApp(t)
	product := seedProduct(t, "Silk Scarf", "15.00")

	first := newClient(t, app)
	first.post(addURL(product.ID), nil)

	second := newClient(t, app)
	_, body := second.get("/cart/")
	assert.EqualValues(t, 0, body["cart_count"])

	_, body = first.get("/cart/")
	assert.EqualValues(t, 1, body["cart_count"])
}

func TestRemoveFromCart(t *testing.T) {
	app := setupApp(t)
	product := seedProduct(t, "Wool Hat", "20.00")
	cl := newClient(t, app)
	cl.post(addURL(product.ID), nil)

	var item models.CartItem
	require.NoError(t, db.DB.First(&item).Error)

	resp, body := cl.post(removeURL(item.ID), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["removed"])
	assert.EqualValues(t, 0, body["cart_count"])
	assert.True(t, jsonDecimal(t, body["cart_total"]).IsZero())
}

func TestRemoveForeignItemIsNotFound(t *testing.T) {
	app := setupApp(t)
	product := seedProduct(t, "Denim Jacket", "60.00")

	owner := newClient(t, app)
	owner.post(addURL(product.ID), nil)

	var item models.CartItem
	require.NoError(t, db.DB.First(&item).Error)

	stranger := newClient(t, app)
	resp, _ := stranger.post(removeURL(item.ID), nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	// The owner's line is untouched
	require.NoError(t, db.DB.First(&item, item.ID).Error)
}

func TestUpdateIncrementAndSet(t *testing.T) {
	app := setupApp(t)
	product := seedProduct(t, "Canvas Tote", "12.00")
	cl := newClient(t, app)
	cl.post(addURL(product.ID), nil)

	var item models.CartItem
	require.NoError(t, db.DB.First(&item).Error)

	_, body := cl.post(updateURL(item.ID), map[string]any{"action": "increment"})
	assert.EqualValues(t, 2, body["quantity"])
	assert.Equal(t, false, body["removed"])
	assert.True(t, jsonDecimal(t, body["item_total"]).Equal(mustDecimal("24.00")))

	_, body = cl.post(updateURL(item.ID), map[string]any{"action": "set", "quantity": 5})
	assert.EqualValues(t, 5, body["quantity"])
	assert.True(t, jsonDecimal(t, body["cart_total"]).Equal(mustDecimal("60.00")))
}

func TestDecrementAtOneDeletesLine(t *testing.T) {
	app := setupApp(t)
	product := seedProduct(t, "Knit Beanie", "18.00")
	cl := newClient(t, app)
	cl.post(addURL(product.ID), nil)
	cl.post(addURL(product.ID), nil)

	var item models.CartItem
	require.NoError(t, db.DB.First(&item).Error)

	// 2 -> 1
	_, body := cl.post(updateURL(item.ID), map[string]any{"action": "decrement"})
	assert.Equal(t, false, body["removed"])
	assert.EqualValues(t, 1, body["quantity"])

	// 1 -> removed, never zero
	_, body = cl.post(updateURL(item.ID), map[string]any{"action": "decrement"})
	assert.Equal(t, true, body["removed"])
	assert.EqualValues(t, 0, body["quantity"])

	var count int64
	require.NoError(t, db.DB.Model(&models.CartItem{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestSetNonPositiveQuantityDeletesLine(t *testing.T) {
	app := setupApp(t)
	product := seedProduct(t, "Leather Belt", "25.00")
	cl := newClient(t, app)
	cl.post(addURL(product.ID), nil)

	var item models.CartItem
	require.NoError(t, db.DB.First(&item).Error)

	_, body := cl.post(updateURL(item.ID), map[string]any{"action": "set", "quantity": 0})
	assert.Equal(t, true, body["removed"])
	assert.EqualValues(t, 0, body["cart_count"])
}

func TestUnknownActionIsIgnored(t *testing.T) {
	app := setupApp(t)
	product := seedProduct(t, "Suede Loafer", "95.00")
	cl := newClient(t, app)
	cl.post(addURL(product.ID), nil)

	var item models.CartItem
	require.NoError(t, db.DB.First(&item).Error)

	// Unknown action: no mutation, current state answered with success
	resp, body := cl.post(updateURL(item.ID), map[string]any{"action": "explode"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, false, body["removed"])
	assert.EqualValues(t, 1, body["quantity"])

	require.NoError(t, db.DB.First(&item, item.ID).Error)
	assert.Equal(t, 1, item.Quantity)
}
