package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"velora/db"
	"velora/models"
)

// setupApp wires a fresh in-memory database and a fiber app with the full
// route table.
func setupApp(t *testing.T) *fiber.App {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.Migrate(gdb))
	db.DB = gdb

	app := fiber.New()
	SetupRoutes(app)
	return app
}

// client carries cookies between requests the way a browser would.
type client struct {
	t       *testing.T
	app     *fiber.App
	cookies map[string]string
}

func newClient(t *testing.T, app *fiber.App) *client {
	return &client{t: t, app: app, cookies: make(map[string]string)}
}

func (cl *client) doRaw(method, target string, body any, ajax bool) (*http.Response, []byte) {
	cl.t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(cl.t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if ajax {
		req.Header.Set("X-Requested-With", "XMLHttpRequest")
	}
	for name, value := range cl.cookies {
		req.AddCookie(&http.Cookie{Name: name, Value: value})
	}

	resp, err := cl.app.Test(req, -1)
	require.NoError(cl.t, err)

	for _, c := range resp.Cookies() {
		if c.MaxAge < 0 || c.Value == "" {
			delete(cl.cookies, c.Name)
			continue
		}
		cl.cookies[c.Name] = c.Value
	}

	raw, err := io.ReadAll(resp.Body)
	require.NoError(cl.t, err)
	return resp, raw
}

func (cl *client) do(method, target string, body any, ajax bool) (*http.Response, map[string]any) {
	cl.t.Helper()
	resp, raw := cl.doRaw(method, target, body, ajax)
	payload := map[string]any{}
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &payload)
	}
	return resp, payload
}

// getList fetches an endpoint that answers a JSON array.
func (cl *client) getList(target string) (*http.Response, []any) {
	cl.t.Helper()
	resp, raw := cl.doRaw(http.MethodGet, target, nil, true)
	var payload []any
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &payload)
	}
	return resp, payload
}

func (cl *client) get(target string) (*http.Response, map[string]any) {
	return cl.do(http.MethodGet, target, nil, true)
}

func (cl *client) post(target string, body any) (*http.Response, map[string]any) {
	return cl.do(http.MethodPost, target, body, true)
}

func (cl *client) put(target string, body any) (*http.Response, map[string]any) {
	return cl.do(http.MethodPut, target, body, true)
}

// seedProduct creates a category (once per name) and an active product.
func seedProduct(t *testing.T, name, price string) models.Product {
	t.Helper()

	var category models.Category
	require.NoError(t, db.DB.Where(models.Category{Name: "Apparel"}).FirstOrCreate(&category).Error)

	product := models.Product{
		Name:       name,
		Price:      decimal.RequireFromString(price),
		Image:      "/uploads/" + name + ".jpg",
		CategoryID: category.ID,
	}
	require.NoError(t, db.DB.Create(&product).Error)
	return product
}

// jsonDecimal reads a decimal that fiber marshalled into the response.
func jsonDecimal(t *testing.T, v any) decimal.Decimal {
	t.Helper()
	s, ok := v.(string)
	require.True(t, ok, "expected decimal string, got %T", v)
	return decimal.RequireFromString(s)
}

func addURL(productID uint) string {
	return fmt.Sprintf("/cart/add/%d", productID)
}

func removeURL(itemID uint) string {
	return fmt.Sprintf("/cart/remove/%d", itemID)
}

func updateURL(itemID uint) string {
	return fmt.Sprintf("/cart/update/%d", itemID)
}

func mustDecimal(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func boolPtr(b bool) *bool {
	return &b
}

func cartItemCount(t *testing.T, cartID uint) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.DB.Model(&models.CartItem{}).Where("cart_id = ?", cartID).Count(&n).Error)
	return n
}
