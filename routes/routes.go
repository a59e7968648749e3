package routes

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"velora/models"
)

var validate = validator.New()

// CartItemResponse is a cart line with its live line total.
type CartItemResponse struct {
	ID        uint            `json:"id"`
	ProductID uint            `json:"product_id"`
	Quantity  int             `json:"quantity"`
	ItemTotal decimal.Decimal `json:"item_total"`
	Product   models.Product  `json:"product"`
}

// CartResponse shapes GET /cart/ and the checkout summary.
type CartResponse struct {
	CartID    uint               `json:"cart_id"`
	Items     []CartItemResponse `json:"items"`
	CartCount int                `json:"cart_count"`
	CartTotal decimal.Decimal    `json:"cart_total"`
}

type OrderItemResponse struct {
	ID        uint            `json:"id"`
	ProductID uint            `json:"product_id"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	ItemTotal decimal.Decimal `json:"item_total"`
}

type OrderResponse struct {
	ID        uint                `json:"id"`
	FirstName string              `json:"first_name"`
	LastName  string              `json:"last_name"`
	Email     string              `json:"email,omitempty"`
	Address   string              `json:"address"`
	Address2  string              `json:"address2,omitempty"`
	Country   string              `json:"country"`
	State     string              `json:"state"`
	ZipCode   string              `json:"zip_code"`
	Total     decimal.Decimal     `json:"total"`
	Status    string              `json:"status"`
	Items     []OrderItemResponse `json:"items"`
}

func SetupRoutes(app *fiber.App) {
	// Order-event feed for back-office clients
	app.Get("/ws", orderFeedHandler())

	// Image upload route
	app.Post("/upload", uploadImage)

	// Marketing pages
	app.Get("/", home)
	app.Get("/journal/", listJournalPosts)
	app.Get("/journal/:slug", getJournalPost)
	app.Post("/newsletter/", subscribeNewsletter)

	// Account routes
	accounts := app.Group("/accounts")
	accounts.Post("/signup", signup)
	accounts.Post("/login", login)
	accounts.Get("/logout", logout)
	accounts.Post("/logout", logout)
	accounts.Get("/my-account", myAccount)
	accounts.Get("/edit-account", editAccountForm)
	accounts.Post("/edit-account", editAccount)

	// Cart and checkout routes
	cart := app.Group("/cart")
	cart.Get("/", cartDetail)
	cart.Post("/add/:product_id", addToCart)
	cart.Post("/remove/:item_id", removeFromCart)
	cart.Post("/update/:item_id", updateCartItem)
	cart.Get("/checkout", checkoutSummary)
	cart.Post("/checkout", checkout)
	cart.Get("/checkout/success/:order_id", checkoutSuccess)

	// Storefront catalog routes. Fixed prefixes must register before the
	// slug catch-all.
	products := app.Group("/products")
	products.Get("/", listProducts)
	products.Get("/category/:id", categoryProducts)
	products.Get("/collection/:slug", collectionProducts)
	products.Get("/brand/:slug", brandProducts)
	products.Get("/:slug", productDetail)

	// Management API
	api := app.Group("/api")

	apiProducts := api.Group("/products")
	apiProducts.Post("/", createProduct)
	apiProducts.Put("/:id", updateProduct)
	apiProducts.Delete("/:id", deleteProduct)
	apiProducts.Post("/:id/images", addProductImage)
	apiProducts.Delete("/:id/images/:image_id", deleteProductImage)
	apiProducts.Post("/:id/sizes", addProductSize)
	apiProducts.Delete("/:id/sizes/:size_id", deleteProductSize)

	categories := api.Group("/categories")
	categories.Post("/", createCategory)
	categories.Put("/:id", updateCategory)
	categories.Delete("/:id", deleteCategory)

	brands := api.Group("/brands")
	brands.Post("/", createBrand)
	brands.Put("/:id", updateBrand)
	brands.Delete("/:id", deleteBrand)

	collections := api.Group("/collections")
	collections.Post("/", createCollection)
	collections.Put("/:id", updateCollection)
	collections.Delete("/:id", deleteCollection)

	banners := api.Group("/banners")
	banners.Post("/", createBanner)
	banners.Get("/", getAllBanners)
	banners.Put("/:id", updateBanner)
	banners.Delete("/:id", deleteBanner)

	edits := api.Group("/edits")
	edits.Post("/", createEdit)
	edits.Get("/", getAllEdits)
	edits.Put("/:id", updateEdit)
	edits.Delete("/:id", deleteEdit)

	journal := api.Group("/journal")
	journal.Post("/", createJournalPost)
	journal.Put("/:id", updateJournalPost)
	journal.Delete("/:id", deleteJournalPost)

	homeProducts := api.Group("/home-products")
	homeProducts.Post("/", createHomePageProduct)
	homeProducts.Put("/:id", updateHomePageProduct)
	homeProducts.Delete("/:id", deleteHomePageProduct)

	// Order routes
	orders := api.Group("/orders")
	orders.Get("/", getAllOrders)
	orders.Get("/:id", getOrder)
	orders.Put("/:id", updateOrder)
	orders.Delete("/:id", deleteOrder)
}

// isAJAX reports whether the caller asked for a JSON response instead of the
// redirect flow.
func isAJAX(c *fiber.Ctx) bool {
	return c.Get("X-Requested-With") == "XMLHttpRequest"
}

func cartResponse(cart *models.Cart) CartResponse {
	resp := CartResponse{
		CartID:    cart.ID,
		Items:     make([]CartItemResponse, 0, len(cart.Items)),
		CartCount: cart.TotalItems(),
		CartTotal: cart.TotalPrice(),
	}
	for _, item := range cart.Items {
		resp.Items = append(resp.Items, CartItemResponse{
			ID:        item.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			ItemTotal: item.TotalPrice(),
			Product:   item.Product,
		})
	}
	return resp
}

func orderResponse(order *models.Order) OrderResponse {
	resp := OrderResponse{
		ID:        order.ID,
		FirstName: order.FirstName,
		LastName:  order.LastName,
		Email:     order.Email,
		Address:   order.Address,
		Address2:  order.Address2,
		Country:   order.Country,
		State:     order.State,
		ZipCode:   order.ZipCode,
		Total:     order.Total,
		Status:    order.Status,
	}
	for _, item := range order.Items {
		resp.Items = append(resp.Items, OrderItemResponse{
			ID:        item.ID,
			ProductID: item.ProductID,
			Name:      item.Product.Name,
			Quantity:  item.Quantity,
			Price:     item.Price,
			ItemTotal: item.TotalPrice(),
		})
	}
	return resp
}
