package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"velora/db"
	"velora/models"
)

// getOrCreateCart returns the single cart for the identity, creating one if
// none exists. FirstOrCreate against the unique owner index keeps concurrent
// first-touch from producing two carts.
func getOrCreateCart(ident Identity) (models.Cart, error) {
	var cart models.Cart
	var err error
	if ident.Authenticated() {
		err = db.DB.Where(models.Cart{UserID: ident.UserID}).FirstOrCreate(&cart).Error
	} else {
		token := ident.Token
		err = db.DB.Where(models.Cart{SessionToken: &token}).FirstOrCreate(&cart).Error
	}
	return cart, err
}

// claimCart hands a token-owned cart to the user at login so the basket
// survives authentication. A cart the user already owns wins; the token cart
// is left behind in that case.
func claimCart(token string, userID uint) error {
	var anon models.Cart
	if err := db.DB.Where("session_token = ?", token).First(&anon).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil
		}
		return err
	}

	var owned models.Cart
	err := db.DB.Where("user_id = ?", userID).First(&owned).Error
	if err == nil {
		return nil
	}
	if err != gorm.ErrRecordNotFound {
		return err
	}

	anon.UserID = &userID
	anon.SessionToken = nil
	return db.DB.Save(&anon).Error
}

// loadCart reloads a cart with its items and their products for totals.
func loadCart(cartID uint) (models.Cart, error) {
	var cart models.Cart
	err := db.DB.Preload("Items.Product").First(&cart, cartID).Error
	return cart, err
}

// GET /cart/
func cartDetail(c *fiber.Ctx) error {
	ident, err := ensureIdentity(c)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to resolve session",
		})
	}

	cart, err := getOrCreateCart(ident)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get cart",
		})
	}

	cart, err = loadCart(cart.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get cart",
		})
	}

	return c.JSON(cartResponse(&cart))
}

// POST /cart/add/:product_id
func addToCart(c *fiber.Ctx) error {
	productID, err := c.ParamsInt("product_id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid product id",
		})
	}

	// Inactive products are not addable
	var product models.Product
	if err := db.DB.Where("is_active = ?", true).First(&product, productID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Product not found",
		})
	}

	ident, err := ensureIdentity(c)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to resolve session",
		})
	}

	cart, err := getOrCreateCart(ident)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get cart",
		})
	}

	// Existing line increments, otherwise a new line starts at quantity 1
	var item models.CartItem
	err = db.DB.Where("cart_id = ? AND product_id = ?", cart.ID, product.ID).First(&item).Error
	if err == gorm.ErrRecordNotFound {
		item = models.CartItem{CartID: cart.ID, ProductID: product.ID, Quantity: 1}
		if err := db.DB.Create(&item).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to add item to cart",
			})
		}
	} else if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch cart item",
		})
	} else {
		item.Quantity++
		if err := db.DB.Save(&item).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to update cart item",
			})
		}
	}

	cart, err = loadCart(cart.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get cart",
		})
	}

	if isAJAX(c) {
		return c.JSON(fiber.Map{
			"success":    true,
			"cart_count": cart.TotalItems(),
		})
	}
	return c.Redirect("/cart/")
}

// POST /cart/remove/:item_id
func removeFromCart(c *fiber.Ctx) error {
	itemID, err := c.ParamsInt("item_id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid item id",
		})
	}

	ident, err := ensureIdentity(c)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to resolve session",
		})
	}

	cart, err := getOrCreateCart(ident)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get cart",
		})
	}

	// The item must belong to the caller's cart
	var item models.CartItem
	if err := db.DB.Where("id = ? AND cart_id = ?", itemID, cart.ID).First(&item).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Cart item not found",
		})
	}

	if err := db.DB.Delete(&item).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to remove cart item",
		})
	}

	cart, err = loadCart(cart.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get cart",
		})
	}

	if isAJAX(c) {
		return c.JSON(fiber.Map{
			"success":    true,
			"cart_count": cart.TotalItems(),
			"cart_total": cart.TotalPrice(),
			"removed":    true,
			"item_id":    itemID,
		})
	}
	return c.Redirect("/cart/")
}

// UpdateCartItemRequest is the tagged payload for POST /cart/update/:item_id.
type UpdateCartItemRequest struct {
	Action   string `json:"action"`
	Quantity *int   `json:"quantity"`
}

// POST /cart/update/:item_id
//
// Unknown or malformed actions mutate nothing; the handler still answers the
// current cart state with success: true.
func updateCartItem(c *fiber.Ctx) error {
	itemID, err := c.ParamsInt("item_id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid item id",
		})
	}

	ident, err := ensureIdentity(c)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to resolve session",
		})
	}

	cart, err := getOrCreateCart(ident)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get cart",
		})
	}

	var item models.CartItem
	if err := db.DB.Preload("Product").Where("id = ? AND cart_id = ?", itemID, cart.ID).First(&item).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Cart item not found",
		})
	}

	var req UpdateCartItemRequest
	_ = c.BodyParser(&req) // a malformed body behaves like no action

	removed := false
	switch req.Action {
	case "increment":
		item.Quantity++
		if err := db.DB.Save(&item).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to update cart item",
			})
		}
	case "decrement":
		if item.Quantity > 1 {
			item.Quantity--
			if err := db.DB.Save(&item).Error; err != nil {
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
					"error": "Failed to update cart item",
				})
			}
		} else {
			if err := db.DB.Delete(&item).Error; err != nil {
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
					"error": "Failed to remove cart item",
				})
			}
			removed = true
		}
	case "set":
		if req.Quantity != nil {
			if *req.Quantity <= 0 {
				if err := db.DB.Delete(&item).Error; err != nil {
					return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
						"error": "Failed to remove cart item",
					})
				}
				removed = true
			} else {
				item.Quantity = *req.Quantity
				if err := db.DB.Save(&item).Error; err != nil {
					return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
						"error": "Failed to update cart item",
					})
				}
			}
		}
	}

	cart, err = loadCart(cart.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get cart",
		})
	}

	quantity := 0
	itemTotal := decimal.Zero
	if !removed {
		var fresh models.CartItem
		if err := db.DB.Preload("Product").First(&fresh, item.ID).Error; err == nil {
			quantity = fresh.Quantity
			itemTotal = fresh.TotalPrice()
		}
	}

	return c.JSON(fiber.Map{
		"success":    true,
		"removed":    removed,
		"quantity":   quantity,
		"item_total": itemTotal,
		"cart_total": cart.TotalPrice(),
		"cart_count": cart.TotalItems(),
		"item_id":    itemID,
	})
}
