package routes

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"velora/db"
	"velora/models"
)

// CheckoutRequest is the tagged payload for POST /cart/checkout. Username,
// email and address2 are optional.
type CheckoutRequest struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	Username  string `json:"username"`
	Email     string `json:"email" validate:"omitempty,email"`
	Address   string `json:"address" validate:"required"`
	Address2  string `json:"address2"`
	Country   string `json:"country" validate:"required"`
	State     string `json:"state" validate:"required"`
	Zip       string `json:"zip" validate:"required"`
}

// GET /cart/checkout
func checkoutSummary(c *fiber.Ctx) error {
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

// POST /cart/checkout
//
// Materializes an order from the cart in a single transaction: the order row,
// one item per cart line with the product price frozen, and the cart cleared.
// A validation failure leaves the cart untouched.
func checkout(c *fiber.Ctx) error {
	var req CheckoutRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}

	if err := validate.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Please fill all required fields",
			"details": err.Error(),
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

	cart, err = loadCart(cart.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get cart",
		})
	}

	order := models.Order{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Username:  req.Username,
		Email:     req.Email,
		Address:   req.Address,
		Address2:  req.Address2,
		Country:   req.Country,
		State:     req.State,
		ZipCode:   req.Zip,
		Total:     cart.TotalPrice(),
		Status:    models.OrderStatusNew,
	}
	if ident.Authenticated() {
		order.UserID = ident.UserID
	} else {
		order.SessionToken = ident.Token
	}

	tx := db.DB.Begin()
	if err := tx.Create(&order).Error; err != nil {
		tx.Rollback()
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create order",
		})
	}

	for _, item := range cart.Items {
		orderItem := models.OrderItem{
			OrderID:   order.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Product.Price, // frozen at checkout time
		}
		if err := tx.Create(&orderItem).Error; err != nil {
			tx.Rollback()
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to create order items",
			})
		}
	}

	if err := tx.Where("cart_id = ?", cart.ID).Delete(&models.CartItem{}).Error; err != nil {
		tx.Rollback()
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to clear cart",
		})
	}

	if err := tx.Commit().Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to commit transaction",
		})
	}

	broadcastOrderCreated(&order)

	if isAJAX(c) {
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"success":  true,
			"order_id": order.ID,
		})
	}
	return c.Redirect(fmt.Sprintf("/cart/checkout/success/%d", order.ID))
}

// GET /cart/checkout/success/:order_id
func checkoutSuccess(c *fiber.Ctx) error {
	id := c.Params("order_id")
	var order models.Order

	if err := db.DB.Preload("Items.Product").First(&order, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Order not found",
		})
	}

	return c.JSON(orderResponse(&order))
}

// GET /api/orders
func getAllOrders(c *fiber.Ctx) error {
	var orders []models.Order

	if err := db.DB.Preload("Items.Product").Order("created_at desc").Find(&orders).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get orders",
		})
	}

	responses := make([]OrderResponse, 0, len(orders))
	for i := range orders {
		responses = append(responses, orderResponse(&orders[i]))
	}
	return c.JSON(responses)
}

// GET /api/orders/:id
func getOrder(c *fiber.Ctx) error {
	id := c.Params("id")
	var order models.Order

	if err := db.DB.Preload("Items.Product").First(&order, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Order not found",
		})
	}

	return c.JSON(orderResponse(&order))
}

// UpdateOrderRequest only exposes status; orders are frozen snapshots.
type UpdateOrderRequest struct {
	Status string `json:"status" validate:"required,oneof=new paid shipped completed cancelled"`
}

// PUT /api/orders/:id
func updateOrder(c *fiber.Ctx) error {
	id := c.Params("id")

	var req UpdateOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Validation failed",
			"details": err.Error(),
		})
	}

	var order models.Order
	if err := db.DB.First(&order, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Order not found",
		})
	}

	if !models.ValidStatusTransition(order.Status, req.Status) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid status transition from " + order.Status + " to " + req.Status,
		})
	}

	order.Status = req.Status
	if err := db.DB.Save(&order).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update order",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"status":  order.Status,
	})
}

// DELETE /api/orders/:id
func deleteOrder(c *fiber.Ctx) error {
	id := c.Params("id")

	var order models.Order
	if err := db.DB.First(&order, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Order not found",
		})
	}

	tx := db.DB.Begin()
	if err := tx.Where("order_id = ?", order.ID).Delete(&models.OrderItem{}).Error; err != nil {
		tx.Rollback()
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete order items",
		})
	}
	if err := tx.Delete(&order).Error; err != nil {
		tx.Rollback()
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete order",
		})
	}
	if err := tx.Commit().Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to commit transaction",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Order deleted successfully",
	})
}
