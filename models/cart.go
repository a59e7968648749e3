package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Cart belongs to exactly one identity: an authenticated user or an anonymous
// session token, never both. The unique indexes enforce one cart per identity
// even under concurrent first touch.
type Cart struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	UserID       *uint      `gorm:"uniqueIndex" json:"user_id,omitempty"`
	SessionToken *string    `gorm:"uniqueIndex" json:"session_token,omitempty"`
	CreatedAt    time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
	Items        []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"items"`
}

// TotalItems is the sum of line quantities.
func (cart *Cart) TotalItems() int {
	total := 0
	for _, item := range cart.Items {
		total += item.Quantity
	}
	return total
}

// TotalPrice sums unit price x quantity from the current product prices.
// Cart totals are live; only order items freeze prices.
func (cart *Cart) TotalPrice() decimal.Decimal {
	total := decimal.Zero
	for _, item := range cart.Items {
		total = total.Add(item.TotalPrice())
	}
	return total
}

type CartItem struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CartID    uint      `gorm:"index" json:"cart_id"`
	ProductID uint      `json:"product_id"`
	Quantity  int       `gorm:"default:1" json:"quantity"` // never zero; zero deletes the row
	AddedAt   time.Time `gorm:"autoCreateTime" json:"added_at"`
	Product   Product   `gorm:"foreignKey:ProductID" json:"product"`
}

func (item *CartItem) TotalPrice() decimal.Decimal {
	return item.Product.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
}
