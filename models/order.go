package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order statuses form a forward-only progression; cancelled is reachable from
// new only.
const (
	OrderStatusNew       = "new"
	OrderStatusPaid      = "paid"
	OrderStatusShipped   = "shipped"
	OrderStatusCompleted = "completed"
	OrderStatusCancelled = "cancelled"
)

var orderStatusRank = map[string]int{
	OrderStatusNew:       0,
	OrderStatusPaid:      1,
	OrderStatusShipped:   2,
	OrderStatusCompleted: 3,
}

// ValidStatusTransition reports whether an order may move from one status to
// another. Equal statuses are allowed (idempotent updates).
func ValidStatusTransition(from, to string) bool {
	if from == to {
		return true
	}
	if to == OrderStatusCancelled {
		return from == OrderStatusNew
	}
	fromRank, ok := orderStatusRank[from]
	if !ok {
		return false
	}
	toRank, ok := orderStatusRank[to]
	if !ok {
		return false
	}
	return toRank > fromRank
}

// Order is a frozen snapshot of a cart at checkout time. Status is the only
// field mutated after creation.
type Order struct {
	ID           uint            `gorm:"primaryKey" json:"id"`
	UserID       *uint           `json:"user_id,omitempty"`
	SessionToken string          `json:"session_token,omitempty" gorm:"default:null"`
	FirstName    string          `json:"first_name"`
	LastName     string          `json:"last_name"`
	Username     string          `json:"username,omitempty" gorm:"default:null"`
	Email        string          `json:"email,omitempty" gorm:"default:null"`
	Address      string          `json:"address"`
	Address2     string          `json:"address2,omitempty" gorm:"default:null"`
	Country      string          `json:"country"`
	State        string          `json:"state"`
	ZipCode      string          `json:"zip_code"`
	Total        decimal.Decimal `gorm:"type:decimal(10,2)" json:"total"`
	Status       string          `gorm:"default:new" json:"status"`
	CreatedAt    time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
	Items        []OrderItem     `gorm:"foreignKey:OrderID" json:"items"`
}

// OrderItem captures the product's price at order time. Later product price
// changes never touch it.
type OrderItem struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	OrderID   uint            `gorm:"index" json:"order_id"`
	ProductID uint            `json:"product_id"`
	Quantity  int             `json:"quantity" validate:"required,min=1"`
	Price     decimal.Decimal `gorm:"type:decimal(10,2)" json:"price"`
	Product   Product         `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

func (item *OrderItem) TotalPrice() decimal.Decimal {
	return item.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
}
