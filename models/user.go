package models

import "time"

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Email     string    `gorm:"uniqueIndex" json:"email"`
	Password  string    `json:"-"` // bcrypt hash
	FirstName string    `json:"first_name" gorm:"default:null"`
	LastName  string    `json:"last_name" gorm:"default:null"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
	Orders    []Order   `gorm:"foreignKey:UserID" json:"orders,omitempty"`
}

// Session carries the visitor identity across requests. Anonymous visitors get
// a token with no user; login binds the token to a user.
type Session struct {
	Token     string    `gorm:"primaryKey;size:40" json:"token"`
	UserID    *uint     `json:"user_id,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}
