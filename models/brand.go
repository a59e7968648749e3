package models

import (
	"time"

	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

type Brand struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `json:"name" validate:"required"`
	Slug        string    `gorm:"uniqueIndex" json:"slug"`
	Description string    `json:"description"`
	Logo        string    `json:"logo"`
	IsActive    *bool     `gorm:"default:true" json:"is_active"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
	Products    []Product `gorm:"foreignKey:BrandID" json:"products,omitempty"`
}

func (b *Brand) BeforeSave(tx *gorm.DB) error {
	if b.Slug == "" {
		b.Slug = slug.Make(b.Name)
	}
	return nil
}
