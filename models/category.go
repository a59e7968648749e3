package models

import (
	"time"

	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

type Category struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `json:"name" validate:"required"`
	Slug        string    `gorm:"uniqueIndex" json:"slug"`
	Description string    `json:"description"`
	Image       string    `json:"image"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
	Products    []Product `gorm:"foreignKey:CategoryID" json:"products,omitempty"` // One-to-many relationship
}

func (cat *Category) BeforeSave(tx *gorm.DB) error {
	cat.Name = titleWords(cat.Name)
	if cat.Slug == "" {
		cat.Slug = slug.Make(cat.Name)
	}
	return nil
}
