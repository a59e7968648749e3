package models

import (
	"time"

	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

type Collection struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `json:"name" validate:"required"`
	Slug        string    `gorm:"uniqueIndex" json:"slug"`
	Description string    `json:"description"`
	Image       string    `json:"image"`
	IsActive    *bool     `gorm:"default:true" json:"is_active"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
	Products    []Product `gorm:"foreignKey:CollectionID" json:"products,omitempty"`
}

func (col *Collection) BeforeSave(tx *gorm.DB) error {
	if col.Slug == "" {
		col.Slug = slug.Make(col.Name)
	}
	return nil
}
