package models

import (
	"sort"
	"time"

	"github.com/gosimple/slug"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Product struct {
	ID           uint            `gorm:"primaryKey" json:"id"`
	Name         string          `json:"name" validate:"required"`
	Slug         string          `gorm:"uniqueIndex" json:"slug"`
	Description  string          `json:"description"`
	Price        decimal.Decimal `gorm:"type:decimal(10,2)" json:"price"`
	Image        string          `json:"image"`
	IsActive     *bool           `gorm:"default:true" json:"is_active"` // pointer so an explicit false survives the column default
	CreatedAt    time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
	CategoryID   uint            `json:"category_id"`                 // Foreign key to Category, required
	CollectionID *uint           `json:"collection_id"`               // Optional
	BrandID      *uint           `json:"brand_id"`                    // Optional
	Category     Category        `gorm:"foreignKey:CategoryID" json:"category" validate:"-"`
	Collection   *Collection     `gorm:"foreignKey:CollectionID" json:"collection,omitempty"`
	Brand        *Brand          `gorm:"foreignKey:BrandID" json:"brand,omitempty"`
	Images       []ProductImage  `gorm:"foreignKey:ProductID" json:"images,omitempty"`
	Sizes        []Size          `gorm:"foreignKey:ProductID" json:"sizes,omitempty"`
}

func (p *Product) BeforeSave(tx *gorm.DB) error {
	p.Name = titleWords(p.Name)
	if p.Slug == "" {
		p.Slug = slug.Make(p.Name)
	}
	return nil
}

// AllImages returns the primary image (if set) followed by gallery images
// ordered by position then id.
func (p *Product) AllImages() []string {
	gallery := make([]ProductImage, len(p.Images))
	copy(gallery, p.Images)
	sort.Slice(gallery, func(i, j int) bool {
		if gallery[i].Position != gallery[j].Position {
			return gallery[i].Position < gallery[j].Position
		}
		return gallery[i].ID < gallery[j].ID
	})

	var images []string
	if p.Image != "" {
		images = append(images, p.Image)
	}
	for _, img := range gallery {
		images = append(images, img.Image)
	}
	return images
}

type ProductImage struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	ProductID uint   `gorm:"index" json:"product_id"`
	Image     string `json:"image" validate:"required"`
	AltText   string `json:"alt_text"`
	Position  uint   `gorm:"default:0" json:"position"`
}

// SizeChoices are the size codes a product variant may carry.
var SizeChoices = []string{"S", "M", "L", "XL", "XXL", "Free Size"}

type Size struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	ProductID uint   `gorm:"index" json:"product_id"`
	Name      string `json:"name" validate:"required,oneof=S M L XL XXL 'Free Size'"`
}
