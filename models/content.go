package models

import (
	"time"

	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

type HeroBanner struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	Title           string    `json:"title" validate:"required"`
	Subtitle        string    `json:"subtitle"`
	BackgroundImage string    `json:"background_image" validate:"required"`
	ButtonText      string    `gorm:"default:'Shop Now'" json:"button_text"`
	ButtonURL       string    `gorm:"default:'/products/'" json:"button_url"`
	IsActive        *bool     `gorm:"default:true" json:"is_active"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// EditCategories are the curated-edit display groupings.
var EditCategories = []string{"bestsellers", "new_arrivals", "seasonal", "trending", "editor_pick", "limited_edition"}

type CuratedEdit struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Title          string    `json:"title" validate:"required"`
	Subtitle       string    `json:"subtitle"`
	Description    string    `json:"description"`
	Image          string    `json:"image" validate:"required"`
	SecondaryImage string    `json:"secondary_image"`
	Category       string    `gorm:"default:editor_pick" json:"category" validate:"omitempty,oneof=bestsellers new_arrivals seasonal trending editor_pick limited_edition"`
	DisplayOrder   uint      `gorm:"default:0" json:"display_order"`
	ButtonText     string    `gorm:"default:'Shop Now'" json:"button_text"`
	ButtonURL      string    `json:"button_url"`
	IsFeatured     bool      `gorm:"default:false" json:"is_featured"`
	IsActive       *bool     `gorm:"default:true" json:"is_active"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updated_at"`
	Products       []Product `gorm:"many2many:curated_edit_products" json:"products,omitempty"`
}

// GetButtonURL returns the stored URL or one derived from the category.
func (e *CuratedEdit) GetButtonURL() string {
	if e.ButtonURL != "" {
		return e.ButtonURL
	}
	switch e.Category {
	case "bestsellers":
		return "/products/?sort=bestsellers"
	case "new_arrivals":
		return "/products/?sort=newest"
	case "seasonal":
		return "/products/?season=current"
	default:
		return "/products/"
	}
}

type JournalPost struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Title      string    `json:"title" validate:"required"`
	Excerpt    string    `json:"excerpt"`
	Content    string    `json:"content"`
	Image      string    `json:"image"`
	Category   string    `json:"category" validate:"omitempty,oneof=style_guide sustainability trends accessories history seasonal"`
	Slug       string    `gorm:"uniqueIndex" json:"slug"`
	IsFeatured bool      `gorm:"default:false" json:"is_featured"`
	IsActive   *bool     `gorm:"default:true" json:"is_active"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (post *JournalPost) BeforeSave(tx *gorm.DB) error {
	if post.Slug == "" {
		post.Slug = slug.Make(post.Title)
	}
	return nil
}

type HomePageProduct struct {
	ID                 uint      `gorm:"primaryKey" json:"id"`
	ProductID          uint      `gorm:"uniqueIndex" json:"product_id"`
	Product            Product   `gorm:"foreignKey:ProductID" json:"product"`
	DisplayTitle       string    `json:"display_title"`
	DisplayDescription string    `json:"display_description"`
	DisplayOrder       uint      `gorm:"default:0" json:"display_order"`
	IsFeatured         bool      `gorm:"default:false" json:"is_featured"`
	IsActive           *bool     `gorm:"default:true" json:"is_active"`
	CreatedAt          time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt          time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (h *HomePageProduct) GetDisplayTitle() string {
	if h.DisplayTitle != "" {
		return h.DisplayTitle
	}
	return h.Product.Name
}

func (h *HomePageProduct) GetDisplayDescription() string {
	if h.DisplayDescription != "" {
		return h.DisplayDescription
	}
	return h.Product.Description
}

type NewsletterSubscription struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Email        string    `gorm:"uniqueIndex" json:"email" validate:"required,email"`
	IsActive     *bool     `gorm:"default:true" json:"is_active"`
	SubscribedAt time.Time `gorm:"autoCreateTime" json:"subscribed_at"`
}
