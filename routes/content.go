package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"velora/db"
	"velora/models"
)

// GET /
func home(c *fiber.Ctx) error {
	var banners []models.HeroBanner
	if err := db.DB.Where("is_active = ?", true).Order("created_at desc").Find(&banners).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get banners",
		})
	}

	var homeProducts []models.HomePageProduct
	if err := db.DB.Preload("Product").
		Where("is_active = ?", true).
		Order("display_order, is_featured desc").
		Limit(12).
		Find(&homeProducts).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get home products",
		})
	}

	var edits []models.CuratedEdit
	if err := db.DB.Preload("Products").
		Where("is_active = ?", true).
		Order("display_order, is_featured desc, created_at desc").
		Find(&edits).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get curated edits",
		})
	}

	type homeProductCard struct {
		models.HomePageProduct
		Title       string `json:"title"`
		Description string `json:"description"`
	}
	cards := make([]homeProductCard, 0, len(homeProducts))
	for _, hp := range homeProducts {
		cards = append(cards, homeProductCard{
			HomePageProduct: hp,
			Title:           hp.GetDisplayTitle(),
			Description:     hp.GetDisplayDescription(),
		})
	}

	return c.JSON(fiber.Map{
		"banners":       banners,
		"home_products": cards,
		"edits":         edits,
	})
}

// GET /journal/
func listJournalPosts(c *fiber.Ctx) error {
	var posts []models.JournalPost
	if err := db.DB.Where("is_active = ?", true).Order("created_at desc").Find(&posts).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get journal posts",
		})
	}
	return c.JSON(posts)
}

// GET /journal/:slug
func getJournalPost(c *fiber.Ctx) error {
	slug := c.Params("slug")

	var post models.JournalPost
	if err := db.DB.Where("slug = ? AND is_active = ?", slug, true).First(&post).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Journal post not found",
		})
	}
	return c.JSON(post)
}

type NewsletterRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// POST /newsletter/
func subscribeNewsletter(c *fiber.Ctx) error {
	var req NewsletterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}

	if err := validate.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "A valid email is required",
		})
	}

	var existing models.NewsletterSubscription
	if err := db.DB.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Email is already subscribed",
		})
	} else if err != gorm.ErrRecordNotFound {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to check subscription",
		})
	}

	sub := models.NewsletterSubscription{Email: req.Email}
	if err := db.DB.Create(&sub).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to subscribe",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Subscribed successfully",
	})
}

// Banner handlers

// POST /api/banners
func createBanner(c *fiber.Ctx) error {
	banner := new(models.HeroBanner)
	if err := c.BodyParser(banner); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}

	if err := validate.Struct(banner); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Title and background image are required",
		})
	}

	if err := db.DB.Create(&banner).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create banner",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(banner)
}

// GET /api/banners
func getAllBanners(c *fiber.Ctx) error {
	var banners []models.HeroBanner
	if err := db.DB.Find(&banners).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get banners",
		})
	}
	return c.JSON(banners)
}

// PUT /api/banners/:id
func updateBanner(c *fiber.Ctx) error {
	id := c.Params("id")
	banner := new(models.HeroBanner)

	if err := c.BodyParser(banner); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}

	var existing models.HeroBanner
	if err := db.DB.First(&existing, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Banner not found",
		})
	}

	if err := db.DB.Model(&existing).Updates(banner).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update banner",
		})
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Banner updated successfully",
		"data":    existing,
	})
}

// DELETE /api/banners/:id
func deleteBanner(c *fiber.Ctx) error {
	id := c.Params("id")

	var banner models.HeroBanner
	if err := db.DB.First(&banner, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Banner not found",
		})
	}

	if err := db.DB.Delete(&banner).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete banner",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Banner deleted successfully",
	})
}

// Curated edit handlers

// EditRequest carries the edit fields plus the featured product ids.
type EditRequest struct {
	models.CuratedEdit
	ProductIDs []uint `json:"product_ids"`
}

// POST /api/edits
func createEdit(c *fiber.Ctx) error {
	var req EditRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}

	if err := validate.Struct(&req.CuratedEdit); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Title and image are required",
		})
	}

	edit := req.CuratedEdit
	edit.Products = nil
	if len(req.ProductIDs) > 0 {
		var products []models.Product
		if err := db.DB.Find(&products, req.ProductIDs).Error; err != nil || len(products) != len(req.ProductIDs) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "One or more products not found",
			})
		}
		edit.Products = products
	}

	if err := db.DB.Create(&edit).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create curated edit",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(edit)
}

// GET /api/edits
func getAllEdits(c *fiber.Ctx) error {
	var edits []models.CuratedEdit
	if err := db.DB.Preload("Products").
		Order("display_order, is_featured desc, created_at desc").
		Find(&edits).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get curated edits",
		})
	}
	return c.JSON(edits)
}

// PUT /api/edits/:id
func updateEdit(c *fiber.Ctx) error {
	id := c.Params("id")

	var req EditRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}

	var existing models.CuratedEdit
	if err := db.DB.First(&existing, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Curated edit not found",
		})
	}

	update := req.CuratedEdit
	update.Products = nil
	if err := db.DB.Model(&existing).Updates(update).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update curated edit",
		})
	}

	if req.ProductIDs != nil {
		var products []models.Product
		if len(req.ProductIDs) > 0 {
			if err := db.DB.Find(&products, req.ProductIDs).Error; err != nil || len(products) != len(req.ProductIDs) {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
					"error": "One or more products not found",
				})
			}
		}
		if err := db.DB.Model(&existing).Association("Products").Replace(products); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to update edit products",
			})
		}
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Curated edit updated successfully",
	})
}

// DELETE /api/edits/:id
func deleteEdit(c *fiber.Ctx) error {
	id := c.Params("id")

	var edit models.CuratedEdit
	if err := db.DB.First(&edit, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Curated edit not found",
		})
	}

	if err := db.DB.Model(&edit).Association("Products").Clear(); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to detach edit products",
		})
	}

	if err := db.DB.Delete(&edit).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete curated edit",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Curated edit deleted successfully",
	})
}

// Journal handlers

// POST /api/journal
func createJournalPost(c *fiber.Ctx) error {
	post := new(models.JournalPost)
	if err := c.BodyParser(post); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}

	if err := validate.Struct(post); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Title field is required",
		})
	}

	if err := db.DB.Create(&post).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create journal post",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(post)
}

// PUT /api/journal/:id
func updateJournalPost(c *fiber.Ctx) error {
	id := c.Params("id")
	post := new(models.JournalPost)

	if err := c.BodyParser(post); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}

	var existing models.JournalPost
	if err := db.DB.First(&existing, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Journal post not found",
		})
	}

	if err := db.DB.Model(&existing).Updates(post).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update journal post",
		})
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Journal post updated successfully",
	})
}

// DELETE /api/journal/:id
func deleteJournalPost(c *fiber.Ctx) error {
	id := c.Params("id")

	var post models.JournalPost
	if err := db.DB.First(&post, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Journal post not found",
		})
	}

	if err := db.DB.Delete(&post).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete journal post",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Journal post deleted successfully",
	})
}

// Home page product handlers

// POST /api/home-products
func createHomePageProduct(c *fiber.Ctx) error {
	hp := new(models.HomePageProduct)
	if err := c.BodyParser(hp); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}

	var product models.Product
	if err := db.DB.First(&product, hp.ProductID).Error; err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Product not found",
		})
	}

	var existing models.HomePageProduct
	if err := db.DB.Where("product_id = ?", hp.ProductID).First(&existing).Error; err == nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Product is already featured on the home page",
		})
	} else if err != gorm.ErrRecordNotFound {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to check home page products",
		})
	}

	if err := db.DB.Create(&hp).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create home page product",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(hp)
}

// PUT /api/home-products/:id
func updateHomePageProduct(c *fiber.Ctx) error {
	id := c.Params("id")
	hp := new(models.HomePageProduct)

	if err := c.BodyParser(hp); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}

	var existing models.HomePageProduct
	if err := db.DB.First(&existing, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Home page product not found",
		})
	}

	if err := db.DB.Model(&existing).Updates(hp).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update home page product",
		})
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Home page product updated successfully",
	})
}

// DELETE /api/home-products/:id
func deleteHomePageProduct(c *fiber.Ctx) error {
	id := c.Params("id")

	var hp models.HomePageProduct
	if err := db.DB.First(&hp, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Home page product not found",
		})
	}

	if err := db.DB.Delete(&hp).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete home page product",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Home page product deleted successfully",
	})
}
