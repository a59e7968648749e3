package routes

import (
	"github.com/gofiber/fiber/v2"

	"velora/db"
	"velora/models"
)

// GET /products/
func listProducts(c *fiber.Ctx) error {
	var products []models.Product
	if err := db.DB.Preload("Category").Preload("Brand").Preload("Collection").
		Where("is_active = ?", true).Find(&products).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get products",
		})
	}

	var categories []models.Category
	if err := db.DB.Find(&categories).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get categories",
		})
	}

	return c.JSON(fiber.Map{
		"products":   products,
		"categories": categories,
	})
}

// GET /products/category/:id
func categoryProducts(c *fiber.Ctx) error {
	id := c.Params("id")

	var category models.Category
	if err := db.DB.First(&category, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Category not found",
		})
	}

	var products []models.Product
	if err := db.DB.Preload("Brand").Preload("Collection").
		Where("category_id = ? AND is_active = ?", category.ID, true).
		Find(&products).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get products",
		})
	}

	return c.JSON(fiber.Map{
		"category": category,
		"products": products,
	})
}

// GET /products/collection/:slug
func collectionProducts(c *fiber.Ctx) error {
	slug := c.Params("slug")

	var collection models.Collection
	if err := db.DB.Where("slug = ? AND is_active = ?", slug, true).First(&collection).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Collection not found",
		})
	}

	var products []models.Product
	if err := db.DB.Preload("Category").Preload("Brand").
		Where("collection_id = ? AND is_active = ?", collection.ID, true).
		Find(&products).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get products",
		})
	}

	return c.JSON(fiber.Map{
		"collection": collection,
		"products":   products,
	})
}

// GET /products/brand/:slug
func brandProducts(c *fiber.Ctx) error {
	slug := c.Params("slug")

	var brand models.Brand
	if err := db.DB.Where("slug = ? AND is_active = ?", slug, true).First(&brand).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Brand not found",
		})
	}

	var products []models.Product
	if err := db.DB.Preload("Category").Preload("Collection").
		Where("brand_id = ? AND is_active = ?", brand.ID, true).
		Find(&products).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get products",
		})
	}

	return c.JSON(fiber.Map{
		"brand":    brand,
		"products": products,
	})
}

// GET /products/:slug
func productDetail(c *fiber.Ctx) error {
	slug := c.Params("slug")

	var product models.Product
	if err := db.DB.Preload("Category").Preload("Brand").Preload("Collection").
		Preload("Images").Preload("Sizes").
		Where("slug = ? AND is_active = ?", slug, true).
		First(&product).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Product not found",
		})
	}

	return c.JSON(fiber.Map{
		"product":    product,
		"all_images": product.AllImages(),
	})
}

// Product handlers

// POST /api/products
func createProduct(c *fiber.Ctx) error {
	product := new(models.Product)
	if err := c.BodyParser(product); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}

	if err := validate.Struct(product); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Name field is required",
		})
	}

	// Category is required
	var category models.Category
	if err := db.DB.First(&category, product.CategoryID).Error; err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Category not found",
		})
	}

	if product.BrandID != nil {
		var brand models.Brand
		if err := db.DB.First(&brand, *product.BrandID).Error; err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Brand not found",
			})
		}
	}
	if product.CollectionID != nil {
		var collection models.Collection
		if err := db.DB.First(&collection, *product.CollectionID).Error; err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Collection not found",
			})
		}
	}

	product.Images = nil
	product.Sizes = nil

	if err := db.DB.Create(&product).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create product",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(product)
}

// PUT /api/products/:id
func updateProduct(c *fiber.Ctx) error {
	id := c.Params("id")
	product := new(models.Product)

	if err := c.BodyParser(product); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}

	var existing models.Product
	if err := db.DB.First(&existing, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Product not found",
		})
	}

	if product.CategoryID != 0 {
		var category models.Category
		if err := db.DB.First(&category, product.CategoryID).Error; err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Category not found",
			})
		}
	}

	product.Images = nil
	product.Sizes = nil

	if err := db.DB.Model(&existing).Updates(product).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update product",
		})
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Product updated successfully",
	})
}

// DELETE /api/products/:id
//
// A product referenced by any order item is never deletable; cart lines
// holding it go with it.
func deleteProduct(c *fiber.Ctx) error {
	id := c.Params("id")

	var product models.Product
	if err := db.DB.First(&product, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Product not found",
		})
	}

	var refs int64
	if err := db.DB.Model(&models.OrderItem{}).Where("product_id = ?", product.ID).Count(&refs).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to check order references",
		})
	}
	if refs > 0 {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Product is referenced by existing orders and cannot be deleted",
		})
	}

	tx := db.DB.Begin()
	if err := tx.Where("product_id = ?", product.ID).Delete(&models.CartItem{}).Error; err != nil {
		tx.Rollback()
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to remove cart references",
		})
	}
	if err := tx.Where("product_id = ?", product.ID).Delete(&models.ProductImage{}).Error; err != nil {
		tx.Rollback()
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to remove product images",
		})
	}
	if err := tx.Where("product_id = ?", product.ID).Delete(&models.Size{}).Error; err != nil {
		tx.Rollback()
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to remove product sizes",
		})
	}
	if err := tx.Delete(&product).Error; err != nil {
		tx.Rollback()
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete product",
		})
	}
	if err := tx.Commit().Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to commit transaction",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Product deleted successfully",
	})
}

// POST /api/products/:id/images
func addProductImage(c *fiber.Ctx) error {
	id := c.Params("id")

	var product models.Product
	if err := db.DB.First(&product, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Product not found",
		})
	}

	image := new(models.ProductImage)
	if err := c.BodyParser(image); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}
	if err := validate.Struct(image); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Image field is required",
		})
	}

	image.ProductID = product.ID
	if err := db.DB.Create(&image).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to add product image",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(image)
}

// DELETE /api/products/:id/images/:image_id
func deleteProductImage(c *fiber.Ctx) error {
	id := c.Params("id")
	imageID := c.Params("image_id")

	var image models.ProductImage
	if err := db.DB.Where("id = ? AND product_id = ?", imageID, id).First(&image).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Product image not found",
		})
	}

	if err := db.DB.Delete(&image).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete product image",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Product image deleted successfully",
	})
}

// POST /api/products/:id/sizes
func addProductSize(c *fiber.Ctx) error {
	id := c.Params("id")

	var product models.Product
	if err := db.DB.First(&product, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Product not found",
		})
	}

	size := new(models.Size)
	if err := c.BodyParser(size); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}
	if err := validate.Struct(size); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Size must be one of S, M, L, XL, XXL, Free Size",
		})
	}

	size.ProductID = product.ID
	if err := db.DB.Create(&size).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to add product size",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(size)
}

// DELETE /api/products/:id/sizes/:size_id
func deleteProductSize(c *fiber.Ctx) error {
	id := c.Params("id")
	sizeID := c.Params("size_id")

	var size models.Size
	if err := db.DB.Where("id = ? AND product_id = ?", sizeID, id).First(&size).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Product size not found",
		})
	}

	if err := db.DB.Delete(&size).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete product size",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Product size deleted successfully",
	})
}

// Category handlers

// POST /api/categories
func createCategory(c *fiber.Ctx) error {
	category := new(models.Category)
	if err := c.BodyParser(category); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}

	if err := validate.Struct(category); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Name field is required",
		})
	}

	category.Products = nil

	if err := db.DB.Create(&category).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create category",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(category)
}

// PUT /api/categories/:id
func updateCategory(c *fiber.Ctx) error {
	id := c.Params("id")
	category := new(models.Category)

	if err := c.BodyParser(category); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}

	var existing models.Category
	if err := db.DB.First(&existing, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Category not found",
		})
	}

	category.Products = nil

	if err := db.DB.Model(&existing).Updates(category).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update category",
		})
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Category updated successfully",
	})
}

// DELETE /api/categories/:id
//
// Category deletion takes its products with it, so it is blocked while any of
// those products sits on an order.
func deleteCategory(c *fiber.Ctx) error {
	id := c.Params("id")

	var category models.Category
	if err := db.DB.First(&category, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Category not found",
		})
	}

	var refs int64
	if err := db.DB.Model(&models.OrderItem{}).
		Joins("JOIN products ON products.id = order_items.product_id").
		Where("products.category_id = ?", category.ID).
		Count(&refs).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to check order references",
		})
	}
	if refs > 0 {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Category has products referenced by existing orders and cannot be deleted",
		})
	}

	var productIDs []uint
	if err := db.DB.Model(&models.Product{}).Where("category_id = ?", category.ID).
		Pluck("id", &productIDs).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list category products",
		})
	}

	tx := db.DB.Begin()
	if len(productIDs) > 0 {
		if err := tx.Where("product_id IN ?", productIDs).Delete(&models.CartItem{}).Error; err != nil {
			tx.Rollback()
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to remove cart references",
			})
		}
		if err := tx.Where("product_id IN ?", productIDs).Delete(&models.ProductImage{}).Error; err != nil {
			tx.Rollback()
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to remove product images",
			})
		}
		if err := tx.Where("product_id IN ?", productIDs).Delete(&models.Size{}).Error; err != nil {
			tx.Rollback()
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to remove product sizes",
			})
		}
		if err := tx.Where("id IN ?", productIDs).Delete(&models.Product{}).Error; err != nil {
			tx.Rollback()
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to delete products",
			})
		}
	}
	if err := tx.Delete(&category).Error; err != nil {
		tx.Rollback()
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete category",
		})
	}
	if err := tx.Commit().Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to commit transaction",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Category deleted successfully",
	})
}

// Brand handlers

// POST /api/brands
func createBrand(c *fiber.Ctx) error {
	brand := new(models.Brand)
	if err := c.BodyParser(brand); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}

	if err := validate.Struct(brand); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Name field is required",
		})
	}

	brand.Products = nil

	if err := db.DB.Create(&brand).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create brand",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(brand)
}

// PUT /api/brands/:id
func updateBrand(c *fiber.Ctx) error {
	id := c.Params("id")
	brand := new(models.Brand)

	if err := c.BodyParser(brand); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}

	var existing models.Brand
	if err := db.DB.First(&existing, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Brand not found",
		})
	}

	brand.Products = nil

	if err := db.DB.Model(&existing).Updates(brand).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update brand",
		})
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Brand updated successfully",
	})
}

// DELETE /api/brands/:id
func deleteBrand(c *fiber.Ctx) error {
	id := c.Params("id")

	var brand models.Brand
	if err := db.DB.First(&brand, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Brand not found",
		})
	}

	// Detach products, then delete
	if err := db.DB.Model(&models.Product{}).Where("brand_id = ?", brand.ID).
		Update("brand_id", nil).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update products",
		})
	}

	if err := db.DB.Delete(&brand).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete brand",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Brand deleted successfully",
	})
}

// Collection handlers

// POST /api/collections
func createCollection(c *fiber.Ctx) error {
	collection := new(models.Collection)
	if err := c.BodyParser(collection); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}

	if err := validate.Struct(collection); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Name field is required",
		})
	}

	collection.Products = nil

	if err := db.DB.Create(&collection).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create collection",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(collection)
}

// PUT /api/collections/:id
func updateCollection(c *fiber.Ctx) error {
	id := c.Params("id")
	collection := new(models.Collection)

	if err := c.BodyParser(collection); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}

	var existing models.Collection
	if err := db.DB.First(&existing, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Collection not found",
		})
	}

	collection.Products = nil

	if err := db.DB.Model(&existing).Updates(collection).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update collection",
		})
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Collection updated successfully",
	})
}

// DELETE /api/collections/:id
func deleteCollection(c *fiber.Ctx) error {
	id := c.Params("id")

	var collection models.Collection
	if err := db.DB.First(&collection, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Collection not found",
		})
	}

	if err := db.DB.Model(&models.Product{}).Where("collection_id = ?", collection.ID).
		Update("collection_id", nil).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update products",
		})
	}

	if err := db.DB.Delete(&collection).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete collection",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Collection deleted successfully",
	})
}
