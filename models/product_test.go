package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllImagesPrimaryFirstThenPosition(t *testing.T) {
	p := Product{
		Image: "/uploads/front.jpg",
		Images: []ProductImage{
			{ID: 7, Image: "/uploads/back.jpg", Position: 2},
			{ID: 9, Image: "/uploads/side-b.jpg", Position: 1},
			{ID: 3, Image: "/uploads/side-a.jpg", Position: 1},
		},
	}

	assert.Equal(t, []string{
		"/uploads/front.jpg",
		"/uploads/side-a.jpg", // position 1, lower id
		"/uploads/side-b.jpg", // position 1, higher id
		"/uploads/back.jpg",
	}, p.AllImages())
}

func TestAllImagesWithoutPrimary(t *testing.T) {
	p := Product{
		Images: []ProductImage{
			{ID: 1, Image: "/uploads/a.jpg", Position: 0},
			{ID: 2, Image: "/uploads/b.jpg", Position: 1},
		},
	}
	assert.Equal(t, []string{"/uploads/a.jpg", "/uploads/b.jpg"}, p.AllImages())
}

func TestProductNameTitleCasedOnSave(t *testing.T) {
	p := Product{Name: "summer LINEN shirt"}
	require.NoError(t, p.BeforeSave(nil))
	assert.Equal(t, "Summer Linen Shirt", p.Name)
	assert.Equal(t, "summer-linen-shirt", p.Slug)
}

func TestProductSlugNotOverwritten(t *testing.T) {
	p := Product{Name: "Wool Coat", Slug: "wool-coat-aw24"}
	require.NoError(t, p.BeforeSave(nil))
	assert.Equal(t, "wool-coat-aw24", p.Slug)
}

func TestCategoryNameTitleCasedOnSave(t *testing.T) {
	cat := Category{Name: "new ARRIVALS"}
	require.NoError(t, cat.BeforeSave(nil))
	assert.Equal(t, "New Arrivals", cat.Name)
	assert.Equal(t, "new-arrivals", cat.Slug)
}
