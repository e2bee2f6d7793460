package trends

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCatalogTagLabel(t *testing.T) {
	c := testCatalog()

	assert.Equal(t, "happy", c.TagLabel("😊"))
	assert.Equal(t, "🤔", c.TagLabel("🤔"), "unknown tags pass through")
}

func TestCatalogCategoryStyle(t *testing.T) {
	c := testCatalog()

	assert.Equal(t, "Work", c.CategoryStyle("work").Label)

	// unknown categories inherit the default style but keep their own name
	unknown := c.CategoryStyle("gardening")
	assert.Equal(t, "gardening", unknown.Label)
	assert.Equal(t, c.DefaultCategory.Color, unknown.Color)

	assert.Equal(t, c.DefaultCategory.Label, c.CategoryStyle("").Label)
}

func TestCatalogIsHealthCategory(t *testing.T) {
	c := testCatalog()

	assert.True(t, c.IsHealthCategory("health"))
	assert.False(t, c.IsHealthCategory("work"))
}

func TestDefaultCatalogConsistency(t *testing.T) {
	c := DefaultCatalog()

	assert.True(t, c.IsHealthCategory("สุขภาพ"))
	assert.True(t, c.IsHealthCategory("health"))

	_, hasOther := c.Categories[c.OtherCategory]
	assert.True(t, hasOther, "the no-category sentinel has a chart style")

	for _, status := range []string{"done", "normal", "urgent", "cancelled"} {
		style, ok := c.Statuses[status]
		assert.True(t, ok)
		assert.NotEmpty(t, style.Label)
		assert.NotEmpty(t, style.Color)
	}
}
