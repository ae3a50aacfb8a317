package style

import (
	"sort"
	"strings"
)

// Category groups widget style properties by how they are emitted.
type Category string

const (
	// CategoryPaint properties carry colors or gradients and are emitted only when set.
	CategoryPaint Category = "Paint"
	// CategoryShape properties (radius, shadow, sizes) are always emitted.
	CategoryShape Category = "Shape"
)

// propertyCategories maps widget property names to categories
var propertyCategories = map[string]Category{
	// Paint
	"background":  CategoryPaint,
	"border":      CategoryPaint,
	"indicator":   CategoryPaint,
	"icon":        CategoryPaint,
	"text":        CategoryPaint,
	"item":        CategoryPaint,
	"active-item": CategoryPaint,
	"header":      CategoryPaint,
	"toggle":      CategoryPaint,
	"check":       CategoryPaint,
	"backdrop":    CategoryPaint,

	// Shape
	"radius":          CategoryShape,
	"shadow":          CategoryShape,
	"width":           CategoryShape,
	"collapsed-width": CategoryShape,
	"gap":             CategoryShape,
	"size":            CategoryShape,
}

// CategoryFor determines the category of a property name
func CategoryFor(name string) Category {
	// Check exact match
	if cat, exists := propertyCategories[name]; exists {
		return cat
	}

	// Sizing suffixes
	if strings.HasSuffix(name, "-radius") || strings.HasSuffix(name, "-shadow") ||
		strings.HasSuffix(name, "-width") || strings.HasSuffix(name, "-size") {
		return CategoryShape
	}

	// Default to Paint for unknown properties
	return CategoryPaint
}

// shapeDefaults are used when a widget does not supply its own default
var shapeDefaults = map[string]string{
	"radius": "radius-md",
	"shadow": "shadow-none",
}

// DefaultShape returns the fallback input for a shape property.
func DefaultShape(name string) string {
	return shapeDefaults[name]
}

// SortProperties orders properties by category, then name
func SortProperties(props []Property) {
	sort.SliceStable(props, func(i, j int) bool {
		if props[i].Category != props[j].Category {
			return props[i].Category < props[j].Category
		}
		return props[i].Name < props[j].Name
	})
}
