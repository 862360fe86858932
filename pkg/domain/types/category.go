package types

import "fmt"

// Category is one of the fixed review topic labels
type Category string

const (
	CategoryService         Category = "Service"
	CategoryProductQuality  Category = "Product Quality"
	CategoryPrice           Category = "Price"
	CategoryCustomerSupport Category = "Customer Support"
	CategoryUsability       Category = "Usability"
)

// AllCategories returns the closed category set in keyword-matching
// priority order
func AllCategories() []Category {
	return []Category{
		CategoryService,
		CategoryProductQuality,
		CategoryPrice,
		CategoryCustomerSupport,
		CategoryUsability,
	}
}

// IsValid checks if the category is a member of the closed set
func (c Category) IsValid() bool {
	switch c {
	case CategoryService,
		CategoryProductQuality,
		CategoryPrice,
		CategoryCustomerSupport,
		CategoryUsability:
		return true
	default:
		return false
	}
}

// String returns the string representation of the category
func (c Category) String() string {
	return string(c)
}

// ParseCategory parses a string into a Category
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if !c.IsValid() {
		return "", fmt.Errorf("invalid category: %s", s)
	}
	return c, nil
}
