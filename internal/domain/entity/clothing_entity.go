package entity

import (
	"fmt"
	"time"
)

// Category classifies a clothing item. The set is closed; anything that does
// not fit a named category is OTHER.
type Category string

const (
	CategoryShirt     Category = "SHIRT"
	CategoryPants     Category = "PANTS"
	CategoryShoes     Category = "SHOES"
	CategoryJacket    Category = "JACKET"
	CategoryAccessory Category = "ACCESSORY"
	CategoryOther     Category = "OTHER"
)

// Categories lists every valid category value.
func Categories() []Category {
	return []Category{CategoryShirt, CategoryPants, CategoryShoes, CategoryJacket, CategoryAccessory, CategoryOther}
}

// ParseCategory validates a raw category string.
func ParseCategory(s string) (Category, error) {
	for _, c := range Categories() {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("invalid category: %q", s)
}

// ClothingItem belongs to exactly one owner, fixed at creation. Only the
// owner may update or delete it.
type ClothingItem struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Category  Category  `json:"category"`
	Color     string    `json:"color"`
	Brand     *string   `json:"brand"`
	ImageURL  *string   `json:"imageUrl"`
	OwnerID   int64     `json:"ownerId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
