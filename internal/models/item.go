package models

import (
	"errors"

	"github.com/bluemoon/stockkeeper/internal/shared"
)

const itemIDLength = 10

var (
	ErrMissingName  = errors.New("name is required")
	ErrInvalidPrice = errors.New("price must be zero or greater")
	ErrInvalidStock = errors.New("total stock must be zero or greater")
)

// InventoryItem is a single stocked product. User holds the owning account's
// email; ID is assigned once at creation and never changes.
type InventoryItem struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	TotalStock  int     `json:"totalStock"`
	Description string  `json:"description"`
	User        string  `json:"user"`
}

// NewItemID returns a fresh random item identifier: 10 characters over
// lowercase letters and digits.
func NewItemID() (string, error) {
	return shared.MakeRandString(itemIDLength)
}

// ValidateItem checks the create/edit form constraints before an item is
// handed to the session layer.
func ValidateItem(item InventoryItem) error {
	if item.Name == "" {
		return ErrMissingName
	}
	if item.Price < 0 {
		return ErrInvalidPrice
	}
	if item.TotalStock < 0 {
		return ErrInvalidStock
	}
	return nil
}
