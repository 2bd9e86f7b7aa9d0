package parcel

import (
	"fmt"

	"deliveryledger/internal/pkg/errs"
)

// Item is a line on a package's item list: a quantity and a free-text
// description. Items are ordered; the order they were registered in is the
// order they are stored and displayed in.
type Item struct {
	quantity    int
	description string

	isConstructed bool
}

// NewItem creates an item with validation: quantity must be at least 1 and the
// description must not be empty.
func NewItem(quantity int, description string) (Item, error) {
	if quantity < 1 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause(
			"quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	if description == "" {
		return Item{}, errs.NewValueIsRequiredError("description")
	}

	return Item{
		quantity:      quantity,
		description:   description,
		isConstructed: true,
	}, nil
}

// Quantity returns the item count.
func (i Item) Quantity() int {
	return i.quantity
}

// Description returns the free-text item description.
func (i Item) Description() string {
	return i.description
}

// Validate ensures the item was created via NewItem.
func (i Item) Validate() error {
	if !i.isConstructed {
		return errs.NewValueIsRequiredError("item must be created via NewItem")
	}
	return nil
}
