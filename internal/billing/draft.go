// internal/billing/draft.go
//
// A Draft is the in-progress, unsaved set of line items the user assembles
// before submission. It lives only in client memory: the backend hears about
// it for the first time when the whole thing is submitted.

package billing

import (
	"errors"

	"github.com/shopspring/decimal"
)

// Staging failures carry the exact copy shown next to the add form.
var (
	ErrNoItem         = errors.New("Select an item.")
	ErrAlreadyStaged  = errors.New("Item already added.")
	ErrQuantityTooLow = errors.New("Quantity must be at least 1.")
	ErrNotEnoughStock = errors.New("Not enough stock.")
)

// Line is one catalog item staged into a draft. Price and MaxQuantity are
// snapshots taken at staging time; stock is not re-validated against the
// server between staging and submission.
type Line struct {
	InventoryID int64
	Name        string
	Price       decimal.Decimal
	Quantity    int
	MaxQuantity int
}

// Subtotal returns price × quantity for this line.
func (l Line) Subtotal() decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Draft accumulates staged lines in insertion order, at most one per
// inventory id.
type Draft struct {
	lines []Line
}

// NewDraft returns an empty draft.
func NewDraft() *Draft {
	return &Draft{}
}

// Stage validates and appends a line for the given catalog item. Checks run
// in order and stop at the first failure: the item must exist, must not
// already be staged, and the quantity must be at least 1 and within the
// item's stock snapshot.
func (d *Draft) Stage(item *Item, quantity int) error {
	if item == nil {
		return ErrNoItem
	}
	if d.Contains(item.ID) {
		return ErrAlreadyStaged
	}
	if quantity < 1 {
		return ErrQuantityTooLow
	}
	if quantity > item.Quantity {
		return ErrNotEnoughStock
	}
	d.lines = append(d.lines, Line{
		InventoryID: item.ID,
		Name:        item.Name,
		Price:       item.Price,
		Quantity:    quantity,
		MaxQuantity: item.Quantity,
	})
	return nil
}

// Remove deletes the line matching the given inventory id. It reports
// whether a line was removed.
func (d *Draft) Remove(inventoryID int64) bool {
	for i, line := range d.lines {
		if line.InventoryID == inventoryID {
			d.lines = append(d.lines[:i], d.lines[i+1:]...)
			return true
		}
	}
	return false
}

// Contains reports whether a line for the inventory id is already staged.
func (d *Draft) Contains(inventoryID int64) bool {
	for _, line := range d.lines {
		if line.InventoryID == inventoryID {
			return true
		}
	}
	return false
}

// Lines returns a copy of the staged lines in insertion order.
func (d *Draft) Lines() []Line {
	if len(d.lines) == 0 {
		return nil
	}
	dup := make([]Line, len(d.lines))
	copy(dup, d.lines)
	return dup
}

// Total returns the sum of line subtotals.
func (d *Draft) Total() decimal.Decimal {
	total := decimal.Zero
	for _, line := range d.lines {
		total = total.Add(line.Subtotal())
	}
	return total
}

// LineCount returns the number of distinct staged lines.
func (d *Draft) LineCount() int {
	return len(d.lines)
}

// UnitCount returns the sum of staged quantities.
func (d *Draft) UnitCount() int {
	units := 0
	for _, line := range d.lines {
		units += line.Quantity
	}
	return units
}

// Empty reports whether nothing has been staged.
func (d *Draft) Empty() bool {
	return len(d.lines) == 0
}

// Reset discards all staged lines. Called after a successful submission so a
// fresh draft can begin accumulating.
func (d *Draft) Reset() {
	d.lines = nil
}
