package models

// EntityType discriminates which inventory collection a record belongs to.
type EntityType string

const (
	// EntityItem is a stock item tracked by the inventory.
	EntityItem EntityType = "item"

	// EntityCategory is a grouping of items.
	EntityCategory EntityType = "category"
)

// Valid reports whether t is a known entity type.
func (t EntityType) Valid() bool {
	return t == EntityItem || t == EntityCategory
}

// Item is the inventory item payload as exchanged with the remote API and
// stored inside Record.Payload.
type Item struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Quantity    int64   `json:"quantity"`
	Price       float64 `json:"price,omitempty"`
	CategoryID  string  `json:"category_id,omitempty"`
	Barcode     string  `json:"barcode,omitempty"`
	Location    string  `json:"location,omitempty"`
}

// Category groups items. Color is a display hint carried through sync
// untouched.
type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Color       string `json:"color,omitempty"`
}
