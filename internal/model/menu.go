package model

// MenuItem represents a single cached menu row.
type MenuItem struct {
	ID          int64  `json:"id" db:"id"`
	Name        string `json:"name" db:"name"`
	Price       string `json:"price" db:"price"`
	Description string `json:"description" db:"description"`
	Image       string `json:"image" db:"image"`
	Category    string `json:"category" db:"category"`
}

// SectionItem is a menu item as it appears inside a section, with the
// category carried by the enclosing section instead of the item.
type SectionItem struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Price       string `json:"price"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

// MenuSection groups the items of one category for display. Sections are
// derived per query result and never persisted.
type MenuSection struct {
	Name string        `json:"name"`
	Data []SectionItem `json:"data"`
}
