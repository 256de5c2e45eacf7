package menu

// Categories is the fixed vocabulary the display layer filters on. Storage
// treats category as an opaque string; this list only drives filter widening
// and the categories endpoint.
var Categories = []string{"starters", "mains", "desserts", "drinks"}

// AllCategories returns a copy of the vocabulary so callers cannot mutate it.
func AllCategories() []string {
	out := make([]string, len(Categories))
	copy(out, Categories)
	return out
}
