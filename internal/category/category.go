package category

// Item is one catalog category with its product count. Categories are
// derived from the products table, not stored separately.
type Item struct {
	Name         string `json:"name"`
	ProductCount int    `json:"productCount"`
}
