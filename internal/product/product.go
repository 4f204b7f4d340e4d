package product

import "time"

// Product is a catalog entry. Rows are written by the seed operation only
// and treated as immutable afterwards.
type Product struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Brand       string    `json:"brand"`
	Price       float64   `json:"price"`
	Image       string    `json:"image"`
	Category    string    `json:"category"`
	Gender      *string   `json:"gender,omitempty"`
	Description *string   `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Summary is the reduced shape embedded in wishlist and cart responses.
type Summary struct {
	ID    int     `json:"id"`
	Name  string  `json:"name"`
	Brand string  `json:"brand"`
	Price float64 `json:"price"`
	Image string  `json:"image"`
}

func (p Product) Summary() Summary {
	return Summary{ID: p.ID, Name: p.Name, Brand: p.Brand, Price: p.Price, Image: p.Image}
}
