package address

import "time"

// Address is a saved shipping destination. Rows belong to exactly one
// user and are only visible to their owner.
type Address struct {
	ID        int       `json:"id"`
	UserID    int       `json:"userId"`
	Label     *string   `json:"label,omitempty"`
	Recipient *string   `json:"recipient,omitempty"`
	Line1     string    `json:"line1"`
	City      *string   `json:"city,omitempty"`
	State     *string   `json:"state,omitempty"`
	Zip       *string   `json:"zip,omitempty"`
	Country   string    `json:"country"`
	Phone     *string   `json:"phone,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
