package admin

import (
	"time"
)

// UserSummary is one row of the admin customer list. TotalSpent is a
// fixed two-decimal string.
type UserSummary struct {
	ID               int       `json:"id"`
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	TotalOrders      int       `json:"totalOrders"`
	TotalSpent       string    `json:"totalSpent"`
	LastLogin        time.Time `json:"lastLogin"`
	JoinedDate       time.Time `json:"joinedDate"`
	FavoriteCategory string    `json:"favoriteCategory"`
	Status           string    `json:"status"`
	Role             string    `json:"role"`
}

// DetailUser is the account block of the detail view.
type DetailUser struct {
	ID        int        `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Phone     *string    `json:"phone,omitempty"`
	Address   *string    `json:"address,omitempty"`
	Role      string     `json:"role"`
	Status    string     `json:"status"`
	LastLogin *time.Time `json:"lastLogin,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
}

// DetailStatistics summarizes one customer's purchase behaviour.
type DetailStatistics struct {
	TotalOrders           int    `json:"totalOrders"`
	TotalSpent            string `json:"totalSpent"`
	AvgOrderValue         string `json:"avgOrderValue"`
	MostPurchasedCategory string `json:"mostPurchasedCategory"`
	WishlistItems         int    `json:"wishlistItems"`
}

// OrderHistoryProduct is one purchased product inside the history view.
type OrderHistoryProduct struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// OrderHistoryEntry is one order of the customer's history.
type OrderHistoryEntry struct {
	ID       int                   `json:"id"`
	Date     time.Time             `json:"date"`
	Total    float64               `json:"total"`
	Status   string                `json:"status"`
	Items    int                   `json:"items"`
	Products []OrderHistoryProduct `json:"products"`
}

// WishlistEntry is one wishlisted product in the detail view.
type WishlistEntry struct {
	ProductID int              `json:"productId"`
	Product   *WishlistProduct `json:"product"`
	AddedAt   time.Time        `json:"addedAt"`
}

type WishlistProduct struct {
	ID    int     `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Image string  `json:"image"`
}

// TimelineEvent is one activity entry, newest first, capped at ten.
type TimelineEvent struct {
	Type        string    `json:"type"`
	Date        time.Time `json:"date"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
}

// UserDetail is the full admin view of one customer.
type UserDetail struct {
	User         DetailUser        `json:"user"`
	Statistics   DetailStatistics  `json:"statistics"`
	OrderHistory []OrderHistoryEntry `json:"orderHistory"`
	Wishlist     []WishlistEntry   `json:"wishlist"`
	Timeline     []TimelineEvent   `json:"timeline"`
}

// MonthCount is one bucket of the customer growth series.
type MonthCount struct {
	Month string `json:"month"`
	Count int    `json:"count"`
}

// TopCustomer is one row of the revenue leaderboard.
type TopCustomer struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	TotalOrders int    `json:"totalOrders"`
	TotalSpent  string `json:"totalSpent"`
}

// CategoryStat aggregates sales per catalog category. Count is the summed
// quantity; revenue splits each order's total evenly across its lines.
type CategoryStat struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
	Revenue  string `json:"revenue"`
}
