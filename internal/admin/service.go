package admin

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/noiratelier/storefront-backend/internal/order"
	"github.com/noiratelier/storefront-backend/internal/user"
	"github.com/noiratelier/storefront-backend/internal/wishlist"
)

const defaultTopCustomersLimit = 10

type Service struct {
	repo      Repository
	users     user.ServiceInterface
	orders    order.Repository
	wishlists wishlist.Repository
}

func NewService(repo Repository, users user.ServiceInterface, orders order.Repository, wishlists wishlist.Repository) *Service {
	return &Service{repo: repo, users: users, orders: orders, wishlists: wishlists}
}

// UsersSummary lists every customer with their order rollup and favorite
// category. Users without orders report "N/A". When two categories tie,
// the winner is whichever the map iteration reaches last.
func (s *Service) UsersSummary() ([]UserSummary, error) {
	users, err := s.users.List()
	if err != nil {
		return nil, err
	}
	aggregates, err := s.aggregatesByUser()
	if err != nil {
		return nil, err
	}
	quantities, err := s.repo.CategoryQuantities()
	if err != nil {
		return nil, err
	}

	categoriesByUser := make(map[int]map[string]int)
	for _, q := range quantities {
		if categoriesByUser[q.UserID] == nil {
			categoriesByUser[q.UserID] = make(map[string]int)
		}
		categoriesByUser[q.UserID][q.Category] += q.Quantity
	}

	out := make([]UserSummary, 0, len(users))
	for _, u := range users {
		if u.Role != user.RoleCustomer {
			continue
		}

		agg := aggregates[u.ID]
		lastLogin := u.CreatedAt
		if u.LastLogin != nil {
			lastLogin = *u.LastLogin
		}

		out = append(out, UserSummary{
			ID:               u.ID,
			Name:             u.Name,
			Email:            u.Email,
			TotalOrders:      agg.OrderCount,
			TotalSpent:       decimal.NewFromFloat(agg.TotalSpent).StringFixed(2),
			LastLogin:        lastLogin,
			JoinedDate:       u.CreatedAt,
			FavoriteCategory: favoriteCategory(categoriesByUser[u.ID]),
			Status:           u.Status,
			Role:             u.Role,
		})
	}
	return out, nil
}

// UserDetail assembles the full admin view: account, statistics, order
// history, wishlist and a ten-entry activity timeline.
func (s *Service) UserDetail(id int) (UserDetail, error) {
	u, err := s.users.GetByID(id)
	if err != nil {
		return UserDetail{}, err
	}

	orders, err := s.orders.ListByUser(id)
	if err != nil {
		return UserDetail{}, err
	}
	entries, err := s.wishlists.ListByUser(id)
	if err != nil {
		return UserDetail{}, err
	}

	totalSpent := decimal.Zero
	categories := make(map[string]int)
	history := make([]OrderHistoryEntry, 0, len(orders))
	timeline := make([]TimelineEvent, 0, len(orders))

	for _, ord := range orders {
		totalSpent = totalSpent.Add(decimal.NewFromFloat(ord.Total))

		products := make([]OrderHistoryProduct, 0, len(ord.Items))
		for _, item := range ord.Items {
			name := "Unknown"
			price := 0.0
			if item.Product != nil {
				name = item.Product.Name
				price = item.Product.Price
				categories[item.Product.Category] += item.Quantity
			}
			products = append(products, OrderHistoryProduct{Name: name, Quantity: item.Quantity, Price: price})
		}

		history = append(history, OrderHistoryEntry{
			ID:       ord.ID,
			Date:     ord.CreatedAt,
			Total:    ord.Total,
			Status:   ord.Status,
			Items:    len(ord.Items),
			Products: products,
		})
		timeline = append(timeline, TimelineEvent{
			Type:        "order",
			Date:        ord.CreatedAt,
			Description: fmt.Sprintf("Placed order #%d", ord.ID),
			Amount:      ord.Total,
		})
	}

	sort.Slice(timeline, func(i, j int) bool { return timeline[i].Date.After(timeline[j].Date) })
	if len(timeline) > 10 {
		timeline = timeline[:10]
	}

	avg := decimal.Zero
	if len(orders) > 0 {
		avg = totalSpent.Div(decimal.NewFromInt(int64(len(orders))))
	}

	wl := make([]WishlistEntry, 0, len(entries))
	for _, e := range entries {
		entry := WishlistEntry{ProductID: e.ProductID, AddedAt: e.CreatedAt}
		if e.Product != nil {
			entry.Product = &WishlistProduct{
				ID:    e.Product.ID,
				Name:  e.Product.Name,
				Price: e.Product.Price,
				Image: e.Product.Image,
			}
		}
		wl = append(wl, entry)
	}

	return UserDetail{
		User: DetailUser{
			ID:        u.ID,
			Name:      u.Name,
			Email:     u.Email,
			Phone:     u.Phone,
			Address:   u.Address,
			Role:      u.Role,
			Status:    u.Status,
			LastLogin: u.LastLogin,
			CreatedAt: u.CreatedAt,
		},
		Statistics: DetailStatistics{
			TotalOrders:           len(orders),
			TotalSpent:            totalSpent.StringFixed(2),
			AvgOrderValue:         avg.StringFixed(2),
			MostPurchasedCategory: favoriteCategory(categories),
			WishlistItems:         len(entries),
		},
		OrderHistory: history,
		Wishlist:     wl,
		Timeline:     timeline,
	}, nil
}

func (s *Service) UsersGrowth() ([]MonthCount, error) {
	return s.repo.UsersGrowth()
}

// TopCustomers ranks customers by lifetime spend.
func (s *Service) TopCustomers(limit int) ([]TopCustomer, error) {
	if limit <= 0 {
		limit = defaultTopCustomersLimit
	}

	users, err := s.users.List()
	if err != nil {
		return nil, err
	}
	aggregates, err := s.aggregatesByUser()
	if err != nil {
		return nil, err
	}

	spent := make(map[int]float64, len(users))
	out := make([]TopCustomer, 0, len(users))
	for _, u := range users {
		if u.Role != user.RoleCustomer {
			continue
		}
		agg := aggregates[u.ID]
		spent[u.ID] = agg.TotalSpent
		out = append(out, TopCustomer{
			ID:          u.ID,
			Name:        u.Name,
			Email:       u.Email,
			TotalOrders: agg.OrderCount,
			TotalSpent:  decimal.NewFromFloat(agg.TotalSpent).StringFixed(2),
		})
	}

	sort.SliceStable(out, func(i, j int) bool { return spent[out[i].ID] > spent[out[j].ID] })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// CategoryStats sums sold quantities per category and attributes revenue
// by splitting each order's total evenly across its line items.
func (s *Service) CategoryStats() ([]CategoryStat, error) {
	lines, err := s.repo.LineShares()
	if err != nil {
		return nil, err
	}

	linesPerOrder := make(map[int]int)
	for _, l := range lines {
		linesPerOrder[l.OrderID]++
	}

	counts := make(map[string]int)
	revenue := make(map[string]decimal.Decimal)
	ordered := make([]string, 0)
	for _, l := range lines {
		if _, seen := counts[l.Category]; !seen {
			ordered = append(ordered, l.Category)
		}
		counts[l.Category] += l.Quantity
		share := decimal.NewFromFloat(l.OrderTotal).Div(decimal.NewFromInt(int64(linesPerOrder[l.OrderID])))
		revenue[l.Category] = revenue[l.Category].Add(share)
	}

	out := make([]CategoryStat, 0, len(ordered))
	for _, category := range ordered {
		out = append(out, CategoryStat{
			Category: category,
			Count:    counts[category],
			Revenue:  revenue[category].StringFixed(2),
		})
	}
	return out, nil
}

// User management passthroughs.

func (s *Service) ListUsers() ([]user.User, error) {
	users, err := s.users.List()
	if err != nil {
		return nil, err
	}
	out := make([]user.User, 0, len(users))
	for _, u := range users {
		out = append(out, user.Sanitize(u))
	}
	return out, nil
}

func (s *Service) CreateUser(u user.User) (user.User, error) {
	created, err := s.users.Create(u)
	if err != nil {
		return user.User{}, err
	}
	return user.Sanitize(created), nil
}

func (s *Service) UpdateUserRole(id int, role string) (user.User, error) {
	return s.users.UpdateRole(id, role)
}

func (s *Service) UpdateUserStatus(id int, status string) (user.User, error) {
	return s.users.UpdateStatus(id, status)
}

func (s *Service) DeleteUser(id int) error {
	return s.users.Delete(id)
}

func (s *Service) aggregatesByUser() (map[int]UserAggregate, error) {
	aggregates, err := s.repo.UserAggregates()
	if err != nil {
		return nil, err
	}
	out := make(map[int]UserAggregate, len(aggregates))
	for _, a := range aggregates {
		out[a.UserID] = a
	}
	return out, nil
}

func favoriteCategory(counts map[string]int) string {
	if len(counts) == 0 {
		return "N/A"
	}
	best := ""
	bestCount := -1
	for category, count := range counts {
		if count > bestCount {
			best = category
			bestCount = count
		}
	}
	return best
}
