package admin

import "database/sql"

// UserAggregate is the per-user order rollup.
type UserAggregate struct {
	UserID     int
	OrderCount int
	TotalSpent float64
}

// CategoryQuantity is a summed line-item quantity for one user and
// category.
type CategoryQuantity struct {
	UserID   int
	Category string
	Quantity int
}

// LineShare is one order line with its order's total and the order's line
// count, used to split revenue across categories.
type LineShare struct {
	OrderID    int
	OrderTotal float64
	Category   string
	Quantity   int
}

type Repository interface {
	UserAggregates() ([]UserAggregate, error)
	CategoryQuantities() ([]CategoryQuantity, error)
	UsersGrowth() ([]MonthCount, error)
	LineShares() ([]LineShare, error)
}

type PostgresRepository struct {
	db *sql.DB
}

const (
	userAggregatesQuery = `
		SELECT user_id, COUNT(*), COALESCE(SUM(total), 0)
		FROM orders
		GROUP BY user_id`

	categoryQuantitiesQuery = `
		SELECT o.user_id, p.category, SUM(op.quantity)
		FROM orders o
		JOIN order_products op ON op.order_id = o.order_id
		JOIN products p ON p.product_id = op.product_id
		GROUP BY o.user_id, p.category`

	usersGrowthQuery = `
		SELECT TO_CHAR(u.created_at, 'YYYY-MM') AS month, COUNT(*)
		FROM users u
		WHERE u.role = 'customer'
		GROUP BY month
		ORDER BY month`

	lineSharesQuery = `
		SELECT o.order_id, o.total, p.category, op.quantity
		FROM orders o
		JOIN order_products op ON op.order_id = o.order_id
		JOIN products p ON p.product_id = op.product_id
		ORDER BY o.order_id, op.id`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) UserAggregates() ([]UserAggregate, error) {
	rows, err := r.db.Query(userAggregatesQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]UserAggregate, 0)
	for rows.Next() {
		var a UserAggregate
		if err := rows.Scan(&a.UserID, &a.OrderCount, &a.TotalSpent); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) CategoryQuantities() ([]CategoryQuantity, error) {
	rows, err := r.db.Query(categoryQuantitiesQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]CategoryQuantity, 0)
	for rows.Next() {
		var q CategoryQuantity
		if err := rows.Scan(&q.UserID, &q.Category, &q.Quantity); err != nil {
			return nil, err
		}
		out = append(out, q)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) UsersGrowth() ([]MonthCount, error) {
	rows, err := r.db.Query(usersGrowthQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]MonthCount, 0)
	for rows.Next() {
		var m MonthCount
		if err := rows.Scan(&m.Month, &m.Count); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) LineShares() ([]LineShare, error) {
	rows, err := r.db.Query(lineSharesQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]LineShare, 0)
	for rows.Next() {
		var l LineShare
		if err := rows.Scan(&l.OrderID, &l.OrderTotal, &l.Category, &l.Quantity); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}
