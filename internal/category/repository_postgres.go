package category

import "database/sql"

type Repository interface {
	List() ([]Item, error)
}

type PostgresRepository struct {
	db *sql.DB
}

const listCategoriesQuery = `
	SELECT category, COUNT(*)
	FROM products
	GROUP BY category
	ORDER BY category`

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List() ([]Item, error) {
	rows, err := r.db.Query(listCategoriesQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Item, 0)
	for rows.Next() {
		var item Item
		if err := rows.Scan(&item.Name, &item.ProductCount); err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, rows.Err()
}
