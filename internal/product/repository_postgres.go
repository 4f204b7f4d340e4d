package product

import (
	"database/sql"
	"strings"

	"github.com/lib/pq"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	productColumns = `product_id, name, brand, price, image, category, gender, description, created_at, updated_at`

	listProductsQuery = `SELECT ` + productColumns + ` FROM products ORDER BY product_id`

	listProductsByGenderQuery = `SELECT ` + productColumns + ` FROM products WHERE gender = $1 ORDER BY product_id`

	getProductByIDQuery = `SELECT ` + productColumns + ` FROM products WHERE product_id = $1`

	listProductsByIDsQuery = `
		SELECT ` + productColumns + `
		FROM products
		WHERE product_id = ANY($1::int[])
		ORDER BY array_position($1::int[], product_id)`

	suggestProductsQuery = `
		SELECT ` + productColumns + `
		FROM products
		WHERE LOWER(name) LIKE $1 OR LOWER(brand) LIKE $1 OR LOWER(category) LIKE $1
		ORDER BY
			CASE
				WHEN LOWER(name) LIKE $2 THEN 1
				WHEN LOWER(brand) LIKE $2 THEN 2
				ELSE 3
			END,
			name ASC
		LIMIT $3`

	insertProductQuery = `
		INSERT INTO products (name, brand, price, image, category, gender, description)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List(gender string) ([]Product, error) {
	var (
		rows *sql.Rows
		err  error
	)
	if gender != "" {
		rows, err = r.db.Query(listProductsByGenderQuery, gender)
	} else {
		rows, err = r.db.Query(listProductsQuery)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collect(rows)
}

func (r *PostgresRepository) GetByID(id int) (Product, error) {
	p, err := scanProduct(r.db.QueryRow(getProductByIDQuery, id))
	if err == sql.ErrNoRows {
		return Product{}, ErrNotFound
	}
	if err != nil {
		return Product{}, err
	}
	return p, nil
}

func (r *PostgresRepository) ListByIDs(ids []int) ([]Product, error) {
	if len(ids) == 0 {
		return []Product{}, nil
	}
	rows, err := r.db.Query(listProductsByIDsQuery, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collect(rows)
}

func (r *PostgresRepository) Suggest(query string, limit int) ([]Product, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	rows, err := r.db.Query(suggestProductsQuery, "%"+q+"%", q+"%", limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collect(rows)
}

func (r *PostgresRepository) ReplaceAll(seed []Product) (int, error) {
	tx, err := r.db.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM products`); err != nil {
		return 0, err
	}

	inserted := 0
	for _, p := range seed {
		if _, err := tx.Exec(insertProductQuery,
			p.Name, p.Brand, p.Price, p.Image, p.Category, p.Gender, p.Description); err != nil {
			return 0, err
		}
		inserted++
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return inserted, nil
}

func collect(rows *sql.Rows) ([]Product, error) {
	out := make([]Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanProduct(row rowScanner) (Product, error) {
	var (
		p      Product
		gender sql.NullString
		desc   sql.NullString
	)
	err := row.Scan(&p.ID, &p.Name, &p.Brand, &p.Price, &p.Image, &p.Category,
		&gender, &desc, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return Product{}, err
	}
	if gender.Valid {
		p.Gender = &gender.String
	}
	if desc.Valid {
		p.Description = &desc.String
	}
	return p, nil
}
