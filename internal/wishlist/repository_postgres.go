package wishlist

import (
	"database/sql"

	"github.com/noiratelier/storefront-backend/internal/product"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	listWishlistQuery = `
		SELECT w.wishlist_id, w.user_id, w.product_id, w.created_at,
		       p.product_id, p.name, p.brand, p.price, p.image, p.category, p.gender, p.description, p.created_at, p.updated_at
		FROM wishlists w
		JOIN products p ON p.product_id = w.product_id
		WHERE w.user_id = $1
		ORDER BY w.created_at DESC`

	wishlistExistsQuery = `SELECT 1 FROM wishlists WHERE user_id = $1 AND product_id = $2`

	insertWishlistQuery = `
		INSERT INTO wishlists (user_id, product_id)
		VALUES ($1, $2)
		RETURNING wishlist_id, user_id, product_id, created_at`

	deleteWishlistByIDQuery = `DELETE FROM wishlists WHERE wishlist_id = $1`

	deleteWishlistByPairQuery = `DELETE FROM wishlists WHERE user_id = $1 AND product_id = $2`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) ListByUser(userID int) ([]Entry, error) {
	rows, err := r.db.Query(listWishlistQuery, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]Entry, 0)
	for rows.Next() {
		var (
			e      Entry
			p      product.Product
			gender sql.NullString
			desc   sql.NullString
		)
		err := rows.Scan(&e.ID, &e.UserID, &e.ProductID, &e.CreatedAt,
			&p.ID, &p.Name, &p.Brand, &p.Price, &p.Image, &p.Category,
			&gender, &desc, &p.CreatedAt, &p.UpdatedAt)
		if err != nil {
			return nil, err
		}
		if gender.Valid {
			p.Gender = &gender.String
		}
		if desc.Valid {
			p.Description = &desc.String
		}
		e.Product = &p
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (r *PostgresRepository) Exists(userID, productID int) (bool, error) {
	var one int
	err := r.db.QueryRow(wishlistExistsQuery, userID, productID).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *PostgresRepository) Add(userID, productID int) (Entry, error) {
	var e Entry
	err := r.db.QueryRow(insertWishlistQuery, userID, productID).
		Scan(&e.ID, &e.UserID, &e.ProductID, &e.CreatedAt)
	if err != nil {
		return Entry{}, err
	}
	return e, nil
}

func (r *PostgresRepository) DeleteByID(id int) error {
	res, err := r.db.Exec(deleteWishlistByIDQuery, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepository) DeleteByUserAndProduct(userID, productID int) error {
	res, err := r.db.Exec(deleteWishlistByPairQuery, userID, productID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
