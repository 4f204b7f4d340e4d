package cart

import (
	"database/sql"
	"encoding/json"
	"strconv"
)

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) GetCart(userID int) (map[int]int, error) {
	var raw sql.NullString
	err := r.db.QueryRow(`SELECT cart FROM users WHERE user_id = $1`, userID).Scan(&raw)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return decodeCart(raw)
}

func (r *PostgresRepository) Adjust(userID, productID, delta int) (map[int]int, error) {
	cart, err := r.GetCart(userID)
	if err != nil {
		return nil, err
	}

	cart[productID] += delta
	if cart[productID] <= 0 {
		delete(cart, productID)
	}

	// jsonb object keys are strings
	encoded := make(map[string]int, len(cart))
	for pid, qty := range cart {
		encoded[strconv.Itoa(pid)] = qty
	}
	blob, err := json.Marshal(encoded)
	if err != nil {
		return nil, err
	}

	_, err = r.db.Exec(`UPDATE users SET cart = $1, updated_at = now() WHERE user_id = $2`, blob, userID)
	if err != nil {
		return nil, err
	}
	return cart, nil
}

func (r *PostgresRepository) Clear(userID int) error {
	res, err := r.db.Exec(`UPDATE users SET cart = '{}', updated_at = now() WHERE user_id = $1`, userID)
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

func decodeCart(raw sql.NullString) (map[int]int, error) {
	cart := make(map[int]int)
	if !raw.Valid || raw.String == "" {
		return cart, nil
	}

	var m map[string]int
	if err := json.Unmarshal([]byte(raw.String), &m); err != nil {
		return nil, err
	}
	for k, qty := range m {
		pid, err := strconv.Atoi(k)
		if err != nil {
			continue
		}
		cart[pid] = qty
	}
	return cart, nil
}
