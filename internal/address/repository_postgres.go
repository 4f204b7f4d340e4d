package address

import "database/sql"

type PostgresRepository struct {
	db *sql.DB
}

const (
	addressColumns = `address_id, user_id, label, recipient, line1, city, state, zip, country, phone, created_at, updated_at`

	listAddressesQuery = `SELECT ` + addressColumns + ` FROM addresses WHERE user_id = $1 ORDER BY address_id`

	getAddressQuery = `SELECT ` + addressColumns + ` FROM addresses WHERE address_id = $1`

	insertAddressQuery = `
		INSERT INTO addresses (user_id, label, recipient, line1, city, state, zip, country, phone)
		VALUES ($1, $2, $3, $4, $5, $6, $7, COALESCE(NULLIF($8, ''), 'USA'), $9)
		RETURNING ` + addressColumns

	updateAddressQuery = `
		UPDATE addresses
		SET label = $1, recipient = $2, line1 = $3, city = $4, state = $5, zip = $6, country = $7, phone = $8, updated_at = now()
		WHERE address_id = $9
		RETURNING ` + addressColumns

	deleteAddressQuery = `DELETE FROM addresses WHERE address_id = $1`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) ListByUser(userID int) ([]Address, error) {
	rows, err := r.db.Query(listAddressesQuery, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Address, 0)
	for rows.Next() {
		a, err := scanAddress(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) GetByID(id int) (Address, error) {
	a, err := scanAddress(r.db.QueryRow(getAddressQuery, id))
	if err == sql.ErrNoRows {
		return Address{}, ErrNotFound
	}
	if err != nil {
		return Address{}, err
	}
	return a, nil
}

func (r *PostgresRepository) Create(a Address) (Address, error) {
	return scanAddress(r.db.QueryRow(insertAddressQuery,
		a.UserID, a.Label, a.Recipient, a.Line1, a.City, a.State, a.Zip, a.Country, a.Phone))
}

func (r *PostgresRepository) Update(a Address) (Address, error) {
	updated, err := scanAddress(r.db.QueryRow(updateAddressQuery,
		a.Label, a.Recipient, a.Line1, a.City, a.State, a.Zip, a.Country, a.Phone, a.ID))
	if err == sql.ErrNoRows {
		return Address{}, ErrNotFound
	}
	if err != nil {
		return Address{}, err
	}
	return updated, nil
}

func (r *PostgresRepository) Delete(id int) error {
	res, err := r.db.Exec(deleteAddressQuery, id)
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

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanAddress(row rowScanner) (Address, error) {
	var (
		a         Address
		label     sql.NullString
		recipient sql.NullString
		city      sql.NullString
		state     sql.NullString
		zip       sql.NullString
		phone     sql.NullString
	)
	err := row.Scan(&a.ID, &a.UserID, &label, &recipient, &a.Line1,
		&city, &state, &zip, &a.Country, &phone, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return Address{}, err
	}
	if label.Valid {
		a.Label = &label.String
	}
	if recipient.Valid {
		a.Recipient = &recipient.String
	}
	if city.Valid {
		a.City = &city.String
	}
	if state.Valid {
		a.State = &state.String
	}
	if zip.Valid {
		a.Zip = &zip.String
	}
	if phone.Valid {
		a.Phone = &phone.String
	}
	return a, nil
}
