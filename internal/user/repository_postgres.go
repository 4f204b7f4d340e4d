package user

import (
	"database/sql"
	"time"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	userColumns = `user_id, name, email, password, role, status, phone, address, last_login, created_at, updated_at`

	listUsersQuery    = `SELECT ` + userColumns + ` FROM users ORDER BY created_at DESC`
	getUserByIDQuery  = `SELECT ` + userColumns + ` FROM users WHERE user_id = $1`
	getUserByEmailQry = `SELECT ` + userColumns + ` FROM users WHERE email = $1`

	insertUserQuery = `
		INSERT INTO users (name, email, password, role, status, phone, address)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + userColumns

	updateUserQuery = `
		UPDATE users
		SET name = $1, email = $2, role = $3, status = $4, phone = $5, address = $6, updated_at = now()
		WHERE user_id = $7
		RETURNING ` + userColumns
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List() ([]User, error) {
	rows, err := r.db.Query(listUsersQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) GetByID(id int) (User, error) {
	return r.getOne(getUserByIDQuery, id)
}

func (r *PostgresRepository) GetByEmail(email string) (User, error) {
	return r.getOne(getUserByEmailQry, email)
}

func (r *PostgresRepository) getOne(query string, arg interface{}) (User, error) {
	u, err := scanUser(r.db.QueryRow(query, arg))
	if err == sql.ErrNoRows {
		return User{}, ErrNotFound
	}
	if err != nil {
		return User{}, err
	}
	return u, nil
}

func (r *PostgresRepository) Create(u User) (User, error) {
	if u.Role == "" {
		u.Role = RoleCustomer
	}
	if u.Status == "" {
		u.Status = StatusActive
	}
	created, err := scanUser(r.db.QueryRow(insertUserQuery,
		u.Name, u.Email, u.Password, u.Role, u.Status, u.Phone, u.Address))
	if err != nil {
		return User{}, err
	}
	return created, nil
}

func (r *PostgresRepository) Update(id int, u User) (User, error) {
	updated, err := scanUser(r.db.QueryRow(updateUserQuery,
		u.Name, u.Email, u.Role, u.Status, u.Phone, u.Address, id))
	if err == sql.ErrNoRows {
		return User{}, ErrNotFound
	}
	if err != nil {
		return User{}, err
	}
	return updated, nil
}

func (r *PostgresRepository) UpdatePassword(id int, hash string) error {
	res, err := r.db.Exec(`UPDATE users SET password = $1, updated_at = now() WHERE user_id = $2`, hash, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *PostgresRepository) TouchLastLogin(id int, at time.Time) error {
	res, err := r.db.Exec(`UPDATE users SET last_login = $1 WHERE user_id = $2`, at, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *PostgresRepository) Delete(id int) error {
	res, err := r.db.Exec(`DELETE FROM users WHERE user_id = $1`, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func requireRow(res sql.Result) error {
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

func scanUser(row rowScanner) (User, error) {
	var (
		u         User
		phone     sql.NullString
		address   sql.NullString
		lastLogin sql.NullTime
	)
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.Password, &u.Role, &u.Status,
		&phone, &address, &lastLogin, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return User{}, err
	}
	if phone.Valid {
		u.Phone = &phone.String
	}
	if address.Valid {
		u.Address = &address.String
	}
	if lastLogin.Valid {
		t := lastLogin.Time
		u.LastLogin = &t
	}
	return u, nil
}
