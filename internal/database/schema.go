package database

import "database/sql"

// Bootstrap creates the tables the app needs when they do not exist yet.
// Statements are idempotent so repeated startups are safe.
func Bootstrap(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS users (
			user_id SERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			email TEXT NOT NULL UNIQUE,
			password TEXT NOT NULL,
			role TEXT NOT NULL DEFAULT 'customer',
			status TEXT NOT NULL DEFAULT 'active',
			phone TEXT,
			address TEXT,
			last_login TIMESTAMPTZ,
			cart JSONB NOT NULL DEFAULT '{}',
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS products (
			product_id SERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			brand TEXT NOT NULL,
			price NUMERIC(10,2) NOT NULL,
			image TEXT NOT NULL,
			category TEXT NOT NULL,
			gender TEXT,
			description TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS orders (
			order_id SERIAL PRIMARY KEY,
			user_id INT NOT NULL REFERENCES users (user_id),
			total NUMERIC(10,2) NOT NULL,
			status TEXT NOT NULL DEFAULT 'pending',
			shipping_address TEXT,
			shipping_city TEXT,
			shipping_state TEXT,
			shipping_zip TEXT,
			shipping_country TEXT DEFAULT 'USA',
			shipping_phone TEXT,
			shipping_method TEXT,
			shipping_cost NUMERIC(10,2) NOT NULL DEFAULT 0,
			tracking_number TEXT UNIQUE,
			carrier TEXT,
			estimated_delivery TIMESTAMPTZ,
			actual_delivery TIMESTAMPTZ,
			payment_method TEXT DEFAULT 'razorpay',
			payment_details TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS order_products (
			id SERIAL PRIMARY KEY,
			order_id INT NOT NULL REFERENCES orders (order_id) ON DELETE CASCADE,
			product_id INT NOT NULL REFERENCES products (product_id),
			quantity INT NOT NULL DEFAULT 1
		)`,
		`CREATE TABLE IF NOT EXISTS shipments (
			shipment_id SERIAL PRIMARY KEY,
			order_id INT NOT NULL UNIQUE REFERENCES orders (order_id) ON DELETE CASCADE,
			tracking_number TEXT NOT NULL UNIQUE,
			carrier TEXT NOT NULL DEFAULT 'Standard Carrier',
			status TEXT NOT NULL DEFAULT 'pending',
			current_location TEXT,
			estimated_delivery TIMESTAMPTZ,
			actual_delivery TIMESTAMPTZ,
			tracking_events JSONB NOT NULL DEFAULT '[]',
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		// duplicates are prevented by a pre-insert lookup, not a constraint
		`CREATE TABLE IF NOT EXISTS wishlists (
			wishlist_id SERIAL PRIMARY KEY,
			user_id INT NOT NULL REFERENCES users (user_id) ON DELETE CASCADE,
			product_id INT NOT NULL REFERENCES products (product_id),
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS addresses (
			address_id SERIAL PRIMARY KEY,
			user_id INT NOT NULL REFERENCES users (user_id) ON DELETE CASCADE,
			label TEXT,
			recipient TEXT,
			line1 TEXT NOT NULL,
			city TEXT,
			state TEXT,
			zip TEXT,
			country TEXT DEFAULT 'USA',
			phone TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
	}

	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}
