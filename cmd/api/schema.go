package main

import "database/sql"

// ensureSchema creates every table the storefront needs. All statements are
// idempotent so restarting the server against an existing database is safe.
func ensureSchema(db *sql.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id SERIAL PRIMARY KEY,
			email TEXT NOT NULL UNIQUE,
			password TEXT NOT NULL,
			name TEXT NOT NULL DEFAULT '',
			billing_id INT,
			created_at TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS product_categories (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL UNIQUE,
			image TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS products (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			sku TEXT NOT NULL DEFAULT '',
			category_id INT REFERENCES product_categories(id),
			description TEXT NOT NULL DEFAULT '',
			additional_information TEXT,
			original_price NUMERIC(10,2) NOT NULL,
			discounted_price NUMERIC(10,2),
			is_featured BOOLEAN NOT NULL DEFAULT FALSE,
			featured_image TEXT NOT NULL DEFAULT ''
		)`,
		`CREATE TABLE IF NOT EXISTS product_images (
			id SERIAL PRIMARY KEY,
			product_id INT NOT NULL REFERENCES products(id),
			image TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS customer_reviews (
			id SERIAL PRIMARY KEY,
			product_id INT NOT NULL REFERENCES products(id),
			user_id INT NOT NULL REFERENCES users(id),
			text TEXT NOT NULL,
			rating INT NOT NULL,
			created_at TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS tags (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL UNIQUE
		)`,
		`CREATE TABLE IF NOT EXISTS product_tags (
			product_id INT NOT NULL REFERENCES products(id),
			tag_id INT NOT NULL REFERENCES tags(id),
			PRIMARY KEY (product_id, tag_id)
		)`,
		`CREATE TABLE IF NOT EXISTS countries (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL UNIQUE
		)`,
		`CREATE TABLE IF NOT EXISTS promocodes (
			id SERIAL PRIMARY KEY,
			code TEXT NOT NULL UNIQUE,
			discount_percent INT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS order_billings (
			id SERIAL PRIMARY KEY,
			first_name TEXT NOT NULL,
			last_name TEXT NOT NULL,
			address TEXT NOT NULL,
			address2 TEXT,
			country_id INT REFERENCES countries(id),
			state TEXT,
			zip TEXT,
			is_shipping_same BOOLEAN NOT NULL DEFAULT FALSE,
			payment_type TEXT NOT NULL,
			payment_status TEXT NOT NULL DEFAULT 'pending',
			save_as_default BOOLEAN NOT NULL DEFAULT FALSE,
			payment_reference TEXT NOT NULL DEFAULT ''
		)`,
		`CREATE TABLE IF NOT EXISTS orders (
			id SERIAL PRIMARY KEY,
			user_id INT NOT NULL REFERENCES users(id),
			billing_id INT REFERENCES order_billings(id),
			promocode_id INT REFERENCES promocodes(id)
		)`,
		// one open order per user; closed orders are unconstrained history
		`CREATE UNIQUE INDEX IF NOT EXISTS orders_open_per_user
			ON orders (user_id) WHERE billing_id IS NULL`,
		`CREATE TABLE IF NOT EXISTS order_items (
			id SERIAL PRIMARY KEY,
			order_id INT NOT NULL REFERENCES orders(id),
			product_id INT NOT NULL REFERENCES products(id),
			quantity INT NOT NULL,
			UNIQUE (order_id, product_id)
		)`,
		`CREATE TABLE IF NOT EXISTS favourites (
			id SERIAL PRIMARY KEY,
			user_id INT NOT NULL REFERENCES users(id),
			product_id INT NOT NULL REFERENCES products(id),
			UNIQUE (user_id, product_id)
		)`,
		`CREATE TABLE IF NOT EXISTS post_categories (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL UNIQUE
		)`,
		`CREATE TABLE IF NOT EXISTS posts (
			id SERIAL PRIMARY KEY,
			title TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			category_id INT REFERENCES post_categories(id),
			featured_image TEXT,
			created_at TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS post_tags (
			post_id INT NOT NULL REFERENCES posts(id),
			tag_id INT NOT NULL REFERENCES tags(id),
			PRIMARY KEY (post_id, tag_id)
		)`,
		`CREATE TABLE IF NOT EXISTS post_comments (
			id SERIAL PRIMARY KEY,
			post_id INT NOT NULL REFERENCES posts(id),
			user_id INT NOT NULL REFERENCES users(id),
			text TEXT NOT NULL,
			created_at TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS subscriptions (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL DEFAULT '',
			email TEXT NOT NULL UNIQUE
		)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}
