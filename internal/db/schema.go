package db

import (
	"database/sql"
	"fmt"
)

// EnsureSchema creates all tables on startup. Uniqueness for
// trips.destination, gallery_items.category and users.email is enforced here
// with unique keys so a duplicate insert fails atomically instead of relying
// on a pre-check query.
func EnsureSchema(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS trips (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			destination VARCHAR(191) NOT NULL,
			trip_date DATE NOT NULL,
			description TEXT NOT NULL,
			image_src TEXT NOT NULL,
			image_alt VARCHAR(255) NOT NULL,
			duration VARCHAR(100) NOT NULL,
			price VARCHAR(50) NOT NULL,
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
			UNIQUE KEY uq_trips_destination (destination)
		)`,
		`CREATE TABLE IF NOT EXISTS destinations (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			name VARCHAR(100) NOT NULL,
			description VARCHAR(500) NOT NULL,
			significance VARCHAR(200) NOT NULL,
			image TEXT NOT NULL,
			city VARCHAR(20) NOT NULL,
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS services (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			title VARCHAR(100) NOT NULL,
			description VARCHAR(500) NOT NULL,
			features JSON NOT NULL,
			icon VARCHAR(30) NOT NULL,
			color VARCHAR(20) NOT NULL,
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS testimonials (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			name VARCHAR(32) NOT NULL,
			location VARCHAR(100) NOT NULL,
			rating TINYINT NOT NULL,
			feedback VARCHAR(1000) NOT NULL,
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS gallery_items (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			category VARCHAR(191) NOT NULL,
			images JSON NOT NULL,
			UNIQUE KEY uq_gallery_category (category)
		)`,
		`CREATE TABLE IF NOT EXISTS leads (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			enquiry_for VARCHAR(191) NULL,
			name VARCHAR(32) NOT NULL,
			email VARCHAR(191) NOT NULL,
			subject VARCHAR(191) NOT NULL,
			message VARCHAR(1000) NOT NULL,
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS users (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			name VARCHAR(32) NOT NULL,
			email VARCHAR(191) NOT NULL,
			password_hash VARCHAR(100) NOT NULL,
			role VARCHAR(20) NOT NULL DEFAULT 'user',
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
			UNIQUE KEY uq_users_email (email)
		)`,
	}

	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
