// provision 建立資料表與預設管理員。冪等，部署時跑一次即可，
// server 啟動不做任何隱式初始化。
package main

import (
	"context"
	"log"

	"mela-ticketing/config"
	"mela-ticketing/internal/database"
	"mela-ticketing/internal/repository"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

const schema = `
CREATE TABLE IF NOT EXISTS rides (
	id SERIAL PRIMARY KEY,
	name VARCHAR(150) NOT NULL,
	price INTEGER NOT NULL,
	description TEXT,
	image VARCHAR(300),
	capacity INTEGER NOT NULL DEFAULT 100,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS bookings (
	id SERIAL PRIMARY KEY,
	ride_id INTEGER NOT NULL REFERENCES rides(id),
	name VARCHAR(150) NOT NULL,
	phone VARCHAR(30),
	email VARCHAR(150),
	quantity INTEGER NOT NULL DEFAULT 1,
	total_amount INTEGER NOT NULL,
	status VARCHAR(50) NOT NULL DEFAULT 'booked',
	qr_data VARCHAR(500) NOT NULL DEFAULT '',
	gateway_order_id VARCHAR(200),
	gateway_payment_id VARCHAR(200),
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_bookings_ride_id ON bookings (ride_id);
CREATE INDEX IF NOT EXISTS idx_bookings_created_at ON bookings (created_at);

CREATE TABLE IF NOT EXISTS admins (
	id SERIAL PRIMARY KEY,
	username VARCHAR(150) NOT NULL UNIQUE,
	password_hash VARCHAR(300) NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
`

func main() {
	_ = godotenv.Load()

	cfg := config.LoadConfig()
	ctx := context.Background()

	pool, err := database.InitDatabase(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer pool.Close()

	if _, err := pool.Exec(ctx, schema); err != nil {
		log.Fatalf("Failed to apply schema: %v", err)
	}
	log.Println("Schema applied")

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.Auth.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash admin password: %v", err)
	}

	adminRepo := repository.NewAdminRepository(pool)
	created, err := adminRepo.CreateIfAbsent(ctx, cfg.Auth.AdminUsername, string(hash))
	if err != nil {
		log.Fatalf("Failed to provision admin: %v", err)
	}

	if created {
		log.Printf("Admin %q created", cfg.Auth.AdminUsername)
	} else {
		log.Printf("Admin %q already exists, left untouched", cfg.Auth.AdminUsername)
	}
}
