package database

import (
	"database/sql"
	"log"
)

// RunMigrations creates the schema if it does not exist yet. Safe to run on
// every startup.
func RunMigrations(db *sql.DB) error {
	log.Println("Running database migrations...")

	statements := []string{
		`CREATE EXTENSION IF NOT EXISTS pgcrypto`,
		`CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			username VARCHAR(50) NOT NULL UNIQUE,
			password VARCHAR(255) NOT NULL,
			role VARCHAR(10) NOT NULL CHECK (role IN ('ADMIN', 'TEACHER')),
			full_name VARCHAR(100) NOT NULL,
			phone VARCHAR(20),
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS classes (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name VARCHAR(100) NOT NULL,
			teacher_id UUID UNIQUE REFERENCES users(id) ON DELETE SET NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS students (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			class_id UUID NOT NULL REFERENCES classes(id) ON DELETE RESTRICT,
			full_name VARCHAR(100) NOT NULL,
			date_of_birth DATE NOT NULL,
			gender CHAR(1) NOT NULL CHECK (gender IN ('M', 'F')),
			guardian_name VARCHAR(100) NOT NULL,
			guardian_phone VARCHAR(20) NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_students_class_id ON students(class_id)`,
		`CREATE TABLE IF NOT EXISTS health_records (
			id BIGSERIAL PRIMARY KEY,
			student_id UUID NOT NULL REFERENCES students(id) ON DELETE CASCADE,
			record_date DATE NOT NULL,
			weight_kg NUMERIC(5,2),
			temperature_c NUMERIC(4,1) NOT NULL,
			note VARCHAR(255),
			CONSTRAINT uq_health_student_date UNIQUE (student_id, record_date)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_health_record_date ON health_records(record_date)`,
		`CREATE TABLE IF NOT EXISTS meal_logs (
			id BIGSERIAL PRIMARY KEY,
			student_id UUID NOT NULL REFERENCES students(id) ON DELETE CASCADE,
			log_date DATE NOT NULL,
			ate BOOLEAN NOT NULL DEFAULT TRUE,
			CONSTRAINT uq_meal_student_date UNIQUE (student_id, log_date)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_meal_log_date ON meal_logs(log_date)`,
		`CREATE TABLE IF NOT EXISTS invoices (
			id BIGSERIAL PRIMARY KEY,
			student_id UUID NOT NULL REFERENCES students(id) ON DELETE CASCADE,
			billing_month VARCHAR(7) NOT NULL,
			tuition_fee BIGINT NOT NULL,
			meal_unit_price BIGINT NOT NULL,
			meal_days INT NOT NULL,
			total_amount BIGINT NOT NULL,
			status VARCHAR(10) NOT NULL DEFAULT 'UNPAID' CHECK (status IN ('UNPAID', 'PAID')),
			paid_at TIMESTAMPTZ,
			collected_by UUID REFERENCES users(id) ON DELETE SET NULL,
			CONSTRAINT uq_invoice_student_month UNIQUE (student_id, billing_month)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_invoices_billing_month ON invoices(billing_month)`,
		`CREATE TABLE IF NOT EXISTS settings (
			id INT PRIMARY KEY CHECK (id = 1),
			tuition_fee_monthly BIGINT NOT NULL,
			meal_price_per_day BIGINT NOT NULL,
			max_students_per_class INT NOT NULL
		)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			log.Printf("Migration statement failed: %v", err)
			return err
		}
	}

	log.Println("Database migrations completed successfully")
	return nil
}
