package config

import (
	"database/sql"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

type Config struct {
	DB        *sql.DB
	Host      string
	Port      string
	Debug     bool
	JWTSecret string
}

var AppConfig *Config

// env returns the value of key or fallback when unset.
func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Load reads .env (if present) and environment variables, opens the database
// connection pool and fills AppConfig.
func Load() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	AppConfig = &Config{
		Host:      env("APP_HOST", "127.0.0.1"),
		Port:      env("APP_PORT", "5000"),
		Debug:     env("APP_DEBUG", "1") == "1",
		JWTSecret: env("JWT_SECRET", "dev-secret-key-change-me"),
	}

	AppConfig.DB = initDB()
}

func initDB() *sql.DB {
	psqlInfo := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		env("DB_HOST", "localhost"),
		env("DB_PORT", "5432"),
		env("DB_USER", "kg_user"),
		env("DB_PASSWORD", "admin"),
		env("DB_NAME", "kindergarten_db"),
		env("DB_SSLMODE", "disable"),
	)

	db, err := sql.Open("postgres", psqlInfo)
	if err != nil {
		log.Fatal("Failed to open database connection:", err)
	}

	// Connection pool settings
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	if err = db.Ping(); err != nil {
		log.Fatal("Cannot establish database connection:", err)
	}

	log.Println("Database connected successfully")
	return db
}

func GetDB() *sql.DB {
	return AppConfig.DB
}

func GetJWTSecret() []byte {
	return []byte(AppConfig.JWTSecret)
}
