package config

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	// DB is the raw pgx pool, used on thin-response hot paths.
	DB *pgxpool.Pool

	// Gorm is the query-builder handle the catalog engine composes on.
	Gorm *gorm.DB
)

func InitDB() {
	initPgx()
	initGORM()
}

func dbURL() string {
	url := os.Getenv("DATABASE_URL")
	if url != "" {
		return url
	}
	log.Println("⚠️ DATABASE_URL not set, using local default")
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/wincellar?sslmode=disable",
		getEnv("DB_USER", "postgres"),
		getEnv("DB_PASSWORD", ""),
		getEnv("DB_HOST", "localhost"),
		getEnv("DB_PORT", "5432"),
	)
}

func initPgx() {
	var err error
	DB, err = pgxpool.New(context.Background(), dbURL())
	if err != nil {
		log.Fatalf("❌ Unable to connect to database: %v", err)
	}

	if err = DB.Ping(context.Background()); err != nil {
		log.Fatalf("❌ Database ping failed: %v", err)
	}

	log.Println("✅ Database connected (pgx)")
}

func initGORM() {
	gormLogger := logger.Default.LogMode(logger.Info)
	if os.Getenv("APP_ENV") == "production" {
		gormLogger = logger.Default.LogMode(logger.Silent)
	}

	var err error
	Gorm, err = gorm.Open(postgres.Open(dbURL()), &gorm.Config{
		Logger:  gormLogger,
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		log.Fatalf("❌ Failed to connect to database with GORM: %v", err)
	}
	if sqlDB, err := Gorm.DB(); err == nil {
		sqlDB.SetMaxOpenConns(10)
		sqlDB.SetMaxIdleConns(2)
		sqlDB.SetConnMaxLifetime(5 * time.Minute)
		sqlDB.SetConnMaxIdleTime(2 * time.Minute)
	}
	log.Println("✅ Database connected (GORM)")
}

func CloseDB() {
	if DB != nil {
		DB.Close()
		log.Println("✅ Database connection closed (pgx)")
	}
	if Gorm != nil {
		sqlDB, _ := Gorm.DB()
		if sqlDB != nil {
			sqlDB.Close()
			log.Println("✅ Database connection closed (GORM)")
		}
	}
}

// WithTimeout returns a context with a 10s timeout for store calls
func WithTimeout() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 10*time.Second)
}

func WithCustomTimeout(duration time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), duration)
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
