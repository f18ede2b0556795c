package database

import (
	"fmt"
	"log"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Local development defaults. Production deployments configure everything
// through the environment; Cloud Run additionally injects
// INSTANCE_CONNECTION_NAME, which switches the DSN to the Cloud SQL socket.
const (
	defaultDBUser = "postgres"
	defaultDBName = "dogi_support"
	defaultDBHost = "localhost"
	defaultDBPort = "5432"

	cloudSQLSocketDir = "/cloudsql"
)

var DB *gorm.DB

// buildDSN assembles the PostgreSQL DSN from the environment
func buildDSN() string {
	user := envOr("DB_USER", defaultDBUser)
	pass := os.Getenv("DB_PASS")
	name := envOr("DB_NAME", defaultDBName)

	if instance := os.Getenv("INSTANCE_CONNECTION_NAME"); instance != "" {
		log.Printf("Connecting to Cloud SQL via socket: %s", instance)
		return fmt.Sprintf("host=%s/%s user=%s password=%s dbname=%s sslmode=disable",
			cloudSQLSocketDir, instance, user, pass, name)
	}

	host := envOr("DB_HOST", defaultDBHost)
	port := envOr("DB_PORT", defaultDBPort)
	log.Printf("Connecting to PostgreSQL at %s:%s", host, port)
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		host, user, pass, name, port)
}

// Connect opens the database connection and stores it in DB
func Connect() {
	var err error

	DB, err = gorm.Open(postgres.Open(buildDSN()), &gorm.Config{})
	if err != nil {
		log.Printf("Failed to connect to database: %v", err)
		panic(err)
	}

	log.Println("✅ Database connected successfully!")
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
