// Command seeder resets the order store and fills it with random rows,
// useful for exercising the terminals against a populated database.
//
// Environment: DB_PATH (defaults to pedidos.db), SEED_COUNT (defaults
// to 50).
package main

import (
	"fmt"
	"math/rand"
	"os"
	"strconv"

	"tracking/internal/adapters/out/sqlite/orderrepo"
	"tracking/internal/core/domain/model/order"

	"github.com/glebarez/sqlite"
	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
	"gorm.io/gorm"
)

func main() {
	_ = godotenv.Load(".env")

	dbPath := envOrDefault("DB_PATH", "pedidos.db")
	count, err := strconv.Atoi(envOrDefault("SEED_COUNT", "50"))
	if err != nil || count <= 0 {
		log.Fatalf("Invalid SEED_COUNT")
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error opening database %s: %v", dbPath, err)
	}
	if err := orderrepo.Migrate(db); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	if err := db.Exec(`DELETE FROM pedidos`).Error; err != nil {
		log.Fatalf("Error clearing table: %v", err)
	}

	statuses := order.AllStatuses()
	for i := 0; i < count; i++ {
		dto := orderrepo.OrderDTO{
			Pieza:         randomPieza(),
			Guarda:        strconv.Itoa(rand.Intn(150) + 1),
			Estado:        statuses[rand.Intn(len(statuses))].String(),
			PosteRestante: rand.Intn(10) == 0,
		}
		if err := db.Create(&dto).Error; err != nil {
			log.Fatalf("Error inserting row: %v", err)
		}
	}

	fmt.Printf("Seeded %d orders into %s\n", count, dbPath)
}

func randomPieza() string {
	digits := make([]byte, 9)
	for i := range digits {
		digits[i] = byte('0' + rand.Intn(10))
	}
	return "HC" + string(digits) + "AR"
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
