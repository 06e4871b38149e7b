package main

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/iansaccar7/casasbr-rental/internal/database"
)

// Periodic maintenance, meant to run from cron. Confirmed stays whose
// check-out has passed are moved to completed so they stop blocking new
// reservations.
func main() {
	_ = godotenv.Load()

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		log.Fatal("DATABASE_URL is required")
	}

	db, err := database.Connect(databaseURL)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}

	now := time.Now()

	res1 := db.Exec(`UPDATE bookings SET status = 'completed', updated_at = ? WHERE status = 'confirmed' AND check_out < ?`, now, now)
	if res1.Error != nil {
		log.Fatalf("completing past bookings failed: %v", res1.Error)
	}

	// Pending requests nobody ever confirmed expire once the stay is over.
	res2 := db.Exec(`UPDATE bookings SET status = 'cancelled', updated_at = ? WHERE status = 'pending' AND check_out < ?`, now, now)
	if res2.Error != nil {
		log.Fatalf("expiring stale bookings failed: %v", res2.Error)
	}

	log.Printf("booking cleanup completed: completed=%d expired=%d", res1.RowsAffected, res2.RowsAffected)
}
