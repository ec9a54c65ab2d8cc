package database

import (
	"gorm.io/gorm"
)

// MigrateConstraints adds constraints AutoMigrate cannot express
func MigrateConstraints(db *gorm.DB) error {
	// A seat can be sold at most once per show; cancelled bookings
	// deactivate their rows so the seat frees up
	err := db.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS unique_seat_per_show
		ON booking_seats (seat_id, show_id)
		WHERE active;
	`).Error
	if err != nil {
		return err
	}

	// Kitchen board fetches line items by booking
	err = db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_food_line_items_booking_id
		ON food_line_items (booking_id);
	`).Error
	if err != nil {
		return err
	}

	// One booking per idempotency key; NULLs stay unconstrained
	err = db.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS idx_bookings_idempotency_key
		ON bookings (idempotency_key)
		WHERE idempotency_key IS NOT NULL;
	`).Error
	if err != nil {
		return err
	}

	return nil
}
