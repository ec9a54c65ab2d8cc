package database

import (
	"showtime/internal/announcements"
	"showtime/internal/bookings"
	"showtime/internal/food"
	"showtime/internal/promos"
	"showtime/internal/regions"
	"showtime/internal/roles"
	"showtime/internal/seats"
	"showtime/internal/shows"
	"showtime/internal/users"
	"showtime/internal/venues"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&users.User{},
		&roles.UserRole{},
		&regions.District{},
		&regions.City{},
		&venues.Venue{},
		&venues.Screen{},
		&venues.ScreenSection{},
		&seats.Seat{},
		&shows.Show{},
		&bookings.Booking{},
		&bookings.BookingSeat{},
		&food.FoodItem{},
		&food.FoodLineItem{},
		&promos.PromoCode{},
		&announcements.Announcement{},
	)
}
