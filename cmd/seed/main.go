package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"showtime/internal/announcements"
	"showtime/internal/food"
	"showtime/internal/promos"
	"showtime/internal/regions"
	"showtime/internal/shared/config"
	"showtime/internal/shared/database"
	"showtime/internal/shows"
	"showtime/internal/users"
	"showtime/internal/venues"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type Seeder struct {
	db *database.DB
}

func main() {
	fmt.Println("🌱 Starting Showtime Database Seeder...")

	cfg := config.Load()

	db, err := database.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	seeder := &Seeder{db: db}

	fmt.Println("\n🧹 Cleaning database...")
	if err := seeder.CleanDatabase(); err != nil {
		log.Fatalf("Failed to clean database: %v", err)
	}
	fmt.Println("✅ Database cleaned successfully")

	fmt.Println("\n🌱 Seeding database...")
	if err := seeder.SeedAll(); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}
	fmt.Println("✅ Database seeded successfully")

	fmt.Println("\n🎉 Seeding completed! Database is ready for testing.")
}

// CleanDatabase truncates all tables in the correct order (respecting foreign key constraints)
func (s *Seeder) CleanDatabase() error {
	// Delete in reverse dependency order
	tables := []string{
		"food_line_items",
		"booking_seats",
		"bookings",
		"seats",
		"screen_sections",
		"screens",
		"shows",
		"venues",
		"food_items",
		"promo_codes",
		"announcements",
		"cities",
		"districts",
		"user_roles",
		"users",
	}

	tx := s.db.PostgreSQL.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Exec("SET CONSTRAINTS ALL DEFERRED").Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to defer constraints: %w", err)
	}

	for _, table := range tables {
		fmt.Printf("  Truncating table: %s\n", table)
		if err := tx.Exec(fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY CASCADE", table)).Error; err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to truncate table %s: %w", table, err)
		}
	}

	if err := tx.Exec("SET CONSTRAINTS ALL IMMEDIATE").Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to restore constraints: %w", err)
	}

	return tx.Commit().Error
}

// SeedAll seeds all required data
func (s *Seeder) SeedAll() error {
	ctx := context.Background()

	userIDs, err := s.SeedUsers()
	if err != nil {
		return fmt.Errorf("failed to seed users: %w", err)
	}

	cities, err := s.SeedRegions()
	if err != nil {
		return fmt.Errorf("failed to seed regions: %w", err)
	}

	screens, err := s.SeedVenues(cities)
	if err != nil {
		return fmt.Errorf("failed to seed venues: %w", err)
	}

	if err := s.SeedShows(userIDs["admin"], screens); err != nil {
		return fmt.Errorf("failed to seed shows: %w", err)
	}

	if err := s.SeedFoodItems(); err != nil {
		return fmt.Errorf("failed to seed food items: %w", err)
	}

	if err := s.SeedPromos(); err != nil {
		return fmt.Errorf("failed to seed promo codes: %w", err)
	}

	if err := s.SeedAnnouncements(userIDs["admin"]); err != nil {
		return fmt.Errorf("failed to seed announcements: %w", err)
	}

	// Clear Redis cache to ensure fresh state
	if s.db.Redis != nil {
		if err := s.db.Redis.FlushDB(ctx).Err(); err != nil {
			log.Printf("Warning: Failed to clear Redis cache: %v", err)
		}
	}

	return nil
}

// SeedUsers creates an admin, a kitchen staff account and two customers
func (s *Seeder) SeedUsers() (map[string]uuid.UUID, error) {
	fmt.Println("  👤 Seeding users...")

	userIDs := make(map[string]uuid.UUID)

	// Hash password for all users (using "qwerty")
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte("qwerty"), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	usersData := []struct {
		key       string
		firstName string
		lastName  string
		email     string
		role      users.Role
	}{
		{"admin", "Admin", "User", "admin@showtime.in", users.RoleAdmin},
		{"kitchen", "Kitchen", "Staff", "kitchen@showtime.in", users.RoleKitchen},
		{"user1", "Asha", "Nair", "asha.nair@gmail.com", users.RoleUser},
		{"user2", "Rohan", "Mehta", "rohan.mehta@gmail.com", users.RoleUser},
	}

	for _, userData := range usersData {
		user := users.User{
			ID:        uuid.New(),
			FirstName: userData.firstName,
			LastName:  userData.lastName,
			Email:     userData.email,
			Password:  string(hashedPassword),
			Role:      userData.role,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}

		if err := s.db.PostgreSQL.Create(&user).Error; err != nil {
			return nil, fmt.Errorf("failed to create user %s: %w", userData.email, err)
		}

		userIDs[userData.key] = user.ID
		fmt.Printf("    ✅ Created user: %s (%s)\n", user.Email, user.Role)
	}

	return userIDs, nil
}

// SeedRegions creates districts with their cities
func (s *Seeder) SeedRegions() ([]regions.City, error) {
	fmt.Println("  🗺️ Seeding regions...")

	regionsData := map[string][]string{
		"Maharashtra": {"Mumbai", "Pune"},
		"Karnataka":   {"Bengaluru"},
		"Delhi NCR":   {"New Delhi", "Gurugram"},
	}

	var cities []regions.City
	for districtName, cityNames := range regionsData {
		district := regions.District{
			ID:   uuid.New(),
			Name: districtName,
		}
		if err := s.db.PostgreSQL.Create(&district).Error; err != nil {
			return nil, fmt.Errorf("failed to create district %s: %w", districtName, err)
		}

		for _, cityName := range cityNames {
			city := regions.City{
				ID:         uuid.New(),
				DistrictID: district.ID,
				Name:       cityName,
				IsActive:   true,
			}
			if err := s.db.PostgreSQL.Create(&city).Error; err != nil {
				return nil, fmt.Errorf("failed to create city %s: %w", cityName, err)
			}
			cities = append(cities, city)
			fmt.Printf("    ✅ Created city: %s (%s)\n", city.Name, districtName)
		}
	}

	return cities, nil
}

type seededScreen struct {
	venue  venues.Venue
	screen venues.Screen
}

// SeedVenues creates venues with screens, sections and generated seat layouts
func (s *Seeder) SeedVenues(cities []regions.City) ([]seededScreen, error) {
	fmt.Println("  🏟️ Seeding venues...")

	venuesData := []struct {
		name    string
		city    string
		address string
	}{
		{"Grand Cinema", "Mumbai", "12 Marine Drive, Mumbai"},
		{"Galaxy Multiplex", "Mumbai", "45 Linking Road, Bandra"},
		{"Orion Mall Screens", "Bengaluru", "Brigade Gateway, Rajajinagar"},
		{"Capitol Theatre", "New Delhi", "Connaught Place, New Delhi"},
	}

	// One screen per venue, three banded sections each
	sectionsData := []struct {
		category    string
		price       float64
		rowStart    string
		rowEnd      string
		seatsPerRow int
	}{
		{"regular", 250, "A", "D", 12},
		{"premium", 450, "E", "G", 10},
		{"recliner", 800, "H", "H", 6},
	}

	var screens []seededScreen
	for _, venueData := range venuesData {
		venue := venues.Venue{
			ID:      uuid.New(),
			Name:    venueData.name,
			City:    venueData.city,
			Address: venueData.address,
		}
		if err := s.db.PostgreSQL.Create(&venue).Error; err != nil {
			return nil, fmt.Errorf("failed to create venue %s: %w", venue.Name, err)
		}

		screen := venues.Screen{
			ID:      uuid.New(),
			VenueID: venue.ID,
			Name:    "Screen 1",
		}
		if err := s.db.PostgreSQL.Create(&screen).Error; err != nil {
			return nil, fmt.Errorf("failed to create screen for %s: %w", venue.Name, err)
		}

		sections := make([]venues.ScreenSection, 0, len(sectionsData))
		for _, sectionData := range sectionsData {
			sections = append(sections, venues.ScreenSection{
				ID:          uuid.New(),
				ScreenID:    screen.ID,
				Category:    sectionData.category,
				Price:       sectionData.price,
				RowStart:    sectionData.rowStart,
				RowEnd:      sectionData.rowEnd,
				SeatsPerRow: sectionData.seatsPerRow,
			})
		}
		if err := s.db.PostgreSQL.Create(&sections).Error; err != nil {
			return nil, fmt.Errorf("failed to create sections for %s: %w", venue.Name, err)
		}

		layout, err := venues.GenerateLayout(screen.ID, sections)
		if err != nil {
			return nil, fmt.Errorf("failed to generate layout for %s: %w", venue.Name, err)
		}
		if err := s.db.PostgreSQL.CreateInBatches(&layout, 500).Error; err != nil {
			return nil, fmt.Errorf("failed to create seats for %s: %w", venue.Name, err)
		}

		screens = append(screens, seededScreen{venue: venue, screen: screen})
		fmt.Printf("    ✅ Created venue: %s (%s, %d seats)\n", venue.Name, venue.City, len(layout))
	}

	return screens, nil
}

// SeedShows creates published shows across the seeded venues
func (s *Seeder) SeedShows(adminID uuid.UUID, screens []seededScreen) error {
	fmt.Println("  🎬 Seeding shows...")

	showsData := []struct {
		title       string
		kind        shows.Kind
		language    string
		durationMin int
		certificate string
	}{
		{"Interstellar", shows.KindMovie, "English", 169, "UA"},
		{"3 Idiots", shows.KindMovie, "Hindi", 170, "U"},
		{"Standup Night Live", shows.KindEvent, "English", 90, "A"},
		{"Mumbai Indians vs CSK Screening", shows.KindSport, "Hindi", 240, "U"},
	}

	for i, showData := range showsData {
		target := screens[i%len(screens)]
		show := shows.Show{
			ID:          uuid.New(),
			Title:       showData.title,
			Kind:        showData.kind,
			Language:    showData.language,
			DurationMin: showData.durationMin,
			Certificate: showData.certificate,
			City:        target.venue.City,
			VenueID:     target.venue.ID,
			ScreenID:    target.screen.ID,
			ShowTime:    time.Now().AddDate(0, 0, i+1).Truncate(time.Hour),
			Status:      shows.ShowStatusPublished,
			CreatedBy:   adminID,
		}
		if err := s.db.PostgreSQL.Create(&show).Error; err != nil {
			return fmt.Errorf("failed to create show %s: %w", show.Title, err)
		}
		fmt.Printf("    ✅ Created show: %s (%s at %s)\n", show.Title, show.Kind, target.venue.Name)
	}

	return nil
}

// SeedFoodItems populates the concession catalog
func (s *Seeder) SeedFoodItems() error {
	fmt.Println("  🍿 Seeding food items...")

	itemsData := []struct {
		name     string
		category string
		price    float64
	}{
		{"Salted Popcorn (Large)", "snacks", 350},
		{"Caramel Popcorn (Regular)", "snacks", 280},
		{"Cheese Nachos", "snacks", 320},
		{"Veg Burger", "snacks", 220},
		{"Cola (500ml)", "beverages", 180},
		{"Cold Coffee", "beverages", 210},
		{"Popcorn + Cola Combo", "combos", 480},
	}

	for _, itemData := range itemsData {
		item := food.FoodItem{
			ID:          uuid.New(),
			Name:        itemData.name,
			Category:    itemData.category,
			Price:       itemData.price,
			IsAvailable: true,
		}
		if err := s.db.PostgreSQL.Create(&item).Error; err != nil {
			return fmt.Errorf("failed to create food item %s: %w", item.Name, err)
		}
		fmt.Printf("    ✅ Created food item: %s (₹%.0f)\n", item.Name, item.Price)
	}

	return nil
}

// SeedPromos creates a couple of active promo codes
func (s *Seeder) SeedPromos() error {
	fmt.Println("  🎟️ Seeding promo codes...")

	until := time.Now().AddDate(0, 1, 0)
	promosData := []promos.PromoCode{
		{
			ID:              uuid.New(),
			Code:            "WELCOME10",
			Description:     "10% off for new users",
			DiscountPercent: 10,
			MaxDiscount:     150,
			IsActive:        true,
			ValidUntil:      &until,
		},
		{
			ID:              uuid.New(),
			Code:            "WEEKEND25",
			Description:     "25% off weekend bookings",
			DiscountPercent: 25,
			MaxDiscount:     300,
			IsActive:        true,
			ValidUntil:      &until,
		},
	}

	for i := range promosData {
		if err := s.db.PostgreSQL.Create(&promosData[i]).Error; err != nil {
			return fmt.Errorf("failed to create promo %s: %w", promosData[i].Code, err)
		}
		fmt.Printf("    ✅ Created promo: %s (%.0f%%)\n", promosData[i].Code, promosData[i].DiscountPercent)
	}

	return nil
}

// SeedAnnouncements creates a global and a city-scoped announcement
func (s *Seeder) SeedAnnouncements(adminID uuid.UUID) error {
	fmt.Println("  📣 Seeding announcements...")

	announcementsData := []announcements.Announcement{
		{
			ID:        uuid.New(),
			Title:     "Welcome to Showtime",
			Message:   "Book tickets, pick your seats and order snacks to your seat.",
			IsActive:  true,
			CreatedBy: adminID,
		},
		{
			ID:        uuid.New(),
			Title:     "Mumbai Food Court Upgraded",
			Message:   "The Grand Cinema food court now delivers to recliner seats.",
			City:      "Mumbai",
			IsActive:  true,
			CreatedBy: adminID,
		},
	}

	for i := range announcementsData {
		if err := s.db.PostgreSQL.Create(&announcementsData[i]).Error; err != nil {
			return fmt.Errorf("failed to create announcement %s: %w", announcementsData[i].Title, err)
		}
		fmt.Printf("    ✅ Created announcement: %s\n", announcementsData[i].Title)
	}

	return nil
}
