package bookings

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, booking *Booking, seats []BookingSeat) error
	GetByID(ctx context.Context, id uuid.UUID) (*Booking, error)
	GetByRef(ctx context.Context, ref string) (*Booking, error)
	GetByIdempotencyKey(ctx context.Context, key string) (*Booking, error)
	GetByUser(ctx context.Context, userID uuid.UUID) ([]Booking, error)
	Cancel(ctx context.Context, id uuid.UUID) error

	// BookedSeatIDs feeds the seat grid's booked overlay.
	BookedSeatIDs(ctx context.Context, showID uuid.UUID) ([]uuid.UUID, error)

	// GetBoardMeta feeds the kitchen board with per-booking context.
	GetBoardMeta(ctx context.Context, bookingIDs []uuid.UUID) (map[uuid.UUID]BoardMeta, error)
}

// BoardMeta is the slice of a booking the kitchen board displays next
// to its food order.
type BoardMeta struct {
	BookingID  uuid.UUID `json:"booking_id"`
	BookingRef string    `json:"booking_ref"`
	ShowTitle  string    `json:"show_title"`
	ShowTime   time.Time `json:"show_time"`
	VenueName  string    `json:"venue_name"`
	SeatLabels []string  `json:"seat_labels"`
	CreatedAt  time.Time `json:"created_at"`
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, booking *Booking, seats []BookingSeat) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(booking).Error; err != nil {
			return err
		}
		for i := range seats {
			seats[i].BookingID = booking.ID
		}
		return tx.Create(&seats).Error
	})
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Booking, error) {
	var booking Booking
	err := r.db.WithContext(ctx).
		Preload("Seats").
		Where("id = ?", id).
		First(&booking).Error
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *repository) GetByRef(ctx context.Context, ref string) (*Booking, error) {
	var booking Booking
	err := r.db.WithContext(ctx).
		Preload("Seats").
		Where("booking_ref = ?", ref).
		First(&booking).Error
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *repository) GetByIdempotencyKey(ctx context.Context, key string) (*Booking, error) {
	var booking Booking
	err := r.db.WithContext(ctx).
		Preload("Seats").
		Where("idempotency_key = ?", key).
		First(&booking).Error
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *repository) GetByUser(ctx context.Context, userID uuid.UUID) ([]Booking, error) {
	var bookings []Booking
	err := r.db.WithContext(ctx).
		Preload("Seats").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&bookings).Error
	return bookings, err
}

func (r *repository) Cancel(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&Booking{}).
			Where("id = ? AND status = ?", id, StatusConfirmed).
			Updates(map[string]interface{}{
				"status":       StatusCancelled,
				"cancelled_at": gorm.Expr("NOW()"),
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		// Free the seats for resale.
		return tx.Model(&BookingSeat{}).
			Where("booking_id = ?", id).
			Update("active", false).Error
	})
}

func (r *repository) BookedSeatIDs(ctx context.Context, showID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.WithContext(ctx).
		Model(&BookingSeat{}).
		Where("show_id = ? AND active", showID).
		Pluck("seat_id", &ids).Error
	return ids, err
}

func (r *repository) GetBoardMeta(ctx context.Context, bookingIDs []uuid.UUID) (map[uuid.UUID]BoardMeta, error) {
	meta := make(map[uuid.UUID]BoardMeta, len(bookingIDs))
	if len(bookingIDs) == 0 {
		return meta, nil
	}

	var rows []BoardMeta
	err := r.db.WithContext(ctx).
		Table("bookings").
		Select("bookings.id AS booking_id, bookings.booking_ref, bookings.created_at, shows.title AS show_title, shows.show_time, venues.name AS venue_name").
		Joins("JOIN shows ON shows.id = bookings.show_id").
		Joins("JOIN venues ON venues.id = shows.venue_id").
		Where("bookings.id IN ?", bookingIDs).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	var seatRows []BookingSeat
	err = r.db.WithContext(ctx).
		Where("booking_id IN ?", bookingIDs).
		Order("seat_label ASC").
		Find(&seatRows).Error
	if err != nil {
		return nil, err
	}

	labels := make(map[uuid.UUID][]string, len(rows))
	for i := range seatRows {
		labels[seatRows[i].BookingID] = append(labels[seatRows[i].BookingID], seatRows[i].SeatLabel)
	}

	for i := range rows {
		rows[i].SeatLabels = labels[rows[i].BookingID]
		meta[rows[i].BookingID] = rows[i]
	}
	return meta, nil
}
