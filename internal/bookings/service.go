package bookings

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"showtime/internal/food"
	"showtime/internal/promos"
	"showtime/internal/seats"
	"showtime/internal/shows"
	"showtime/pkg/logger"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrNoSeatsSelected  = errors.New("no seats selected")
	ErrEmptyUPIID       = errors.New("UPI id must not be empty")
	ErrBookingNotFound  = errors.New("booking not found")
	ErrNotBookingOwner  = errors.New("booking belongs to another user")
	ErrAlreadyCancelled = errors.New("booking is already cancelled")
	ErrSeatsTaken       = errors.New("one or more selected seats were just booked")
)

// Narrow collaborator surfaces, satisfied by the real services and by
// test fakes.

type SeatSelector interface {
	SelectedSeats(ctx context.Context, showID, userID uuid.UUID) ([]seats.Seat, error)
	ClearSelection(ctx context.Context, showID, userID uuid.UUID) error
}

type ShowSource interface {
	GetShow(id uuid.UUID) (*shows.Show, error)
}

type FoodOrders interface {
	BuildLineItems(ctx context.Context, lines []food.OrderLine) ([]food.FoodLineItem, error)
	SaveLineItems(ctx context.Context, bookingID uuid.UUID, items []food.FoodLineItem) error
	GetLineItemsByBooking(ctx context.Context, bookingID uuid.UUID) ([]food.FoodLineItem, error)
}

type PromoValidator interface {
	Validate(ctx context.Context, code string, amount float64) (*promos.ValidationResult, error)
}

// FeeRates carries the two convenience fee policies from config.
type FeeRates struct {
	Movie float64
	Event float64
}

type Service interface {
	Checkout(ctx context.Context, userID uuid.UUID, req CheckoutRequest, idempotencyKey string) (*BookingResponse, error)
	AddFood(ctx context.Context, userID, bookingID uuid.UUID, lines []food.OrderLine) (*BookingResponse, error)
	GetUserBookings(ctx context.Context, userID uuid.UUID) ([]BookingResponse, error)
	GetBooking(ctx context.Context, userID, bookingID uuid.UUID) (*BookingResponse, error)
	GetBookingByRef(ctx context.Context, ref string) (*BookingResponse, error)
	CancelBooking(ctx context.Context, userID, bookingID uuid.UUID) error
}

type service struct {
	repo       Repository
	seatSvc    SeatSelector
	showSource ShowSource
	foodSvc    FoodOrders
	promoSvc   PromoValidator
	rates      FeeRates
	log        *logger.Logger
}

func NewService(repo Repository, seatSvc SeatSelector, showSource ShowSource, foodSvc FoodOrders, promoSvc PromoValidator, rates FeeRates, log *logger.Logger) Service {
	return &service{
		repo:       repo,
		seatSvc:    seatSvc,
		showSource: showSource,
		foodSvc:    foodSvc,
		promoSvc:   promoSvc,
		rates:      rates,
		log:        log,
	}
}

func (s *service) Checkout(ctx context.Context, userID uuid.UUID, req CheckoutRequest, idempotencyKey string) (*BookingResponse, error) {
	// A replayed key returns the original booking untouched.
	if idempotencyKey != "" {
		existing, err := s.repo.GetByIdempotencyKey(ctx, idempotencyKey)
		if err == nil {
			return s.toResponse(ctx, existing), nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to check idempotency key: %w", err)
		}
	}

	showID, err := uuid.Parse(req.ShowID)
	if err != nil {
		return nil, fmt.Errorf("invalid show id: %w", err)
	}
	show, err := s.showSource.GetShow(showID)
	if err != nil {
		return nil, err
	}

	// All validation happens before any write.
	selected, err := s.seatSvc.SelectedSeats(ctx, showID, userID)
	if err != nil {
		return nil, err
	}
	if len(selected) == 0 {
		return nil, ErrNoSeatsSelected
	}
	if req.PaymentMethod == "upi" && strings.TrimSpace(req.UPIID) == "" {
		return nil, ErrEmptyUPIID
	}

	lineItems, err := s.foodSvc.BuildLineItems(ctx, req.FoodOrder)
	if err != nil {
		return nil, err
	}

	ticketSubtotal := 0.0
	seatRows := make([]BookingSeat, 0, len(selected))
	for i := range selected {
		ticketSubtotal += selected[i].Price
		seatRows = append(seatRows, BookingSeat{
			ShowID:    showID,
			SeatID:    selected[i].ID,
			SeatLabel: selected[i].Label(),
			Category:  string(selected[i].Category),
			Price:     selected[i].Price,
			Active:    true,
		})
	}

	policy := PolicyForKind(show.Kind, s.rates.Movie, s.rates.Event)
	fareLines := make([]FareLine, 0, len(lineItems))
	for i := range lineItems {
		fareLines = append(fareLines, FareLine{Price: lineItems[i].Price, Quantity: lineItems[i].Quantity})
	}
	fare := ComputeFare(ticketSubtotal, policy.Rate, fareLines)

	discount := 0.0
	promoCode := ""
	if req.PromoCode != "" {
		result, err := s.promoSvc.Validate(ctx, req.PromoCode, fare.Total)
		if err != nil {
			return nil, err
		}
		discount = result.Discount
		promoCode = result.Code
	}

	now := time.Now()
	booking := &Booking{
		UserID:         userID,
		ShowID:         showID,
		BookingRef:     GenerateBookingRef(now),
		TotalSeats:     len(selected),
		TicketSubtotal: fare.TicketSubtotal,
		ConvenienceFee: fare.ConvenienceFee,
		FoodSubtotal:   fare.FoodSubtotal,
		Discount:       discount,
		TotalAmount:    fare.Total - discount,
		PaymentMethod:  req.PaymentMethod,
		PaymentRef:     strings.TrimSpace(req.UPIID),
		PromoCode:      promoCode,
		Status:         StatusConfirmed,
	}
	if idempotencyKey != "" {
		booking.IdempotencyKey = &idempotencyKey
	}

	if err := s.repo.Create(ctx, booking, seatRows); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrSeatsTaken
		}
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	if err := s.foodSvc.SaveLineItems(ctx, booking.ID, lineItems); err != nil {
		// The booking stands; food can be re-ordered against it.
		s.log.ErrorWithContext(ctx, "failed to attach food order to booking", err, map[string]interface{}{
			"booking_id": booking.ID.String(),
		})
	}

	if err := s.seatSvc.ClearSelection(ctx, showID, userID); err != nil {
		s.log.Warn("failed to clear seat selection", "show_id", showID.String(), "user_id", userID.String(), "error", err)
	}

	s.log.LogBookingCreated(ctx, booking.ID.String(), booking.BookingRef, showID.String(), userID.String())
	booking.Seats = seatRows
	return s.toResponse(ctx, booking), nil
}

// AddFood attaches a later food order to a confirmed booking, e.g. from
// the seat during the show. Charged separately; the booking's original
// fare is not rewritten.
func (s *service) AddFood(ctx context.Context, userID, bookingID uuid.UUID, lines []food.OrderLine) (*BookingResponse, error) {
	booking, err := s.repo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to fetch booking: %w", err)
	}
	if booking.UserID != userID {
		return nil, ErrNotBookingOwner
	}
	if booking.Status != StatusConfirmed {
		return nil, ErrAlreadyCancelled
	}

	items, err := s.foodSvc.BuildLineItems(ctx, lines)
	if err != nil {
		return nil, err
	}
	if err := s.foodSvc.SaveLineItems(ctx, booking.ID, items); err != nil {
		return nil, fmt.Errorf("failed to save food order: %w", err)
	}

	return s.toResponse(ctx, booking), nil
}

func (s *service) toResponse(ctx context.Context, booking *Booking) *BookingResponse {
	lines, err := s.foodSvc.GetLineItemsByBooking(ctx, booking.ID)
	if err != nil {
		lines = nil
	}
	resp := booking.ToResponse(lines)
	return &resp
}

func (s *service) GetUserBookings(ctx context.Context, userID uuid.UUID) ([]BookingResponse, error) {
	bookings, err := s.repo.GetByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}

	responses := make([]BookingResponse, 0, len(bookings))
	for i := range bookings {
		responses = append(responses, *s.toResponse(ctx, &bookings[i]))
	}
	return responses, nil
}

func (s *service) GetBooking(ctx context.Context, userID, bookingID uuid.UUID) (*BookingResponse, error) {
	booking, err := s.repo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to fetch booking: %w", err)
	}
	if booking.UserID != userID {
		return nil, ErrNotBookingOwner
	}
	return s.toResponse(ctx, booking), nil
}

// GetBookingByRef resolves a scanned QR reference; used by venue staff.
func (s *service) GetBookingByRef(ctx context.Context, ref string) (*BookingResponse, error) {
	booking, err := s.repo.GetByRef(ctx, strings.ToUpper(strings.TrimSpace(ref)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to fetch booking: %w", err)
	}
	return s.toResponse(ctx, booking), nil
}

func (s *service) CancelBooking(ctx context.Context, userID, bookingID uuid.UUID) error {
	booking, err := s.repo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrBookingNotFound
		}
		return fmt.Errorf("failed to fetch booking: %w", err)
	}
	if booking.UserID != userID {
		return ErrNotBookingOwner
	}
	if !booking.Status.CanBeCancelled() {
		return ErrAlreadyCancelled
	}

	if err := s.repo.Cancel(ctx, bookingID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrAlreadyCancelled
		}
		return fmt.Errorf("failed to cancel booking: %w", err)
	}

	s.log.LogBookingCancelled(ctx, bookingID.String(), userID.String())
	return nil
}

func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "unique_seat_per_show")
}
