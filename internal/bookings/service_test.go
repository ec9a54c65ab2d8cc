package bookings

import (
	"context"
	"errors"
	"testing"

	"showtime/internal/food"
	"showtime/internal/promos"
	"showtime/internal/seats"
	"showtime/internal/shows"
	"showtime/pkg/logger"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type mockRepository struct {
	createFn    func(ctx context.Context, booking *Booking, seats []BookingSeat) error
	getByIDFn   func(ctx context.Context, id uuid.UUID) (*Booking, error)
	getByIdemFn func(ctx context.Context, key string) (*Booking, error)
	cancelFn    func(ctx context.Context, id uuid.UUID) error
	createCalls int
}

func (m *mockRepository) Create(ctx context.Context, booking *Booking, seats []BookingSeat) error {
	m.createCalls++
	if m.createFn != nil {
		return m.createFn(ctx, booking, seats)
	}
	booking.ID = uuid.New()
	return nil
}

func (m *mockRepository) GetByID(ctx context.Context, id uuid.UUID) (*Booking, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockRepository) GetByRef(ctx context.Context, ref string) (*Booking, error) {
	return nil, gorm.ErrRecordNotFound
}

func (m *mockRepository) GetByIdempotencyKey(ctx context.Context, key string) (*Booking, error) {
	if m.getByIdemFn != nil {
		return m.getByIdemFn(ctx, key)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockRepository) GetByUser(ctx context.Context, userID uuid.UUID) ([]Booking, error) {
	return nil, nil
}

func (m *mockRepository) Cancel(ctx context.Context, id uuid.UUID) error {
	if m.cancelFn != nil {
		return m.cancelFn(ctx, id)
	}
	return nil
}

func (m *mockRepository) BookedSeatIDs(ctx context.Context, showID uuid.UUID) ([]uuid.UUID, error) {
	return nil, nil
}

func (m *mockRepository) GetBoardMeta(ctx context.Context, bookingIDs []uuid.UUID) (map[uuid.UUID]BoardMeta, error) {
	return nil, nil
}

type mockSeatSelector struct {
	selectedFn func(ctx context.Context, showID, userID uuid.UUID) ([]seats.Seat, error)
	clearCalls int
}

func (m *mockSeatSelector) SelectedSeats(ctx context.Context, showID, userID uuid.UUID) ([]seats.Seat, error) {
	if m.selectedFn != nil {
		return m.selectedFn(ctx, showID, userID)
	}
	return nil, nil
}

func (m *mockSeatSelector) ClearSelection(ctx context.Context, showID, userID uuid.UUID) error {
	m.clearCalls++
	return nil
}

type mockShowSource struct {
	show *shows.Show
}

func (m *mockShowSource) GetShow(id uuid.UUID) (*shows.Show, error) {
	if m.show == nil {
		return nil, shows.ErrShowNotFound
	}
	return m.show, nil
}

type mockFoodOrders struct {
	buildFn   func(ctx context.Context, lines []food.OrderLine) ([]food.FoodLineItem, error)
	saveCalls int
}

func (m *mockFoodOrders) BuildLineItems(ctx context.Context, lines []food.OrderLine) ([]food.FoodLineItem, error) {
	if m.buildFn != nil {
		return m.buildFn(ctx, lines)
	}
	return nil, nil
}

func (m *mockFoodOrders) SaveLineItems(ctx context.Context, bookingID uuid.UUID, items []food.FoodLineItem) error {
	m.saveCalls++
	return nil
}

func (m *mockFoodOrders) GetLineItemsByBooking(ctx context.Context, bookingID uuid.UUID) ([]food.FoodLineItem, error) {
	return nil, nil
}

type mockPromoValidator struct {
	validateFn func(ctx context.Context, code string, amount float64) (*promos.ValidationResult, error)
}

func (m *mockPromoValidator) Validate(ctx context.Context, code string, amount float64) (*promos.ValidationResult, error) {
	if m.validateFn != nil {
		return m.validateFn(ctx, code, amount)
	}
	return nil, promos.ErrPromoNotFound
}

func selectedPair() []seats.Seat {
	return []seats.Seat{
		{ID: uuid.New(), Row: "A", Number: 1, Category: seats.CategoryRegular, Price: 400},
		{ID: uuid.New(), Row: "A", Number: 2, Category: seats.CategoryRegular, Price: 600},
	}
}

func newTestService(repo *mockRepository, seatSvc *mockSeatSelector, showSrc *mockShowSource, foodSvc *mockFoodOrders, promoSvc *mockPromoValidator) Service {
	return NewService(repo, seatSvc, showSrc, foodSvc, promoSvc, FeeRates{Movie: 0.05, Event: 0.03}, logger.New())
}

func movieShow() *shows.Show {
	return &shows.Show{ID: uuid.New(), Title: "Interstellar", Kind: shows.KindMovie}
}

func TestCheckoutSuccess(t *testing.T) {
	repo := &mockRepository{}
	seatSvc := &mockSeatSelector{
		selectedFn: func(ctx context.Context, showID, userID uuid.UUID) ([]seats.Seat, error) {
			return selectedPair(), nil
		},
	}
	foodSvc := &mockFoodOrders{
		buildFn: func(ctx context.Context, lines []food.OrderLine) ([]food.FoodLineItem, error) {
			return []food.FoodLineItem{{FoodName: "Popcorn", Price: 100, Quantity: 2}}, nil
		},
	}
	svc := newTestService(repo, seatSvc, &mockShowSource{show: movieShow()}, foodSvc, &mockPromoValidator{})

	req := CheckoutRequest{
		ShowID:        uuid.New().String(),
		PaymentMethod: "upi",
		UPIID:         "alice@upi",
		FoodOrder:     []food.OrderLine{{ItemID: uuid.New().String(), Quantity: 2}},
	}
	resp, err := svc.Checkout(context.Background(), uuid.New(), req, "")
	require.NoError(t, err)

	assert.Equal(t, 2, resp.TotalSeats)
	assert.Equal(t, []string{"A1", "A2"}, resp.SeatLabels)
	assert.Equal(t, 1000.0, resp.TicketSubtotal)
	assert.Equal(t, 50.0, resp.ConvenienceFee)
	assert.Equal(t, 200.0, resp.FoodSubtotal)
	assert.Equal(t, 1250.0, resp.TotalAmount)
	assert.Equal(t, StatusConfirmed, resp.Status)
	assert.Equal(t, "QR", resp.BookingRef[:2])

	assert.Equal(t, 1, repo.createCalls)
	assert.Equal(t, 1, foodSvc.saveCalls)
	assert.Equal(t, 1, seatSvc.clearCalls)
}

func TestCheckoutValidatesBeforeWriting(t *testing.T) {
	tests := []struct {
		name     string
		selected []seats.Seat
		req      CheckoutRequest
		wantErr  error
	}{
		{
			name:     "no seats selected",
			selected: nil,
			req:      CheckoutRequest{ShowID: uuid.New().String(), PaymentMethod: "upi", UPIID: "alice@upi"},
			wantErr:  ErrNoSeatsSelected,
		},
		{
			name:     "upi without id",
			selected: selectedPair(),
			req:      CheckoutRequest{ShowID: uuid.New().String(), PaymentMethod: "upi"},
			wantErr:  ErrEmptyUPIID,
		},
		{
			name:     "upi with blank id",
			selected: selectedPair(),
			req:      CheckoutRequest{ShowID: uuid.New().String(), PaymentMethod: "upi", UPIID: "   "},
			wantErr:  ErrEmptyUPIID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockRepository{}
			seatSvc := &mockSeatSelector{
				selectedFn: func(ctx context.Context, showID, userID uuid.UUID) ([]seats.Seat, error) {
					return tt.selected, nil
				},
			}
			foodSvc := &mockFoodOrders{}
			svc := newTestService(repo, seatSvc, &mockShowSource{show: movieShow()}, foodSvc, &mockPromoValidator{})

			_, err := svc.Checkout(context.Background(), uuid.New(), tt.req, "")
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Zero(t, repo.createCalls)
			assert.Zero(t, foodSvc.saveCalls)
			assert.Zero(t, seatSvc.clearCalls)
		})
	}
}

func TestCheckoutCardWithoutUPIID(t *testing.T) {
	repo := &mockRepository{}
	seatSvc := &mockSeatSelector{
		selectedFn: func(ctx context.Context, showID, userID uuid.UUID) ([]seats.Seat, error) {
			return selectedPair(), nil
		},
	}
	svc := newTestService(repo, seatSvc, &mockShowSource{show: movieShow()}, &mockFoodOrders{}, &mockPromoValidator{})

	req := CheckoutRequest{ShowID: uuid.New().String(), PaymentMethod: "card"}
	_, err := svc.Checkout(context.Background(), uuid.New(), req, "")
	require.NoError(t, err)
	assert.Equal(t, 1, repo.createCalls)
}

func TestCheckoutEventFeeRate(t *testing.T) {
	repo := &mockRepository{}
	seatSvc := &mockSeatSelector{
		selectedFn: func(ctx context.Context, showID, userID uuid.UUID) ([]seats.Seat, error) {
			return selectedPair(), nil
		},
	}
	show := &shows.Show{ID: uuid.New(), Title: "Standup Night", Kind: shows.KindEvent}
	svc := newTestService(repo, seatSvc, &mockShowSource{show: show}, &mockFoodOrders{}, &mockPromoValidator{})

	req := CheckoutRequest{ShowID: uuid.New().String(), PaymentMethod: "card"}
	resp, err := svc.Checkout(context.Background(), uuid.New(), req, "")
	require.NoError(t, err)
	assert.Equal(t, 30.0, resp.ConvenienceFee)
	assert.Equal(t, 1030.0, resp.TotalAmount)
}

func TestCheckoutIdempotencyReplay(t *testing.T) {
	existing := &Booking{
		ID:          uuid.New(),
		BookingRef:  "QRREPLAY01",
		Status:      StatusConfirmed,
		TotalAmount: 1050,
	}
	repo := &mockRepository{
		getByIdemFn: func(ctx context.Context, key string) (*Booking, error) {
			if key == "key-123" {
				return existing, nil
			}
			return nil, gorm.ErrRecordNotFound
		},
	}
	seatSvc := &mockSeatSelector{}
	svc := newTestService(repo, seatSvc, &mockShowSource{show: movieShow()}, &mockFoodOrders{}, &mockPromoValidator{})

	resp, err := svc.Checkout(context.Background(), uuid.New(), CheckoutRequest{}, "key-123")
	require.NoError(t, err)
	assert.Equal(t, "QRREPLAY01", resp.BookingRef)
	assert.Zero(t, repo.createCalls)
	assert.Zero(t, seatSvc.clearCalls)
}

func TestCheckoutSeatsTaken(t *testing.T) {
	repo := &mockRepository{
		createFn: func(ctx context.Context, booking *Booking, seats []BookingSeat) error {
			return errors.New(`duplicate key value violates unique constraint "unique_seat_per_show"`)
		},
	}
	seatSvc := &mockSeatSelector{
		selectedFn: func(ctx context.Context, showID, userID uuid.UUID) ([]seats.Seat, error) {
			return selectedPair(), nil
		},
	}
	svc := newTestService(repo, seatSvc, &mockShowSource{show: movieShow()}, &mockFoodOrders{}, &mockPromoValidator{})

	req := CheckoutRequest{ShowID: uuid.New().String(), PaymentMethod: "wallet"}
	_, err := svc.Checkout(context.Background(), uuid.New(), req, "")
	assert.ErrorIs(t, err, ErrSeatsTaken)
}

func TestCheckoutAppliesPromoDiscount(t *testing.T) {
	repo := &mockRepository{}
	seatSvc := &mockSeatSelector{
		selectedFn: func(ctx context.Context, showID, userID uuid.UUID) ([]seats.Seat, error) {
			return selectedPair(), nil
		},
	}
	promoSvc := &mockPromoValidator{
		validateFn: func(ctx context.Context, code string, amount float64) (*promos.ValidationResult, error) {
			assert.Equal(t, 1050.0, amount)
			return &promos.ValidationResult{Code: "SAVE10", DiscountPercent: 10, Discount: 105}, nil
		},
	}
	svc := newTestService(repo, seatSvc, &mockShowSource{show: movieShow()}, &mockFoodOrders{}, promoSvc)

	req := CheckoutRequest{ShowID: uuid.New().String(), PaymentMethod: "card", PromoCode: "save10"}
	resp, err := svc.Checkout(context.Background(), uuid.New(), req, "")
	require.NoError(t, err)
	assert.Equal(t, 105.0, resp.Discount)
	assert.Equal(t, 945.0, resp.TotalAmount)
	assert.Equal(t, "SAVE10", resp.PromoCode)
}

func TestCheckoutRejectsInvalidPromo(t *testing.T) {
	repo := &mockRepository{}
	seatSvc := &mockSeatSelector{
		selectedFn: func(ctx context.Context, showID, userID uuid.UUID) ([]seats.Seat, error) {
			return selectedPair(), nil
		},
	}
	svc := newTestService(repo, seatSvc, &mockShowSource{show: movieShow()}, &mockFoodOrders{}, &mockPromoValidator{})

	req := CheckoutRequest{ShowID: uuid.New().String(), PaymentMethod: "card", PromoCode: "NOPE"}
	_, err := svc.Checkout(context.Background(), uuid.New(), req, "")
	assert.ErrorIs(t, err, promos.ErrPromoNotFound)
	assert.Zero(t, repo.createCalls)
}

func TestCancelBooking(t *testing.T) {
	owner := uuid.New()
	bookingID := uuid.New()

	tests := []struct {
		name    string
		caller  uuid.UUID
		booking *Booking
		getErr  error
		wantErr error
	}{
		{
			name:    "owner cancels confirmed booking",
			caller:  owner,
			booking: &Booking{ID: bookingID, UserID: owner, Status: StatusConfirmed},
		},
		{
			name:    "not found",
			caller:  owner,
			getErr:  gorm.ErrRecordNotFound,
			wantErr: ErrBookingNotFound,
		},
		{
			name:    "different user",
			caller:  uuid.New(),
			booking: &Booking{ID: bookingID, UserID: owner, Status: StatusConfirmed},
			wantErr: ErrNotBookingOwner,
		},
		{
			name:    "already cancelled",
			caller:  owner,
			booking: &Booking{ID: bookingID, UserID: owner, Status: StatusCancelled},
			wantErr: ErrAlreadyCancelled,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockRepository{
				getByIDFn: func(ctx context.Context, id uuid.UUID) (*Booking, error) {
					if tt.getErr != nil {
						return nil, tt.getErr
					}
					return tt.booking, nil
				},
			}
			svc := newTestService(repo, &mockSeatSelector{}, &mockShowSource{}, &mockFoodOrders{}, &mockPromoValidator{})

			err := svc.CancelBooking(context.Background(), tt.caller, bookingID)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAddFood(t *testing.T) {
	owner := uuid.New()
	bookingID := uuid.New()
	repo := &mockRepository{
		getByIDFn: func(ctx context.Context, id uuid.UUID) (*Booking, error) {
			return &Booking{ID: bookingID, UserID: owner, Status: StatusConfirmed}, nil
		},
	}
	foodSvc := &mockFoodOrders{
		buildFn: func(ctx context.Context, lines []food.OrderLine) ([]food.FoodLineItem, error) {
			return []food.FoodLineItem{{FoodName: "Nachos", Price: 320, Quantity: 1}}, nil
		},
	}
	svc := newTestService(repo, &mockSeatSelector{}, &mockShowSource{}, foodSvc, &mockPromoValidator{})

	_, err := svc.AddFood(context.Background(), owner, bookingID, []food.OrderLine{{ItemID: uuid.New().String(), Quantity: 1}})
	require.NoError(t, err)
	assert.Equal(t, 1, foodSvc.saveCalls)

	_, err = svc.AddFood(context.Background(), uuid.New(), bookingID, nil)
	assert.ErrorIs(t, err, ErrNotBookingOwner)
}

func TestAddFoodRejectsCancelledBooking(t *testing.T) {
	owner := uuid.New()
	repo := &mockRepository{
		getByIDFn: func(ctx context.Context, id uuid.UUID) (*Booking, error) {
			return &Booking{ID: id, UserID: owner, Status: StatusCancelled}, nil
		},
	}
	foodSvc := &mockFoodOrders{}
	svc := newTestService(repo, &mockSeatSelector{}, &mockShowSource{}, foodSvc, &mockPromoValidator{})

	_, err := svc.AddFood(context.Background(), owner, uuid.New(), nil)
	assert.ErrorIs(t, err, ErrAlreadyCancelled)
	assert.Zero(t, foodSvc.saveCalls)
}

func TestGetBookingOwnership(t *testing.T) {
	owner := uuid.New()
	bookingID := uuid.New()
	repo := &mockRepository{
		getByIDFn: func(ctx context.Context, id uuid.UUID) (*Booking, error) {
			return &Booking{ID: bookingID, UserID: owner, Status: StatusConfirmed}, nil
		},
	}
	svc := newTestService(repo, &mockSeatSelector{}, &mockShowSource{}, &mockFoodOrders{}, &mockPromoValidator{})

	_, err := svc.GetBooking(context.Background(), uuid.New(), bookingID)
	assert.ErrorIs(t, err, ErrNotBookingOwner)

	resp, err := svc.GetBooking(context.Background(), owner, bookingID)
	require.NoError(t, err)
	assert.Equal(t, bookingID.String(), resp.ID)
}
