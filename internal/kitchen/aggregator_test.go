package kitchen

import (
	"testing"
	"time"

	"showtime/internal/bookings"
	"showtime/internal/food"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func lines(bookingID uuid.UUID, statuses ...food.LineStatus) []food.FoodLineItem {
	items := make([]food.FoodLineItem, 0, len(statuses))
	for i, status := range statuses {
		items = append(items, food.FoodLineItem{
			ID:        uuid.New(),
			BookingID: bookingID,
			FoodName:  "Item",
			Quantity:  i + 1,
			Status:    status,
		})
	}
	return items
}

func TestCompositeStatus(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name     string
		statuses []food.LineStatus
		want     food.LineStatus
	}{
		{"no items", nil, food.StatusPending},
		{"all pending", []food.LineStatus{food.StatusPending, food.StatusPending}, food.StatusPending},
		{"one preparing", []food.LineStatus{food.StatusPending, food.StatusPreparing}, food.StatusPreparing},
		{"one ready rest pending", []food.LineStatus{food.StatusPending, food.StatusReady}, food.StatusPreparing},
		{"one delivered rest pending", []food.LineStatus{food.StatusPending, food.StatusDelivered}, food.StatusPreparing},
		{"all ready", []food.LineStatus{food.StatusReady, food.StatusReady}, food.StatusReady},
		{"ready and delivered mix", []food.LineStatus{food.StatusReady, food.StatusReady, food.StatusDelivered}, food.StatusReady},
		{"all delivered", []food.LineStatus{food.StatusDelivered, food.StatusDelivered}, food.StatusDelivered},
		{"single pending", []food.LineStatus{food.StatusPending}, food.StatusPending},
		{"single delivered", []food.LineStatus{food.StatusDelivered}, food.StatusDelivered},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CompositeStatus(lines(id, tt.statuses...)))
		})
	}
}

func boardMeta(id uuid.UUID, ref string, createdAt time.Time, seatLabels ...string) bookings.BoardMeta {
	return bookings.BoardMeta{
		BookingID:  id,
		BookingRef: ref,
		ShowTitle:  "Interstellar",
		VenueName:  "Grand Cinema",
		SeatLabels: seatLabels,
		CreatedAt:  createdAt,
	}
}

func TestGroupByBooking(t *testing.T) {
	older := uuid.New()
	newer := uuid.New()
	orphan := uuid.New()
	base := time.Date(2026, 6, 1, 18, 0, 0, 0, time.UTC)

	items := append(lines(older, food.StatusPending, food.StatusReady), lines(newer, food.StatusPending)...)
	items = append(items, lines(orphan, food.StatusPending)...)

	meta := map[uuid.UUID]bookings.BoardMeta{
		older: boardMeta(older, "QROLD", base, "A1"),
		newer: boardMeta(newer, "QRNEW", base.Add(time.Hour), "B5"),
	}

	groups := GroupByBooking(items, meta)
	assert.Len(t, groups, 2, "booking without metadata must be dropped")

	// Newest booking first.
	assert.Equal(t, "QRNEW", groups[0].BookingRef)
	assert.Equal(t, "QROLD", groups[1].BookingRef)

	assert.Equal(t, food.StatusPending, groups[0].Status)
	assert.Equal(t, food.StatusPreparing, groups[1].Status)
	assert.Len(t, groups[1].Items, 2)
	assert.Equal(t, []string{"A1"}, groups[1].SeatLabels)
}

func TestFilterByStatus(t *testing.T) {
	groups := []OrderGroup{
		{BookingRef: "QR1", Status: food.StatusPending},
		{BookingRef: "QR2", Status: food.StatusPreparing},
		{BookingRef: "QR3", Status: food.StatusReady},
		{BookingRef: "QR4", Status: food.StatusDelivered},
	}

	all := FilterByStatus(groups, FilterAll)
	assert.Len(t, all, 3, "All hides delivered orders")
	for _, g := range all {
		assert.NotEqual(t, food.StatusDelivered, g.Status)
	}

	ready := FilterByStatus(groups, "Ready")
	assert.Len(t, ready, 1)
	assert.Equal(t, "QR3", ready[0].BookingRef)

	delivered := FilterByStatus(groups, "Delivered")
	assert.Len(t, delivered, 1)
	assert.Equal(t, "QR4", delivered[0].BookingRef)

	assert.Len(t, FilterByStatus(groups, ""), 3)
}

func TestFilterByQuery(t *testing.T) {
	groups := []OrderGroup{
		{BookingRef: "QRALPHA", SeatLabels: []string{"A1", "A2"}},
		{BookingRef: "QRBETA", SeatLabels: []string{"F10"}},
	}

	assert.Len(t, FilterByQuery(groups, ""), 2)
	assert.Len(t, FilterByQuery(groups, "  "), 2)

	byRef := FilterByQuery(groups, "beta")
	assert.Len(t, byRef, 1)
	assert.Equal(t, "QRBETA", byRef[0].BookingRef)

	bySeat := FilterByQuery(groups, "f10")
	assert.Len(t, bySeat, 1)
	assert.Equal(t, "QRBETA", bySeat[0].BookingRef)

	assert.Empty(t, FilterByQuery(groups, "zzz"))
}
