package seats

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func mkSeat(row string, number int, category Category, price float64, status Status) Seat {
	return Seat{
		ID:       uuid.New(),
		Row:      row,
		Number:   number,
		Category: category,
		Price:    price,
		Status:   status,
	}
}

func TestToggle(t *testing.T) {
	tests := []struct {
		name string
		in   Status
		want Status
	}{
		{name: "available becomes selected", in: StatusAvailable, want: StatusSelected},
		{name: "selected becomes available", in: StatusSelected, want: StatusAvailable},
		{name: "booked is a no-op", in: StatusBooked, want: StatusBooked},
		{name: "disabled is a no-op", in: StatusDisabled, want: StatusDisabled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seat := mkSeat("A", 1, CategoryRegular, 150, tt.in)
			got := Toggle(seat)
			assert.Equal(t, tt.want, got.Status)

			// Everything but status stays untouched.
			got.Status = seat.Status
			assert.Equal(t, seat, got)
		})
	}
}

func TestToggleInvolution(t *testing.T) {
	for _, status := range []Status{StatusAvailable, StatusSelected} {
		seat := mkSeat("B", 4, CategoryPremium, 250, status)
		assert.Equal(t, seat, Toggle(Toggle(seat)), "double toggle must restore %s", status)
	}
}

func TestComposeGridOrdering(t *testing.T) {
	// Deliberately shuffled input: recliner row Z is priciest, regular
	// rows A and B are cheapest, premium row F sits in between.
	input := []Seat{
		mkSeat("Z", 2, CategoryRecliner, 600, StatusAvailable),
		mkSeat("F", 3, CategoryPremium, 300, StatusAvailable),
		mkSeat("B", 2, CategoryRegular, 150, StatusAvailable),
		mkSeat("A", 5, CategoryRegular, 150, StatusAvailable),
		mkSeat("Z", 1, CategoryRecliner, 600, StatusAvailable),
		mkSeat("A", 1, CategoryRegular, 150, StatusAvailable),
		mkSeat("F", 1, CategoryPremium, 300, StatusAvailable),
	}

	rows := ComposeGrid(input)

	labels := make([]string, 0, len(rows))
	for _, row := range rows {
		labels = append(labels, row.Row)
	}
	// Price ascending, row label breaking the A/B tie.
	assert.Equal(t, []string{"A", "B", "F", "Z"}, labels)

	for _, row := range rows {
		for i := 1; i < len(row.Seats); i++ {
			assert.Less(t, row.Seats[i-1].Number, row.Seats[i].Number,
				"row %s seats must be ordered by number", row.Row)
		}
	}
}

func TestComposeGridSectionBoundaries(t *testing.T) {
	input := []Seat{
		mkSeat("A", 1, CategoryRegular, 150, StatusAvailable),
		mkSeat("B", 1, CategoryRegular, 150, StatusAvailable),
		mkSeat("F", 1, CategoryPremium, 300, StatusAvailable),
		mkSeat("G", 1, CategoryPremium, 300, StatusAvailable),
		mkSeat("Z", 1, CategoryRecliner, 600, StatusAvailable),
	}

	rows := ComposeGrid(input)

	var flags []bool
	for _, row := range rows {
		flags = append(flags, row.NewSection)
	}
	// Boundary only where the category changes from the previous row.
	assert.Equal(t, []bool{false, false, true, false, true}, flags)
}

func TestComposeGridRowInheritsFirstSeenSeat(t *testing.T) {
	// Mixed row is a data-quality bug; the first-seen seat wins.
	input := []Seat{
		mkSeat("C", 2, CategoryPremium, 300, StatusAvailable),
		mkSeat("C", 1, CategoryRegular, 150, StatusAvailable),
	}

	rows := ComposeGrid(input)

	assert.Len(t, rows, 1)
	assert.Equal(t, CategoryPremium, rows[0].Category)
	assert.Equal(t, 300.0, rows[0].Price)
	// Seats are still resorted by number.
	assert.Equal(t, 1, rows[0].Seats[0].Number)
}

func TestCountSelected(t *testing.T) {
	input := []Seat{
		mkSeat("A", 1, CategoryRegular, 150, StatusSelected),
		mkSeat("A", 2, CategoryRegular, 150, StatusAvailable),
		mkSeat("A", 3, CategoryRegular, 150, StatusSelected),
		mkSeat("B", 1, CategoryRegular, 150, StatusBooked),
	}

	assert.Equal(t, 2, CountSelected(ComposeGrid(input)))
}
