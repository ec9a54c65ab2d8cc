package bookings

import (
	"testing"

	"showtime/internal/shows"

	"github.com/stretchr/testify/assert"
)

func TestComputeFare(t *testing.T) {
	tests := []struct {
		name        string
		subtotal    float64
		rate        float64
		foodLines   []FareLine
		wantFee     float64
		wantFoodSub float64
		wantTotal   float64
	}{
		{
			name:      "movie rate without food",
			subtotal:  1000,
			rate:      0.05,
			wantFee:   50,
			wantTotal: 1050,
		},
		{
			name:        "movie rate with food",
			subtotal:    1000,
			rate:        0.05,
			foodLines:   []FareLine{{Price: 100, Quantity: 2}},
			wantFee:     50,
			wantFoodSub: 200,
			wantTotal:   1250,
		},
		{
			name:      "event rate",
			subtotal:  1000,
			rate:      0.03,
			wantFee:   30,
			wantTotal: 1030,
		},
		{
			name:      "fee rounds half up",
			subtotal:  1010,
			rate:      0.05, // 50.5 rounds to 51
			wantFee:   51,
			wantTotal: 1061,
		},
		{
			name:      "fee rounds down below half",
			subtotal:  1008,
			rate:      0.05, // 50.4 rounds to 50
			wantFee:   50,
			wantTotal: 1058,
		},
		{
			name:        "multiple food lines",
			subtotal:    500,
			rate:        0.03,
			foodLines:   []FareLine{{Price: 120, Quantity: 1}, {Price: 80, Quantity: 3}},
			wantFee:     15,
			wantFoodSub: 360,
			wantTotal:   875,
		},
		{
			name:      "zero subtotal",
			subtotal:  0,
			rate:      0.05,
			wantFee:   0,
			wantTotal: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fare := ComputeFare(tt.subtotal, tt.rate, tt.foodLines)
			assert.Equal(t, tt.subtotal, fare.TicketSubtotal)
			assert.Equal(t, tt.wantFee, fare.ConvenienceFee)
			assert.Equal(t, tt.wantFoodSub, fare.FoodSubtotal)
			assert.Equal(t, tt.wantTotal, fare.Total)
		})
	}
}

func TestPolicyForKind(t *testing.T) {
	movie := PolicyForKind(shows.KindMovie, 0.05, 0.03)
	assert.Equal(t, "movie-fee-policy", movie.Name)
	assert.Equal(t, 0.05, movie.Rate)

	// Live kinds all share the event policy.
	for _, kind := range []shows.Kind{shows.KindEvent, shows.KindSport, shows.KindPlay} {
		policy := PolicyForKind(kind, 0.05, 0.03)
		assert.Equal(t, "event-fee-policy", policy.Name)
		assert.Equal(t, 0.03, policy.Rate)
	}
}
