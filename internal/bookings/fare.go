package bookings

import (
	"math"

	"showtime/internal/shows"
)

// FeePolicy names a convenience fee rate. Movies and live shows carry
// deliberately distinct rates; do not fold them into one policy.
type FeePolicy struct {
	Name string
	Rate float64
}

func MovieFeePolicy(rate float64) FeePolicy {
	return FeePolicy{Name: "movie-fee-policy", Rate: rate}
}

func EventFeePolicy(rate float64) FeePolicy {
	return FeePolicy{Name: "event-fee-policy", Rate: rate}
}

// PolicyForKind picks the fee policy for a show kind. Every live kind
// shares the event policy.
func PolicyForKind(kind shows.Kind, movieRate, eventRate float64) FeePolicy {
	if kind.IsMovie() {
		return MovieFeePolicy(movieRate)
	}
	return EventFeePolicy(eventRate)
}

// FareLine is one food order line entering the fare.
type FareLine struct {
	Price    float64
	Quantity int
}

type Fare struct {
	TicketSubtotal float64 `json:"ticket_subtotal"`
	ConvenienceFee float64 `json:"convenience_fee"`
	FoodSubtotal   float64 `json:"food_subtotal"`
	Total          float64 `json:"total"`
}

// ComputeFare derives the payable amount from the ticket subtotal, a
// fee rate and optional food lines. The convenience fee rounds half up
// to the nearest currency unit. Inputs are assumed non-negative.
func ComputeFare(ticketSubtotal, feeRate float64, foodLines []FareLine) Fare {
	fee := math.Floor(ticketSubtotal*feeRate + 0.5)

	foodSubtotal := 0.0
	for _, line := range foodLines {
		foodSubtotal += line.Price * float64(line.Quantity)
	}

	return Fare{
		TicketSubtotal: ticketSubtotal,
		ConvenienceFee: fee,
		FoodSubtotal:   foodSubtotal,
		Total:          ticketSubtotal + fee + foodSubtotal,
	}
}
