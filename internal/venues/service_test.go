package venues

import (
	"testing"

	"showtime/internal/seats"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateLayout(t *testing.T) {
	screenID := uuid.New()
	sections := []ScreenSection{
		{Category: "regular", Price: 150, RowStart: "A", RowEnd: "C", SeatsPerRow: 10},
		{Category: "premium", Price: 300, RowStart: "D", RowEnd: "D", SeatsPerRow: 8},
	}

	layout, err := GenerateLayout(screenID, sections)
	require.NoError(t, err)
	assert.Len(t, layout, 3*10+8)

	rows := map[string]int{}
	for _, seat := range layout {
		rows[seat.Row]++
		assert.Equal(t, screenID, seat.ScreenID)
		assert.Equal(t, seats.StatusAvailable, seat.Status)
		assert.Positive(t, seat.Number)
	}
	assert.Equal(t, map[string]int{"A": 10, "B": 10, "C": 10, "D": 8}, rows)

	for _, seat := range layout {
		if seat.Row == "D" {
			assert.Equal(t, seats.CategoryPremium, seat.Category)
			assert.Equal(t, 300.0, seat.Price)
		} else {
			assert.Equal(t, seats.CategoryRegular, seat.Category)
			assert.Equal(t, 150.0, seat.Price)
		}
	}
}

func TestGenerateLayoutRejectsBadRowBand(t *testing.T) {
	tests := []struct {
		name    string
		section ScreenSection
	}{
		{name: "reversed band", section: ScreenSection{Category: "regular", Price: 100, RowStart: "D", RowEnd: "A", SeatsPerRow: 10}},
		{name: "multi-letter start", section: ScreenSection{Category: "regular", Price: 100, RowStart: "AA", RowEnd: "B", SeatsPerRow: 10}},
		{name: "empty end", section: ScreenSection{Category: "regular", Price: 100, RowStart: "A", RowEnd: "", SeatsPerRow: 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateLayout(uuid.New(), []ScreenSection{tt.section})
			assert.ErrorIs(t, err, ErrInvalidSections)
		})
	}
}
