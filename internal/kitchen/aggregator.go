package kitchen

import (
	"sort"
	"strings"
	"time"

	"showtime/internal/bookings"
	"showtime/internal/food"

	"github.com/google/uuid"
)

// FilterAll is the board's default filter. It hides delivered orders
// so the working view only carries food still in flight.
const FilterAll = "All"

// OrderGroup is one booking's food order on the kitchen board. Status
// is derived from the line items on every build and never stored.
type OrderGroup struct {
	BookingID  uuid.UUID           `json:"booking_id"`
	BookingRef string              `json:"booking_ref"`
	ShowTitle  string              `json:"show_title"`
	ShowTime   time.Time           `json:"show_time"`
	VenueName  string              `json:"venue_name"`
	SeatLabels []string            `json:"seat_labels"`
	Status     food.LineStatus     `json:"status"`
	Items      []food.FoodLineItem `json:"items"`
	CreatedAt  time.Time           `json:"created_at"`
}

// CompositeStatus folds the line item statuses of one order into a
// single board status:
//
//	Delivered  when every item is Delivered
//	Ready      when every item is Ready or Delivered
//	Preparing  when any item has moved past Pending
//	Pending    otherwise
func CompositeStatus(items []food.FoodLineItem) food.LineStatus {
	if len(items) == 0 {
		return food.StatusPending
	}

	allDelivered := true
	allReadyOrBeyond := true
	anyStarted := false
	for i := range items {
		switch items[i].Status {
		case food.StatusDelivered:
			anyStarted = true
		case food.StatusReady:
			allDelivered = false
			anyStarted = true
		case food.StatusPreparing:
			allDelivered = false
			allReadyOrBeyond = false
			anyStarted = true
		default:
			allDelivered = false
			allReadyOrBeyond = false
		}
	}

	switch {
	case allDelivered:
		return food.StatusDelivered
	case allReadyOrBeyond:
		return food.StatusReady
	case anyStarted:
		return food.StatusPreparing
	default:
		return food.StatusPending
	}
}

// GroupByBooking folds a flat line item feed into per-booking order
// groups, newest booking first. Items whose booking has no metadata
// (cancelled between fetches) are dropped.
func GroupByBooking(items []food.FoodLineItem, meta map[uuid.UUID]bookings.BoardMeta) []OrderGroup {
	byBooking := make(map[uuid.UUID][]food.FoodLineItem)
	order := make([]uuid.UUID, 0)
	for i := range items {
		id := items[i].BookingID
		if _, ok := meta[id]; !ok {
			continue
		}
		if _, seen := byBooking[id]; !seen {
			order = append(order, id)
		}
		byBooking[id] = append(byBooking[id], items[i])
	}

	groups := make([]OrderGroup, 0, len(order))
	for _, id := range order {
		m := meta[id]
		lines := byBooking[id]
		groups = append(groups, OrderGroup{
			BookingID:  id,
			BookingRef: m.BookingRef,
			ShowTitle:  m.ShowTitle,
			ShowTime:   m.ShowTime,
			VenueName:  m.VenueName,
			SeatLabels: m.SeatLabels,
			Status:     CompositeStatus(lines),
			Items:      lines,
			CreatedAt:  m.CreatedAt,
		})
	}

	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].CreatedAt.After(groups[j].CreatedAt)
	})
	return groups
}

// FilterByStatus narrows the board to one composite status. The All
// filter keeps everything except delivered orders.
func FilterByStatus(groups []OrderGroup, filter string) []OrderGroup {
	filtered := make([]OrderGroup, 0, len(groups))
	for _, g := range groups {
		if filter == "" || filter == FilterAll {
			if g.Status != food.StatusDelivered {
				filtered = append(filtered, g)
			}
			continue
		}
		if string(g.Status) == filter {
			filtered = append(filtered, g)
		}
	}
	return filtered
}

// FilterByQuery matches the booking reference and seat labels, case
// insensitively.
func FilterByQuery(groups []OrderGroup, query string) []OrderGroup {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return groups
	}

	filtered := make([]OrderGroup, 0, len(groups))
	for _, g := range groups {
		if strings.Contains(strings.ToLower(g.BookingRef), q) {
			filtered = append(filtered, g)
			continue
		}
		for _, label := range g.SeatLabels {
			if strings.Contains(strings.ToLower(label), q) {
				filtered = append(filtered, g)
				break
			}
		}
	}
	return filtered
}
