package seats

import "sort"

// Toggle flips a seat between available and selected. Booked and
// disabled seats are returned unchanged; interaction can never move a
// seat out of those states.
func Toggle(seat Seat) Seat {
	switch seat.Status {
	case StatusAvailable:
		seat.Status = StatusSelected
	case StatusSelected:
		seat.Status = StatusAvailable
	}
	return seat
}

// RowGroup is one rendered row of the seat grid. Category and Price
// come from the first seat seen for the row; rows mixing categories are
// a seeding bug and are not validated here.
type RowGroup struct {
	Row        string   `json:"row"`
	Category   Category `json:"category"`
	Price      float64  `json:"price"`
	NewSection bool     `json:"new_section"`
	Seats      []Seat   `json:"seats"`
}

// ComposeGrid partitions seats into rows, orders seats within a row by
// number ascending, and orders rows by price ascending with the row
// label breaking ties. A row starts a new section when its category
// differs from the previous row in that order.
func ComposeGrid(all []Seat) []RowGroup {
	byRow := make(map[string]*RowGroup)
	order := make([]*RowGroup, 0)

	for _, seat := range all {
		group, ok := byRow[seat.Row]
		if !ok {
			group = &RowGroup{
				Row:      seat.Row,
				Category: seat.Category,
				Price:    seat.Price,
			}
			byRow[seat.Row] = group
			order = append(order, group)
		}
		group.Seats = append(group.Seats, seat)
	}

	for _, group := range order {
		seats := group.Seats
		sort.Slice(seats, func(i, j int) bool {
			return seats[i].Number < seats[j].Number
		})
	}

	sort.Slice(order, func(i, j int) bool {
		if order[i].Price != order[j].Price {
			return order[i].Price < order[j].Price
		}
		return order[i].Row < order[j].Row
	})

	rows := make([]RowGroup, 0, len(order))
	for i, group := range order {
		group.NewSection = i > 0 && order[i-1].Category != group.Category
		rows = append(rows, *group)
	}
	return rows
}

// CountSelected reports how many seats in the grid are selected.
func CountSelected(rows []RowGroup) int {
	n := 0
	for i := range rows {
		for j := range rows[i].Seats {
			if rows[i].Seats[j].Status == StatusSelected {
				n++
			}
		}
	}
	return n
}
