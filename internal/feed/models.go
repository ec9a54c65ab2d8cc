package feed

import (
	"encoding/json"
	"time"
)

// ChangeKind says what happened to a food line item.
type ChangeKind string

const (
	ChangeCreated       ChangeKind = "created"
	ChangeStatusUpdated ChangeKind = "status_updated"
)

// LineItemChange is the event published whenever a food line item is
// created or transitioned. Consumers use it purely as a refresh
// trigger; the payload is informational and delivery is at-least-once.
type LineItemChange struct {
	Kind       ChangeKind `json:"kind"`
	BookingID  string     `json:"booking_id"`
	ItemID     string     `json:"item_id,omitempty"`
	Status     string     `json:"status,omitempty"`
	OccurredAt time.Time  `json:"occurred_at"`
}

func (c *LineItemChange) ToJSON() ([]byte, error) {
	return json.Marshal(c)
}

// PartitionKey keeps all changes of one booking on one partition so a
// consumer sees them in order.
func (c *LineItemChange) PartitionKey() string {
	return c.BookingID
}
