package events

import "time"

const ClockinPunchTopic = "clockin.punch.v1"

const (
	ClockinRecordedEvent = "clockin.recorded"
	ClockinDeletedEvent  = "clockin.deleted"
)

type ClockinPunchEvent struct {
	EventType  string    `json:"event_type"`
	ClockinID  string    `json:"clockin_id"`
	EmployeeID string    `json:"employee_id,omitempty"`
	DateTime   time.Time `json:"date_time,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}
