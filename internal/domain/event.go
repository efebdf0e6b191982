package domain

import "time"

// Event is a calendar entry owned by a user.
type Event struct {
	ID          int64      `json:"id"`
	UserID      int64      `json:"userId"`
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	Location    *string    `json:"location"`
	StartDate   time.Time  `json:"startDate"`
	EndDate     *time.Time `json:"endDate"`
	Priority    Priority   `json:"priority"`
	CreatedAt   time.Time  `json:"createdAt"`
}

func (e Event) EntityID() int64 { return e.ID }
func (e Event) OwnerID() int64  { return e.UserID }

func (e Event) WithID(id int64) Event {
	e.ID = id
	return e
}

func (Event) DateFields() []string { return []string{"startDate", "endDate", "createdAt"} }
