package domain

import "time"

// Bill is a payable owned by a user. Amount is kept as the locale-formatted
// text the user entered (for example "3.500,00"); it is never parsed.
type Bill struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"userId"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	Amount      string    `json:"amount"`
	DueDate     time.Time `json:"dueDate"`
	Category    *string   `json:"category"`
	Paid        bool      `json:"paid"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (b Bill) EntityID() int64 { return b.ID }
func (b Bill) OwnerID() int64  { return b.UserID }

func (b Bill) WithID(id int64) Bill {
	b.ID = id
	return b
}

func (Bill) DateFields() []string { return []string{"dueDate", "createdAt"} }
