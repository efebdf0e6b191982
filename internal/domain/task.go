package domain

import "time"

// Task is a to-do item owned by a user.
type Task struct {
	ID          int64      `json:"id"`
	UserID      int64      `json:"userId"`
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	DueDate     *time.Time `json:"dueDate"`
	Priority    Priority   `json:"priority"`
	Completed   bool       `json:"completed"`
	CreatedAt   time.Time  `json:"createdAt"`
}

func (t Task) EntityID() int64 { return t.ID }
func (t Task) OwnerID() int64  { return t.UserID }

func (t Task) WithID(id int64) Task {
	t.ID = id
	return t
}

func (Task) DateFields() []string { return []string{"dueDate", "createdAt"} }
