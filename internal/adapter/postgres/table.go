package postgres

import (
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/heartmarshall/alfred-backend/internal/domain"
)

// psql builds statements with $n placeholders.
var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Table maps an entity to a table with a bigserial "id" column and a
// "user_id" owner column.
type Table[E any] struct {
	Name   string
	Entity string
	// Columns lists every column except id, in the order Values and Scan use.
	Columns []string
	Values  func(e E) []any
	// Scan reads id followed by Columns.
	Scan func(row pgx.Row) (E, error)
}

func (t Table[E]) selectColumns() []string {
	return append([]string{"id"}, t.Columns...)
}

func (t Table[E]) returning() string {
	return "RETURNING " + strings.Join(t.selectColumns(), ", ")
}

var TaskTable = Table[domain.Task]{
	Name:    "tasks",
	Entity:  "task",
	Columns: []string{"user_id", "title", "description", "due_date", "priority", "completed", "created_at"},
	Values: func(t domain.Task) []any {
		return []any{t.UserID, t.Title, t.Description, t.DueDate, string(t.Priority), t.Completed, t.CreatedAt}
	},
	Scan: func(row pgx.Row) (domain.Task, error) {
		var t domain.Task
		var priority string
		err := row.Scan(&t.ID, &t.UserID, &t.Title, &t.Description, &t.DueDate, &priority, &t.Completed, &t.CreatedAt)
		t.Priority = domain.Priority(priority)
		return t, err
	},
}

var EventTable = Table[domain.Event]{
	Name:    "events",
	Entity:  "event",
	Columns: []string{"user_id", "title", "description", "location", "start_date", "end_date", "priority", "created_at"},
	Values: func(e domain.Event) []any {
		return []any{e.UserID, e.Title, e.Description, e.Location, e.StartDate, e.EndDate, string(e.Priority), e.CreatedAt}
	},
	Scan: func(row pgx.Row) (domain.Event, error) {
		var e domain.Event
		var priority string
		err := row.Scan(&e.ID, &e.UserID, &e.Title, &e.Description, &e.Location, &e.StartDate, &e.EndDate, &priority, &e.CreatedAt)
		e.Priority = domain.Priority(priority)
		return e, err
	},
}

var MessageTable = Table[domain.Message]{
	Name:    "messages",
	Entity:  "message",
	Columns: []string{"user_id", "sender_name", "sender_email", "subject", "content", "source", "read", "received_at"},
	Values: func(m domain.Message) []any {
		return []any{m.UserID, m.SenderName, m.SenderEmail, m.Subject, m.Content, m.Source, m.Read, m.ReceivedAt}
	},
	Scan: func(row pgx.Row) (domain.Message, error) {
		var m domain.Message
		err := row.Scan(&m.ID, &m.UserID, &m.SenderName, &m.SenderEmail, &m.Subject, &m.Content, &m.Source, &m.Read, &m.ReceivedAt)
		return m, err
	},
}

var BillTable = Table[domain.Bill]{
	Name:    "bills",
	Entity:  "bill",
	Columns: []string{"user_id", "name", "description", "amount", "due_date", "category", "paid", "created_at"},
	Values: func(b domain.Bill) []any {
		return []any{b.UserID, b.Name, b.Description, b.Amount, b.DueDate, b.Category, b.Paid, b.CreatedAt}
	},
	Scan: func(row pgx.Row) (domain.Bill, error) {
		var b domain.Bill
		err := row.Scan(&b.ID, &b.UserID, &b.Name, &b.Description, &b.Amount, &b.DueDate, &b.Category, &b.Paid, &b.CreatedAt)
		return b, err
	},
}
