package record

import (
	"time"

	"github.com/heartmarshall/alfred-backend/internal/domain"
)

// Schema describes how a kind is built from a client payload. Decode reads
// exactly the insertable fields, applies defaults and stamps server-set
// timestamps with now.
type Schema[E any] struct {
	Kind domain.Kind
	// ServerFields are stripped from patches in strict mode.
	ServerFields []string
	Decode       func(r *fieldReader, now time.Time) E
}

// Parse decodes fields into E, returning a ValidationError listing every
// offending field.
func (s Schema[E]) Parse(fields domain.Patch, now time.Time) (E, error) {
	r := newFieldReader(fields)
	e := s.Decode(r, now)
	if err := r.err(); err != nil {
		var zero E
		return zero, err
	}
	return e, nil
}

var TaskSchema = Schema[domain.Task]{
	Kind:         domain.KindTask,
	ServerFields: []string{"id", "userId", "createdAt"},
	Decode: func(r *fieldReader, now time.Time) domain.Task {
		return domain.Task{
			UserID:      r.integer("userId"),
			Title:       r.requiredString("title"),
			Description: r.optionalString("description"),
			DueDate:     r.optionalTime("dueDate"),
			Priority:    r.priority("priority"),
			Completed:   r.boolean("completed", false),
			CreatedAt:   now,
		}
	},
}

var EventSchema = Schema[domain.Event]{
	Kind:         domain.KindEvent,
	ServerFields: []string{"id", "userId", "createdAt"},
	Decode: func(r *fieldReader, now time.Time) domain.Event {
		return domain.Event{
			UserID:      r.integer("userId"),
			Title:       r.requiredString("title"),
			Description: r.optionalString("description"),
			Location:    r.optionalString("location"),
			StartDate:   r.requiredTime("startDate"),
			EndDate:     r.optionalTime("endDate"),
			Priority:    r.priority("priority"),
			CreatedAt:   now,
		}
	},
}

var MessageSchema = Schema[domain.Message]{
	Kind:         domain.KindMessage,
	ServerFields: []string{"id", "userId", "receivedAt"},
	Decode: func(r *fieldReader, now time.Time) domain.Message {
		return domain.Message{
			UserID:      r.integer("userId"),
			SenderName:  r.requiredString("senderName"),
			SenderEmail: r.optionalString("senderEmail"),
			Subject:     r.requiredString("subject"),
			Content:     r.requiredString("content"),
			Source:      r.requiredString("source"),
			Read:        r.boolean("read", false),
			ReceivedAt:  now,
		}
	},
}

var BillSchema = Schema[domain.Bill]{
	Kind:         domain.KindBill,
	ServerFields: []string{"id", "userId", "createdAt"},
	Decode: func(r *fieldReader, now time.Time) domain.Bill {
		return domain.Bill{
			UserID:      r.integer("userId"),
			Name:        r.requiredString("name"),
			Description: r.optionalString("description"),
			Amount:      r.requiredString("amount"),
			DueDate:     r.requiredTime("dueDate"),
			Category:    r.optionalString("category"),
			Paid:        r.boolean("paid", false),
			CreatedAt:   now,
		}
	},
}
