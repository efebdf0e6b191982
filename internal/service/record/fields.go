package record

import (
	"encoding/json"
	"time"

	"github.com/heartmarshall/alfred-backend/internal/domain"
)

// fieldReader decodes typed values out of a raw JSON object and collects one
// FieldError per offending field. A field counts as present when its key
// exists and its value is not null.
type fieldReader struct {
	fields domain.Patch
	errs   []domain.FieldError
}

func newFieldReader(fields domain.Patch) *fieldReader {
	return &fieldReader{fields: fields}
}

func (r *fieldReader) fail(field, message string) {
	r.errs = append(r.errs, domain.FieldError{Field: field, Message: message})
}

func (r *fieldReader) err() error {
	if len(r.errs) == 0 {
		return nil
	}
	return domain.NewValidationErrors(r.errs)
}

func (r *fieldReader) raw(field string) (json.RawMessage, bool) {
	v, ok := r.fields[field]
	if !ok || len(v) == 0 || string(v) == "null" {
		return nil, false
	}
	return v, true
}

func (r *fieldReader) requiredString(field string) string {
	v, ok := r.raw(field)
	if !ok {
		r.fail(field, "required")
		return ""
	}
	var s string
	if err := json.Unmarshal(v, &s); err != nil {
		r.fail(field, "must be a string")
	}
	return s
}

func (r *fieldReader) optionalString(field string) *string {
	v, ok := r.raw(field)
	if !ok {
		return nil
	}
	var s string
	if err := json.Unmarshal(v, &s); err != nil {
		r.fail(field, "must be a string")
		return nil
	}
	return &s
}

func (r *fieldReader) boolean(field string, def bool) bool {
	v, ok := r.raw(field)
	if !ok {
		return def
	}
	var b bool
	if err := json.Unmarshal(v, &b); err != nil {
		r.fail(field, "must be a boolean")
		return def
	}
	return b
}

func (r *fieldReader) integer(field string) int64 {
	v, ok := r.raw(field)
	if !ok {
		r.fail(field, "required")
		return 0
	}
	var n int64
	if err := json.Unmarshal(v, &n); err != nil {
		r.fail(field, "must be an integer")
	}
	return n
}

func (r *fieldReader) priority(field string) domain.Priority {
	v, ok := r.raw(field)
	if !ok {
		return domain.DefaultPriority
	}
	var s string
	if err := json.Unmarshal(v, &s); err != nil {
		r.fail(field, "must be a string")
		return domain.DefaultPriority
	}
	p := domain.Priority(s)
	if !p.IsValid() {
		r.fail(field, "must be one of low, medium, high")
		return domain.DefaultPriority
	}
	return p
}

func (r *fieldReader) requiredTime(field string) time.Time {
	if _, ok := r.raw(field); !ok {
		r.fail(field, "required")
		return time.Time{}
	}
	t := r.optionalTime(field)
	if t == nil {
		return time.Time{}
	}
	return *t
}

func (r *fieldReader) optionalTime(field string) *time.Time {
	v, ok := r.raw(field)
	if !ok {
		return nil
	}
	var s string
	if err := json.Unmarshal(v, &s); err != nil {
		r.fail(field, "must be a date string")
		return nil
	}
	t, err := domain.ParseTimestamp(s)
	if err != nil {
		r.fail(field, "invalid date")
		return nil
	}
	return &t
}
