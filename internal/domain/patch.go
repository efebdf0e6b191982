package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// Patch is a partial JSON object as received from a client. Keys are JSON
// field names; values are left undecoded until merged.
type Patch map[string]json.RawMessage

// DateFielder is implemented by entities that carry timestamp fields, so that
// patches may supply them in any layout ParseTimestamp accepts.
type DateFielder interface {
	DateFields() []string
}

// Without returns a copy of p with the given keys removed.
func (p Patch) Without(keys ...string) Patch {
	out := make(Patch, len(p))
	for k, v := range p {
		out[k] = v
	}
	for _, k := range keys {
		delete(out, k)
	}
	return out
}

// ApplyPatch shallow-merges p over cur: keys present in p win, absent keys
// keep their stored value. The identifier of cur is always kept. Keys that do
// not name a field of E are dropped.
func ApplyPatch[E Entity[E]](cur E, p Patch) (E, error) {
	var zero E

	raw, err := json.Marshal(cur)
	if err != nil {
		return zero, fmt.Errorf("marshal current: %w", err)
	}
	merged := map[string]json.RawMessage{}
	if err := json.Unmarshal(raw, &merged); err != nil {
		return zero, fmt.Errorf("unmarshal current: %w", err)
	}

	dates := map[string]bool{}
	if df, ok := any(cur).(DateFielder); ok {
		for _, f := range df.DateFields() {
			dates[f] = true
		}
	}

	for k, v := range p {
		if dates[k] {
			nv, err := normalizeDate(v)
			if err != nil {
				return zero, fmt.Errorf("%w: %s: %v", ErrInvalidPatch, k, err)
			}
			v = nv
		}
		merged[k] = v
	}

	out, err := json.Marshal(merged)
	if err != nil {
		return zero, fmt.Errorf("marshal merged: %w", err)
	}
	var next E
	if err := json.Unmarshal(out, &next); err != nil {
		return zero, fmt.Errorf("%w: %v", ErrInvalidPatch, err)
	}
	return next.WithID(cur.EntityID()), nil
}

// normalizeDate rewrites a JSON string timestamp into RFC 3339 so it decodes
// into time.Time. null and non-string values pass through unchanged.
func normalizeDate(v json.RawMessage) (json.RawMessage, error) {
	if bytes.Equal(bytes.TrimSpace(v), []byte("null")) {
		return v, nil
	}
	var s string
	if err := json.Unmarshal(v, &s); err != nil {
		return v, nil
	}
	t, err := ParseTimestamp(s)
	if err != nil {
		return nil, err
	}
	return json.Marshal(t.Format(time.RFC3339Nano))
}
