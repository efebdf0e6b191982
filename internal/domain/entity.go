package domain

// Entity is implemented by every owned record kind (tasks, events, messages,
// bills). E is the concrete value type, so WithID can return a copy without
// reflection.
type Entity[E any] interface {
	EntityID() int64
	OwnerID() int64
	WithID(id int64) E
}

// Kind names one of the owned record kinds.
type Kind string

const (
	KindTask    Kind = "task"
	KindEvent   Kind = "event"
	KindMessage Kind = "message"
	KindBill    Kind = "bill"
)

func (k Kind) String() string { return string(k) }

// Plural returns the collection name used in URLs and table names.
func (k Kind) Plural() string { return string(k) + "s" }
