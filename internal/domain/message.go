package domain

import "time"

// Message is an inbound message collected from an external source such as
// email or WhatsApp. Source is a free-text origin tag.
type Message struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"userId"`
	SenderName  string    `json:"senderName"`
	SenderEmail *string   `json:"senderEmail"`
	Subject     string    `json:"subject"`
	Content     string    `json:"content"`
	Source      string    `json:"source"`
	Read        bool      `json:"read"`
	ReceivedAt  time.Time `json:"receivedAt"`
}

func (m Message) EntityID() int64 { return m.ID }
func (m Message) OwnerID() int64  { return m.UserID }

func (m Message) WithID(id int64) Message {
	m.ID = id
	return m
}

func (Message) DateFields() []string { return []string{"receivedAt"} }
