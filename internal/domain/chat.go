package domain

import (
	"time"
)

type Chat struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
}

// Message belongs to exactly one chat. The foreign key is serialized
// under the "chat" key on the wire.
type Message struct {
	ID        int64     `json:"id"`
	ChatID    int64     `json:"chat"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}
