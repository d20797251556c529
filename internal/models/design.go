package models

import (
	"time"
)

// Design is a saved room configuration. Width and length are kept as the
// client sent them (free-form dimension strings, usually feet).
type Design struct {
	ID            string    `json:"id" db:"id"`
	UserID        string    `json:"user_id" db:"user_id"`
	RoomType      string    `json:"room_type" db:"room_type"`
	Style         string    `json:"style" db:"style"`
	Palette       string    `json:"palette" db:"palette"`
	Width         string    `json:"width" db:"width"`
	Length        string    `json:"length" db:"length"`
	EstimatedCost *int64    `json:"estimated_cost" db:"estimated_cost"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}
