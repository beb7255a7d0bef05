package models

import "time"

// EnrollmentEvent is published after a payment commit completes.
type EnrollmentEvent struct {
	Type      string    `json:"type"`
	Email     string    `json:"email"`
	ClassID   string    `json:"class_id"`
	Price     float64   `json:"price"`
	Timestamp time.Time `json:"timestamp"`
}
