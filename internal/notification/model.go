package notification

import (
	"errors"
	"time"
)

var ErrDeliveryExhausted = errors.New("delivery attempts exhausted")

// Data is the structured payload delivered alongside the visible alert.
type Data struct {
	Type      string  `json:"type"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Screen    string  `json:"screen"`
}

type Message struct {
	RecipientID string
	Title       string
	Body        string
	Data        Data
}

type Outcome struct {
	RecipientID string
	Delivered   bool
	Attempts    int
	Duration    time.Duration
	Err         error
}
