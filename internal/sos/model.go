package sos

import (
	"errors"
	"fmt"

	"sos-service/internal/geo"
)

var ErrOrchestration = errors.New("sos orchestration failed")

// Event lives only for the duration of one trigger.
type Event struct {
	ID         string
	SenderID   string
	Coordinate geo.Coordinate
	Message    string
	Recipients []string
}

type Result struct {
	EventID string `json:"event_id"`
	// Delivered is the number of recipients a dispatch was attempted for,
	// whatever the individual outcome.
	Delivered int `json:"delivered"`

	Succeeded int `json:"-"`
	Failed    int `json:"-"`
}

func buildMessage(coord geo.Coordinate) string {
	return fmt.Sprintf("Someone near you needs help! Location: %.6f, %.6f. Open map: %s",
		coord.Latitude, coord.Longitude, coord.MapLink())
}
