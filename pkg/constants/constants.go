package constants

const (
	// Realtime event names.
	EventSosAlert       = "sos-alert"
	EventLocationUpdate = "location-update"

	// Push payload fields.
	AlertTypeSos   = "sos"
	ScreenSosAlert = "SOSAlert"

	DefaultRadiusKm = 5.0

	RequestIDKey    = "request_id"
	RequestIDHeader = "X-Request-ID"
)
