package models

// Booking lifecycle statuses. WAITING may move to APPROVED or REJECTED;
// APPROVED is terminal, REJECTED may be re-decided.
const (
	StatusWaiting  = "WAITING"
	StatusApproved = "APPROVED"
	StatusRejected = "REJECTED"
)

// Listing states accepted by the booking queries. Matching is exact and
// case-sensitive; anything else is a validation error.
const (
	StateAll      = "ALL"
	StateCurrent  = "CURRENT"
	StatePast     = "PAST"
	StateFuture   = "FUTURE"
	StateWaiting  = "WAITING"
	StateRejected = "REJECTED"
)

// Listing roles: whose bookings a query is about.
const (
	RoleBooker = "booker"
	RoleOwner  = "owner"
)

const (
	// DefaultPageSize applies when a listing request omits size.
	DefaultPageSize = 20

	// WorkerQueueSize is the in-memory export queue capacity.
	WorkerQueueSize = 128

	// RateLimitRequests is the per-user request budget per window.
	RateLimitRequests = 30

	// RateLimitWindow is the rate-limit window in seconds.
	RateLimitWindow = 60
)

// ValidStates lists every accepted listing state.
var ValidStates = map[string]bool{
	StateAll:      true,
	StateCurrent:  true,
	StatePast:     true,
	StateFuture:   true,
	StateWaiting:  true,
	StateRejected: true,
}
