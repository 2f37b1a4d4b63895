package events

import "time"

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventAccountCreated EventType = "account_created"
	EventAccountUpdated EventType = "account_updated"
	EventAccountDeleted EventType = "account_deleted"
	EventLoginSucceeded EventType = "login_succeeded"
)

// Event represents a domain event emitted by services. Payloads carry public
// account fields only, never credentials or tokens.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	AccountID string      `json:"account_id"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// AccountCreatedPayload payload.
type AccountCreatedPayload struct {
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
}

// AccountUpdatedPayload payload.
type AccountUpdatedPayload struct {
	UpdatedFields []string `json:"updated_fields"`
}

// AccountDeletedPayload payload.
type AccountDeletedPayload struct {
	Username string `json:"username"`
}

// LoginSucceededPayload payload.
type LoginSucceededPayload struct {
	Username string `json:"username"`
}
