package domain

import "time"

// Account is the domain model for a registered user.
type Account struct {
	ID           string
	DisplayName  string
	Username     string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
