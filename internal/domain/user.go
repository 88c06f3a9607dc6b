package domain

import "time"

// User is an account owner known to the identity layer. The ledger core only
// ever consumes the ID; credentials never reach it.
type User struct {
	ID             string
	Username       string
	HashedPassword string
	CreatedAt      time.Time
}
