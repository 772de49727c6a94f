package user

import "context"

// Source fetches user records from a remote system
type Source interface {
	// FetchUsers retrieves the initial user list
	FetchUsers(ctx context.Context) ([]User, error)
}

// RandomSource fetches one externally generated user at a time
type RandomSource interface {
	// FetchRandom retrieves a single random user mapped to the internal shape
	FetchRandom(ctx context.Context) (Input, error)
}
