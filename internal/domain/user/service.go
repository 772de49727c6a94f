package user

import "context"

// Service defines the user list operations
type Service interface {
	// Load fetches the initial list from the source and replaces the collection
	Load(ctx context.Context) error

	// Replace swaps the whole collection for users
	Replace(users []User) error

	// Status reports the load state
	Status() Status

	// Query derives a filtered, sorted page of the collection
	Query(ctx context.Context, state ViewState) (*Page, error)

	// GetByID retrieves a user by ID
	GetByID(ctx context.Context, id int64) (*User, error)

	// Add creates a user with a fresh ID and appends it
	Add(ctx context.Context, input Input) (*User, error)

	// Update replaces the user with the given ID in place
	Update(ctx context.Context, id int64, input Input) (*User, error)

	// Remove deletes the user with the given ID
	Remove(ctx context.Context, id int64) error
}
