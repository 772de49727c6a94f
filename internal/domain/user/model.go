package user

import "strings"

// User represents a user record in the dashboard
type User struct {
	ID      int64   `json:"id"`
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Address Address `json:"address"`
}

// Address is the postal address of a user
type Address struct {
	Street  string `json:"street"`
	Suite   string `json:"suite"`
	City    string `json:"city"`
	Zipcode string `json:"zipcode"`
}

// Input is the data captured by an add or edit submission. Suite is not
// captured and is always empty on the resulting user.
type Input struct {
	Name    string `json:"name" validate:"required,notblank,max=200"`
	Email   string `json:"email" validate:"required,email,max=255"`
	Street  string `json:"street" validate:"required,notblank,max=200"`
	City    string `json:"city" validate:"required,notblank,max=100"`
	Zipcode string `json:"zipcode" validate:"required,notblank,max=20"`
}

// ToUser builds the user record for id from the input
func (in Input) ToUser(id int64) User {
	return User{
		ID:    id,
		Name:  strings.TrimSpace(in.Name),
		Email: strings.TrimSpace(in.Email),
		Address: Address{
			Street:  strings.TrimSpace(in.Street),
			City:    strings.TrimSpace(in.City),
			Zipcode: strings.TrimSpace(in.Zipcode),
		},
	}
}

// InputFrom returns the input that would reproduce u, used to pre-fill edits
func InputFrom(u User) Input {
	return Input{
		Name:    u.Name,
		Email:   u.Email,
		Street:  u.Address.Street,
		City:    u.Address.City,
		Zipcode: u.Address.Zipcode,
	}
}

// LoadState describes the lifecycle of the initial fetch
type LoadState string

// Load states
const (
	LoadStateLoading LoadState = "loading"
	LoadStateReady   LoadState = "ready"
	LoadStateError   LoadState = "error"
)

// Status reports the load state of the collection
type Status struct {
	State LoadState `json:"state"`
	Count int       `json:"count"`
	Error string    `json:"error,omitempty"`
}
