package dto

import "github.com/pratik-mahalle/userboard/internal/domain/user"

// UserDTO represents a user in API responses
type UserDTO struct {
	ID      int64      `json:"id"`
	Name    string     `json:"name"`
	Email   string     `json:"email"`
	Address AddressDTO `json:"address"`
}

// AddressDTO represents a postal address in API responses
type AddressDTO struct {
	Street  string `json:"street"`
	Suite   string `json:"suite"`
	City    string `json:"city"`
	Zipcode string `json:"zipcode"`
}

// UserRequest represents an add or edit submission
type UserRequest struct {
	Name    string `json:"name" validate:"required,notblank,max=200"`
	Email   string `json:"email" validate:"required,email,max=255"`
	Street  string `json:"street" validate:"required,notblank,max=200"`
	City    string `json:"city" validate:"required,notblank,max=100"`
	Zipcode string `json:"zipcode" validate:"required,notblank,max=20"`
}

// SortDTO is the ordering applied to a list response
type SortDTO struct {
	Key       string `json:"key,omitempty"`
	Direction string `json:"direction"`
}

// UserListResponse is one page of the derived user view
type UserListResponse struct {
	Users      []UserDTO `json:"users"`
	Search     string    `json:"search"`
	Sort       SortDTO   `json:"sort"`
	Page       int       `json:"page"`
	PageSize   int       `json:"pageSize"`
	TotalItems int       `json:"totalItems"`
	TotalPages int       `json:"totalPages"`
}

// ToInput converts the request into domain input
func (r UserRequest) ToInput() user.Input {
	return user.Input{
		Name:    r.Name,
		Email:   r.Email,
		Street:  r.Street,
		City:    r.City,
		Zipcode: r.Zipcode,
	}
}

// FromUser converts a domain user
func FromUser(u user.User) UserDTO {
	return UserDTO{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Address: AddressDTO{
			Street:  u.Address.Street,
			Suite:   u.Address.Suite,
			City:    u.Address.City,
			Zipcode: u.Address.Zipcode,
		},
	}
}

// FromPage converts a derived page
func FromPage(p *user.Page) UserListResponse {
	users := make([]UserDTO, len(p.Users))
	for i, u := range p.Users {
		users[i] = FromUser(u)
	}
	return UserListResponse{
		Users:  users,
		Search: p.State.SearchTerm,
		Sort: SortDTO{
			Key:       string(p.State.Sort.Key),
			Direction: string(p.State.Sort.Direction),
		},
		Page:       p.State.Page,
		PageSize:   p.State.PageSize,
		TotalItems: p.TotalItems,
		TotalPages: p.TotalPages,
	}
}
