package client

import "time"

// User represents a user record
type User struct {
	ID      int64   `json:"id"`
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Address Address `json:"address"`
}

// Address represents a postal address
type Address struct {
	Street  string `json:"street"`
	Suite   string `json:"suite"`
	City    string `json:"city"`
	Zipcode string `json:"zipcode"`
}

// UserInput is the payload for adding or editing a user
type UserInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Street  string `json:"street"`
	City    string `json:"city"`
	Zipcode string `json:"zipcode"`
}

// Sort is the ordering applied to a user list
type Sort struct {
	Key       string `json:"key,omitempty"`
	Direction string `json:"direction"`
}

// UserList is one page of users
type UserList struct {
	Users      []User `json:"users"`
	Search     string `json:"search"`
	Sort       Sort   `json:"sort"`
	Page       int    `json:"page"`
	PageSize   int    `json:"pageSize"`
	TotalItems int    `json:"totalItems"`
	TotalPages int    `json:"totalPages"`
}

// FeedStatus represents the state of the random user feed
type FeedStatus struct {
	Running    bool       `json:"running"`
	Interval   string     `json:"interval"`
	Added      int        `json:"added"`
	Failed     int        `json:"failed"`
	LastError  string     `json:"lastError,omitempty"`
	LastTickAt *time.Time `json:"lastTickAt,omitempty"`
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status string `json:"status"`
}

// ReadyResponse represents the readiness check response
type ReadyResponse struct {
	Status string `json:"status"`
	Users  int    `json:"users"`
}
