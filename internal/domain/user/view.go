package user

import (
	"fmt"
	"slices"
	"strings"
)

// SortKey names a user field the view can be ordered by
type SortKey string

// Sortable fields. The empty key means unsorted.
const (
	SortKeyNone    SortKey = ""
	SortKeyName    SortKey = "name"
	SortKeyEmail   SortKey = "email"
	SortKeyCity    SortKey = "city"
	SortKeyZipcode SortKey = "zipcode"
)

// SortKeys lists the sortable fields
var SortKeys = []SortKey{SortKeyName, SortKeyEmail, SortKeyCity, SortKeyZipcode}

// ParseSortKey validates a sort key. The empty string is accepted as unsorted.
func ParseSortKey(s string) (SortKey, error) {
	key := SortKey(strings.ToLower(strings.TrimSpace(s)))
	if key == SortKeyNone || slices.Contains(SortKeys, key) {
		return key, nil
	}
	return SortKeyNone, fmt.Errorf("unsupported sort key %q", s)
}

// field returns the string value a key orders by
func (k SortKey) field(u User) string {
	switch k {
	case SortKeyName:
		return u.Name
	case SortKeyEmail:
		return u.Email
	case SortKeyCity:
		return u.Address.City
	case SortKeyZipcode:
		return u.Address.Zipcode
	default:
		return ""
	}
}

// SortDirection is the ordering direction of a sorted view
type SortDirection string

// Sort directions
const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// ParseSortDirection validates a direction, defaulting to ascending
func ParseSortDirection(s string) (SortDirection, error) {
	switch SortDirection(strings.ToLower(strings.TrimSpace(s))) {
	case "", SortAsc:
		return SortAsc, nil
	case SortDesc:
		return SortDesc, nil
	default:
		return SortAsc, fmt.Errorf("unsupported sort direction %q", s)
	}
}

// SortConfig is the active ordering of a view
type SortConfig struct {
	Key       SortKey       `json:"key" yaml:"key"`
	Direction SortDirection `json:"direction" yaml:"direction"`
}

// Toggle returns the config that results from requesting key: the same key
// flips the direction, any other key starts ascending
func (c SortConfig) Toggle(key SortKey) SortConfig {
	if key == c.Key && key != SortKeyNone {
		if c.Direction == SortDesc {
			return SortConfig{Key: key, Direction: SortAsc}
		}
		return SortConfig{Key: key, Direction: SortDesc}
	}
	return SortConfig{Key: key, Direction: SortAsc}
}

// Page sizes offered to the presentation layer
var PageSizes = []int{5, 10, 15}

// DefaultPageSize is the page size of a fresh view
const DefaultPageSize = 5

// ValidPageSize reports whether size is one of PageSizes
func ValidPageSize(size int) bool {
	return slices.Contains(PageSizes, size)
}

// ViewState is the transient presentation state of a view. It is owned by
// the caller and passed into Query.
type ViewState struct {
	SearchTerm string     `json:"searchTerm" yaml:"search_term"`
	Sort       SortConfig `json:"sort" yaml:"sort"`
	Page       int        `json:"page" yaml:"page"`
	PageSize   int        `json:"pageSize" yaml:"page_size"`
}

// NewViewState returns the default view: no search, unsorted, first page
func NewViewState() ViewState {
	return ViewState{Page: 1, PageSize: DefaultPageSize, Sort: SortConfig{Direction: SortAsc}}
}

// WithSearch changes the search term and returns to the first page
func (v ViewState) WithSearch(term string) ViewState {
	if term != v.SearchTerm {
		v.Page = 1
	}
	v.SearchTerm = term
	return v
}

// WithPageSize changes the page size and returns to the first page
func (v ViewState) WithPageSize(size int) (ViewState, error) {
	if !ValidPageSize(size) {
		return v, fmt.Errorf("page size must be one of %v", PageSizes)
	}
	v.PageSize = size
	v.Page = 1
	return v, nil
}

// WithSort toggles the sort config for key
func (v ViewState) WithSort(key SortKey) ViewState {
	v.Sort = v.Sort.Toggle(key)
	return v
}

// WithPage moves to page. Out of range pages are clamped by Query.
func (v ViewState) WithPage(page int) ViewState {
	v.Page = page
	return v
}

// Normalize replaces invalid fields with their defaults
func (v ViewState) Normalize() ViewState {
	if !ValidPageSize(v.PageSize) {
		v.PageSize = DefaultPageSize
	}
	if v.Page < 1 {
		v.Page = 1
	}
	if v.Sort.Direction != SortDesc {
		v.Sort.Direction = SortAsc
	}
	return v
}

// Page is one page of a derived view
type Page struct {
	Users      []User    `json:"users"`
	State      ViewState `json:"state"`
	TotalItems int       `json:"totalItems"`
	TotalPages int       `json:"totalPages"`
}

// Filter returns the users whose name or email contains term, ignoring
// case. The empty term matches everyone. The input is not modified.
func Filter(users []User, term string) []User {
	needle := strings.ToLower(term)
	out := make([]User, 0, len(users))
	for _, u := range users {
		if needle == "" ||
			strings.Contains(strings.ToLower(u.Name), needle) ||
			strings.Contains(strings.ToLower(u.Email), needle) {
			out = append(out, u)
		}
	}
	return out
}

// Sort orders view by key, toggling current, and returns the ordered copy
// with the new config
func Sort(view []User, key SortKey, current SortConfig) ([]User, SortConfig) {
	next := current.Toggle(key)
	return SortBy(view, next), next
}

// SortBy returns a copy of view ordered by cfg. Fields compare as plain
// byte-wise strings; equal values keep their relative order.
func SortBy(view []User, cfg SortConfig) []User {
	out := slices.Clone(view)
	if cfg.Key == SortKeyNone {
		return out
	}
	slices.SortStableFunc(out, func(a, b User) int {
		c := strings.Compare(cfg.Key.field(a), cfg.Key.field(b))
		if cfg.Direction == SortDesc {
			return -c
		}
		return c
	})
	return out
}

// TotalPages is the number of pages needed for n items, never less than one
func TotalPages(n, pageSize int) int {
	if pageSize < 1 || n <= 0 {
		return 1
	}
	return (n-1)/pageSize + 1
}

// Paginate returns the items of view on the given one-based page. Pages
// beyond the end, and invalid arguments, yield an empty slice.
func Paginate(view []User, page, pageSize int) []User {
	if page < 1 || pageSize < 1 {
		return []User{}
	}
	// compare page counts first so the offset cannot overflow
	if page > TotalPages(len(view), pageSize) || len(view) == 0 {
		return []User{}
	}
	start := (page - 1) * pageSize
	end := min(start+pageSize, len(view))
	return slices.Clone(view[start:end])
}

// Query derives one page from users: filter, sort, clamp the page, paginate
func Query(users []User, state ViewState) Page {
	state = state.Normalize()

	view := SortBy(Filter(users, state.SearchTerm), state.Sort)
	total := TotalPages(len(view), state.PageSize)
	if state.Page > total {
		state.Page = total
	}

	return Page{
		Users:      Paginate(view, state.Page, state.PageSize),
		State:      state,
		TotalItems: len(view),
		TotalPages: total,
	}
}
