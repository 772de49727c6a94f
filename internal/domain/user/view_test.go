package user

import (
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleUsers() []User {
	return []User{
		{ID: 1, Name: "Leanne Graham", Email: "Sincere@april.biz", Address: Address{City: "Gwenborough", Zipcode: "92998"}},
		{ID: 2, Name: "Ervin Howell", Email: "Shanna@melissa.tv", Address: Address{City: "Wisokyburgh", Zipcode: "90566"}},
		{ID: 3, Name: "Clementine Bauch", Email: "Nathan@yesenia.net", Address: Address{City: "McKenziehaven", Zipcode: "59590"}},
		{ID: 4, Name: "Patricia Lebsack", Email: "Julianne.OConner@kory.org", Address: Address{City: "South Elvis", Zipcode: "53919"}},
		{ID: 5, Name: "Chelsey Dietrich", Email: "Lucio_Hettinger@annie.ca", Address: Address{City: "Roscoeview", Zipcode: "33263"}},
	}
}

func numbered(n int) []User {
	users := make([]User, n)
	for i := range users {
		users[i] = User{ID: int64(i + 1), Name: fmt.Sprintf("user-%02d", i+1), Email: fmt.Sprintf("u%d@example.com", i+1)}
	}
	return users
}

func ids(users []User) []int64 {
	out := make([]int64, len(users))
	for i, u := range users {
		out[i] = u.ID
	}
	return out
}

func TestFilter(t *testing.T) {
	users := []User{
		{ID: 1, Name: "Bret", Email: "bret@example.com"},
		{ID: 2, Name: "Samantha", Email: "samantha@example.com"},
	}

	tests := []struct {
		name    string
		term    string
		wantIDs []int64
	}{
		{name: "case-insensitive name match", term: "sam", wantIDs: []int64{2}},
		{name: "upper case term", term: "BRET", wantIDs: []int64{1}},
		{name: "email match", term: "example.com", wantIDs: []int64{1, 2}},
		{name: "no match", term: "zzz", wantIDs: []int64{}},
		{name: "empty term matches all", term: "", wantIDs: []int64{1, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantIDs, ids(Filter(users, tt.term)))
		})
	}
}

func TestFilter_PartitionsCollection(t *testing.T) {
	users := sampleUsers()
	for _, term := range []string{"an", "ORG", "e", "x", "@"} {
		got := Filter(users, term)
		kept := make(map[int64]bool, len(got))
		for _, u := range got {
			kept[u.ID] = true
		}

		lower := strings.ToLower(term)
		for _, u := range users {
			matches := strings.Contains(strings.ToLower(u.Name), lower) ||
				strings.Contains(strings.ToLower(u.Email), lower)
			assert.Equal(t, matches, kept[u.ID], "term %q user %d", term, u.ID)
		}
	}
}

func TestFilter_DoesNotMutateInput(t *testing.T) {
	users := sampleUsers()
	before := ids(users)

	got := Filter(users, "")
	got[0].Name = "changed"

	assert.Equal(t, before, ids(users))
	assert.Equal(t, "Leanne Graham", users[0].Name)
}

func TestSortConfig_Toggle(t *testing.T) {
	tests := []struct {
		name    string
		current SortConfig
		key     SortKey
		want    SortConfig
	}{
		{
			name:    "new key starts ascending",
			current: SortConfig{},
			key:     SortKeyName,
			want:    SortConfig{Key: SortKeyName, Direction: SortAsc},
		},
		{
			name:    "same key flips to descending",
			current: SortConfig{Key: SortKeyName, Direction: SortAsc},
			key:     SortKeyName,
			want:    SortConfig{Key: SortKeyName, Direction: SortDesc},
		},
		{
			name:    "same key flips back to ascending",
			current: SortConfig{Key: SortKeyName, Direction: SortDesc},
			key:     SortKeyName,
			want:    SortConfig{Key: SortKeyName, Direction: SortAsc},
		},
		{
			name:    "different key resets direction",
			current: SortConfig{Key: SortKeyName, Direction: SortDesc},
			key:     SortKeyEmail,
			want:    SortConfig{Key: SortKeyEmail, Direction: SortAsc},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.current.Toggle(tt.key))
		})
	}
}

func TestSort_TogglesAndReverses(t *testing.T) {
	users := sampleUsers()

	asc, cfg := Sort(users, SortKeyName, SortConfig{})
	require.Equal(t, SortConfig{Key: SortKeyName, Direction: SortAsc}, cfg)
	assert.Equal(t, []int64{5, 3, 2, 1, 4}, ids(asc))

	desc, cfg := Sort(asc, SortKeyName, cfg)
	require.Equal(t, SortDesc, cfg.Direction)
	assert.Equal(t, []int64{4, 1, 2, 3, 5}, ids(desc))

	// canonical order untouched
	assert.Equal(t, []int64{1, 2, 3, 4, 5}, ids(users))
}

func TestSort_IsLexicographic(t *testing.T) {
	users := []User{
		{ID: 1, Address: Address{Zipcode: "9"}},
		{ID: 2, Address: Address{Zipcode: "10"}},
		{ID: 3, Address: Address{Zipcode: "b"}},
		{ID: 4, Address: Address{Zipcode: "B"}},
	}

	got := SortBy(users, SortConfig{Key: SortKeyZipcode, Direction: SortAsc})
	assert.Equal(t, []int64{2, 1, 4, 3}, ids(got))
}

func TestSort_StableForTies(t *testing.T) {
	users := []User{
		{ID: 1, Name: "b"},
		{ID: 2, Name: "a"},
		{ID: 3, Name: "b"},
		{ID: 4, Name: "a"},
	}

	asc := SortBy(users, SortConfig{Key: SortKeyName, Direction: SortAsc})
	assert.Equal(t, []int64{2, 4, 1, 3}, ids(asc))

	desc := SortBy(users, SortConfig{Key: SortKeyName, Direction: SortDesc})
	assert.Equal(t, []int64{1, 3, 2, 4}, ids(desc))
}

func TestSort_SecondKeyDoesNotRestoreOrder(t *testing.T) {
	users := sampleUsers()

	byName, cfg := Sort(users, SortKeyName, SortConfig{})
	byEmail, cfg := Sort(byName, SortKeyEmail, cfg)

	assert.Equal(t, SortConfig{Key: SortKeyEmail, Direction: SortAsc}, cfg)
	assert.NotEqual(t, ids(users), ids(byEmail))
}

func TestParseSortKey(t *testing.T) {
	key, err := ParseSortKey(" Name ")
	require.NoError(t, err)
	assert.Equal(t, SortKeyName, key)

	key, err = ParseSortKey("")
	require.NoError(t, err)
	assert.Equal(t, SortKeyNone, key)

	_, err = ParseSortKey("id")
	assert.Error(t, err)
}

func TestParseSortDirection(t *testing.T) {
	dir, err := ParseSortDirection("")
	require.NoError(t, err)
	assert.Equal(t, SortAsc, dir)

	dir, err = ParseSortDirection("DESC")
	require.NoError(t, err)
	assert.Equal(t, SortDesc, dir)

	_, err = ParseSortDirection("sideways")
	assert.Error(t, err)
}

func TestPaginate(t *testing.T) {
	users := numbered(12)

	tests := []struct {
		name     string
		page     int
		pageSize int
		wantIDs  []int64
	}{
		{name: "first page", page: 1, pageSize: 5, wantIDs: []int64{1, 2, 3, 4, 5}},
		{name: "last partial page", page: 3, pageSize: 5, wantIDs: []int64{11, 12}},
		{name: "past the end", page: 4, pageSize: 5, wantIDs: []int64{}},
		{name: "zero page", page: 0, pageSize: 5, wantIDs: []int64{}},
		{name: "invalid size", page: 1, pageSize: 0, wantIDs: []int64{}},
		{name: "huge page", page: math.MaxInt/5 + 2, pageSize: 5, wantIDs: []int64{}},
		{name: "max page", page: math.MaxInt, pageSize: 5, wantIDs: []int64{}},
		{name: "huge size", page: 1, pageSize: math.MaxInt, wantIDs: []int64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}},
		{name: "past the end with huge size", page: 2, pageSize: math.MaxInt, wantIDs: []int64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantIDs, ids(Paginate(users, tt.page, tt.pageSize)))
		})
	}
}

func TestPaginate_ReconstructsView(t *testing.T) {
	for _, n := range []int{0, 1, 5, 12, 15, 16} {
		for _, size := range PageSizes {
			users := numbered(n)
			total := TotalPages(len(users), size)
			require.GreaterOrEqual(t, total, 1)

			var joined []User
			for page := 1; page <= total; page++ {
				chunk := Paginate(users, page, size)
				require.LessOrEqual(t, len(chunk), size)
				joined = append(joined, chunk...)
			}
			assert.Equal(t, ids(users), ids(joined), "n=%d size=%d", n, size)
		}
	}
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 3, TotalPages(12, 5))
	assert.Equal(t, 1, TotalPages(0, 5))
	assert.Equal(t, 2, TotalPages(10, 5))
	assert.Equal(t, 1, TotalPages(10, 15))
	assert.Equal(t, 1, TotalPages(10, math.MaxInt))
}

func TestViewState_Transitions(t *testing.T) {
	state := NewViewState().WithPage(3)
	assert.Equal(t, 3, state.Page)

	searched := state.WithSearch("sam")
	assert.Equal(t, 1, searched.Page)
	assert.Equal(t, 3, state.WithSearch("").Page, "unchanged term keeps the page")

	resized, err := state.WithPageSize(10)
	require.NoError(t, err)
	assert.Equal(t, 1, resized.Page)
	assert.Equal(t, 10, resized.PageSize)

	_, err = state.WithPageSize(7)
	assert.Error(t, err)

	sorted := state.WithSort(SortKeyEmail).WithSort(SortKeyEmail)
	assert.Equal(t, SortConfig{Key: SortKeyEmail, Direction: SortDesc}, sorted.Sort)
}

func TestQuery(t *testing.T) {
	users := numbered(12)

	page := Query(users, ViewState{Page: 3, PageSize: 5})
	assert.Equal(t, 3, page.TotalPages)
	assert.Equal(t, 12, page.TotalItems)
	assert.Len(t, page.Users, 2)

	clamped := Query(users, ViewState{Page: 9, PageSize: 5})
	assert.Equal(t, 3, clamped.State.Page)
	assert.Equal(t, []int64{11, 12}, ids(clamped.Users))

	empty := Query(users, ViewState{SearchTerm: "nobody", Page: 2, PageSize: 5})
	assert.Equal(t, 1, empty.TotalPages)
	assert.Equal(t, 1, empty.State.Page)
	assert.Empty(t, empty.Users)

	defaulted := Query(users, ViewState{PageSize: 7})
	assert.Equal(t, DefaultPageSize, defaulted.State.PageSize)
	assert.Equal(t, 1, defaulted.State.Page)

	sorted := Query(users, ViewState{Sort: SortConfig{Key: SortKeyName, Direction: SortDesc}, Page: 1, PageSize: 5})
	assert.Equal(t, []int64{12, 11, 10, 9, 8}, ids(sorted.Users))
}
