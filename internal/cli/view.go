package cli

import (
	"github.com/spf13/viper"

	"github.com/pratik-mahalle/userboard/internal/domain/user"
)

// loadView reads the saved view state, falling back to defaults for
// anything missing or invalid
func loadView() user.ViewState {
	key, err := user.ParseSortKey(viper.GetString("view.sort.key"))
	if err != nil {
		key = user.SortKeyNone
	}
	direction, err := user.ParseSortDirection(viper.GetString("view.sort.direction"))
	if err != nil {
		direction = user.SortAsc
	}

	state := user.ViewState{
		SearchTerm: viper.GetString("view.search_term"),
		Sort:       user.SortConfig{Key: key, Direction: direction},
		Page:       viper.GetInt("view.page"),
		PageSize:   viper.GetInt("view.page_size"),
	}
	return state.Normalize()
}

// saveView stores the view state in the config file
func saveView(state user.ViewState) error {
	viper.Set("view", map[string]interface{}{
		"search_term": state.SearchTerm,
		"sort": map[string]interface{}{
			"key":       string(state.Sort.Key),
			"direction": string(state.Sort.Direction),
		},
		"page":      state.Page,
		"page_size": state.PageSize,
	})
	return writeConfig()
}

// listFlags are the view changes requested on the command line. Only
// fields whose flag was set are applied.
type listFlags struct {
	reset    bool
	search   *string
	sort     *string
	page     *int
	pageSize *int
}

// apply derives the next view state. Changing the search term or the page
// size returns to the first page; repeating the current sort key flips the
// direction.
func (f listFlags) apply(state user.ViewState) (user.ViewState, error) {
	if f.reset {
		state = user.NewViewState()
	}
	if f.search != nil {
		state = state.WithSearch(*f.search)
	}
	if f.sort != nil {
		key, err := user.ParseSortKey(*f.sort)
		if err != nil {
			return state, err
		}
		state = state.WithSort(key)
	}
	if f.pageSize != nil {
		var err error
		if state, err = state.WithPageSize(*f.pageSize); err != nil {
			return state, err
		}
	}
	if f.page != nil {
		state = state.WithPage(*f.page)
	}
	return state, nil
}
