package utils

import (
	"net/http"
	"strconv"
)

// QueryInt reads an integer query parameter, falling back to defaultValue
// when it is missing or malformed
func QueryInt(r *http.Request, key string, defaultValue int) int {
	value := r.URL.Query().Get(key)
	if value == "" {
		return defaultValue
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return i
}
