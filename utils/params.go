package utils

import (
	"net/http"
	"strconv"
)

// ParsePagination reads page/limit query params and returns a skip offset
// and a clamped limit.
func ParsePagination(r *http.Request, defaultLimit, maxLimit int64) (skip int64, limit int64) {
	q := r.URL.Query()

	page := int64(1)
	if p := q.Get("page"); p != "" {
		if v, err := strconv.ParseInt(p, 10, 64); err == nil && v >= 1 {
			page = v
		}
	}

	limit = defaultLimit
	if l := q.Get("limit"); l != "" {
		if v, err := strconv.ParseInt(l, 10, 64); err == nil && v > 0 {
			limit = v
		}
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	return (page - 1) * limit, limit
}
