package query

import (
	"errors"
	"net/http"
	"strconv"

	"fanhub/schema"
)

// OptionsFromRequest reads depth/limit/page/sort query params. Depth is
// clamped to the supported 0–2 range.
func OptionsFromRequest(r *http.Request, defaultLimit, maxLimit int64) Options {
	q := r.URL.Query()
	opts := Options{Depth: 1, Limit: defaultLimit, Page: 1, Sort: q.Get("sort")}

	if d := q.Get("depth"); d != "" {
		if v, err := strconv.Atoi(d); err == nil {
			if v < 0 {
				v = 0
			}
			if v > 2 {
				v = 2
			}
			opts.Depth = v
		}
	}
	if l := q.Get("limit"); l != "" {
		if v, err := strconv.ParseInt(l, 10, 64); err == nil && v > 0 {
			opts.Limit = v
		}
	}
	if opts.Limit > maxLimit {
		opts.Limit = maxLimit
	}
	if p := q.Get("page"); p != "" {
		if v, err := strconv.ParseInt(p, 10, 64); err == nil && v >= 1 {
			opts.Page = v
		}
	}
	return opts
}

// IsValidation reports whether an error is a caller mistake (bad field,
// bad condition) rather than a storage failure.
func IsValidation(err error) bool {
	return errors.Is(err, schema.ErrUnknownCollection) ||
		errors.Is(err, schema.ErrUnknownField) ||
		errors.Is(err, ErrInvalidCondition)
}
