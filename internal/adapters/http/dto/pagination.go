package dto

import (
	"net/url"
	"strconv"
)

// DefaultSkip is the offset applied when none is provided.
const DefaultSkip = 0

// DefaultTake is the page size applied when none is provided.
const DefaultTake = 10

// PageRequest holds offset pagination parameters parsed from the query string.
type PageRequest struct {
	// Skip is the number of records to skip before the first returned row.
	Skip int

	// Take is the maximum number of records to return.
	Take int
}

// ParsePageRequest reads skip and take from query values. Missing, malformed
// or negative values fall back to the defaults without raising an error.
// Negatives are treated like parse failures rather than forwarded to the
// database, where OFFSET and LIMIT would reject them.
func ParsePageRequest(query url.Values) PageRequest {
	return PageRequest{
		Skip: parsePageParam(query.Get("skip"), DefaultSkip),
		Take: parsePageParam(query.Get("take"), DefaultTake),
	}
}

func parsePageParam(raw string, fallback int) int {
	if raw == "" {
		return fallback
	}

	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		return fallback
	}

	return value
}
