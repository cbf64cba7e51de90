package upload

import (
	"errors"
	"strconv"
	"strings"
)

// Bounds of the expiration hint, in seconds: one minute to 180 days.
const (
	MinExpiration int64 = 60
	MaxExpiration int64 = 15552000
)

// ClampExpiration parses the caller's expiration hint. Blank or non-integer
// input means no expiration (0); anything else is clamped to
// [MinExpiration, MaxExpiration]. The value is only recorded on the object.
func ClampExpiration(raw string) int64 {
	raw = strings.TrimSpace(raw)
	n, err := strconv.ParseInt(raw, 10, 64)
	if errors.Is(err, strconv.ErrRange) {
		if strings.HasPrefix(raw, "-") {
			return MinExpiration
		}
		return MaxExpiration
	}
	if err != nil {
		return 0
	}
	return min(max(n, MinExpiration), MaxExpiration)
}
