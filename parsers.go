package stoker

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// Built-in ParseFuncs. An empty value yields the zero value of the type, except for
// ParseFlag where the bare presence of a flag means true.

// ParseString returns value unchanged
func ParseString(value string) (string, error) {
	return value, nil
}

// ParseInt parses a base-10 integer
func ParseInt(value string) (int, error) {
	if value == "" {
		return 0, nil
	}

	return strconv.Atoi(strings.TrimSpace(value))
}

// ParseFloat parses a 64-bit float
func ParseFloat(value string) (float64, error) {
	if value == "" {
		return 0, nil
	}

	return strconv.ParseFloat(strings.TrimSpace(value), 64)
}

// ParseFlag parses a boolean. The empty string is true so that `--verbose` on its own
// switches the flag on.
func ParseFlag(value string) (bool, error) {
	if value == "" {
		return true, nil
	}

	return strconv.ParseBool(value)
}

// ParseDuration parses a Go duration such as "1m30s"
func ParseDuration(value string) (time.Duration, error) {
	if value == "" {
		return 0, nil
	}

	return time.ParseDuration(value)
}

// ParseTime parses a date or timestamp in any format dateparse recognizes, in local time
func ParseTime(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}

	return dateparse.ParseLocal(value)
}

// ParseOneOf returns a ParseFunc accepting only the given values, compared case-insensitively.
// The value is returned in its declared spelling.
func ParseOneOf(values ...string) ParseFunc[string] {
	return func(value string) (string, error) {
		if value == "" {
			return "", nil
		}
		for _, v := range values {
			if strings.EqualFold(v, value) {
				return v, nil
			}
		}

		return "", fmt.Errorf("expected one of %s", strings.Join(values, ", "))
	}
}
