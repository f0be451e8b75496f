package utils

import (
	"fmt"
	"strconv"
)

const (
	DefaultLimit = 5
	MaxLimit     = 50
)

// ParsePage reads limit/offset query values. Empty values fall back to
// DefaultLimit and 0.
func ParsePage(limitRaw, offsetRaw string) (limit, offset int, err error) {
	limit, offset = DefaultLimit, 0
	if limitRaw != "" {
		if limit, err = strconv.Atoi(limitRaw); err != nil {
			return 0, 0, fmt.Errorf("limit %q is not a number", limitRaw)
		}
	}
	if offsetRaw != "" {
		if offset, err = strconv.Atoi(offsetRaw); err != nil {
			return 0, 0, fmt.Errorf("offset %q is not a number", offsetRaw)
		}
	}
	if err := ValidatePage(limit, offset); err != nil {
		return 0, 0, err
	}
	return limit, offset, nil
}

func ValidatePage(limit, offset int) error {
	if limit < 0 || limit > MaxLimit {
		return fmt.Errorf("limit must be between 0 and %d, got %d", MaxLimit, limit)
	}
	if offset < 0 {
		return fmt.Errorf("offset must not be negative, got %d", offset)
	}
	return nil
}

func ParseVersion(raw string) (int, error) {
	version, err := strconv.Atoi(raw)
	if err != nil || version < 1 {
		return 0, fmt.Errorf("version %q must be a positive number", raw)
	}
	return version, nil
}
