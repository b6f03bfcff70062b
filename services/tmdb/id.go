package tmdb

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

var ErrInvalidID = errors.New("invalid movie id")

// ParseID parses a numeric tmdb movie id.
func ParseID(s string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || id <= 0 {
		return 0, errors.Wrapf(ErrInvalidID, "%q", s)
	}
	return id, nil
}
