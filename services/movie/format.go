package movie

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	mt "github.com/webtor-io/movie-ui/models/tmdb"
)

// SplitReleaseDate returns the year and the "/"-separated form of a
// "YYYY-MM-DD" release date.
func SplitReleaseDate(date string) (year string, formatted string, err error) {
	if !strings.Contains(date, "-") {
		return "", "", errors.Wrapf(ErrMalformedDate, "%q", date)
	}
	parts := strings.Split(date, "-")
	if parts[0] == "" {
		return "", "", errors.Wrapf(ErrMalformedDate, "%q", date)
	}
	return parts[0], strings.Join(parts, "/"), nil
}

// FormatRuntime renders minutes as "2h 5m". Zero parts are omitted, so
// zero minutes renders as an empty string.
func FormatRuntime(minutes int) string {
	var sb strings.Builder
	if h := minutes / 60; h > 0 {
		fmt.Fprintf(&sb, "%dh ", h)
	}
	if m := minutes % 60; m > 0 {
		fmt.Fprintf(&sb, "%dm", m)
	}
	return strings.TrimSpace(sb.String())
}

func JoinGenreNames(genres []mt.Genre) string {
	var sb strings.Builder
	for i, g := range genres {
		sb.WriteString(g.Name)
		if i != len(genres)-1 {
			sb.WriteString(",")
		}
	}
	return sb.String()
}

func FormatRating(vote float64) string {
	return fmt.Sprintf("%.1f", vote)
}
