package movie

import "github.com/pkg/errors"

var (
	ErrMissingDirector = errors.New("no crew member with job Director")
	ErrMissingTrailer  = errors.New("no video with type Trailer")
	ErrMalformedDate   = errors.New("malformed release date")
	ErrNegativeRuntime = errors.New("negative runtime")
	ErrUnknownGenre    = errors.New("unknown genre")
)

// IsMissingData reports whether err means the upstream data lacks a datum
// required to render the page.
func IsMissingData(err error) bool {
	return errors.Is(err, ErrMissingDirector) ||
		errors.Is(err, ErrMissingTrailer) ||
		errors.Is(err, ErrMalformedDate) ||
		errors.Is(err, ErrNegativeRuntime)
}
