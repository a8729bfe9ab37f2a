package enrollment

import "github.com/pkg/errors"

var (
	ErrSubjectNotFound      = errors.New("subject not found")
	ErrPersonNotFound       = errors.New("person not found")
	ErrGroupTooLarge        = errors.New("group size exceeds roster")
	ErrInsufficientSubjects = errors.New("not enough open subjects")
	ErrInvalidConfig        = errors.New("invalid configuration")
	ErrMalformedQuery       = errors.New("malformed query")
)
