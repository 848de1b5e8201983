package errs

// Kind markers. Concrete errors are marked with one of these via Mark/NewNotFound/etc.
// and classified with Is at the transport boundary.
var (
	ErrNotFound   = New("not found")
	ErrBadRequest = New("bad request")
	ErrConflict   = New("conflict")
)

func NewNotFound(msg string) error {
	return Mark(New(msg), ErrNotFound)
}

func NewBadRequest(msg string) error {
	return Mark(New(msg), ErrBadRequest)
}

func NewConflict(msg string) error {
	return Mark(New(msg), ErrConflict)
}

func IsNotFound(err error) bool {
	return Is(err, ErrNotFound)
}

func IsBadRequest(err error) bool {
	return Is(err, ErrBadRequest)
}

func IsConflict(err error) bool {
	return Is(err, ErrConflict)
}

// BadRequest tags a validation error so it is reported to the caller as-is.
func BadRequest(err error) error {
	if err == nil {
		return nil
	}
	return Mark(err, ErrBadRequest)
}
