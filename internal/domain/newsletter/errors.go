package newsletter

import "errors"

var (
	ErrBadRequest = errors.New("bad request")
	ErrConflict   = errors.New("conflict")
)

func IsErrBadRequest(err error) bool { return errors.Is(err, ErrBadRequest) }
func IsErrConflict(err error) bool   { return errors.Is(err, ErrConflict) }
