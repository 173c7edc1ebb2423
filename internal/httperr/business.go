package httperr

import "errors"

// BusinessError is a rule violation, not an I/O failure. Repositories raise
// it for dedup-key hits ("already_booked", "user_exists") and use cases map
// it to an acknowledged=false payload instead of a 5xx.
type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}
