package period

import "errors"

var ErrPeriodNotFound = errors.New("internship period not found")
