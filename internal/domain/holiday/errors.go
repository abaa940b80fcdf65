package holiday

import "errors"

var ErrInvalidDateRange = errors.New("holiday end date must not be before start date")
