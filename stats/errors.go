package stats

import "github.com/ayoisaiah/pomo/internal/apperr"

var (
	errInvalidPeriod = &apperr.Error{
		Message: "please provide a valid time period: %s",
	}

	errInvalidSince = &apperr.Error{
		Message: "unable to understand the start date %q",
	}

	errInvalidDateRange = &apperr.Error{
		Message: "the start date must not be later than today",
	}
)
