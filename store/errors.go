package store

import "github.com/ayoisaiah/pomo/internal/apperr"

var (
	// ErrRunning is returned when another pomo process holds the database.
	ErrRunning = &apperr.Error{
		Message: "is pomo already running? Only one instance can be active at a time",
	}

	errOpenDB = &apperr.Error{
		Message: "unable to open database at %s",
	}

	errEncode = &apperr.Error{
		Message: "unable to encode %s",
	}

	errDecode = &apperr.Error{
		Message: "unable to decode %s",
	}

	errWrite = &apperr.Error{
		Message: "unable to write %s",
	}

	errRead = &apperr.Error{
		Message: "unable to read %s",
	}
)
