package app

import "github.com/ayoisaiah/pomo/internal/apperr"

var (
	errMissingArg = &apperr.Error{
		Message: "please provide %s",
	}

	errInvalidID = &apperr.Error{
		Message: "%q is not a valid task id",
	}

	errTaskNotFound = &apperr.Error{
		Message: "no task with id %d",
	}

	errEmptyTask = &apperr.Error{
		Message: "the task description must not be empty",
	}

	errStatus = &apperr.Error{
		Message: "unable to read the timer status",
	}
)
