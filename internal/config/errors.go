package config

import "github.com/ayoisaiah/pomo/internal/apperr"

var (
	errConfigOption = &apperr.Error{
		Message: "config option error",
	}

	errReadConfig = &apperr.Error{
		Message: "reading settings file failed",
	}

	errWriteConfig = &apperr.Error{
		Message: "writing settings file failed",
	}

	errInvalidDuration = &apperr.Error{
		Message: "%s duration must be between %d and %d minutes",
	}

	errInvalidLongBreakAfter = &apperr.Error{
		Message: "long break interval must be between %d and %d sessions",
	}

	errUnknownTheme = &apperr.Error{
		Message: "unknown %s theme: %s",
	}

	errPromptFailed = &apperr.Error{
		Message: "settings prompt failed",
	}
)
