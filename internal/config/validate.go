package config

const (
	minWorkMinutes  = 1
	maxWorkMinutes  = 240
	minBreakMinutes = 1
	maxBreakMinutes = 60

	minLongBreakAfter = 1
	maxLongBreakAfter = 10
)

// Validate reports the first setting that is outside the range the settings
// editor accepts. Values loaded from disk are used as-is; validation only
// guards user input.
func (s Settings) Validate() error {
	if err := validateWork(s.WorkMin); err != nil {
		return err
	}

	if err := validateBreak("break", s.BreakMin); err != nil {
		return err
	}

	if err := validateBreak("long break", s.LongBreakMin); err != nil {
		return err
	}

	if err := validateLongBreakAfter(s.LongBreakAfter); err != nil {
		return err
	}

	if !s.WorkTheme.Valid() {
		return errUnknownTheme.Fmt("work", s.WorkTheme)
	}

	if !s.BreakTheme.Valid() {
		return errUnknownTheme.Fmt("break", s.BreakTheme)
	}

	return nil
}

func validateWork(minutes int) error {
	if minutes < minWorkMinutes || minutes > maxWorkMinutes {
		return errInvalidDuration.Fmt("work", minWorkMinutes, maxWorkMinutes)
	}

	return nil
}

func validateBreak(name string, minutes int) error {
	if minutes < minBreakMinutes || minutes > maxBreakMinutes {
		return errInvalidDuration.Fmt(name, minBreakMinutes, maxBreakMinutes)
	}

	return nil
}

func validateLongBreakAfter(n int) error {
	if n < minLongBreakAfter || n > maxLongBreakAfter {
		return errInvalidLongBreakAfter.Fmt(minLongBreakAfter, maxLongBreakAfter)
	}

	return nil
}
