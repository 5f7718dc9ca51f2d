package appearance

import "errors"

// Setter errors. The caller keeps the prior state and surfaces the
// problem however it likes; none of these are fatal.
var (
	ErrUnknownTheme        = errors.New("unknown theme")
	ErrLockedTheme         = errors.New("theme requires premium")
	ErrInvalidMode         = errors.New("invalid ui mode")
	ErrUnsupportedLanguage = errors.New("unsupported language")
)
