package translations

import "errors"

var (
	ErrEmptyLocale = errors.New("translations: locale cannot be empty")
	ErrInvalidFile = errors.New("translations: invalid translation file")
	ErrNilHandler  = errors.New("translations: handler cannot be nil")
	ErrNilLogger   = errors.New("translations: logger cannot be nil")
)
