package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidEmail       = errors.New("invalid email address")
	ErrWeakPassword       = errors.New("password must be at least 8 characters")
	ErrEmptyName          = errors.New("name is required")
	ErrInvalidServiceType = errors.New("invalid service type")
	ErrEmptyBundle        = errors.New("secret value cannot be empty")
	ErrEmptyBundleKey     = errors.New("secret value keys cannot be empty")
	ErrInvalidBundleKind  = errors.New("invalid secret kind")
	ErrNoFieldsToUpdate   = errors.New("at least one field must be provided for update")
)
