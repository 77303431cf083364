package validators

import (
	"context"
	"fmt"
	"net/mail"

	"github.com/devfriend/devfriend/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate to restrict validation to a subset
// of fields (field-level scoping).
const (
	// FieldEmail targets the account email address.
	FieldEmail = "email"

	// FieldPassword targets the account password.
	FieldPassword = "password"

	// FieldName targets the human-readable name of a secret.
	FieldName = "name"

	// FieldServiceType targets the external service discriminator.
	FieldServiceType = "service_type"

	// FieldValue targets the plaintext bundle of a secret request.
	FieldValue = "value"
)

const minPasswordLength = 8

// allowedServiceTypes is the exhaustive set of ServiceType values accepted
// for secrets created through the API. Any other value is rejected.
var allowedServiceTypes = []models.ServiceType{
	models.ServiceTypeGitHub,
	models.ServiceTypeGmail,
	models.ServiceTypeSlack,
	models.ServiceTypeCustom,
	"email",
	"messages",
}

// allowedBundleKinds is the set of values the bundle kind discriminator may
// carry when supplied explicitly.
var allowedBundleKinds = []string{
	models.BundleKindAppCredential,
	models.BundleKindOAuthToken,
}

// RequestValidator implements [Validator] for every inbound request shape:
// registration, login, secret create/update, integration create.
type RequestValidator struct {
}

// NewRequestValidator constructs a new RequestValidator
// and returns it as the Validator interface.
func NewRequestValidator() Validator {
	return &RequestValidator{}
}

// Validate dispatches validation to the appropriate type-specific method
// based on the dynamic type of obj. Both value and pointer forms of each
// supported model are accepted.
//
// Returns ErrUnsupportedType if obj does not match any known request.
func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterRequest:
		return v.validateRegister(ctx, value, fields...)
	case *models.RegisterRequest:
		return v.validateRegister(ctx, *value, fields...)
	case models.LoginRequest:
		return v.validateLogin(ctx, value, fields...)
	case *models.LoginRequest:
		return v.validateLogin(ctx, *value, fields...)
	case models.SecretCreateRequest:
		return v.validateSecretCreate(ctx, value, fields...)
	case *models.SecretCreateRequest:
		return v.validateSecretCreate(ctx, *value, fields...)
	case models.SecretUpdateRequest:
		return v.validateSecretUpdate(ctx, value)
	case *models.SecretUpdateRequest:
		return v.validateSecretUpdate(ctx, *value)
	case models.IntegrationCreateRequest:
		return v.validateIntegrationCreate(ctx, value)
	case *models.IntegrationCreateRequest:
		return v.validateIntegrationCreate(ctx, *value)
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

func (v *RequestValidator) validateRegister(_ context.Context, req models.RegisterRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, field := range fields {
		switch field {
		case FieldEmail:
			if err := validEmail(req.Email); err != nil {
				return err
			}
		case FieldPassword:
			if len(req.Password) < minPasswordLength {
				return ErrWeakPassword
			}
		default:
			return fmt.Errorf("%w: %q", ErrUnknownField, field)
		}
	}

	return nil
}

func (v *RequestValidator) validateLogin(_ context.Context, req models.LoginRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, field := range fields {
		switch field {
		case FieldEmail:
			if err := validEmail(req.Email); err != nil {
				return err
			}
		case FieldPassword:
			if req.Password == "" {
				return ErrWeakPassword
			}
		default:
			return fmt.Errorf("%w: %q", ErrUnknownField, field)
		}
	}

	return nil
}

func (v *RequestValidator) validateSecretCreate(_ context.Context, req models.SecretCreateRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldServiceType, FieldValue}
	}

	for _, field := range fields {
		switch field {
		case FieldName:
			if req.Name == "" {
				return ErrEmptyName
			}
		case FieldServiceType:
			if !validServiceType(req.ServiceType) {
				return fmt.Errorf("%w: %q", ErrInvalidServiceType, req.ServiceType)
			}
		case FieldValue:
			if err := validBundle(req.Value); err != nil {
				return err
			}
		default:
			return fmt.Errorf("%w: %q", ErrUnknownField, field)
		}
	}

	return nil
}

func (v *RequestValidator) validateSecretUpdate(_ context.Context, req models.SecretUpdateRequest) error {
	if req.Name == nil && req.Value == nil {
		return ErrNoFieldsToUpdate
	}
	if req.Name != nil && *req.Name == "" {
		return ErrEmptyName
	}
	if req.Value != nil {
		return validBundle(req.Value)
	}
	return nil
}

func (v *RequestValidator) validateIntegrationCreate(_ context.Context, req models.IntegrationCreateRequest) error {
	if !validServiceType(req.ServiceType) {
		return fmt.Errorf("%w: %q", ErrInvalidServiceType, req.ServiceType)
	}
	return nil
}

func validEmail(email string) error {
	if email == "" {
		return ErrInvalidEmail
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidEmail, err)
	}
	return nil
}

func validServiceType(serviceType models.ServiceType) bool {
	for _, allowed := range allowedServiceTypes {
		if serviceType == allowed {
			return true
		}
	}
	return false
}

func validBundle(bundle models.SecretBundle) error {
	if len(bundle) == 0 {
		return ErrEmptyBundle
	}
	for key := range bundle {
		if key == "" {
			return ErrEmptyBundleKey
		}
	}
	if kind, ok := bundle[models.BundleKindKey]; ok && kind != "" {
		for _, allowed := range allowedBundleKinds {
			if kind == allowed {
				return nil
			}
		}
		return fmt.Errorf("%w: %q", ErrInvalidBundleKind, kind)
	}
	return nil
}
