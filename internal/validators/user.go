package validators

import (
	"context"
	"strings"

	"github.com/muzaparoff/rest-api-exam/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate to restrict validation to a subset
// of fields (field-level scoping). They match the JSON field names of the
// request models, so they can be echoed back verbatim in error responses.
const (
	// FieldID targets the Israeli national ID of a user record.
	FieldID = "id"

	// FieldName targets the full name of a user record.
	FieldName = "name"

	// FieldPhoneNumber targets the Israeli mobile number of a user record.
	FieldPhoneNumber = "phone_number"

	// FieldAddress targets the address of a user record.
	FieldAddress = "address"
)

// UserValidator implements the Validator interface for the user request
// models: UserCreate and UserUpdate. Both value and pointer forms are
// accepted, and validation can optionally be scoped to named fields.
//
// Unlike a fail-fast validator it checks every requested field and returns
// a *ValidationError aggregating all failures, so a single round trip
// reports every problem with the request.
type UserValidator struct {
}

// NewUserValidator constructs a new UserValidator
// and returns it as the Validator interface.
func NewUserValidator() Validator {
	return &UserValidator{}
}

// Validate dispatches validation to the appropriate type-specific method
// based on the dynamic type of obj. Both value and pointer forms of each
// supported model are accepted.
//
// Supported types:
//   - models.UserCreate / *models.UserCreate
//   - models.UserUpdate / *models.UserUpdate
//
// Returns ErrUnsupportedType if obj does not match any known model,
// a *ValidationError listing every rejected field, or nil.
func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.UserCreate:
		return v.validateCreate(ctx, value, fields...)
	case *models.UserCreate:
		return v.validateCreate(ctx, *value, fields...)

	case models.UserUpdate:
		return v.validateUpdate(ctx, value, fields...)
	case *models.UserUpdate:
		return v.validateUpdate(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateCreate validates a UserCreate request. All four fields are
// required; every failing field is collected before returning.
//
// Default validated fields (when none specified): ID, Name, PhoneNumber,
// Address.
func (v *UserValidator) validateCreate(ctx context.Context, req models.UserCreate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldName, FieldPhoneNumber, FieldAddress}
	}

	failure := &ValidationError{Message: "request validation failed"}
	for _, f := range fields {
		switch f {
		case FieldID:
			if !ValidateIsraeliID(req.ID) {
				failure.add(FieldID, MsgInvalidID, req.ID)
			}
		case FieldName:
			if !validTextField(req.Name, NameMinLength, NameMaxLength) {
				failure.add(FieldName, MsgInvalidName, req.Name)
			}
		case FieldPhoneNumber:
			if !ValidateIsraeliPhone(req.PhoneNumber) {
				failure.add(FieldPhoneNumber, MsgInvalidPhone, req.PhoneNumber)
			}
		case FieldAddress:
			if !validTextField(req.Address, AddressMinLength, AddressMaxLength) {
				failure.add(FieldAddress, MsgInvalidAddress, req.Address)
			}
		default:
			return ErrUnknownField
		}
	}

	if len(failure.Fields) > 0 {
		return failure
	}

	return nil
}

// validateUpdate validates a UserUpdate request.
//
// Structural rule checked first: at least one field must be supplied.
// Field-level checks only trigger when the corresponding pointer is non-nil
// (partial update semantics: nil means "do not touch"). Every failing
// supplied field is collected before returning.
func (v *UserValidator) validateUpdate(ctx context.Context, req models.UserUpdate, fields ...string) error {
	if req.IsEmpty() {
		return &ValidationError{Message: MsgNoFields}
	}

	if len(fields) == 0 {
		fields = []string{FieldName, FieldPhoneNumber, FieldAddress}
	}

	failure := &ValidationError{Message: "request validation failed"}
	for _, f := range fields {
		switch f {
		case FieldName:
			if req.Name != nil && !validTextField(*req.Name, NameMinLength, NameMaxLength) {
				failure.add(FieldName, MsgInvalidName, *req.Name)
			}
		case FieldPhoneNumber:
			if req.PhoneNumber != nil && !ValidateIsraeliPhone(*req.PhoneNumber) {
				failure.add(FieldPhoneNumber, MsgInvalidPhone, *req.PhoneNumber)
			}
		case FieldAddress:
			if req.Address != nil && !validTextField(*req.Address, AddressMinLength, AddressMaxLength) {
				failure.add(FieldAddress, MsgInvalidAddress, *req.Address)
			}
		default:
			return ErrUnknownField
		}
	}

	if len(failure.Fields) > 0 {
		return failure
	}

	return nil
}

// CanonicalizeCreate returns a copy of req with every field in its stored
// form: ID zero-padded to 9 digits, phone reduced to digits only, name and
// address trimmed. Call only after validation has succeeded; an invalid ID
// is returned unchanged.
func CanonicalizeCreate(req models.UserCreate) models.UserCreate {
	if canonical, ok := CanonicalIsraeliID(req.ID); ok {
		req.ID = canonical
	}
	req.Name = strings.TrimSpace(req.Name)
	req.PhoneNumber = CanonicalPhone(req.PhoneNumber)
	req.Address = strings.TrimSpace(req.Address)
	return req
}

// CanonicalizeUpdate returns a copy of req with every supplied field in its
// stored form. Absent fields stay nil.
func CanonicalizeUpdate(req models.UserUpdate) models.UserUpdate {
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		req.Name = &name
	}
	if req.PhoneNumber != nil {
		phone := CanonicalPhone(*req.PhoneNumber)
		req.PhoneNumber = &phone
	}
	if req.Address != nil {
		address := strings.TrimSpace(*req.Address)
		req.Address = &address
	}
	return req
}
