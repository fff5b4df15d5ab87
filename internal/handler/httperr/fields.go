package httperr

import (
	"fmt"
	"strings"

	"hotel-management/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
)

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// FieldErrors flattens validator failures; other binding errors (bad JSON,
// wrong types) yield nil so only the generic message is shown.
func FieldErrors(err error) []FieldError {
	var verrs validator.ValidationErrors
	if !errs.As(err, &verrs) {
		return nil
	}
	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{Field: fieldPath(fe), Message: message(fe)})
	}
	return out
}

// drops the request struct name, keeping e.g. guests[1].email
func fieldPath(fe validator.FieldError) string {
	_, path, ok := strings.Cut(fe.Namespace(), ".")
	if !ok {
		return fe.Field()
	}
	return path
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "phone":
		return "must be a valid phone number"
	case "datetime":
		return "must be a date in YYYY-MM-DD format"
	case "reservation_status":
		return "must be one of pending, confirmed, checked_in, checked_out, cancelled"
	case "payment_status":
		return "must be one of pending, paid, failed, refunded"
	case "min", "gte":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max", "lte":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "uuid":
		return "must be a valid UUID"
	}
	return fmt.Sprintf("failed on %s", fe.Tag())
}
