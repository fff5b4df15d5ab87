package validation

import (
	"reflect"
	"strings"

	"hotel-management/internal/domain/guest"
	"hotel-management/internal/domain/reservation"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Register installs the hotel validators on gin's binding engine and makes
// field errors report json/form names. Safe to call more than once.
func Register() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return RegisterOn(v)
}

func RegisterOn(v *validator.Validate) error {
	v.RegisterTagNameFunc(fieldName)

	rules := map[string]validator.Func{
		"phone":              phone,
		"reservation_status": reservationStatus,
		"payment_status":     paymentStatus,
	}
	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return err
		}
	}
	return nil
}

func fieldName(f reflect.StructField) string {
	for _, tag := range []string{"json", "form"} {
		name, _, _ := strings.Cut(f.Tag.Get(tag), ",")
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return f.Name
}

func phone(fl validator.FieldLevel) bool {
	_, err := guest.NewPhone(fl.Field().String())
	return err == nil
}

func reservationStatus(fl validator.FieldLevel) bool {
	_, err := reservation.ParseStatus(fl.Field().String())
	return err == nil
}

func paymentStatus(fl validator.FieldLevel) bool {
	_, err := reservation.ParsePaymentStatus(fl.Field().String())
	return err == nil
}
