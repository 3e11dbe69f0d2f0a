package utils

import (
	"clinic-booking-service/internal/app/models"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("patient_id", validateIdentifier(IdentifierPatient))
	validate.RegisterValidation("doctor_id", validateIdentifier(IdentifierDoctor))
	validate.RegisterValidation("organization_id", validateIdentifier(IdentifierOrganization))
	validate.RegisterValidation("hhmm", validateClock)
	validate.RegisterValidation("date_only", validateDateOnly)
	validate.RegisterValidation("weekday", validateWeekday)
	validate.RegisterValidation("fee_type", validateFeeType)
	validate.RegisterValidation("payment_method", validatePaymentMethod)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateIdentifier(kind IdentifierKind) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return IsValidIdentifier(kind, fl.Field().String())
	}
}

func validateClock(fl validator.FieldLevel) bool {
	return IsValidClock(fl.Field().String())
}

func validateDateOnly(fl validator.FieldLevel) bool {
	_, err := ParseDate(fl.Field().String(), nil)
	return err == nil
}

func validateWeekday(fl validator.FieldLevel) bool {
	_, ok := models.ParseWeekday(fl.Field().String())
	return ok
}

func validateFeeType(fl validator.FieldLevel) bool {
	return models.FeeType(fl.Field().String()).IsValid()
}

func validatePaymentMethod(fl validator.FieldLevel) bool {
	return models.PaymentMethod(fl.Field().String()).IsValid()
}
