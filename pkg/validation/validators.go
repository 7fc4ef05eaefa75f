package validation

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// Regex patterns
var (
	// Ethiopian mobile number: +2519XXXXXXXX or 09XXXXXXXX
	ethiopianPhoneRegex = regexp.MustCompile(`^(?:\+2519\d{8}|09\d{8})$`)

	// local@domain.tld with no whitespace
	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("ethiopian_phone", EthiopianPhone)
}

// EthiopianPhone validates an Ethiopian mobile number. Empty values pass;
// combine with required when the field is mandatory.
func EthiopianPhone(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true
	}
	return ethiopianPhoneRegex.MatchString(val)
}

// ValidEmail reports whether the address matches the simple
// local@domain.tld pattern used on the public forms.
func ValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// ValidPhone reports whether the number is a valid Ethiopian mobile
// number. Exposed for callers outside struct validation.
func ValidPhone(phone string) bool {
	return ethiopianPhoneRegex.MatchString(phone)
}
