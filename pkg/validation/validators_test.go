package validation_test

import (
	"testing"

	"health-research-cms/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

func TestValidPhone(t *testing.T) {
	valid := []string{
		"+251912345678",
		"0912345678",
	}
	invalid := []string{
		"12345678",
		"+1912345678",
		"+25191234567",   // one digit short
		"+2519123456789", // one digit long
		"09123456789",
		"091234567",
		"+251812345678", // not a 9-prefixed mobile
		"0812345678",
		"phone",
		"",
	}

	for _, number := range valid {
		assert.True(t, validation.ValidPhone(number), number)
	}
	for _, number := range invalid {
		assert.False(t, validation.ValidPhone(number), number)
	}
}

func TestValidEmail(t *testing.T) {
	assert.True(t, validation.ValidEmail("a@x.com"))
	assert.True(t, validation.ValidEmail("first.last@sub.example.org"))

	assert.False(t, validation.ValidEmail("a@x"))
	assert.False(t, validation.ValidEmail("a x@y.com"))
	assert.False(t, validation.ValidEmail("@x.com"))
	assert.False(t, validation.ValidEmail(""))
}

func TestEthiopianPhoneTag(t *testing.T) {
	v := validator.New()
	validation.RegisterValidators(v)

	type form struct {
		Phone string `validate:"required,ethiopian_phone"`
	}

	assert.NoError(t, v.Struct(form{Phone: "+251912345678"}))
	assert.NoError(t, v.Struct(form{Phone: "0912345678"}))
	assert.Error(t, v.Struct(form{Phone: "12345678"}))
	assert.Error(t, v.Struct(form{Phone: ""}))
}
