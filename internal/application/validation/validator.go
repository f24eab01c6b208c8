package validation

import (
	"sync"
	"unicode"

	"github.com/go-playground/validator/v10"
)

var (
	once     sync.Once
	instance *validator.Validate
)

// Validator devuelve la instancia compartida con las reglas propias registradas.
// validator.Validate es seguro para uso concurrente y cachea la metadata de los structs.
func Validator() *validator.Validate {
	once.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		_ = v.RegisterValidation("password_strength", passwordStrength)
		instance = v
	})
	return instance
}

// Struct valida un DTO según sus etiquetas `validate`.
func Struct(s any) error {
	return Validator().Struct(s)
}

// passwordStrength exige al menos una minúscula, una mayúscula y un dígito.
func passwordStrength(fl validator.FieldLevel) bool {
	var lower, upper, digit bool
	for _, r := range fl.Field().String() {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		}
	}
	return lower && upper && digit
}
