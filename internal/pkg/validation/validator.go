// Package validation wraps go-playground/validator with the Brazilian
// document rules registration requires: cpf, cep and brphone.
package validation

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	cepPattern     = regexp.MustCompile(`^\d{5}-?\d{3}$`)
	brphonePattern = regexp.MustCompile(`^(\+55\s?)?(\(?\d{2}\)?[\s-]?)?\d{4,5}[\s-]?\d{4}$`)
	nonDigits      = regexp.MustCompile(`\D`)
)

// New returns a validator with the custom rules registered.
func New() *validator.Validate {
	v := validator.New()
	v.RegisterValidation("cpf", validateCpf)
	v.RegisterValidation("cep", validateCep)
	v.RegisterValidation("brphone", validateBrPhone)
	return v
}

func validateCpf(fl validator.FieldLevel) bool {
	return IsValidCpf(fl.Field().String())
}

func validateCep(fl validator.FieldLevel) bool {
	return cepPattern.MatchString(fl.Field().String())
}

func validateBrPhone(fl validator.FieldLevel) bool {
	return brphonePattern.MatchString(strings.TrimSpace(fl.Field().String()))
}

// IsValidCpf checks the CPF check digits. Formatting (dots, dash) is
// stripped first; sequences of one repeated digit are invalid even though
// their checksum passes.
func IsValidCpf(cpf string) bool {
	digits := nonDigits.ReplaceAllString(cpf, "")
	if len(digits) != 11 {
		return false
	}

	allSame := true
	for i := 1; i < 11; i++ {
		if digits[i] != digits[0] {
			allSame = false
			break
		}
	}
	if allSame {
		return false
	}

	return checkDigit(digits, 9) && checkDigit(digits, 10)
}

func checkDigit(digits string, pos int) bool {
	sum := 0
	for i := 0; i < pos; i++ {
		sum += int(digits[i]-'0') * (pos + 1 - i)
	}
	expected := 11 - (sum % 11)
	if expected >= 10 {
		expected = 0
	}
	return int(digits[pos]-'0') == expected
}
