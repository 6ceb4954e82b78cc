package validation

import (
	"encoding/json"
	"errors"
	"reflect"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// emailRe is the fixed address format check applied before any store or
// cache operation touches an email.
var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// passwordSymbols is the fixed set of symbols a strong password may contain.
const passwordSymbols = "@$!%*?&"

const (
	passwordLetters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"
	passwordDigits  = "0123456789"
)

// IsEmail reports whether s matches the address format check.
func IsEmail(s string) bool {
	return emailRe.MatchString(s)
}

// IsStrongPassword reports whether p satisfies the password policy:
// at least 8 characters, one letter, one digit, one symbol from the allowed
// set, and no characters outside letters/digits/symbols.
func IsStrongPassword(p string) bool {
	if len(p) < 8 {
		return false
	}
	if !strings.ContainsAny(p, passwordLetters) ||
		!strings.ContainsAny(p, passwordDigits) ||
		!strings.ContainsAny(p, passwordSymbols) {
		return false
	}
	for _, r := range p {
		if !strings.ContainsRune(passwordLetters+passwordDigits+passwordSymbols, r) {
			return false
		}
	}
	return true
}

// Init configures the global validator used by Gin's binding.
// - Uses JSON tag names in errors.
// - Registers alias tags for common validations.
func Init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		v.RegisterAlias("pwd", "min=8") // password minimum length
	}
}

// ToDetails converts validation/binding errors into a map[field]message
// suitable for API error details.
func ToDetails(err error) map[string]string {
	if err == nil {
		return nil
	}

	// Invalid JSON payloads
	var se *json.SyntaxError
	var ute *json.UnmarshalTypeError
	if errors.As(err, &se) || errors.As(err, &ute) {
		return map[string]string{"payload": "invalid json"}
	}

	// Validation errors from validator.v10
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		out := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			out[fe.Field()] = formatFieldError(fe)
		}
		return out
	}

	// Fallback
	return map[string]string{"payload": "invalid payload"}
}

func formatFieldError(fe validator.FieldError) string {
	tag := fe.Tag()
	param := fe.Param()

	switch tag {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email"
	case "min", "pwd":
		return "must be at least " + minParam(param) + " characters"
	case "max":
		return "must be at most " + param + " characters"
	case "numeric":
		return "must be numeric"
	case "gt":
		return "must be greater than " + param
	case "len":
		return "must be exactly " + param + " characters"
	default:
		if param != "" {
			return "failed validation: " + tag + "=" + param
		}
		return "failed validation: " + tag
	}
}

func minParam(param string) string {
	if param == "" {
		return "8"
	}
	return param
}
