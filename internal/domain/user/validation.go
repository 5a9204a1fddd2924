package user

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"usermgmt-service/internal/domain/validation"
)

const (
	MsgInvalidEmail     = "Invalid email address"
	MsgInvalidPhone     = "Invalid phone number"
	MsgPasswordTooShort = "Password must be at least 8 characters long"
	MsgPasswordTooLong  = "Password must be at most 16 characters long"
	MsgPasswordNoUpper  = "Password must contain at least one uppercase letter"
	MsgPasswordNoDigit  = "Password must contain at least one number"
	MsgPasswordNoSymbol = "Password must contain at least one special character"

	passwordMinLen = 8
	passwordMaxLen = 16

	passwordSymbols = "!@#$%^&*()_-+={}[]|\\:;\"<>,.?/~`"
)

var (
	reEmail = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	rePhone = regexp.MustCompile(`^[6-9][0-9]{9}$`)
)

func ValidateEmail(email string) error {
	if !reEmail.MatchString(email) {
		return validation.New("email", MsgInvalidEmail)
	}
	return nil
}

// ValidatePhone accepts 10-digit numbers starting with 6-9.
func ValidatePhone(phone string) error {
	if !rePhone.MatchString(phone) {
		return validation.New("phone", MsgInvalidPhone)
	}
	return nil
}

// ValidatePassword checks length, uppercase, digit and symbol in that order
// and reports only the first rule that fails.
func ValidatePassword(password string) error {
	n := utf8.RuneCountInString(password)
	switch {
	case n < passwordMinLen:
		return validation.New("password", MsgPasswordTooShort)
	case n > passwordMaxLen:
		return validation.New("password", MsgPasswordTooLong)
	case !strings.ContainsFunc(password, unicode.IsUpper):
		return validation.New("password", MsgPasswordNoUpper)
	case !strings.ContainsFunc(password, unicode.IsDigit):
		return validation.New("password", MsgPasswordNoDigit)
	case !strings.ContainsAny(password, passwordSymbols):
		return validation.New("password", MsgPasswordNoSymbol)
	}
	return nil
}
