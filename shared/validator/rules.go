package validator

import (
	"regexp"

	"github.com/google/uuid"
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	datePattern  = regexp.MustCompile(`^\d{4}-(0[1-9]|1[012])-(0[1-9]|[12][0-9]|3[01])$`)
	phonePattern = regexp.MustCompile(`^\+[1-9]\d{10,14}$`)
)

// IsEmailValid reports whether email looks like local@domain.tld.
func IsEmailValid(email string) bool {
	return emailPattern.MatchString(email)
}

// IsDateValid reports whether date is written as YYYY-MM-DD.
// Only the shape is checked, so 2023-02-31 passes.
func IsDateValid(date string) bool {
	return datePattern.MatchString(date)
}

// IsPhoneNumberValid reports whether phoneNumber is in E.164 format with 11 to 15 digits.
func IsPhoneNumberValid(phoneNumber string) bool {
	return phonePattern.MatchString(phoneNumber)
}

// IsIDValid reports whether id is a document identifier in the canonical lowercase
// 8-4-4-4-12 form. URN, braced and undashed spellings are rejected.
func IsIDValid(id string) bool {
	if id == "" {
		return false
	}

	parsed, err := uuid.Parse(id)

	return err == nil && parsed.String() == id
}
