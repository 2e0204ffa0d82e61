package services

import (
	"regexp"
	"strings"
)

var (
	emailRegex  = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	digitsRegex = regexp.MustCompile(`\d`)
)

// validEmail checks the RFC-shape of an email address.
func validEmail(email string) bool {
	return emailRegex.MatchString(strings.TrimSpace(email))
}

// phoneDigits strips everything but digits from a phone number.
func phoneDigits(phone string) string {
	return strings.Join(digitsRegex.FindAllString(phone, -1), "")
}

// validPhone requires exactly 10 digits after stripping separators.
func validPhone(phone string) bool {
	return len(phoneDigits(phone)) == 10
}
