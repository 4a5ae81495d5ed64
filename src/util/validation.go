package util

import (
	"regexp"
	"strings"
)

var (
	emailRegex   = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	lowerRegex   = regexp.MustCompile("[a-z]")
	upperRegex   = regexp.MustCompile("[A-Z]")
	digitRegex   = regexp.MustCompile("[0-9]")
	specialRegex = regexp.MustCompile(`[^A-Za-z0-9]`)
)

func ValidateEmail(email string) bool {
	return emailRegex.MatchString(email)
}

func ValidateUsername(username string) bool {
	return len(username) >= 3 && len(username) <= 30
}

func ValidateFullName(fullName string) bool {
	trimmed := strings.TrimSpace(fullName)
	return len(trimmed) >= 1 && len(trimmed) <= 100
}

func ValidatePassword(password string) bool {
	if len(password) < 8 {
		return false
	}
	return lowerRegex.MatchString(password) &&
		upperRegex.MatchString(password) &&
		digitRegex.MatchString(password) &&
		specialRegex.MatchString(password)
}
