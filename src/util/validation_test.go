package util

import "testing"

func TestValidateEmail(t *testing.T) {
	cases := []struct {
		name  string
		email string
		want  bool
	}{
		{"plain address", "ana@example.com", true},
		{"subdomain", "ana.lopez@mail.example.com", true},
		{"plus tag", "ana+budget@example.com", true},
		{"missing at", "ana.example.com", false},
		{"missing tld", "ana@example", false},
		{"empty", "", false},
		{"spaces", "ana lopez@example.com", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ValidateEmail(tc.email); got != tc.want {
				t.Errorf("ValidateEmail(%q) = %v, want %v", tc.email, got, tc.want)
			}
		})
	}
}

func TestValidateUsername(t *testing.T) {
	cases := []struct {
		name     string
		username string
		want     bool
	}{
		{"minimum length", "ana", true},
		{"typical", "ana_lopez42", true},
		{"too short", "al", false},
		{"too long", "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", false},
		{"empty", "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ValidateUsername(tc.username); got != tc.want {
				t.Errorf("ValidateUsername(%q) = %v, want %v", tc.username, got, tc.want)
			}
		})
	}
}

func TestValidateFullName(t *testing.T) {
	cases := []struct {
		name     string
		fullName string
		want     bool
	}{
		{"typical", "Ana López", true},
		{"single word", "Ana", true},
		{"empty", "", false},
		{"only spaces", "   ", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ValidateFullName(tc.fullName); got != tc.want {
				t.Errorf("ValidateFullName(%q) = %v, want %v", tc.fullName, got, tc.want)
			}
		})
	}
}

func TestValidatePassword(t *testing.T) {
	cases := []struct {
		name     string
		password string
		want     bool
	}{
		{"meets all requirements", "Str0ng!pass", true},
		{"too short", "S7!a", false},
		{"no uppercase", "weak1!pass", false},
		{"no lowercase", "WEAK1!PASS", false},
		{"no digit", "Weakest!pass", false},
		{"no special", "Weak1passw", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ValidatePassword(tc.password); got != tc.want {
				t.Errorf("ValidatePassword(%q) = %v, want %v", tc.password, got, tc.want)
			}
		})
	}
}
