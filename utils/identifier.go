// utils/identifier.go
package utils

import "strings"

// CPFLength is the digit count of a national identifier.
const CPFLength = 11

// DigitsOnly drops every non-digit rune from s.
func DigitsOnly(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
}

// NormalizeCPF strips formatting from a national identifier. ok is false when
// the result does not have exactly 11 digits.
func NormalizeCPF(raw string) (cpf string, ok bool) {
	cpf = DigitsOnly(raw)
	if len(cpf) != CPFLength {
		return "", false
	}
	return cpf, true
}

// IsCPF reports whether s is already a normalized identifier.
func IsCPF(s string) bool {
	if len(s) != CPFLength {
		return false
	}
	return DigitsOnly(s) == s
}

// NormalizePhone keeps only the digits of a phone number, with no length check.
func NormalizePhone(raw string) string {
	return DigitsOnly(raw)
}
