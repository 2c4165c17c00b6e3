package domain

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Tenant is a guest identified by phone number
type Tenant struct {
	Phone string
	Name  string
}

// NormalizeTenantName trims the name and title-cases every word.
// A Caser keeps state, so each call gets its own.
func NormalizeTenantName(name string) string {
	return cases.Title(language.Russian).String(strings.Join(strings.Fields(name), " "))
}

// NormalizePhone strips surrounding spaces and inner separators
func NormalizePhone(phone string) string {
	replacer := strings.NewReplacer(" ", "", "-", "", "(", "", ")", "")
	return replacer.Replace(strings.TrimSpace(phone))
}
