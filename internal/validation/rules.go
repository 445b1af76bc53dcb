// Package validation checks driver and licence data before it reaches the
// store. Rules are declared as (field, predicate, message) triples and are
// all evaluated; every failure is reported.
package validation

import (
	"regexp"
	"strings"

	"github.com/dmitrijs2005/driverdesk/internal/drivers"
)

var (
	passportRe = regexp.MustCompile(`^\d{4} \d{6}$`)
	phoneRe    = regexp.MustCompile(`^\+7\d{10}$`)
	emailRe    = regexp.MustCompile(`^[a-zA-Z0-9_.+-]+@[a-zA-Z0-9-]+\.[a-zA-Z0-9-.]+$`)
)

// Rule checks one field of T.
type Rule[T any] struct {
	Field   string
	Check   func(T) bool
	Message string
}

// Run evaluates every rule against v and returns the failures, or nil.
func Run[T any](rules []Rule[T], v T) error {
	var errs Errors
	for _, r := range rules {
		if !r.Check(v) {
			errs = append(errs, FieldError{Field: r.Field, Message: r.Message})
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

func required[T any](field, message string, get func(T) string) Rule[T] {
	return Rule[T]{
		Field:   field,
		Check:   func(v T) bool { return get(v) != "" },
		Message: message,
	}
}

func matches[T any](field, message string, re *regexp.Regexp, get func(T) string) Rule[T] {
	return Rule[T]{
		Field:   field,
		Check:   func(v T) bool { return re.MatchString(get(v)) },
		Message: message,
	}
}

// DriverRules returns the rule list for a new driver. With requireCities the
// registration and living cities become mandatory.
func DriverRules(requireCities bool) []Rule[drivers.Fields] {
	rules := []Rule[drivers.Fields]{
		required("last_name", "Last name is required.", func(f drivers.Fields) string { return f.LastName }),
		required("first_name", "First name is required.", func(f drivers.Fields) string { return f.FirstName }),
		required("middle_name", "Middle name is required.", func(f drivers.Fields) string { return f.MiddleName }),
		matches("passport", "Passport must be in the format 'XXXX XXXXXX'.", passportRe, func(f drivers.Fields) string { return f.Passport }),
		required("registration_address", "Registration address is required.", func(f drivers.Fields) string { return f.RegistrationAddress }),
		required("living_address", "Living address is required.", func(f drivers.Fields) string { return f.LivingAddress }),
	}
	if requireCities {
		rules = append(rules,
			required("registration_city", "Registration city is required.", func(f drivers.Fields) string { return f.RegistrationCity }),
			required("living_city", "Living city is required.", func(f drivers.Fields) string { return f.LivingCity }),
		)
	}
	return append(rules,
		matches("phone", "Phone must be in the format '+7XXXXXXXXXX'.", phoneRe, func(f drivers.Fields) string { return f.Phone }),
		matches("email", "Email has an invalid format.", emailRe, func(f drivers.Fields) string { return f.Email }),
		required("photo", "Photo is required.", func(f drivers.Fields) string { return strings.TrimSpace(f.Photo) }),
	)
}

// LicenseRules returns the rule list for a licence.
func LicenseRules() []Rule[drivers.License] {
	return []Rule[drivers.License]{
		required("number", "License number is required.", func(l drivers.License) string { return l.Number }),
		required("issue_date", "Issue date is required.", func(l drivers.License) string { return l.IssueDate }),
		required("expiry_date", "Expiry date is required.", func(l drivers.License) string { return l.ExpiryDate }),
		required("authority", "Issuing authority is required.", func(l drivers.License) string { return l.Authority }),
		required("categories", "Vehicle categories are required.", func(l drivers.License) string { return l.Categories }),
	}
}
