package utils

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"pos-kasir/models"
)

// Rule checks a single field value and returns a message, or "" when the
// value passes. Rules compose into per-field and per-form validators;
// failures come back as data, never as panics or errors.
type Rule func(value string) string

func Required(value string) string {
	if strings.TrimSpace(value) == "" {
		return "Field is required"
	}
	return ""
}

// Lengths count characters, not bytes, so multibyte names are measured
// the way the cashier sees them.
func MinLength(min int) Rule {
	return func(value string) string {
		if value != "" && utf8.RuneCountInString(value) < min {
			return fmt.Sprintf("Minimum %d characters", min)
		}
		return ""
	}
}

func MaxLength(max int) Rule {
	return func(value string) string {
		if utf8.RuneCountInString(value) > max {
			return fmt.Sprintf("Maximum %d characters", max)
		}
		return ""
	}
}

func Numeric(value string) string {
	if value == "" {
		return ""
	}
	if _, err := strconv.Atoi(value); err != nil {
		return "Must be a number"
	}
	return ""
}

// Price accepts any non-negative integer amount.
func Price(value string) string {
	if value == "" {
		return ""
	}
	n, err := strconv.Atoi(value)
	if err != nil || n < 0 {
		return "Invalid price"
	}
	return ""
}

func InSet(allowed []string) Rule {
	return func(value string) string {
		if value == "" {
			return ""
		}
		for _, a := range allowed {
			if a == value {
				return ""
			}
		}
		return "Invalid value"
	}
}

// ValidateField runs the rules in order and returns the first failure.
func ValidateField(value string, rules ...Rule) string {
	for _, rule := range rules {
		if msg := rule(value); msg != "" {
			return msg
		}
	}
	return ""
}

// ValidateForm applies a schema of per-field rules and collects every
// failure into an error map.
func ValidateForm(values map[string]string, schema map[string][]Rule) (bool, map[string]string) {
	errors := map[string]string{}
	for field, rules := range schema {
		if msg := ValidateField(values[field], rules...); msg != "" {
			errors[field] = msg
		}
	}
	return len(errors) == 0, errors
}

func ProductSchema() map[string][]Rule {
	return map[string][]Rule{
		"name":     {Required, MaxLength(100)},
		"price":    {Required, Price},
		"category": {Required, InSet(models.ProductCategories)},
		"stock":    {Numeric},
	}
}

func LoginSchema() map[string][]Rule {
	return map[string][]Rule{
		"username": {Required, MinLength(3)},
		"password": {Required, MinLength(6)},
	}
}
