package validation

import "strings"

type Violations map[string]string

func (v Violations) Empty() bool { return len(v) == 0 }

// Basic validators
func Required(field, value string, v Violations) {
	if strings.TrimSpace(value) == "" {
		v[field] = "required"
	}
}

func PositiveInt(field string, val int, v Violations) {
	if val <= 0 {
		v[field] = "must_be_positive"
	}
}

func NonNegativeFloat(field string, val float64, v Violations) {
	if val < 0 {
		v[field] = "must_not_be_negative"
	}
}

// Percent validates an optional percentage field against the 0-100 range.
func Percent(field string, val *float64, v Violations) {
	if val == nil {
		return
	}
	if *val < 0 || *val > 100 {
		v[field] = "out_of_range"
	}
}
