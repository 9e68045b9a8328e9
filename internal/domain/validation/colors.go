// Package validation holds value checks shared by configuration and flags.
package validation

import "regexp"

var hexColorRE = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// IsHexColor reports whether value is a #RRGGBB colour.
func IsHexColor(value string) bool {
	return hexColorRE.MatchString(value)
}

// ColorField names one colour value for ValidateHexColors.
type ColorField struct {
	Name  string
	Value string
}

// ValidateHexColors returns one message per field that is not a #RRGGBB colour.
func ValidateHexColors(prefix string, fields ...ColorField) []string {
	var errs []string
	for _, f := range fields {
		if !IsHexColor(f.Value) {
			errs = append(errs, prefix+"."+f.Name+" must be a hex color like #RRGGBB")
		}
	}
	return errs
}
