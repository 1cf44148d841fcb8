package validators

import (
	"strings"
)

// CheckAccountNumber accepts digit-only account numbers of a sane length.
// Spaces are tolerated the way payment forms usually emit them.
func CheckAccountNumber(number string) bool {
	number = strings.ReplaceAll(number, " ", "")

	if len(number) < 6 || len(number) > 20 {
		return false
	}
	for _, c := range number {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
