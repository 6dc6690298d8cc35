package domain

import (
	"strings"

	dErrors "flightplanner/pkg/domain-errors"
)

// IataCode is a three-letter airport code, stored uppercase.
type IataCode struct {
	code string
}

// NewIataCode validates and normalizes an IATA code: exactly three alphabetic
// characters, uppercased on construction.
func NewIataCode(code string) (IataCode, error) {
	if strings.TrimSpace(code) == "" || len(code) != 3 || !isAlphabetic(code) {
		return IataCode{}, dErrors.New(dErrors.CodeBadRequest, "IATA must be 3 letters.")
	}
	return IataCode{code: strings.ToUpper(code)}, nil
}

func (i IataCode) String() string {
	return i.code
}

func isAlphabetic(s string) bool {
	for _, r := range s {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return false
		}
	}
	return true
}
