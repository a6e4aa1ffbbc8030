package api

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"ratesgateway/internal/fixer"
)

const symbolsParam = "symbols"

// ErrInvalidSymbol is returned when a currency code is not three ASCII letters.
var ErrInvalidSymbol = errors.New("invalid currency code")

// symbolOptions turns the symbols query parameter into request options.
// An absent parameter yields no option, so the client default applies; a
// present but empty one yields an explicit empty filter.
func symbolOptions(q url.Values) ([]fixer.RequestOption, error) {
	raw, ok := q[symbolsParam]
	if !ok {
		return nil, nil
	}

	var codes []string
	for _, v := range raw {
		for _, part := range strings.Split(v, ",") {
			code := strings.ToUpper(strings.TrimSpace(part))
			if code == "" {
				continue
			}
			if !isCurrencyCode(code) {
				return nil, fmt.Errorf("%w: %s", ErrInvalidSymbol, part)
			}
			codes = append(codes, code)
		}
	}

	return []fixer.RequestOption{fixer.WithSymbols(codes...)}, nil
}

func isCurrencyCode(code string) bool {
	if len(code) != 3 {
		return false
	}
	for i := 0; i < len(code); i++ {
		if code[i] < 'A' || code[i] > 'Z' {
			return false
		}
	}
	return true
}
