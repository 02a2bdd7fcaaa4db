// Package currency defines the fixed set of currency codes the service accepts.
package currency

import (
	"sort"
	"strings"
)

var supported = map[string]struct{}{
	"USD": {},
	"EUR": {},
	"GBP": {},
	"JPY": {},
	"CHF": {},
	"CAD": {},
	"AUD": {},
	"NZD": {},
	"CNY": {},
	"HKD": {},
	"SGD": {},
	"SEK": {},
	"NOK": {},
	"DKK": {},
	"INR": {},
	"MXN": {},
	"BRL": {},
	"ZAR": {},
	"KRW": {},
	"TRY": {},
	"PLN": {},
}

// Normalize trims surrounding whitespace and upper-cases a currency code.
// It does not check membership; use Supported for that.
func Normalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// Supported reports whether the code is in the supported set (case-insensitive).
func Supported(code string) bool {
	_, ok := supported[Normalize(code)]
	return ok
}

// Codes returns all supported currency codes in sorted order.
func Codes() []string {
	out := make([]string, 0, len(supported))
	for code := range supported {
		out = append(out, code)
	}
	sort.Strings(out)
	return out
}
