package num

import "strings"

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// splitDecimal scans [+-]?\d*(\.\d*)? and returns the sign, the integer
// digits without leading zeros and the fraction digits without trailing
// zeros. Signs, digits and the point are all optional.
func splitDecimal(s string) (neg bool, intPart, fracPart string, perr *ParseError) {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		neg = s[i] == '-'
		i++
	}
	start := i
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	intPart = s[start:i]
	if i < len(s) && s[i] == '.' {
		i++
		start = i
		for i < len(s) && isDigit(s[i]) {
			i++
		}
		fracPart = s[start:i]
	}
	if i != len(s) {
		switch s[i] {
		case '+', '-':
			return false, "", "", &ParseError{Kind: ParseMultipleSigns}
		case '.':
			return false, "", "", &ParseError{Kind: ParseMultipleDots}
		default:
			return false, "", "", &ParseError{Kind: ParseBadChar}
		}
	}
	intPart = strings.TrimLeft(intPart, "0")
	if intPart == "" {
		intPart = "0"
	}
	fracPart = strings.TrimRight(fracPart, "0")
	if intPart == "0" && fracPart == "" {
		neg = false
	}
	return neg, intPart, fracPart, nil
}
