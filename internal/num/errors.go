package num

// ParseError represents a numeric parse failure.
type ParseError struct {
	Kind ParseErrKind
}

// Error returns the formatted error message.
func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}
	return e.Kind.String()
}

// ParseErrKind identifies a parse failure category.
type ParseErrKind uint8

const (
	ParseInvalid ParseErrKind = iota
	ParseBadChar
	ParseMultipleSigns
	ParseMultipleDots
	ParseNoDigits
	ParseFractional
	ParseRange
)

// String returns a stable label for the parse error kind.
func (k ParseErrKind) String() string {
	switch k {
	case ParseBadChar:
		return "bad character"
	case ParseMultipleSigns:
		return "multiple signs"
	case ParseMultipleDots:
		return "multiple dots"
	case ParseNoDigits:
		return "no digits"
	case ParseFractional:
		return "fractional part not allowed"
	case ParseRange:
		return "out of range"
	default:
		return "invalid"
	}
}
