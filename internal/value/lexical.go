package value

import (
	"fmt"
	"regexp"
	"strings"
)

var uriSchemePattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9+.-]*$`)

// ValidateNormalizedString rejects the characters xs:normalizedString
// forbids.
func ValidateNormalizedString(value string) error {
	if i := strings.IndexAny(value, "\t\r\n"); i >= 0 {
		return fmt.Errorf("normalizedString contains %q at offset %d", value[i], i)
	}
	return nil
}

// ValidateAnyURI checks the characters and scheme of a URI reference.
// Resolution and parsing are left to the caller.
func ValidateAnyURI(value string) error {
	if value == "" {
		return nil
	}
	for i := 0; i < len(value); i++ {
		b := value[i]
		if b < 0x20 || b == 0x7f {
			return fmt.Errorf("anyURI contains control characters")
		}
		switch b {
		case ' ', '"', '<', '>', '\\', '{', '}', '|', '^', '`':
			return fmt.Errorf("anyURI contains invalid character %q", b)
		}
	}
	for i := 0; i < len(value); i++ {
		if value[i] != '%' {
			continue
		}
		if i+2 >= len(value) || !isHexDigit(value[i+1]) || !isHexDigit(value[i+2]) {
			return fmt.Errorf("anyURI contains invalid percent-encoding")
		}
		i += 2
	}
	if idx := strings.IndexByte(value, ':'); idx >= 0 {
		delimiter := strings.IndexAny(value, "/?#")
		if delimiter == -1 || idx < delimiter {
			if idx == 0 {
				return fmt.Errorf("anyURI scheme cannot be empty")
			}
			if !uriSchemePattern.MatchString(value[:idx]) {
				return fmt.Errorf("anyURI has invalid scheme")
			}
		}
	}
	return nil
}

func isHexDigit(b byte) bool {
	switch {
	case b >= '0' && b <= '9':
		return true
	case b >= 'a' && b <= 'f':
		return true
	case b >= 'A' && b <= 'F':
		return true
	default:
		return false
	}
}
