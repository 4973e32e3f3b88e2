package value

import (
	"encoding/base64"
	"encoding/hex"
	"errors"
	"strings"
)

var (
	errHexOddLength  = errors.New("hexBinary: odd length")
	errHexDigit      = errors.New("hexBinary: invalid digit")
	errBase64Char    = errors.New("base64Binary: invalid character")
	errBase64Padding = errors.New("base64Binary: misplaced padding")
)

// ParseHexBinary decodes pairs of hex digits in either case. The empty
// string decodes to an empty, non-nil slice.
func ParseHexBinary(lexical string) ([]byte, error) {
	lexical = TrimXMLWhitespaceString(lexical)
	if len(lexical)%2 != 0 {
		return nil, errHexOddLength
	}
	for i := 0; i < len(lexical); i++ {
		if !isHexDigit(lexical[i]) {
			return nil, errHexDigit
		}
	}
	data := make([]byte, len(lexical)/2)
	if _, err := hex.Decode(data, []byte(lexical)); err != nil {
		return nil, errHexDigit
	}
	return data, nil
}

// FormatHexBinary renders data as uppercase hex digits.
func FormatHexBinary(data []byte) string {
	return strings.ToUpper(hex.EncodeToString(data))
}

// ParseBase64Binary decodes the standard alphabet. Leading and trailing XML
// whitespace is ignored; whitespace inside the literal is rejected. Trailing
// padding is optional.
func ParseBase64Binary(lexical string) ([]byte, error) {
	cleaned := TrimXMLWhitespaceString(lexical)
	for i := 0; i < len(cleaned); i++ {
		if !isBase64Char(cleaned[i]) {
			return nil, errBase64Char
		}
	}
	body := strings.TrimRight(cleaned, "=")
	pad := len(cleaned) - len(body)
	if pad > 2 || (pad > 0 && len(cleaned)%4 != 0) || strings.IndexByte(body, '=') >= 0 {
		return nil, errBase64Padding
	}
	decoded, err := base64.RawStdEncoding.Strict().DecodeString(body)
	if err != nil {
		return nil, err
	}
	if decoded == nil {
		decoded = []byte{}
	}
	return decoded, nil
}

// FormatBase64Binary renders data in the padded standard alphabet.
func FormatBase64Binary(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}

func isBase64Char(c byte) bool {
	switch {
	case c >= 'A' && c <= 'Z', c >= 'a' && c <= 'z', c >= '0' && c <= '9':
		return true
	case c == '+', c == '/', c == '=':
		return true
	default:
		return false
	}
}
