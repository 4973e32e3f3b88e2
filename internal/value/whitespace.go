package value

// TrimXMLWhitespaceString removes leading and trailing XML whitespace.
// It returns the original string when no trimming is needed.
func TrimXMLWhitespaceString(in string) string {
	start := 0
	end := len(in)
	for start < end && IsXMLWhitespaceByte(in[start]) {
		start++
	}
	for end > start && IsXMLWhitespaceByte(in[end-1]) {
		end--
	}
	if start == 0 && end == len(in) {
		return in
	}
	return in[start:end]
}

// IsXMLWhitespaceByte reports whether the byte is XML whitespace.
func IsXMLWhitespaceByte(b byte) bool {
	if b > ' ' {
		return false
	}
	switch b {
	case ' ', '\t', '\n', '\r':
		return true
	default:
		return false
	}
}
