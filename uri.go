package xsd

import (
	"net/url"

	"github.com/soapkit/xsd/internal/value"
)

// AnyURI is an xs:anyURI value. The literal is kept as written after
// trimming; the parsed form is available through URL.
type AnyURI struct {
	data string
	uri  *url.URL
}

// ParseAnyURI accepts absolute and relative URI references.
func ParseAnyURI(s string) (AnyURI, error) {
	lexical := trim(s)
	if err := value.ValidateAnyURI(lexical); err != nil {
		return AnyURI{}, rejectLiteral(AnyURIName, s, err)
	}
	u, err := url.Parse(lexical)
	if err != nil {
		return AnyURI{}, rejectLiteral(AnyURIName, s, err)
	}
	return AnyURI{data: lexical, uri: u}, nil
}

// AnyURIOf captures u in its string form.
func AnyURIOf(u *url.URL) (AnyURI, error) {
	if u == nil {
		return AnyURI{}, rejectLiteral(AnyURIName, "", nil)
	}
	return ParseAnyURI(u.String())
}

func (AnyURI) Type() QName { return AnyURIName }

func (v AnyURI) IsNil() bool { return v.uri == nil }

func (v AnyURI) String() string { return v.data }

// URL returns a copy of the parsed reference, or nil for a nil value.
func (v AnyURI) URL() *url.URL {
	if v.uri == nil {
		return nil
	}
	u := *v.uri
	return &u
}
