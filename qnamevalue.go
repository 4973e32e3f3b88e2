package xsd

import (
	"regexp"

	"github.com/soapkit/xsd/qname"
)

var qnamePattern = regexp.MustCompile(`^(?:[^:]+:)?[^:]+$`)

// QNameValue is an xs:QName value in its lexical form: an optional prefix
// and a local part. Resolving the prefix to a namespace is left to the
// caller, which owns the in-scope declarations.
type QNameValue struct {
	prefix string
	local  string
}

// ParseQNameValue accepts "prefix:local" or "local".
func ParseQNameValue(s string) (QNameValue, error) {
	lexical := trim(s)
	if !qnamePattern.MatchString(lexical) {
		return QNameValue{}, rejectLiteral(QNameName, s, nil)
	}
	prefix, local, _ := qname.SplitPrefixed(lexical)
	return QNameValue{prefix: prefix, local: local}, nil
}

// QNameValueOf builds a value from its parts. prefix may be empty.
func QNameValueOf(prefix, local string) (QNameValue, error) {
	if prefix == "" {
		return ParseQNameValue(local)
	}
	return ParseQNameValue(prefix + ":" + local)
}

func (QNameValue) Type() QName { return QNameName }

func (v QNameValue) IsNil() bool { return v.local == "" }

func (v QNameValue) String() string {
	if v.prefix == "" {
		return v.local
	}
	return v.prefix + ":" + v.local
}

// Prefix returns the namespace prefix, or "" when none was written.
func (v QNameValue) Prefix() string { return v.prefix }

// Local returns the local part.
func (v QNameValue) Local() string { return v.local }

// Resolve pairs the local part with the namespace bound to the prefix.
// ok is false when the prefix is not in scope.
func (v QNameValue) Resolve(namespaces map[string]string) (name QName, ok bool) {
	ns, ok := namespaces[v.prefix]
	if !ok && v.prefix != "" {
		return QName{}, false
	}
	return QName{Namespace: ns, Local: v.local}, true
}
