// Package qname defines the namespace-qualified name used to identify XML
// Schema datatypes and attributes.
package qname

import (
	"cmp"
	"strings"
)

// QName is an immutable (namespace URI, local name) pair.
// It is comparable and can be used as a map key.
type QName struct {
	Namespace string
	Local     string
}

// New returns the QName for namespace and local.
func New(namespace, local string) QName {
	return QName{Namespace: namespace, Local: local}
}

// String returns the QName in {namespace}local format, or just local if no namespace
func (q QName) String() string {
	if q.Namespace == "" {
		return q.Local
	}
	return "{" + q.Namespace + "}" + q.Local
}

// IsZero returns true if the QName is the zero value
func (q QName) IsZero() bool {
	return q.Namespace == "" && q.Local == ""
}

// Equal returns true if two QNames are equal
func (q QName) Equal(other QName) bool {
	return q == other
}

// Compare orders QNames by namespace, then local name.
func Compare(a, b QName) int {
	if c := cmp.Compare(a.Namespace, b.Namespace); c != 0 {
		return c
	}
	return cmp.Compare(a.Local, b.Local)
}

// SplitPrefixed splits a prefixed name into prefix/local without validation.
func SplitPrefixed(name string) (prefix, local string, hasPrefix bool) {
	prefix, local, hasPrefix = strings.Cut(name, ":")
	if !hasPrefix {
		return "", name, false
	}
	return prefix, local, true
}
