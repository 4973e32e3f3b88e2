// Package xsd converts XML Schema simple datatypes between their lexical
// (wire) form and canonical in-memory values.
//
// Every built-in type has a Parse function returning a concrete value, and
// a registry maps qualified type names to parsers for code that only knows
// the name found on the wire, typically the xsi:type attribute:
//
//	v, err := xsd.Parse(xsd.DateTimeName, "2004-01-01T00:00:00Z")
//	if err != nil {
//		// err matches errors.ErrValueSpace
//	}
//	fmt.Println(v) // 2004-01-01T00:00:00Z
//
// Values are immutable. The zero value of each concrete type is its nil
// value, which renders as the empty string.
package xsd
