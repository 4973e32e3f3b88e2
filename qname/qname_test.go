package qname

import "testing"

func TestString(t *testing.T) {
	tests := []struct {
		name string
		in   QName
		want string
	}{
		{name: "namespaced", in: New("http://www.w3.org/2001/XMLSchema", "string"), want: "{http://www.w3.org/2001/XMLSchema}string"},
		{name: "local only", in: New("", "item"), want: "item"},
		{name: "zero", in: QName{}, want: ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.in.String(); got != tc.want {
				t.Fatalf("String() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestEqualityIsStructural(t *testing.T) {
	a := New("urn:a", "x")
	b := New("urn:a", "x")
	if !a.Equal(b) || a != b {
		t.Fatalf("expected %v to equal %v", a, b)
	}
	m := map[QName]int{a: 1}
	if m[b] != 1 {
		t.Fatal("map lookup by equal QName failed")
	}
	if a.Equal(New("urn:b", "x")) {
		t.Fatal("different namespaces compared equal")
	}
	if !(QName{}).IsZero() || a.IsZero() {
		t.Fatal("IsZero mismatch")
	}
}

func TestCompare(t *testing.T) {
	left := QName{Namespace: "urn:a", Local: "b"}
	right := QName{Namespace: "urn:b", Local: "a"}
	if got := Compare(left, right); got >= 0 {
		t.Fatalf("Compare() = %d, want < 0", got)
	}

	left = QName{Namespace: "urn:a", Local: "b"}
	right = QName{Namespace: "urn:a", Local: "c"}
	if got := Compare(left, right); got >= 0 {
		t.Fatalf("Compare() = %d, want < 0", got)
	}
}

func TestSplitPrefixed(t *testing.T) {
	prefix, local, ok := SplitPrefixed("ns:local")
	if !ok || prefix != "ns" || local != "local" {
		t.Fatalf("SplitPrefixed(ns:local) = %q, %q, %v", prefix, local, ok)
	}
	prefix, local, ok = SplitPrefixed("local")
	if ok || prefix != "" || local != "local" {
		t.Fatalf("SplitPrefixed(local) = %q, %q, %v", prefix, local, ok)
	}
}
