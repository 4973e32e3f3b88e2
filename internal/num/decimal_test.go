package num

import (
	"testing"

	"github.com/cockroachdb/apd/v3"
)

func TestParseDecimal(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		sign    string
		digits  string
		point   int
		wantErr bool
		errKind ParseErrKind
	}{
		{name: "zero", input: "0", want: "0", digits: "0"},
		{name: "neg zero", input: "-0.00", want: "0", digits: "0"},
		{name: "leading zeros", input: "+007", want: "7", digits: "7"},
		{name: "trailing zeros", input: "1.230", want: "1.23", digits: "123", point: -2},
		{name: "leading dot", input: ".5", want: "0.5", digits: "5", point: -1},
		{name: "trailing dot", input: "5.", want: "5", digits: "5"},
		{name: "negative", input: "-001.2300", want: "-1.23", sign: "-", digits: "123", point: -2},
		{name: "small", input: "0.050", want: "0.05", digits: "5", point: -2},
		{name: "hundred", input: "100", want: "100", digits: "100"},
		{name: "empty", input: "", want: "0", digits: "0"},
		{name: "sign only", input: "+", want: "0", digits: "0"},
		{name: "dot only", input: ".", want: "0", digits: "0"},
		{name: "long", input: "123456789012345678901234567890.000000000000000000001", want: "123456789012345678901234567890.000000000000000000001", digits: "123456789012345678901234567890000000000000000000001", point: -21},
		{name: "double dot", input: "1..2", wantErr: true, errKind: ParseMultipleDots},
		{name: "double sign", input: "+-1", wantErr: true, errKind: ParseMultipleSigns},
		{name: "bad char", input: "1a", wantErr: true, errKind: ParseBadChar},
		{name: "exponent", input: "1e5", wantErr: true, errKind: ParseBadChar},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseDecimal(tc.input)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("ParseDecimal(%q) error = nil", tc.input)
				}
				if err.Kind != tc.errKind {
					t.Fatalf("error kind = %v, want %v", err.Kind, tc.errKind)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDecimal(%q) error = %v", tc.input, err)
			}
			if got.String() != tc.want {
				t.Fatalf("ParseDecimal(%q) = %q, want %q", tc.input, got.String(), tc.want)
			}
			sign, digits, point := got.Parts()
			if sign != tc.sign || digits != tc.digits || point != tc.point {
				t.Fatalf("Parts() = %q, %q, %d, want %q, %q, %d", sign, digits, point, tc.sign, tc.digits, tc.point)
			}
		})
	}
}

func TestDecimalFixedPoint(t *testing.T) {
	for _, in := range []string{"-0.00", "+007", "1.230", ".5", "-12.5000", "0"} {
		first, err := ParseDecimal(in)
		if err != nil {
			t.Fatalf("ParseDecimal(%q) error = %v", in, err)
		}
		second, err := ParseDecimal(first.String())
		if err != nil {
			t.Fatalf("ParseDecimal(%q) error = %v", first.String(), err)
		}
		if first.String() != second.String() {
			t.Fatalf("render not idempotent: %q then %q", first.String(), second.String())
		}
	}
}

func TestNewDecimal(t *testing.T) {
	tests := []struct {
		in   *apd.Decimal
		want string
	}{
		{in: apd.New(100, 0), want: "100"},
		{in: apd.New(1500, -3), want: "1.5"},
		{in: apd.New(0, -5), want: "0"},
		{in: &apd.Decimal{Negative: true}, want: "0"},
		{in: apd.New(-25, -1), want: "-2.5"},
		{in: nil, want: "0"},
	}
	for _, tc := range tests {
		got, err := NewDecimal(tc.in)
		if err != nil {
			t.Fatalf("NewDecimal(%v) error = %v", tc.in, err)
		}
		if got.String() != tc.want {
			t.Fatalf("NewDecimal(%v) = %q, want %q", tc.in, got.String(), tc.want)
		}
	}
	if _, err := NewDecimal(&apd.Decimal{Form: apd.Infinite}); err == nil {
		t.Fatal("NewDecimal(Infinity) error = nil")
	}
}

func TestDecimalAccessors(t *testing.T) {
	var zero Decimal
	if zero.String() != "0" || zero.NonZero() || zero.Sign() != 0 {
		t.Fatalf("zero value = %q", zero.String())
	}
	d, _ := ParseDecimal("-2.50")
	if !d.NonZero() || d.Sign() != -1 || d.IsInteger() {
		t.Fatalf("accessors wrong for %s", d)
	}
	if _, ok := d.Int64(); ok {
		t.Fatal("Int64() ok for fractional value")
	}
	n, _ := ParseDecimal("42")
	if v, ok := n.Int64(); !ok || v != 42 {
		t.Fatalf("Int64() = %d, %v", v, ok)
	}
	if d.Cmp(n) >= 0 || n.Cmp(d) <= 0 || n.Cmp(DecimalFromInt64(42)) != 0 {
		t.Fatal("Cmp ordering wrong")
	}
	cp := n.Apd()
	cp.SetInt64(7)
	if n.String() != "42" {
		t.Fatalf("Apd() copy aliased the value: %s", n)
	}
}

func TestParseInteger(t *testing.T) {
	tests := []struct {
		input   string
		want    string
		errKind ParseErrKind
		wantErr bool
	}{
		{input: "0", want: "0"},
		{input: "-0", want: "0"},
		{input: "+0042", want: "42"},
		{input: "-123456789012345678901234567890", want: "-123456789012345678901234567890"},
		{input: "", wantErr: true, errKind: ParseNoDigits},
		{input: "-", wantErr: true, errKind: ParseNoDigits},
		{input: "1.0", wantErr: true, errKind: ParseFractional},
		{input: "1-", wantErr: true, errKind: ParseMultipleSigns},
		{input: "0x10", wantErr: true, errKind: ParseBadChar},
		{input: "1_000", wantErr: true, errKind: ParseBadChar},
	}
	for _, tc := range tests {
		got, err := ParseInteger(tc.input)
		if tc.wantErr {
			if err == nil || err.Kind != tc.errKind {
				t.Fatalf("ParseInteger(%q) error = %v, want %v", tc.input, err, tc.errKind)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ParseInteger(%q) error = %v", tc.input, err)
		}
		if got.String() != tc.want {
			t.Fatalf("ParseInteger(%q) = %q, want %q", tc.input, got.String(), tc.want)
		}
	}
}
