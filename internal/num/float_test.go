package num

import (
	"math"
	"testing"
)

func TestParseFloat(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		bits    int
		want    float64
		class   FloatClass
		wantErr bool
	}{
		{name: "inf", input: "INF", bits: 64, want: math.Inf(1), class: FloatPosInf},
		{name: "neg inf", input: "-INF", bits: 32, want: math.Inf(-1), class: FloatNegInf},
		{name: "nan", input: "NaN", bits: 32, class: FloatNaN},
		{name: "finite", input: "1.25", bits: 64, want: 1.25},
		{name: "leading dot", input: ".5", bits: 64, want: 0.5},
		{name: "dangling exponent", input: "-1.4E", bits: 64, want: -1.4},
		{name: "exponent", input: "12e-1", bits: 64, want: 1.2},
		{name: "single rounding", input: "0.1", bits: 32, want: float64(float32(0.1))},
		{name: "overflow", input: "1e39", bits: 32, want: math.Inf(1), class: FloatPosInf},
		{name: "plus inf invalid", input: "+INF", bits: 64, wantErr: true},
		{name: "lower inf invalid", input: "inf", bits: 64, wantErr: true},
		{name: "hex invalid", input: "0x1p3", bits: 64, wantErr: true},
		{name: "empty", input: "", bits: 64, wantErr: true},
		{name: "garbage", input: "1-2", bits: 64, wantErr: true},
		{name: "bare exponent", input: "e", bits: 64, wantErr: true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseFloat(tc.input, tc.bits)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("ParseFloat(%q) = %v, want error", tc.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseFloat(%q) error = %v", tc.input, err)
			}
			if class := Classify(got); class != tc.class {
				t.Fatalf("class = %v, want %v", class, tc.class)
			}
			if tc.class == FloatFinite && got != tc.want {
				t.Fatalf("ParseFloat(%q) = %v, want %v", tc.input, got, tc.want)
			}
		})
	}
}

func TestNarrow32(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{in: 0.1, want: float64(float32(0.1))},
		{in: 1.5, want: 1.5},
		{in: 1e-50, want: 0},
		{in: -1e-50, want: math.Copysign(0, -1)},
		{in: math.MaxFloat32, want: math.MaxFloat32},
		{in: 1e300, want: math.Inf(1)},
		{in: -1e300, want: math.Inf(-1)},
		{in: float32Overflow, want: math.Inf(1)},
		{in: math.Nextafter(float32Overflow, 0), want: math.MaxFloat32},
	}
	for _, tc := range tests {
		got := Narrow32(tc.in)
		if got != tc.want || math.Signbit(got) != math.Signbit(tc.want) {
			t.Fatalf("Narrow32(%g) = %g, want %g", tc.in, got, tc.want)
		}
	}
	if !math.IsNaN(Narrow32(math.NaN())) {
		t.Fatal("Narrow32(NaN) is not NaN")
	}
}

func TestFormatFloat(t *testing.T) {
	tests := []struct {
		in     float64
		digits int
		bits   int
		want   string
	}{
		{in: math.NaN(), digits: FloatDigits, bits: 32, want: "NaN"},
		{in: math.Inf(1), digits: FloatDigits, bits: 32, want: "INF"},
		{in: math.Inf(-1), digits: DoubleDigits, bits: 64, want: "-INF"},
		{in: 0, digits: DoubleDigits, bits: 64, want: "0"},
		{in: math.Copysign(0, -1), digits: DoubleDigits, bits: 64, want: "-0"},
		{in: 1.9, digits: DoubleDigits, bits: 64, want: "1.9"},
		{in: 100, digits: DoubleDigits, bits: 64, want: "100"},
		{in: 0.1, digits: DoubleDigits, bits: 64, want: "0.1"},
		{in: 0.0001, digits: DoubleDigits, bits: 64, want: "0.0001"},
		{in: 0.00001, digits: DoubleDigits, bits: 64, want: "1e-05"},
		{in: 1e21, digits: DoubleDigits, bits: 64, want: "1e+21"},
		{in: 1e16, digits: DoubleDigits, bits: 64, want: "1e+16"},
		{in: 123456789012345, digits: DoubleDigits, bits: 64, want: "123456789012345"},
		{in: 1.0 / 3, digits: DoubleDigits, bits: 64, want: "0.3333333333333333"},
		{in: 0.1 + 0.2, digits: DoubleDigits, bits: 64, want: "0.3"},
		{in: -2.5e-10, digits: DoubleDigits, bits: 64, want: "-2.5e-10"},
		{in: float64(float32(0.1)), digits: FloatDigits, bits: 32, want: "0.1"},
		{in: float64(float32(1.0 / 3)), digits: FloatDigits, bits: 32, want: "0.33333334"},
		{in: 12345678, digits: FloatDigits, bits: 32, want: "12345678"},
		{in: 1e10, digits: FloatDigits, bits: 32, want: "1e+10"},
		{in: math.MaxFloat32, digits: FloatDigits, bits: 32, want: "3.4028235e+38"},
	}
	for _, tc := range tests {
		if got := FormatFloat(tc.in, tc.digits, tc.bits); got != tc.want {
			t.Fatalf("FormatFloat(%v, %d) = %q, want %q", tc.in, tc.digits, got, tc.want)
		}
	}
}

func TestCompareFloat(t *testing.T) {
	if _, ok := CompareFloat(math.NaN(), 1); ok {
		t.Fatal("NaN compared as ordered")
	}
	if c, ok := CompareFloat(math.Inf(-1), -1e308); !ok || c != -1 {
		t.Fatalf("CompareFloat(-INF, -1e308) = %d, %v", c, ok)
	}
	if c, ok := CompareFloat(0, math.Copysign(0, -1)); !ok || c != 0 {
		t.Fatalf("CompareFloat(0, -0) = %d, %v", c, ok)
	}
}
