package xsd

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRegistryTypes(t *testing.T) {
	t.Parallel()

	types := Types()
	if len(types) != len(typeTable()) {
		t.Fatalf("Types() = %d entries, want %d", len(types), len(typeTable()))
	}
	seen := make(map[QName]bool, len(types))
	for _, info := range types {
		if seen[info.Name] {
			t.Fatalf("duplicate registration %s", info.Name)
		}
		seen[info.Name] = true
		if info.Name.Namespace != Namespace {
			t.Fatalf("%s outside the XML Schema namespace", info.Name)
		}
		if info.Name != AnySimpleTypeName && !IsBuiltin(info.Base) {
			t.Fatalf("%s derives from unregistered %s", info.Name, info.Base)
		}
	}
	if IsBuiltin(AnyTypeName) {
		t.Fatal("anyType is registered")
	}

	types[0] = nil
	if Types()[0] == nil {
		t.Fatal("Types() exposed the registry slice")
	}
}

func TestRegistryParsesOwnType(t *testing.T) {
	t.Parallel()

	samples := map[QName]string{
		AnySimpleTypeName: "x", NilName: "", StringName: "x", NormalizedStringName: "x",
		BooleanName: "true", DecimalName: "1.5", FloatName: "1", DoubleName: "1",
		DurationName: "P1D", DateTimeName: "2004-01-01T00:00:00Z", TimeName: "00:00:00",
		DateName: "2004-01-01", GYearMonthName: "2004-01", GYearName: "2004",
		GMonthDayName: "01-01", GDayName: "01", GMonthName: "01",
		HexBinaryName: "00", Base64BinaryName: "AA==", AnyURIName: "urn:x", QNameName: "a:b",
		IntegerName: "1", LongName: "1", IntName: "1", ShortName: "1", ByteName: "1",
		NonNegativeIntegerName: "1", PositiveIntegerName: "1",
		NonPositiveIntegerName: "-1", NegativeIntegerName: "-1",
		UnsignedLongName: "1", UnsignedIntName: "1", UnsignedShortName: "1", UnsignedByteName: "1",
	}
	for _, info := range Types() {
		literal, ok := samples[info.Name]
		if !ok {
			t.Fatalf("no sample literal for %s", info.Name)
		}
		v, err := info.Parse(literal)
		if err != nil {
			t.Fatalf("%s.Parse(%q) error = %v", info.Name.Local, literal, err)
		}
		if v.Type() != info.Name {
			t.Fatalf("%s.Parse(%q).Type() = %s", info.Name.Local, literal, v.Type())
		}
	}
}

func TestLookup(t *testing.T) {
	t.Parallel()

	info, ok := LookupLocal("short")
	if !ok {
		t.Fatal("LookupLocal(short) not found")
	}
	if diff := cmp.Diff(ShortName, info.Name); diff != "" {
		t.Fatalf("LookupLocal(short) mismatch (-want +got):\n%s", diff)
	}
	if got := MustLookup(ShortName); got != info {
		t.Fatal("MustLookup returned a different entry")
	}
	if _, ok := Lookup(QName{Namespace: "urn:other", Local: "short"}); ok {
		t.Fatal("Lookup found a name outside the XML Schema namespace")
	}

	defer func() {
		if recover() == nil {
			t.Fatal("MustLookup(unknown) did not panic")
		}
	}()
	MustLookup(QName{Namespace: Namespace, Local: "nope"})
}

func TestDerivesFrom(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name, base QName
		want       bool
	}{
		{name: ByteName, base: IntegerName, want: true},
		{name: ByteName, base: DecimalName, want: true},
		{name: UnsignedByteName, base: NonNegativeIntegerName, want: true},
		{name: UnsignedByteName, base: LongName, want: false},
		{name: NormalizedStringName, base: StringName, want: true},
		{name: DateTimeName, base: AnySimpleTypeName, want: true},
		{name: DateTimeName, base: AnyTypeName, want: true},
		{name: DecimalName, base: IntegerName, want: false},
		{name: ShortName, base: ShortName, want: true},
	}
	for _, tt := range tests {
		if got := MustLookup(tt.name).DerivesFrom(tt.base); got != tt.want {
			t.Errorf("%s.DerivesFrom(%s) = %v, want %v", tt.name.Local, tt.base.Local, got, tt.want)
		}
	}
}

func TestCodecUnknownType(t *testing.T) {
	t.Parallel()

	_, err := Parse(QName{Namespace: Namespace, Local: "nope"}, "1")
	if !errors.Is(err, errUnknownType) {
		t.Fatalf("Parse(unknown) error = %v, want errUnknownType", err)
	}
	_, err = IntegerOf(1).Restrict(StringName)
	if !errors.Is(err, errUnknownType) {
		t.Fatalf("Restrict(string) error = %v, want errUnknownType", err)
	}
}
