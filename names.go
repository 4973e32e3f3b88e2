package xsd

import (
	"github.com/soapkit/xsd/internal/builtins"
	"github.com/soapkit/xsd/qname"
)

// QName is a namespace-qualified name.
type QName = qname.QName

const (
	// Namespace is the XML Schema namespace of every built-in datatype.
	Namespace = builtins.XSDNamespace
	// InstanceNamespace holds the xsi:type and xsi:nil attributes.
	InstanceNamespace = builtins.XSINamespace

	// NilValue is the xsi:nil attribute value marking an absent element.
	NilValue = "true"
)

func xsdName(local builtins.TypeName) QName {
	return qname.New(Namespace, string(local))
}

var (
	AttrTypeName = qname.New(InstanceNamespace, builtins.AttrType)
	AttrNilName  = qname.New(InstanceNamespace, builtins.AttrNil)

	AnyTypeName       = xsdName(builtins.TypeNameAnyType)
	AnySimpleTypeName = xsdName(builtins.TypeNameAnySimpleType)
	NilName           = xsdName(builtins.TypeNameNil)

	StringName       = xsdName(builtins.TypeNameString)
	BooleanName      = xsdName(builtins.TypeNameBoolean)
	DecimalName      = xsdName(builtins.TypeNameDecimal)
	FloatName        = xsdName(builtins.TypeNameFloat)
	DoubleName       = xsdName(builtins.TypeNameDouble)
	DurationName     = xsdName(builtins.TypeNameDuration)
	DateTimeName     = xsdName(builtins.TypeNameDateTime)
	TimeName         = xsdName(builtins.TypeNameTime)
	DateName         = xsdName(builtins.TypeNameDate)
	GYearMonthName   = xsdName(builtins.TypeNameGYearMonth)
	GYearName        = xsdName(builtins.TypeNameGYear)
	GMonthDayName    = xsdName(builtins.TypeNameGMonthDay)
	GDayName         = xsdName(builtins.TypeNameGDay)
	GMonthName       = xsdName(builtins.TypeNameGMonth)
	HexBinaryName    = xsdName(builtins.TypeNameHexBinary)
	Base64BinaryName = xsdName(builtins.TypeNameBase64Binary)
	AnyURIName       = xsdName(builtins.TypeNameAnyURI)
	QNameName        = xsdName(builtins.TypeNameQName)

	NormalizedStringName = xsdName(builtins.TypeNameNormalizedString)

	IntegerName            = xsdName(builtins.TypeNameInteger)
	LongName               = xsdName(builtins.TypeNameLong)
	IntName                = xsdName(builtins.TypeNameInt)
	ShortName              = xsdName(builtins.TypeNameShort)
	ByteName               = xsdName(builtins.TypeNameByte)
	NonNegativeIntegerName = xsdName(builtins.TypeNameNonNegativeInteger)
	PositiveIntegerName    = xsdName(builtins.TypeNamePositiveInteger)
	NonPositiveIntegerName = xsdName(builtins.TypeNameNonPositiveInteger)
	NegativeIntegerName    = xsdName(builtins.TypeNameNegativeInteger)
	UnsignedLongName       = xsdName(builtins.TypeNameUnsignedLong)
	UnsignedIntName        = xsdName(builtins.TypeNameUnsignedInt)
	UnsignedShortName      = xsdName(builtins.TypeNameUnsignedShort)
	UnsignedByteName       = xsdName(builtins.TypeNameUnsignedByte)
)
