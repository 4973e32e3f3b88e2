package xsd

// Boolean is an xs:boolean value.
type Boolean struct {
	data bool
	set  bool
}

// ParseBoolean accepts "true", "false", "1" and "0".
func ParseBoolean(s string) (Boolean, error) {
	switch trim(s) {
	case "true", "1":
		return Boolean{data: true, set: true}, nil
	case "false", "0":
		return Boolean{data: false, set: true}, nil
	default:
		return Boolean{}, rejectLiteral(BooleanName, s, nil)
	}
}

// BooleanOf returns b as a Boolean.
func BooleanOf(b bool) Boolean {
	return Boolean{data: b, set: true}
}

func (Boolean) Type() QName { return BooleanName }

func (v Boolean) IsNil() bool { return !v.set }

// Bool returns the value; nil reads as false.
func (v Boolean) Bool() bool { return v.data }

func (v Boolean) String() string {
	switch {
	case !v.set:
		return ""
	case v.data:
		return "true"
	default:
		return "false"
	}
}
