package schema

import "fmt"

type FieldType uint8

const (
	Int64FieldType FieldType = iota
	Uint64FieldType
	Float64FieldType
)

func (f FieldType) String() string {
	switch f {
	case Int64FieldType:
		return "Int64"
	case Uint64FieldType:
		return "Uint64"
	case Float64FieldType:
		return "Float64"
	default:
		return ""
	}
}

func (f FieldType) Size() int {
	switch f {
	case Int64FieldType, Uint64FieldType, Float64FieldType:
		return 8
	default:
		panic("unknown field type " + f.String())
	}
}

func ParseFieldType(name string) (FieldType, error) {
	switch name {
	case "int64", "Int64":
		return Int64FieldType, nil
	case "uint64", "Uint64":
		return Uint64FieldType, nil
	case "float64", "Float64":
		return Float64FieldType, nil
	default:
		return 0, fmt.Errorf("unknown field type name : %s", name)
	}
}
